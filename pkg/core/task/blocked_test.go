package task_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/task"
)

func TestIsBlocked(t *testing.T) {
	idx := task.NewIndex([]task.Task{
		{ID: "done", Status: task.StatusDone},
		{ID: "todo", Status: task.StatusToDo},
		{ID: "odd", Status: "Waiting"},
		{ID: "self", Status: task.StatusInProgress, Dependencies: []string{"self"}},
	})

	tests := []struct {
		name string
		deps []string
		want bool
	}{
		{"no dependencies", nil, false},
		{"all done", []string{"done"}, false},
		{"one open", []string{"done", "todo"}, true},
		{"only dangling", []string{"ghost", "phantom"}, false},
		{"dangling and open", []string{"ghost", "todo"}, true},
		{"unrecognized status", []string{"odd"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := task.IsBlocked(task.Task{ID: "x", Dependencies: tt.deps}, idx)
			assert.Equal(t, tt.want, got)
		})
	}

	self, _ := idx.Get("self")
	assert.True(t, task.IsBlocked(self, idx))
}

func TestBlockedBy(t *testing.T) {
	idx := task.NewIndex([]task.Task{
		{ID: "a", Status: task.StatusDone},
		{ID: "b", Status: task.StatusToDo},
		{ID: "c", Status: task.StatusInReview},
	})
	tk := task.Task{ID: "x", Dependencies: []string{"c", "a", "ghost", "b", "c"}}
	assert.Equal(t, []string{"c", "b"}, task.BlockedBy(tk, idx))
	assert.Empty(t, task.BlockedBy(task.Task{ID: "y"}, idx))
}

func TestDependencyBlocksAgreesWithIsBlocked(t *testing.T) {
	idx := task.NewIndex([]task.Task{
		{ID: "a", Status: task.StatusDone},
		{ID: "b", Status: task.StatusToDo},
	})
	for _, deps := range [][]string{{"a"}, {"b"}, {"a", "b"}, {"ghost"}, {}} {
		tk := task.Task{ID: "x", Dependencies: deps}
		blocks := false
		for _, d := range deps {
			blocks = blocks || task.DependencyBlocks(d, idx)
		}
		assert.Equal(t, blocks, task.IsBlocked(tk, idx), "deps=%v", deps)
	}
}
