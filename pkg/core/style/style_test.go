package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/style"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/task"
)

func TestForStatus(t *testing.T) {
	tests := []struct {
		status task.Status
		fill   string
		class  string
	}{
		{task.StatusToDo, style.Slate100, "node status-todo"},
		{task.StatusInProgress, style.Blue100, "node status-in-progress"},
		{task.StatusInReview, style.Violet100, "node status-in-review"},
		{task.StatusDone, style.Green100, "node status-done"},
		{"Parked", style.Gray100, "node status-unknown"},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			d := style.For(tt.status, false, "")
			assert.Equal(t, tt.fill, d.Fill)
			assert.Equal(t, tt.class, d.Class)
			assert.False(t, d.Dashed)
			assert.Empty(t, d.Accent)
		})
	}
}

func TestForBlocked(t *testing.T) {
	d := style.For(task.StatusInProgress, true, task.PriorityUrgent)
	assert.Equal(t, style.Red50, d.Fill)
	assert.Equal(t, style.Red500, d.Border)
	assert.Equal(t, style.Blue900, d.Text)
	assert.Equal(t, style.Red600, d.Accent)
	assert.True(t, d.Dashed)
	assert.Equal(t, "node status-in-progress blocked priority-urgent", d.Class)
}

func TestForPriorityDoesNotChangeBase(t *testing.T) {
	low := style.For(task.StatusToDo, false, task.PriorityLow)
	high := style.For(task.StatusToDo, false, task.PriorityHigh)
	assert.Equal(t, low.Fill, high.Fill)
	assert.Equal(t, low.Border, high.Border)
	assert.NotEqual(t, low.Accent, high.Accent)
}

func TestForTask(t *testing.T) {
	tk := task.Task{ID: "a", Status: task.StatusDone, Priority: task.PriorityMedium}
	assert.Equal(t, style.For(task.StatusDone, false, task.PriorityMedium), style.ForTask(tk, false))
}

func TestEdgeStyle(t *testing.T) {
	tests := []struct {
		name                         string
		blocked, highlighted, dimmed bool
		want                         style.Stroke
	}{
		{"plain", false, false, false, style.Stroke{Color: style.Slate400, Width: 2, Opacity: 1, Class: "edge"}},
		{"blocked", true, false, false, style.Stroke{Color: style.Red500, Width: 2, Dashed: true, Opacity: 1, Class: "edge blocked"}},
		{"highlighted", false, true, false, style.Stroke{Color: style.Blue500, Width: 3, Opacity: 1, Class: "edge highlighted"}},
		{"blocked highlighted", true, true, false, style.Stroke{Color: style.Red500, Width: 3, Dashed: true, Opacity: 1, Class: "edge blocked highlighted"}},
		{"dimmed", false, false, true, style.Stroke{Color: style.Slate400, Width: 2, Opacity: 0.2, Class: "edge dimmed"}},
		{"highlight wins", false, true, true, style.Stroke{Color: style.Blue500, Width: 3, Opacity: 1, Class: "edge highlighted"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, style.EdgeStyle(tt.blocked, tt.highlighted, tt.dimmed))
		})
	}
}

func TestDashArray(t *testing.T) {
	assert.Equal(t, "6 4", style.DashArray(true))
	assert.Empty(t, style.DashArray(false))
}
