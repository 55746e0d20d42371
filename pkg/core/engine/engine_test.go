package engine_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/engine"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/layout"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/style"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/task"
)

func chain() []task.Task {
	return []task.Task{
		{ID: "A", Title: "Design", Status: task.StatusToDo},
		{ID: "B", Title: "Build", Status: task.StatusDone, Dependencies: []string{"A"}},
		{ID: "C", Title: "Ship", Status: task.StatusToDo, Dependencies: []string{"B"}},
	}
}

func levels(r engine.Result) map[string]int {
	out := make(map[string]int, len(r.Nodes))
	for _, n := range r.Nodes {
		out[n.ID] = n.Level
	}
	return out
}

func TestComputeLinearChain(t *testing.T) {
	r := engine.Compute(chain(), "", layout.DefaultConfig())

	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 2}, levels(r))
	a, _ := r.Node("A")
	b, _ := r.Node("B")
	c, _ := r.Node("C")
	assert.Less(t, a.X, b.X)
	assert.Less(t, b.X, c.X)

	require.Len(t, r.Connections, 2)
	assert.Equal(t, "A-B", r.Connections[0].ID)
	assert.True(t, r.Connections[0].IsBlocked)
	assert.Equal(t, "B-C", r.Connections[1].ID)
	assert.False(t, r.Connections[1].IsBlocked)

	assert.True(t, b.Blocked)
	assert.False(t, c.Blocked)
	assert.Equal(t, 1, r.Stats.Blocked)
	assert.Zero(t, r.Stats.Cycles)
	assert.True(t, r.Highlight.IsIdle())
}

func TestComputeTwoCycle(t *testing.T) {
	tasks := []task.Task{
		{ID: "A", Dependencies: []string{"B"}},
		{ID: "B", Dependencies: []string{"A"}},
	}
	r := engine.Compute(tasks, "A", layout.DefaultConfig())

	for id, lvl := range levels(r) {
		assert.GreaterOrEqual(t, lvl, 0, id)
		assert.Less(t, lvl, len(tasks), id)
	}
	assert.Equal(t, []string{"A", "B"}, r.Highlight.Nodes())
	assert.Len(t, r.Connections, 2)
	assert.Equal(t, 1, r.Stats.Cycles)
	for _, n := range r.Nodes {
		assert.True(t, n.InCycle, n.ID)
	}
}

func TestComputeMarksCycleMembers(t *testing.T) {
	tasks := []task.Task{
		{ID: "root"},
		{ID: "A", Dependencies: []string{"root", "C"}},
		{ID: "B", Dependencies: []string{"A"}},
		{ID: "C", Dependencies: []string{"B"}},
		{ID: "self", Dependencies: []string{"self"}},
		{ID: "leaf", Dependencies: []string{"C"}},
	}
	r := engine.Compute(tasks, "", layout.DefaultConfig())

	assert.Equal(t, 2, r.Stats.Cycles)
	for id, want := range map[string]bool{"root": false, "A": true, "B": true, "C": true, "self": true, "leaf": false} {
		n, ok := r.Node(id)
		require.True(t, ok, id)
		assert.Equal(t, want, n.InCycle, id)
	}
}

func TestComputeDanglingOnly(t *testing.T) {
	r := engine.Compute([]task.Task{{ID: "A", Dependencies: []string{"ghost"}}}, "", layout.DefaultConfig())

	a, ok := r.Node("A")
	require.True(t, ok)
	assert.Equal(t, 0, a.Level)
	assert.False(t, a.Blocked)
	assert.Empty(t, r.Connections)
	assert.Equal(t, 1, r.Stats.Dangling)
}

func TestComputeFocusMiddleOfChain(t *testing.T) {
	r := engine.Compute(chain(), "B", layout.DefaultConfig())
	assert.Equal(t, []string{"A", "B", "C"}, r.Highlight.Nodes())
	assert.Equal(t, []string{"A-B", "B-C"}, r.Highlight.Connections())

	for _, c := range r.Connections {
		assert.True(t, r.EdgeStroke(c).Width == style.HighlightEdgeWidth, c.ID)
	}
}

func TestComputeEmpty(t *testing.T) {
	r := engine.Compute(nil, "anything", layout.DefaultConfig())
	assert.Empty(t, r.Nodes)
	assert.Empty(t, r.Connections)
	assert.Zero(t, r.Width)
	assert.Zero(t, r.Height)
	assert.True(t, r.Highlight.IsIdle())
}

func TestComputeIdempotent(t *testing.T) {
	tasks := []task.Task{
		{ID: "a", Title: "Same"},
		{ID: "b", Title: "Same", Dependencies: []string{"a", "c"}},
		{ID: "c", Title: "Loop", Dependencies: []string{"b"}},
		{ID: "d", Title: "Self", Dependencies: []string{"d", "ghost"}},
	}
	first := engine.Compute(tasks, "b", layout.DefaultConfig())
	second := engine.Compute(tasks, "b", layout.DefaultConfig())
	assert.Equal(t, first, second)
}

func TestComputeMonotonicOnAcyclicInput(t *testing.T) {
	tasks := []task.Task{
		{ID: "a"},
		{ID: "b", Dependencies: []string{"a"}},
		{ID: "c", Dependencies: []string{"a", "b"}},
		{ID: "d", Dependencies: []string{"c", "ghost"}},
		{ID: "e", Dependencies: []string{"b", "d"}},
	}
	r := engine.Compute(tasks, "", layout.DefaultConfig())
	lv := levels(r)
	for _, tk := range tasks {
		for _, dep := range tk.Dependencies {
			if dl, ok := lv[dep]; ok {
				assert.Greater(t, lv[tk.ID], dl, "%s -> %s", dep, tk.ID)
			}
		}
	}
}

func TestComputeLargeCycleBounded(t *testing.T) {
	const n = 200
	tasks := make([]task.Task, n)
	for i := range tasks {
		tasks[i] = task.Task{ID: fmt.Sprintf("t%03d", i), Dependencies: []string{fmt.Sprintf("t%03d", (i+1)%n)}}
	}
	r := engine.Compute(tasks, "t000", layout.DefaultConfig())
	for id, lvl := range levels(r) {
		assert.Less(t, lvl, n, id)
	}
	assert.Len(t, r.Highlight.RelatedNodes, n)
}

func TestRefocus(t *testing.T) {
	idle := engine.Compute(chain(), "", layout.DefaultConfig())
	focused := idle.Refocus("C")
	assert.Equal(t, engine.Compute(chain(), "C", layout.DefaultConfig()), focused)
	assert.True(t, idle.Highlight.IsIdle(), "refocus must not mutate the receiver")

	assert.True(t, focused.Dimmed("missing"))
	assert.False(t, focused.Dimmed("A"))
}

func TestComputeZeroConfigUsesDefaults(t *testing.T) {
	r := engine.Compute(chain(), "", layout.Config{})
	assert.Equal(t, layout.DefaultConfig(), r.Config)
}

func TestActivate(t *testing.T) {
	r := engine.Compute(chain(), "", layout.DefaultConfig())

	var got []task.Task
	a := engine.Activator{OnActivate: func(t task.Task) { got = append(got, t) }}
	assert.True(t, a.Activate(r, "B"))
	assert.False(t, a.Activate(r, "ghost"))
	require.Len(t, got, 1)
	assert.Equal(t, chain()[1], got[0])

	assert.True(t, engine.Activator{}.Activate(r, "A"))
}
