package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/dag"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/dag/transform"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/layout"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/task"
)

func plan(t *testing.T, cfg layout.Config, tasks ...task.Task) layout.Layout {
	t.Helper()
	g := dag.FromTasks(task.NewIndex(tasks))
	transform.AssignLevels(g)
	return layout.Build(g, cfg)
}

func tk(id, title string, deps ...string) task.Task {
	return task.Task{ID: id, Title: title, Status: task.StatusToDo, Dependencies: deps}
}

func TestBuildEmpty(t *testing.T) {
	l := plan(t, layout.DefaultConfig())
	assert.Empty(t, l.Boxes)
	assert.Empty(t, l.Layers)
	assert.Zero(t, l.Width)
	assert.Zero(t, l.Height)
}

func TestBuildChainColumns(t *testing.T) {
	cfg := layout.DefaultConfig()
	l := plan(t, cfg, tk("a", "A"), tk("b", "B", "a"), tk("c", "C", "b"))

	a, _ := l.Box("a")
	b, _ := l.Box("b")
	c, _ := l.Box("c")
	assert.Equal(t, cfg.Padding, a.X)
	assert.Equal(t, cfg.Padding+cfg.ColumnStep(), b.X)
	assert.Equal(t, cfg.Padding+2*cfg.ColumnStep(), c.X)
	assert.Less(t, a.X, b.X)
	assert.Less(t, b.X, c.X)

	// Single-node columns centred in the minimum canvas height.
	wantY := cfg.Padding + (cfg.MinCanvasHeight-cfg.NodeHeight)/2
	for _, box := range []layout.Box{a, b, c} {
		assert.Equal(t, wantY, box.Y)
	}

	assert.Equal(t, c.Right()+cfg.Padding, l.Width)
	assert.Equal(t, a.Bottom()+cfg.Padding, l.Height)
}

func TestBuildSortsByTitleThenID(t *testing.T) {
	l := plan(t, layout.DefaultConfig(),
		tk("z", "Alpha"),
		tk("y", "Beta"),
		tk("b", "Alpha"),
	)
	require.Len(t, l.Layers, 1)
	assert.Equal(t, []string{"b", "z", "y"}, l.Layers[0].NodeIDs)
	assert.Equal(t, []string{"b", "z", "y"}, l.Order())

	b, _ := l.Box("b")
	z, _ := l.Box("z")
	assert.Equal(t, 0, b.Slot)
	assert.Equal(t, 1, z.Slot)
	assert.Equal(t, layout.DefaultConfig().RowStep(), z.Y-b.Y)
}

func TestBuildCentresAgainstTallestColumn(t *testing.T) {
	cfg := layout.Config{NodeWidth: 100, NodeHeight: 50, XGap: 20, YGap: 10, Padding: 5, MinCanvasHeight: 0}
	var tasks []task.Task
	for _, id := range []string{"r1", "r2", "r3", "r4", "r5", "r6", "r7", "r8"} {
		tasks = append(tasks, tk(id, id))
	}
	tasks = append(tasks, tk("leaf", "leaf", "r1"))
	l := plan(t, cfg, tasks...)

	tallest := cfg.StackHeight(8)
	assert.Equal(t, 8*50.0+7*10.0, tallest)

	top, _ := l.Box("r1")
	assert.Equal(t, cfg.Padding, top.Y)

	leaf, _ := l.Box("leaf")
	assert.Equal(t, cfg.Padding+(tallest-cfg.NodeHeight)/2, leaf.Y)
	assert.Equal(t, cfg.Padding+tallest+cfg.Padding, l.Height)
}

func TestBuildAnchors(t *testing.T) {
	b := layout.Box{X: 10, Y: 20, W: 100, H: 40}
	assert.Equal(t, layout.Point{X: 10, Y: 40}, b.InAnchor())
	assert.Equal(t, layout.Point{X: 110, Y: 40}, b.OutAnchor())
}

func TestBuildDeterministic(t *testing.T) {
	tasks := []task.Task{tk("a", "Same"), tk("b", "Same"), tk("c", "Other", "a", "b")}
	first := plan(t, layout.DefaultConfig(), tasks...)
	second := plan(t, layout.DefaultConfig(), tasks[2], tasks[1], tasks[0])
	assert.Equal(t, first.Boxes, second.Boxes)
	assert.Equal(t, first.Width, second.Width)
	assert.Equal(t, first.Height, second.Height)
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, layout.DefaultConfig().Validate())

	bad := []layout.Config{
		{NodeWidth: 0, NodeHeight: 10},
		{NodeWidth: 10, NodeHeight: -1},
		{NodeWidth: 10, NodeHeight: 10, XGap: -1},
		{NodeWidth: 10, NodeHeight: 10, Padding: -2},
		{NodeWidth: 10, NodeHeight: 10, MinCanvasHeight: -5},
	}
	for _, c := range bad {
		assert.Error(t, c.Validate(), "%+v", c)
	}
}

func TestConfigWithDefaults(t *testing.T) {
	c := layout.Config{NodeWidth: 300}.WithDefaults()
	assert.Equal(t, 300.0, c.NodeWidth)
	assert.Equal(t, layout.DefaultNodeHeight, c.NodeHeight)
	assert.Equal(t, layout.DefaultMinCanvasHeight, c.MinCanvasHeight)
}
