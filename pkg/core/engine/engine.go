package engine

import (
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/dag"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/dag/transform"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/highlight"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/layout"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/route"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/style"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/task"
)

// GraphNode is a task with everything needed to draw it.
type GraphNode struct {
	task.Task
	Level   int              `json:"level"`
	X       float64          `json:"x"`
	Y       float64          `json:"y"`
	Width   float64          `json:"width"`
	Height  float64          `json:"height"`
	Blocked bool             `json:"blocked"`
	InCycle bool             `json:"inCycle,omitempty"` // part of a dependency cycle
	Style   style.Descriptor `json:"style"`
}

// Stats summarises one computation.
type Stats struct {
	Tasks       int `json:"tasks"`
	Connections int `json:"connections"`
	Layers      int `json:"layers"`
	Blocked     int `json:"blocked"`
	Dangling    int `json:"dangling"`
	Cycles      int `json:"cycles"` // groups reported by transform.FindCycles
	Passes      int `json:"passes"`
}

// Result is the complete drawable graph for one task list and focus.
type Result struct {
	Nodes       []GraphNode        `json:"nodes"` // reading order: layer, then top to bottom
	Connections []route.Connection `json:"connections"`
	Highlight   highlight.Context  `json:"-"`
	Width       float64            `json:"width"`
	Height      float64            `json:"height"`
	Stats       Stats              `json:"stats"`
	Config      layout.Config      `json:"config"`

	idx    *task.Index
	byNode map[string]int
}

// Compute runs the whole engine on a task list: levels, geometry, routing,
// blocked state and the highlight for focus (empty for none).
//
// Compute is a pure function. It holds no state between calls, never fails
// on malformed topology and returns identical results for identical input.
// Zero fields of cfg take their defaults; cfg is expected to be valid
// otherwise (see [layout.Config.Validate]).
func Compute(tasks []task.Task, focus string, cfg layout.Config) Result {
	cfg = cfg.WithDefaults()
	idx := task.NewIndex(tasks)

	g := dag.FromTasks(idx)
	_, levels := transform.AssignLevelsStats(g)
	cycles := transform.FindCycles(g)
	inCycle := transform.CycleMembers(cycles)
	geo := layout.Build(g, cfg)
	conns := route.Route(idx, geo)

	r := Result{
		Connections: conns,
		Highlight:   highlight.Compute(focus, idx),
		Width:       geo.Width,
		Height:      geo.Height,
		Config:      cfg,
		idx:         idx,
		byNode:      make(map[string]int, idx.Len()),
		Stats: Stats{
			Tasks:       idx.Len(),
			Connections: len(conns),
			Layers:      len(geo.Layers),
			Dangling:    len(transform.DanglingRefs(idx)),
			Cycles:      len(cycles),
			Passes:      levels.Passes,
		},
	}

	for _, id := range geo.Order() {
		t, _ := idx.Get(id)
		box, _ := geo.Box(id)
		blocked := task.IsBlocked(t, idx)
		if blocked {
			r.Stats.Blocked++
		}
		r.byNode[id] = len(r.Nodes)
		r.Nodes = append(r.Nodes, GraphNode{
			Task:    t,
			Level:   box.Level,
			X:       box.X,
			Y:       box.Y,
			Width:   box.W,
			Height:  box.H,
			Blocked: blocked,
			InCycle: inCycle[id],
			Style:   style.ForTask(t, blocked),
		})
	}
	return r
}

// Node returns the graph node for a task id.
func (r Result) Node(id string) (GraphNode, bool) {
	i, ok := r.byNode[id]
	if !ok {
		return GraphNode{}, false
	}
	return r.Nodes[i], true
}

// Refocus returns r with the highlight recomputed for a new focus. Layout
// and routing do not depend on the focus, so the result equals a fresh
// Compute of the same tasks with the new focus.
func (r Result) Refocus(focus string) Result {
	r.Highlight = highlight.Compute(focus, r.idx)
	return r
}

// Tasks returns the deduplicated input task list the result was computed from.
func (r Result) Tasks() []task.Task { return r.idx.Tasks() }

// EdgeStroke returns the stroke for a connection under the current highlight.
func (r Result) EdgeStroke(c route.Connection) style.Stroke {
	h := r.Highlight
	return style.EdgeStyle(c.IsBlocked, h.HasConnection(c.ID), !h.IsIdle() && !h.HasConnection(c.ID))
}

// Dimmed reports whether a node falls outside the current focus.
func (r Result) Dimmed(id string) bool { return r.Highlight.Dims(id) }
