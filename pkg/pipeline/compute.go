package pipeline

import (
	"context"
	"time"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/dag"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/dag/transform"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/engine"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/task"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/graph"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/observability"
)

// Compute runs the engine on tasks and returns the serializable graph.
// Dangling references and cycles are logged; they never fail the run.
func Compute(ctx context.Context, tasks []task.Task, opts Options) (graph.Layout, error) {
	if err := opts.ValidateForCompute(); err != nil {
		return graph.Layout{}, err
	}
	logger := opts.Logger

	hooks := observability.Pipeline()
	hooks.OnComputeStart(ctx, len(tasks))
	start := time.Now()

	res := engine.Compute(tasks, opts.Focus, opts.Layout)
	l := graph.FromResult(res)

	hooks.OnComputeComplete(ctx, len(l.Nodes), len(l.Connections), time.Since(start))

	if res.Stats.Dangling > 0 {
		logger.Debug("ignored dangling dependencies", "count", res.Stats.Dangling)
	}
	if res.Stats.Cycles > 0 {
		logger.Warn("task list contains dependency cycles; levels on them are arbitrary",
			"cycles", res.Stats.Cycles)
	}
	if opts.Focus != "" && l.Highlight.IsIdle() {
		logger.Warn("focus task not found", "focus", opts.Focus)
	}
	return l, nil
}

// =============================================================================
// Diagnostics
// =============================================================================

// Diagnostics summarises problems in a task list that the engine tolerates
// but users usually want to fix.
type Diagnostics struct {
	Tasks     int                     `json:"tasks"`
	Blocked   []string                `json:"blocked"`
	// BlockedBy lists, per blocked task, the dependencies still open.
	BlockedBy map[string][]string     `json:"blockedBy"`
	Dangling  []transform.DanglingRef `json:"dangling"`
	Cycles    [][]string              `json:"cycles"`
	Levels    transform.LevelStats    `json:"levels"`
}

// OK reports whether the task list has no dangling references and no cycles.
func (d Diagnostics) OK() bool {
	return len(d.Dangling) == 0 && len(d.Cycles) == 0
}

// Diagnose inspects a task list.
func Diagnose(tasks []task.Task) Diagnostics {
	idx := task.NewIndex(tasks)
	g := dag.FromTasks(idx)
	_, stats := transform.AssignLevelsStats(g)

	d := Diagnostics{
		Tasks:     idx.Len(),
		BlockedBy: make(map[string][]string),
		Dangling:  transform.DanglingRefs(idx),
		Cycles:    transform.FindCycles(g),
		Levels:    stats,
	}
	for _, t := range idx.Tasks() {
		if by := task.BlockedBy(t, idx); len(by) > 0 {
			d.Blocked = append(d.Blocked, t.ID)
			d.BlockedBy[t.ID] = by
		}
	}
	return d
}
