package transform

import (
	"maps"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/dag"
)

// MaxPasses returns the relaxation pass bound for a graph of n nodes.
//
// The longest simple path in a graph with n nodes has n-1 edges, so an
// acyclic graph reaches its fixed point after at most n-1 raising passes
// plus one pass that observes no change.
func MaxPasses(n int) int { return n }

// LevelStats describes a run of [AssignLevelsStats].
type LevelStats struct {
	// Passes is the number of relaxation passes executed.
	Passes int
	// Converged is true when a pass completed without raising any level.
	// Because levels are capped at n-1, cyclic graphs converge too; use
	// [FindCycles] to detect cycles.
	Converged bool
}

// AssignLevels computes the level of every node and stores it in the node's
// Row. It returns the assignment keyed by node ID.
//
// See [AssignLevelsStats] for the algorithm.
func AssignLevels(g *dag.DAG) map[string]int {
	levels, _ := AssignLevelsStats(g)
	return levels
}

// AssignLevelsStats assigns levels by longest-path relaxation and reports
// how many passes it took.
//
// # Algorithm
//
// Every node starts at level 0. Each pass computes, for every node with
// dependencies, the highest level among its dependencies and raises the node
// to one above it when that is larger than its current level. A pass reads
// the levels left by the previous pass, which makes the outcome independent
// of node order. The run stops after a pass with no change or after
// [MaxPasses] passes, whichever comes first.
//
// # Cycles
//
// A node's own ID is ignored when it appears among its dependencies.
// Levels are capped at n-1, so nodes on a cycle end at some value in
// [0, n) and the run always terminates. Which value is unspecified.
//
// Dependencies on unknown tasks never reach the graph (see [dag.FromTasks])
// and therefore never affect levels.
func AssignLevelsStats(g *dag.DAG) (map[string]int, LevelStats) {
	nodes := g.Nodes()
	n := len(nodes)
	levels := make(map[string]int, n)
	for _, nd := range nodes {
		levels[nd.ID] = 0
	}

	stats := LevelStats{Converged: n == 0}
	ceiling := n - 1
	bound := MaxPasses(n)

	for pass := 0; pass < bound; pass++ {
		stats.Passes++
		prev := maps.Clone(levels)
		changed := false

		for _, nd := range nodes {
			maxParent := -1
			for _, p := range g.Parents(nd.ID) {
				if p == nd.ID {
					continue
				}
				if lvl := prev[p]; lvl > maxParent {
					maxParent = lvl
				}
			}
			if maxParent < 0 {
				continue
			}
			if next := min(maxParent+1, ceiling); next > levels[nd.ID] {
				levels[nd.ID] = next
				changed = true
			}
		}

		if !changed {
			stats.Converged = true
			break
		}
	}

	g.SetRows(levels)
	return levels, stats
}
