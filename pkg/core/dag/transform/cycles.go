package transform

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/dag"
)

// FindCycles returns the groups of nodes that take part in a dependency
// cycle. Each group is a strongly connected component with more than one
// node, or a single node that depends on itself.
//
// Groups list node IDs in graph insertion order and are themselves ordered
// by their first member, so the output is stable across runs. The graph is
// not modified: cycles are reported, never broken.
func FindCycles(g *dag.DAG) [][]string {
	nodes := g.Nodes()
	pos := make(map[string]int64, len(nodes))
	for i, n := range nodes {
		pos[n.ID] = int64(i)
	}

	dg := simple.NewDirectedGraph()
	for i := range nodes {
		dg.AddNode(simple.Node(int64(i)))
	}

	selfLoops := make(map[string]bool)
	for _, e := range g.Edges() {
		if e.From == e.To {
			selfLoops[e.From] = true
			continue
		}
		dg.SetEdge(dg.NewEdge(simple.Node(pos[e.From]), simple.Node(pos[e.To])))
	}

	var groups [][]int64
	for _, comp := range topo.TarjanSCC(dg) {
		if len(comp) == 1 && !selfLoops[nodes[comp[0].ID()].ID] {
			continue
		}
		ids := make([]int64, len(comp))
		for i, n := range comp {
			ids[i] = n.ID()
		}
		slices.Sort(ids)
		groups = append(groups, ids)
	}
	slices.SortFunc(groups, func(a, b []int64) int { return cmp.Compare(a[0], b[0]) })

	out := make([][]string, len(groups))
	for i, grp := range groups {
		out[i] = make([]string, len(grp))
		for j, p := range grp {
			out[i][j] = nodes[p].ID
		}
	}
	return out
}

// CycleMembers flattens the groups returned by [FindCycles] into a set of
// node IDs.
func CycleMembers(cycles [][]string) map[string]bool {
	set := make(map[string]bool)
	for _, grp := range cycles {
		for _, id := range grp {
			set[id] = true
		}
	}
	return set
}
