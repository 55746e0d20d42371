package dag

import "github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/task"

// Meta keys set on nodes built by FromTasks.
const (
	MetaTitle    = "title"
	MetaStatus   = "status"
	MetaPriority = "priority"
)

// FromTasks builds the dependency graph for an indexed task list.
//
// Every task becomes a node in index order. Every dependency id that
// resolves to a task becomes an edge dependency→task; ids that do not
// resolve are dropped silently. Duplicate dependency ids collapse into one
// edge. Self references are kept as self-loops.
func FromTasks(idx *task.Index) *DAG {
	g := New()
	for _, t := range idx.Tasks() {
		// Index guarantees unique, non-empty IDs.
		_ = g.AddNode(Node{ID: t.ID, Meta: Metadata{
			MetaTitle:    t.Title,
			MetaStatus:   string(t.Status),
			MetaPriority: string(t.Priority),
		}})
	}
	for _, t := range idx.Tasks() {
		for _, dep := range t.Dependencies {
			// Unknown dependency ids fail with ErrUnknownSourceNode.
			_ = g.AddEdge(Edge{From: dep, To: t.ID})
		}
	}
	return g
}
