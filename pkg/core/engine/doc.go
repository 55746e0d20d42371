// Package engine ties the task graph stages into one call.
//
// [Compute] assigns levels, positions every task, routes connectors,
// evaluates blocked state, applies styles and resolves the highlight for an
// explicit focus id:
//
//	res := engine.Compute(tasks, "task-7", layout.DefaultConfig())
//	for _, n := range res.Nodes {
//		fmt.Println(n.ID, n.Level, n.X, n.Y, n.Blocked)
//	}
//
// Changing focus alone only needs [Result.Refocus]. Clicks are delivered to
// the host through an [Activator].
package engine
