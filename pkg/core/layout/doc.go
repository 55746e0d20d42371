// Package layout converts task levels into canvas geometry.
//
// Levels become columns from left to right. Within a column, tasks are
// stacked top to bottom in title order and the stack is centred vertically
// against the tallest column (or [Config.MinCanvasHeight], whichever is
// larger). All sizes come from [Config]; [DefaultConfig] gives 220x80 boxes
// with 100px between columns and 40px between rows.
//
//	g := dag.FromTasks(idx)
//	transform.AssignLevels(g)
//	l := layout.Build(g, layout.DefaultConfig())
//	box, _ := l.Box("task-42")
//
// Box exposes the anchors connectors attach to: [Box.OutAnchor] on the right
// edge for outgoing edges and [Box.InAnchor] on the left edge for incoming.
package layout
