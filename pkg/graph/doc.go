// Package graph provides the serialization format for computed task graphs.
//
// A [Layout] is what the engine produced, flattened to JSON: every task with
// its level, position, blocked state and style, every connection with its
// SVG path, and the highlight sets for the focus the graph was computed
// with. It is the format of the "layout" CLI command, the HTTP API and the
// cache.
//
// # Conversion
//
//	res := engine.Compute(tasks, focus, layout.DefaultConfig())
//	l := graph.FromResult(res)
//
// A Layout keeps the original task fields, so [Layout.Tasks] returns the
// input again and [Layout.Recompute] can move the focus without the source.
//
// # Files
//
//	graph.WriteLayoutFile(l, "graph.json")
//	l, err := graph.ReadLayoutFile("graph.json")
//
// Layouts are validated on read: every connection must join two nodes of
// the layout, and layouts written by a newer version are rejected.
package graph
