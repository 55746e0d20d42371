// Package transform computes derived properties of a task dependency graph.
//
// # Level Assignment
//
// [AssignLevels] places every task in a layer such that, for acyclic input,
// each task sits at least one layer to the right of all of its dependencies.
// It is a bounded longest-path relaxation: at most [MaxPasses] passes over
// the graph, stopping early at a fixed point. The bound is what makes it
// safe on cyclic input, where there is no fixed point to find.
//
//	g := dag.FromTasks(task.NewIndex(tasks))
//	levels := transform.AssignLevels(g) // also stored in each node's Row
//
// # Diagnostics
//
// [FindCycles] reports the strongly connected components that form cycles,
// using Tarjan's algorithm from gonum. [DanglingRefs] reports dependency ids
// that name deleted tasks. Neither modifies the graph: the engine renders
// whatever the user has entered and leaves resolution to them.
package transform
