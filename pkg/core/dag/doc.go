// Package dag provides the directed graph that backs the task dependency
// engine.
//
// # Overview
//
// A [DAG] holds one node per task and one edge per resolvable dependency.
// Edges point from the prerequisite to the dependent task, so [DAG.Parents]
// yields a task's dependencies and [DAG.Children] yields the tasks waiting
// on it. Keeping both adjacency directions means downstream queries never
// rescan the task list.
//
// Each node carries a Row, the level assigned by
// [github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/dag/transform.AssignLevels].
//
// # Cycles
//
// Task data is edited by people, so cycles and self references occur. The
// graph stores them as-is; [DAG.Validate] reports them and the algorithms in
// the transform, layout and highlight packages are bounded so that they
// terminate regardless.
//
// # Building
//
//	idx := task.NewIndex(tasks)
//	g := dag.FromTasks(idx)
//
// Nodes, edges, Sources and Sinks are returned in insertion order, which
// keeps every derived output deterministic.
package dag
