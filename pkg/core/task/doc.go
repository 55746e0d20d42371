// Package task defines the task records consumed by the dependency graph
// engine and the blocked-state rule shared by every part of it.
//
// Tasks are owned by an external store; this package never mutates them.
// The only status with meaning to the engine is [StatusDone]. A task is
// blocked when any dependency that exists in the same task list is not done:
//
//	idx := task.NewIndex(tasks)
//	if task.IsBlocked(t, idx) {
//	    // render with blocked styling
//	}
//
// Dependency ids that do not resolve are tolerated everywhere. They appear
// whenever a task is deleted while another task still references it.
package task
