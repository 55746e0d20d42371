package engine

import "github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/task"

// Activator forwards node activation (click, Enter) to the host. The engine
// never navigates itself.
type Activator struct {
	OnActivate func(task.Task)
}

// Activate looks id up in r and passes the original task to OnActivate.
// It reports false when id is not a node of r; a nil callback is a no-op
// that still reports whether the node exists.
func (a Activator) Activate(r Result, id string) bool {
	n, ok := r.Node(id)
	if !ok {
		return false
	}
	if a.OnActivate != nil {
		a.OnActivate(n.Task)
	}
	return true
}
