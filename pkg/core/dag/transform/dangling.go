package transform

import "github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/task"

// DanglingRef is a dependency that names a task missing from the list.
type DanglingRef struct {
	TaskID       string // task declaring the dependency
	DependencyID string // id that did not resolve
}

// DanglingRefs lists every dependency id that does not resolve, in task and
// declaration order. The engine ignores these; the list exists so callers
// can surface stale references to users.
func DanglingRefs(idx *task.Index) []DanglingRef {
	var refs []DanglingRef
	for _, t := range idx.Tasks() {
		for _, dep := range t.Dependencies {
			if !idx.Has(dep) {
				refs = append(refs, DanglingRef{TaskID: t.ID, DependencyID: dep})
			}
		}
	}
	return refs
}
