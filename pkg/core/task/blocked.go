package task

// IsBlocked reports whether t has at least one dependency that resolves to a
// known task whose status is not done.
//
// Dependencies that do not resolve are ignored, so a task whose only
// dependency was deleted is not blocked. An unrecognized status on the
// dependency counts as not done. A task that names itself is blocked by
// itself until it is done.
func IsBlocked(t Task, idx *Index) bool {
	for _, id := range t.Dependencies {
		if DependencyBlocks(id, idx) {
			return true
		}
	}
	return false
}

// DependencyBlocks reports whether the single dependency id keeps its
// dependent blocked. The connector router calls this for every edge so that
// edge state and task state are computed by the same rule.
func DependencyBlocks(depID string, idx *Index) bool {
	dep, ok := idx.Get(depID)
	if !ok {
		return false
	}
	return !dep.Status.IsDone()
}

// BlockedBy returns the dependency ids of t that currently block it, in
// declaration order and without duplicates.
func BlockedBy(t Task, idx *Index) []string {
	var out []string
	seen := make(map[string]bool, len(t.Dependencies))
	for _, id := range t.Dependencies {
		if seen[id] {
			continue
		}
		seen[id] = true
		if DependencyBlocks(id, idx) {
			out = append(out, id)
		}
	}
	return out
}
