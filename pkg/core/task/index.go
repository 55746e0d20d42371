package task

// Index resolves task ids to tasks for a single task list.
//
// The zero value is an empty index. An Index is read-only after construction
// and safe for concurrent use.
type Index struct {
	byID       map[string]int
	tasks      []Task
	dependents map[string][]string
}

// NewIndex builds an index over tasks. When the same id appears more than
// once, the first occurrence wins and later ones are dropped; tasks with an
// empty id are dropped as well. The input slice is not retained.
func NewIndex(tasks []Task) *Index {
	idx := &Index{
		byID:       make(map[string]int, len(tasks)),
		tasks:      make([]Task, 0, len(tasks)),
		dependents: make(map[string][]string),
	}
	for _, t := range tasks {
		if t.ID == "" {
			continue
		}
		if _, dup := idx.byID[t.ID]; dup {
			continue
		}
		idx.byID[t.ID] = len(idx.tasks)
		idx.tasks = append(idx.tasks, t)
	}
	for _, t := range idx.tasks {
		seen := make(map[string]bool, len(t.Dependencies))
		for _, dep := range t.Dependencies {
			if seen[dep] || !idx.Has(dep) {
				continue
			}
			seen[dep] = true
			idx.dependents[dep] = append(idx.dependents[dep], t.ID)
		}
	}
	return idx
}

// Dependents returns the ids of the tasks that list id as a dependency, in
// input order and without duplicates. The slice must not be modified.
func (x *Index) Dependents(id string) []string {
	if x == nil {
		return nil
	}
	return x.dependents[id]
}

// Get returns the task with the given id.
func (x *Index) Get(id string) (Task, bool) {
	if x == nil {
		return Task{}, false
	}
	i, ok := x.byID[id]
	if !ok {
		return Task{}, false
	}
	return x.tasks[i], true
}

// Has reports whether id names a task in the index.
func (x *Index) Has(id string) bool {
	if x == nil {
		return false
	}
	_, ok := x.byID[id]
	return ok
}

// Tasks returns the indexed tasks in input order. The slice must not be modified.
func (x *Index) Tasks() []Task {
	if x == nil {
		return nil
	}
	return x.tasks
}

// Len returns the number of indexed tasks.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return len(x.tasks)
}
