package highlight

import (
	"maps"
	"slices"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/route"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/task"
)

// Context is the set of nodes and connections related to a focused task.
// The zero value is the idle context: nothing is focused.
type Context struct {
	Focus              string
	RelatedNodes       map[string]bool
	RelatedConnections map[string]bool
}

// IsIdle reports whether no task is focused.
func (c Context) IsIdle() bool { return c.Focus == "" }

// HasNode reports whether id is the focus or one of its ancestors or descendants.
func (c Context) HasNode(id string) bool { return c.RelatedNodes[id] }

// HasConnection reports whether the connection id lies on a path through the focus.
func (c Context) HasConnection(id string) bool { return c.RelatedConnections[id] }

// Nodes returns the related node ids in sorted order.
func (c Context) Nodes() []string { return slices.Sorted(maps.Keys(c.RelatedNodes)) }

// Connections returns the related connection ids in sorted order.
func (c Context) Connections() []string {
	return slices.Sorted(maps.Keys(c.RelatedConnections))
}

// Dims reports whether a node should be drawn faded: a task is focused and
// id is not related to it.
func (c Context) Dims(id string) bool { return !c.IsIdle() && !c.RelatedNodes[id] }

// Compute returns the dependency closure of focus in both directions.
//
// An empty focus, or a focus that names no task in idx, yields the idle
// context. Otherwise the focus is always related. Walking upstream marks
// each edge dependency-current and continues into the dependency only when
// it has not been seen in that direction; downstream does the same with
// dependents. Each direction keeps its own visited set, so a node reached
// upstream is still expanded downstream. Dangling dependency ids never
// appear in either set.
//
// Both walks use an explicit stack and terminate on any input, including
// cycles and self references.
func Compute(focus string, idx *task.Index) Context {
	if focus == "" || !idx.Has(focus) {
		return Context{}
	}
	c := Context{
		Focus:              focus,
		RelatedNodes:       map[string]bool{focus: true},
		RelatedConnections: make(map[string]bool),
	}
	c.walk(focus, func(id string) []string {
		t, _ := idx.Get(id)
		return t.Dependencies
	}, idx, true)
	c.walk(focus, idx.Dependents, idx, false)
	return c
}

func (c Context) walk(focus string, next func(string) []string, idx *task.Index, upstream bool) {
	visited := map[string]bool{focus: true}
	stack := []string{focus}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, id := range next(cur) {
			if !idx.Has(id) {
				continue
			}
			if upstream {
				c.RelatedConnections[route.EdgeID(id, cur)] = true
			} else {
				c.RelatedConnections[route.EdgeID(cur, id)] = true
			}
			c.RelatedNodes[id] = true
			if visited[id] {
				continue
			}
			visited[id] = true
			stack = append(stack, id)
		}
	}
}
