package graph_test

import (
	"fmt"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/engine"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/layout"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/task"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/graph"
)

func ExampleFromResult() {
	tasks := []task.Task{
		{ID: "a", Title: "Spec", Status: task.StatusDone},
		{ID: "b", Title: "Build", Status: task.StatusInProgress, Dependencies: []string{"a"}},
		{ID: "c", Title: "Ship", Status: task.StatusToDo, Dependencies: []string{"b"}},
	}
	l := graph.FromResult(engine.Compute(tasks, "c", layout.DefaultConfig()))

	for _, n := range l.Nodes {
		fmt.Println(n.ID, "level", n.Level, "blocked", n.Blocked)
	}
	for _, c := range l.Connections {
		fmt.Println(c.ID, c.Path)
	}
	fmt.Println("highlight:", l.Highlight.Nodes)
	// Output:
	// a level 0 blocked false
	// b level 1 blocked false
	// c level 2 blocked true
	// a-b M 260,240 C 310,240 310,240 360,240
	// b-c M 580,240 C 630,240 630,240 680,240
	// highlight: [a b c]
}
