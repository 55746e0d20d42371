package dag_test

import (
	"fmt"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/dag"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/task"
)

func ExampleFromTasks() {
	// api and ui both wait on design; "legacy" no longer exists.
	idx := task.NewIndex([]task.Task{
		{ID: "design", Title: "Design"},
		{ID: "api", Title: "API", Dependencies: []string{"design"}},
		{ID: "ui", Title: "UI", Dependencies: []string{"design", "legacy"}},
	})
	g := dag.FromTasks(idx)

	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("Edges:", len(g.Edges()))
	fmt.Println("Dependencies of ui:", g.Parents("ui"))
	// Output:
	// Nodes: 3
	// Edges: 2
	// Dependencies of ui: [design]
}
