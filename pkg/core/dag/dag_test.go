package dag

import (
	"errors"
	"slices"
	"testing"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/task"
)

func ids(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}

func TestAddNode(t *testing.T) {
	g := New()
	if err := g.AddNode(Node{ID: "a"}); err != nil {
		t.Fatalf("AddNode(a) error: %v", err)
	}
	if err := g.AddNode(Node{ID: ""}); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("AddNode(\"\") = %v, want %v", err, ErrInvalidNodeID)
	}
	if err := g.AddNode(Node{ID: "a"}); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("AddNode(a) twice = %v, want %v", err, ErrDuplicateNodeID)
	}
	if g.NodeCount() != 1 {
		t.Errorf("NodeCount() = %d, want 1", g.NodeCount())
	}
	if g.Nodes()[0].Meta == nil {
		t.Error("Meta is nil, want empty map")
	}
}

func TestAddEdge(t *testing.T) {
	g := New()
	_ = g.AddNode(Node{ID: "a"})
	_ = g.AddNode(Node{ID: "b"})

	tests := []struct {
		name string
		edge Edge
		want error
	}{
		{"valid", Edge{From: "a", To: "b"}, nil},
		{"duplicate", Edge{From: "a", To: "b"}, nil},
		{"self loop", Edge{From: "a", To: "a"}, nil},
		{"unknown source", Edge{From: "x", To: "b"}, ErrUnknownSourceNode},
		{"unknown target", Edge{From: "a", To: "x"}, ErrUnknownTargetNode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := g.AddEdge(tt.edge); !errors.Is(err, tt.want) {
				t.Errorf("AddEdge(%v) = %v, want %v", tt.edge, err, tt.want)
			}
		})
	}

	want := []Edge{{From: "a", To: "b"}, {From: "a", To: "a"}}
	if got := g.Edges(); !slices.Equal(got, want) {
		t.Errorf("Edges() = %v, want %v", got, want)
	}
	if got := g.Parents("b"); !slices.Equal(got, []string{"a"}) {
		t.Errorf("Parents(b) = %v, want [a]", got)
	}
	if got := g.Parents("a"); !slices.Equal(got, []string{"a"}) {
		t.Errorf("Parents(a) = %v, want [a]", got)
	}
}

func TestRowIDs(t *testing.T) {
	g := New()
	for _, id := range []string{"a", "b", "c"} {
		_ = g.AddNode(Node{ID: id})
	}
	g.SetRows(map[string]int{"a": 0, "b": 2, "c": 2, "ghost": 7})

	if got := g.RowIDs(); !slices.Equal(got, []int{0, 2}) {
		t.Errorf("RowIDs() = %v, want [0 2]", got)
	}
}

func TestFromTasks(t *testing.T) {
	idx := task.NewIndex([]task.Task{
		{ID: "a", Title: "Alpha", Status: task.StatusDone, Priority: task.PriorityHigh},
		{ID: "b", Dependencies: []string{"a", "a", "ghost"}},
		{ID: "c", Dependencies: []string{"c", "b"}},
	})
	g := FromTasks(idx)

	if got := ids(g.Nodes()); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("Nodes() = %v, want [a b c]", got)
	}
	want := []Edge{{From: "a", To: "b"}, {From: "c", To: "c"}, {From: "b", To: "c"}}
	if got := g.Edges(); !slices.Equal(got, want) {
		t.Errorf("Edges() = %v, want %v", got, want)
	}
	a := g.Nodes()[0]
	if a.Meta[MetaTitle] != "Alpha" || a.Meta[MetaStatus] != "Done" || a.Meta[MetaPriority] != "High" {
		t.Errorf("a.Meta = %v", a.Meta)
	}
}
