package graph

import (
	"bytes"
	"errors"
	"io/fs"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/engine"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/layout"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/task"
)

func sampleTasks() []task.Task {
	return []task.Task{
		{ID: "a", Title: "Spec", Status: task.StatusDone, Priority: task.PriorityHigh, Assignee: "kim"},
		{ID: "b", Title: "Build", Status: task.StatusInProgress, Dependencies: []string{"a", "ghost"}},
		{ID: "c", Title: "Ship", Status: task.StatusToDo, Dependencies: []string{"b"}, DueDate: "2026-11-01"},
		{ID: "d", Title: "Docs", Status: task.StatusToDo},
	}
}

func TestFromResult(t *testing.T) {
	l := FromResult(engine.Compute(sampleTasks(), "b", layout.DefaultConfig()))

	if l.Version != FormatVersion {
		t.Errorf("Version = %d, want %d", l.Version, FormatVersion)
	}
	if len(l.Nodes) != 4 {
		t.Fatalf("len(Nodes) = %d, want 4", len(l.Nodes))
	}
	if len(l.Connections) != 2 {
		t.Fatalf("len(Connections) = %d, want 2", len(l.Connections))
	}
	if got, want := l.Highlight.Nodes, []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Highlight.Nodes = %v, want %v", got, want)
	}
	if got, want := l.Layers[0], []string{"d", "a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Layers[0] = %v, want %v", got, want)
	}

	d, ok := l.Node("d")
	if !ok || !d.Dimmed {
		t.Errorf("Node(d) dimmed = %v, want true", d.Dimmed)
	}
	for _, c := range l.Connections {
		if !c.Highlighted {
			t.Errorf("connection %s not highlighted", c.ID)
		}
		if !strings.HasPrefix(c.Path, "M ") {
			t.Errorf("connection %s path = %q", c.ID, c.Path)
		}
	}
}

func TestLayoutTasksRoundTrip(t *testing.T) {
	tasks := sampleTasks()
	l := FromResult(engine.Compute(tasks, "", layout.DefaultConfig()))

	byID := map[string]task.Task{}
	for _, tk := range l.Tasks() {
		byID[tk.ID] = tk
	}
	for _, want := range tasks {
		if got := byID[want.ID]; !reflect.DeepEqual(got, want) {
			t.Errorf("Tasks()[%s] = %+v, want %+v", want.ID, got, want)
		}
	}
}

func TestRecompute(t *testing.T) {
	tasks := sampleTasks()
	l := FromResult(engine.Compute(tasks, "", layout.DefaultConfig()))
	got := l.Recompute("c")
	want := FromResult(engine.Compute(tasks, "c", layout.DefaultConfig()))

	if !reflect.DeepEqual(got.Highlight, want.Highlight) {
		t.Errorf("Recompute().Highlight = %+v, want %+v", got.Highlight, want.Highlight)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	a, err := MarshalLayout(FromResult(engine.Compute(sampleTasks(), "b", layout.DefaultConfig())))
	if err != nil {
		t.Fatalf("MarshalLayout error: %v", err)
	}
	b, _ := MarshalLayout(FromResult(engine.Compute(sampleTasks(), "b", layout.DefaultConfig())))
	if !bytes.Equal(a, b) {
		t.Error("MarshalLayout output differs between identical runs")
	}
}

func TestLayoutFileRoundTrip(t *testing.T) {
	l := FromResult(engine.Compute(sampleTasks(), "a", layout.DefaultConfig()))
	path := filepath.Join(t.TempDir(), "graph.json")

	if err := WriteLayoutFile(l, path); err != nil {
		t.Fatalf("WriteLayoutFile error: %v", err)
	}
	got, err := ReadLayoutFile(path)
	if err != nil {
		t.Fatalf("ReadLayoutFile error: %v", err)
	}
	if !reflect.DeepEqual(got.Highlight, l.Highlight) || len(got.Nodes) != len(l.Nodes) {
		t.Errorf("ReadLayoutFile() = %+v, want %+v", got.Highlight, l.Highlight)
	}
}

func TestUnmarshalLayoutErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"invalid json", `{`, "unmarshal layout"},
		{"newer version", `{"version": 99}`, "newer than supported"},
		{"node without id", `{"version": 1, "nodes": [{"title": "x"}]}`, "without id"},
		{"dangling connection", `{"version": 1, "nodes": [{"id": "a"}], "connections": [{"id": "a-b", "from": "a", "to": "b"}]}`, "unknown node"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalLayout([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("UnmarshalLayout() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestReadLayoutFileMissing(t *testing.T) {
	_, err := ReadLayoutFile(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadLayoutFile(missing) error = %v, want not-exist", err)
	}
}
