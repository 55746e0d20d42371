package svg

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/engine"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/layout"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/task"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/graph"
)

func sampleLayout(focus string) graph.Layout {
	tasks := []task.Task{
		{ID: "design", Title: "Design <mockups>", Status: task.StatusDone},
		{ID: "build", Title: "Build", Status: task.StatusInProgress, Priority: task.PriorityHigh, Dependencies: []string{"design"}},
		{ID: "test", Title: "Test", Status: task.StatusToDo, Dependencies: []string{"build"}},
		{ID: "docs", Title: "Docs", Status: task.StatusToDo},
	}
	return graph.FromResult(engine.Compute(tasks, focus, layout.DefaultConfig()))
}

func wellFormed(t *testing.T, data []byte) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		_, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return
			}
			t.Fatalf("invalid XML: %v", err)
		}
	}
}

func TestRender(t *testing.T) {
	out := Render(sampleLayout(""))
	wellFormed(t, out)
	s := string(out)

	for _, want := range []string{
		`viewBox="0 0 `,
		`id="node-design"`,
		`id="edge-design-build"`,
		`data-from="build" data-to="test"`,
		`Design &lt;mockups&gt;`,
		`class="node status-in-progress priority-high"`,
		`stroke-dasharray="6 4"`, // test is blocked by build
		`marker-end="url(#arrow-blocked)"`,
		`class="accent"`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
	if strings.Contains(s, "<script") {
		t.Error("Render() without WithInteractive should not embed a script")
	}
	if strings.Contains(s, "dimmed") {
		t.Error("Render() idle layout should not dim anything")
	}
}

func TestRenderFocus(t *testing.T) {
	s := string(Render(sampleLayout("build")))

	if !strings.Contains(s, `data-focus="build"`) {
		t.Error("Render() missing data-focus")
	}
	if !strings.Contains(s, `class="node status-todo dimmed" data-id="docs"`) {
		t.Error("Render() should dim unrelated task docs")
	}
	if !strings.Contains(s, `class="node status-in-progress priority-high focus"`) {
		t.Error("Render() should mark the focused task")
	}
	if strings.Contains(s, `data-id="test" data-level="2" opacity`) {
		t.Error("Render() should not dim downstream task test")
	}
}

func TestRenderOptions(t *testing.T) {
	l := sampleLayout("")
	plain := Render(l)
	full := Render(l, WithInteractive(), WithLegend(), WithTitle("Q3 & launch"))
	wellFormed(t, full)
	s := string(full)

	if !strings.Contains(s, "<script") || !strings.Contains(s, "function related(id)") {
		t.Error("WithInteractive() missing hover script")
	}
	if !strings.Contains(s, `<g class="legend">`) || !strings.Contains(s, ">Blocked</text>") {
		t.Error("WithLegend() missing legend")
	}
	if !strings.Contains(s, "<title>Q3 &amp; launch</title>") {
		t.Error("WithTitle() missing escaped title")
	}
	if len(full) <= len(plain) {
		t.Error("options should add content")
	}
}

func TestRenderEmpty(t *testing.T) {
	out := Render(graph.FromResult(engine.Compute(nil, "", layout.DefaultConfig())))
	wellFormed(t, out)
	if !strings.Contains(string(out), `viewBox="0 0 0.0 0.0"`) {
		t.Errorf("Render(empty) = %s", out)
	}
}

func TestRenderDeterministic(t *testing.T) {
	a := Render(sampleLayout("test"), WithInteractive())
	b := Render(sampleLayout("test"), WithInteractive())
	if string(a) != string(b) {
		t.Error("Render() should be deterministic")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width float64
		want  string
	}{
		{"short", 200, "short"},
		{"a very long task title indeed", 77, "a very l.."},
		{"αβγδεζηθ", 30, "α.."},
		{"x", 1, "x"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width, 14); got != tt.want {
			t.Errorf("truncate(%q, %v) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestRenderMarksCycles(t *testing.T) {
	tasks := []task.Task{
		{ID: "A", Title: "A", Dependencies: []string{"B"}},
		{ID: "B", Title: "B", Dependencies: []string{"A"}},
		{ID: "C", Title: "C", Dependencies: []string{"B"}},
	}
	out := string(Render(graph.FromResult(engine.Compute(tasks, "", layout.DefaultConfig()))))

	nodeTag := func(id string) string {
		i := strings.Index(out, `<g id="node-`+id+`"`)
		if i < 0 {
			t.Fatalf("node %s not rendered", id)
		}
		return out[i : i+strings.IndexByte(out[i:], '>')]
	}
	for _, id := range []string{"A", "B"} {
		if !strings.Contains(nodeTag(id), " cycle") {
			t.Errorf("node %s tag = %s, want cycle class", id, nodeTag(id))
		}
	}
	if strings.Contains(nodeTag("C"), " cycle") {
		t.Errorf("node C tag = %s, want no cycle class", nodeTag("C"))
	}
	if !strings.Contains(out, "Part of a dependency cycle") {
		t.Error("tooltip does not mention the cycle")
	}
}
