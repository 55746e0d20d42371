package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/layout"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/graph"
	taskio "github.com/tam-pham-duc/ProManage-AI-sub001/pkg/io"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/pipeline"
)

const sampleTasks = `tasks:
  - id: design
    title: Design
    status: Done
  - id: build
    title: Build
    status: In Progress
    dependencies: [design]
  - id: test
    title: Test
    status: To Do
    dependencies: [build, ghost]
`

// setupWorkspace isolates config and cache lookups and writes a task file.
func setupWorkspace(t *testing.T) (dir, tasksPath string) {
	t.Helper()
	dir = t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))

	tasksPath = filepath.Join(dir, "site.yaml")
	if err := os.WriteFile(tasksPath, []byte(sampleTasks), 0644); err != nil {
		t.Fatal(err)
	}
	return dir, tasksPath
}

func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.Execute()
}

func TestLayoutCommand(t *testing.T) {
	dir, tasksPath := setupWorkspace(t)
	out := filepath.Join(dir, "site.layout.json")

	if err := runCLI(t, "layout", tasksPath, "-o", out, "--focus", "build", "--padding", "10"); err != nil {
		t.Fatalf("layout: %v", err)
	}

	l, err := graph.ReadLayoutFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Nodes) != 3 || len(l.Connections) != 2 {
		t.Errorf("layout has %d nodes, %d connections, want 3, 2", len(l.Nodes), len(l.Connections))
	}
	if l.Config.Padding != 10 {
		t.Errorf("Padding = %v, want 10", l.Config.Padding)
	}
	if l.Highlight.Focus != "build" {
		t.Errorf("focus = %q, want build", l.Highlight.Focus)
	}
}

func TestRenderCommand(t *testing.T) {
	dir, tasksPath := setupWorkspace(t)
	base := filepath.Join(dir, "out", "graph")

	if err := runCLI(t, "render", tasksPath, "-f", "svg,dot,json", "-o", base); err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, ext := range []string{"svg", "dot", "json"} {
		data, err := os.ReadFile(base + "." + ext)
		if err != nil {
			t.Errorf("missing %s output: %v", ext, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("%s output is empty", ext)
		}
	}
}

func TestRenderFromLayout(t *testing.T) {
	dir, tasksPath := setupWorkspace(t)
	layoutPath := filepath.Join(dir, "site.layout.json")
	if err := runCLI(t, "layout", tasksPath, "-o", layoutPath); err != nil {
		t.Fatal(err)
	}

	svgPath := filepath.Join(dir, "focused.svg")
	if err := runCLI(t, "render", layoutPath, "--focus", "design", "-o", svgPath); err != nil {
		t.Fatalf("render layout: %v", err)
	}
	data, err := os.ReadFile(svgPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `data-focus="design"`) {
		t.Error("rendered layout should carry the new focus")
	}
}

func TestCheckCommandStrict(t *testing.T) {
	_, tasksPath := setupWorkspace(t)

	if err := runCLI(t, "check", tasksPath); err != nil {
		t.Errorf("check without --strict: %v", err)
	}
	err := runCLI(t, "check", tasksPath, "--strict")
	if err == nil || !strings.Contains(err.Error(), "1 dangling reference") {
		t.Errorf("check --strict error = %v, want dangling reference failure", err)
	}
}

func TestProjectFromFileStore(t *testing.T) {
	dir, _ := setupWorkspace(t)
	cfgPath := filepath.Join(dir, "taskgraph.toml")
	cfg := "[store]\nbackend = \"file\"\ndir = \"" + filepath.ToSlash(dir) + "\"\n\n[cache]\nbackend = \"none\"\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "snapshot.json")
	if err := runCLI(t, "--config", cfgPath, "export", "--project", "site", "-o", out); err != nil {
		t.Fatalf("export: %v", err)
	}
	tasks, err := taskio.ImportTasks(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 3 {
		t.Errorf("exported %d tasks, want 3", len(tasks))
	}

	if err := runCLI(t, "--config", cfgPath, "export", "--project", "nope", "-o", out); err == nil {
		t.Error("export of unknown project should fail")
	}
}

func TestMissingInput(t *testing.T) {
	setupWorkspace(t)
	if err := runCLI(t, "layout"); err == nil {
		t.Error("layout without input should fail")
	}
}

func TestSourceFlagsApply(t *testing.T) {
	tests := []struct {
		name        string
		project     string
		args        []string
		wantInput   string
		wantProject string
		wantErr     bool
	}{
		{"file", "", []string{"tasks.json"}, "tasks.json", "", false},
		{"project", "site", nil, "", "site", false},
		{"both", "site", []string{"tasks.json"}, "", "", true},
		{"neither", "", nil, "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := sourceFlags{project: tt.project, refresh: true}
			var opts pipeline.Options
			err := f.apply(&opts, tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("apply() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if opts.Input != tt.wantInput || opts.Project != tt.wantProject || !opts.Refresh {
				t.Errorf("apply() = %+v", opts)
			}
		})
	}
}

func TestLayoutFlagsResolve(t *testing.T) {
	var f layoutFlags
	cmd := &cobra.Command{Use: "x", Run: func(*cobra.Command, []string) {}}
	f.register(cmd)
	if err := cmd.ParseFlags([]string{"--x-gap", "60"}); err != nil {
		t.Fatal(err)
	}

	base := layout.DefaultConfig()
	base.NodeWidth = 300
	got := f.resolve(cmd, base)

	if got.XGap != 60 {
		t.Errorf("XGap = %v, want 60", got.XGap)
	}
	if got.NodeWidth != 300 {
		t.Errorf("NodeWidth = %v, want configured 300", got.NodeWidth)
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		input   string
		output  string
		want    map[string]string
	}{
		{"single to output", []string{"svg"}, "tasks", "graph.svg", map[string]string{"svg": "graph.svg"}},
		{"single from input", []string{"png"}, "tasks", "", map[string]string{"png": "tasks.png"}},
		{"multiple strip ext", []string{"svg", "pdf"}, "tasks", "out/graph.svg", map[string]string{"svg": "out/graph.svg", "pdf": "out/graph.pdf"}},
		{"multiple keep unknown ext", []string{"svg", "dot"}, "tasks", "graph.v2", map[string]string{"svg": "graph.v2.svg", "dot": "graph.v2.dot"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPaths(tt.formats, tt.input, tt.output)
			for f, want := range tt.want {
				if got[f] != want {
					t.Errorf("outputPaths()[%s] = %q, want %q", f, got[f], want)
				}
			}
		})
	}
}

func TestCacheClearByStage(t *testing.T) {
	dir, tasksPath := setupWorkspace(t)
	cacheDir := filepath.Join(dir, "cache", "taskgraph")
	out := filepath.Join(dir, "out", "graph.svg")

	if err := runCLI(t, "render", tasksPath, "-o", out); err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, stage := range []string{"graph", "artifact"} {
		if _, err := os.Stat(filepath.Join(cacheDir, stage)); err != nil {
			t.Fatalf("render left no %s entries: %v", stage, err)
		}
	}

	if err := runCLI(t, "cache", "clear", "--stage", "artifact"); err != nil {
		t.Fatalf("cache clear --stage artifact: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cacheDir, "artifact")); !os.IsNotExist(err) {
		t.Errorf("artifact entries survived: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cacheDir, "graph")); err != nil {
		t.Errorf("graph entries removed: %v", err)
	}

	if err := runCLI(t, "cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cacheDir, "graph")); !os.IsNotExist(err) {
		t.Errorf("graph entries survived: %v", err)
	}

	if err := runCLI(t, "cache", "clear", "--stage", "tasks"); err == nil {
		t.Error("cache clear --stage tasks should fail")
	}
}

func TestQuoteArg(t *testing.T) {
	tests := map[string]string{
		"t1":         "t1",
		"task 1":     "'task 1'",
		"it's":       `'it'\''s'`,
		"65f1c0a9e4": "65f1c0a9e4",
	}
	for in, want := range tests {
		if got := quoteArg(in); got != want {
			t.Errorf("quoteArg(%q) = %q, want %q", in, got, want)
		}
	}
}
