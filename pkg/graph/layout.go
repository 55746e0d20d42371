package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/engine"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/layout"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/route"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/style"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/task"
)

// FormatVersion is written to every serialized layout.
const FormatVersion = 1

// =============================================================================
// Layout - Serialized Graph
// =============================================================================

// Layout is the canonical serialization of a computed task graph, used for
// JSON files, API responses and the cache.
//
// Node and connection order follows the engine result, and highlight sets
// are sorted, so the same input always serializes to the same bytes.
type Layout struct {
	Version     int              `json:"version"`
	Width       float64          `json:"width"`
	Height      float64          `json:"height"`
	Config      layout.Config    `json:"config"`
	Nodes       []Node           `json:"nodes"`
	Connections []Connection     `json:"connections"`
	Layers      map[int][]string `json:"layers,omitempty"`
	Highlight   Highlight        `json:"highlight"`
	Stats       engine.Stats     `json:"stats"`
}

// Node is one positioned task.
type Node struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Status       string           `json:"status"`
	Priority     string           `json:"priority,omitempty"`
	Assignee     string           `json:"assignee,omitempty"`
	DueDate      string           `json:"dueDate,omitempty"`
	Dependencies []string         `json:"dependencies,omitempty"`
	Level        int              `json:"level"`
	X            float64          `json:"x"`
	Y            float64          `json:"y"`
	Width        float64          `json:"width"`
	Height       float64          `json:"height"`
	Blocked      bool             `json:"blocked"`
	InCycle      bool             `json:"inCycle,omitempty"`
	Dimmed       bool             `json:"dimmed,omitempty"`
	Style        style.Descriptor `json:"style"`
}

// DisplayTitle returns the title, or the ID for untitled tasks.
func (n *Node) DisplayTitle() string {
	if n.Title != "" {
		return n.Title
	}
	return n.ID
}

// Task returns the task the node was computed from.
func (n *Node) Task() task.Task {
	return task.Task{
		ID:           n.ID,
		Title:        n.Title,
		Status:       task.Status(n.Status),
		Priority:     task.Priority(n.Priority),
		Dependencies: n.Dependencies,
		Assignee:     n.Assignee,
		DueDate:      n.DueDate,
	}
}

// Connection is one routed dependency edge.
type Connection struct {
	ID          string       `json:"id"`
	From        string       `json:"from"`
	To          string       `json:"to"`
	Path        string       `json:"path"` // SVG path data
	Curve       route.Path   `json:"curve"`
	Blocked     bool         `json:"blocked"`
	Highlighted bool         `json:"highlighted,omitempty"`
	Stroke      style.Stroke `json:"stroke"`
}

// Highlight is the serialized highlight context.
type Highlight struct {
	Focus       string   `json:"focus,omitempty"`
	Nodes       []string `json:"nodes"`
	Connections []string `json:"connections"`
}

// IsIdle reports whether no task is focused.
func (h Highlight) IsIdle() bool { return h.Focus == "" }

// =============================================================================
// Conversion
// =============================================================================

// FromResult converts an engine result to its serialized form.
func FromResult(r engine.Result) Layout {
	out := Layout{
		Version:     FormatVersion,
		Width:       r.Width,
		Height:      r.Height,
		Config:      r.Config,
		Nodes:       make([]Node, 0, len(r.Nodes)),
		Connections: make([]Connection, 0, len(r.Connections)),
		Layers:      make(map[int][]string),
		Highlight: Highlight{
			Focus:       r.Highlight.Focus,
			Nodes:       r.Highlight.Nodes(),
			Connections: r.Highlight.Connections(),
		},
		Stats: r.Stats,
	}
	for _, n := range r.Nodes {
		out.Nodes = append(out.Nodes, Node{
			ID:           n.ID,
			Title:        n.Title,
			Status:       string(n.Status),
			Priority:     string(n.Priority),
			Assignee:     n.Assignee,
			DueDate:      n.DueDate,
			Dependencies: n.Dependencies,
			Level:        n.Level,
			X:            n.X,
			Y:            n.Y,
			Width:        n.Width,
			Height:       n.Height,
			Blocked:      n.Blocked,
			InCycle:      n.InCycle,
			Dimmed:       r.Dimmed(n.ID),
			Style:        n.Style,
		})
		out.Layers[n.Level] = append(out.Layers[n.Level], n.ID)
	}
	for _, c := range r.Connections {
		out.Connections = append(out.Connections, Connection{
			ID:          c.ID,
			From:        c.ParentID,
			To:          c.ChildID,
			Path:        c.Path.SVG(),
			Curve:       c.Path,
			Blocked:     c.IsBlocked,
			Highlighted: r.Highlight.HasConnection(c.ID),
			Stroke:      r.EdgeStroke(c),
		})
	}
	return out
}

// Tasks returns the task list the layout was computed from, in node order.
func (l Layout) Tasks() []task.Task {
	tasks := make([]task.Task, len(l.Nodes))
	for i := range l.Nodes {
		tasks[i] = l.Nodes[i].Task()
	}
	return tasks
}

// Node returns the node with the given ID.
func (l Layout) Node(id string) (Node, bool) {
	for _, n := range l.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Recompute runs the engine again on the layout's tasks with a new focus.
func (l Layout) Recompute(focus string) Layout {
	return FromResult(engine.Compute(l.Tasks(), focus, l.Config))
}

// =============================================================================
// Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteLayout(l, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteLayout writes a Layout as JSON to w.
func WriteLayout(l Layout, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// UnmarshalLayout deserializes JSON bytes into a Layout and checks that
// every connection joins two nodes of the layout.
func UnmarshalLayout(data []byte) (Layout, error) {
	return ReadLayout(bytes.NewReader(data))
}

// ReadLayout decodes a Layout from r. See UnmarshalLayout.
func ReadLayout(r io.Reader) (Layout, error) {
	var l Layout
	if err := json.NewDecoder(r).Decode(&l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}
	if l.Version > FormatVersion {
		return Layout{}, fmt.Errorf("layout version %d is newer than supported version %d", l.Version, FormatVersion)
	}
	ids := make(map[string]bool, len(l.Nodes))
	for _, n := range l.Nodes {
		if n.ID == "" {
			return Layout{}, fmt.Errorf("layout node without id")
		}
		ids[n.ID] = true
	}
	for _, c := range l.Connections {
		if !ids[c.From] || !ids[c.To] {
			return Layout{}, fmt.Errorf("connection %s references unknown node", c.ID)
		}
	}
	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
