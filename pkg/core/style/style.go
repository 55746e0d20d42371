package style

import (
	"strings"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/task"
)

// Palette colours, as CSS hex strings.
const (
	Slate100  = "#f1f5f9"
	Slate400  = "#94a3b8"
	Slate700  = "#334155"
	Blue100   = "#dbeafe"
	Blue500   = "#3b82f6"
	Blue900   = "#1e3a8a"
	Violet100 = "#ede9fe"
	Violet500 = "#8b5cf6"
	Violet900 = "#4c1d95"
	Green100  = "#dcfce7"
	Green500  = "#22c55e"
	Green900  = "#14532d"
	Red50     = "#fef2f2"
	Red500    = "#ef4444"
	Red600    = "#dc2626"
	Red900    = "#7f1d1d"
	Orange500 = "#f97316"
	Gray100   = "#f3f4f6"
	Gray400   = "#9ca3af"
	Gray700   = "#374151"
)

// Descriptor is the visual treatment of one task node.
type Descriptor struct {
	Fill   string `json:"fill"`
	Border string `json:"border"`
	Text   string `json:"text"`
	Accent string `json:"accent"` // priority stripe
	Dashed bool   `json:"dashed"` // blocked tasks get a dashed border
	Class  string `json:"class"`  // CSS classes for the SVG sink
}

type base struct {
	fill, border, text, token string
}

var statusBase = map[task.Status]base{
	task.StatusToDo:       {Slate100, Slate400, Slate700, "todo"},
	task.StatusInProgress: {Blue100, Blue500, Blue900, "in-progress"},
	task.StatusInReview:   {Violet100, Violet500, Violet900, "in-review"},
	task.StatusDone:       {Green100, Green500, Green900, "done"},
}

var unknownBase = base{Gray100, Gray400, Gray700, "unknown"}

var priorityAccent = map[task.Priority]string{
	task.PriorityLow:    Slate400,
	task.PriorityMedium: Blue500,
	task.PriorityHigh:   Orange500,
	task.PriorityUrgent: Red600,
}

// For returns the descriptor for a task in the given state.
//
// Status picks the base colours. A blocked task keeps its status text colour
// but is drawn on a red tint with a dashed red border. Priority only sets
// the accent; unknown priorities get no accent.
func For(status task.Status, blocked bool, priority task.Priority) Descriptor {
	b, ok := statusBase[status]
	if !ok {
		b = unknownBase
	}
	d := Descriptor{
		Fill:   b.fill,
		Border: b.border,
		Text:   b.text,
		Accent: priorityAccent[priority],
	}
	classes := []string{"node", "status-" + b.token}
	if blocked {
		d.Fill = Red50
		d.Border = Red500
		d.Dashed = true
		classes = append(classes, "blocked")
	}
	if priority.IsKnown() {
		classes = append(classes, "priority-"+strings.ToLower(string(priority)))
	}
	d.Class = strings.Join(classes, " ")
	return d
}

// ForTask is For applied to a task and its evaluated blocked state.
func ForTask(t task.Task, blocked bool) Descriptor {
	return For(t.Status, blocked, t.Priority)
}

// Stroke is the visual treatment of one connection.
type Stroke struct {
	Color   string  `json:"color"`
	Width   float64 `json:"width"`
	Dashed  bool    `json:"dashed"`
	Opacity float64 `json:"opacity"`
	Class   string  `json:"class"`
}

// Edge stroke widths.
const (
	EdgeWidth          = 2.0
	HighlightEdgeWidth = 3.0
	DimmedOpacity      = 0.2
)

// EdgeStyle returns the stroke for a connection. Blocked connections are
// red and dashed. Highlighted connections are drawn thicker. Dimmed
// connections, those outside the current focus, fade out; highlighting
// wins when both are set.
func EdgeStyle(blocked, highlighted, dimmed bool) Stroke {
	s := Stroke{Color: Slate400, Width: EdgeWidth, Opacity: 1}
	classes := []string{"edge"}
	if blocked {
		s.Color = Red500
		s.Dashed = true
		classes = append(classes, "blocked")
	}
	switch {
	case highlighted:
		s.Width = HighlightEdgeWidth
		if !blocked {
			s.Color = Blue500
		}
		classes = append(classes, "highlighted")
	case dimmed:
		s.Opacity = DimmedOpacity
		classes = append(classes, "dimmed")
	}
	s.Class = strings.Join(classes, " ")
	return s
}

// DashArray returns the SVG stroke-dasharray for a dashed stroke, or "".
func DashArray(dashed bool) string {
	if dashed {
		return "6 4"
	}
	return ""
}
