package svg

import (
	"bytes"
	"encoding/xml"
	"strings"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/graph"
)

// Average glyph width as a fraction of the font size.
const charWidthRatio = 0.55

// truncate shortens s so it fits in width at the given font size.
func truncate(s string, width, fontSize float64) string {
	maxChars := max(3, int(width/(fontSize*charWidthRatio)))
	r := []rune(s)
	if len(r) <= maxChars {
		return s
	}
	return string(r[:maxChars-2]) + ".."
}

func metaLine(n *graph.Node) string {
	parts := make([]string, 0, 3)
	if n.Status != "" {
		parts = append(parts, n.Status)
	}
	if n.Assignee != "" {
		parts = append(parts, n.Assignee)
	}
	if n.DueDate != "" {
		parts = append(parts, "due "+n.DueDate)
	}
	return strings.Join(parts, " · ")
}

func tooltip(n *graph.Node) string {
	var b strings.Builder
	b.WriteString(n.DisplayTitle())
	if n.Status != "" {
		b.WriteString("\nStatus: " + n.Status)
	}
	if n.Priority != "" {
		b.WriteString("\nPriority: " + n.Priority)
	}
	if n.Blocked {
		b.WriteString("\nBlocked by an unfinished dependency")
	}
	if n.InCycle {
		b.WriteString("\nPart of a dependency cycle")
	}
	return b.String()
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
