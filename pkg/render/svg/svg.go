package svg

import (
	"bytes"
	"fmt"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/style"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/graph"
)

const (
	cornerRadius   = 8.0
	accentWidth    = 6.0
	titleFontSize  = 14.0
	metaFontSize   = 11.0
	textInset      = 14.0
	nodeDimOpacity = 0.35
	arrowID        = "arrow"
	blockedArrowID = "arrow-blocked"
)

// Option configures SVG rendering.
type Option func(*renderer)

type renderer struct {
	interactive bool
	legend      bool
	title       string
}

// WithInteractive embeds the hover script: pointing at a task highlights
// everything upstream and downstream of it and dims the rest.
func WithInteractive() Option { return func(r *renderer) { r.interactive = true } }

// WithLegend appends a status legend below the graph.
func WithLegend() Option { return func(r *renderer) { r.legend = true } }

// WithTitle sets the document <title>.
func WithTitle(s string) Option { return func(r *renderer) { r.title = s } }

// Render draws a computed layout as a standalone SVG document.
//
// Nodes and connectors are drawn at the positions stored in the layout.
// When the layout carries a focus, tasks and connectors outside the
// highlight are faded.
func Render(l graph.Layout, opts ...Option) []byte {
	var r renderer
	for _, opt := range opts {
		opt(&r)
	}

	width, height := l.Width, l.Height
	if r.legend {
		width = max(width, legendWidth())
		height += legendHeight
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f" class="taskgraph"`,
		width, height, width, height)
	if !l.Highlight.IsIdle() {
		fmt.Fprintf(&buf, ` data-focus="%s"`, escapeXML(l.Highlight.Focus))
	}
	buf.WriteString(">\n")
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escapeXML(r.title))
	}

	renderDefs(&buf)
	renderEdges(&buf, l)
	renderNodes(&buf, l)
	if r.legend {
		renderLegend(&buf, l.Height)
	}
	renderStyle(&buf)
	if r.interactive {
		renderScript(&buf)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderDefs(buf *bytes.Buffer) {
	buf.WriteString("  <defs>\n")
	for _, m := range []struct{ id, color string }{{arrowID, style.Slate400}, {blockedArrowID, style.Red500}} {
		fmt.Fprintf(buf, `    <marker id="%s" viewBox="0 0 10 10" refX="9" refY="5" markerWidth="6" markerHeight="6" orient="auto-start-reverse">`+
			`<path d="M 0 0 L 10 5 L 0 10 z" fill="%s"/></marker>`+"\n", m.id, m.color)
	}
	buf.WriteString("  </defs>\n")
}

func renderEdges(buf *bytes.Buffer, l graph.Layout) {
	buf.WriteString("  <g class=\"edges\">\n")
	for _, c := range l.Connections {
		s := c.Stroke
		marker := arrowID
		if c.Blocked {
			marker = blockedArrowID
		}
		fmt.Fprintf(buf, `    <path id="edge-%s" class="%s" data-from="%s" data-to="%s" d="%s" fill="none" stroke="%s" stroke-width="%.1f"`,
			escapeXML(c.ID), s.Class, escapeXML(c.From), escapeXML(c.To), c.Path, s.Color, s.Width)
		if dash := style.DashArray(s.Dashed); dash != "" {
			fmt.Fprintf(buf, ` stroke-dasharray="%s"`, dash)
		}
		if s.Opacity < 1 {
			fmt.Fprintf(buf, ` opacity="%.2f"`, s.Opacity)
		}
		fmt.Fprintf(buf, ` marker-end="url(#%s)"/>`+"\n", marker)
	}
	buf.WriteString("  </g>\n")
}

func renderNodes(buf *bytes.Buffer, l graph.Layout) {
	buf.WriteString("  <g class=\"nodes\">\n")
	for i := range l.Nodes {
		renderNode(buf, &l.Nodes[i], l.Highlight)
	}
	buf.WriteString("  </g>\n")
}

func renderNode(buf *bytes.Buffer, n *graph.Node, h graph.Highlight) {
	d := n.Style
	class := d.Class
	if n.Dimmed {
		class += " dimmed"
	}
	if n.ID == h.Focus {
		class += " focus"
	}
	if n.InCycle {
		class += " cycle"
	}

	fmt.Fprintf(buf, `    <g id="node-%s" class="%s" data-id="%s" data-level="%d"`,
		escapeXML(n.ID), class, escapeXML(n.ID), n.Level)
	if n.Dimmed {
		fmt.Fprintf(buf, ` opacity="%.2f"`, nodeDimOpacity)
	}
	buf.WriteString(">\n")

	fmt.Fprintf(buf, "      <title>%s</title>\n", escapeXML(tooltip(n)))
	fmt.Fprintf(buf, `      <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" fill="%s" stroke="%s" stroke-width="2"`,
		n.X, n.Y, n.Width, n.Height, cornerRadius, d.Fill, d.Border)
	if dash := style.DashArray(d.Dashed); dash != "" {
		fmt.Fprintf(buf, ` stroke-dasharray="%s"`, dash)
	}
	buf.WriteString("/>\n")

	if d.Accent != "" {
		fmt.Fprintf(buf, `      <rect class="accent" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			n.X+1, n.Y+cornerRadius, accentWidth, max(0, n.Height-2*cornerRadius), d.Accent)
	}

	textX := n.X + textInset
	avail := n.Width - 2*textInset
	fmt.Fprintf(buf, `      <text class="title" x="%.1f" y="%.1f" font-size="%.0f" font-weight="600" fill="%s">%s</text>`+"\n",
		textX, n.Y+n.Height/2-2, titleFontSize, d.Text, escapeXML(truncate(n.DisplayTitle(), avail, titleFontSize)))
	if meta := metaLine(n); meta != "" {
		fmt.Fprintf(buf, `      <text class="meta" x="%.1f" y="%.1f" font-size="%.0f" fill="%s">%s</text>`+"\n",
			textX, n.Y+n.Height/2+metaFontSize+4, metaFontSize, d.Text, escapeXML(truncate(meta, avail, metaFontSize)))
	}
	buf.WriteString("    </g>\n")
}
