package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/style"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/graph"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds status, priority, assignee and level to node labels.
	// When false, only the title is shown.
	Detailed bool

	// Ranked pins each task to its computed layer with rank=same groups.
	// Without it Graphviz ranks nodes on its own.
	Ranked bool
}

// ToDOT converts a computed layout to Graphviz DOT. Layers run left to
// right, like the native renderer. Node colours come from the style
// descriptors, blocked connectors are dashed red and faded tasks keep their
// reduced opacity through a translucent fill.
func ToDOT(l graph.Layout, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontname=\"Helvetica\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [arrowsize=0.7];\n")
	buf.WriteString("  ranksep=0.8;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for i := range l.Nodes {
		n := &l.Nodes[i]
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(nodeAttrs(n, opts.Detailed), ", "))
	}

	if opts.Ranked {
		buf.WriteString("\n")
		for _, level := range slices.Sorted(maps.Keys(l.Layers)) {
			ids := l.Layers[level]
			quoted := make([]string, len(ids))
			for i, id := range ids {
				quoted[i] = strconv.Quote(id)
			}
			fmt.Fprintf(&buf, "  { rank=same; %s; }\n", strings.Join(quoted, "; "))
		}
	}

	buf.WriteString("\n")
	for _, c := range l.Connections {
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", c.From, c.To, strings.Join(edgeAttrs(c), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n *graph.Node, detailed bool) string {
	if !detailed {
		return n.DisplayTitle()
	}
	parts := []string{n.DisplayTitle(), "status: " + n.Status}
	if n.Priority != "" {
		parts = append(parts, "priority: "+n.Priority)
	}
	if n.Assignee != "" {
		parts = append(parts, "assignee: "+n.Assignee)
	}
	parts = append(parts, fmt.Sprintf("level: %d", n.Level))
	return strings.Join(parts, "\n")
}

func nodeAttrs(n *graph.Node, detailed bool) []string {
	d := n.Style
	fill, border, text := d.Fill, d.Border, d.Text
	if n.Dimmed {
		fill, border, text = fill+"59", border+"59", text+"59"
	}
	attrs := []string{
		fmt.Sprintf("label=%q", fmtLabel(n, detailed)),
		fmt.Sprintf("fillcolor=%q", fill),
		fmt.Sprintf("color=%q", border),
		fmt.Sprintf("fontcolor=%q", text),
	}
	if d.Dashed {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"")
	}
	if n.Blocked {
		attrs = append(attrs, "penwidth=2")
	}
	return attrs
}

func edgeAttrs(c graph.Connection) []string {
	s := c.Stroke
	color := s.Color
	if s.Opacity < 1 {
		color += "33"
	}
	attrs := []string{
		fmt.Sprintf("id=%q", c.ID),
		fmt.Sprintf("color=%q", color),
		fmt.Sprintf("penwidth=%s", strconv.FormatFloat(s.Width/style.EdgeWidth, 'f', -1, 64)),
	}
	if s.Dashed {
		attrs = append(attrs, "style=dashed")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-based svg header with a pixel one
// anchored at the origin.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion at the given scale.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
