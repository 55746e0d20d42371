// Package nodelink renders task graphs through Graphviz.
//
// # Overview
//
// The native SVG renderer draws tasks at the positions computed by the
// engine. This package instead emits DOT and lets Graphviz place the nodes,
// which is useful for very wide graphs and for piping into existing Graphviz
// tooling. Colours, dashed blocked connectors and focus fading follow the
// same style descriptors as the native renderer.
//
// # Usage
//
//	dot := nodelink.ToDOT(l, nodelink.Options{Ranked: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)
//
// # Options
//
//   - Detailed: node labels include status, priority, assignee and level.
//   - Ranked: tasks of one computed layer share a Graphviz rank.
//
// # Dependencies
//
// SVG rendering runs in-process through [github.com/goccy/go-graphviz].
// PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
