// Package render turns computed task graphs into images.
//
// # Overview
//
// Rendering always starts from a [graph.Layout], the serialized engine
// result, so a layout read back from a JSON file or the cache renders the
// same way as a freshly computed one.
//
//   - [svg]: the native renderer. Draws nodes at their computed positions
//     with the connector curves, blocked styling and focus dimming, and can
//     embed a hover script that highlights related tasks in the browser.
//   - [nodelink]: emits Graphviz DOT and lets Graphviz do its own layout,
//     for users who want to post-process the graph with Graphviz tools.
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG using the external rsvg-convert tool
// from librsvg:
//
//	out := svg.Render(l, svg.WithLegend())
//	pdf, err := render.ToPDF(ctx, out)
//	png, err := render.ToPNG(ctx, out, 2.0)
//
// Conversion fails with an UNSUPPORTED error when rsvg-convert is missing.
//
// [graph.Layout]: github.com/tam-pham-duc/ProManage-AI-sub001/pkg/graph.Layout
// [svg]: github.com/tam-pham-duc/ProManage-AI-sub001/pkg/render/svg
// [nodelink]: github.com/tam-pham-duc/ProManage-AI-sub001/pkg/render/nodelink
package render
