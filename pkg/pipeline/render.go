package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/graph"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/observability"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/render"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/render/nodelink"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/render/svg"
)

// Render generates output artifacts in the requested formats.
// PNG and PDF are converted from the SVG rendering, which is produced once.
func Render(ctx context.Context, l graph.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := renderFormats(ctx, l, opts)

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

func renderFormats(ctx context.Context, l graph.Layout, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	var svgData []byte
	svgOnce := func() []byte {
		if svgData == nil {
			svgData = svg.Render(l, svgOptions(opts)...)
		}
		return svgData
	}

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = svgOnce()
		case FormatPNG:
			data, err = render.ToPNG(ctx, svgOnce(), opts.Scale)
		case FormatPDF:
			data, err = render.ToPDF(ctx, svgOnce())
		case FormatJSON:
			data, err = graph.MarshalLayout(l)
		case FormatDOT:
			data = []byte(nodelink.ToDOT(l, nodelink.Options{Detailed: opts.Detailed, Ranked: true}))
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func svgOptions(opts Options) []svg.Option {
	var out []svg.Option
	if opts.Interactive {
		out = append(out, svg.WithInteractive())
	}
	if opts.Legend {
		out = append(out, svg.WithLegend())
	}
	if opts.Project != "" {
		out = append(out, svg.WithTitle(opts.Project))
	}
	return out
}
