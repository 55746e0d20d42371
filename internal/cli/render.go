package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/graph"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/pipeline"
)

// layoutSuffix marks files written by the layout command.
const layoutSuffix = ".layout.json"

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		src        sourceFlags
		geom       layoutFlags
		output     string
		formatsStr string
		opts       pipeline.Options
	)

	cmd := &cobra.Command{
		Use:   "render [tasks.json|tasks.yaml|graph.layout.json]",
		Short: "Render the task graph to SVG, PNG, PDF, DOT or JSON",
		Long: `Render the task graph to SVG, PNG, PDF, DOT or JSON.

The input is a task file, a stored project (--project), or a layout written by
'taskgraph layout'. A layout is rendered as is unless --focus moves the
highlight.

PNG and PDF output needs rsvg-convert on PATH.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc := c.config.Render
			opts.Logger = c.Logger
			opts.Formats = rc.Formats
			if cmd.Flags().Changed("format") {
				opts.Formats = pipeline.ParseFormats(formatsStr)
			}
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if !cmd.Flags().Changed("interactive") {
				opts.Interactive = rc.Interactive
			}
			if !cmd.Flags().Changed("legend") {
				opts.Legend = rc.Legend
			}
			if !cmd.Flags().Changed("scale") {
				opts.Scale = rc.Scale
			}

			if len(args) == 1 && strings.HasSuffix(args[0], layoutSuffix) {
				return c.runRenderLayout(cmd.Context(), args[0], opts, output, src.noCache)
			}

			if err := src.apply(&opts, args); err != nil {
				return err
			}
			opts.Layout = geom.resolve(cmd, c.config.Layout)
			return c.runRender(cmd.Context(), opts, &src, src.name(args), output)
		},
	}

	src.register(cmd)
	geom.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format, - for stdout) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, dot, json (comma-separated)")
	cmd.Flags().StringVar(&opts.Focus, "focus", "", "task id to highlight")
	cmd.Flags().BoolVar(&opts.Interactive, "interactive", false, "embed the hover highlight script (svg)")
	cmd.Flags().BoolVar(&opts.Legend, "legend", false, "draw a status legend (svg)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", pipeline.DefaultScale, "raster scale (png)")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "include status and assignee in node labels (dot)")

	return cmd
}

// runRender executes the whole pipeline and writes the artifacts.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, src *sourceFlags, name, output string) error {
	runner, cleanup, err := c.newRunner(ctx, src.usesStore(), src.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer cleanup()

	spinner := newSpinnerWithContext(ctx, "Rendering task graph...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		name:      name,
		output:    output,
		tasks:     result.Stats.TaskCount,
		conns:     result.Stats.ConnectionCount,
		blocked:   result.Stats.BlockedCount,
		cacheHit:  result.CacheInfo.ComputeHit && result.CacheInfo.RenderHit,
	})
}

// runRenderLayout renders a layout file written by the layout command.
func (c *CLI) runRenderLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	l, err := graph.ReadLayoutFile(input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}
	if opts.Focus != "" && opts.Focus != l.Highlight.Focus {
		c.Logger.Debug("moving highlight", "from", l.Highlight.Focus, "to", opts.Focus)
		l = l.Recompute(opts.Focus)
	}

	runner, cleanup, err := c.newRunner(ctx, false, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer cleanup()

	spinner := newSpinnerWithContext(ctx, "Rendering layout...")
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	return writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		name:      strings.TrimSuffix(input, layoutSuffix),
		output:    output,
		tasks:     len(l.Nodes),
		conns:     len(l.Connections),
		blocked:   l.Stats.Blocked,
		cacheHit:  cacheHit,
	})
}

// =============================================================================
// Output
// =============================================================================

type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	name      string // input name without extension
	output    string
	tasks     int
	conns     int
	blocked   int
	cacheHit  bool
}

// writeArtifacts writes one file per format. A single format goes to
// output when given; otherwise files are named <base>.<format>.
func writeArtifacts(p artifactWriteParams) error {
	if len(p.formats) == 1 && p.output == "-" {
		_, err := os.Stdout.Write(p.artifacts[p.formats[0]])
		return err
	}

	paths := outputPaths(p.formats, p.name, p.output)
	for _, format := range p.formats {
		path := paths[format]
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
		}
		if err := os.WriteFile(path, p.artifacts[format], 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	printSuccess("Rendered %d file(s)", len(p.formats))
	for _, format := range p.formats {
		printFile(paths[format])
	}
	printStats(p.tasks, p.conns, p.blocked, p.cacheHit)
	return nil
}

// outputPaths maps each format to its destination file.
func outputPaths(formats []string, name, output string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, name)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// basePath strips a known format extension from output, or uses name when
// output is empty.
func basePath(output, name string) string {
	if output == "" {
		return name
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
