package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/graph"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/pipeline"
)

// layoutCommand creates the layout command for computing graph geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		src    sourceFlags
		geom   layoutFlags
		output string
		focus  string
	)

	cmd := &cobra.Command{
		Use:   "layout [tasks.json|tasks.yaml]",
		Short: "Compute the task graph and write it as JSON",
		Long: `Compute the task graph and write it as JSON.

The layout holds every task with its layer, position and style, the routed
connectors with their blocked state, and the highlight of --focus. It can be
rendered later with 'taskgraph render <file>.layout.json'.

Results are cached; use --refresh to recompute.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{Focus: focus, Logger: c.Logger}
			if err := src.apply(&opts, args); err != nil {
				return err
			}
			opts.Layout = geom.resolve(cmd, c.config.Layout)
			if output == "" {
				output = src.name(args) + ".layout.json"
			}
			return c.runLayout(cmd.Context(), opts, &src, output)
		},
	}

	src.register(cmd)
	geom.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout (default: <input>.layout.json)")
	cmd.Flags().StringVar(&focus, "focus", "", "task id to highlight")

	return cmd
}

// runLayout loads the tasks, computes the graph and writes it.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, src *sourceFlags, output string) error {
	runner, cleanup, err := c.newRunner(ctx, src.usesStore(), src.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer cleanup()

	spinner := newSpinnerWithContext(ctx, "Loading tasks...")
	spinner.Start()

	tasks, err := runner.Load(ctx, opts)
	if err != nil {
		spinner.StopWithError("Loading tasks failed")
		return err
	}

	spinner.Update("Computing graph...")
	l, computeHit, err := runner.ComputeWithCacheInfo(ctx, tasks, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute graph: %w", err)
	}
	spinner.Stop()
	c.Logger.Debug("cache", "graph_hit", computeHit)

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if output == "-" {
		return graph.WriteLayout(l, os.Stdout)
	}
	if err := graph.WriteLayoutFile(l, output); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}

	printSuccess("Layout complete")
	printFile(output)
	printStats(len(l.Nodes), len(l.Connections), l.Stats.Blocked, computeHit)
	printNewline()
	printNextStep("Render", appName+" render "+output)
	return nil
}
