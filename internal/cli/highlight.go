package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/graph"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/pipeline"
)

// highlightCommand creates the highlight command, which lists everything
// upstream and downstream of one task.
func (c *CLI) highlightCommand() *cobra.Command {
	var (
		src     sourceFlags
		focus   string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "highlight [tasks.json|tasks.yaml] --focus <task-id>",
		Short: "List the tasks and connections related to one task",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{Focus: focus, Logger: c.Logger, Layout: c.config.Layout}
			if err := src.apply(&opts, args); err != nil {
				return err
			}
			return c.runHighlight(cmd.Context(), opts, &src, jsonOut)
		},
	}

	src.register(cmd)
	cmd.Flags().StringVar(&focus, "focus", "", "task id to highlight")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the highlight as JSON")
	_ = cmd.MarkFlagRequired("focus")

	return cmd
}

func (c *CLI) runHighlight(ctx context.Context, opts pipeline.Options, src *sourceFlags, jsonOut bool) error {
	runner, cleanup, err := c.newRunner(ctx, src.usesStore(), src.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer cleanup()

	tasks, err := runner.Load(ctx, opts)
	if err != nil {
		return err
	}
	l, err := runner.Compute(ctx, tasks, opts)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(l.Highlight)
	}

	if l.Highlight.IsIdle() {
		printWarning("Task %q not found; nothing to highlight", opts.Focus)
		return nil
	}
	printHighlight(l)
	return nil
}

// printHighlight prints the related tasks grouped by their side of the focus.
func printHighlight(l graph.Layout) {
	focus, _ := l.Node(l.Highlight.Focus)
	related := make(map[string]bool, len(l.Highlight.Nodes))
	for _, id := range l.Highlight.Nodes {
		related[id] = true
	}

	var upstream, downstream []graph.Node
	for _, n := range l.Nodes {
		if !related[n.ID] || n.ID == focus.ID {
			continue
		}
		if n.Level < focus.Level {
			upstream = append(upstream, n)
		} else {
			downstream = append(downstream, n)
		}
	}

	fmt.Println(StyleTitle.Render("Focus"))
	printTask(focus.Task(), focus.Blocked)
	printNewline()

	fmt.Println(StyleTitle.Render(fmt.Sprintf("Upstream (%d)", len(upstream))))
	for _, n := range upstream {
		printTask(n.Task(), n.Blocked)
	}
	printNewline()

	fmt.Println(StyleTitle.Render(fmt.Sprintf("Downstream (%d)", len(downstream))))
	for _, n := range downstream {
		printTask(n.Task(), n.Blocked)
	}
	printNewline()

	printList("connections", l.Highlight.Connections)
}
