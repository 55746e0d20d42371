package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/dag/transform"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/pipeline"
)

// checkCommand creates the check command, which reports blocked tasks,
// dangling dependency references and dependency cycles.
func (c *CLI) checkCommand() *cobra.Command {
	var (
		src     sourceFlags
		strict  bool
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "check [tasks.json|tasks.yaml]",
		Short: "Report blocked tasks, dangling dependencies and cycles",
		Long: `Report blocked tasks, dangling dependencies and cycles.

Dangling references and cycles never stop a graph from being drawn, but they
usually point at stale data. With --strict the command fails when any are
found, which suits CI checks of task files.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{Logger: c.Logger}
			if err := src.apply(&opts, args); err != nil {
				return err
			}
			return c.runCheck(cmd.Context(), opts, &src, strict, jsonOut)
		},
	}

	src.register(cmd)
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when dangling references or cycles are found")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the report as JSON")

	return cmd
}

func (c *CLI) runCheck(ctx context.Context, opts pipeline.Options, src *sourceFlags, strict, jsonOut bool) error {
	runner, cleanup, err := c.newRunner(ctx, src.usesStore(), src.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer cleanup()

	tasks, err := runner.Load(ctx, opts)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	d := pipeline.Diagnose(tasks)
	prog.done("checked tasks", "tasks", d.Tasks)

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return err
		}
	} else {
		printDiagnostics(d)
	}

	if strict && !d.OK() {
		return fmt.Errorf("%d dangling reference(s), %d cycle(s)", len(d.Dangling), len(d.Cycles))
	}
	return nil
}

func printDiagnostics(d pipeline.Diagnostics) {
	printKeyValue("tasks", StyleNumber.Render(strconv.Itoa(d.Tasks)))
	printKeyValue("levels", fmt.Sprintf("%d pass(es)", d.Levels.Passes))
	printList("blocked", d.Blocked)

	inCycle := transform.CycleMembers(d.Cycles)
	for _, id := range d.Blocked {
		line := fmt.Sprintf("  %s %s waits on %s", styleBlocked.Render(iconBlocked), id, strings.Join(d.BlockedBy[id], ", "))
		if inCycle[id] {
			line += StyleWarning.Render(" (in cycle)")
		}
		fmt.Println(line)
	}
	printNewline()

	if d.OK() {
		printSuccess("No dangling references or cycles")
		return
	}
	for _, r := range d.Dangling {
		printWarning("%s depends on unknown task %s", r.TaskID, r.DependencyID)
	}
	for _, cycle := range d.Cycles {
		printWarning("cycle: %s", strings.Join(append(slices.Clone(cycle), cycle[0]), " "+iconArrow+" "))
	}
}
