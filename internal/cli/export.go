package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	taskio "github.com/tam-pham-duc/ProManage-AI-sub001/pkg/io"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/pipeline"
)

// exportCommand creates the export command, which snapshots a stored
// project into a task file the other commands can read offline.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		src    sourceFlags
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "export --project <id>",
		Short: "Write the tasks of a stored project to a JSON or YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{Logger: c.Logger}
			if err := src.apply(&opts, args); err != nil {
				return err
			}
			if output == "" {
				output = src.project + "." + format
			}
			return c.runExport(cmd.Context(), opts, &src, output, format)
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout (default: <project>.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", string(taskio.FormatJSON), "format for stdout or an output without extension: json, yaml")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func (c *CLI) runExport(ctx context.Context, opts pipeline.Options, src *sourceFlags, output, format string) error {
	f, err := taskio.ParseFormat(format)
	if err != nil {
		return err
	}

	runner, cleanup, err := c.newRunner(ctx, true, src.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer cleanup()

	tasks, err := runner.Load(ctx, opts)
	if err != nil {
		return err
	}

	if output == "-" {
		return taskio.WriteTasks(os.Stdout, tasks, f)
	}
	if filepath.Ext(output) == "" {
		output += "." + string(f)
	}
	if err := taskio.ExportTasks(tasks, output); err != nil {
		return err
	}

	printSuccess("Exported %d tasks", len(tasks))
	printFile(output)
	printNewline()
	printNextStep("Check", appName+" check "+output)
	return nil
}
