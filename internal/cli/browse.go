package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/engine"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/task"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/pipeline"
)

// browseCommand creates the browse command: an interactive list of the
// graph where the cursor sets the focus.
func (c *CLI) browseCommand() *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "browse [tasks.json|tasks.yaml]",
		Short: "Browse the task graph interactively",
		Long: `Browse the task graph interactively.

Tasks are listed in reading order, layer by layer. The task under the cursor
is focused: everything it depends on and everything that depends on it stays
bright, the rest is dimmed. Enter prints the details of the focused task.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{Logger: c.Logger}
			if err := src.apply(&opts, args); err != nil {
				return err
			}
			return c.runBrowse(cmd.Context(), opts, &src)
		},
	}

	src.register(cmd)
	return cmd
}

func (c *CLI) runBrowse(ctx context.Context, opts pipeline.Options, src *sourceFlags) error {
	runner, cleanup, err := c.newRunner(ctx, src.usesStore(), src.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer cleanup()

	tasks, err := runner.Load(ctx, opts)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		printInfo("No tasks")
		return nil
	}

	var activated *task.Task
	activator := engine.Activator{OnActivate: func(t task.Task) { activated = &t }}

	result := engine.Compute(tasks, "", c.config.Layout)
	p := tea.NewProgram(NewGraphBrowserModel(result, activator), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return err
	}

	if activated == nil {
		printDetail("No task opened")
		return nil
	}
	node, _ := result.Node(activated.ID)
	printTaskDetails(*activated, node.Blocked)
	return nil
}

// printTaskDetails prints every field of an activated task.
func printTaskDetails(t task.Task, blocked bool) {
	fmt.Println(StyleTitle.Render(t.Title))
	printKeyValue("id", t.ID)
	printKeyValue("status", statusStyle(t.Status, blocked).Render(string(t.Status)))
	if t.Priority != "" {
		printKeyValue("priority", string(t.Priority))
	}
	if t.Assignee != "" {
		printKeyValue("assignee", t.Assignee)
	}
	if t.DueDate != "" {
		printKeyValue("due", t.DueDate)
	}
	printList("depends on", t.Dependencies)
	if blocked {
		printWarning("Blocked by unfinished dependencies")
	}
	if len(t.Dependencies) > 0 {
		printNextStep("Show related tasks", fmt.Sprintf("%s highlight --focus %s", appName, quoteArg(t.ID)))
	}
}

// quoteArg quotes s for a shell when it contains spaces.
func quoteArg(s string) string {
	if strings.ContainsAny(s, " \t'\"") {
		return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
	}
	return s
}
