package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/cache"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local result cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	var stageNames []string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove cached graphs and renders",
		Long: `Remove cached graphs and renders from the file cache.

By default every stage is cleared; --stage limits it to graph or artifact
entries.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.config.Cache.Backend != config.CacheFile {
				printWarning("Cache backend is %q; only the file cache can be cleared here", c.config.Cache.Backend)
				return nil
			}
			stages, err := parseStages(stageNames)
			if err != nil {
				return err
			}

			fc, err := cache.NewFileCache(c.config.Cache.Dir)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			count, err := fc.Clear(stages...)
			if err != nil {
				return err
			}
			if count == 0 {
				printInfo("Cache is empty")
				return nil
			}
			printSuccess("Cleared %d cached entries", count)
			printDetail("Directory: %s", fc.Dir())
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&stageNames, "stage", nil, "clear only these stages (graph, artifact)")
	return cmd
}

func parseStages(names []string) ([]cache.Stage, error) {
	stages := make([]cache.Stage, 0, len(names))
	for _, n := range names {
		st, err := cache.ParseStage(strings.ToLower(strings.TrimSpace(n)))
		if err != nil {
			return nil, err
		}
		stages = append(stages, st)
	}
	return stages, nil
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.config.Cache.Dir == "" {
				return fmt.Errorf("no cache directory configured")
			}
			fmt.Println(c.config.Cache.Dir)
			return nil
		},
	}
}
