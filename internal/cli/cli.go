// Package cli implements the taskgraph command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/buildinfo"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/cache"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/config"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/layout"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/observability"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/pipeline"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/store"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/store/mongo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and completion help.
const appName = config.AppName

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	config     config.Config
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "taskgraph draws project task dependencies as a layered graph",
		Long: `taskgraph lays out the tasks of a project as a left-to-right dependency graph:
every task sits one layer right of its deepest dependency, connectors are
routed between them, and blocked work is marked.

Tasks come from a JSON or YAML file or from the project store (see --config).`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/taskgraph/config.toml)")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.highlightCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.config = cfg
	observability.NewLogHooks(c.Logger).Install()
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. The store is only opened
// when withStore is set, so file-based commands never dial MongoDB. The
// returned cleanup closes the cache and the store.
func (c *CLI) newRunner(ctx context.Context, withStore, noCache bool) (*pipeline.Runner, func(), error) {
	runner := pipeline.NewRunner(c.newCache(ctx, noCache), c.newKeyer(), c.Logger)

	closeStore := func() {}
	if withStore {
		src, closer, err := c.newSource(ctx)
		if err != nil {
			runner.Close()
			return nil, nil, err
		}
		runner.Source = src
		closeStore = closer
	}

	cleanup := func() {
		closeStore()
		if err := runner.Close(); err != nil {
			c.Logger.Debug("close cache", "error", err)
		}
	}
	return runner, cleanup, nil
}

// newCache opens the configured cache. A backend that cannot be opened
// disables caching instead of failing the command.
func (c *CLI) newCache(ctx context.Context, noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	cc := c.config.Cache
	ch, err := cache.Open(ctx, cc.Backend, cc.Dir, cc.RedisURL)
	if err != nil {
		c.Logger.Warn("cache disabled", "backend", cc.Backend, "error", err)
		return cache.NewNullCache()
	}
	return ch
}

// newKeyer scopes cache keys with [cache] key_prefix when one is set.
func (c *CLI) newKeyer() cache.Keyer {
	if p := c.config.Cache.KeyPrefix; p != "" {
		return cache.NewScopedKeyer(cache.NewDefaultKeyer(), p)
	}
	return cache.NewDefaultKeyer()
}

func (c *CLI) newSource(ctx context.Context) (store.Source, func(), error) {
	sc := c.config.Store
	switch sc.Backend {
	case config.StoreMongo:
		src, err := mongo.New(ctx, mongo.Config{
			URI:        sc.MongoURI,
			Database:   sc.Database,
			Collection: sc.Collection,
			Timeout:    sc.Timeout,
		})
		if err != nil {
			return nil, nil, err
		}
		return src, func() { _ = src.Close(context.Background()) }, nil
	default:
		return store.NewFile(sc.Dir), func() {}, nil
	}
}

// =============================================================================
// Shared Flags
// =============================================================================

// sourceFlags selects the task list of a command: a file argument or a
// stored project.
type sourceFlags struct {
	project string
	refresh bool
	noCache bool
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.project, "project", "p", "", "read tasks of a stored project instead of a file")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "bypass cached graphs and renders")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
}

// apply fills the source fields of opts from the flags and arguments.
func (f *sourceFlags) apply(opts *pipeline.Options, args []string) error {
	switch {
	case len(args) == 1 && f.project != "":
		return fmt.Errorf("give either a task file or --project, not both")
	case len(args) == 1:
		opts.Input = args[0]
	case f.project != "":
		opts.Project = f.project
	default:
		return fmt.Errorf("a task file or --project is required")
	}
	opts.Refresh = f.refresh
	return nil
}

// usesStore reports whether the command reads from the project store.
func (f *sourceFlags) usesStore() bool { return f.project != "" }

// name returns the input's base name used to derive output paths.
func (f *sourceFlags) name(args []string) string {
	if len(args) == 1 {
		return strings.TrimSuffix(args[0], filepath.Ext(args[0]))
	}
	return f.project
}

// layoutFlags overrides configured geometry for one command.
type layoutFlags struct {
	cfg layout.Config
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	d := layout.DefaultConfig()
	cmd.Flags().Float64Var(&f.cfg.NodeWidth, "node-width", d.NodeWidth, "node width")
	cmd.Flags().Float64Var(&f.cfg.NodeHeight, "node-height", d.NodeHeight, "node height")
	cmd.Flags().Float64Var(&f.cfg.XGap, "x-gap", d.XGap, "horizontal gap between layers")
	cmd.Flags().Float64Var(&f.cfg.YGap, "y-gap", d.YGap, "vertical gap between nodes of a layer")
	cmd.Flags().Float64Var(&f.cfg.Padding, "padding", d.Padding, "canvas padding")
	cmd.Flags().Float64Var(&f.cfg.MinCanvasHeight, "min-height", d.MinCanvasHeight, "minimum canvas height")
}

// resolve returns base with every explicitly set flag applied.
func (f *layoutFlags) resolve(cmd *cobra.Command, base layout.Config) layout.Config {
	set := func(name string, dst *float64, v float64) {
		if cmd.Flags().Changed(name) {
			*dst = v
		}
	}
	set("node-width", &base.NodeWidth, f.cfg.NodeWidth)
	set("node-height", &base.NodeHeight, f.cfg.NodeHeight)
	set("x-gap", &base.XGap, f.cfg.XGap)
	set("y-gap", &base.YGap, f.cfg.YGap)
	set("padding", &base.Padding, f.cfg.Padding)
	set("min-height", &base.MinCanvasHeight, f.cfg.MinCanvasHeight)
	return base
}
