package cli

import (
	"github.com/spf13/cobra"

	"github.com/tam-pham-duc/ProManage-AI-sub001/internal/api"
)

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve task graphs over HTTP",
		Long: `Serve task graphs over HTTP.

Endpoints:
  GET  /healthz
  POST /v1/graph                              tasks and focus in the body
  GET  /v1/projects/{project}/graph           ?focus=<task-id>&refresh=1
  GET  /v1/projects/{project}/graph.svg       ?focus=&legend=&interactive=
  GET  /v1/projects/{project}/diagnostics

Projects are read from the configured store.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sc := c.config.Server
			if cmd.Flags().Changed("addr") {
				sc.Addr = addr
			}

			runner, cleanup, err := c.newRunner(ctx, true, noCache)
			if err != nil {
				return err
			}
			defer cleanup()

			srv := api.New(runner, c.Logger, api.Options{
				Layout:       c.config.Layout,
				ReadTimeout:  sc.ReadTimeout,
				WriteTimeout: sc.WriteTimeout,
			})
			printInfo("Serving on %s", StyleLink.Render(sc.Addr))
			return srv.ListenAndServe(ctx, sc.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
