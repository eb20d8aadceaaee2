package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/drawshop/pkg/cache"
	"github.com/matzehuels/drawshop/pkg/server"
)

// serveCommand creates the "serve" command, which exposes the configured
// store over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the drawing API over HTTP",
		Long: `Serve the configured store over a JSON/HTTP API until interrupted.

Drawings created through the API use the [canvas] section of the config
file as defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, cfg, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()
			runner.Keyer = cache.NewScopedKeyer(nil, "api:")

			if addr == "" {
				addr = cfg.Server.Addr
			}
			srv := server.New(runner, c.Logger, server.WithDefaults(server.Defaults{
				Width:  cfg.Canvas.Width,
				Height: cfg.Canvas.Height,
				Style:  cfg.Style(),
				Scale:  cfg.Export.Scale,
			}))
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")

	return cmd
}
