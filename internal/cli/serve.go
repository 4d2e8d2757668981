package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspbb/internal/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		sf   solverFlags
		addr string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		Long: `Starts an HTTP server with POST /v1/solve and GET /healthz.
The --time flag caps the time_limit a request may ask for.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sf.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			if cmd.Flags().Changed("time") {
				cfg.Solver.TimeLimit.Duration = sf.timeLimit
			}
			if cmd.Flags().Changed("depth-bias") {
				cfg.Solver.DepthBias = sf.depthBias
			}

			srv, err := server.New(cfg, loggerFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			c.printer().info("serving on %s, Ctrl-C to stop", cfg.Server.Addr)

			return srv.ListenAndServe(cmd.Context())
		},
	}
	sf.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
