package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/cosmos/internal/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog over HTTP",
		Long: `Serve the catalog and the counting engines as a JSON API.

Routes:
  GET /healthz
  GET /v1/systems
  GET /v1/systems/{level}
  GET /v1/matula/{n}
  GET /v1/partitions/{n}?limit=
  GET /v1/pascal/{n}
  GET /v1/simplex/{dim}
  GET /v1/nested/{level}

The server shuts down gracefully on interrupt.`,
		Example: `  cosmos serve
  cosmos serve --addr 127.0.0.1:9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.settings().Server.Addr
			}
			runner, err := c.newRunner(cmd.Context())
			if err != nil {
				return err
			}
			defer runner.Close()

			w := cmd.OutOrStdout()
			printInfo(w, "Serving on %s", StyleHighlight.Render(addr))
			printNextStep(w, "Try", "curl http://"+displayAddr(addr)+"/v1/systems/3")

			if err := server.New(runner, c.Logger).ListenAndServe(cmd.Context(), addr); err != nil {
				return err
			}
			printSuccess(w, "Server stopped")
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default server.addr from config)")
	return cmd
}

// displayAddr turns a bare ":port" listen address into a dialable one.
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
