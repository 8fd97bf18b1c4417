package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fontlink/pkg/server"
)

// addrEnv overrides the default listen address.
const addrEnv = "FONTLINK_ADDR"

// serveCommand runs the HTTP service until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the compiler over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = defaultAddr()
			}
			return server.New(loggerFromContext(cmd.Context())).ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address (env "+addrEnv+")")
	return cmd
}

func defaultAddr() string {
	if v := os.Getenv(addrEnv); v != "" {
		return v
	}
	return server.DefaultAddr
}
