package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"os-scheduler/api"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			addr := fmt.Sprintf(":%d", cfg.Port)
			logger.Info("starting scheduler api", "addr", addr)
			return api.NewApp(cfg, logger).Listen(addr)
		},
	}
	cmd.Flags().IntVar(&port, "port", 9095, "Listen port (overrides config)")
	return cmd
}
