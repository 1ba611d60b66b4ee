package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/easel/internal/cli"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve stored session progress over HTTP",
	Long: `Starts a read-only HTTP server exposing stored sessions, health and
Prometheus metrics. Use 'paint --listen' to follow a live run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		addr, _ := cmd.Flags().GetString("addr")

		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()
		return cli.RunServe(sigCtx, cmd.OutOrStdout(), cfg, addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on")
}
