package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/easel/internal/cli"
	"github.com/aretw0/easel/pkg/config"
	"github.com/aretw0/easel/pkg/domain"
)

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("session", "s", "", "Session ID for checkpoints (default: random UUID)")
	cmd.Flags().Bool("debug", false, "Log every phase and motion")
	cmd.Flags().BoolP("quiet", "q", false, "Print nothing but errors")
	cmd.Flags().String("listen", "", "Serve status, metrics and events on this address while painting")
	cmd.Flags().Duration("settle", -1, "Settle delay override")
}

func runOptions(cmd *cobra.Command, cfg config.Config, name string, paths []domain.CanvasPath) cli.RunOptions {
	sessionID, _ := cmd.Flags().GetString("session")
	debug, _ := cmd.Flags().GetBool("debug")
	quiet, _ := cmd.Flags().GetBool("quiet")
	listen, _ := cmd.Flags().GetString("listen")
	if settle, _ := cmd.Flags().GetDuration("settle"); settle >= 0 {
		cfg.SettleDelay = settle
	}

	return cli.RunOptions{
		Config:    cfg,
		Name:      name,
		Paths:     paths,
		SessionID: sessionID,
		Debug:     debug,
		Quiet:     quiet,
		Listen:    listen,
		Out:       cmd.OutOrStdout(),
	}
}
