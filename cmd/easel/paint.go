package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/easel/internal/cli"
	"github.com/aretw0/easel/pkg/job"
)

var paintCmd = &cobra.Command{
	Use:   "paint <job-file>",
	Short: "Paint the paths of a job file",
	Long: `Paints every path of a YAML or JSON job file on the configured arm.
Progress is checkpointed to the configured store after each phase.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		name, paths, err := job.Load(args[0])
		if err != nil {
			return err
		}
		return cli.RunSession(runOptions(cmd, cfg, name, paths))
	},
}

func init() {
	rootCmd.AddCommand(paintCmd)
	addRunFlags(paintCmd)
}
