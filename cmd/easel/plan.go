package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/easel/internal/cli"
	"github.com/aretw0/easel/internal/presentation/tui"
	"github.com/aretw0/easel/pkg/job"
)

var planCmd = &cobra.Command{
	Use:   "plan <job-file>",
	Short: "Preview the motions of a job without moving the arm",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		name, paths, err := job.Load(args[0])
		if err != nil {
			return err
		}

		mermaid, _ := cmd.Flags().GetBool("mermaid")
		verbose, _ := cmd.Flags().GetBool("verbose")
		raw, _ := cmd.Flags().GetBool("raw")

		opts := cli.PlanOptions{
			Config:  cfg,
			Name:    name,
			Paths:   paths,
			Mermaid: mermaid,
			Verbose: verbose,
		}
		if !raw && term.IsTerminal(int(os.Stdout.Fd())) {
			opts.Render = tui.NewRenderer()
		}
		return cli.RunPlan(cmd.Context(), cmd.OutOrStdout(), opts)
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().Bool("mermaid", false, "Print the plan as a Mermaid flowchart")
	planCmd.Flags().BoolP("verbose", "v", false, "List every pose")
	planCmd.Flags().Bool("raw", false, "Print markdown without terminal styling")
}
