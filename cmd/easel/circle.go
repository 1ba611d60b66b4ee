package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/easel/internal/cli"
	"github.com/aretw0/easel/pkg/domain"
	"github.com/aretw0/easel/pkg/job"
	"github.com/aretw0/easel/pkg/shape"
)

var circleCmd = &cobra.Command{
	Use:   "circle",
	Short: "Paint a demo circle",
	Long: `Paints a closed polygon approximating a circle around the canvas origin.
With --save the path is written to a job file instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		radius, _ := cmd.Flags().GetFloat64("radius")
		points, _ := cmd.Flags().GetInt("points")
		cx, _ := cmd.Flags().GetFloat64("center-x")
		cy, _ := cmd.Flags().GetFloat64("center-y")
		save, _ := cmd.Flags().GetString("save")

		if radius <= 0 || points < 3 {
			return fmt.Errorf("circle needs a positive radius and at least 3 points")
		}
		paths := []domain.CanvasPath{shape.Closed(shape.Circle(cx, cy, radius, points))}

		if save != "" {
			if err := job.FromPaths("circle", paths).Save(save); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved circle job to %s\n", save)
			return nil
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return cli.RunSession(runOptions(cmd, cfg, "circle", paths))
	},
}

func init() {
	rootCmd.AddCommand(circleCmd)
	addRunFlags(circleCmd)
	circleCmd.Flags().Float64("radius", 100, "Radius in canvas units")
	circleCmd.Flags().Int("points", 32, "Number of polygon points")
	circleCmd.Flags().Float64("center-x", 0, "Center x in canvas units")
	circleCmd.Flags().Float64("center-y", 0, "Center y in canvas units")
	circleCmd.Flags().String("save", "", "Write the circle to this job file instead of painting")
}
