package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/easel/internal/cli"
	"github.com/aretw0/easel/internal/presentation/graph"
	"github.com/aretw0/easel/internal/presentation/tui"
	"github.com/aretw0/easel/pkg/job"
	"github.com/aretw0/easel/pkg/painter"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage stored session checkpoints",
	Long:  `List, inspect, and remove the progress checkpoints kept by the configured store.`,
}

var sessionLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all stored sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := openBackend(cmd)
		if err != nil {
			return err
		}
		defer backend.Close()

		sessions, err := backend.Store.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("error listing sessions: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(sessions) == 0 {
			fmt.Fprintln(out, "No stored sessions found.")
			return nil
		}
		fmt.Fprintln(out, "Stored Sessions:")
		for _, id := range sessions {
			progress, err := backend.Store.Load(cmd.Context(), id)
			if err != nil {
				fmt.Fprintf(out, "- %s\n", id)
				continue
			}
			fmt.Fprintf(out, "- %s  %-14s %d/%d paths\n", id, progress.Phase, progress.PathIndex+1, progress.PathsTotal)
		}
		return nil
	},
}

var sessionInspectCmd = &cobra.Command{
	Use:   "inspect <session-id>",
	Short: "Inspect the checkpoint of a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := openBackend(cmd)
		if err != nil {
			return err
		}
		defer backend.Close()

		progress, err := backend.Store.Load(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("error loading session '%s': %w", args[0], err)
		}

		out := cmd.OutOrStdout()
		if jobPath, _ := cmd.Flags().GetString("mermaid"); jobPath != "" {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			_, paths, err := job.Load(jobPath)
			if err != nil {
				return err
			}
			segments, err := painter.New(nil, cfg).Preview(progress.Reference, paths)
			if err != nil {
				return err
			}
			fmt.Fprint(out, graph.GenerateMermaid(segments, graph.OverlayFromProgress(progress)))
			return nil
		}

		if md, _ := cmd.Flags().GetBool("markdown"); md {
			rendered, err := tui.NewRenderer()(tui.ProgressMarkdown(progress))
			if err != nil {
				return err
			}
			fmt.Fprint(out, rendered)
			return nil
		}

		data, err := json.MarshalIndent(progress, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling progress: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	},
}

var sessionRmCmd = &cobra.Command{
	Use:   "rm <session-id>...",
	Short: "Remove one or more sessions",
	Args: func(cmd *cobra.Command, args []string) error {
		if all, _ := cmd.Flags().GetBool("all"); all {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.MinimumNArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := openBackend(cmd)
		if err != nil {
			return err
		}
		defer backend.Close()

		if all, _ := cmd.Flags().GetBool("all"); all {
			if args, err = backend.Store.List(cmd.Context()); err != nil {
				return fmt.Errorf("error listing sessions: %w", err)
			}
		}

		var errs []error
		for _, id := range args {
			if err := backend.Store.Delete(cmd.Context(), id); err != nil {
				errs = append(errs, fmt.Errorf("error removing '%s': %w", id, err))
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed session '%s'\n", id)
		}
		return errors.Join(errs...)
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionLsCmd)
	sessionCmd.AddCommand(sessionInspectCmd)
	sessionCmd.AddCommand(sessionRmCmd)

	sessionInspectCmd.Flags().String("mermaid", "", "Render the session over the plan of this job file as a Mermaid flowchart")
	sessionInspectCmd.Flags().Bool("markdown", false, "Render a styled summary instead of JSON")
	sessionRmCmd.Flags().Bool("all", false, "Remove every stored session")
}

func openBackend(cmd *cobra.Command) (*cli.Backend, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return cli.OpenBackend(cfg.Store)
}
