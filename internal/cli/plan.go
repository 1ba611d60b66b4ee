package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/easel/internal/presentation/graph"
	"github.com/aretw0/easel/internal/presentation/tui"
	"github.com/aretw0/easel/pkg/config"
	"github.com/aretw0/easel/pkg/domain"
	"github.com/aretw0/easel/pkg/painter"
)

// PlanOptions configures a dry-run preview.
type PlanOptions struct {
	Config  config.Config
	Name    string
	Paths   []domain.CanvasPath
	Mermaid bool
	Verbose bool
	// Render styles markdown for the terminal. Nil prints it raw.
	Render func(string) (string, error)
}

// RunPlan prints the motions a run would issue without moving anything.
func RunPlan(ctx context.Context, w io.Writer, opts PlanOptions) error {
	arm, err := NewArm(opts.Config.Arm)
	if err != nil {
		return err
	}
	reference, err := arm.CurrentPose(ctx)
	if err != nil {
		return err
	}

	segments, err := painter.New(arm, opts.Config).Preview(reference, opts.Paths)
	if err != nil {
		return err
	}

	if opts.Mermaid {
		_, err := fmt.Fprint(w, graph.GenerateMermaid(segments, nil))
		return err
	}

	md := tui.PlanMarkdown(opts.Name, reference, segments, opts.Verbose)
	if opts.Render != nil {
		if md, err = opts.Render(md); err != nil {
			return err
		}
	}
	_, err = fmt.Fprint(w, md)
	return err
}
