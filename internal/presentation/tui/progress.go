package tui

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/muesli/termenv"

	"github.com/aretw0/easel/pkg/domain"
)

var phaseColors = map[domain.Phase]string{
	domain.PhaseDippingBrush:  "#60a5fa",
	domain.PhasePainting:      "#f59e0b",
	domain.PhaseReturningHome: "#a78bfa",
	domain.PhaseDone:          "#34d399",
	domain.PhaseAborted:       "#f87171",
}

// ProgressPrinter prints one colored line per lifecycle event.
type ProgressPrinter struct {
	mu    sync.Mutex
	w     io.Writer
	out   *termenv.Output
	total int
}

// NewProgressPrinter creates a printer for a session of total paths.
func NewProgressPrinter(w io.Writer, total int) *ProgressPrinter {
	return &ProgressPrinter{w: w, out: termenv.NewOutput(w), total: total}
}

// Hooks returns lifecycle hooks that print to the printer's writer.
func (p *ProgressPrinter) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnPhaseEnter: func(_ context.Context, e *domain.PhaseEvent) {
			p.phase(e)
		},
		OnMotion: func(_ context.Context, e *domain.MotionEvent) {
			p.motion(e)
		},
	}
}

func (p *ProgressPrinter) phase(e *domain.PhaseEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	tag := p.out.String(fmt.Sprintf("%-15s", e.Phase)).Bold()
	if c, ok := phaseColors[e.Phase]; ok {
		tag = tag.Foreground(p.out.Color(c))
	}
	where := ""
	if e.PathIndex >= 0 {
		where = fmt.Sprintf("path %d/%d", e.PathIndex+1, p.total)
	}
	fmt.Fprintf(p.w, ">>> %s %s\n", tag, where)
}

func (p *ProgressPrinter) motion(e *domain.MotionEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if e.Err != nil {
		msg := p.out.String(fmt.Sprintf("    ✗ %d poses, %.0f%% planned: %v", e.Waypoints, e.Fraction*100, e.Err))
		fmt.Fprintln(p.w, msg.Foreground(p.out.Color("#f87171")))
		return
	}
	msg := p.out.String(fmt.Sprintf("    ✓ %d poses in %s", e.Waypoints, e.Duration.Round(1e6)))
	fmt.Fprintln(p.w, msg.Faint())
}
