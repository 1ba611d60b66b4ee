package tui_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/easel/internal/presentation/tui"
	"github.com/aretw0/easel/pkg/adapters/sim"
	"github.com/aretw0/easel/pkg/config"
	"github.com/aretw0/easel/pkg/domain"
	"github.com/aretw0/easel/pkg/painter"
)

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf, "v1.2.3")
	assert.Contains(t, buf.String(), "brush choreography v1.2.3")
}

func TestPlanMarkdown(t *testing.T) {
	home := domain.NewPose(0.3, 0, 0.4, domain.IdentityOrientation)
	p := painter.New(sim.New(home), config.Default())
	segments, err := p.Preview(home, []domain.CanvasPath{{domain.Pt(0, 0), domain.Pt(5, 5)}})
	require.NoError(t, err)

	md := tui.PlanMarkdown("dot", home, segments, false)
	assert.Contains(t, md, "# Plan: dot")
	assert.Contains(t, md, "4 motions")
	assert.Contains(t, md, "| 1 | painting | 0 | 6 |")
	assert.Contains(t, md, "| 3 | returning_home | - | 1 |")
	assert.NotContains(t, md, "## 0.")

	verbose := tui.PlanMarkdown("dot", home, segments, true)
	assert.Contains(t, verbose, "## 1. painting")
	assert.Contains(t, verbose, "6. `")
}

func TestProgressMarkdown(t *testing.T) {
	md := tui.ProgressMarkdown(&domain.Progress{
		SessionID:  "s1",
		Phase:      domain.PhaseAborted,
		PathIndex:  1,
		PathsTotal: 3,
		Motions:    3,
		Error:      "planning shortfall",
		UpdatedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	})
	assert.Contains(t, md, "# Session s1")
	assert.Contains(t, md, "**Path:** 2 of 3")
	assert.Contains(t, md, "2026-01-02 03:04:05")
	assert.Contains(t, md, "> planning shortfall")
}

func TestProgressPrinter(t *testing.T) {
	var buf bytes.Buffer
	hooks := tui.NewProgressPrinter(&buf, 2).Hooks()
	ctx := context.Background()

	hooks.OnPhaseEnter(ctx, &domain.PhaseEvent{Phase: domain.PhasePainting, PathIndex: 0})
	hooks.OnMotion(ctx, &domain.MotionEvent{Waypoints: 8, Fraction: 1, Duration: 2 * time.Second})
	hooks.OnMotion(ctx, &domain.MotionEvent{Waypoints: 5, Fraction: 0.6, Err: errors.New("boom")})

	out := buf.String()
	assert.Contains(t, out, "painting")
	assert.Contains(t, out, "path 1/2")
	assert.Contains(t, out, "8 poses in 2s")
	assert.Contains(t, out, "60% planned: boom")
}
