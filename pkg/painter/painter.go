package painter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/easel/internal/logging"
	"github.com/aretw0/easel/pkg/choreo"
	"github.com/aretw0/easel/pkg/config"
	"github.com/aretw0/easel/pkg/domain"
	"github.com/aretw0/easel/pkg/ports"
	"github.com/aretw0/easel/pkg/transform"
)

// fractionTolerance absorbs floating-point noise in a fully planned path.
const fractionTolerance = 1e-9

// Painter sequences dip and paint motions on one arm.
type Painter struct {
	executor ports.MotionExecutor
	cfg      config.Config

	store       ports.StateStore
	locker      ports.ArmLocker
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
	newID       func() string
	orientation transform.OrientationStrategy
}

// New creates a Painter that commands executor with the constants in cfg.
func New(executor ports.MotionExecutor, cfg config.Config, opts ...Option) *Painter {
	p := &Painter{
		executor:    executor,
		cfg:         cfg,
		logger:      logging.NewNop(),
		newID:       uuid.NewString,
		orientation: transform.FixedOrientation{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run paints paths in order and returns the arm to the reference pose.
// The reference pose is the arm's pose when Run is called.
// The returned session is non-nil once the reference pose was captured,
// including when the run aborts.
func (p *Painter) Run(ctx context.Context, paths []domain.CanvasPath) (*domain.Session, error) {
	for i, path := range paths {
		if err := path.Validate(); err != nil {
			return nil, fmt.Errorf("path %d: %w", i, err)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, interrupted(err)
	}

	if p.locker != nil {
		unlock, err := p.locker.Lock(ctx, p.cfg.Arm.Name, p.cfg.Arm.LeaseTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to lease arm %q: %w", p.cfg.Arm.Name, err)
		}
		defer func() {
			// Release with a fresh context: ctx may already be canceled.
			if err := unlock(context.Background()); err != nil {
				p.logger.Warn("Failed to release arm lease (will expire via TTL)",
					"arm", p.cfg.Arm.Name,
					"err", err,
				)
			}
		}()
	}

	reference, err := p.executor.CurrentPose(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to capture reference pose: %w", err)
	}

	session := domain.NewSession(p.newID(), reference, paths)
	r := &run{
		Painter:  p,
		session:  session,
		frame:    p.frame(reference),
		progress: domain.NewProgress(session),
		logger:   p.logger.With("session_id", session.ID),
	}

	r.logger.Info("Session started", "paths", len(paths), "reference", reference.String())
	r.checkpoint(ctx)

	if err := r.paint(ctx); err != nil {
		r.abort(ctx, err)
		return session, err
	}
	r.enter(ctx, domain.PhaseDone, -1)
	r.logger.Info("Session done", "motions", r.progress.Motions)
	return session, nil
}

// Segment is one motion of a planned session.
type Segment struct {
	Phase     domain.Phase
	PathIndex int
	Waypoints domain.WaypointList
}

// Preview returns the motions Run would issue for paths when the arm starts
// at reference and reaches every target exactly. Nothing moves.
// The final direct move home is a one-pose segment.
func (p *Painter) Preview(reference domain.Pose, paths []domain.CanvasPath) ([]Segment, error) {
	for i, path := range paths {
		if err := path.Validate(); err != nil {
			return nil, fmt.Errorf("path %d: %w", i, err)
		}
	}

	frame := p.frame(reference)
	current := reference
	var segments []Segment
	add := func(phase domain.Phase, idx int, wps domain.WaypointList) {
		segments = append(segments, Segment{Phase: phase, PathIndex: idx, Waypoints: wps})
		current = wps[len(wps)-1]
	}

	for i, path := range paths {
		add(domain.PhaseDippingBrush, i, choreo.Dip(frame, current, p.cfg.Dip))
		add(domain.PhasePainting, i, choreo.Synthesize(frame, current, path, p.cfg.HoverOffset))
	}
	add(domain.PhaseDippingBrush, -1, choreo.Dip(frame, current, p.cfg.Dip))
	add(domain.PhaseReturningHome, -1, domain.WaypointList{reference})
	return segments, nil
}

func (p *Painter) frame(reference domain.Pose) transform.Frame {
	return transform.Frame{
		Reference:   reference,
		Scaler:      transform.NewScaler(p.cfg.Scale),
		Orientation: p.orientation,
	}
}

// run is the mutable state of one session.
type run struct {
	*Painter
	session  *domain.Session
	frame    transform.Frame
	progress *domain.Progress
	logger   *slog.Logger
}

func (r *run) paint(ctx context.Context) error {
	for i, path := range r.session.Paths {
		if err := r.dip(ctx, i); err != nil {
			return err
		}
		if err := r.settle(ctx); err != nil {
			return err
		}

		r.enter(ctx, domain.PhasePainting, i)
		current, err := r.currentPose(ctx)
		if err != nil {
			return err
		}
		waypoints := choreo.Synthesize(r.frame, current, path, r.cfg.HoverOffset)
		if err := r.follow(ctx, domain.PhasePainting, i, waypoints); err != nil {
			return err
		}
		if err := r.settle(ctx); err != nil {
			return err
		}
	}

	// Clean the brush before parking.
	if err := r.dip(ctx, -1); err != nil {
		return err
	}
	if err := r.settle(ctx); err != nil {
		return err
	}

	r.enter(ctx, domain.PhaseReturningHome, -1)
	if err := ctx.Err(); err != nil {
		return interrupted(err)
	}
	start := time.Now()
	err := r.executor.MoveTo(ctx, r.session.Reference)
	r.emitMotion(ctx, domain.PhaseReturningHome, -1, 1, 1, time.Since(start), err)
	if err != nil {
		return &domain.MotionError{Phase: domain.PhaseReturningHome, PathIndex: -1, Err: err}
	}
	r.progress.Motions++
	return nil
}

func (r *run) dip(ctx context.Context, idx int) error {
	r.enter(ctx, domain.PhaseDippingBrush, idx)
	current, err := r.currentPose(ctx)
	if err != nil {
		return err
	}
	return r.follow(ctx, domain.PhaseDippingBrush, idx, choreo.Dip(r.frame, current, r.cfg.Dip))
}

func (r *run) currentPose(ctx context.Context) (domain.Pose, error) {
	if err := ctx.Err(); err != nil {
		return domain.Pose{}, interrupted(err)
	}
	pose, err := r.executor.CurrentPose(ctx)
	if err != nil {
		return domain.Pose{}, fmt.Errorf("failed to read current pose: %w", err)
	}
	return pose, nil
}

// follow plans waypoints and executes them only when the plan is complete.
func (r *run) follow(ctx context.Context, phase domain.Phase, idx int, waypoints domain.WaypointList) error {
	if err := ctx.Err(); err != nil {
		return interrupted(err)
	}

	start := time.Now()
	traj, fraction, err := r.executor.Plan(ctx, waypoints, r.cfg.Step, r.cfg.Jumps)
	if err != nil {
		r.emitMotion(ctx, phase, idx, len(waypoints), 0, time.Since(start), err)
		return &domain.MotionError{Phase: phase, PathIndex: idx, Err: fmt.Errorf("planning: %w", err)}
	}
	if fraction < 1-fractionTolerance {
		shortfall := &domain.ShortfallError{Phase: phase, PathIndex: idx, Fraction: fraction}
		r.emitMotion(ctx, phase, idx, len(waypoints), fraction, time.Since(start), shortfall)
		return shortfall
	}

	// The plan was complete; a cancellation that arrived while planning
	// still prevents the motion from starting.
	if err := ctx.Err(); err != nil {
		return interrupted(err)
	}
	err = r.executor.Execute(ctx, traj, true)
	r.emitMotion(ctx, phase, idx, len(waypoints), fraction, time.Since(start), err)
	if err != nil {
		return &domain.MotionError{Phase: phase, PathIndex: idx, Err: err}
	}

	r.progress.Motions++
	r.logger.Debug("Motion done", "phase", phase, "path", idx, "waypoints", len(waypoints))
	return nil
}

// settle pauses for the configured delay, returning early on cancellation.
func (r *run) settle(ctx context.Context) error {
	if r.cfg.SettleDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(r.cfg.SettleDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return interrupted(ctx.Err())
	case <-timer.C:
		return nil
	}
}

func (r *run) enter(ctx context.Context, phase domain.Phase, idx int) {
	r.progress.Phase = phase
	r.progress.PathIndex = idx
	r.progress.History = append(r.progress.History, phase)
	r.logger.Info("Phase entered", "phase", phase, "path", idx)

	if r.hooks.OnPhaseEnter != nil {
		r.hooks.OnPhaseEnter(ctx, &domain.PhaseEvent{
			EventBase: domain.EventBase{
				Timestamp: time.Now(),
				Type:      domain.EventPhaseEnter,
				SessionID: r.session.ID,
			},
			Phase:     phase,
			PathIndex: idx,
		})
	}
	r.checkpoint(ctx)
}

func (r *run) abort(ctx context.Context, cause error) {
	r.logger.Error("Session aborted", "phase", r.progress.Phase, "path", r.progress.PathIndex, "err", cause)
	r.progress.Error = cause.Error()
	r.enter(ctx, domain.PhaseAborted, r.progress.PathIndex)
}

func (r *run) emitMotion(ctx context.Context, phase domain.Phase, idx, n int, fraction float64, d time.Duration, err error) {
	if r.hooks.OnMotion == nil {
		return
	}
	r.hooks.OnMotion(ctx, &domain.MotionEvent{
		EventBase: domain.EventBase{
			Timestamp: time.Now(),
			Type:      domain.EventMotion,
			SessionID: r.session.ID,
		},
		Phase:     phase,
		PathIndex: idx,
		Waypoints: n,
		Fraction:  fraction,
		Duration:  d,
		Err:       err,
	})
}

// checkpoint saves progress. Store failures are logged, not returned.
func (r *run) checkpoint(ctx context.Context) {
	if r.store == nil {
		return
	}
	r.progress.UpdatedAt = time.Now()
	// Detached from ctx so the aborted checkpoint is still written after cancellation.
	saveCtx := context.WithoutCancel(ctx)
	if err := r.store.Save(saveCtx, r.session.ID, r.progress.Clone()); err != nil {
		r.logger.Warn("Failed to save progress", "phase", r.progress.Phase, "err", err)
	}
}

func interrupted(cause error) error {
	return fmt.Errorf("%w: %w", domain.ErrInterrupted, cause)
}
