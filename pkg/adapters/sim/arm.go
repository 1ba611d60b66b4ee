// Package sim provides a simulated arm implementing ports.MotionExecutor.
//
// The simulated arm plans straight Cartesian segments at the requested
// resolution, refuses to leave an optional workspace box (reporting the
// fraction it could plan, as a real Cartesian planner does) and moves
// instantly or at a fixed pace per interpolated point.
package sim

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/aretw0/easel/pkg/domain"
	"github.com/aretw0/easel/pkg/ports"
)

// Box is an axis-aligned workspace.
type Box struct {
	Min, Max r3.Vec
}

// Contains reports whether v lies inside the box (bounds included).
func (b Box) Contains(v r3.Vec) bool {
	return v.X >= b.Min.X && v.X <= b.Max.X &&
		v.Y >= b.Min.Y && v.Y <= b.Max.Y &&
		v.Z >= b.Min.Z && v.Z <= b.Max.Z
}

// BoxFromSlice builds a box from min xyz followed by max xyz.
func BoxFromSlice(v []float64) (Box, error) {
	if len(v) != 6 {
		return Box{}, fmt.Errorf("workspace needs 6 values, got %d", len(v))
	}
	return Box{
		Min: r3.Vec{X: v[0], Y: v[1], Z: v[2]},
		Max: r3.Vec{X: v[3], Y: v[4], Z: v[5]},
	}, nil
}

// Option configures the Arm.
type Option func(*Arm)

// WithWorkspace bounds the reachable space.
func WithWorkspace(box Box) Option {
	return func(a *Arm) {
		a.workspace = &box
	}
}

// WithPace sleeps d per interpolated point while executing.
func WithPace(d time.Duration) Option {
	return func(a *Arm) {
		a.pace = d
	}
}

// Arm is a simulated arm. Safe for concurrent use.
type Arm struct {
	mu        sync.Mutex
	pose      domain.Pose
	workspace *Box
	pace      time.Duration
	executed  []domain.Trajectory
	moving    bool
	wg        sync.WaitGroup
}

var _ ports.MotionExecutor = (*Arm)(nil)

// New creates an arm resting at home.
func New(home domain.Pose, opts ...Option) *Arm {
	a := &Arm{pose: home}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Plan interpolates from the current pose through waypoints.
// Planning stops at the first interpolated point outside the workspace.
func (a *Arm) Plan(ctx context.Context, waypoints domain.WaypointList, step float64, _ ports.JumpPolicy) (domain.Trajectory, float64, error) {
	if step <= 0 {
		return domain.Trajectory{}, 0, fmt.Errorf("step must be positive, got %v", step)
	}
	if err := ctx.Err(); err != nil {
		return domain.Trajectory{}, 0, err
	}

	a.mu.Lock()
	from := a.pose
	a.mu.Unlock()

	traj := domain.Trajectory{Waypoints: append(domain.WaypointList(nil), waypoints...)}
	var total, planned float64
	blocked := false

	for _, to := range waypoints {
		length := r3.Norm(r3.Sub(to.Position, from.Position))
		total += length
		if blocked {
			from = to
			continue
		}

		n := int(math.Ceil(length / step))
		if n == 0 {
			n = 1
		}
		for i := 1; i <= n; i++ {
			t := float64(i) / float64(n)
			p := domain.Pose{
				Position:    r3.Add(from.Position, r3.Scale(t, r3.Sub(to.Position, from.Position))),
				Orientation: to.Orientation,
			}
			if a.workspace != nil && !a.workspace.Contains(p.Position) {
				blocked = true
				break
			}
			traj.Points = append(traj.Points, p)
			planned = total - length + t*length
		}
		from = to
	}

	if total == 0 {
		if blocked {
			return traj, 0, nil
		}
		return traj, 1, nil
	}
	if !blocked {
		return traj, 1, nil
	}
	return traj, planned / total, nil
}

// Execute walks the trajectory points. With blocking unset the motion runs
// in the background; Wait blocks until it ends.
// A canceled context halts the arm at its last reached point.
func (a *Arm) Execute(ctx context.Context, traj domain.Trajectory, blocking bool) error {
	a.mu.Lock()
	if a.moving {
		a.mu.Unlock()
		return fmt.Errorf("arm is already moving")
	}
	a.moving = true
	a.executed = append(a.executed, traj)
	a.mu.Unlock()

	if !blocking {
		a.wg.Add(1)
		go func() {
			defer a.wg.Done()
			_ = a.walk(ctx, traj.Points)
		}()
		return nil
	}
	return a.walk(ctx, traj.Points)
}

func (a *Arm) walk(ctx context.Context, points []domain.Pose) error {
	defer func() {
		a.mu.Lock()
		a.moving = false
		a.mu.Unlock()
	}()

	for _, p := range points {
		if a.pace > 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("motion halted: %w", ctx.Err())
			case <-time.After(a.pace):
			}
		}
		a.mu.Lock()
		a.pose = p
		a.mu.Unlock()
	}
	return nil
}

// Wait blocks until background motions have finished.
func (a *Arm) Wait() {
	a.wg.Wait()
}

// CurrentPose returns the simulated end-effector pose.
func (a *Arm) CurrentPose(ctx context.Context) (domain.Pose, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pose, nil
}

// MoveTo plans a straight move to target and executes it.
func (a *Arm) MoveTo(ctx context.Context, target domain.Pose) error {
	traj, fraction, err := a.Plan(ctx, domain.WaypointList{target}, 0.01, ports.JumpPolicy{})
	if err != nil {
		return err
	}
	if fraction < 1 {
		return fmt.Errorf("target %s is outside the workspace", target)
	}
	return a.Execute(ctx, traj, true)
}

// Executed returns the trajectories executed so far, in order.
func (a *Arm) Executed() []domain.Trajectory {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]domain.Trajectory(nil), a.executed...)
}
