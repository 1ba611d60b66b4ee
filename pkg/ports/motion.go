package ports

import (
	"context"

	"github.com/aretw0/easel/pkg/domain"
)

// JumpPolicy controls whether the planner may accept joint-space jumps
// between consecutive Cartesian waypoints.
type JumpPolicy struct {
	// Threshold is passed verbatim to the planner. Zero disables jump checks.
	Threshold float64 `yaml:"threshold" mapstructure:"threshold"`
}

// Enabled reports whether jump checking is active.
func (j JumpPolicy) Enabled() bool {
	return j.Threshold > 0
}

// MotionExecutor is the motion-execution collaborator.
// Implementations own IK, interpolation and the driver connection.
type MotionExecutor interface {
	// Plan computes a Cartesian path through waypoints at the given linear
	// resolution (meters). The returned fraction in [0,1] is the share of the
	// requested path that could be planned.
	Plan(ctx context.Context, waypoints domain.WaypointList, step float64, jumps JumpPolicy) (domain.Trajectory, float64, error)

	// Execute runs a planned trajectory. With blocking set it returns only
	// once the motion has finished. A non-nil error means the motion did not
	// complete.
	Execute(ctx context.Context, traj domain.Trajectory, blocking bool) error

	// CurrentPose queries the live end-effector pose.
	CurrentPose(ctx context.Context) (domain.Pose, error)

	// MoveTo moves directly to a pose target and blocks until done.
	MoveTo(ctx context.Context, target domain.Pose) error
}
