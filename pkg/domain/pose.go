package domain

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// OrientationTolerance is the accepted deviation of |q| from 1.
const OrientationTolerance = 1e-6

// IdentityOrientation is the zero rotation.
var IdentityOrientation = quat.Number{Real: 1}

// Pose is an end-effector pose in the motion frame.
// It is a value type: assigning or appending a Pose copies it.
type Pose struct {
	Position    r3.Vec      `json:"position" msgpack:"position"`
	Orientation quat.Number `json:"orientation" msgpack:"orientation"`
}

// NewPose builds a pose from a position and an orientation quaternion.
func NewPose(x, y, z float64, orientation quat.Number) Pose {
	return Pose{
		Position:    r3.Vec{X: x, Y: y, Z: z},
		Orientation: orientation,
	}
}

// Valid reports whether the orientation is a unit quaternion.
func (p Pose) Valid() bool {
	return math.Abs(quat.Abs(p.Orientation)-1) <= OrientationTolerance
}

// String renders the position with millimeter precision.
func (p Pose) String() string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", p.Position.X, p.Position.Y, p.Position.Z)
}

// WaypointList is one continuous motion segment.
type WaypointList []Pose

// Trajectory is whatever a MotionExecutor produced while planning.
// The core never inspects it beyond passing it back to Execute.
type Trajectory struct {
	Waypoints WaypointList `json:"waypoints"`
	// Points holds the interpolated poses when the executor exposes them.
	Points []Pose `json:"points,omitempty"`
	// Handle is an executor-specific reference (e.g. a remote plan ID).
	Handle string `json:"handle,omitempty"`
}
