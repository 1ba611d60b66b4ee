package transform

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/aretw0/easel/pkg/domain"
)

// DefaultScale maps canvas millimeters to motion-frame meters.
const DefaultScale = 1.0 / 1000.0

// Scaler applies the canvas-to-motion unit factor.
type Scaler struct {
	Factor float64
}

// NewScaler returns a Scaler, falling back to DefaultScale for a zero factor.
func NewScaler(factor float64) Scaler {
	if factor == 0 {
		factor = DefaultScale
	}
	return Scaler{Factor: factor}
}

// Scale maps a canvas point to motion units.
func (s Scaler) Scale(p domain.CanvasPoint) (float64, float64) {
	return p.X * s.Factor, p.Y * s.Factor
}

// Unscale maps motion units back to a canvas point.
func (s Scaler) Unscale(x, y float64) domain.CanvasPoint {
	return domain.CanvasPoint{X: x / s.Factor, Y: y / s.Factor}
}

// ToPose returns a new pose offset from ref by (dx, dy, dz), keeping ref's orientation.
func ToPose(ref domain.Pose, dx, dy, dz float64) domain.Pose {
	return domain.Pose{
		Position:    r3.Add(ref.Position, r3.Vec{X: dx, Y: dy, Z: dz}),
		Orientation: ref.Orientation,
	}
}

// OrientationStrategy decides the brush orientation of a canvas-relative pose.
// It receives the orientation ToPose produced and the scaled canvas position.
type OrientationStrategy interface {
	Orient(base quat.Number, x, y float64) quat.Number
}

// FixedOrientation keeps the reference orientation for the whole session.
type FixedOrientation struct{}

// Orient returns base unchanged.
func (FixedOrientation) Orient(base quat.Number, _, _ float64) quat.Number {
	return base
}

// Frame is the canvas frame of one session: a reference pose, the unit
// scaler and the orientation strategy.
type Frame struct {
	Reference   domain.Pose
	Scaler      Scaler
	Orientation OrientationStrategy
}

// NewFrame builds a frame with the fixed orientation strategy.
func NewFrame(reference domain.Pose, scaler Scaler) Frame {
	return Frame{
		Reference:   reference,
		Scaler:      scaler,
		Orientation: FixedOrientation{},
	}
}

// At returns the pose above canvas point p at height dz.
func (f Frame) At(p domain.CanvasPoint, dz float64) domain.Pose {
	x, y := f.Scaler.Scale(p)
	return f.Offset(x, y, dz)
}

// Offset returns the pose at motion-unit offset (dx, dy, dz) from the reference.
func (f Frame) Offset(dx, dy, dz float64) domain.Pose {
	pose := ToPose(f.Reference, dx, dy, dz)
	if f.Orientation != nil {
		pose.Orientation = f.Orientation.Orient(pose.Orientation, dx, dy)
	}
	return pose
}
