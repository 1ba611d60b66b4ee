package domain

// CanvasPoint is a point on the canvas in canvas units (millimeters by default).
type CanvasPoint struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Pt is shorthand for CanvasPoint{X: x, Y: y}.
func Pt(x, y float64) CanvasPoint {
	return CanvasPoint{X: x, Y: y}
}

// CanvasPath is an ordered stroke. The first and last points anchor the
// hover-in and lift-off moves.
type CanvasPath []CanvasPoint

// Validate rejects paths that cannot be painted.
func (p CanvasPath) Validate() error {
	if len(p) == 0 {
		return ErrEmptyPath
	}
	return nil
}

// First returns the first point. The path must be valid.
func (p CanvasPath) First() CanvasPoint {
	return p[0]
}

// Last returns the last point. The path must be valid.
func (p CanvasPath) Last() CanvasPoint {
	return p[len(p)-1]
}
