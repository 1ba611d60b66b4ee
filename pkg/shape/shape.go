// Package shape generates simple canvas paths for demos and calibration.
package shape

import (
	"math"

	"github.com/aretw0/easel/pkg/domain"
)

// Circle approximates a circle of radius r centered at (cx, cy) with count
// evenly spaced points, starting at angle zero and running counterclockwise.
// The path is open: the last point does not repeat the first.
func Circle(cx, cy, r float64, count int) domain.CanvasPath {
	if count < 1 {
		count = 1
	}
	path := make(domain.CanvasPath, count)
	for i := range path {
		angle := float64(i) / float64(count) * 2 * math.Pi
		path[i] = domain.Pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return path
}

// Closed appends the first point to p so the stroke returns to its start.
func Closed(p domain.CanvasPath) domain.CanvasPath {
	if len(p) < 2 {
		return p
	}
	out := make(domain.CanvasPath, 0, len(p)+1)
	out = append(out, p...)
	return append(out, p[0])
}

// Rect returns the four corners of an axis-aligned rectangle, counterclockwise
// from (x, y).
func Rect(x, y, w, h float64) domain.CanvasPath {
	return domain.CanvasPath{
		domain.Pt(x, y),
		domain.Pt(x+w, y),
		domain.Pt(x+w, y+h),
		domain.Pt(x, y+h),
	}
}
