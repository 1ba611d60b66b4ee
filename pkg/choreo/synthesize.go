package choreo

import (
	"github.com/aretw0/easel/pkg/domain"
	"github.com/aretw0/easel/pkg/transform"
)

// Synthesize builds the waypoint list that paints path.
//
// The list starts at current, hovers hoverOffset above the first point,
// touches down, traces every point at canvas height and lifts off above the
// last point. The first point is visited twice (touch-down and first trace
// point); both resolve to the same pose. A single-point path paints a dot.
//
// hoverOffset must be positive. path must be non-empty.
func Synthesize(frame transform.Frame, current domain.Pose, path domain.CanvasPath, hoverOffset float64) domain.WaypointList {
	waypoints := make(domain.WaypointList, 0, len(path)+4)
	waypoints = append(waypoints, current)

	first := path.First()
	waypoints = append(waypoints,
		frame.At(first, hoverOffset),
		frame.At(first, 0),
	)

	for _, pt := range path {
		waypoints = append(waypoints, frame.At(pt, 0))
	}

	return append(waypoints, frame.At(path.Last(), hoverOffset))
}
