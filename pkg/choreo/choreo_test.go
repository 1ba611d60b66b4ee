package choreo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/quat"

	"github.com/aretw0/easel/pkg/choreo"
	"github.com/aretw0/easel/pkg/domain"
	"github.com/aretw0/easel/pkg/transform"
)

func originFrame() transform.Frame {
	return transform.NewFrame(domain.NewPose(0, 0, 0, domain.IdentityOrientation), transform.NewScaler(0))
}

func assertPosition(t *testing.T, want [3]float64, got domain.Pose, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want[0], got.Position.X, 1e-9, msgAndArgs...)
	assert.InDelta(t, want[1], got.Position.Y, 1e-9, msgAndArgs...)
	assert.InDelta(t, want[2], got.Position.Z, 1e-9, msgAndArgs...)
}

func TestSynthesize_UnitSquare(t *testing.T) {
	current := domain.NewPose(0.5, 0.5, 0.5, domain.IdentityOrientation)
	square := domain.CanvasPath{
		domain.Pt(0, 0),
		domain.Pt(1000, 0),
		domain.Pt(1000, 1000),
		domain.Pt(0, 1000),
	}

	waypoints := choreo.Synthesize(originFrame(), current, square, 0.2)

	want := [][3]float64{
		{0.5, 0.5, 0.5},
		{0, 0, 0.2},
		{0, 0, 0},
		{0, 0, 0},
		{1, 0, 0},
		{1, 1, 0},
		{0, 1, 0},
		{0, 1, 0.2},
	}
	require.Len(t, waypoints, len(want))
	for i, w := range want {
		assertPosition(t, w, waypoints[i], "waypoint %d", i)
		assert.Equal(t, domain.IdentityOrientation, waypoints[i].Orientation)
	}
}

func TestSynthesize_Length(t *testing.T) {
	frame := originFrame()
	current := domain.NewPose(0, 0, 0.1, domain.IdentityOrientation)

	for n := 1; n <= 40; n++ {
		path := make(domain.CanvasPath, n)
		for i := range path {
			path[i] = domain.Pt(float64(i), float64(i*i))
		}
		waypoints := choreo.Synthesize(frame, current, path, 0.01)
		assert.Len(t, waypoints, 1+1+1+n+1, "path of %d points", n)
	}
}

func TestSynthesize_Dot(t *testing.T) {
	current := domain.NewPose(0, 0, 0.3, domain.IdentityOrientation)
	waypoints := choreo.Synthesize(originFrame(), current, domain.CanvasPath{domain.Pt(100, 200)}, 0.01)

	require.Len(t, waypoints, 5)
	assertPosition(t, [3]float64{0.1, 0.2, 0.01}, waypoints[1])
	assertPosition(t, [3]float64{0.1, 0.2, 0}, waypoints[2])
	assertPosition(t, [3]float64{0.1, 0.2, 0}, waypoints[3])
	assertPosition(t, [3]float64{0.1, 0.2, 0.01}, waypoints[4])
}

func TestSynthesize_SnapshotsCurrentPose(t *testing.T) {
	current := domain.NewPose(1, 2, 3, domain.IdentityOrientation)
	waypoints := choreo.Synthesize(originFrame(), current, domain.CanvasPath{domain.Pt(0, 0)}, 0.01)

	current.Position.X = -7
	assert.Equal(t, 1.0, waypoints[0].Position.X)
}

func TestSynthesize_RelativeToReference(t *testing.T) {
	orientation := quat.Number{Real: 0, Jmag: 1}
	frame := transform.NewFrame(domain.NewPose(0.2, -0.3, 0.4, orientation), transform.NewScaler(0))

	waypoints := choreo.Synthesize(frame, frame.Reference, domain.CanvasPath{domain.Pt(100, 100), domain.Pt(200, 0)}, 0.05)

	require.Len(t, waypoints, 6)
	assertPosition(t, [3]float64{0.3, -0.2, 0.45}, waypoints[1])
	assertPosition(t, [3]float64{0.4, -0.3, 0.45}, waypoints[5])
	for _, wp := range waypoints {
		assert.Equal(t, orientation, wp.Orientation)
	}
}

func TestDip_FivePoses(t *testing.T) {
	frame := originFrame()
	spec := choreo.DipSpec{OffsetX: -0.1, OffsetY: -0.1, Retreat: 0.2}

	currents := []domain.Pose{
		domain.NewPose(0, 0, 0, domain.IdentityOrientation),
		domain.NewPose(0.7, 0.3, 0.01, domain.IdentityOrientation),
		domain.NewPose(-5, 5, 5, domain.IdentityOrientation),
	}
	for _, current := range currents {
		waypoints := choreo.Dip(frame, current, spec)
		require.Len(t, waypoints, choreo.DipLength)

		up := [3]float64{current.Position.X, current.Position.Y, current.Position.Z + 0.2}
		assertPosition(t, up, waypoints[0])
		assertPosition(t, [3]float64{-0.1, -0.1, 0.2}, waypoints[1])
		assertPosition(t, [3]float64{-0.1, -0.1, 0}, waypoints[2])
		assertPosition(t, [3]float64{-0.1, -0.1, 0.2}, waypoints[3])
		assertPosition(t, up, waypoints[4])
	}
}

func TestDip_ZeroSpec(t *testing.T) {
	assert.Len(t, choreo.Dip(originFrame(), domain.Pose{}, choreo.DipSpec{}), choreo.DipLength)
}
