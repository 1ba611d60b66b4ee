package shape_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/easel/pkg/domain"
	"github.com/aretw0/easel/pkg/shape"
)

func TestCircle(t *testing.T) {
	path := shape.Circle(10, 20, 100, 32)
	require.Len(t, path, 32)

	for _, p := range path {
		assert.InDelta(t, 100, math.Hypot(p.X-10, p.Y-20), 1e-9)
	}
	assert.InDelta(t, 110, path[0].X, 1e-9)
	assert.InDelta(t, 20, path[0].Y, 1e-9)
	assert.InDelta(t, 120, path[8].Y, 1e-9, "quarter turn")
}

func TestCircle_AtLeastOnePoint(t *testing.T) {
	assert.Len(t, shape.Circle(0, 0, 1, 0), 1)
}

func TestClosed(t *testing.T) {
	rect := shape.Rect(0, 0, 1000, 1000)
	closed := shape.Closed(rect)

	require.Len(t, closed, 5)
	assert.Equal(t, rect[0], closed[4])
	assert.Len(t, rect, 4, "input is not modified")

	dot := domain.CanvasPath{domain.Pt(1, 1)}
	assert.Equal(t, dot, shape.Closed(dot))
}
