package job_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/easel/pkg/domain"
	"github.com/aretw0/easel/pkg/job"
	"github.com/aretw0/easel/pkg/shape"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := write(t, "square.yaml", `
paths:
  - [[0, 0], [1000, 0], [1000, 1000], [0, 1000]]
  - [[500, 500]]
`)
	name, paths, err := job.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "square", name)
	require.Len(t, paths, 2)
	assert.Equal(t, shape.Rect(0, 0, 1000, 1000), paths[0])
	assert.Equal(t, domain.CanvasPath{domain.Pt(500, 500)}, paths[1])
}

func TestLoad_JSON(t *testing.T) {
	path := write(t, "dots.json", `{"name": "dots", "paths": [[[1, 2]], [[3, 4]]]}`)
	name, paths, err := job.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dots", name)
	assert.Equal(t, domain.Pt(3, 4), paths[1][0])
}

func TestLoad_RejectsEmptyPath(t *testing.T) {
	_, _, err := job.Load(write(t, "bad.yaml", "paths:\n  - []\n"))
	assert.ErrorIs(t, err, domain.ErrEmptyPath)
}

func TestLoad_RejectsEmptyJob(t *testing.T) {
	_, _, err := job.Load(write(t, "empty.yaml", "name: nothing\n"))
	assert.Error(t, err)
}

func TestFromPaths_RoundTripsThroughYAML(t *testing.T) {
	circle := shape.Circle(0, 0, 100, 8)
	data, err := yaml.Marshal(job.FromPaths("circle", []domain.CanvasPath{circle}))
	require.NoError(t, err)

	_, paths, err := job.Load(write(t, "circle.yaml", string(data)))
	require.NoError(t, err)
	require.Len(t, paths, 1)
	for i := range circle {
		assert.InDelta(t, circle[i].X, paths[0][i].X, 1e-9)
		assert.InDelta(t, circle[i].Y, paths[0][i].Y, 1e-9)
	}
}

func TestSave(t *testing.T) {
	paths := []domain.CanvasPath{shape.Circle(0, 0, 100, 8)}

	for _, ext := range []string{".yaml", ".json"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "circle"+ext)
			require.NoError(t, job.FromPaths("circle", paths).Save(path))

			name, loaded, err := job.Load(path)
			require.NoError(t, err)
			assert.Equal(t, "circle", name)
			require.Len(t, loaded, 1)
			assert.Len(t, loaded[0], 8)
			assert.InDelta(t, 100, loaded[0][0].X, 1e-9)
		})
	}
}
