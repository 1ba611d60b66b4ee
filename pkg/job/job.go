// Package job loads the canvas paths of a painting job from a file.
package job

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/easel/pkg/domain"
)

// File is the on-disk job format. Each path is a list of [x, y] pairs in
// canvas units.
//
//	name: square
//	paths:
//	  - [[0, 0], [1000, 0], [1000, 1000], [0, 1000]]
type File struct {
	Name  string         `yaml:"name" json:"name"`
	Paths [][][2]float64 `yaml:"paths" json:"paths"`
}

// Load reads a job file (YAML or JSON) and returns its paths.
func Load(path string) (string, []domain.CanvasPath, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read job: %w", err)
	}

	var f File
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &f); err != nil {
			return "", nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &f); err != nil {
			return "", nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	paths, err := f.CanvasPaths()
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", path, err)
	}
	name := f.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return name, paths, nil
}

// CanvasPaths converts and validates the paths of f.
func (f File) CanvasPaths() ([]domain.CanvasPath, error) {
	if len(f.Paths) == 0 {
		return nil, fmt.Errorf("job has no paths")
	}
	paths := make([]domain.CanvasPath, len(f.Paths))
	for i, raw := range f.Paths {
		path := make(domain.CanvasPath, len(raw))
		for j, pt := range raw {
			path[j] = domain.Pt(pt[0], pt[1])
		}
		if err := path.Validate(); err != nil {
			return nil, fmt.Errorf("path %d: %w", i, err)
		}
		paths[i] = path
	}
	return paths, nil
}

// FromPaths builds a File, e.g. to save a generated shape.
func FromPaths(name string, paths []domain.CanvasPath) File {
	f := File{Name: name, Paths: make([][][2]float64, len(paths))}
	for i, path := range paths {
		f.Paths[i] = make([][2]float64, len(path))
		for j, pt := range path {
			f.Paths[i][j] = [2]float64{pt.X, pt.Y}
		}
	}
	return f
}

// Save writes f to path as YAML, or JSON for a .json extension.
func (f File) Save(path string) error {
	var (
		data []byte
		err  error
	)
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		data, err = json.MarshalIndent(f, "", "  ")
	} else {
		data, err = yaml.Marshal(f)
	}
	if err != nil {
		return fmt.Errorf("failed to encode job: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write job: %w", err)
	}
	return nil
}
