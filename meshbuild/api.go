// Package meshbuild: thin public entry-points.
//
// Design contract (strict):
//   - One orchestrator: Build(mopts, bopts, cons...). Creates the mesh,
//     resolves the config, runs the constructors in order.
//   - Functional options (BuildOption) resolve into an immutable buildConfig;
//     no global state.
//   - Constructors validate parameters early and return sentinel errors.

package meshbuild

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/meshweave/hemesh/mesh"
)

// Constructor applies one deterministic construction step to the mesh using
// the resolved buildConfig. Constructors must validate early, return only
// sentinel-wrapped errors, and emit vertices and faces in a stable order.
type Constructor func(m *mesh.Mesh, cfg buildConfig) error

// BuildOption configures the shared build knobs.
type BuildOption func(*buildConfig)

// buildConfig aggregates the knobs used by constructors. It is passed by
// value, so constructors cannot leak mutations into each other.
type buildConfig struct {
	scale  float64 // coordinate scale factor, > 0
	origin r3.Vec  // translation applied after scaling
}

const defaultScale = 1.0

// WithScale sets the coordinate scale factor (values <= 0 fall back to 1).
func WithScale(s float64) BuildOption {
	return func(c *buildConfig) {
		if s > 0 {
			c.scale = s
		}
	}
}

// WithOrigin translates all emitted coordinates by p.
func WithOrigin(p r3.Vec) BuildOption {
	return func(c *buildConfig) { c.origin = p }
}

// newBuildConfig resolves deterministic defaults, then applies the options
// in order (later overrides earlier).
// Complexity: O(len(opts))
func newBuildConfig(opts ...BuildOption) buildConfig {
	cfg := buildConfig{scale: defaultScale}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// place maps a canonical coordinate into the configured frame.
func (c buildConfig) place(p r3.Vec) r3.Vec {
	return r3.Add(r3.Scale(c.scale, p), c.origin)
}

// Build creates a new mesh with the given mesh options, resolves the build
// configuration, and applies all constructors in order. The first
// constructor error is wrapped with "Build:" and returned immediately; no
// partial cleanup is attempted.
//
// Errors: ErrConstructFailed for a nil constructor; otherwise whatever the
// constructors return (branch with errors.Is against the package sentinels).
func Build(mopts []mesh.Option, bopts []BuildOption, cons ...Constructor) (*mesh.Mesh, error) {
	m := mesh.NewMesh(mopts...)
	cfg := newBuildConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return m, nil
}

// emit adds a canonical vertex/face table to the mesh with auto-allocated
// keys, returning nothing: the local index mapping stays internal, so
// several constructors compose without key collisions.
func emit(m *mesh.Mesh, cfg buildConfig, vertices []r3.Vec, faces [][]int) error {
	keys := make([]int, len(vertices))
	for i, pos := range vertices {
		key, err := m.AddVertex(mesh.VertexPosition(cfg.place(pos)))
		if err != nil {
			return err
		}
		keys[i] = key
	}
	cycle := make([]int, 0, 8)
	for _, face := range faces {
		cycle = cycle[:0]
		for _, v := range face {
			cycle = append(cycle, keys[v])
		}
		if _, err := m.AddFace(cycle); err != nil {
			return err
		}
	}

	return nil
}
