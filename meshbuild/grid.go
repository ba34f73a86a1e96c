// Package meshbuild: open fixtures — quad grids and single polygons.

package meshbuild

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/meshweave/hemesh/mesh"
)

const (
	methodGrid    = "Grid"
	methodPolygon = "Polygon"
)

// Grid returns a Constructor that builds an nx×ny quad grid in the z=0
// plane with spacing d: (nx+1)·(ny+1) vertices and nx·ny consistently
// oriented quad faces. The result is open — its rim is one boundary loop.
//
// Errors: ErrBadDimension when nx < 1, ny < 1, or d <= 0.
// Complexity: O(nx·ny)
func Grid(nx, ny int, d float64) Constructor {
	return func(m *mesh.Mesh, cfg buildConfig) error {
		if nx < 1 || ny < 1 {
			return fmt.Errorf("%s: extents %d×%d: %w", methodGrid, nx, ny, ErrBadDimension)
		}
		if d <= 0 {
			return fmt.Errorf("%s: spacing %g: %w", methodGrid, d, ErrBadDimension)
		}

		// Vertices row-major: index(i,j) = j*(nx+1) + i.
		vertices := make([]r3.Vec, 0, (nx+1)*(ny+1))
		for j := 0; j <= ny; j++ {
			for i := 0; i <= nx; i++ {
				vertices = append(vertices, r3.Vec{X: float64(i) * d, Y: float64(j) * d})
			}
		}
		faces := make([][]int, 0, nx*ny)
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				a := j*(nx+1) + i
				faces = append(faces, []int{a, a + 1, a + nx + 2, a + nx + 1})
			}
		}
		if err := emit(m, cfg, vertices, faces); err != nil {
			return fmt.Errorf("%s: %w", methodGrid, err)
		}

		return nil
	}
}

// Polygon returns a Constructor that builds a single n-gon face over the
// given points, in order. The result is open — every edge is a boundary
// edge.
//
// Errors: ErrBadDimension when fewer than 3 points are given.
// Complexity: O(n)
func Polygon(points []r3.Vec) Constructor {
	return func(m *mesh.Mesh, cfg buildConfig) error {
		if len(points) < 3 {
			return fmt.Errorf("%s: %d points: %w", methodPolygon, len(points), ErrBadDimension)
		}
		cycle := make([]int, len(points))
		for i := range cycle {
			cycle[i] = i
		}
		if err := emit(m, cfg, points, [][]int{cycle}); err != nil {
			return fmt.Errorf("%s: %w", methodPolygon, err)
		}

		return nil
	}
}
