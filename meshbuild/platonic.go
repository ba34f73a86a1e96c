// Package meshbuild: canonical data & constructors for the Platonic solids.
//
// Design:
//   - Single source of truth for the five Platonic meshes: unit-scale
//     coordinate tables plus consistently oriented face cycles, so every
//     undirected edge carries exactly two opposite half-edges.
//   - The Dodecahedron is derived as the dual of the Icosahedron (face
//     centroids become vertices, ordered vertex fans become faces), which
//     keeps one canonical dataset per shape family.
//   - Enum values equal the face counts (Tetrahedron=4 ... Icosahedron=20),
//     so the conventional numeric shorthand maps directly.

package meshbuild

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/meshweave/hemesh/mesh"
)

// File-local constants (stable method tags for error wrapping).
const (
	methodPlatonic = "PlatonicSolid"
	methodDual     = "Dual"
)

// PlatonicName enumerates the five Platonic solids by face count.
type PlatonicName int

// Enum values (face counts, stable).
const (
	Tetrahedron  PlatonicName = 4  // V=4,  E=6,  F=4
	Hexahedron   PlatonicName = 6  // V=8,  E=12, F=6
	Octahedron   PlatonicName = 8  // V=6,  E=12, F=8
	Dodecahedron PlatonicName = 12 // V=20, E=30, F=12
	Icosahedron  PlatonicName = 20 // V=12, E=30, F=20
)

// String provides a readable identifier for errors (deterministic).
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Hexahedron:
		return "Hexahedron"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return fmt.Sprintf("PlatonicName(%d)", int(p))
	}
}

// phi is the golden ratio, the icosahedron's construction constant.
var phi = (1 + math.Sqrt(5)) / 2

// Canonical vertex/face tables. Face cycles wind consistently: every
// undirected edge appears in exactly two faces, in opposite directions.
var (
	tetraVertices = []r3.Vec{
		{X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: 1},
	}
	tetraFaces = [][]int{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}}

	hexaVertices = []r3.Vec{
		{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
	}
	hexaFaces = [][]int{
		{0, 3, 2, 1}, {4, 5, 6, 7}, {0, 1, 5, 4},
		{1, 2, 6, 5}, {2, 3, 7, 6}, {3, 0, 4, 7},
	}

	octaVertices = []r3.Vec{
		{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
	}
	octaFaces = [][]int{
		{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
		{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
	}

	icosaVertices = []r3.Vec{
		{X: -1, Y: phi}, {X: 1, Y: phi}, {X: -1, Y: -phi}, {X: 1, Y: -phi},
		{Y: -1, Z: phi}, {Y: 1, Z: phi}, {Y: -1, Z: -phi}, {Y: 1, Z: -phi},
		{X: phi, Z: -1}, {X: phi, Z: 1}, {X: -phi, Z: -1}, {X: -phi, Z: 1},
	}
	icosaFaces = [][]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
)

// PlatonicSolid returns a Constructor that builds the chosen solid's shell
// as a closed mesh with consistently oriented faces.
//
// Parameters:
//   - name: one of Tetrahedron, Hexahedron, Octahedron, Dodecahedron,
//     Icosahedron (the enum values double as face counts).
//
// Errors: ErrUnknownSolid for any other value.
// Complexity: O(V+E+F) of the selected solid (constants: V≤20, F≤20).
func PlatonicSolid(name PlatonicName) Constructor {
	return func(m *mesh.Mesh, cfg buildConfig) error {
		switch name {
		case Tetrahedron:
			return emitWrapped(m, cfg, tetraVertices, tetraFaces)
		case Hexahedron:
			return emitWrapped(m, cfg, hexaVertices, hexaFaces)
		case Octahedron:
			return emitWrapped(m, cfg, octaVertices, octaFaces)
		case Icosahedron:
			return emitWrapped(m, cfg, icosaVertices, icosaFaces)
		case Dodecahedron:
			// Canonical derivation: the dodecahedron is the icosahedron's dual.
			icosa, err := Build(nil, nil, PlatonicSolid(Icosahedron))
			if err != nil {
				return fmt.Errorf("%s: icosahedron for dual: %w", methodPlatonic, err)
			}

			return Dual(icosa)(m, cfg)
		default:
			return fmt.Errorf("%s: unknown solid %s: %w", methodPlatonic, name, ErrUnknownSolid)
		}
	}
}

// Dual returns a Constructor that builds the dual of src: one vertex per
// source face at its centroid, one face per source vertex over its ordered
// incident-face fan. The source must be closed (no boundary half-edges) —
// an open mesh has rim vertices whose fans do not close into cycles.
//
// Errors: ErrConstructFailed when src has a boundary or a vertex fan
// degenerates below a triangle.
// Complexity: O(V+E+F) of the source.
func Dual(src *mesh.Mesh) Constructor {
	return func(m *mesh.Mesh, cfg buildConfig) error {
		if len(src.EdgesOnBoundary()) > 0 {
			return fmt.Errorf("%s: source mesh has a boundary: %w", methodDual, ErrConstructFailed)
		}

		// One dual vertex per source face, emitted in face-key order.
		dualVertex := make(map[int]int, src.NumberOfFaces())
		for _, fkey := range src.Faces() {
			centroid, err := src.FaceCentroid(fkey)
			if err != nil {
				return fmt.Errorf("%s: FaceCentroid(%d): %w", methodDual, fkey, err)
			}
			key, err := m.AddVertex(mesh.VertexPosition(cfg.place(centroid)))
			if err != nil {
				return fmt.Errorf("%s: AddVertex: %w", methodDual, err)
			}
			dualVertex[fkey] = key
		}

		// One dual face per source vertex: its incident faces in fan order.
		// The circulation rule is uniform across vertices, so the dual faces
		// wind consistently.
		for _, vkey := range src.Vertices() {
			fan, err := src.VertexFacesOrdered(vkey)
			if err != nil {
				return fmt.Errorf("%s: VertexFacesOrdered(%d): %w", methodDual, vkey, err)
			}
			if len(fan) < 3 {
				return fmt.Errorf("%s: degenerate fan at vertex %d: %w", methodDual, vkey, ErrConstructFailed)
			}
			cycle := make([]int, len(fan))
			for i, fkey := range fan {
				cycle[i] = dualVertex[fkey]
			}
			if _, err := m.AddFace(cycle); err != nil {
				return fmt.Errorf("%s: AddFace: %w", methodDual, err)
			}
		}

		return nil
	}
}

// emitWrapped adapts emit's errors to the platonic method context.
func emitWrapped(m *mesh.Mesh, cfg buildConfig, vertices []r3.Vec, faces [][]int) error {
	if err := emit(m, cfg, vertices, faces); err != nil {
		return fmt.Errorf("%s: %w", methodPlatonic, err)
	}

	return nil
}
