// Package mesh: geometric accessors over the x,y,z vertex attributes.
//
// The mesh itself is purely topological; positions live in the attribute
// store as the x, y, z names (seeded by the vertex defaults) and surface
// here as gonum r3 vectors. These helpers feed InsertVertex (centroid
// default) and boundary-loop seeding (lexicographic position order).

package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// VertexPosition returns the vertex position read from its x,y,z attributes.
// Returns ErrVertexNotFound if the key does not exist.
func (m *Mesh) VertexPosition(key int) (r3.Vec, error) {
	if !m.HasVertex(key) {
		return r3.Vec{}, ErrVertexNotFound
	}
	var pos r3.Vec
	var err error
	if pos.X, err = m.vertexCoord(key, "x"); err != nil {
		return r3.Vec{}, err
	}
	if pos.Y, err = m.vertexCoord(key, "y"); err != nil {
		return r3.Vec{}, err
	}
	if pos.Z, err = m.vertexCoord(key, "z"); err != nil {
		return r3.Vec{}, err
	}

	return pos, nil
}

// SetVertexPosition writes the vertex position into its x,y,z attributes.
// Returns ErrVertexNotFound if the key does not exist.
func (m *Mesh) SetVertexPosition(key int, pos r3.Vec) error {
	attrs, exists := m.vertexAttr[key]
	if !exists {
		return ErrVertexNotFound
	}
	attrs["x"], attrs["y"], attrs["z"] = pos.X, pos.Y, pos.Z

	return nil
}

// VertexPositions returns the positions of all vertices in ascending key
// order, alongside the keys themselves.
func (m *Mesh) VertexPositions() ([]int, []r3.Vec, error) {
	keys := m.Vertices()
	out := make([]r3.Vec, len(keys))
	for i, k := range keys {
		pos, err := m.VertexPosition(k)
		if err != nil {
			return nil, nil, err
		}
		out[i] = pos
	}

	return keys, out, nil
}

// FaceCentroid returns the average position of the face's vertices.
// Returns ErrFaceNotFound if the key does not exist.
func (m *Mesh) FaceCentroid(fkey int) (r3.Vec, error) {
	cycle, exists := m.faces[fkey]
	if !exists {
		return r3.Vec{}, ErrFaceNotFound
	}
	var sum r3.Vec
	for _, v := range cycle {
		pos, err := m.VertexPosition(v)
		if err != nil {
			return r3.Vec{}, err
		}
		sum = r3.Add(sum, pos)
	}

	return r3.Scale(1/float64(len(cycle)), sum), nil
}

// FaceNormal returns the face normal by Newell's method, scaled by the face
// area (not normalized; a degenerate face yields the zero vector).
// Returns ErrFaceNotFound if the key does not exist.
func (m *Mesh) FaceNormal(fkey int) (r3.Vec, error) {
	cycle, exists := m.faces[fkey]
	if !exists {
		return r3.Vec{}, ErrFaceNotFound
	}
	var sum r3.Vec
	n := len(cycle)
	for i, u := range cycle {
		pu, err := m.VertexPosition(u)
		if err != nil {
			return r3.Vec{}, err
		}
		pv, err := m.VertexPosition(cycle[(i+1)%n])
		if err != nil {
			return r3.Vec{}, err
		}
		sum = r3.Add(sum, r3.Cross(pu, pv))
	}

	return r3.Scale(0.5, sum), nil
}

// FaceArea returns the face area, the norm of the Newell normal.
// Returns ErrFaceNotFound if the key does not exist.
func (m *Mesh) FaceArea(fkey int) (float64, error) {
	normal, err := m.FaceNormal(fkey)
	if err != nil {
		return 0, err
	}

	return r3.Norm(normal), nil
}

// VertexTributaryArea returns the portion of the total mesh area attributed
// to the vertex: for every incident face, its area divided by its degree.
// Returns ErrVertexNotFound if the key does not exist.
func (m *Mesh) VertexTributaryArea(key int) (float64, error) {
	fkeys, err := m.VertexFaces(key)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, f := range fkeys {
		area, err := m.FaceArea(f)
		if err != nil {
			return 0, err
		}
		total += area / float64(len(m.faces[f]))
	}

	return total, nil
}

// Centroid returns the average position of all vertices (zero for an empty
// mesh).
func (m *Mesh) Centroid() (r3.Vec, error) {
	keys, positions, err := m.VertexPositions()
	if err != nil {
		return r3.Vec{}, err
	}
	if len(keys) == 0 {
		return r3.Vec{}, nil
	}
	var sum r3.Vec
	for _, pos := range positions {
		sum = r3.Add(sum, pos)
	}

	return r3.Scale(1/float64(len(keys)), sum), nil
}

// Area returns the sum of all face areas.
func (m *Mesh) Area() (float64, error) {
	total := 0.0
	for _, fkey := range m.Faces() {
		area, err := m.FaceArea(fkey)
		if err != nil {
			return 0, err
		}
		total += area
	}

	return total, nil
}

// Internal helpers:
////////////////////

// vertexCoord reads one coordinate attribute as a float64, accepting ints
// (deserialized data may carry either numeric form).
func (m *Mesh) vertexCoord(key int, name string) (float64, error) {
	raw, err := m.VertexAttribute(key, name)
	if err != nil {
		return 0, err
	}
	switch val := raw.(type) {
	case float64:
		return val, nil
	case int:
		return float64(val), nil
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("vertex %d attribute %q is not numeric: %w", key, name, ErrBadAttribute)
	}
}

// lexLess compares positions lexicographically by (x, y, z).
func lexLess(a, b r3.Vec) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}

	return a.Z < b.Z
}
