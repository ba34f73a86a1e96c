// Package mesh: structural validity and shape predicates.
//
// Each predicate is an independent O(V+E+F) scan over the topology store;
// none of them caches or shares computed state. Validate reports the first
// invariant violation as an error wrapping ErrMalformedTopology; IsValid is
// its boolean form.

package mesh

import "fmt"

// Validate checks the half-edge invariants and returns nil when they all
// hold:
//
//   - the topology store and the vertex attribute store list the same keys;
//   - every half-edge endpoint is a known vertex;
//   - every non-boundary half-edge target references an existing face;
//   - every half-edge has its reverse, and never both on the boundary;
//   - every face cycle agrees with the half-edge entries referencing it.
//
// The first violation is reported as an error wrapping ErrMalformedTopology.
// Complexity: O(V+E+F)
func (m *Mesh) Validate() error {
	for key := range m.vertexAttr {
		if _, ok := m.halfedge[key]; !ok {
			return fmt.Errorf("vertex %d has attributes but no adjacency row: %w", key, ErrMalformedTopology)
		}
	}
	for u, row := range m.halfedge {
		if _, ok := m.vertexAttr[u]; !ok {
			return fmt.Errorf("vertex %d has an adjacency row but no attributes: %w", u, ErrMalformedTopology)
		}
		for v, t := range row {
			if _, ok := m.vertexAttr[v]; !ok {
				return fmt.Errorf("half-edge %d→%d targets an unknown vertex: %w", u, v, ErrMalformedTopology)
			}
			if f, ok := t.Face(); ok {
				if _, exists := m.faces[f]; !exists {
					return fmt.Errorf("half-edge %d→%d references missing face %d: %w", u, v, f, ErrMalformedTopology)
				}
			}
			reverse, ok := m.halfedge[v][u]
			if !ok {
				return fmt.Errorf("half-edge %d→%d has no reverse entry: %w", u, v, ErrMalformedTopology)
			}
			if t.OnBoundary() && reverse.OnBoundary() {
				return fmt.Errorf("edge {%d,%d} faces the boundary in both directions: %w", u, v, ErrMalformedTopology)
			}
		}
	}
	for fkey, cycle := range m.faces {
		n := len(cycle)
		for i, u := range cycle {
			v := cycle[(i+1)%n]
			f, ok := m.halfedge[u][v].Face()
			if !ok || f != fkey {
				return fmt.Errorf("face %d cycle disagrees with half-edge %d→%d: %w", fkey, u, v, ErrMalformedTopology)
			}
		}
	}

	return nil
}

// IsValid reports whether the half-edge invariants hold.
func (m *Mesh) IsValid() bool { return m.Validate() == nil }

// IsManifold reports whether every edge borders at most two faces and the
// faces around every vertex form one contiguous fan with at most one
// outgoing boundary half-edge. An empty mesh and isolated vertices are not
// manifold.
// Complexity: O(V+E)
func (m *Mesh) IsManifold() bool {
	if len(m.vertexAttr) == 0 {
		return false
	}
	for key, row := range m.halfedge {
		if len(row) == 0 {
			return false // isolated vertex
		}
		boundaries := 0
		for _, t := range row {
			if t.OnBoundary() {
				boundaries++
			}
		}
		if boundaries > 1 {
			return false
		}
		ordered, err := m.VertexNeighborsOrdered(key)
		if err != nil || len(ordered) != len(row) {
			return false // broken or split fan
		}
	}

	return true
}

// IsRegular reports whether all vertices share one degree and all faces
// share one degree. An empty mesh is vacuously regular.
// Complexity: O(V+F)
func (m *Mesh) IsRegular() bool {
	first := true
	var vdeg int
	for _, row := range m.halfedge {
		if first {
			vdeg, first = len(row), false
			continue
		}
		if len(row) != vdeg {
			return false
		}
	}
	first = true
	var fdeg int
	for _, cycle := range m.faces {
		if first {
			fdeg, first = len(cycle), false
			continue
		}
		if len(cycle) != fdeg {
			return false
		}
	}

	return true
}

// IsTriangleMesh reports whether the mesh has faces and every face is a
// triangle. Complexity: O(F)
func (m *Mesh) IsTriangleMesh() bool {
	if len(m.faces) == 0 {
		return false
	}
	for _, cycle := range m.faces {
		if len(cycle) != 3 {
			return false
		}
	}

	return true
}

// IsQuadMesh reports whether the mesh has faces and every face is a quad.
// Complexity: O(F)
func (m *Mesh) IsQuadMesh() bool {
	if len(m.faces) == 0 {
		return false
	}
	for _, cycle := range m.faces {
		if len(cycle) != 4 {
			return false
		}
	}

	return true
}

// Euler returns the Euler characteristic V′ − E + F, where V′ counts only
// vertices with at least one neighbor. For a closed genus-0 manifold this
// equals 2.
// Complexity: O(V+E)
func (m *Mesh) Euler() int {
	v := 0
	for _, row := range m.halfedge {
		if len(row) > 0 {
			v++
		}
	}

	return v - m.NumberOfEdges() + len(m.faces)
}

// IsOrientable is intentionally unimplemented: no orientation-consistency
// algorithm has been validated for this structure yet. It always returns
// ErrNotSupported rather than guessing.
func (m *Mesh) IsOrientable() (bool, error) {
	return false, fmt.Errorf("IsOrientable: %w", ErrNotSupported)
}

// Genus would derive the handle count from the Euler characteristic and the
// boundary-loop count, but that derivation is only sound for orientable
// meshes and IsOrientable is unimplemented. It fails explicitly instead of
// computing a possibly wrong value.
func (m *Mesh) Genus() (int, error) {
	if _, err := m.IsOrientable(); err != nil {
		return 0, fmt.Errorf("Genus: %w", err)
	}

	// Unreachable until IsOrientable is implemented.
	loops, err := m.VerticesOnBoundaries()
	if err != nil {
		return 0, fmt.Errorf("Genus: %w", err)
	}

	return (2 - len(loops) - m.Euler()) / 2, nil
}
