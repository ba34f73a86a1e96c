// Package mesh: boundary detection and boundary-loop extraction.
//
// A boundary half-edge is a directed entry whose target is the open
// boundary; its reverse always bounds a real face. Loop extraction walks
// consecutive boundary half-edges from a deterministic seed (the boundary
// vertex with the lexicographically smallest position) and repeats until
// every boundary half-edge is consumed, so multi-boundary meshes yield one
// loop per hole.

package mesh

// IsVertexOnBoundary reports whether any half-edge leaving the vertex faces
// the open boundary. Returns ErrVertexNotFound if the key does not exist.
func (m *Mesh) IsVertexOnBoundary(key int) (bool, error) {
	row, exists := m.halfedge[key]
	if !exists {
		return false, ErrVertexNotFound
	}
	for _, t := range row {
		if t.OnBoundary() {
			return true, nil
		}
	}

	return false, nil
}

// IsEdgeOnBoundary reports whether the undirected edge {u,v} faces the open
// boundary in either direction. Returns ErrEdgeNotFound if the edge does not
// exist.
func (m *Mesh) IsEdgeOnBoundary(u, v int) (bool, error) {
	if !m.HasEdge(u, v) {
		return false, ErrEdgeNotFound
	}

	return m.halfedge[u][v].OnBoundary() || m.halfedge[v][u].OnBoundary(), nil
}

// IsFaceOnBoundary reports whether any edge of the face faces the open
// boundary. Returns ErrFaceNotFound if the key does not exist.
func (m *Mesh) IsFaceOnBoundary(fkey int) (bool, error) {
	cycle, exists := m.faces[fkey]
	if !exists {
		return false, ErrFaceNotFound
	}
	n := len(cycle)
	for i, u := range cycle {
		v := cycle[(i+1)%n]
		if m.halfedge[v][u].OnBoundary() {
			return true, nil
		}
	}

	return false, nil
}

// EdgesOnBoundary returns every boundary half-edge as a directed pair (u,v)
// with the open boundary to the left of u→v, sorted lexicographically.
// Complexity: O(E log E)
func (m *Mesh) EdgesOnBoundary() [][2]int {
	var out [][2]int
	for u, row := range m.halfedge {
		for v, t := range row {
			if t.OnBoundary() {
				out = append(out, [2]int{u, v})
			}
		}
	}
	sortEdges(out)

	return out
}

// FacesOnBoundary returns all faces with at least one boundary edge, in
// ascending key order.
// Complexity: O(F + E)
func (m *Mesh) FacesOnBoundary() []int {
	seen := make(map[int]struct{})
	for u, row := range m.halfedge {
		for v, t := range row {
			if !t.OnBoundary() {
				continue
			}
			// The reverse of a boundary half-edge bounds the rim face.
			if f, ok := m.halfedge[v][u].Face(); ok {
				seen[f] = struct{}{}
			}
		}
	}

	return sortedIntKeys(seen)
}

// VerticesOnBoundary returns one ordered boundary loop: the loop through the
// boundary vertex with the lexicographically smallest position. Returns nil
// when the mesh has no boundary. A boundary walk that cannot close reports
// ErrMalformedTopology.
// Complexity: O(E + B log B) with B the boundary size.
func (m *Mesh) VerticesOnBoundary() ([]int, error) {
	remaining := m.boundaryHalfEdgeSet()
	if len(remaining) == 0 {
		return nil, nil
	}
	seed := m.seedBoundaryVertex(remaining)

	return m.walkBoundaryLoop(seed, remaining)
}

// VerticesOnBoundaries returns every boundary loop as an ordered vertex
// cycle, extracted by repeating the deterministic seed-and-walk until all
// boundary half-edges are consumed. Loops come back in seed order.
func (m *Mesh) VerticesOnBoundaries() ([][]int, error) {
	remaining := m.boundaryHalfEdgeSet()
	var loops [][]int
	for len(remaining) > 0 {
		seed := m.seedBoundaryVertex(remaining)
		loop, err := m.walkBoundaryLoop(seed, remaining)
		if err != nil {
			return nil, err
		}
		loops = append(loops, loop)
	}

	return loops, nil
}

// Internal helpers:
////////////////////

// boundaryHalfEdgeSet collects every directed half-edge facing the boundary.
func (m *Mesh) boundaryHalfEdgeSet() map[[2]int]struct{} {
	out := make(map[[2]int]struct{})
	for u, row := range m.halfedge {
		for v, t := range row {
			if t.OnBoundary() {
				out[[2]int{u, v}] = struct{}{}
			}
		}
	}

	return out
}

// seedBoundaryVertex picks the walk seed among the origins of the remaining
// boundary half-edges: lexicographically smallest by position, ties broken
// by key. Falls back to key order alone when a position is unreadable.
func (m *Mesh) seedBoundaryVertex(remaining map[[2]int]struct{}) int {
	candidates := make(map[int]struct{})
	for he := range remaining {
		candidates[he[0]] = struct{}{}
	}
	keys := sortedIntKeys(candidates)
	seed := keys[0]
	seedPos, err := m.VertexPosition(seed)
	if err != nil {
		return seed
	}
	for _, k := range keys[1:] {
		pos, err := m.VertexPosition(k)
		if err != nil {
			continue
		}
		if lexLess(pos, seedPos) {
			seed, seedPos = k, pos
		}
	}

	return seed
}

// walkBoundaryLoop follows consecutive boundary half-edges from seed until
// the loop closes, consuming them from remaining. Ties at pinch vertices
// (several outgoing boundary half-edges) resolve to the smallest neighbor
// key. The walk is bounded by the remaining boundary size; exceeding it, or
// running out of continuations, reports ErrMalformedTopology.
func (m *Mesh) walkBoundaryLoop(seed int, remaining map[[2]int]struct{}) ([]int, error) {
	bound := len(remaining)
	loop := make([]int, 1, bound)
	loop[0] = seed
	current := seed
	for steps := 0; ; steps++ {
		if steps > bound {
			return nil, ErrMalformedTopology
		}
		next, ok := m.nextBoundaryStep(current, remaining)
		if !ok {
			return nil, ErrMalformedTopology
		}
		delete(remaining, [2]int{current, next})
		if next == seed {
			break
		}
		loop = append(loop, next)
		current = next
	}

	return loop, nil
}

// nextBoundaryStep returns the smallest-key continuation of the boundary
// walk at current that has not been consumed yet.
func (m *Mesh) nextBoundaryStep(current int, remaining map[[2]int]struct{}) (int, bool) {
	best, found := 0, false
	for v, t := range m.halfedge[current] {
		if !t.OnBoundary() {
			continue
		}
		if _, open := remaining[[2]int{current, v}]; !open {
			continue
		}
		if !found || v < best {
			best, found = v, true
		}
	}

	return best, found
}
