// Package mesh: topological query algorithms.
//
// All enumeration methods return deterministic, sorted results; the ordered
// fan variants walk the half-edge map instead and document their own order.
// The ordered walk terminates on a bound derived from the vertex degree and
// reports ErrMalformedTopology when the fan cannot close consistently —
// it never truncates silently.

package mesh

import "sort"

// Vertices returns all vertex keys in ascending order.
// Complexity: O(V log V)
func (m *Mesh) Vertices() []int {
	return sortedIntKeys(m.vertexAttr)
}

// Faces returns all face keys in ascending order.
// Complexity: O(F log F)
func (m *Mesh) Faces() []int {
	return sortedIntKeys(m.faces)
}

// Edges returns every undirected edge once, as (u,v) with u < v, sorted
// lexicographically.
// Complexity: O(E log E)
func (m *Mesh) Edges() [][2]int {
	out := make([][2]int, 0, len(m.edgeAttr))
	for u, row := range m.halfedge {
		for v := range row {
			if u < v {
				out = append(out, [2]int{u, v})
			}
		}
	}
	sortEdges(out)

	return out
}

// NumberOfVertices returns the vertex count. O(1).
func (m *Mesh) NumberOfVertices() int { return len(m.vertexAttr) }

// NumberOfFaces returns the face count. O(1).
func (m *Mesh) NumberOfFaces() int { return len(m.faces) }

// NumberOfEdges returns the undirected edge count. O(V+E).
func (m *Mesh) NumberOfEdges() int {
	n := 0
	for u, row := range m.halfedge {
		for v := range row {
			if u < v {
				n++
			}
		}
	}

	return n
}

// HasVertex reports whether the vertex key exists. O(1).
func (m *Mesh) HasVertex(key int) bool {
	_, exists := m.vertexAttr[key]

	return exists
}

// HasFace reports whether the face key exists. O(1).
func (m *Mesh) HasFace(fkey int) bool {
	_, exists := m.faces[fkey]

	return exists
}

// HasEdge reports whether the undirected edge {u,v} exists in either
// direction. O(1).
func (m *Mesh) HasEdge(u, v int) bool {
	if _, ok := m.halfedge[u][v]; ok {
		return true
	}
	_, ok := m.halfedge[v][u]

	return ok
}

// HasHalfEdge reports whether the directed half-edge u→v exists. O(1).
func (m *Mesh) HasHalfEdge(u, v int) bool {
	_, ok := m.halfedge[u][v]

	return ok
}

// HalfEdge returns the target of the directed half-edge u→v.
// Returns ErrEdgeNotFound if that direction does not exist.
func (m *Mesh) HalfEdge(u, v int) (HalfEdgeTarget, error) {
	t, ok := m.halfedge[u][v]
	if !ok {
		return HalfEdgeTarget{}, ErrEdgeNotFound
	}

	return t, nil
}

// VertexDegree returns the number of neighbors of the vertex.
// Returns ErrVertexNotFound if the key does not exist.
func (m *Mesh) VertexDegree(key int) (int, error) {
	row, exists := m.halfedge[key]
	if !exists {
		return 0, ErrVertexNotFound
	}

	return len(row), nil
}

// FaceDegree returns the number of vertices in the face's boundary cycle.
// Returns ErrFaceNotFound if the key does not exist.
func (m *Mesh) FaceDegree(fkey int) (int, error) {
	cycle, exists := m.faces[fkey]
	if !exists {
		return 0, ErrFaceNotFound
	}

	return len(cycle), nil
}

// FaceVertices returns a copy of the face's ordered vertex cycle.
// Returns ErrFaceNotFound if the key does not exist.
func (m *Mesh) FaceVertices(fkey int) ([]int, error) {
	cycle, exists := m.faces[fkey]
	if !exists {
		return nil, ErrFaceNotFound
	}

	return append([]int(nil), cycle...), nil
}

// FaceHalfEdges returns the directed half-edges of the face's boundary cycle,
// wrapping, in cycle order.
// Returns ErrFaceNotFound if the key does not exist.
func (m *Mesh) FaceHalfEdges(fkey int) ([][2]int, error) {
	cycle, exists := m.faces[fkey]
	if !exists {
		return nil, ErrFaceNotFound
	}
	n := len(cycle)
	out := make([][2]int, 0, n)
	for i, u := range cycle {
		out = append(out, [2]int{u, cycle[(i+1)%n]})
	}

	return out, nil
}

// FaceVertexDescendant returns the vertex after key in the face's cycle.
// Returns ErrFaceNotFound for a missing face and ErrVertexNotFound when the
// vertex is not part of the cycle.
func (m *Mesh) FaceVertexDescendant(fkey, key int) (int, error) {
	cycle, exists := m.faces[fkey]
	if !exists {
		return InvalidKey, ErrFaceNotFound
	}
	for i, v := range cycle {
		if v == key {
			return cycle[(i+1)%len(cycle)], nil
		}
	}

	return InvalidKey, ErrVertexNotFound
}

// FaceVertexAncestor returns the vertex before key in the face's cycle.
// Returns ErrFaceNotFound for a missing face and ErrVertexNotFound when the
// vertex is not part of the cycle.
func (m *Mesh) FaceVertexAncestor(fkey, key int) (int, error) {
	cycle, exists := m.faces[fkey]
	if !exists {
		return InvalidKey, ErrFaceNotFound
	}
	n := len(cycle)
	for i, v := range cycle {
		if v == key {
			return cycle[(i-1+n)%n], nil
		}
	}

	return InvalidKey, ErrVertexNotFound
}

// VertexNeighbors returns the neighbors of the vertex in ascending key order.
// Returns ErrVertexNotFound if the key does not exist.
// Complexity: O(d log d)
func (m *Mesh) VertexNeighbors(key int) ([]int, error) {
	row, exists := m.halfedge[key]
	if !exists {
		return nil, ErrVertexNotFound
	}

	return sortedIntKeys(row), nil
}

// VertexNeighborsOrdered returns the neighbors of the vertex in fan order.
//
// The walk seeds from a neighbor reached via a boundary half-edge when one
// exists (so an open fan is traversed rim to rim) and otherwise from the
// smallest neighbor key. It advances by circulating through the face on the
// far side of the previous neighbor and stops when it returns to the seed or
// reaches the boundary. A walk that exceeds the vertex degree without
// closing reports ErrMalformedTopology.
// Complexity: O(d · k) with k the incident face degree.
func (m *Mesh) VertexNeighborsOrdered(key int) ([]int, error) {
	row, exists := m.halfedge[key]
	if !exists {
		return nil, ErrVertexNotFound
	}
	if len(row) == 0 {
		return nil, nil
	}
	nbrs := sortedIntKeys(row)
	if len(nbrs) == 1 {
		return nbrs, nil
	}

	// Seed: smallest neighbor across an outgoing boundary half-edge, so a
	// boundary fan starts at the rim; interior fans start anywhere stable.
	start := nbrs[0]
	for _, nbr := range nbrs {
		if row[nbr].OnBoundary() {
			start = nbr
			break
		}
	}

	degree := len(row)
	ordered := make([]int, 1, degree)
	ordered[0] = start
	for {
		last := ordered[len(ordered)-1]
		f, ok := m.halfedge[last][key].Face()
		if !ok {
			break // reached the far rim of an open fan
		}
		next, err := m.FaceVertexDescendant(f, key)
		if err != nil {
			return nil, ErrMalformedTopology
		}
		if next == start {
			break
		}
		ordered = append(ordered, next)
		// The fan around a vertex can never be longer than its degree; a
		// longer walk means the half-edge map is inconsistent.
		if len(ordered) > degree {
			return nil, ErrMalformedTopology
		}
	}

	return ordered, nil
}

// VertexFaces returns the faces incident to the vertex in ascending key
// order. Returns ErrVertexNotFound if the key does not exist.
// Complexity: O(d log d)
func (m *Mesh) VertexFaces(key int) ([]int, error) {
	row, exists := m.halfedge[key]
	if !exists {
		return nil, ErrVertexNotFound
	}
	seen := make(map[int]struct{}, len(row))
	for _, t := range row {
		if f, ok := t.Face(); ok {
			seen[f] = struct{}{}
		}
	}

	return sortedIntKeys(seen), nil
}

// VertexFacesOrdered returns the faces incident to the vertex in fan order,
// matching VertexNeighborsOrdered with boundary slots skipped.
func (m *Mesh) VertexFacesOrdered(key int) ([]int, error) {
	nbrs, err := m.VertexNeighborsOrdered(key)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(nbrs))
	for _, nbr := range nbrs {
		if f, ok := m.halfedge[key][nbr].Face(); ok {
			out = append(out, f)
		}
	}

	return out, nil
}

// FaceNeighbors returns the faces sharing at least one edge with the face,
// in ascending key order.
// Returns ErrFaceNotFound if the key does not exist.
func (m *Mesh) FaceNeighbors(fkey int) ([]int, error) {
	cycle, exists := m.faces[fkey]
	if !exists {
		return nil, ErrFaceNotFound
	}
	seen := make(map[int]struct{})
	n := len(cycle)
	for i, u := range cycle {
		v := cycle[(i+1)%n]
		if f, ok := m.halfedge[v][u].Face(); ok && f != fkey {
			seen[f] = struct{}{}
		}
	}

	return sortedIntKeys(seen), nil
}

// Internal helpers:
////////////////////

// sortedIntKeys returns the int keys of any map in ascending order.
func sortedIntKeys[V any](in map[int]V) []int {
	out := make([]int, 0, len(in))
	for k := range in {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}

// sortEdges sorts edge pairs lexicographically in place.
func sortEdges(edges [][2]int) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}

		return edges[i][1] < edges[j][1]
	})
}
