// Package mesh: deep duplication and reset.

package mesh

// Copy returns a fully independent deep duplicate of the mesh: metadata,
// defaults, per-entity overrides, the half-edge map, face cycles, and both
// watermarks. Copy is the safe way to hand a mesh to another goroutine.
// Complexity: O(V+E+F)
func (m *Mesh) Copy() *Mesh {
	out := &Mesh{
		attrs:             copyAttrMap(m.attrs),
		defaultVertexAttr: copyAttrMap(m.defaultVertexAttr),
		defaultEdgeAttr:   copyAttrMap(m.defaultEdgeAttr),
		defaultFaceAttr:   copyAttrMap(m.defaultFaceAttr),
		vertexAttr:        make(map[int]map[string]any, len(m.vertexAttr)),
		faceAttr:          make(map[int]map[string]any, len(m.faceAttr)),
		edgeAttr:          make(map[[2]int]map[string]any, len(m.edgeAttr)),
		halfedge:          make(map[int]map[int]HalfEdgeTarget, len(m.halfedge)),
		faces:             make(map[int][]int, len(m.faces)),
		maxVertexKey:      m.maxVertexKey,
		maxFaceKey:        m.maxFaceKey,
	}
	for key, attrs := range m.vertexAttr {
		out.vertexAttr[key] = copyAttrMap(attrs)
	}
	for fkey, attrs := range m.faceAttr {
		out.faceAttr[fkey] = copyAttrMap(attrs)
	}
	for ek, attrs := range m.edgeAttr {
		// Both key orders share one map; duplicate once and re-link the pair
		// so the copy keeps direction-independent retrieval.
		if ek[0] <= ek[1] {
			dup := copyAttrMap(attrs)
			out.edgeAttr[ek] = dup
			out.edgeAttr[[2]int{ek[1], ek[0]}] = dup
		}
	}
	for u, row := range m.halfedge {
		dup := make(map[int]HalfEdgeTarget, len(row))
		for v, t := range row {
			dup[v] = t
		}
		out.halfedge[u] = dup
	}
	for fkey, cycle := range m.faces {
		out.faces[fkey] = append([]int(nil), cycle...)
	}

	return out
}

// Clear removes all vertices, faces, edges, and per-entity attributes and
// resets both watermarks. Mesh-wide metadata and the shared defaults are
// preserved.
func (m *Mesh) Clear() {
	m.vertexAttr = make(map[int]map[string]any)
	m.faceAttr = make(map[int]map[string]any)
	m.edgeAttr = make(map[[2]int]map[string]any)
	m.halfedge = make(map[int]map[int]HalfEdgeTarget)
	m.faces = make(map[int][]int)
	m.maxVertexKey = InvalidKey
	m.maxFaceKey = InvalidKey
}
