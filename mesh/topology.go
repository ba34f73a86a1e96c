// Package mesh: topology store mutation operators.
//
// This file implements the vertex/face lifecycle on the half-edge map.
// Every operator leaves the Mesh invariants (see types.go) intact:
// AddFace claims half-edges and seeds boundary reverses, DeleteFace
// releases half-edges and collapses edges that border no face anymore,
// DeleteVertex cascades through incident faces, and InsertVertex replaces
// a face by a triangle fan whose half-edges immediately reclaim the old ones.

package mesh

// AddVertex inserts a vertex and returns its key.
// Without VertexKey the key is auto-allocated from the watermark; with it,
// the watermark is raised as needed and a negative key is ErrInvalidKey.
// Re-adding an existing key is a topological no-op, but supplied attributes
// and position are merged over the vertex's overrides (last call wins).
// Complexity: O(1) amortized.
func (m *Mesh) AddVertex(opts ...VertexOption) (int, error) {
	var cfg vertexConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// Resolve the key: explicit keys pass through the allocator so the
	// watermark stays ahead of every key ever seen.
	var key int
	if cfg.hasKey {
		if err := m.registerVertexKey(cfg.key); err != nil {
			return InvalidKey, err
		}
		key = cfg.key
	} else {
		key = m.nextVertexKey()
	}

	// New vertex: create the attribute record and an empty adjacency row.
	if _, exists := m.vertexAttr[key]; !exists {
		m.vertexAttr[key] = make(map[string]any)
		m.halfedge[key] = make(map[int]HalfEdgeTarget)
	}

	// Merge attributes regardless of whether the vertex existed.
	mergeAttrs(m.vertexAttr[key], cfg.attrs)
	if cfg.hasPos {
		m.vertexAttr[key]["x"] = cfg.pos.X
		m.vertexAttr[key]["y"] = cfg.pos.Y
		m.vertexAttr[key]["z"] = cfg.pos.Z
	}

	return key, nil
}

// AddFace inserts a face over the given vertex cycle and returns its key.
//
// The cycle is normalized first: a duplicated closing vertex is dropped, and
// consecutive duplicates (self-loops) are skipped without error. If fewer
// than 3 vertices remain the call is a checked no-op returning
// (InvalidKey, nil) — callers must test the returned key.
//
// Missing vertices are auto-added (the normalized import funnel relies on
// this). For every consecutive pair (u,v) in the cycle, wrapping, the
// half-edge u→v is claimed for the new face; the reverse v→u is seeded as a
// boundary entry when not already present.
//
// Returns ErrInvalidKey when the cycle contains a negative vertex key or the
// explicit FaceKey is negative.
// Complexity: O(k) for a k-gon.
func (m *Mesh) AddFace(cycle []int, opts ...FaceOption) (int, error) {
	var cfg faceConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	for _, v := range cycle {
		if v < 0 {
			return InvalidKey, ErrInvalidKey
		}
	}
	cycle = normalizeCycle(cycle)
	if len(cycle) < 3 {
		return InvalidKey, nil // degenerate input: checked no-op, not an error
	}

	var fkey int
	if cfg.hasKey {
		if err := m.registerFaceKey(cfg.key); err != nil {
			return InvalidKey, err
		}
		fkey = cfg.key
	} else {
		fkey = m.nextFaceKey()
	}

	// Ensure every referenced vertex exists before touching the half-edge map.
	for _, v := range cycle {
		if _, exists := m.vertexAttr[v]; !exists {
			if _, err := m.AddVertex(VertexKey(v)); err != nil {
				return InvalidKey, err
			}
		}
	}

	m.faces[fkey] = append([]int(nil), cycle...)
	if len(cfg.attrs) > 0 {
		if m.faceAttr[fkey] == nil {
			m.faceAttr[fkey] = make(map[string]any)
		}
		mergeAttrs(m.faceAttr[fkey], cfg.attrs)
	}

	// Claim u→v for the face; seed v→u as boundary when absent.
	n := len(cycle)
	for i, u := range cycle {
		v := cycle[(i+1)%n]
		m.halfedge[u][v] = FaceRef(fkey)
		if _, ok := m.halfedge[v][u]; !ok {
			m.halfedge[v][u] = BoundaryRef()
		}
	}

	return fkey, nil
}

// DeleteFace removes the face with the given key.
// Its half-edges are released to the boundary; any undirected edge left with
// both directions on the boundary is removed entirely, together with its
// edge attributes. The face's attribute record is removed as well.
// Returns ErrFaceNotFound if the key does not exist.
// Complexity: O(k) for a k-gon.
func (m *Mesh) DeleteFace(fkey int) error {
	cycle, ok := m.faces[fkey]
	if !ok {
		return ErrFaceNotFound
	}

	n := len(cycle)
	for i, u := range cycle {
		v := cycle[(i+1)%n]
		// Release only the direction that still points at this face: a later
		// AddFace may already have reclaimed it.
		if f, claimed := m.halfedge[u][v].Face(); claimed && f == fkey {
			m.halfedge[u][v] = BoundaryRef()
		}
		// An edge bounding no face in either direction vanishes from the map.
		if m.halfedge[u][v].OnBoundary() && m.halfedge[v][u].OnBoundary() {
			delete(m.halfedge[u], v)
			delete(m.halfedge[v], u)
			m.dropEdgeAttr(u, v)
		}
	}

	delete(m.faces, fkey)
	delete(m.faceAttr, fkey)

	return nil
}

// DeleteVertex removes the vertex with the given key and cascades: every
// incident face is deleted (releasing its half-edges and collapsing orphaned
// edges with their attributes), neighboring adjacency rows are pruned, and
// the vertex attribute record is removed.
// Returns ErrVertexNotFound if the key does not exist.
// Complexity: O(Σ deg(f)) over incident faces f.
func (m *Mesh) DeleteVertex(key int) error {
	if _, exists := m.vertexAttr[key]; !exists {
		return ErrVertexNotFound
	}

	// Delete incident faces one at a time; each DeleteFace shrinks the
	// adjacency row, so rescan until no face touches the vertex anymore.
	for {
		fkey, found := m.anyIncidentFace(key)
		if !found {
			break
		}
		if err := m.DeleteFace(fkey); err != nil {
			return err
		}
	}

	// Prune whatever is left of the adjacency row (edges that never bounded a
	// face cannot exist, so normally nothing remains here).
	for nbr := range m.halfedge[key] {
		delete(m.halfedge[nbr], key)
		m.dropEdgeAttr(key, nbr)
	}
	delete(m.halfedge, key)
	delete(m.vertexAttr, key)

	return nil
}

// InsertVertex replaces the face fkey by a triangle fan around a new vertex:
// for every half-edge (u,v) of the original boundary a triangle (u,v,w) is
// added. The original face record is reclaimed directly — its half-edges are
// immediately rewritten by the fan, so no boundary-release cascade runs.
// The new vertex position defaults to the face centroid.
// Returns the new vertex key and the keys of the fan faces, in cycle order.
// Complexity: O(k) for a k-gon.
func (m *Mesh) InsertVertex(fkey int, opts ...VertexOption) (int, []int, error) {
	cycle, ok := m.faces[fkey]
	if !ok {
		return InvalidKey, nil, ErrFaceNotFound
	}

	var cfg vertexConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasPos {
		centroid, err := m.FaceCentroid(fkey)
		if err != nil {
			return InvalidKey, nil, err
		}
		cfg.pos, cfg.hasPos = centroid, true
	}

	vopts := []VertexOption{VertexPosition(cfg.pos)}
	if cfg.hasKey {
		vopts = append(vopts, VertexKey(cfg.key))
	}
	if cfg.attrs != nil {
		vopts = append(vopts, VertexAttrs(cfg.attrs))
	}
	w, err := m.AddVertex(vopts...)
	if err != nil {
		return InvalidKey, nil, err
	}

	old := append([]int(nil), cycle...)
	delete(m.faces, fkey)
	delete(m.faceAttr, fkey)

	fkeys := make([]int, 0, len(old))
	n := len(old)
	for i, u := range old {
		v := old[(i+1)%n]
		nf, err := m.AddFace([]int{u, v, w})
		if err != nil {
			return InvalidKey, nil, err
		}
		fkeys = append(fkeys, nf)
	}

	return w, fkeys, nil
}

// CullVertices removes every vertex whose adjacency row is empty (isolated
// or fully disconnected by earlier deletions), together with its attributes.
// Complexity: O(V)
func (m *Mesh) CullVertices() {
	for key, row := range m.halfedge {
		if len(row) == 0 {
			delete(m.halfedge, key)
			delete(m.vertexAttr, key)
		}
	}
}

// Internal helpers:
////////////////////

// normalizeCycle drops a duplicated closing vertex and collapses consecutive
// duplicates, including across the wrap-around.
func normalizeCycle(cycle []int) []int {
	if n := len(cycle); n > 1 && cycle[0] == cycle[n-1] {
		cycle = cycle[:n-1]
	}
	out := make([]int, 0, len(cycle))
	for _, v := range cycle {
		if len(out) > 0 && out[len(out)-1] == v {
			continue
		}
		out = append(out, v)
	}
	if n := len(out); n > 1 && out[0] == out[n-1] {
		out = out[:n-1]
	}

	return out
}

// anyIncidentFace returns some face touching key, in either direction.
func (m *Mesh) anyIncidentFace(key int) (int, bool) {
	for nbr, t := range m.halfedge[key] {
		if f, ok := t.Face(); ok {
			return f, true
		}
		if f, ok := m.halfedge[nbr][key].Face(); ok {
			return f, true
		}
	}

	return InvalidKey, false
}

// dropEdgeAttr removes the attribute records of edge {u,v} in both keying
// directions.
func (m *Mesh) dropEdgeAttr(u, v int) {
	delete(m.edgeAttr, [2]int{u, v})
	delete(m.edgeAttr, [2]int{v, u})
}
