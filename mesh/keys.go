// Package mesh: watermark key allocation.
//
// Vertex and face keys come from two independent monotone watermarks: the
// highest key ever assigned per kind. Automatic allocation hands out
// watermark+1; explicit keys raise the watermark when they exceed it. A
// watermark never decreases, not even when the entity it tracked is deleted,
// so a key observed once always denotes the same entity for the lifetime of
// the mesh.

package mesh

// nextVertexKey advances the vertex watermark and returns the fresh key.
// Complexity: O(1)
func (m *Mesh) nextVertexKey() int {
	m.maxVertexKey++

	return m.maxVertexKey
}

// nextFaceKey advances the face watermark and returns the fresh key.
// Complexity: O(1)
func (m *Mesh) nextFaceKey() int {
	m.maxFaceKey++

	return m.maxFaceKey
}

// registerVertexKey records an explicitly supplied vertex key.
// Returns ErrInvalidKey for negative keys; the watermark only ever grows.
func (m *Mesh) registerVertexKey(k int) error {
	if k < 0 {
		return ErrInvalidKey
	}
	if k > m.maxVertexKey {
		m.maxVertexKey = k
	}

	return nil
}

// registerFaceKey records an explicitly supplied face key.
// Returns ErrInvalidKey for negative keys; the watermark only ever grows.
func (m *Mesh) registerFaceKey(k int) error {
	if k < 0 {
		return ErrInvalidKey
	}
	if k > m.maxFaceKey {
		m.maxFaceKey = k
	}

	return nil
}

// MaxVertexKey returns the highest vertex key ever assigned (-1 when none).
func (m *Mesh) MaxVertexKey() int { return m.maxVertexKey }

// MaxFaceKey returns the highest face key ever assigned (-1 when none).
func (m *Mesh) MaxFaceKey() int { return m.maxFaceKey }
