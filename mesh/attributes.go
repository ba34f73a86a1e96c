// Package mesh: two-tier attribute store.
//
// Every vertex, edge, and face reads its attributes through two layers:
// an optional per-entity override map and the mesh-wide defaults for its
// kind. Reading an unset name falls back to the default; a name absent from
// both layers reads as nil. Unsetting deletes the override only, so the
// default shines through again. Edge attribute maps are registered under
// both (u,v) and (v,u), so retrieval is direction-independent.
//
// All single-entity operations verify existence first and return
// ErrVertexNotFound / ErrFaceNotFound / ErrEdgeNotFound before touching
// any internal map.

package mesh

import "sort"

// AttrView is a merged read/write view over one entity's attributes: reads go
// override-then-default-then-nil, writes and deletes touch the override map
// only. Both iteration modes are exposed: Names (default names) and
// CustomNames (override-only names).
type AttrView struct {
	defaults map[string]any
	custom   map[string]any
}

// Get returns the attribute value and whether it was present in either layer.
func (a *AttrView) Get(name string) (any, bool) {
	if v, ok := a.custom[name]; ok {
		return v, true
	}
	if v, ok := a.defaults[name]; ok {
		return v, true
	}

	return nil, false
}

// Value returns the attribute value, nil when absent from both layers.
func (a *AttrView) Value(name string) any {
	v, _ := a.Get(name)

	return v
}

// Set writes value into the override layer.
func (a *AttrView) Set(name string, value any) { a.custom[name] = value }

// Delete removes the override; the default (if any) becomes visible again.
func (a *AttrView) Delete(name string) { delete(a.custom, name) }

// Names returns the default attribute names, sorted.
func (a *AttrView) Names() []string { return sortedNames(a.defaults) }

// CustomNames returns the override-only attribute names, sorted.
func (a *AttrView) CustomNames() []string { return sortedNames(a.custom) }

// Merged materializes the combined view: defaults overlaid with overrides.
func (a *AttrView) Merged() map[string]any {
	out := make(map[string]any, len(a.defaults)+len(a.custom))
	mergeAttrs(out, a.defaults)
	mergeAttrs(out, a.custom)

	return out
}

// Vertex attributes:
////////////////////

// VertexAttribute returns the named attribute of the vertex, falling back to
// the mesh-wide vertex default, then nil.
// Returns ErrVertexNotFound if the vertex does not exist.
func (m *Mesh) VertexAttribute(key int, name string) (any, error) {
	attrs, exists := m.vertexAttr[key]
	if !exists {
		return nil, ErrVertexNotFound
	}
	if v, ok := attrs[name]; ok {
		return v, nil
	}

	return m.defaultVertexAttr[name], nil
}

// SetVertexAttribute writes a per-vertex override.
// Returns ErrVertexNotFound if the vertex does not exist.
func (m *Mesh) SetVertexAttribute(key int, name string, value any) error {
	attrs, exists := m.vertexAttr[key]
	if !exists {
		return ErrVertexNotFound
	}
	attrs[name] = value

	return nil
}

// UnsetVertexAttribute deletes the per-vertex override only; subsequent reads
// fall back to the mesh-wide default.
// Returns ErrVertexNotFound if the vertex does not exist.
func (m *Mesh) UnsetVertexAttribute(key int, name string) error {
	attrs, exists := m.vertexAttr[key]
	if !exists {
		return ErrVertexNotFound
	}
	delete(attrs, name)

	return nil
}

// VertexAttributes returns the merged attribute view of the vertex.
// Returns ErrVertexNotFound if the vertex does not exist.
func (m *Mesh) VertexAttributes(key int) (*AttrView, error) {
	attrs, exists := m.vertexAttr[key]
	if !exists {
		return nil, ErrVertexNotFound
	}

	return &AttrView{defaults: m.defaultVertexAttr, custom: attrs}, nil
}

// VerticesAttribute reads one named attribute across many vertices.
// A nil keys slice means all vertices in sorted key order.
func (m *Mesh) VerticesAttribute(keys []int, name string) ([]any, error) {
	if keys == nil {
		keys = m.Vertices()
	}
	out := make([]any, len(keys))
	for i, k := range keys {
		v, err := m.VertexAttribute(k, name)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// SetVerticesAttribute writes one named attribute across many vertices.
// A nil keys slice means all vertices.
func (m *Mesh) SetVerticesAttribute(keys []int, name string, value any) error {
	if keys == nil {
		keys = m.Vertices()
	}
	for _, k := range keys {
		if err := m.SetVertexAttribute(k, name, value); err != nil {
			return err
		}
	}

	return nil
}

// UpdateDefaultVertexAttributes merges attrs into the shared vertex defaults,
// visible to every vertex without an override.
func (m *Mesh) UpdateDefaultVertexAttributes(attrs map[string]any) {
	mergeAttrs(m.defaultVertexAttr, attrs)
}

// DefaultVertexAttributes returns the live shared vertex default map.
func (m *Mesh) DefaultVertexAttributes() map[string]any { return m.defaultVertexAttr }

// Edge attributes:
////////////////////

// EdgeAttribute returns the named attribute of edge {u,v}, falling back to
// the mesh-wide edge default, then nil. Direction does not matter.
// Returns ErrEdgeNotFound if the edge exists in neither direction.
func (m *Mesh) EdgeAttribute(u, v int, name string) (any, error) {
	if !m.HasEdge(u, v) {
		return nil, ErrEdgeNotFound
	}
	if attrs, ok := m.edgeAttr[[2]int{u, v}]; ok {
		if val, set := attrs[name]; set {
			return val, nil
		}
	}

	return m.defaultEdgeAttr[name], nil
}

// SetEdgeAttribute writes a per-edge override, retrievable in either
// direction. Returns ErrEdgeNotFound if the edge does not exist.
func (m *Mesh) SetEdgeAttribute(u, v int, name string, value any) error {
	attrs, err := m.ensureEdgeAttr(u, v)
	if err != nil {
		return err
	}
	attrs[name] = value

	return nil
}

// UnsetEdgeAttribute deletes the per-edge override only.
// Returns ErrEdgeNotFound if the edge does not exist.
func (m *Mesh) UnsetEdgeAttribute(u, v int, name string) error {
	if !m.HasEdge(u, v) {
		return ErrEdgeNotFound
	}
	if attrs, ok := m.edgeAttr[[2]int{u, v}]; ok {
		delete(attrs, name)
	}

	return nil
}

// EdgeAttributes returns the merged attribute view of edge {u,v}.
// Returns ErrEdgeNotFound if the edge does not exist.
func (m *Mesh) EdgeAttributes(u, v int) (*AttrView, error) {
	attrs, err := m.ensureEdgeAttr(u, v)
	if err != nil {
		return nil, err
	}

	return &AttrView{defaults: m.defaultEdgeAttr, custom: attrs}, nil
}

// EdgesAttribute reads one named attribute across many edges.
// A nil edges slice means all edges in sorted order.
func (m *Mesh) EdgesAttribute(edges [][2]int, name string) ([]any, error) {
	if edges == nil {
		edges = m.Edges()
	}
	out := make([]any, len(edges))
	for i, e := range edges {
		v, err := m.EdgeAttribute(e[0], e[1], name)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// SetEdgesAttribute writes one named attribute across many edges.
// A nil edges slice means all edges.
func (m *Mesh) SetEdgesAttribute(edges [][2]int, name string, value any) error {
	if edges == nil {
		edges = m.Edges()
	}
	for _, e := range edges {
		if err := m.SetEdgeAttribute(e[0], e[1], name, value); err != nil {
			return err
		}
	}

	return nil
}

// UpdateDefaultEdgeAttributes merges attrs into the shared edge defaults.
func (m *Mesh) UpdateDefaultEdgeAttributes(attrs map[string]any) {
	mergeAttrs(m.defaultEdgeAttr, attrs)
}

// DefaultEdgeAttributes returns the live shared edge default map.
func (m *Mesh) DefaultEdgeAttributes() map[string]any { return m.defaultEdgeAttr }

// Face attributes:
////////////////////

// FaceAttribute returns the named attribute of the face, falling back to the
// mesh-wide face default, then nil.
// Returns ErrFaceNotFound if the face does not exist.
func (m *Mesh) FaceAttribute(fkey int, name string) (any, error) {
	if _, exists := m.faces[fkey]; !exists {
		return nil, ErrFaceNotFound
	}
	if attrs, ok := m.faceAttr[fkey]; ok {
		if v, set := attrs[name]; set {
			return v, nil
		}
	}

	return m.defaultFaceAttr[name], nil
}

// SetFaceAttribute writes a per-face override; the override record is created
// lazily. Returns ErrFaceNotFound if the face does not exist.
func (m *Mesh) SetFaceAttribute(fkey int, name string, value any) error {
	attrs, err := m.ensureFaceAttr(fkey)
	if err != nil {
		return err
	}
	attrs[name] = value

	return nil
}

// UnsetFaceAttribute deletes the per-face override only.
// Returns ErrFaceNotFound if the face does not exist.
func (m *Mesh) UnsetFaceAttribute(fkey int, name string) error {
	if _, exists := m.faces[fkey]; !exists {
		return ErrFaceNotFound
	}
	if attrs, ok := m.faceAttr[fkey]; ok {
		delete(attrs, name)
	}

	return nil
}

// FaceAttributes returns the merged attribute view of the face.
// Returns ErrFaceNotFound if the face does not exist.
func (m *Mesh) FaceAttributes(fkey int) (*AttrView, error) {
	attrs, err := m.ensureFaceAttr(fkey)
	if err != nil {
		return nil, err
	}

	return &AttrView{defaults: m.defaultFaceAttr, custom: attrs}, nil
}

// FacesAttribute reads one named attribute across many faces.
// A nil keys slice means all faces in sorted key order.
func (m *Mesh) FacesAttribute(keys []int, name string) ([]any, error) {
	if keys == nil {
		keys = m.Faces()
	}
	out := make([]any, len(keys))
	for i, k := range keys {
		v, err := m.FaceAttribute(k, name)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// SetFacesAttribute writes one named attribute across many faces.
// A nil keys slice means all faces.
func (m *Mesh) SetFacesAttribute(keys []int, name string, value any) error {
	if keys == nil {
		keys = m.Faces()
	}
	for _, k := range keys {
		if err := m.SetFaceAttribute(k, name, value); err != nil {
			return err
		}
	}

	return nil
}

// UpdateDefaultFaceAttributes merges attrs into the shared face defaults.
func (m *Mesh) UpdateDefaultFaceAttributes(attrs map[string]any) {
	mergeAttrs(m.defaultFaceAttr, attrs)
}

// DefaultFaceAttributes returns the live shared face default map.
func (m *Mesh) DefaultFaceAttributes() map[string]any { return m.defaultFaceAttr }

// Internal helpers:
////////////////////

// ensureEdgeAttr returns the override map of edge {u,v}, creating it lazily.
// The same map is registered under both key orders, so a write through one
// direction is immediately visible through the other.
func (m *Mesh) ensureEdgeAttr(u, v int) (map[string]any, error) {
	if !m.HasEdge(u, v) {
		return nil, ErrEdgeNotFound
	}
	if attrs, ok := m.edgeAttr[[2]int{u, v}]; ok {
		return attrs, nil
	}
	attrs := make(map[string]any)
	m.edgeAttr[[2]int{u, v}] = attrs
	m.edgeAttr[[2]int{v, u}] = attrs

	return attrs, nil
}

// ensureFaceAttr returns the override map of the face, creating it lazily.
func (m *Mesh) ensureFaceAttr(fkey int) (map[string]any, error) {
	if _, exists := m.faces[fkey]; !exists {
		return nil, ErrFaceNotFound
	}
	if attrs, ok := m.faceAttr[fkey]; ok {
		return attrs, nil
	}
	attrs := make(map[string]any)
	m.faceAttr[fkey] = attrs

	return attrs, nil
}

// sortedNames returns the keys of attrs in sorted order.
func sortedNames(attrs map[string]any) []string {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
