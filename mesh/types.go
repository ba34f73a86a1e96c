// Package mesh declares the Mesh type, the HalfEdgeTarget sum type,
// sentinel errors, functional options, and the NewMesh constructor.
//
// Errors:
//
//	ErrVertexNotFound    - referenced vertex does not exist.
//	ErrFaceNotFound      - referenced face does not exist.
//	ErrEdgeNotFound      - referenced edge exists in neither direction.
//	ErrInvalidKey        - key is negative or otherwise unusable.
//	ErrMalformedTopology - a traversal met an inconsistent half-edge map.
//	ErrBadAttribute      - attribute value has an unusable type.
//	ErrNotSupported      - operation intentionally unimplemented.

package mesh

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// InvalidKey is the canonical "no key" result. AddFace returns it when the
// input cycle degenerates below a triangle; it never identifies a real entity.
const InvalidKey = -1

// Sentinel errors for mesh operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("mesh: vertex not found")

	// ErrFaceNotFound indicates an operation referenced a non-existent face.
	ErrFaceNotFound = errors.New("mesh: face not found")

	// ErrEdgeNotFound indicates an operation referenced an edge that exists
	// in neither half-edge direction.
	ErrEdgeNotFound = errors.New("mesh: edge not found")

	// ErrInvalidKey indicates a negative or otherwise unusable entity key.
	ErrInvalidKey = errors.New("mesh: invalid key")

	// ErrMalformedTopology indicates that a half-edge walk could not close
	// consistently: the adjacency structure violates its own invariants.
	ErrMalformedTopology = errors.New("mesh: malformed topology")

	// ErrBadAttribute indicates an attribute value of an unusable type, e.g.
	// a non-numeric coordinate.
	ErrBadAttribute = errors.New("mesh: bad attribute value")

	// ErrNotSupported indicates an intentionally unimplemented operation.
	ErrNotSupported = errors.New("mesh: operation not supported")
)

// HalfEdgeTarget is what a directed half-edge u→v points at: either the face
// lying to the left of u→v, or the open boundary. The zero value is the
// boundary, so a freshly initialized entry is never mistaken for face 0.
type HalfEdgeTarget struct {
	face    int
	hasFace bool
}

// FaceRef returns a target pointing at face f.
func FaceRef(f int) HalfEdgeTarget { return HalfEdgeTarget{face: f, hasFace: true} }

// BoundaryRef returns the open-boundary target.
func BoundaryRef() HalfEdgeTarget { return HalfEdgeTarget{} }

// Face returns the referenced face key and true, or (InvalidKey, false) for a
// boundary target.
func (t HalfEdgeTarget) Face() (int, bool) {
	if !t.hasFace {
		return InvalidKey, false
	}

	return t.face, true
}

// OnBoundary reports whether the target is the open boundary.
func (t HalfEdgeTarget) OnBoundary() bool { return !t.hasFace }

// Mesh is the core in-memory half-edge mesh data structure.
//
// Topology invariants maintained by every mutating method:
//   - every vertex key in the half-edge map has an attribute record, and
//     vice versa;
//   - every non-boundary half-edge target references an existing face;
//   - no undirected edge has both directions on the boundary; such an edge
//     is removed entirely, together with its edge attributes;
//   - every face's stored vertex cycle agrees with the half-edge entries
//     that reference it.
//
// Mesh is not safe for concurrent use; see the package documentation.
type Mesh struct {
	// Mesh-wide metadata, including "name".
	attrs map[string]any

	// Shared default attributes per entity kind.
	defaultVertexAttr map[string]any
	defaultEdgeAttr   map[string]any
	defaultFaceAttr   map[string]any

	// Per-entity overrides. vertexAttr doubles as the vertex registry: a key
	// is a vertex iff it has an entry here. faceAttr and edgeAttr are lazy.
	vertexAttr map[int]map[string]any
	faceAttr   map[int]map[string]any
	edgeAttr   map[[2]int]map[string]any

	// halfedge[u][v] = target of the directed half-edge u→v.
	halfedge map[int]map[int]HalfEdgeTarget

	// faces[f] = ordered cyclic vertex list (first != last).
	faces map[int][]int

	// Watermarks: highest key ever assigned per kind, -1 when none yet.
	// Never decremented, so deleted keys are never reissued.
	maxVertexKey int
	maxFaceKey   int
}

// Option configures a Mesh at construction time.
type Option func(m *Mesh)

// WithName sets the mesh-wide "name" attribute.
func WithName(name string) Option {
	return func(m *Mesh) { m.attrs["name"] = name }
}

// WithDefaultVertexAttributes merges attrs into the shared vertex defaults.
func WithDefaultVertexAttributes(attrs map[string]any) Option {
	return func(m *Mesh) { mergeAttrs(m.defaultVertexAttr, attrs) }
}

// WithDefaultEdgeAttributes merges attrs into the shared edge defaults.
func WithDefaultEdgeAttributes(attrs map[string]any) Option {
	return func(m *Mesh) { mergeAttrs(m.defaultEdgeAttr, attrs) }
}

// WithDefaultFaceAttributes merges attrs into the shared face defaults.
func WithDefaultFaceAttributes(attrs map[string]any) Option {
	return func(m *Mesh) { mergeAttrs(m.defaultFaceAttr, attrs) }
}

// VertexOption configures a single AddVertex or InsertVertex call.
type VertexOption func(*vertexConfig)

type vertexConfig struct {
	key    int
	hasKey bool
	attrs  map[string]any
	pos    r3.Vec
	hasPos bool
}

// VertexKey supplies an explicit key instead of auto-allocation.
func VertexKey(k int) VertexOption {
	return func(c *vertexConfig) { c.key, c.hasKey = k, true }
}

// VertexAttrs supplies custom attributes, merged over any existing overrides.
func VertexAttrs(attrs map[string]any) VertexOption {
	return func(c *vertexConfig) { c.attrs = attrs }
}

// VertexPosition supplies the x,y,z attributes as one vector.
func VertexPosition(p r3.Vec) VertexOption {
	return func(c *vertexConfig) { c.pos, c.hasPos = p, true }
}

// FaceOption configures a single AddFace call.
type FaceOption func(*faceConfig)

type faceConfig struct {
	key    int
	hasKey bool
	attrs  map[string]any
}

// FaceKey supplies an explicit face key instead of auto-allocation.
func FaceKey(k int) FaceOption {
	return func(c *faceConfig) { c.key, c.hasKey = k, true }
}

// FaceAttrs supplies custom face attributes.
func FaceAttrs(attrs map[string]any) FaceOption {
	return func(c *faceConfig) { c.attrs = attrs }
}

// NewMesh creates an empty Mesh with the given options applied.
// Vertex defaults seed x, y, z to 0.0 so every vertex has a position.
// Complexity: O(1)
func NewMesh(opts ...Option) *Mesh {
	m := &Mesh{
		attrs:             map[string]any{"name": "Mesh"},
		defaultVertexAttr: map[string]any{"x": 0.0, "y": 0.0, "z": 0.0},
		defaultEdgeAttr:   map[string]any{},
		defaultFaceAttr:   map[string]any{},
		vertexAttr:        make(map[int]map[string]any),
		faceAttr:          make(map[int]map[string]any),
		edgeAttr:          make(map[[2]int]map[string]any),
		halfedge:          make(map[int]map[int]HalfEdgeTarget),
		faces:             make(map[int][]int),
		maxVertexKey:      InvalidKey,
		maxFaceKey:        InvalidKey,
	}
	// Apply options
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Name returns the mesh-wide "name" attribute ("" when unset or non-string).
func (m *Mesh) Name() string {
	if s, ok := m.attrs["name"].(string); ok {
		return s
	}

	return ""
}

// SetName sets the mesh-wide "name" attribute.
func (m *Mesh) SetName(name string) { m.attrs["name"] = name }

// Attributes returns the live mesh-wide metadata map.
func (m *Mesh) Attributes() map[string]any { return m.attrs }

// mergeAttrs overwrites dst entries with src entries.
func mergeAttrs(dst, src map[string]any) {
	for k, v := range src {
		dst[k] = v
	}
}
