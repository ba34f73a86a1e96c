// Package mesh provides a deterministic, in-memory half-edge mesh with a
// minimal, composable API surface.
//
// The Mesh M = (V, F, H) stores three cooperating facets over one data model:
//
//   - Key allocation — vertex and face keys are non-negative ints handed out
//     monotonically; a key deleted once is never handed out again
//     (watermark counters only ever grow).
//   - Topology — an adjacency map of directed half-edges
//     halfedge[u][v] = HalfEdgeTarget, where the target is either the face
//     lying to the left of u→v or the open boundary, plus per-face ordered
//     vertex cycles. Undirected edges are a derived concept: any pair {u,v}
//     present in the half-edge map in either direction.
//   - Attributes — per-entity override maps layered over mesh-wide defaults
//     for vertices, edges, and faces, with read-through fallback.
//
// Why use mesh.Mesh?
//
//   - Explicit boundary state — HalfEdgeTarget is a sum type, so "no face
//     here" can never be confused with "face 0".
//   - Deterministic iteration — Vertices(), Edges(), Faces(), neighbor fans
//     and boundary loops all come back in a stable documented order.
//   - Cascade-correct mutation — DeleteVertex removes incident faces,
//     half-edges, and edge attributes together; DeleteFace collapses edges
//     that no longer border any face; InsertVertex fans a face around a new
//     vertex without ever leaving a dangling half-edge behind.
//   - Flat serialization — ToData/FromData round-trips the whole structure,
//     watermarks included, through a JSON-friendly form.
//
// Construction funnels through two entry points:
//
//	m := mesh.NewMesh()                          // incremental AddVertex/AddFace
//	m, err := mesh.FromVerticesAndFaces(vs, fs)  // normalized bulk import
//
// Concurrency: a Mesh has no internal locking. All mutating methods touch the
// half-edge map, the attribute stores, and the key watermarks as one logical
// transaction, which no per-method lock could make atomic across a multi-call
// sequence. Share meshes read-only, or give each goroutine its own Copy().
//
// Errors are package-level sentinels (ErrVertexNotFound, ErrFaceNotFound,
// ErrEdgeNotFound, ErrInvalidKey, ErrMalformedTopology, ErrBadAttribute,
// ErrNotSupported); branch on them with errors.Is.
package mesh
