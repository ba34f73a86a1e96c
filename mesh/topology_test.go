package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/meshweave/hemesh/mesh"
)

// buildFan returns an open triangle fan around vertex 0:
// rim vertices 1..4, faces (0,1,2), (0,2,3), (0,3,4).
func buildFan(t *testing.T) *mesh.Mesh {
	t.Helper()
	m := mesh.NewMesh()
	for _, cycle := range [][]int{{0, 1, 2}, {0, 2, 3}, {0, 3, 4}} {
		fkey, err := m.AddFace(cycle)
		require.NoError(t, err)
		require.NotEqual(t, mesh.InvalidKey, fkey)
	}

	return m
}

// buildTetrahedron returns a closed oriented tetrahedron over vertices 0..3.
func buildTetrahedron(t *testing.T) *mesh.Mesh {
	t.Helper()
	m := mesh.NewMesh()
	positions := []r3.Vec{
		{X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: 1},
	}
	for i, pos := range positions {
		_, err := m.AddVertex(mesh.VertexKey(i), mesh.VertexPosition(pos))
		require.NoError(t, err)
	}
	for _, cycle := range [][]int{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}} {
		_, err := m.AddFace(cycle)
		require.NoError(t, err)
	}

	return m
}

// halfedgeSnapshot captures every directed half-edge target.
func halfedgeSnapshot(t *testing.T, m *mesh.Mesh) map[[2]int]mesh.HalfEdgeTarget {
	t.Helper()
	snap := make(map[[2]int]mesh.HalfEdgeTarget)
	for _, e := range m.Edges() {
		u, v := e[0], e[1]
		fwd, err := m.HalfEdge(u, v)
		require.NoError(t, err)
		rev, err := m.HalfEdge(v, u)
		require.NoError(t, err)
		snap[[2]int{u, v}] = fwd
		snap[[2]int{v, u}] = rev
	}

	return snap
}

func TestAddVertex_AutoAndExplicitKeys(t *testing.T) {
	m := mesh.NewMesh()

	// Auto allocation starts at 0 and increments.
	k0, err := m.AddVertex()
	require.NoError(t, err)
	require.Equal(t, 0, k0)
	k1, err := m.AddVertex()
	require.NoError(t, err)
	require.Equal(t, 1, k1)

	// An explicit key ahead of the watermark pulls it forward.
	k10, err := m.AddVertex(mesh.VertexKey(10))
	require.NoError(t, err)
	require.Equal(t, 10, k10)
	require.Equal(t, 10, m.MaxVertexKey())
	k11, err := m.AddVertex()
	require.NoError(t, err)
	require.Equal(t, 11, k11)

	// Negative keys are fatal.
	_, err = m.AddVertex(mesh.VertexKey(-2))
	require.ErrorIs(t, err, mesh.ErrInvalidKey)
}

func TestAddVertex_IdempotentWithAttributeMerge(t *testing.T) {
	m := mesh.NewMesh()
	_, err := m.AddVertex(mesh.VertexKey(5), mesh.VertexAttrs(map[string]any{"x": 1.0}))
	require.NoError(t, err)
	_, err = m.AddVertex(mesh.VertexKey(5), mesh.VertexAttrs(map[string]any{"x": 2.0}))
	require.NoError(t, err)

	// Exactly one vertex with key 5, carrying the most recent attribute value.
	require.Equal(t, []int{5}, m.Vertices())
	x, err := m.VertexAttribute(5, "x")
	require.NoError(t, err)
	require.Equal(t, 2.0, x)
}

func TestAddFace_ClaimsHalfEdgesAndSeedsBoundary(t *testing.T) {
	m := mesh.NewMesh()
	fkey, err := m.AddFace([]int{0, 1, 2})
	require.NoError(t, err)
	require.Equal(t, 0, fkey)

	for _, he := range [][2]int{{0, 1}, {1, 2}, {2, 0}} {
		target, err := m.HalfEdge(he[0], he[1])
		require.NoError(t, err)
		f, ok := target.Face()
		require.True(t, ok)
		require.Equal(t, fkey, f)

		reverse, err := m.HalfEdge(he[1], he[0])
		require.NoError(t, err)
		require.True(t, reverse.OnBoundary())
	}
	require.True(t, m.IsValid())
}

func TestAddFace_DegenerateInputs(t *testing.T) {
	m := mesh.NewMesh()

	// Closing duplicate is dropped, consecutive duplicates are skipped.
	fkey, err := m.AddFace([]int{0, 1, 1, 2, 0})
	require.NoError(t, err)
	deg, err := m.FaceDegree(fkey)
	require.NoError(t, err)
	require.Equal(t, 3, deg)

	// Fewer than 3 distinct consecutive vertices: checked no-op, not an error.
	fkey, err = m.AddFace([]int{3, 4, 4, 3})
	require.NoError(t, err)
	require.Equal(t, mesh.InvalidKey, fkey)
	require.Equal(t, 1, m.NumberOfFaces())

	// Negative vertex keys are fatal.
	_, err = m.AddFace([]int{0, -1, 2})
	require.ErrorIs(t, err, mesh.ErrInvalidKey)
}

func TestAddDeleteFace_RestoresHalfEdgeMap(t *testing.T) {
	m := buildFan(t)
	before := halfedgeSnapshot(t, m)
	vWatermark, fWatermark := m.MaxVertexKey(), m.MaxFaceKey()

	fkey, err := m.AddFace([]int{0, 4, 5})
	require.NoError(t, err)
	require.NoError(t, m.DeleteFace(fkey))

	// The half-edge map is restored exactly; only the watermarks moved on.
	require.Equal(t, before, halfedgeSnapshot(t, m))
	require.Greater(t, m.MaxVertexKey(), vWatermark)
	require.Greater(t, m.MaxFaceKey(), fWatermark)
}

func TestDeleteFace_CollapsesOrphanedEdges(t *testing.T) {
	m := buildFan(t)
	// Face (0,1,2) is the only face on edges {0,1} and {1,2}.
	require.NoError(t, m.DeleteFace(0))

	require.False(t, m.HasEdge(0, 1))
	require.False(t, m.HasEdge(1, 2))
	// Edge {0,2} still bounds face (0,2,3) and is now a boundary edge.
	require.True(t, m.HasEdge(0, 2))
	onBoundary, err := m.IsEdgeOnBoundary(0, 2)
	require.NoError(t, err)
	require.True(t, onBoundary)

	require.ErrorIs(t, m.DeleteFace(99), mesh.ErrFaceNotFound)
	require.True(t, m.IsValid())
}

func TestDeleteVertex_Cascades(t *testing.T) {
	m := buildFan(t)
	require.NoError(t, m.DeleteVertex(0))

	// Every face was incident to vertex 0, so all of them are gone, and with
	// them every edge through 0; the rim vertices survive disconnected.
	require.Equal(t, 0, m.NumberOfFaces())
	require.Equal(t, 0, m.NumberOfEdges())
	require.Equal(t, []int{1, 2, 3, 4}, m.Vertices())
	require.True(t, m.IsValid())

	require.ErrorIs(t, m.DeleteVertex(0), mesh.ErrVertexNotFound)
}

func TestDeleteVertex_PartialCascade(t *testing.T) {
	m := buildFan(t)
	// Vertex 4 touches only face (0,3,4).
	require.NoError(t, m.DeleteVertex(4))

	require.Equal(t, []int{0, 1}, m.Faces())
	require.True(t, m.HasEdge(0, 3))
	require.False(t, m.HasEdge(3, 4))
	require.False(t, m.HasVertex(4))
	require.True(t, m.IsValid())
}

func TestDeleteVertex_DropsEdgeAttributes(t *testing.T) {
	m := buildFan(t)
	require.NoError(t, m.SetEdgeAttribute(0, 1, "crease", true))
	require.NoError(t, m.DeleteVertex(1))

	// The edge vanished together with its attribute record; re-creating the
	// edge must not resurrect the old value.
	fkey, err := m.AddFace([]int{0, 1, 2})
	require.NoError(t, err)
	require.NotEqual(t, mesh.InvalidKey, fkey)
	val, err := m.EdgeAttribute(0, 1, "crease")
	require.NoError(t, err)
	require.Nil(t, val)
}

func TestInsertVertex_TriangleFan(t *testing.T) {
	m := buildTetrahedron(t)
	centroid, err := m.FaceCentroid(0)
	require.NoError(t, err)

	w, fkeys, err := m.InsertVertex(0)
	require.NoError(t, err)
	require.Len(t, fkeys, 3)
	require.False(t, m.HasFace(0))

	// The new vertex sits at the old face's centroid.
	pos, err := m.VertexPosition(w)
	require.NoError(t, err)
	require.Equal(t, centroid, pos)

	// Still a closed, valid triangle mesh: V=5, E=9, F=6, Euler 2.
	require.True(t, m.IsValid())
	require.True(t, m.IsTriangleMesh())
	require.Equal(t, 5, m.NumberOfVertices())
	require.Equal(t, 9, m.NumberOfEdges())
	require.Equal(t, 6, m.NumberOfFaces())
	require.Equal(t, 2, m.Euler())

	_, _, err = m.InsertVertex(999)
	require.ErrorIs(t, err, mesh.ErrFaceNotFound)
}

func TestCullVertices(t *testing.T) {
	m := buildFan(t)
	isolated, err := m.AddVertex()
	require.NoError(t, err)

	m.CullVertices()
	require.False(t, m.HasVertex(isolated))
	require.Equal(t, []int{0, 1, 2, 3, 4}, m.Vertices())
}
