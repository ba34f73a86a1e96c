package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshweave/hemesh/mesh"
)

// buildPinwheel returns a non-manifold fixture: three triangles crowding the
// edge {0,1}, so the last one steals a half-edge claim and vertex 0 ends up
// with two outgoing boundary half-edges.
func buildPinwheel(t *testing.T) *mesh.Mesh {
	t.Helper()
	m := mesh.NewMesh()
	for _, cycle := range [][]int{{0, 1, 2}, {1, 0, 3}, {0, 1, 4}} {
		_, err := m.AddFace(cycle)
		require.NoError(t, err)
	}

	return m
}

func TestValidate(t *testing.T) {
	require.NoError(t, buildFan(t).Validate())
	require.NoError(t, buildTetrahedron(t).Validate())
	require.True(t, buildTetrahedron(t).IsValid())

	// An empty mesh holds the invariants vacuously.
	require.NoError(t, mesh.NewMesh().Validate())

	// The third pinwheel face stole half-edge 0->1 from the first, so face
	// 0's cycle no longer agrees with the half-edge map.
	err := buildPinwheel(t).Validate()
	require.ErrorIs(t, err, mesh.ErrMalformedTopology)
}

func TestIsManifold(t *testing.T) {
	require.True(t, buildFan(t).IsManifold())
	require.True(t, buildTetrahedron(t).IsManifold())

	// Empty mesh and isolated vertices are not manifold.
	empty := mesh.NewMesh()
	require.False(t, empty.IsManifold())
	isolated := buildFan(t)
	_, err := isolated.AddVertex()
	require.NoError(t, err)
	require.False(t, isolated.IsManifold())

	require.False(t, buildPinwheel(t).IsManifold())

	// Two triangles meeting only at a vertex: the fan around the pinch
	// vertex is split in two.
	bowtie := mesh.NewMesh()
	for _, cycle := range [][]int{{0, 1, 2}, {0, 3, 4}} {
		_, err := bowtie.AddFace(cycle)
		require.NoError(t, err)
	}
	require.False(t, bowtie.IsManifold())
}

func TestShapePredicates(t *testing.T) {
	tetra := buildTetrahedron(t)
	require.True(t, tetra.IsRegular())
	require.True(t, tetra.IsTriangleMesh())
	require.False(t, tetra.IsQuadMesh())

	fan := buildFan(t)
	require.False(t, fan.IsRegular()) // hub degree 4, rim corners degree 2
	require.True(t, fan.IsTriangleMesh())

	quad := mesh.NewMesh()
	_, err := quad.AddFace([]int{0, 1, 2, 3})
	require.NoError(t, err)
	require.True(t, quad.IsQuadMesh())
	require.False(t, quad.IsTriangleMesh())

	// No faces: neither triangle nor quad, but vacuously regular.
	empty := mesh.NewMesh()
	require.True(t, empty.IsRegular())
	require.False(t, empty.IsTriangleMesh())
	require.False(t, empty.IsQuadMesh())
}

func TestEuler(t *testing.T) {
	require.Equal(t, 2, buildTetrahedron(t).Euler())
	require.Equal(t, 1, buildFan(t).Euler()) // disk: 5 - 7 + 3

	// Isolated vertices do not count toward V.
	m := buildTetrahedron(t)
	_, err := m.AddVertex()
	require.NoError(t, err)
	require.Equal(t, 2, m.Euler())

	require.Equal(t, 0, mesh.NewMesh().Euler())
}

func TestOrientabilityNotSupported(t *testing.T) {
	m := buildTetrahedron(t)

	_, err := m.IsOrientable()
	require.ErrorIs(t, err, mesh.ErrNotSupported)
	_, err = m.Genus()
	require.ErrorIs(t, err, mesh.ErrNotSupported)
}
