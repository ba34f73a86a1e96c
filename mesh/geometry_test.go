package mesh_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/meshweave/hemesh/mesh"
)

// buildUnitSquare returns a single quad face over the unit square in z=0.
func buildUnitSquare(t *testing.T) *mesh.Mesh {
	t.Helper()
	m := mesh.NewMesh()
	for i, pos := range []r3.Vec{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	} {
		_, err := m.AddVertex(mesh.VertexKey(i), mesh.VertexPosition(pos))
		require.NoError(t, err)
	}
	_, err := m.AddFace([]int{0, 1, 2, 3})
	require.NoError(t, err)

	return m
}

func TestVertexPosition(t *testing.T) {
	m := mesh.NewMesh()
	k, err := m.AddVertex()
	require.NoError(t, err)

	// Fresh vertices sit at the origin via the x,y,z defaults.
	pos, err := m.VertexPosition(k)
	require.NoError(t, err)
	require.Equal(t, r3.Vec{}, pos)

	want := r3.Vec{X: 1, Y: 2, Z: 3}
	require.NoError(t, m.SetVertexPosition(k, want))
	pos, err = m.VertexPosition(k)
	require.NoError(t, err)
	require.Equal(t, want, pos)

	_, err = m.VertexPosition(9)
	require.ErrorIs(t, err, mesh.ErrVertexNotFound)
	require.ErrorIs(t, m.SetVertexPosition(9, want), mesh.ErrVertexNotFound)

	// Int coordinates (as deserialized data may carry) are accepted.
	require.NoError(t, m.SetVertexAttribute(k, "x", 4))
	pos, err = m.VertexPosition(k)
	require.NoError(t, err)
	require.Equal(t, 4.0, pos.X)

	// Anything non-numeric is rejected explicitly.
	require.NoError(t, m.SetVertexAttribute(k, "y", "two"))
	_, err = m.VertexPosition(k)
	require.ErrorIs(t, err, mesh.ErrBadAttribute)
}

func TestVertexPositions(t *testing.T) {
	m := buildUnitSquare(t)
	keys, positions, err := m.VertexPositions()
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, keys)
	require.Equal(t, r3.Vec{X: 1, Y: 1}, positions[2])
}

func TestFaceGeometry(t *testing.T) {
	m := buildUnitSquare(t)

	centroid, err := m.FaceCentroid(0)
	require.NoError(t, err)
	require.Equal(t, r3.Vec{X: 0.5, Y: 0.5}, centroid)

	// Counter-clockwise in the xy-plane: the Newell normal points along +z
	// with magnitude equal to the area.
	normal, err := m.FaceNormal(0)
	require.NoError(t, err)
	require.InDelta(t, 0, normal.X, 1e-12)
	require.InDelta(t, 0, normal.Y, 1e-12)
	require.InDelta(t, 1, normal.Z, 1e-12)

	area, err := m.FaceArea(0)
	require.NoError(t, err)
	require.InDelta(t, 1, area, 1e-12)

	_, err = m.FaceCentroid(9)
	require.ErrorIs(t, err, mesh.ErrFaceNotFound)
	_, err = m.FaceNormal(9)
	require.ErrorIs(t, err, mesh.ErrFaceNotFound)
}

func TestVertexTributaryArea(t *testing.T) {
	m := buildUnitSquare(t)

	// One quad of area 1, degree 4: each corner carries a quarter.
	a, err := m.VertexTributaryArea(0)
	require.NoError(t, err)
	require.InDelta(t, 0.25, a, 1e-12)

	_, err = m.VertexTributaryArea(9)
	require.ErrorIs(t, err, mesh.ErrVertexNotFound)
}

func TestMeshCentroidAndArea(t *testing.T) {
	square := buildUnitSquare(t)

	centroid, err := square.Centroid()
	require.NoError(t, err)
	require.Equal(t, r3.Vec{X: 0.5, Y: 0.5}, centroid)

	area, err := square.Area()
	require.NoError(t, err)
	require.InDelta(t, 1, area, 1e-12)

	// Regular tetrahedron with edge length 2*sqrt(2): four equilateral
	// triangles of area sqrt(3)*edge^2/4.
	tetra := buildTetrahedron(t)
	area, err = tetra.Area()
	require.NoError(t, err)
	edge := 2 * math.Sqrt2
	require.InDelta(t, 4*math.Sqrt(3)*edge*edge/4, area, 1e-9)

	empty := mesh.NewMesh()
	centroid, err = empty.Centroid()
	require.NoError(t, err)
	require.Equal(t, r3.Vec{}, centroid)
	area, err = empty.Area()
	require.NoError(t, err)
	require.Zero(t, area)
}
