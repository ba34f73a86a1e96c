package meshbuild_test

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/meshweave/hemesh/mesh"
	"github.com/meshweave/hemesh/meshbuild"
)

//----------------------------------------------------------------------------//
// PlatonicSolid Tests
//----------------------------------------------------------------------------//

// TestPlatonicSolid_Counts verifies the V/E/F counts, closedness, and
// manifoldness of all five solids.
func TestPlatonicSolid_Counts(t *testing.T) {
	cases := []struct {
		name    meshbuild.PlatonicName
		v, e, f int
	}{
		{meshbuild.Tetrahedron, 4, 6, 4},
		{meshbuild.Hexahedron, 8, 12, 6},
		{meshbuild.Octahedron, 6, 12, 8},
		{meshbuild.Dodecahedron, 20, 30, 12},
		{meshbuild.Icosahedron, 12, 30, 20},
	}
	for _, tc := range cases {
		t.Run(tc.name.String(), func(t *testing.T) {
			m, err := meshbuild.Build(nil, nil, meshbuild.PlatonicSolid(tc.name))
			if err != nil {
				t.Fatalf("Build(%s) error: %v", tc.name, err)
			}
			if got := m.NumberOfVertices(); got != tc.v {
				t.Errorf("vertices = %d; want %d", got, tc.v)
			}
			if got := m.NumberOfEdges(); got != tc.e {
				t.Errorf("edges = %d; want %d", got, tc.e)
			}
			if got := m.NumberOfFaces(); got != tc.f {
				t.Errorf("faces = %d; want %d", got, tc.f)
			}
			if got := m.Euler(); got != 2 {
				t.Errorf("euler = %d; want 2", got)
			}
			if err := m.Validate(); err != nil {
				t.Errorf("Validate error: %v", err)
			}
			if !m.IsManifold() {
				t.Error("IsManifold = false; want true")
			}
			if len(m.EdgesOnBoundary()) != 0 {
				t.Error("closed solid reports boundary half-edges")
			}
			if !m.IsRegular() {
				t.Error("IsRegular = false; want true")
			}
		})
	}
}

// TestPlatonicSolid_Unknown rejects any value outside the five solids.
func TestPlatonicSolid_Unknown(t *testing.T) {
	_, err := meshbuild.Build(nil, nil, meshbuild.PlatonicSolid(7))
	if !errors.Is(err, meshbuild.ErrUnknownSolid) {
		t.Errorf("Build(PlatonicSolid(7)) error = %v; want ErrUnknownSolid", err)
	}
}

// TestPlatonicSolid_ScaleAndOrigin checks the frame options through the
// hexahedron, whose canonical corner radius is sqrt(3).
func TestPlatonicSolid_ScaleAndOrigin(t *testing.T) {
	m, err := meshbuild.Build(nil,
		[]meshbuild.BuildOption{
			meshbuild.WithScale(2),
			meshbuild.WithOrigin(r3.Vec{X: 10}),
		},
		meshbuild.PlatonicSolid(meshbuild.Hexahedron),
	)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	centroid, err := m.Centroid()
	if err != nil {
		t.Fatalf("Centroid error: %v", err)
	}
	if math.Abs(centroid.X-10) > 1e-12 || math.Abs(centroid.Y) > 1e-12 {
		t.Errorf("centroid = %+v; want (10,0,0)", centroid)
	}
	pos, err := m.VertexPosition(0)
	if err != nil {
		t.Fatalf("VertexPosition error: %v", err)
	}
	want := math.Sqrt(3) * 2
	got := math.Sqrt(
		(pos.X-centroid.X)*(pos.X-centroid.X) +
			(pos.Y-centroid.Y)*(pos.Y-centroid.Y) +
			(pos.Z-centroid.Z)*(pos.Z-centroid.Z))
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("corner radius = %g; want %g", got, want)
	}
}

//----------------------------------------------------------------------------//
// Dual Tests
//----------------------------------------------------------------------------//

// TestDual_HexahedronIsOctahedron verifies the classic duality pair.
func TestDual_HexahedronIsOctahedron(t *testing.T) {
	cube, err := meshbuild.Build(nil, nil, meshbuild.PlatonicSolid(meshbuild.Hexahedron))
	if err != nil {
		t.Fatalf("Build cube error: %v", err)
	}
	dual, err := meshbuild.Build(nil, nil, meshbuild.Dual(cube))
	if err != nil {
		t.Fatalf("Build dual error: %v", err)
	}
	if dual.NumberOfVertices() != 6 || dual.NumberOfEdges() != 12 || dual.NumberOfFaces() != 8 {
		t.Errorf("dual counts = %d/%d/%d; want 6/12/8",
			dual.NumberOfVertices(), dual.NumberOfEdges(), dual.NumberOfFaces())
	}
	if !dual.IsTriangleMesh() {
		t.Error("cube dual is not a triangle mesh")
	}
	if err := dual.Validate(); err != nil {
		t.Errorf("Validate error: %v", err)
	}
	if !dual.IsManifold() {
		t.Error("IsManifold = false; want true")
	}
}

// TestDual_OpenSourceRejected requires a closed source mesh.
func TestDual_OpenSourceRejected(t *testing.T) {
	open := mesh.NewMesh()
	if _, err := open.AddFace([]int{0, 1, 2}); err != nil {
		t.Fatalf("AddFace error: %v", err)
	}
	_, err := meshbuild.Build(nil, nil, meshbuild.Dual(open))
	if !errors.Is(err, meshbuild.ErrConstructFailed) {
		t.Errorf("Build(Dual(open)) error = %v; want ErrConstructFailed", err)
	}
}

//----------------------------------------------------------------------------//
// Build Tests
//----------------------------------------------------------------------------//

// TestBuild_NilConstructor rejects nil constructor slots explicitly.
func TestBuild_NilConstructor(t *testing.T) {
	_, err := meshbuild.Build(nil, nil, nil)
	if !errors.Is(err, meshbuild.ErrConstructFailed) {
		t.Errorf("Build(nil) error = %v; want ErrConstructFailed", err)
	}
}

// TestBuild_ComposesConstructors stacks two solids into one mesh without
// key collisions.
func TestBuild_ComposesConstructors(t *testing.T) {
	m, err := meshbuild.Build(
		[]mesh.Option{mesh.WithName("pair")},
		nil,
		meshbuild.PlatonicSolid(meshbuild.Tetrahedron),
		meshbuild.PlatonicSolid(meshbuild.Octahedron),
	)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if m.Name() != "pair" {
		t.Errorf("name = %q; want %q", m.Name(), "pair")
	}
	if got := m.NumberOfVertices(); got != 10 {
		t.Errorf("vertices = %d; want 10", got)
	}
	if got := m.NumberOfFaces(); got != 12 {
		t.Errorf("faces = %d; want 12", got)
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Validate error: %v", err)
	}
}
