// Package meshbuild provides deterministic mesh constructors for tests,
// examples, and fixtures.
//
// Canonical model:
//   - One orchestrator: Build(mopts, bopts, cons...). Creates the mesh,
//     resolves the build configuration, and applies the constructors in
//     order.
//   - Constructors emit vertices with auto-allocated keys and record their
//     own local index mapping, so several constructors compose into one
//     mesh without key collisions.
//   - Same inputs, options, and constructor order ⇒ identical meshes.
//
// Available constructors:
//
//	PlatonicSolid(name) — the five Platonic shells with canonical unit-scale
//	                      coordinates and consistently oriented face cycles;
//	                      the Dodecahedron is derived as the dual of the
//	                      Icosahedron
//	Grid(nx, ny, d)     — an open quad grid in the z=0 plane
//	Polygon(points)     — a single n-gon face
//	Dual(src)           — the dual of a closed source mesh (face centroids
//	                      become vertices, vertex fans become faces)
//
// Errors are package-level sentinels (ErrUnknownSolid, ErrBadDimension,
// ErrConstructFailed); implementations attach method context with %w, so
// branch on them with errors.Is.
package meshbuild
