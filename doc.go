// Package hemesh is an in-memory half-edge mesh kernel for building,
// querying, and mutating polygonal meshes: the topological backbone of
// design and fabrication tooling.
//
// 🚀 What is hemesh?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Core primitives: vertices, faces, and the directed half-edge map
//		• Attribute layering: per-entity overrides over mesh-wide defaults
//		• Topological queries: ordered neighbor fans, degrees, boundary loops
//		• Validity predicates: manifoldness, regularity, Euler characteristic
//		• Mutation operators: face insertion/deletion, vertex splits, culling
//		• Serialization: a flat, JSON-friendly round-trip form
//
// ✨ Why choose hemesh?
//
//   - Explicit topology – boundary is a typed state, never a magic sentinel
//   - Deterministic iteration – sorted vertices, edges, faces, and loops
//   - Monotone keys – deleted keys are never reused, so history stays unambiguous
//   - Pure Go core – geometry rides on gonum's r3 vectors, nothing heavier
//
// Under the hood, everything is organized under two subpackages:
//
//	mesh/      — the Mesh type: half-edge map, attribute stores, key allocator,
//	             queries, mutation operators, and serialization
//	meshbuild/ — deterministic constructors: Platonic solids, grids, polygons,
//	             and dual meshes, composable through one Build orchestrator
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╲ │
//	    3───2
//
//	a quad split into two triangles (0,2,3) and (0,1,2); the shared
//	half-edge pair 0→2 / 2→0 bounds one triangle each, all other
//	half-edges face the open boundary.
//
// A Mesh is not safe for concurrent mutation; use Copy to hand an
// independent snapshot to another goroutine.
//
//	go get github.com/meshweave/hemesh/mesh
package hemesh
