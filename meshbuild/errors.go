// Package meshbuild: sentinel errors.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     implementations attach context via %w.
//   - Constructors never panic at runtime.

package meshbuild

import "errors"

// ErrUnknownSolid indicates a PlatonicName outside the five canonical solids.
// Usage: if errors.Is(err, ErrUnknownSolid) { /* reject the parameter */ }.
var ErrUnknownSolid = errors.New("meshbuild: unknown platonic solid")

// ErrBadDimension indicates a size or spacing parameter outside its allowed
// range (grid extents < 1, spacing <= 0, polygon with fewer than 3 points).
// Usage: if errors.Is(err, ErrBadDimension) { /* fix the dimensions */ }.
var ErrBadDimension = errors.New("meshbuild: invalid dimension")

// ErrConstructFailed indicates a constructor could not produce a mesh
// without breaking invariants (e.g. taking the dual of an open mesh, or a
// nil constructor passed to Build).
// Usage: if errors.Is(err, ErrConstructFailed) { /* inspect the source */ }.
var ErrConstructFailed = errors.New("meshbuild: construction failed")
