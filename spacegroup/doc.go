// Package spacegroup builds the full symmetry group of a periodic crystal
// from its spatial generators and answers wavevector queries with little
// groups.
//
// What:
//
//   - SpaceGroup expands generator data — a space-group identifier, spatial
//     rotations, fractional translations, per-operation magnetic signs and
//     a time-reversal flag — into the Cartesian combination of the spatial
//     operations with the time signs {+1} or {+1, −1}, held in an ordered
//     opgroup container.
//   - FindLittleGroup(k) filters the ferromagnetic operations that map k
//     onto itself modulo a reciprocal lattice vector, recording each
//     integer offset g0 = Sk − k, and classifies the surviving rotations
//     into the point group of k.
//   - Filters (SymmOps, FMOps, AFMOps) slice the operation set by time and
//     magnetic sign without copying the underlying operations.
//
// Why:
//
//   - The little group of k and its point-group symbol are the entry
//     points to representation analysis: they key the irreps tables and
//     carry the g0 vectors needed to relate Bloch states at symmetry-
//     related wavevectors.
//
// Ownership:
//
//   - A SpaceGroup owns its operation list exclusively. LittleGroup values
//     hold copies of the surviving operations in SpaceGroup order and
//     never mutate them; they are created per query and not cached.
//
// Antiferromagnetic operations are excluded from little-group search, as
// in the reference formalism.
//
// Complexity:
//
//   - New: O(n) constructions; FindLittleGroup: O(n) preservation tests
//     plus the point-group classification of the survivors.
//
// Errors:
//
//   - ErrInvalidSpaceGroupID: identifier outside 0..232 (0 = unknown).
//   - ErrLengthMismatch: rotation/translation/sign arrays disagree.
//   - ErrEmptyLittleGroup: no operation preserves k — unreachable for a
//     well-formed group (the identity preserves every k), so it flags
//     corrupt generator data.
//   - Construction also surfaces symmop.ErrInvalidRotation /
//     symmop.ErrInvalidSign, and FindLittleGroup surfaces
//     pointgroup.ErrPointGroupNotFound.
package spacegroup
