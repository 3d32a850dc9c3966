// Package pointgroup models pure lattice rotations and classifies sets of
// them into the 32 crystallographic point groups.
//
// What:
//
//   - Rotation is a pure rotation of the lattice (proper, improper or
//     mirror) expressed in reduced coordinates, so its matrix elements are
//     integers. It carries its order (smallest power reaching the
//     identity), whether a power reaches the inversion, and its
//     crystallographic kind (1, 2, 3, 4, 6, −1, m, −3, −4, −6).
//   - Group wraps an opgroup container of Rotations and resolves its
//     Hermann-Mauguin and Schoenflies symbols. Classification uses the
//     rotation-kind signature: the multiset of kinds uniquely identifies
//     each of the 32 crystallographic point groups.
//   - The naming tables convert between Schoenflies symbols,
//     Hermann-Mauguin symbols and the space-group ID bucket of each point
//     group, in both directions.
//
// Why:
//
//   - The little group of a wavevector is classified through its rotations
//     alone (time reversal and translations stripped); the resulting symbol
//     keys the representation tables in package irreps.
//
// Complexity:
//
//   - NewRotation: O(1) (at most six 3×3 products to find the order).
//   - New (classification): O(n) kind counting plus one table lookup.
//
// Errors:
//
//   - ErrInvalidRotation: determinant is not ±1.
//   - ErrNotRootOfUnity: no power ≤ 6 reaches the identity, so the matrix
//     is not compatible with any crystal lattice.
//   - ErrPointGroupNotFound: the kind signature matches none of the 32
//     crystallographic point groups — fatal, indicates malformed or
//     incomplete rotation data.
package pointgroup
