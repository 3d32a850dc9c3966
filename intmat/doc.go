// Package intmat provides exact 3×3 integer matrix primitives for
// crystallographic symmetry work.
//
// What:
//
//   - Mat is a plain [3][3]int value: comparable, hashable, copied by value.
//   - InvertTranspose inverts a unimodular integer matrix via the adjugate
//     (cofactor) formula using integer arithmetic only, optionally returning
//     the transpose of the inverse (the reciprocal-space rotation).
//   - Det, Trace, Mul, MulVec, MulIntVec, Transpose, Neg cover the small
//     algebra symmetry code needs.
//   - IsIntegerVec tests whether a real vector is within a fixed absolute
//     tolerance of an integer vector; it exists for comparing fractional
//     translations modulo a lattice vector, never for rotations (those are
//     integer by construction).
//
// Why:
//
//   - Crystallographic rotations in reduced coordinates are unimodular
//     integer matrices; float linear algebra would trade exactness for
//     rounding policy. Integer adjugate inversion keeps the group algebra
//     exact, so equality and hashing stay trivial.
//
// Complexity:
//
//   - All operations are O(1): fixed 3×3 shapes, no allocation.
//
// Errors:
//
//   - ErrSingular: the matrix has zero determinant and cannot be inverted.
package intmat
