// Package opgroup provides a generic ordered, duplicate-free container of
// group operations together with the group-theory algorithms the symmetry
// core is built on.
//
// What:
//
//   - Element[T] is the constraint an operation type must satisfy: Product,
//     Inverse, Equal, IsIdentity and a coarse HashKey resolved by Equal.
//     Both symmop.Operation and pointgroup.Rotation satisfy it.
//   - Group[T] preserves insertion order, rejects duplicates, and computes:
//     IsGroup (exactly one identity, all inverses present, closure),
//     IsCommutative / IsAbelianGroup, the multiplication table, and the
//     partition into conjugacy classes.
//
// Why:
//
//   - Every downstream structure (space groups, little groups, point
//     groups, representation validation) is the same algebra over a
//     different element type; one generic container keeps the algorithms
//     in a single place, with element lookup going through hash buckets
//     so closure checks do not degrade into quadratic equality scans.
//
// Determinism:
//
//   - Classes are emitted in the order their representative first appears
//     in the container; within a class, indices are in container order.
//     The multiplication table rows/columns follow insertion order.
//
// Concurrency:
//
//   - A Group is immutable after New; the lazily built multiplication
//     table and class partition are memoized behind sync.Once, so reads
//     from multiple goroutines are safe.
//
// Complexity (n = group order):
//
//   - IsGroup, MultTable: O(n²) products with O(1) expected lookups.
//   - ClassIndices: O(n²) conjugations.
//   - IsCommutative: O(n²).
//
// Errors:
//
//   - ErrEmptyGroup, ErrDuplicateOp: invalid construction input.
//   - ErrClosureViolation: a conjugate fell outside the set during class
//     decomposition, where closure is a hard precondition. IsGroup never
//     errors: it is the diagnostic for untrusted generator input.
package opgroup
