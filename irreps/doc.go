// Package irreps holds irreducible-representation tables of the
// crystallographic point groups and validates them against the computed
// group algebra.
//
// What:
//
//   - Irrep packs the representation matrices of one irreducible
//     representation (one complex matrix per group element, ordered
//     class-by-class) and derives per-element traces and the per-class
//     character.
//   - Table combines a point group's rotations, class layout and irreps
//     under its Schoenflies symbol, and renders the character table.
//   - Validate runs the four consistency checks reference data must pass:
//     the rotations form a group; conjugacy classes recomputed from the
//     rotations match the shipped class ranges; every irrep is a
//     homomorphism (D(g1)·D(g2) = D(g1·g2)); and the per-element trace
//     vectors satisfy ⟨χᵢ,χⱼ⟩/|G| = δᵢⱼ. Failures come back as structured
//     findings (check, indices, irrep, numeric residual) in a Report —
//     validation is a diagnostic tool, so it never returns an error.
//   - Lookup resolves builtin reference tables by Schoenflies symbol,
//     Hermann-Mauguin symbol or space-group ID bucket. The builtin data is
//     package-level and immutable: constructed once at init, read-only
//     thereafter.
//
// Why:
//
//   - The representation data comes from external tabulations; before a
//     character table is trusted for classifying electronic or vibrational
//     states, it must be checked against the multiplication table and
//     class partition computed from the rotations themselves.
//
// Complexity (n = group order, r = irreps, d = max dimension):
//
//   - Validate: O(n²·r·d³) for the homomorphism sweep; the other checks
//     are cheaper.
//
// Errors:
//
//   - ErrBadTable: structurally inconsistent input (counts, dimensions or
//     class ranges that do not add up).
//   - ErrTableNotFound: no builtin table for the requested symbol.
package irreps
