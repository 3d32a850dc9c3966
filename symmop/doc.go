// Package symmop defines the immutable crystal symmetry-operation value:
// a real-space integer rotation, a fractional translation, a time-reversal
// sign and a magnetic sign, with full group-operator semantics.
//
// What:
//
//   - Operation packs RotR (real-space rotation, reduced coordinates), the
//     derived RotG (reciprocal-space rotation = transpose of the inverse of
//     RotR), Tau (fractional translation), TimeSign and MagneticSign.
//   - Product composes two operations ({R,t}{S,u} = {RS, Ru + t}), Inverse
//     yields {R⁻¹, −R⁻¹t}, Conjugate forms x⁻¹·a·x.
//   - Equal compares rotations exactly and translations modulo a lattice
//     vector within DefaultTranslationTol; HashKey is a deliberately coarse
//     integer key (trace, determinant, time sign) that callers must resolve
//     with Equal.
//   - RotateK applies the operation to a wavevector (timeSign · RotG·k),
//     optionally wrapped to the first Brillouin zone; PreserveK reports
//     whether k is mapped onto itself modulo a reciprocal lattice vector and
//     returns the integer offset g0. RotateR is the real-space action
//     R⁻¹(r − τ), matching the convention that operations act on functions.
//
// Why:
//
//   - Space-group algebra needs exact, hashable, immutable elements: every
//     derived structure (multiplication tables, conjugacy classes, little
//     groups) reduces to products, inverses and equality of these values.
//
// Complexity:
//
//   - Every method is O(1) on fixed 3×3 data; New performs one exact
//     integer inversion.
//
// Errors:
//
//   - ErrInvalidRotation: rotation determinant is not ±1 (a zero determinant
//     additionally matches intmat.ErrSingular).
//   - ErrInvalidSign: a time or magnetic sign outside {+1, −1}.
package symmop
