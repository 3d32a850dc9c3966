// Package abipy is an exact symmetry-algebra toolkit for periodic crystals:
// build the space group of a crystal from its generators, verify the group
// axioms, split it into conjugacy classes, extract the little group of any
// wavevector, and validate tabulated point-group representations against
// the computed algebra.
//
// 🚀 What is abipy?
//
//	A small, dependency-light library that brings together:
//		• Integer matrix algebra: exact 3×3 unimodular inversion & determinants
//		• Symmetry operations: rotation + fractional translation + time reversal
//		  + magnetic sign, with full group-operator semantics
//		• Operation groups: multiplication tables, group/abelian-group checks,
//		  conjugacy-class decomposition
//		• Space groups: full magnetic operation sets, little groups of a k-point
//		• Point groups: classification into the 32 crystallographic classes,
//		  Schoenflies ↔ Hermann-Mauguin conversion
//		• Irreps: character tables and four-way representation self-validation
//
// ✨ Why choose abipy?
//
//   - Exact by construction – rotations live in integer arithmetic, never floats
//   - Rock-solid guarantees – every algebraic invariant is checkable in code
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – class and table ordering is stable and reproducible
//
// Under the hood, everything is organized under six subpackages:
//
//	intmat/     — exact 3×3 integer matrix primitives
//	symmop/     — the immutable crystal symmetry-operation value type
//	opgroup/    — generic ordered operation container + group algorithms
//	pointgroup/ — pure lattice rotations, naming tables, classification
//	spacegroup/ — space groups, little groups of a wavevector
//	irreps/     — representation tables, characters, self-validation
//
// Quick ASCII example:
//
//	    generators ──► spacegroup ──► FindLittleGroup(k)
//	                                        │
//	    irreps.Lookup ◄── pointgroup ◄──────┘
//
//	external generators become a verified group; a k-point query yields its
//	little group, whose rotations name the point group that keys the
//	representation tables.
//
// Dive into each package's doc.go for algorithms, complexity and error
// contracts.
//
//	go get github.com/rousseab/abipy
package abipy
