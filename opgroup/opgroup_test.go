package opgroup_test

import (
	"testing"

	"github.com/rousseab/abipy/intmat"
	"github.com/rousseab/abipy/opgroup"
	"github.com/rousseab/abipy/symmop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Hexagonal-lattice rotations closing the 3m (C3v) point group: identity,
// the two 3-fold rotations and three mirrors. Non-abelian, three classes.
var c3vRots = []intmat.Mat{
	{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},    // E
	{{0, -1, 0}, {1, -1, 0}, {0, 0, 1}},  // 3+
	{{-1, 1, 0}, {-1, 0, 0}, {0, 0, 1}},  // 3-
	{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}},    // m
	{{-1, 0, 0}, {-1, 1, 0}, {0, 0, 1}},  // 3+·m
	{{1, -1, 0}, {0, -1, 0}, {0, 0, 1}},  // 3-·m
}

// mm2-lattice rotations: E, C2z, and the two vertical mirrors. Abelian.
var mm2Rots = []intmat.Mat{
	{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}},
	{{-1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	{{1, 0, 0}, {0, -1, 0}, {0, 0, 1}},
}

// opsFrom lifts plain rotations into symmetry operations.
func opsFrom(t *testing.T, rots []intmat.Mat) []symmop.Operation {
	t.Helper()
	ops := make([]symmop.Operation, len(rots))
	for i, r := range rots {
		op, err := symmop.New(r, intmat.Vec{}, +1, +1)
		require.NoError(t, err)
		ops[i] = op
	}

	return ops
}

// mustGroup wraps opgroup.New for inputs the test knows to be valid.
func mustGroup(t *testing.T, ops []symmop.Operation) *opgroup.Group[symmop.Operation] {
	t.Helper()
	g, err := opgroup.New(ops)
	require.NoError(t, err)

	return g
}

// TestNew_Rejections covers empty input and duplicate detection (including
// duplicates that only coincide modulo a lattice translation).
func TestNew_Rejections(t *testing.T) {
	_, err := opgroup.New[symmop.Operation](nil)
	assert.ErrorIs(t, err, opgroup.ErrEmptyGroup)

	e, err := symmop.New(intmat.Identity(), intmat.Vec{}, +1, +1)
	require.NoError(t, err)
	shifted, err := symmop.New(intmat.Identity(), intmat.Vec{1, -2, 0}, +1, +1)
	require.NoError(t, err)

	_, err = opgroup.New([]symmop.Operation{e, shifted})
	assert.ErrorIs(t, err, opgroup.ErrDuplicateOp, "lattice-shifted copy is the same element")
}

// TestGroup_Axioms verifies IsGroup on a closed set and on the same set
// with one element removed.
func TestGroup_Axioms(t *testing.T) {
	full := mustGroup(t, opsFrom(t, c3vRots))
	assert.True(t, full.IsGroup(), "3m must satisfy the group axioms")
	assert.False(t, full.IsCommutative(), "3m is non-abelian")
	assert.False(t, full.IsAbelianGroup())

	broken := mustGroup(t, opsFrom(t, c3vRots[:5]))
	assert.False(t, broken.IsGroup(), "dropping a mirror breaks closure")
}

// TestGroup_Abelian verifies the abelian path on mm2.
func TestGroup_Abelian(t *testing.T) {
	g := mustGroup(t, opsFrom(t, mm2Rots))
	assert.True(t, g.IsAbelianGroup(), "mm2 is an abelian group")
}

// TestGroup_IndexLookup exercises the hash-bucket lookup, including a
// lattice-shifted probe that must resolve to the stored element.
func TestGroup_IndexLookup(t *testing.T) {
	ops := opsFrom(t, c3vRots)
	g := mustGroup(t, ops)

	for i, op := range ops {
		assert.Equal(t, i, g.Index(op), "every member found at its position")
	}

	shifted, err := symmop.New(c3vRots[3], intmat.Vec{2, -1, 0}, +1, +1)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Index(shifted), "lookup is modulo lattice translations")

	outsider, err := symmop.New(c3vRots[3], intmat.Vec{}, -1, +1)
	require.NoError(t, err)
	assert.Equal(t, opgroup.NoIndex, g.Index(outsider), "time-reversed probe is absent")
	assert.False(t, g.Contains(outsider))
	assert.Equal(t, 0, g.Count(outsider))
	assert.Equal(t, 1, g.Count(ops[0]))
}

// TestGroup_MultTable checks table shape, the identity row/column and
// consistency with explicit products.
func TestGroup_MultTable(t *testing.T) {
	ops := opsFrom(t, c3vRots)
	g := mustGroup(t, ops)

	table := g.MultTable()
	require.Len(t, table, 6)

	for i := 0; i < g.Len(); i++ {
		assert.Equal(t, i, table[0][i], "E·x = x")
		assert.Equal(t, i, table[i][0], "x·E = x")
		for j := 0; j < g.Len(); j++ {
			require.NotEqual(t, opgroup.NoIndex, table[i][j], "closed group has no absent entries")
			assert.True(t, ops[table[i][j]].Equal(ops[i].Product(ops[j])))
		}
	}
}

// TestGroup_MultTableAbsent checks that a non-closed set surfaces NoIndex
// entries rather than failing.
func TestGroup_MultTableAbsent(t *testing.T) {
	g := mustGroup(t, opsFrom(t, c3vRots[:2])) // E and 3+ only: 3+·3+ = 3- is missing

	table := g.MultTable()
	assert.Equal(t, opgroup.NoIndex, table[1][1], "3+·3+ falls outside the set")
}

// TestGroup_ClassIndices verifies the conjugacy partition of 3m:
// {E}, {3+, 3-}, {m, m', m''} in first-appearance order.
func TestGroup_ClassIndices(t *testing.T) {
	g := mustGroup(t, opsFrom(t, c3vRots))

	classes, err := g.ClassIndices()
	require.NoError(t, err)
	require.Len(t, classes, 3)

	assert.ElementsMatch(t, []int{0}, classes[0], "identity is alone in its class")
	assert.ElementsMatch(t, []int{1, 2}, classes[1], "the two 3-folds are conjugate")
	assert.ElementsMatch(t, []int{3, 4, 5}, classes[2], "the three mirrors are conjugate")

	total := 0
	for _, c := range classes {
		total += len(c)
	}
	assert.Equal(t, g.Len(), total, "classes partition the group")

	n, err := g.NumClasses()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

// TestGroup_ClassesGrouped checks the operation-valued view of the
// partition.
func TestGroup_ClassesGrouped(t *testing.T) {
	ops := opsFrom(t, c3vRots)
	g := mustGroup(t, ops)

	classes, err := g.Classes()
	require.NoError(t, err)
	require.Len(t, classes, 3)
	assert.True(t, classes[0][0].IsIdentity())
	assert.Len(t, classes[2], 3)
}

// TestGroup_ClassIndicesClosureViolation verifies the hard failure when
// class decomposition runs on a non-closed set.
func TestGroup_ClassIndicesClosureViolation(t *testing.T) {
	g := mustGroup(t, opsFrom(t, c3vRots[:5]))

	_, err := g.ClassIndices()
	assert.ErrorIs(t, err, opgroup.ErrClosureViolation)
}

// TestGroup_Equal verifies order-insensitive set equality.
func TestGroup_Equal(t *testing.T) {
	ops := opsFrom(t, c3vRots)
	g1 := mustGroup(t, ops)

	reversed := make([]symmop.Operation, len(ops))
	for i, op := range ops {
		reversed[len(ops)-1-i] = op
	}
	g2 := mustGroup(t, reversed)

	assert.True(t, g1.Equal(g2), "same elements in another order")
	assert.False(t, g1.Equal(mustGroup(t, opsFrom(t, mm2Rots))), "different groups differ")
	assert.False(t, g1.Equal(nil))
}
