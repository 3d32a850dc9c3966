package spacegroup_test

import (
	"testing"

	"github.com/rousseab/abipy/intmat"
	"github.com/rousseab/abipy/spacegroup"
	"github.com/rousseab/abipy/symmop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	identity = intmat.Identity()
	twoFoldZ = intmat.Mat{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}
	mirrorX  = intmat.Mat{{-1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	mirrorY  = intmat.Mat{{1, 0, 0}, {0, -1, 0}, {0, 0, 1}}
)

// mm2Group builds a symmorphic mm2 space group (#25-like generators).
func mm2Group(t *testing.T, timerev bool) *spacegroup.SpaceGroup {
	t.Helper()
	sg, err := spacegroup.New(25,
		[]intmat.Mat{identity, twoFoldZ, mirrorX, mirrorY},
		make([]intmat.Vec, 4),
		[]int{+1, +1, +1, +1},
		timerev)
	require.NoError(t, err)

	return sg
}

// TestNew_Validation covers the constructor error paths.
func TestNew_Validation(t *testing.T) {
	_, err := spacegroup.New(233, []intmat.Mat{identity}, []intmat.Vec{{}}, []int{1}, false)
	assert.ErrorIs(t, err, spacegroup.ErrInvalidSpaceGroupID)

	_, err = spacegroup.New(1, []intmat.Mat{identity, twoFoldZ}, []intmat.Vec{{}}, []int{1, 1}, false)
	assert.ErrorIs(t, err, spacegroup.ErrLengthMismatch)

	bad := intmat.Mat{{2, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	_, err = spacegroup.New(1, []intmat.Mat{bad}, []intmat.Vec{{}}, []int{1}, false)
	assert.ErrorIs(t, err, symmop.ErrInvalidRotation, "determinants validated before use")

	_, err = spacegroup.New(1, []intmat.Mat{identity}, []intmat.Vec{{}}, []int{0}, false)
	assert.ErrorIs(t, err, symmop.ErrInvalidSign)
}

// TestSpaceGroup_IsGroup verifies the group axioms on the built set, with
// and without time reversal.
func TestSpaceGroup_IsGroup(t *testing.T) {
	assert.True(t, mm2Group(t, false).IsGroup())
	assert.True(t, mm2Group(t, true).IsGroup(), "time-reversal doubling preserves the axioms")
}

// TestSpaceGroup_TimeReversalDoubling checks len(group) == 2·n_spatial and
// the ordering contract: the +1 block first, generator order within blocks.
func TestSpaceGroup_TimeReversalDoubling(t *testing.T) {
	sg := mm2Group(t, true)

	assert.Equal(t, 4, sg.NumSpatialSymmetries())
	assert.Equal(t, 8, sg.Len())
	assert.True(t, sg.HasTimeReversal())

	for i := 0; i < 4; i++ {
		assert.Equal(t, +1, sg.Op(i).TimeSign(), "first block is not time-reversed")
		assert.Equal(t, -1, sg.Op(i+4).TimeSign(), "second block is time-reversed")
		assert.Equal(t, sg.Op(i).RotR(), sg.Op(i+4).RotR(), "blocks share spatial parts")
	}
}

// TestSpaceGroup_ScrewAxis exercises non-zero fractional translations: a
// 2₁ screw axis along z closes into a group and is flagged symmorphic.
func TestSpaceGroup_ScrewAxis(t *testing.T) {
	sg, err := spacegroup.New(4,
		[]intmat.Mat{identity, twoFoldZ},
		[]intmat.Vec{{}, {0, 0, 0.5}},
		[]int{+1, +1},
		false)
	require.NoError(t, err)

	assert.True(t, sg.IsGroup(), "screw products differ from stored ops by a lattice vector only")
	assert.True(t, sg.IsSymmorphic())
	assert.False(t, mm2Group(t, false).IsSymmorphic())
}

// TestSpaceGroup_SymmOpsFilters covers the sign filters.
func TestSpaceGroup_SymmOpsFilters(t *testing.T) {
	sg, err := spacegroup.New(3,
		[]intmat.Mat{identity, twoFoldZ},
		make([]intmat.Vec, 2),
		[]int{+1, -1},
		true)
	require.NoError(t, err)

	assert.Len(t, sg.FMOps(), 2, "identity with both time signs")
	assert.Len(t, sg.AFMOps(), 2, "antiferromagnetic C2 with both time signs")
	assert.Len(t, sg.SymmOps(+1, 0), 2)
	assert.Len(t, sg.SymmOps(-1, -1), 1)
	assert.Len(t, sg.SymmOps(0, 0), 4)
}

// TestFindLittleGroup_ZoneBorder checks the X-point little group of mm2:
// every operation survives, with the documented g0 offsets.
func TestFindLittleGroup_ZoneBorder(t *testing.T) {
	sg := mm2Group(t, false)

	lg, err := sg.FindLittleGroup(intmat.Vec{0.5, 0, 0})
	require.NoError(t, err)

	require.Equal(t, 4, lg.Len(), "zone-border point keeps the full group")
	assert.True(t, lg.IsGroup())
	assert.Equal(t, "mm2", lg.KGroup().HermSymbol())
	assert.Equal(t, "C2v", lg.KGroup().SchSymbol())

	// E and the y-mirror fix k exactly; C2z and the x-mirror send it to
	// k − (1,0,0).
	assert.Equal(t, intmat.IntVec{0, 0, 0}, lg.G0(0))
	assert.Equal(t, intmat.IntVec{-1, 0, 0}, lg.G0(1))
	assert.Equal(t, intmat.IntVec{-1, 0, 0}, lg.G0(2))
	assert.Equal(t, intmat.IntVec{0, 0, 0}, lg.G0(3))

	op, g0 := lg.OpG0(1)
	assert.Equal(t, twoFoldZ, op.RotR())
	assert.Equal(t, intmat.IntVec{-1, 0, 0}, g0)
}

// TestFindLittleGroup_GenericPoint checks that a generic point on the kx
// axis keeps only the operations fixing it, in SpaceGroup order.
func TestFindLittleGroup_GenericPoint(t *testing.T) {
	sg := mm2Group(t, false)

	lg, err := sg.FindLittleGroup(intmat.Vec{0.25, 0, 0})
	require.NoError(t, err)

	require.Equal(t, 2, lg.Len())
	assert.Equal(t, identity, lg.Op(0).RotR(), "SpaceGroup order is preserved")
	assert.Equal(t, mirrorY, lg.Op(1).RotR())
	assert.Equal(t, "m", lg.KGroup().HermSymbol())
	assert.Equal(t, "Cs", lg.KGroup().SchSymbol())
}

// TestFindLittleGroup_Idempotent verifies that repeating the query yields
// identical operation sets and g0 vectors.
func TestFindLittleGroup_Idempotent(t *testing.T) {
	sg := mm2Group(t, true)
	k := intmat.Vec{0.5, 0, 0}

	lg1, err := sg.FindLittleGroup(k)
	require.NoError(t, err)
	lg2, err := sg.FindLittleGroup(k)
	require.NoError(t, err)

	require.Equal(t, lg1.Len(), lg2.Len())
	for i := 0; i < lg1.Len(); i++ {
		assert.True(t, lg1.Op(i).Equal(lg2.Op(i)))
	}
	assert.Equal(t, lg1.G0Vecs(), lg2.G0Vecs())
}

// TestFindLittleGroup_ExcludesAFM verifies that antiferromagnetic
// operations never enter the little group, even when they preserve k.
func TestFindLittleGroup_ExcludesAFM(t *testing.T) {
	sg, err := spacegroup.New(3,
		[]intmat.Mat{identity, twoFoldZ},
		make([]intmat.Vec, 2),
		[]int{+1, -1},
		false)
	require.NoError(t, err)

	// C2z preserves any (0,0,kz) point but is AFM here.
	lg, err := sg.FindLittleGroup(intmat.Vec{0, 0, 0.3})
	require.NoError(t, err)

	require.Equal(t, 1, lg.Len())
	assert.True(t, lg.Op(0).IsIdentity())
	assert.Equal(t, "1", lg.KGroup().HermSymbol())
}

// TestFindLittleGroup_TimeReversalAtGamma verifies that time-reversed
// operations enter the little group where they preserve k, while the point
// group of k is built from the non-time-reversed survivors only.
func TestFindLittleGroup_TimeReversalAtGamma(t *testing.T) {
	sg := mm2Group(t, true)

	lg, err := sg.FindLittleGroup(intmat.Vec{0, 0, 0})
	require.NoError(t, err)

	assert.Equal(t, 8, lg.Len(), "every operation fixes Γ")
	assert.Equal(t, 4, lg.KGroup().Len(), "point group strips time reversal")
	assert.Equal(t, "mm2", lg.KGroup().HermSymbol())
}

// TestFindLittleGroup_MagneticLittleGroup verifies that time-reversed
// operations survive at k wherever the composition −R_G·k lands back on k:
// on the kx axis of mm2, T·C2z and T·mx fix k exactly, so the magnetic
// little group is {E, my, T·C2z, T·mx} while the point group of k (built
// from the non-time-reversed survivors only) is just "m".
func TestFindLittleGroup_MagneticLittleGroup(t *testing.T) {
	sg := mm2Group(t, true)

	lg, err := sg.FindLittleGroup(intmat.Vec{0.25, 0, 0})
	require.NoError(t, err)

	require.Equal(t, 4, lg.Len())
	assert.Equal(t, identity, lg.Op(0).RotR())
	assert.Equal(t, mirrorY, lg.Op(1).RotR())
	assert.False(t, lg.Op(0).HasTimeReversal())
	assert.False(t, lg.Op(1).HasTimeReversal())

	assert.Equal(t, twoFoldZ, lg.Op(2).RotR(), "T·C2z maps k to −C2z·k = k")
	assert.Equal(t, mirrorX, lg.Op(3).RotR(), "T·mx maps k to −mx·k = k")
	assert.True(t, lg.Op(2).HasTimeReversal())
	assert.True(t, lg.Op(3).HasTimeReversal())
	assert.Equal(t, intmat.IntVec{}, lg.G0(2))
	assert.Equal(t, intmat.IntVec{}, lg.G0(3))

	assert.Equal(t, "m", lg.KGroup().HermSymbol())
	assert.Equal(t, "Cs", lg.KGroup().SchSymbol())
}

// TestFindLittleGroup_GenericKillsTimeReversal verifies that at a fully
// generic k, where no rotation maps −k back onto k, the time-reversed
// block drops out and only the identity survives.
func TestFindLittleGroup_GenericKillsTimeReversal(t *testing.T) {
	sg := mm2Group(t, true)

	lg, err := sg.FindLittleGroup(intmat.Vec{0.1, 0.2, 0.3})
	require.NoError(t, err)

	require.Equal(t, 1, lg.Len())
	assert.True(t, lg.Op(0).IsIdentity())
	assert.False(t, lg.Op(0).HasTimeReversal())
	assert.Equal(t, "1", lg.KGroup().HermSymbol())
}

// TestLittleGroup_String verifies the rendering: the header with the
// point-group symbols and the character table of the group of k.
func TestLittleGroup_String(t *testing.T) {
	sg := mm2Group(t, false)

	lg, err := sg.FindLittleGroup(intmat.Vec{0.5, 0, 0})
	require.NoError(t, err)

	s := lg.String()
	assert.Contains(t, s, "Kpoint group: mm2, C2v (25)")
	assert.Contains(t, s, "kpoint: [0.5 0 0]")
	assert.Contains(t, s, "A1", "character table rows are rendered")
	assert.Contains(t, s, "B2")
}
