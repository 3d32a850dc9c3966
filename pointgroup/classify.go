package pointgroup

// signature counts the rotations of each Kind in a rotation set. The
// multiset of kinds uniquely identifies each of the 32 crystallographic
// point groups, which makes classification a single table lookup.
type signature [numKinds]int

// hermBySignature maps a kind signature to the Hermann-Mauguin symbol of
// the point group it identifies. Count order matches the Kind constants:
// 1, 2, 3, 4, 6, -1, m, -3, -4, -6.
var hermBySignature = map[signature]string{
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0}: "1",
	{1, 0, 0, 0, 0, 1, 0, 0, 0, 0}: "-1",
	{1, 1, 0, 0, 0, 0, 0, 0, 0, 0}: "2",
	{1, 0, 0, 0, 0, 0, 1, 0, 0, 0}: "m",
	{1, 1, 0, 0, 0, 1, 1, 0, 0, 0}: "2/m",
	{1, 3, 0, 0, 0, 0, 0, 0, 0, 0}: "222",
	{1, 1, 0, 0, 0, 0, 2, 0, 0, 0}: "mm2",
	{1, 3, 0, 0, 0, 1, 3, 0, 0, 0}: "mmm",
	{1, 1, 0, 2, 0, 0, 0, 0, 0, 0}: "4",
	{1, 1, 0, 0, 0, 0, 0, 0, 2, 0}: "-4",
	{1, 1, 0, 2, 0, 1, 1, 0, 2, 0}: "4/m",
	{1, 5, 0, 2, 0, 0, 0, 0, 0, 0}: "422",
	{1, 1, 0, 2, 0, 0, 4, 0, 0, 0}: "4mm",
	{1, 3, 0, 0, 0, 0, 2, 0, 2, 0}: "-42m",
	{1, 5, 0, 2, 0, 1, 5, 0, 2, 0}: "4/mmm",
	{1, 0, 2, 0, 0, 0, 0, 0, 0, 0}: "3",
	{1, 0, 2, 0, 0, 1, 0, 2, 0, 0}: "-3",
	{1, 3, 2, 0, 0, 0, 0, 0, 0, 0}: "32",
	{1, 0, 2, 0, 0, 0, 3, 0, 0, 0}: "3m",
	{1, 3, 2, 0, 0, 1, 3, 2, 0, 0}: "-3m",
	{1, 1, 2, 0, 2, 0, 0, 0, 0, 0}: "6",
	{1, 0, 2, 0, 0, 0, 1, 0, 0, 2}: "-6",
	{1, 1, 2, 0, 2, 1, 1, 2, 0, 2}: "6/m",
	{1, 7, 2, 0, 2, 0, 0, 0, 0, 0}: "622",
	{1, 1, 2, 0, 2, 0, 6, 0, 0, 0}: "6mm",
	{1, 3, 2, 0, 0, 0, 4, 0, 0, 2}: "-6m2",
	{1, 7, 2, 0, 2, 1, 7, 2, 0, 2}: "6/mmm",
	{1, 3, 8, 0, 0, 0, 0, 0, 0, 0}: "23",
	{1, 3, 8, 0, 0, 1, 3, 8, 0, 0}: "m-3",
	{1, 9, 8, 6, 0, 0, 0, 0, 0, 0}: "432",
	{1, 3, 8, 0, 0, 0, 6, 0, 6, 0}: "-43m",
	{1, 9, 8, 6, 0, 1, 9, 8, 6, 0}: "m-3m",
}

// classify resolves the Hermann-Mauguin symbol of a rotation set from its
// kind signature. ok is false when the signature matches no
// crystallographic point group.
func classify(rots []Rotation) (string, bool) {
	var sig signature
	for _, r := range rots {
		sig[r.Kind()]++
	}

	herm, ok := hermBySignature[sig]

	return herm, ok
}
