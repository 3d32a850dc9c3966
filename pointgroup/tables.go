package pointgroup

// ptgEntry ties together the three standard labels of a crystallographic
// point group: the Schoenflies symbol, the Hermann-Mauguin (international)
// symbol and the number of the first space group in its bucket.
type ptgEntry struct {
	sch  string
	herm string
	spg  int
}

// ptgIDs lists the 32 crystallographic point groups. Order follows the
// space-group numbering. The tables derived from it are fixed reference
// data, built once at init and never mutated.
var ptgIDs = [32]ptgEntry{
	{"C1", "1", 1},
	{"Ci", "-1", 2},
	{"C2", "2", 3},
	{"Cs", "m", 6},
	{"C2h", "2/m", 10},
	{"D2", "222", 16},
	{"C2v", "mm2", 25},
	{"D2h", "mmm", 47},
	{"C4", "4", 75},
	{"S4", "-4", 81},
	{"C4h", "4/m", 83},
	{"D4", "422", 89},
	{"C4v", "4mm", 99},
	{"D2d", "-42m", 111},
	{"D4h", "4/mmm", 123},
	{"C3", "3", 143},
	{"C3i", "-3", 147},
	{"D3", "32", 149},
	{"C3v", "3m", 156},
	{"D3d", "-3m", 162},
	{"C6", "6", 168},
	{"C3h", "-6", 174},
	{"C6h", "6/m", 175},
	{"D6", "622", 177},
	{"C6v", "6mm", 183},
	{"D3h", "-6m2", 189},
	{"D6h", "6/mmm", 191},
	{"T", "23", 195},
	{"Th", "m-3", 200},
	{"O", "432", 207},
	{"Td", "-43m", 215},
	{"Oh", "m-3m", 221},
}

var (
	sch2herm  = make(map[string]string, len(ptgIDs))
	herm2sch  = make(map[string]string, len(ptgIDs))
	sch2spgid = make(map[string]int, len(ptgIDs))
	spgid2sch = make(map[int]string, len(ptgIDs))
)

func init() {
	for _, e := range ptgIDs {
		sch2herm[e.sch] = e.herm
		herm2sch[e.herm] = e.sch
		sch2spgid[e.sch] = e.spg
		spgid2sch[e.spg] = e.sch
	}
}

// SchSymbols returns the 32 Schoenflies symbols in table order.
func SchSymbols() []string {
	out := make([]string, len(ptgIDs))
	for i, e := range ptgIDs {
		out[i] = e.sch
	}

	return out
}

// SchToHerm converts a Schoenflies symbol to Hermann-Mauguin.
func SchToHerm(sch string) (string, bool) {
	h, ok := sch2herm[sch]

	return h, ok
}

// HermToSch converts a Hermann-Mauguin symbol to Schoenflies.
func HermToSch(herm string) (string, bool) {
	s, ok := herm2sch[herm]

	return s, ok
}

// SchToSpgID returns the space-group ID bucket of a Schoenflies symbol.
func SchToSpgID(sch string) (int, bool) {
	id, ok := sch2spgid[sch]

	return id, ok
}

// SpgIDToSch returns the Schoenflies symbol owning a space-group ID bucket.
func SpgIDToSch(spgid int) (string, bool) {
	s, ok := spgid2sch[spgid]

	return s, ok
}

// AnyToSch normalizes a point-group label to its Schoenflies symbol. It
// accepts a Schoenflies string, a Hermann-Mauguin string, or an int
// space-group ID bucket.
func AnyToSch(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		if _, ok := sch2herm[x]; ok {
			return x, true
		}

		return HermToSch(x)
	case int:
		return SpgIDToSch(x)
	}

	return "", false
}
