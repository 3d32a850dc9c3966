package irreps

import (
	"fmt"
	"math"
	"strings"
)

// formatChar renders a character compactly: real characters lose their
// imaginary part, near-integers their decimals.
func formatChar(c complex128) string {
	re, im := real(c), imag(c)
	if math.Abs(im) < 1e-10 {
		if math.Abs(re-math.Round(re)) < 1e-10 {
			return fmt.Sprintf("%d", int(math.Round(re)))
		}

		return fmt.Sprintf("%.4g", re)
	}

	return fmt.Sprintf("%.4g%+.4gi", re, im)
}

// CharacterTable returns the character table as strings: the first row
// holds the group symbol and the class names with their multiplicities,
// each following row an irrep name and its per-class characters.
func (t *Table) CharacterTable() [][]string {
	header := make([]string, 0, len(t.classNames)+1)
	header = append(header, t.sch)
	for c, name := range t.classNames {
		header = append(header, fmt.Sprintf("%s [%d]", name, t.classRange[c][1]-t.classRange[c][0]))
	}

	table := [][]string{header}
	for _, ir := range t.irreps {
		row := make([]string, 0, len(ir.character)+1)
		row = append(row, ir.name)
		for _, chi := range ir.character {
			row = append(row, formatChar(chi))
		}
		table = append(table, row)
	}

	return table
}

// FormatCharacterTable renders the character table as aligned text, one
// row per line.
func (t *Table) FormatCharacterTable() string {
	rows := t.CharacterTable()

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for c, cell := range row {
			if len(cell) > widths[c] {
				widths[c] = len(cell)
			}
		}
	}

	var b strings.Builder
	for _, row := range rows {
		for c, cell := range row {
			if c > 0 {
				b.WriteString("  ")
			}
			fmt.Fprintf(&b, "%-*s", widths[c], cell)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
