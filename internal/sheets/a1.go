package sheets

import (
	"fmt"
	"strings"
	"unicode"
)

// Range is a parsed A1 reference such as "Data!B2:D10".
type Range struct {
	// Sheet is the sheet title, empty when the reference is unqualified.
	Sheet string
	// Column is the start column letters, upper-cased ("B", "AA").
	Column string
	// Row is the one-based start row, 0 when the reference has no row ("A:D").
	Row int
}

// ParseRange parses the start of an A1 reference.
func ParseRange(rng string) (Range, error) {
	rng = strings.TrimSpace(rng)
	if rng == "" {
		return Range{}, fmt.Errorf("empty range")
	}

	var r Range
	if i := strings.LastIndex(rng, "!"); i >= 0 {
		r.Sheet = strings.Trim(rng[:i], "'")
		rng = rng[i+1:]
	}

	start, _, _ := strings.Cut(rng, ":")
	i := 0
	for i < len(start) && unicode.IsLetter(rune(start[i])) {
		i++
	}
	if i == 0 {
		return Range{}, fmt.Errorf("range %q has no start column", rng)
	}
	r.Column = strings.ToUpper(start[:i])

	if digits := start[i:]; digits != "" {
		if _, err := fmt.Sscanf(digits, "%d", &r.Row); err != nil || fmt.Sprint(r.Row) != digits {
			return Range{}, fmt.Errorf("range %q has invalid start row", rng)
		}
	}
	return r, nil
}

// Cell returns the A1 address of row in the range's start column,
// qualified with the sheet title when the range named one.
func (r Range) Cell(row int) string {
	cell := fmt.Sprintf("%s%d", r.Column, row)
	if r.Sheet == "" {
		return cell
	}
	return quoteSheet(r.Sheet) + "!" + cell
}

func quoteSheet(title string) string {
	for _, c := range title {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '_' {
			return "'" + strings.ReplaceAll(title, "'", "''") + "'"
		}
	}
	return title
}
