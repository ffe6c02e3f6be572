package diagram

import "strings"

// portRow builds a bar-delimited header row from a list of port names:
// ["a", "b"] becomes "| a | b |". An empty list yields the degenerate row
// "|  |" so the box keeps its side walls.
func portRow(names []string) string {
	return "| " + strings.Join(names, " | ") + " |"
}

// rowWidth returns the uniform column width for a set of header rows: the
// length of the longest row.
func rowWidth(rows ...string) int {
	w := 0
	for _, r := range rows {
		if len(r) > w {
			w = len(r)
		}
	}
	return w
}

// recenter pads a bar-delimited row to exactly width characters by
// redistributing space between its fields.
//
// The row is split on whitespace into trimmed field tokens. The surplus
// width is spread evenly across the gaps between adjacent tokens; the
// division remainder is inserted immediately before the final character.
// Field tokens stay contiguous and in order, and the first and last
// characters of the row are preserved.
//
// A single-token row is returned unchanged: it already equals the width by
// construction of the maximum.
func recenter(row string, width int) string {
	tokens := strings.Fields(row)
	if len(tokens) < 2 {
		return row
	}

	total := 0
	for _, tok := range tokens {
		total += len(tok)
	}

	extra := width - total
	gaps := len(tokens) - 1
	pad := strings.Repeat(" ", extra/gaps)

	s := strings.Join(tokens, pad)
	if rem := extra % gaps; rem > 0 {
		s = s[:len(s)-1] + strings.Repeat(" ", rem) + s[len(s)-1:]
	}
	return s
}
