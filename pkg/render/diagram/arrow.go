package diagram

import "strings"

// marker is the directional connector character drawn where an edge meets
// the box.
const marker = 'V'

// arrowify derives a row of directional markers from a centered
// bar-delimited row. Each non-blank field contributes one marker centered
// within the field's column span; blank fields contribute only their width.
// Segments are rejoined with single spaces, realigning the markers under
// the original row's column boundaries.
//
// A row with no non-blank fields returns the empty string, signaling that
// no arrow row should be printed.
func arrowify(row string) string {
	segments := strings.Split(row, "|")
	out := make([]string, len(segments))

	any := false
	for i, seg := range segments {
		if strings.TrimSpace(seg) == "" {
			out[i] = strings.Repeat(" ", len(seg))
			continue
		}
		any = true
		out[i] = centered(marker, len(seg))
	}
	if !any {
		return ""
	}
	return strings.Join(out, " ")
}

// markerColumns returns the column index of each field's marker in the
// arrowified row, one entry per non-blank field in left-to-right order.
// The indices line up with the step's declared port order because header
// rows carry one field per declared port.
func markerColumns(row string) []int {
	var cols []int
	pos := 0
	for _, seg := range strings.Split(row, "|") {
		if strings.TrimSpace(seg) != "" {
			cols = append(cols, pos+(len(seg)-1)/2)
		}
		pos += len(seg) + 1
	}
	return cols
}

// centered places c in the middle of a field of the given width, biased
// left for even widths to match markerColumns.
func centered(c byte, width int) string {
	left := (width - 1) / 2
	return strings.Repeat(" ", left) + string(c) + strings.Repeat(" ", width-left-1)
}
