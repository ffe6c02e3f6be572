package step

import (
	"sort"
	"strconv"
	"strings"
)

// ID is a typed step identifier. Identifiers produced by the graph
// resolution stage carry a numeric ordering prefix up to the first dash
// ("5-floorplan" orders before "6-place"); identifiers without one sort
// after all prefixed identifiers.
type ID string

// Ordinal returns the numeric ordering prefix of the identifier.
// The second return value is false when the identifier has no parseable
// prefix.
func (id ID) Ordinal() (int, bool) {
	head, _, found := strings.Cut(string(id), "-")
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(head)
	if err != nil {
		return 0, false
	}
	return n, true
}

// SortRefs orders references ascending by the numeric prefix of their step
// identifier. References without a prefix sort last. The sort is stable, so
// references with equal prefixes keep their original relative order.
func SortRefs(refs []Reference) []Reference {
	type keyed struct {
		ref Reference
		ord int
	}

	// Parse each ordinal once, not per comparison.
	keys := make([]keyed, len(refs))
	for i, r := range refs {
		ord, ok := ID(r.Step).Ordinal()
		if !ok {
			ord = int(^uint(0) >> 1) // max int
		}
		keys[i] = keyed{ref: r, ord: ord}
	}

	sort.SliceStable(keys, func(i, j int) bool {
		return keys[i].ord < keys[j].ord
	})

	out := make([]Reference, len(keys))
	for i, k := range keys {
		out[i] = k.ref
	}
	return out
}
