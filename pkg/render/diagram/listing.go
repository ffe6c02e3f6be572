package diagram

import (
	"fmt"
	"sort"
	"strings"

	"github.com/allpan3/mflowgen/pkg/step"
)

// Listing renders the step's parameter, flag, and source sections as plain
// text. Sections whose backing field is absent are omitted silently; the
// source line is always printed last. The returned string ends with a
// newline.
//
// Parameter keys are printed in sorted order so the listing stays
// byte-stable across runs regardless of map iteration order.
func Listing(s *step.Step) string {
	var lines []string

	if len(s.Parameters) > 0 {
		lines = append(lines, section("Parameters", sortedEntries(s.Parameters))...)
		lines = append(lines, "")
	}

	if s.Sandbox != nil {
		flags := []entry{{key: "sandbox", value: *s.Sandbox}}
		lines = append(lines, section("Flags", flags)...)
		lines = append(lines, "")
	}

	lines = append(lines, "Source: "+s.Source)
	return strings.Join(lines, "\n") + "\n"
}

// entry is one key-value pair of a listing section.
type entry struct {
	key   string
	value any
}

func sortedEntries(m map[string]any) []entry {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]entry, len(keys))
	for i, k := range keys {
		entries[i] = entry{key: k, value: m[k]}
	}
	return entries
}

// section renders a titled key-value list. Keys are right-aligned to the
// widest key; list values print the key header followed by one indented
// bullet per element.
func section(title string, entries []entry) []string {
	widest := 0
	for _, e := range entries {
		if len(e.key) > widest {
			widest = len(e.key)
		}
	}

	lines := []string{title + ":"}
	for _, e := range entries {
		if list, ok := e.value.([]any); ok {
			lines = append(lines, fmt.Sprintf("- %*s :", widest, e.key))
			for _, elem := range list {
				lines = append(lines, "    - "+formatScalar(elem))
			}
			continue
		}
		lines = append(lines, fmt.Sprintf("- %*s : %s", widest, e.key, formatScalar(e.value)))
	}
	return lines
}

// formatScalar prints a parameter scalar with Go's default formatting.
func formatScalar(v any) string {
	return fmt.Sprintf("%v", v)
}
