package diagram

import (
	"strings"
	"testing"

	"github.com/allpan3/mflowgen/pkg/step"
)

func TestInputStack(t *testing.T) {
	s := &step.Step{
		Name:   "3-mid",
		Inputs: []string{"a", "b", "c"},
		EdgesI: map[string][]step.Reference{
			"a": {{Step: "S1", Port: "a"}},
			"c": {{Step: "S2", Port: "c"}},
		},
		Source: "steps/mid",
	}
	row := "| a | b | c |"

	want := []string{
		"  +       x   S1",
		"  +       x   a",
		"  |       x  ",
		"  |       +   S2",
		"  |       +   c",
		"  |       |  ",
		"  V       V  ",
	}

	got := inputStack(s.Inputs, s, row)
	if len(got) != len(want) {
		t.Fatalf("inputStack() = %d lines, want %d:\n%s", len(got), len(want), strings.Join(got, "\n"))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestInputStackFinalRowOnly(t *testing.T) {
	s := &step.Step{
		Name:   "1-lone",
		Inputs: []string{"a", "b"},
		Source: "steps/lone",
	}
	row := "| a | b |"

	got := inputStack(s.Inputs, s, row)
	if len(got) != 1 {
		t.Fatalf("inputStack() = %d lines, want 1", len(got))
	}
	if strings.TrimSpace(got[0]) != "" {
		t.Errorf("final row = %q, want all blank", got[0])
	}
	if len(got[0]) != len(row) {
		t.Errorf("final row length = %d, want %d", len(got[0]), len(row))
	}
}

func TestInputStackNoPorts(t *testing.T) {
	s := &step.Step{Name: "0-src", Source: "steps/src"}
	if got := inputStack(nil, s, "|   |"); got != nil {
		t.Errorf("inputStack() = %v, want nil", got)
	}
}

// Multiple producers on one port emit one labeled pair per edge.
func TestInputStackFanIn(t *testing.T) {
	s := &step.Step{
		Name:   "2-merge",
		Inputs: []string{"files"},
		EdgesI: map[string][]step.Reference{
			"files": {
				{Step: "0-rtl", Port: "files"},
				{Step: "1-tb", Port: "files"},
			},
		},
		Source: "steps/merge",
	}
	row := "| files |"

	want := []string{
		"    +     0-rtl",
		"    +     files",
		"    |    ",
		"    +     1-tb",
		"    +     files",
		"    |    ",
		"    V    ",
	}

	got := inputStack(s.Inputs, s, row)
	if len(got) != len(want) {
		t.Fatalf("inputStack() = %d lines, want %d:\n%s", len(got), len(want), strings.Join(got, "\n"))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestOutputStackConsumerOrdering(t *testing.T) {
	s := &step.Step{
		Name:    "4-split",
		Outputs: []string{"x"},
		EdgesO: map[string][]step.Reference{
			"x": {
				{Step: "6-bar", Port: "x"},
				{Step: "5-foo", Port: "x"},
			},
		},
		Source: "steps/split",
	}
	row := "| x |"

	want := []string{
		"  V  ",
		"  |   5-foo",
		"  |   x",
		"  +  ",
		"  |   6-bar",
		"  |   x",
	}

	got := outputStack(s.Outputs, s, row)
	if len(got) != len(want) {
		t.Fatalf("outputStack() = %d lines, want %d:\n%s", len(got), len(want), strings.Join(got, "\n"))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

// A later port's trunk flows through earlier ports' label lines; an earlier
// port's column goes blank once its labels are out.
func TestOutputStackTrunkReveal(t *testing.T) {
	s := &step.Step{
		Name:    "4-fan",
		Outputs: []string{"x", "z"},
		EdgesO: map[string][]step.Reference{
			"x": {{Step: "5-foo", Port: "x"}},
			"z": {{Step: "6-bar", Port: "z"}},
		},
		Source: "steps/fan",
	}
	row := "| x | z |"

	want := []string{
		"  V   |  ",
		"  |   |   5-foo",
		"  |   |   x",
		"      V  ",
		"      |   6-bar",
		"      |   z",
	}

	got := outputStack(s.Outputs, s, row)
	if len(got) != len(want) {
		t.Fatalf("outputStack() = %d lines, want %d:\n%s", len(got), len(want), strings.Join(got, "\n"))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestOutputStackLineCount(t *testing.T) {
	s := &step.Step{
		Name:    "4-split",
		Outputs: []string{"x"},
		EdgesO: map[string][]step.Reference{
			"x": {
				{Step: "5-a", Port: "x"},
				{Step: "6-b", Port: "x"},
				{Step: "7-c", Port: "x"},
			},
		},
		Source: "steps/split",
	}

	got := outputStack(s.Outputs, s, "| x |")
	if len(got) != 9 { // one marker line plus two labels per consumer
		t.Errorf("outputStack() = %d lines, want 9", len(got))
	}
}
