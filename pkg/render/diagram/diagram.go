package diagram

import (
	"strings"

	"github.com/allpan3/mflowgen/pkg/step"
)

// Options controls diagram rendering.
type Options struct {
	// Simple replaces the per-edge connector stacks with two generic rows
	// per side (a pipe row and an arrow row), ignoring edge contents.
	Simple bool
}

// Render draws the step as an ASCII diagram: the input connector stack, a
// bordered box listing input ports, step name, and output ports, and the
// output connector stack. The returned string ends with a newline.
func Render(s *step.Step, opts Options) string {
	inRow := portRow(s.Inputs)
	outRow := portRow(s.Outputs)
	nameRow := portRow([]string{s.Name})

	width := rowWidth(inRow, outRow, nameRow)
	inRow = recenter(inRow, width)
	outRow = recenter(outRow, width)
	nameRow = recenter(nameRow, width)

	border := strings.Repeat("-", width)
	padding := "|" + strings.Repeat(" ", width-2) + "|"

	var lines []string
	if opts.Simple {
		arrow := arrowify(inRow)
		lines = append(lines, pipeRow(arrow), arrow)
	} else {
		lines = append(lines, inputStack(s.Inputs, s, inRow)...)
	}

	lines = append(lines,
		border,
		inRow,
		border,
		padding,
		nameRow,
		padding,
		border,
		outRow,
		border,
	)

	if opts.Simple {
		arrow := arrowify(outRow)
		lines = append(lines, pipeRow(arrow), arrow)
	} else {
		lines = append(lines, outputStack(s.Outputs, s, outRow)...)
	}

	return strings.Join(lines, "\n") + "\n"
}

// pipeRow converts an arrow row into its matching vertical-trunk row.
func pipeRow(arrow string) string {
	return strings.ReplaceAll(arrow, string(marker), "|")
}
