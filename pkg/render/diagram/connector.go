package diagram

import (
	"github.com/allpan3/mflowgen/pkg/step"
)

// columns is the indexable buffer of connector column states used while
// revealing a side's trunks. Each declared port owns one column at a fixed
// character position; lines are rendered by stamping one glyph per port
// into a blank row. Mutating states by port index keeps every trunk's
// column position stable no matter how many other ports carry edges.
type columns struct {
	width int    // rendered line length
	cols  []int  // character position per port
	state []byte // current glyph per port; ' ' renders as blank
}

// newColumns builds the column buffer for a centered header row.
// The port count must match the number of non-blank fields in the row.
func newColumns(row string) *columns {
	cols := markerColumns(row)
	return &columns{
		width: len(row),
		cols:  cols,
		state: make([]byte, len(cols)),
	}
}

// set assigns the glyph for one port's column.
func (c *columns) set(port int, glyph byte) {
	c.state[port] = glyph
}

// line renders the current column states into a fixed-width row.
func (c *columns) line() string {
	buf := make([]byte, c.width)
	for i := range buf {
		buf[i] = ' '
	}
	for j, glyph := range c.state {
		if glyph != 0 && glyph != ' ' {
			buf[c.cols[j]] = glyph
		}
	}
	return string(buf)
}

// inputStack renders the connector lines drawn above the box, one labeled
// pair per producer edge, in declared port order.
//
// Ports with at least one producer hold an 'x' placeholder in the baseline
// existence row. As ports are revealed left to right, the current port's
// column becomes a '+' junction carrying the producer's step and port
// labels, previously revealed ports continue as '|' trunks, and ports not
// yet revealed keep their placeholder. The final row converts every
// placeholder to a directional marker and is always present.
//
// A side with no declared ports renders nothing.
func inputStack(ports []string, s *step.Step, row string) []string {
	if len(ports) == 0 {
		return nil
	}

	c := newColumns(row)
	exists := make([]bool, len(ports))
	for j, port := range ports {
		exists[j] = len(s.Producers(port)) > 0
	}

	// Baseline existence row: one placeholder per connected port.
	base := func() {
		for j := range ports {
			if exists[j] {
				c.set(j, 'x')
			} else {
				c.set(j, ' ')
			}
		}
	}

	var lines []string
	for j, port := range ports {
		refs := s.Producers(port)
		if len(refs) == 0 {
			continue
		}

		base()
		for k := 0; k < j; k++ {
			if exists[k] {
				c.set(k, '|')
			}
		}
		c.set(j, '+')
		junction := c.line()
		c.set(j, '|')
		continuation := c.line()

		for _, ref := range refs {
			lines = append(lines,
				junction+" "+ref.Step,
				junction+" "+ref.Port,
				continuation)
		}
	}

	base()
	for j := range ports {
		if exists[j] {
			c.set(j, marker)
		}
	}
	lines = append(lines, c.line())
	return lines
}

// outputStack renders the connector lines drawn below the box, visiting
// ports in declared order even though trunks drain from the box downward.
//
// For each connected port the consumers are ordered ascending by the
// numeric prefix of their step identifier (original order on ties). The
// first consumer gets a down-pointing arrow line, each subsequent consumer
// a plain '+' junction line, and every consumer two label lines carried on
// a '|' trunk. Columns of ports already revealed go blank below their last
// label; columns still waiting keep a '|' trunk flowing down from the box.
//
// A side with no declared ports renders nothing.
func outputStack(ports []string, s *step.Step, row string) []string {
	if len(ports) == 0 {
		return nil
	}

	c := newColumns(row)
	exists := make([]bool, len(ports))
	for j, port := range ports {
		exists[j] = len(s.Consumers(port)) > 0
	}

	var lines []string
	for j, port := range ports {
		refs := s.Consumers(port)
		if len(refs) == 0 {
			continue
		}

		for k := range ports {
			switch {
			case k < j || !exists[k]:
				c.set(k, ' ')
			default:
				c.set(k, '|')
			}
		}

		for i, ref := range step.SortRefs(refs) {
			if i == 0 {
				c.set(j, marker)
			} else {
				c.set(j, '+')
			}
			lines = append(lines, c.line())

			c.set(j, '|')
			trunk := c.line()
			lines = append(lines, trunk+" "+ref.Step, trunk+" "+ref.Port)
		}
	}
	return lines
}
