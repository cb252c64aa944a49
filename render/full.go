package render

import (
	"strings"

	"github.com/katalvlaran/maze/core"
)

// Full renders g as rows+1 lines of cols+1 box-drawing glyphs, one per
// wall junction, separated by newlines (no trailing newline). Border
// junctions always carry their outer-border bits — the border is
// implicit in a Grid and always closed — while interior junctions reflect
// the grid's live wall state.
func Full(g *core.Grid) string {
	rows, cols := g.Rows(), g.Cols()
	var b strings.Builder
	b.Grow((rows + 1) * (cols + 2))

	for r := 0; r <= rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c <= cols; c++ {
			b.WriteRune(junctionAt(g, r, c).Glyph())
		}
	}
	return b.String()
}

// junctionAt computes the 4-bit mask for the wall junction at grid-line
// (r, c), 0 <= r <= g.Rows(), 0 <= c <= g.Cols(), per spec.md §4.5: each
// bit reflects one of the (up to) four wall segments meeting there, with
// border segments always closed and segments off the edge of the grid
// entirely absent.
func junctionAt(g *core.Grid, r, c int) Junction {
	rows, cols := g.Rows(), g.Cols()

	var mask Junction
	if r > 0 {
		if c == 0 || c == cols {
			mask |= JunctionUp
		} else if closed, _ := g.Wall(core.Position{Row: r - 1, Col: c - 1}, core.Right); closed {
			mask |= JunctionUp
		}
	}
	if r < rows {
		if c == 0 || c == cols {
			mask |= JunctionDown
		} else if closed, _ := g.Wall(core.Position{Row: r, Col: c - 1}, core.Right); closed {
			mask |= JunctionDown
		}
	}
	if c > 0 {
		if r == 0 || r == rows {
			mask |= JunctionLeft
		} else if closed, _ := g.Wall(core.Position{Row: r - 1, Col: c - 1}, core.Down); closed {
			mask |= JunctionLeft
		}
	}
	if c < cols {
		if r == 0 || r == rows {
			mask |= JunctionRight
		} else if closed, _ := g.Wall(core.Position{Row: r - 1, Col: c}, core.Down); closed {
			mask |= JunctionRight
		}
	}
	return mask
}
