package render

import "github.com/katalvlaran/maze/core"

// JunctionUpdate is one glyph change produced by Incremental: the grid-line
// junction at (Row, Col) now renders as Glyph. RowsUp and ColsRight are the
// cursor movement a driver must apply, relative to the grid's bottom-left
// anchor (the junction at the last rendered line, column 0), to place Glyph
// — per spec.md §4.6, Incremental never performs terminal I/O itself.
type JunctionUpdate struct {
	Row, Col          int
	Glyph             rune
	RowsUp, ColsRight int
}

// Incremental reports the junction glyphs that change when the wall
// between pos and the cell in direction dir is opened or closed, without
// recomputing the rest of the render. A single edge mutation touches
// exactly two junctions: the two ends of the wall segment that moved.
//
// An animated driver can call Full once to draw the initial frame, then
// call Incremental after every SetWall to redraw only the affected glyphs
// in place rather than reprinting the whole grid.
func Incremental(g *core.Grid, pos core.Position, dir core.Direction) []JunctionUpdate {
	r0, c0, r1, c1 := segmentEndpoints(pos, dir)
	bottom := g.Rows()

	return []JunctionUpdate{
		junctionUpdate(g, r0, c0, bottom),
		junctionUpdate(g, r1, c1, bottom),
	}
}

// junctionUpdate builds the JunctionUpdate for grid-line junction (r, c),
// deriving its cursor offset from the grid's bottom row.
func junctionUpdate(g *core.Grid, r, c, bottom int) JunctionUpdate {
	return JunctionUpdate{
		Row:       r,
		Col:       c,
		Glyph:     junctionAt(g, r, c).Glyph(),
		RowsUp:    bottom - r,
		ColsRight: c,
	}
}

// segmentEndpoints returns the two grid-line junctions bounding the wall
// segment between pos and its neighbor in direction dir, in the same
// (row, col) coordinate space Full uses: 0 <= row <= g.Rows(),
// 0 <= col <= g.Cols().
//
// A wall between (pos.Row, pos.Col) and its Right neighbor is the vertical
// segment running from junction (pos.Row, pos.Col+1) down to junction
// (pos.Row+1, pos.Col+1). A wall between pos and its Down neighbor is the
// horizontal segment from (pos.Row+1, pos.Col) to (pos.Row+1, pos.Col+1).
// Up and Left mirror Down and Right from the neighbor's side.
func segmentEndpoints(pos core.Position, dir core.Direction) (r0, c0, r1, c1 int) {
	switch dir {
	case core.Right:
		return pos.Row, pos.Col + 1, pos.Row + 1, pos.Col + 1
	case core.Left:
		return pos.Row, pos.Col, pos.Row + 1, pos.Col
	case core.Down:
		return pos.Row + 1, pos.Col, pos.Row + 1, pos.Col + 1
	case core.Up:
		return pos.Row, pos.Col, pos.Row, pos.Col + 1
	default:
		return pos.Row, pos.Col, pos.Row, pos.Col
	}
}
