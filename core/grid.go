package core

import "fmt"

// Grid is an R×C array of cells with one closed/open flag per interior
// edge, stored in a single flat slice: a horizontal-wall block followed by
// a vertical-wall block. A horizontal wall separates vertically adjacent
// cells (r,c) and (r+1,c); a vertical wall separates horizontally adjacent
// cells (r,c) and (r,c+1). The outer border is never stored — it is always
// closed.
//
// Prefer NewClosed or NewOpen to construct a Grid.
type Grid struct {
	rows, cols int
	walls      []bool // true = closed
	horizontal int     // count of horizontal-wall entries; vertical walls follow
}

// NewClosed returns a rows×cols Grid with every interior edge closed. This
// is the starting state for every generator except Division.
func NewClosed(rows, cols int) (*Grid, error) {
	return newGrid(rows, cols, true)
}

// NewOpen returns a rows×cols Grid with every interior edge open. Division
// carves by raising walls rather than lowering them, so it starts here.
func NewOpen(rows, cols int) (*Grid, error) {
	return newGrid(rows, cols, false)
}

func newGrid(rows, cols int, closed bool) (*Grid, error) {
	if rows < 2 || cols < 2 {
		return nil, fmt.Errorf("%w: rows=%d, cols=%d", ErrInvalidDimensions, rows, cols)
	}
	horizontal := (rows - 1) * cols
	vertical := rows * (cols - 1)
	walls := make([]bool, horizontal+vertical)
	if closed {
		for i := range walls {
			walls[i] = true
		}
	}
	return &Grid{rows: rows, cols: cols, walls: walls, horizontal: horizontal}, nil
}

// Rows returns the grid's row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid's column count.
func (g *Grid) Cols() int { return g.cols }

// Contains reports whether pos lies within the grid's bounds.
func (g *Grid) Contains(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.rows && pos.Col >= 0 && pos.Col < g.cols
}

// MoveIn returns the neighbor of pos in direction d and true, or the zero
// Position and false if that neighbor would lie outside the grid. It is
// pure coordinate arithmetic and does not consult wall state.
func (g *Grid) MoveIn(pos Position, d Direction) (Position, bool) {
	next := Position{Row: pos.Row + rowDelta[d], Col: pos.Col + colDelta[d]}
	if !g.Contains(next) {
		return Position{}, false
	}
	return next, true
}

// wallIndex returns the index into g.walls for the edge leaving pos in
// direction d, or ok=false if pos is at the border in that direction (the
// edge does not exist — the border is implicit and never stored).
func (g *Grid) wallIndex(pos Position, d Direction) (idx int, ok bool) {
	switch d {
	case Up:
		if pos.Row == 0 {
			return 0, false
		}
		return (pos.Row - 1) * g.cols + pos.Col, true
	case Down:
		if pos.Row == g.rows-1 {
			return 0, false
		}
		return pos.Row*g.cols + pos.Col, true
	case Left:
		if pos.Col == 0 {
			return 0, false
		}
		return g.horizontal + pos.Row*(g.cols-1) + pos.Col - 1, true
	case Right:
		if pos.Col == g.cols-1 {
			return 0, false
		}
		return g.horizontal + pos.Row*(g.cols-1) + pos.Col, true
	default:
		return 0, false
	}
}

// Wall reports whether the edge leaving pos in direction d is closed. ok is
// false when the edge does not exist (the neighbor in direction d is
// outside the grid); in that case the returned bool is meaningless.
func (g *Grid) Wall(pos Position, d Direction) (closed bool, ok bool) {
	if !g.Contains(pos) {
		return false, false
	}
	idx, ok := g.wallIndex(pos, d)
	if !ok {
		return false, false
	}
	return g.walls[idx], true
}

// SetWall sets the closed/open state of the edge leaving pos in direction
// d, and — by direction symmetry — of the matching edge leaving the
// neighbor back toward pos. Setting an edge that does not exist (the
// neighbor lies outside the grid) is a programming error and is reported
// via ErrNoSuchEdge rather than silently ignored.
func (g *Grid) SetWall(pos Position, d Direction, closed bool) error {
	if !g.Contains(pos) {
		return fmt.Errorf("%w: %v", ErrPositionOutOfRange, pos)
	}
	idx, ok := g.wallIndex(pos, d)
	if !ok {
		return fmt.Errorf("%w: %v has no %v edge", ErrNoSuchEdge, pos, d)
	}
	g.walls[idx] = closed
	return nil
}

// SetAbove, SetLeft, SetRight, and SetBelow are convenience wrappers over
// SetWall for the four faces of a cell.
func (g *Grid) SetAbove(pos Position, closed bool) error { return g.SetWall(pos, Up, closed) }
func (g *Grid) SetLeft(pos Position, closed bool) error  { return g.SetWall(pos, Left, closed) }
func (g *Grid) SetRight(pos Position, closed bool) error { return g.SetWall(pos, Right, closed) }
func (g *Grid) SetBelow(pos Position, closed bool) error { return g.SetWall(pos, Down, closed) }

// IsAbove, IsLeft, IsRight, and IsBelow are convenience wrappers over Wall
// for the four faces of a cell.
func (g *Grid) IsAbove(pos Position) (bool, bool) { return g.Wall(pos, Up) }
func (g *Grid) IsLeft(pos Position) (bool, bool)  { return g.Wall(pos, Left) }
func (g *Grid) IsRight(pos Position) (bool, bool) { return g.Wall(pos, Right) }
func (g *Grid) IsBelow(pos Position) (bool, bool) { return g.Wall(pos, Down) }

// PossibleMoves returns the neighbors of pos reachable through open edges,
// in Direction enumeration order (Up, Left, Right, Down).
func (g *Grid) PossibleMoves(pos Position) []Position {
	var moves []Position
	for _, d := range Directions {
		closed, ok := g.Wall(pos, d)
		if ok && !closed {
			next, _ := g.MoveIn(pos, d)
			moves = append(moves, next)
		}
	}
	return moves
}

// WallEdge names one closed edge leaving a cell: the cell it leaves (Pos)
// and the direction (Dir); the cell on the far side is MoveIn(Pos, Dir).
type WallEdge struct {
	Pos Position
	Dir Direction
}

// ClosedWallsAround returns the closed edges leaving pos, in Direction
// enumeration order, each as (pos, dir) so the neighbor can be recovered
// with MoveIn(pos, dir). This is the exact shape Prim's frontier needs.
func (g *Grid) ClosedWallsAround(pos Position) []WallEdge {
	var walls []WallEdge
	for _, d := range Directions {
		closed, ok := g.Wall(pos, d)
		if ok && closed {
			walls = append(walls, WallEdge{Pos: pos, Dir: d})
		}
	}
	return walls
}

// InGridNeighbors returns the directions leading to an in-grid neighbor of
// pos, in Direction enumeration order, without regard to wall state. It is
// the uniform-sampling base used by Aldous–Broder and Wilson, both of
// which step to a random in-grid neighbor regardless of whether the edge
// is currently open or closed.
func (g *Grid) InGridNeighbors(pos Position) []Direction {
	var dirs []Direction
	for _, d := range Directions {
		if _, ok := g.MoveIn(pos, d); ok {
			dirs = append(dirs, d)
		}
	}
	return dirs
}
