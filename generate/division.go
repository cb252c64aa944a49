package generate

import (
	"math/rand"

	"github.com/katalvlaran/maze/core"
	"github.com/katalvlaran/maze/observer"
)

// Division carves a maze by recursive division: starting from an
// all-open grid, it repeatedly splits the current rectangle with a wall
// along a random row or column, leaving exactly one random passage cell
// open, then recurses into the two halves. Orientation is chosen by the
// rectangle's aspect ratio (a taller rectangle gets a horizontal cut, a
// wider one a vertical cut; a square breaks the tie with a coin flip),
// since spec.md leaves the exact tie-break policy open. The result is a
// perfect maze with long straight walls.
func Division(rows, cols int, rng *rand.Rand, hook observer.Hook) (*core.Grid, error) {
	g, err := core.NewOpen(rows, cols)
	if err != nil {
		return nil, err
	}
	rng = defaultRNG(rng)
	hook = observer.Default(hook)
	hook.Initial(g)

	var divideErr error
	var divide func(r0, c0, r1, c1 int)
	divide = func(r0, c0, r1, c1 int) {
		if divideErr != nil {
			return
		}
		height := r1 - r0 + 1
		width := c1 - c0 + 1
		if height < 2 || width < 2 {
			return
		}

		if chooseHorizontal(height, width, rng) {
			wallRow := r0 + rng.Intn(height-1)
			passage := c0 + rng.Intn(width)
			for c := c0; c <= c1; c++ {
				if c == passage {
					continue
				}
				pos := core.Position{Row: wallRow, Col: c}
				if err := g.SetWall(pos, core.Down, true); err != nil {
					divideErr = err
					return
				}
				hook.Step(g, pos, core.Down)
			}
			divide(r0, c0, wallRow, c1)
			divide(wallRow+1, c0, r1, c1)
		} else {
			wallCol := c0 + rng.Intn(width-1)
			passage := r0 + rng.Intn(height)
			for r := r0; r <= r1; r++ {
				if r == passage {
					continue
				}
				pos := core.Position{Row: r, Col: wallCol}
				if err := g.SetWall(pos, core.Right, true); err != nil {
					divideErr = err
					return
				}
				hook.Step(g, pos, core.Right)
			}
			divide(r0, c0, r1, wallCol)
			divide(r0, wallCol+1, r1, c1)
		}
	}

	divide(0, 0, rows-1, cols-1)
	if divideErr != nil {
		return nil, divideErr
	}
	return g, nil
}

// chooseHorizontal decides whether a height×width rectangle is split with
// a horizontal wall (true) or a vertical one (false): taller rectangles
// split horizontally, wider ones split vertically, and squares flip a
// coin.
func chooseHorizontal(height, width int, rng *rand.Rand) bool {
	switch {
	case width < height:
		return true
	case height < width:
		return false
	default:
		return rng.Intn(2) == 0
	}
}
