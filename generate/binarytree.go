package generate

import (
	"math/rand"

	"github.com/katalvlaran/maze/core"
	"github.com/katalvlaran/maze/observer"
)

// BinaryTree carves the top row leftward and the left column upward as the
// maze's two spines, then for every other cell flips an unbiased coin to
// open either its upward or its leftward edge. The result is a spanning
// tree with a strong diagonal bias; its structure is deterministic up to
// the coin flips.
func BinaryTree(rows, cols int, rng *rand.Rand, hook observer.Hook) (*core.Grid, error) {
	g, err := core.NewClosed(rows, cols)
	if err != nil {
		return nil, err
	}
	rng = defaultRNG(rng)
	hook = observer.Default(hook)
	hook.Initial(g)

	for c := 1; c < cols; c++ {
		pos := core.Position{Row: 0, Col: c}
		if err := g.SetWall(pos, core.Left, false); err != nil {
			return nil, err
		}
		hook.Step(g, pos, core.Left)
	}
	for r := 1; r < rows; r++ {
		pos := core.Position{Row: r, Col: 0}
		if err := g.SetWall(pos, core.Up, false); err != nil {
			return nil, err
		}
		hook.Step(g, pos, core.Up)
	}

	for r := 1; r < rows; r++ {
		for c := 1; c < cols; c++ {
			pos := core.Position{Row: r, Col: c}
			dir := core.Up
			if rng.Intn(2) == 1 {
				dir = core.Left
			}
			if err := g.SetWall(pos, dir, false); err != nil {
				return nil, err
			}
			hook.Step(g, pos, dir)
		}
	}
	return g, nil
}
