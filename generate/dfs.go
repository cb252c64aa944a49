package generate

import (
	"math/rand"

	"github.com/katalvlaran/maze/core"
	"github.com/katalvlaran/maze/observer"
)

// DFS carves a maze with the recursive-backtracker algorithm: an explicit
// stack seeded with start, always branching from the stack's top cell into
// a uniformly random unvisited neighbor, and popping only when a cell has
// no unvisited neighbors left. The result is a uniform spanning tree with
// long corridors; every cell is visited exactly once.
func DFS(rows, cols int, start core.Position, rng *rand.Rand, hook observer.Hook) (*core.Grid, error) {
	g, err := core.NewClosed(rows, cols)
	if err != nil {
		return nil, err
	}
	if err := checkStart(g, start); err != nil {
		return nil, err
	}
	rng = defaultRNG(rng)
	hook = observer.Default(hook)
	hook.Initial(g)

	visited := map[core.Position]bool{start: true}
	stack := []core.Position{start}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		candidates := unvisitedNeighbors(g, top, visited)
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		pick := candidates[rng.Intn(len(candidates))]
		if err := g.SetWall(top, pick.dir, false); err != nil {
			return nil, err
		}
		visited[pick.pos] = true
		hook.Step(g, top, pick.dir)
		stack = append(stack, pick.pos)
	}
	return g, nil
}

// neighborChoice pairs a candidate neighbor position with the direction
// from the cell under consideration that reaches it.
type neighborChoice struct {
	pos core.Position
	dir core.Direction
}

// unvisitedNeighbors returns the in-grid neighbors of pos not yet in
// visited, in Direction enumeration order, regardless of current wall
// state.
func unvisitedNeighbors(g *core.Grid, pos core.Position, visited map[core.Position]bool) []neighborChoice {
	var out []neighborChoice
	for _, d := range g.InGridNeighbors(pos) {
		next, _ := g.MoveIn(pos, d)
		if !visited[next] {
			out = append(out, neighborChoice{pos: next, dir: d})
		}
	}
	return out
}
