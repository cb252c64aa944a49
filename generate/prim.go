package generate

import (
	"math/rand"

	"github.com/katalvlaran/maze/core"
	"github.com/katalvlaran/maze/observer"
)

// Prim carves a maze with randomized Prim's algorithm: a visited set
// seeded with start and a frontier multiset of (cell, direction) pairs
// naming closed edges adjacent to the visited region. Each step samples
// the frontier uniformly, removes that entry, and — if its far side is
// still unvisited — opens the edge and grows the frontier from the newly
// visited cell. The frontier is never deduplicated: duplicate entries are
// part of the algorithm's prescribed edge-weight distribution.
func Prim(rows, cols int, start core.Position, rng *rand.Rand, hook observer.Hook) (*core.Grid, error) {
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
	var frontier []core.WallEdge
	frontier = append(frontier, g.ClosedWallsAround(start)...)

	for len(frontier) > 0 {
		i := rng.Intn(len(frontier))
		edge := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		to, ok := g.MoveIn(edge.Pos, edge.Dir)
		if !ok || visited[to] {
			continue
		}
		if err := g.SetWall(edge.Pos, edge.Dir, false); err != nil {
			return nil, err
		}
		visited[to] = true
		hook.Step(g, edge.Pos, edge.Dir)
		frontier = append(frontier, g.ClosedWallsAround(to)...)
	}
	return g, nil
}
