package generate

import (
	"math/rand"

	"github.com/katalvlaran/maze/core"
	"github.com/katalvlaran/maze/observer"
)

// AldousBroder carves a maze by an unbiased random walk: from current,
// step to a uniformly random in-grid neighbor; if that neighbor is unseen,
// open the wall between them. Either way the walk continues from the
// neighbor, until every cell has been visited. This produces a uniform
// spanning tree — every perfect maze on the grid is equally likely — at
// the cost of a super-quadratic expected running time in cell count.
//
// Sampling always advances from current to a random neighbor; it must
// never sample the visited set directly (an earlier, incorrect revision
// did exactly that and is not reproduced here — see spec's Open Questions).
func AldousBroder(rows, cols int, start core.Position, rng *rand.Rand, hook observer.Hook) (*core.Grid, error) {
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

	total := rows * cols
	visited := map[core.Position]bool{start: true}
	current := start

	for len(visited) < total {
		dirs := g.InGridNeighbors(current)
		dir := dirs[rng.Intn(len(dirs))]
		next, _ := g.MoveIn(current, dir)
		if !visited[next] {
			if err := g.SetWall(current, dir, false); err != nil {
				return nil, err
			}
			visited[next] = true
			hook.Step(g, current, dir)
		}
		current = next
	}
	return g, nil
}
