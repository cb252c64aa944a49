package generate

import (
	"math/rand"

	"github.com/katalvlaran/maze/core"
	"github.com/katalvlaran/maze/observer"
)

// Wilson carves a maze with loop-erased random walks: start is the seed of
// the in-tree set. While cells remain outside it, pick one at random and
// perform a random walk, opening each new edge and recording it, until the
// walk first enters the tree. Whenever the walk would revisit a cell
// already on its current path, the loop it just closed is erased — each
// edge from the revisited cell's position in the path onward is re-closed,
// in reverse order, and the observer is notified of the re-closure exactly
// as it was of the original opening. Once the walk reaches the tree, every
// surviving cell on its path joins it. Like Aldous–Broder, this produces a
// uniform spanning tree, usually in far fewer steps.
func Wilson(rows, cols int, start core.Position, rng *rand.Rand, hook observer.Hook) (*core.Grid, error) {
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

	inTree := map[core.Position]bool{start: true}
	var unvisited []core.Position
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos := core.Position{Row: r, Col: c}
			if pos != start {
				unvisited = append(unvisited, pos)
			}
		}
	}

	for len(unvisited) > 0 {
		walkStart := unvisited[rng.Intn(len(unvisited))]
		path, err := loopErasedWalk(g, walkStart, inTree, rng, hook)
		if err != nil {
			return nil, err
		}
		for _, pos := range path {
			inTree[pos] = true
		}
		unvisited = removeVisited(unvisited, inTree)
	}
	return g, nil
}

// loopErasedWalk performs a single loop-erased random walk from start
// until it first enters inTree, opening and, on loop closure, re-closing
// edges along the way. It returns the final, loop-free path of cells from
// start to the tree it joined (inclusive of both ends).
func loopErasedWalk(g *core.Grid, start core.Position, inTree map[core.Position]bool, rng *rand.Rand, hook observer.Hook) ([]core.Position, error) {
	path := []core.Position{start}
	edges := []core.Direction{}       // edges[i] connects path[i] to path[i+1]
	index := map[core.Position]int{start: 0}

	pos := start
	for !inTree[pos] {
		dirs := g.InGridNeighbors(pos)
		dir := dirs[rng.Intn(len(dirs))]
		next, _ := g.MoveIn(pos, dir)

		if k, onPath := index[next]; onPath {
			// Erase the loop just closed: re-close edges[k:] in reverse.
			for i := len(edges) - 1; i >= k; i-- {
				if err := g.SetWall(path[i], edges[i], true); err != nil {
					return nil, err
				}
				hook.Step(g, path[i], edges[i])
				delete(index, path[i+1])
			}
			path = path[:k+1]
			edges = edges[:k]
			pos = next
			continue
		}

		if err := g.SetWall(pos, dir, false); err != nil {
			return nil, err
		}
		hook.Step(g, pos, dir)
		path = append(path, next)
		edges = append(edges, dir)
		index[next] = len(path) - 1
		pos = next
	}
	return path, nil
}

// removeVisited filters positions down to those still absent from inTree,
// preserving relative order.
func removeVisited(positions []core.Position, inTree map[core.Position]bool) []core.Position {
	out := positions[:0]
	for _, p := range positions {
		if !inTree[p] {
			out = append(out, p)
		}
	}
	return out
}
