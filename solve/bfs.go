package solve

import (
	"fmt"

	"github.com/katalvlaran/maze/core"
)

// ShortestPath returns the sequence of Directions describing a shortest
// walk from "from" to "to" over g's open edges, in walk order. If from
// equals to, it returns an empty, non-nil sequence. If no path exists —
// the grid is disconnected under its current wall state — it returns
// (nil, false, nil): a legitimate result, not an error.
func ShortestPath(g *core.Grid, from, to core.Position) ([]core.Direction, bool, error) {
	if !g.Contains(from) {
		return nil, false, fmt.Errorf("%w: from=%v", ErrPositionOutOfRange, from)
	}
	if !g.Contains(to) {
		return nil, false, fmt.Errorf("%w: to=%v", ErrPositionOutOfRange, to)
	}
	if from == to {
		return []core.Direction{}, true, nil
	}

	w := &walker{
		grid:   g,
		queue:  []core.Position{from},
		parent: map[core.Position]core.Position{from: from},
	}
	if !w.run(to) {
		return nil, false, nil
	}
	return w.reconstruct(from, to), true, nil
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid   *core.Grid
	queue  []core.Position
	parent map[core.Position]core.Position
}

// run expands the queue breadth-first until to is reached or the queue
// empties. It returns whether to was reached.
func (w *walker) run(to core.Position) bool {
	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]

		for _, next := range w.grid.PossibleMoves(cur) {
			if _, seen := w.parent[next]; seen {
				continue
			}
			w.parent[next] = cur
			if next == to {
				return true
			}
			w.queue = append(w.queue, next)
		}
	}
	return false
}

// reconstruct walks the parent map back from to to from, then reverses it
// into walk order and translates each predecessor→successor hop into a
// Direction.
func (w *walker) reconstruct(from, to core.Position) []core.Direction {
	positions := []core.Position{to}
	for cur := to; cur != from; {
		cur = w.parent[cur]
		positions = append(positions, cur)
	}
	for i, j := 0, len(positions)-1; i < j; i, j = i+1, j-1 {
		positions[i], positions[j] = positions[j], positions[i]
	}

	dirs := make([]core.Direction, 0, len(positions)-1)
	for i := 0; i < len(positions)-1; i++ {
		dirs = append(dirs, stepDirection(positions[i], positions[i+1]))
	}
	return dirs
}

// stepDirection translates the hop from a predecessor to its successor
// into the Direction that was taken, using spec's sign convention:
// Δrow = from.Row-to.Row (+1⇒Up, -1⇒Down); Δcol = from.Col-to.Col
// (+1⇒Left, -1⇒Right).
func stepDirection(from, to core.Position) core.Direction {
	switch {
	case from.Row-to.Row == 1:
		return core.Up
	case from.Row-to.Row == -1:
		return core.Down
	case from.Col-to.Col == 1:
		return core.Left
	case from.Col-to.Col == -1:
		return core.Right
	default:
		panic(fmt.Sprintf("solve: %v and %v are not adjacent", from, to))
	}
}
