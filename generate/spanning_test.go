package generate_test

import (
	"testing"

	"github.com/katalvlaran/maze/core"
)

// assertSpanningTree covers Testable Property 3: the open-edge graph is
// connected and acyclic, with exactly rows*cols-1 open edges.
func assertSpanningTree(t *testing.T, g *core.Grid) {
	t.Helper()

	rows, cols := g.Rows(), g.Cols()
	total := rows * cols

	openEdges := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos := core.Position{Row: r, Col: c}
			if closed, ok := g.Wall(pos, core.Right); ok && !closed {
				openEdges++
			}
			if closed, ok := g.Wall(pos, core.Down); ok && !closed {
				openEdges++
			}
		}
	}
	if openEdges != total-1 {
		t.Fatalf("open edges = %d, want %d (rows=%d cols=%d)", openEdges, total-1, rows, cols)
	}

	visited := make(map[core.Position]bool, total)
	start := core.Position{Row: 0, Col: 0}
	stack := []core.Position{start}
	visited[start] = true
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range g.PossibleMoves(cur) {
			if !visited[next] {
				visited[next] = true
				stack = append(stack, next)
			}
		}
	}
	if len(visited) != total {
		t.Fatalf("reached %d of %d cells; maze is disconnected", len(visited), total)
	}
}

// hookFunc adapts plain functions to observer.Hook for tests.
type hookFunc struct {
	initial func(g *core.Grid)
	step    func(g *core.Grid, pos core.Position, dir core.Direction)
}

func (h *hookFunc) Initial(g *core.Grid) { h.initial(g) }
func (h *hookFunc) Step(g *core.Grid, pos core.Position, dir core.Direction) {
	h.step(g, pos, dir)
}
