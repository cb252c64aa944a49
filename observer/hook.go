package observer

import "github.com/katalvlaran/maze/core"

// Hook receives notifications as a generator mutates a Grid.
//
// Initial is invoked once after construction, before any mutation. Step is
// invoked after each mutation: once per opened edge for every carving
// generator, once per re-closed edge during Wilson's loop erasure, and
// once per wall segment drawn by Recursive Division. Implementations
// receive read-only access to the grid — they must not call any of its
// mutating methods.
type Hook interface {
	Initial(g *core.Grid)
	Step(g *core.Grid, pos core.Position, dir core.Direction)
}

// NoOp is a Hook whose callbacks do nothing. It decouples callers that
// don't care about generation progress from the Hook interface.
type NoOp struct{}

// Initial implements Hook.
func (NoOp) Initial(*core.Grid) {}

// Step implements Hook.
func (NoOp) Step(*core.Grid, core.Position, core.Direction) {}

// Default returns h, or NoOp{} if h is nil. Every generator entry point
// calls this so callers may pass a nil Hook.
func Default(h Hook) Hook {
	if h == nil {
		return NoOp{}
	}
	return h
}
