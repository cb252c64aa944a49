// Package generate provides six randomized maze-carving algorithms over a
// core.Grid: DFS (recursive backtracker), Binary Tree, Prim, Aldous–Broder,
// Wilson (loop-erased random walk), and Recursive Division.
//
// Every generator but BinaryTree and Division takes a start cell; every
// generator takes an injected *rand.Rand (nil falls back to a fixed
// deterministic seed, per defaultRNG) and an observer.Hook (nil falls back
// to observer.NoOp). Each, run to completion, leaves the grid's opened
// edges forming a spanning tree of the cell graph — connected and acyclic,
// exactly rows*cols-1 open edges — except Division, which achieves the
// same guarantee by removing a spanning tree of the wall graph from an
// initially all-open grid.
package generate
