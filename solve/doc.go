// Package solve finds the shortest path between two cells of a
// core.Grid by breadth-first search over its open-edge graph.
//
// Because BFS expands each cell's neighbors in Direction enumeration
// order (Up, Left, Right, Down), ties between equal-length paths are
// broken deterministically — a fixed Grid and pair of endpoints always
// produce the same path.
package solve
