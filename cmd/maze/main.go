// Command maze generates a random maze, prints it as box-drawing art, and
// reports the shortest path from its top-left to its bottom-right corner.
//
// Usage:
//
//	maze -rows 10 -cols 10 -seed 42 -algo prim
//
// This is a reference driver for the generate, solve, and render
// packages. It owns no maze logic of its own: everything it prints comes
// from calling those packages in sequence.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/katalvlaran/maze/core"
	"github.com/katalvlaran/maze/generate"
	"github.com/katalvlaran/maze/render"
	"github.com/katalvlaran/maze/solve"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "maze:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("maze", flag.ContinueOnError)
	rows := fs.Int("rows", 10, "number of rows")
	cols := fs.Int("cols", 10, "number of columns")
	startRow := fs.Int("start-row", 0, "row to start generation from (dfs, prim, ab, wilson)")
	startCol := fs.Int("start-col", 0, "column to start generation from (dfs, prim, ab, wilson)")
	seed := fs.Int64("seed", 0, "PRNG seed; 0 picks a time-derived seed")
	algo := fs.String("algo", "dfs", "generation algorithm: dfs, tree, prim, ab, wilson, div")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))
	start := core.Position{Row: *startRow, Col: *startCol}

	g, err := generateMaze(*algo, *rows, *cols, start, rng)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, render.Full(g))

	from := core.Position{Row: 0, Col: 0}
	to := core.Position{Row: *rows - 1, Col: *cols - 1}
	path, ok, err := solve.ShortestPath(g, from, to)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "No path through maze")
		return nil
	}

	fmt.Fprint(out, "Path: ")
	for _, d := range path {
		fmt.Fprint(out, d)
	}
	fmt.Fprintln(out)
	return nil
}

func generateMaze(algo string, rows, cols int, start core.Position, rng *rand.Rand) (*core.Grid, error) {
	switch algo {
	case "dfs":
		return generate.DFS(rows, cols, start, rng, nil)
	case "tree":
		return generate.BinaryTree(rows, cols, rng, nil)
	case "prim":
		return generate.Prim(rows, cols, start, rng, nil)
	case "ab":
		return generate.AldousBroder(rows, cols, start, rng, nil)
	case "wilson":
		return generate.Wilson(rows, cols, start, rng, nil)
	case "div":
		return generate.Division(rows, cols, rng, nil)
	default:
		return nil, fmt.Errorf("maze: unknown algorithm %q", algo)
	}
}
