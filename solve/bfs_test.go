package solve_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/maze/core"
	"github.com/katalvlaran/maze/generate"
	"github.com/katalvlaran/maze/solve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestShortestPath_S5_HandBuiltMaze reproduces scenario S5: a hand-built
// 5x5 maze carved by a literal sequence of SetWall calls, whose solution
// from (0,0) to (4,4) is the exact 8-element direction sequence spec.md
// names.
func TestShortestPath_S5_HandBuiltMaze(t *testing.T) {
	g, err := core.NewClosed(5, 5)
	require.NoError(t, err)

	type opening struct {
		row, col int
		dir      core.Direction
	}
	openings := []opening{
		{0, 0, core.Down},
		{1, 0, core.Right},
		{1, 1, core.Right},
		{1, 2, core.Down},
		{2, 2, core.Down},
		{3, 2, core.Right},
		{3, 3, core.Down},
		{4, 3, core.Right},
	}
	for _, o := range openings {
		require.NoError(t, g.SetWall(core.Position{Row: o.row, Col: o.col}, o.dir, false))
	}

	path, ok, err := solve.ShortestPath(g, core.Position{Row: 0, Col: 0}, core.Position{Row: 4, Col: 4})
	require.NoError(t, err)
	require.True(t, ok)

	want := []core.Direction{
		core.Down, core.Right, core.Right, core.Down,
		core.Down, core.Right, core.Down, core.Right,
	}
	assert.Equal(t, want, path)
}

// TestShortestPath_Identity covers Testable Property 6.
func TestShortestPath_Identity(t *testing.T) {
	g, err := core.NewClosed(3, 3)
	require.NoError(t, err)
	pos := core.Position{Row: 1, Col: 1}

	path, ok, err := solve.ShortestPath(g, pos, pos)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []core.Direction{}, path)
}

// TestShortestPath_NoPath covers a disconnected grid: every wall closed,
// distinct endpoints, BFS exhausts its queue without reaching "to".
func TestShortestPath_NoPath(t *testing.T) {
	g, err := core.NewClosed(3, 3)
	require.NoError(t, err)

	path, ok, err := solve.ShortestPath(g, core.Position{Row: 0, Col: 0}, core.Position{Row: 2, Col: 2})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, path)
}

func TestShortestPath_RejectsOutOfRangeEndpoints(t *testing.T) {
	g, err := core.NewClosed(3, 3)
	require.NoError(t, err)

	_, _, err = solve.ShortestPath(g, core.Position{Row: -1, Col: 0}, core.Position{Row: 1, Col: 1})
	assert.ErrorIs(t, err, solve.ErrPositionOutOfRange)

	_, _, err = solve.ShortestPath(g, core.Position{Row: 0, Col: 0}, core.Position{Row: 9, Col: 9})
	assert.ErrorIs(t, err, solve.ErrPositionOutOfRange)
}

// TestShortestPath_ValidOnGeneratedMazes covers Testable Properties 4 and
// 5 on one DFS spanning-tree maze: the path from (0,0) to (5,5) exists,
// uses only open edges, and ends at (5,5).
func TestShortestPath_ValidOnGeneratedMazes(t *testing.T) {
	g, err := generate.DFS(6, 6, core.Position{Row: 0, Col: 0}, rand.New(rand.NewSource(3)), nil)
	require.NoError(t, err)

	from := core.Position{Row: 0, Col: 0}
	to := core.Position{Row: 5, Col: 5}
	path, ok, err := solve.ShortestPath(g, from, to)
	require.NoError(t, err)
	require.True(t, ok)

	cur := from
	for _, d := range path {
		next, inGrid := g.MoveIn(cur, d)
		require.True(t, inGrid)
		closed, edgeOK := g.Wall(cur, d)
		require.True(t, edgeOK)
		require.False(t, closed, "path must use only open edges")
		cur = next
	}
	assert.Equal(t, to, cur)
}

// TestShortestPath_2x2_FixedSeed covers scenario S2's solver half: a 2x2
// DFS maze always connects its two diagonal cells with a length-2 path.
func TestShortestPath_2x2_FixedSeed(t *testing.T) {
	g, err := generate.DFS(2, 2, core.Position{}, rand.New(rand.NewSource(0)), nil)
	require.NoError(t, err)

	path, ok, err := solve.ShortestPath(g, core.Position{Row: 0, Col: 0}, core.Position{Row: 1, Col: 1})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, path, 2)

	selfPath, ok, err := solve.ShortestPath(g, core.Position{Row: 0, Col: 0}, core.Position{Row: 0, Col: 0})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, selfPath)
}
