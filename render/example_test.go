package render_test

import (
	"fmt"

	"github.com/katalvlaran/maze/core"
	"github.com/katalvlaran/maze/render"
)

// ExampleFull draws a 2x2 grid with no walls opened, as every grid from
// NewClosed starts: every interior wall is drawn.
func ExampleFull() {
	g, err := core.NewClosed(2, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(render.Full(g))
	// Output:
	// ┌┬┐
	// ├┼┤
	// └┴┘
}
