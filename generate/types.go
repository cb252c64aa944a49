package generate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/maze/core"
)

// Sentinel errors for generator entry points.
var (
	// ErrStartOutOfRange is returned when a generator's start cell lies
	// outside the requested grid.
	ErrStartOutOfRange = errors.New("generate: start position out of range")
)

// checkStart validates that start lies within a rows×cols grid.
func checkStart(g *core.Grid, start core.Position) error {
	if !g.Contains(start) {
		return fmt.Errorf("%w: %v", ErrStartOutOfRange, start)
	}
	return nil
}
