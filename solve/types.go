package solve

import "errors"

// ErrPositionOutOfRange is returned when either endpoint passed to
// ShortestPath lies outside the grid.
var ErrPositionOutOfRange = errors.New("solve: position out of range")
