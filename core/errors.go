package core

import "errors"

// Sentinel errors for grid construction and edge access.
var (
	// ErrInvalidDimensions indicates rows or columns below the minimum of 2.
	ErrInvalidDimensions = errors.New("core: rows and columns must each be >= 2")

	// ErrPositionOutOfRange indicates a Position outside the grid's bounds.
	ErrPositionOutOfRange = errors.New("core: position out of range")

	// ErrNoSuchEdge indicates a direction that has no edge from the given
	// position — the neighbor in that direction lies outside the grid.
	ErrNoSuchEdge = errors.New("core: no edge in that direction")
)
