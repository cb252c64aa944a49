// Package core defines the wall-adjacency grid that every maze generator,
// solver, and renderer in this module builds on.
//
// A Grid is an R×C array of cells with one closed/open flag per interior
// edge (the boundary between two orthogonally adjacent cells), stored in a
// single flat slice rather than a per-cell adjacency structure. The outer
// border is implicit and always closed; it is never stored.
//
// The package declares Direction, Position, Grid, the sentinel errors, and
// the two constructors (NewClosed, NewOpen).
package core
