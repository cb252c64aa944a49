// Package render draws a core.Grid as Unicode box-drawing art.
//
// Full renders the entire grid as rows+1 lines of cols+1 glyphs, one per
// wall junction. Incremental recomputes only the two junction glyphs that
// change when a single edge is mutated, for an animated driver that wants
// to redraw in place rather than reprint the whole grid on every step.
//
// Both renderers are pure readers: neither ever mutates the Grid they are
// given.
package render
