// Package grid models a rectangular, immutable grid of single-byte tiles.
//
// What:
//
//   - Grid wraps width×height tile symbols parsed from text, one row per line.
//   - Position and Direction give the coordinate system used by every walker
//     in this module: X grows to the right, Y grows downward.
//   - Lookups are bounds-checked; Neighbors yields in-bounds cells in the
//     fixed order Up, Down, Left, Right.
//   - Rotations and single-cell edits return new grids; a Grid never changes
//     after construction.
//
// Complexity:
//
//   - New, Parse, With, RotateLeft, RotateRight: O(W×H) time and memory.
//   - At, Lookup, Step, InBounds: O(1).
//   - Find, Count: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadSymbol: a cell holds a symbol outside the configured alphabet.
//   - ErrOutOfBounds: a position lies outside the grid.
package grid
