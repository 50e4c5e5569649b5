// Package aggregate reduces traversal output to the scalar answers the
// solvers report: loop length, the farthest point along a loop, the area a
// loop encloses, and the number of energized cells.
//
// Every function is pure: the same input always yields the same result and
// nothing is retained between calls.
//
// EnclosedArea uses a row-wise parity scan, the point-in-polygon ray cast
// specialised to orthogonal grid loops. Scanning left to right, a vertical
// pipe flips inside/outside. A corner opens a horizontal run; the matching
// corner closes it and flips only when the run is an S-bend (L…7 or F…J),
// which crosses the row once. U-bends (L…J, F…7) cross it zero times.
package aggregate
