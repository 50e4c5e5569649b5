// Package rules holds the tile connectivity tables used by the walkers in
// package traverse.
//
// Two tile families are supported:
//
//   - Pipes (PipeAlphabet): every pipe opens on exactly two sides. A walker
//     travelling in direction d may enter a pipe only through the side
//     d.Opposite(); it leaves through the other opening. Corners therefore
//     accept one heading per opening and reject the rest.
//   - Optics (OpticsAlphabet): empty space passes a beam through, mirrors
//     deflect it, and splitters either pass it or split it in two
//     perpendicular beams.
//
// Every rule is a pure function of (tile, heading) and returns zero, one, or
// two outgoing headings. Returned slices are shared tables and must not be
// modified.
package rules
