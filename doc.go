// Package gridwalk is a directional grid traversal engine: immutable tile
// grids, per-tile connectivity rules, a worklist walker over
// (position, heading) states, a generic cycle detector for long simulations,
// and pure aggregators that turn visited states into answers.
//
// What is inside?
//
//	grid/      — Grid, Position, Direction; parsing, lookup, rotation
//	rules/     — pipe and optics connectivity (Pipe, Deflect, InferStart)
//	traverse/  — Walk (FIFO/LIFO worklist) and TraceLoop (single closed loop)
//	cycle/     — Detector[T] and Cycle.Index for extrapolating to step N
//	aggregate/ — LoopLength, FarthestPoint, EnclosedArea, Energized
//
// Solvers built on the engine:
//
//	pipemaze/ beam/ tilt/ garden/ mirror/ race/ network/ almanac/
//
// Ambient pieces: config/ (YAML runner settings), internal/ctxlog (slog
// through context), and cmd/gridwalk, which runs one registered solution
// over an input file and prints a single integer.
//
// Quick ASCII example:
//
//	.....
//	.F-7.
//	.|.|.      a pipe loop of 8 tiles: farthest point 4, 1 tile enclosed
//	.L-J.
//	.....
//
//	go install github.com/katalvlaran/gridwalk/cmd/gridwalk@latest
package gridwalk
