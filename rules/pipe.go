package rules

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
)

// Pipe symbols.
const (
	Vertical   byte = '|'
	Horizontal byte = '-'
	NorthEast  byte = 'L'
	NorthWest  byte = 'J'
	SouthWest  byte = '7'
	SouthEast  byte = 'F'
	Ground     byte = '.'
	Start      byte = 'S'
)

// PipeAlphabet is every symbol a pipe maze may contain.
const PipeAlphabet = "|-LJ7F.S"

// StartCandidates is the order in which InferStart tries shapes.
var StartCandidates = []byte{Vertical, Horizontal, NorthEast, NorthWest, SouthWest, SouthEast}

var openings = map[byte][]grid.Direction{
	Vertical:   {grid.Up, grid.Down},
	Horizontal: {grid.Left, grid.Right},
	NorthEast:  {grid.Up, grid.Right},
	NorthWest:  {grid.Up, grid.Left},
	SouthWest:  {grid.Down, grid.Left},
	SouthEast:  {grid.Down, grid.Right},
}

// Openings returns the two sides a pipe opens to, or nil for non-pipes.
func Openings(tile byte) []grid.Direction {
	return openings[tile]
}

// IsPipe reports whether tile is one of the six pipe shapes.
func IsPipe(tile byte) bool {
	_, ok := openings[tile]
	return ok
}

// Opens reports whether tile has an opening on side.
func Opens(tile byte, side grid.Direction) bool {
	for _, d := range openings[tile] {
		if d == side {
			return true
		}
	}
	return false
}

// PipeExit returns the heading a walker leaves tile with after entering it
// while travelling in direction travel.
// Returns ErrUnknownTile for non-pipes and ErrRejected when tile has no
// opening facing the walker.
func PipeExit(tile byte, travel grid.Direction) (grid.Direction, error) {
	ds, ok := openings[tile]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownTile, tile)
	}
	entry := travel.Opposite()
	switch entry {
	case ds[0]:
		return ds[1], nil
	case ds[1]:
		return ds[0], nil
	}
	return 0, fmt.Errorf("%w: %q heading %v", ErrRejected, tile, travel)
}

// Pipe adapts PipeExit to the traverse.Rule shape.
func Pipe(tile byte, travel grid.Direction) ([]grid.Direction, error) {
	out, err := PipeExit(tile, travel)
	if err != nil {
		return nil, err
	}
	return single[out], nil
}

// InferStart determines the pipe shape hidden under the start marker at p.
// A shape fits when, for both of its openings, the neighbor on that side
// exists and opens back toward p. Shapes are tried in StartCandidates
// order and the first fit wins.
// Returns ErrNoStartShape when no shape fits.
func InferStart(g *grid.Grid, p grid.Position) (byte, error) {
	for _, shape := range StartCandidates {
		if fits(g, p, shape) {
			return shape, nil
		}
	}
	return 0, fmt.Errorf("%w at %v", ErrNoStartShape, p)
}

func fits(g *grid.Grid, p grid.Position, shape byte) bool {
	for _, side := range openings[shape] {
		q, ok := g.Step(p, side)
		if !ok {
			return false
		}
		tile, _ := g.Lookup(q)
		if !Opens(tile, side.Opposite()) {
			return false
		}
	}
	return true
}
