package rules

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
)

// Optics symbols.
const (
	Empty           byte = '.'
	MirrorSlash     byte = '/'
	MirrorBackslash byte = '\\'
	SplitVertical   byte = '|'
	SplitHorizontal byte = '-'
	Wall            byte = '#'
)

// OpticsAlphabet is every symbol a beam contraption may contain.
const OpticsAlphabet = `./\|-`

// single[d] is the shared one-element successor list for heading d.
var single = [4][]grid.Direction{
	grid.Up:    {grid.Up},
	grid.Down:  {grid.Down},
	grid.Left:  {grid.Left},
	grid.Right: {grid.Right},
}

var (
	splitUpDown    = []grid.Direction{grid.Up, grid.Down}
	splitLeftRight = []grid.Direction{grid.Left, grid.Right}
)

// slash and backslash map an incoming heading to the deflected one.
var (
	slash = [4]grid.Direction{
		grid.Right: grid.Up,
		grid.Left:  grid.Down,
		grid.Up:    grid.Right,
		grid.Down:  grid.Left,
	}
	backslash = [4]grid.Direction{
		grid.Right: grid.Down,
		grid.Left:  grid.Up,
		grid.Up:    grid.Left,
		grid.Down:  grid.Right,
	}
)

// Deflect returns the headings a beam leaves tile with after entering it
// while travelling in direction travel.
//
//	.        pass through
//	/ \      deflect per the mirror tables
//	|        pass vertical beams, split horizontal ones into Up and Down
//	-        pass horizontal beams, split vertical ones into Left and Right
//
// Returns ErrUnknownTile for any other symbol.
func Deflect(tile byte, travel grid.Direction) ([]grid.Direction, error) {
	switch tile {
	case Empty:
		return single[travel], nil
	case MirrorSlash:
		return single[slash[travel]], nil
	case MirrorBackslash:
		return single[backslash[travel]], nil
	case SplitVertical:
		if travel.Vertical() {
			return single[travel], nil
		}
		return splitUpDown, nil
	case SplitHorizontal:
		if !travel.Vertical() {
			return single[travel], nil
		}
		return splitLeftRight, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownTile, tile)
}

// Blocking is Deflect extended with walls: a beam entering Wall is absorbed
// and produces no successors.
func Blocking(tile byte, travel grid.Direction) ([]grid.Direction, error) {
	if tile == Wall {
		return nil, nil
	}
	return Deflect(tile, travel)
}
