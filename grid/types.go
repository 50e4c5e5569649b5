package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and lookup.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadSymbol indicates a symbol outside the configured alphabet.
	ErrBadSymbol = errors.New("grid: unexpected symbol")
	// ErrOutOfBounds indicates a position outside [0,width)×[0,height).
	ErrOutOfBounds = errors.New("grid: position out of bounds")
)

// Direction is one of the four orthogonal headings.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every Direction in canonical order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Opposite returns the heading pointing the other way.
func (d Direction) Opposite() Direction {
	return d ^ 1
}

// Delta returns the (dx, dy) unit step for d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

// Vertical reports whether d is Up or Down.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Position is a cell coordinate. It carries no bounds; use Grid.InBounds.
type Position struct {
	X, Y int
}

// Step returns the position one cell away in direction d.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Option configures grid construction.
type Option func(*options)

type options struct {
	alphabet string
}

// WithAlphabet restricts cells to the given symbols. An empty alphabet
// accepts any byte.
func WithAlphabet(symbols string) Option {
	return func(o *options) {
		o.alphabet = symbols
	}
}
