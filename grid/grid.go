package grid

import (
	"fmt"
	"strings"
)

// Grid is a rectangular tile grid. It is immutable once built.
type Grid struct {
	width, height int
	cells         []byte // row-major, len == width*height
}

// New builds a Grid from rows of equal length.
// Returns ErrEmptyGrid if there are no rows or the first row is empty,
// ErrNonRectangular if any row length differs, and ErrBadSymbol
// (wrapped with the offending position) when WithAlphabet rejects a cell.
// Complexity: O(W×H) time and memory.
func New(rows []string, opts ...Option) (*Grid, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]byte, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, y, len(row), w)
		}
		if o.alphabet != "" {
			for x := 0; x < w; x++ {
				if strings.IndexByte(o.alphabet, row[x]) < 0 {
					return nil, fmt.Errorf("%w %q at (%d,%d)", ErrBadSymbol, row[x], x, y)
				}
			}
		}
		cells = append(cells, row...)
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// Parse splits text into lines and builds a Grid from them.
// Line terminators (\n or \r\n) are stripped; trailing blank lines are ignored.
func Parse(text string, opts ...Option) (*Grid, error) {
	return New(Lines(text), opts...)
}

// Lines splits text into lines without terminators, dropping trailing
// blank lines.
func Lines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the tile at p, or ErrOutOfBounds.
func (g *Grid) At(p Position) (byte, error) {
	if !g.InBounds(p) {
		return 0, fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, p, g.width, g.height)
	}
	return g.cells[g.index(p)], nil
}

// Lookup is At without the error allocation: ok is false outside the grid.
func (g *Grid) Lookup(p Position) (tile byte, ok bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.cells[g.index(p)], true
}

// Step moves one cell from p in direction d. ok is false when the move
// would leave the grid.
func (g *Grid) Step(p Position, d Direction) (next Position, ok bool) {
	next = p.Step(d)
	return next, g.InBounds(next)
}

// Neighbors returns the in-bounds orthogonal neighbors of p in the order
// Up, Down, Left, Right.
func (g *Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, len(Directions))
	for _, d := range Directions {
		if q, ok := g.Step(p, d); ok {
			out = append(out, q)
		}
	}
	return out
}

// Find returns the first cell holding symbol in row-major order.
func (g *Grid) Find(symbol byte) (Position, bool) {
	for i, c := range g.cells {
		if c == symbol {
			return g.coordinate(i), true
		}
	}
	return Position{}, false
}

// Count returns how many cells hold symbol.
func (g *Grid) Count(symbol byte) int {
	n := 0
	for _, c := range g.cells {
		if c == symbol {
			n++
		}
	}
	return n
}

// Row returns row y as a string. It panics if y is out of range.
func (g *Grid) Row(y int) string {
	return string(g.cells[y*g.width : (y+1)*g.width])
}

// Rows returns every row as a string.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	for y := range rows {
		rows[y] = g.Row(y)
	}
	return rows
}

// Column returns column x read top to bottom. It panics if x is out of range.
func (g *Grid) Column(x int) string {
	if x < 0 || x >= g.width {
		panic(fmt.Sprintf("grid: column %d out of range [0,%d)", x, g.width))
	}
	b := make([]byte, g.height)
	for y := range b {
		b[y] = g.cells[y*g.width+x]
	}
	return string(b)
}

// String renders the grid as newline-separated rows without a trailing newline.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// With returns a copy of g with the cell at p replaced by symbol.
func (g *Grid) With(p Position, symbol byte) (*Grid, error) {
	if !g.InBounds(p) {
		return nil, fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, p, g.width, g.height)
	}
	out := g.clone()
	out.cells[g.index(p)] = symbol
	return out, nil
}

// Equal reports whether g and other have the same shape and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	return g.width == other.width && g.height == other.height && string(g.cells) == string(other.cells)
}

func (g *Grid) clone() *Grid {
	cells := make([]byte, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// index maps p to a row-major index: y*width + x.
func (g *Grid) index(p Position) int {
	return p.Y*g.width + p.X
}

// coordinate converts a row-major index back to a Position.
func (g *Grid) coordinate(i int) Position {
	return Position{X: i % g.width, Y: i / g.width}
}
