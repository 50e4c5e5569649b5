// Package mirror finds the line of reflection in each pattern of ash and
// rocks and summarizes the patterns by where their lines fall.
package mirror

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
)

// Alphabet is every symbol a pattern may contain.
const Alphabet = "#."

// ErrNoReflection indicates a pattern has no line of reflection.
var ErrNoReflection = errors.New("mirror: no line of reflection")

// Line is a line of reflection lying between two columns (Vertical) or two
// rows, with Before columns or rows on its left or top side.
type Line struct {
	Vertical bool
	Before   int
}

// Score is Before for a vertical line and 100×Before for a horizontal one.
func (l Line) Score() int {
	if l.Vertical {
		return l.Before
	}
	return 100 * l.Before
}

func (l Line) String() string {
	if l.Vertical {
		return fmt.Sprintf("vertical after column %d", l.Before)
	}
	return fmt.Sprintf("horizontal after row %d", l.Before)
}

// ParsePatterns splits text on blank lines and parses each block.
func ParsePatterns(text string) ([]*grid.Grid, error) {
	var (
		out   []*grid.Grid
		block []string
	)
	flush := func() error {
		if len(block) == 0 {
			return nil
		}
		g, err := grid.New(block, grid.WithAlphabet(Alphabet))
		if err != nil {
			return fmt.Errorf("mirror: pattern %d: %w", len(out)+1, err)
		}
		out = append(out, g)
		block = nil
		return nil
	}
	for _, line := range grid.Lines(text) {
		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		block = append(block, line)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("mirror: %w", grid.ErrEmptyGrid)
	}
	return out, nil
}

// Reflection returns the pattern's exact line of reflection, trying
// vertical lines before horizontal ones.
func Reflection(g *grid.Grid) (Line, error) {
	return find(g, 0)
}

// SmudgedReflection returns the line that becomes a reflection once exactly
// one cell is flipped.
func SmudgedReflection(g *grid.Grid) (Line, error) {
	return find(g, 1)
}

// find returns the first line whose mirrored halves differ in exactly
// smudges cells. Columns are compared as rows of the rotated pattern.
func find(g *grid.Grid, smudges int) (Line, error) {
	if k, ok := split(g.RotateRight().Rows(), smudges); ok {
		return Line{Vertical: true, Before: k}, nil
	}
	if k, ok := split(g.Rows(), smudges); ok {
		return Line{Before: k}, nil
	}
	return Line{}, ErrNoReflection
}

// split returns the smallest k such that rows[:k], folded onto rows[k:],
// differ in exactly smudges cells.
func split(rows []string, smudges int) (int, bool) {
	for k := 1; k < len(rows); k++ {
		diff := 0
		for a, b := k-1, k; a >= 0 && b < len(rows) && diff <= smudges; a, b = a-1, b+1 {
			diff += distance(rows[a], rows[b])
		}
		if diff == smudges {
			return k, true
		}
	}
	return 0, false
}

// distance counts positions where a and b differ. a and b have equal length.
func distance(a, b string) int {
	n := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}

// Summarize adds up the scores of every pattern's line, as found by fn
// (Reflection or SmudgedReflection).
func Summarize(patterns []*grid.Grid, fn func(*grid.Grid) (Line, error)) (int, error) {
	total := 0
	for i, p := range patterns {
		l, err := fn(p)
		if err != nil {
			return 0, fmt.Errorf("pattern %d: %w", i+1, err)
		}
		total += l.Score()
	}
	return total, nil
}
