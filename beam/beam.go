// Package beam solves the light-beam puzzle: a beam enters a contraption of
// mirrors and splitters; count the cells it energizes.
package beam

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/aggregate"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/rules"
	"github.com/katalvlaran/gridwalk/traverse"
)

// Parse reads a contraption restricted to rules.OpticsAlphabet.
func Parse(text string) (*grid.Grid, error) {
	g, err := grid.Parse(text, grid.WithAlphabet(rules.OpticsAlphabet))
	if err != nil {
		return nil, fmt.Errorf("beam: %w", err)
	}
	return g, nil
}

// ParseWalled reads a contraption that may also hold walls ('#'), which
// absorb any beam entering them.
func ParseWalled(text string) (*grid.Grid, error) {
	g, err := grid.Parse(text, grid.WithAlphabet(rules.OpticsAlphabet+string(rules.Wall)))
	if err != nil {
		return nil, fmt.Errorf("beam: %w", err)
	}
	return g, nil
}

// TopLeft is the default entry: the top-left cell, heading right.
var TopLeft = traverse.State{Pos: grid.Position{X: 0, Y: 0}, Dir: grid.Right}

// Energized returns the number of cells a beam entering at start lights up.
// A wall cell is lit when the beam reaches it but passes nothing on.
func Energized(g *grid.Grid, start traverse.State, opts ...traverse.Option) (int, error) {
	res, err := traverse.Walk(g, rules.Blocking, []traverse.State{start}, opts...)
	if err != nil {
		return 0, fmt.Errorf("beam: %w", err)
	}
	return aggregate.Energized(res.Visited), nil
}

// EdgeStarts lists every border entry heading into the grid: down along the
// top row, up along the bottom row, right along the left column, and left
// along the right column.
func EdgeStarts(g *grid.Grid) []traverse.State {
	w, h := g.Width(), g.Height()
	starts := make([]traverse.State, 0, 2*(w+h))
	for x := 0; x < w; x++ {
		starts = append(starts,
			traverse.State{Pos: grid.Position{X: x, Y: 0}, Dir: grid.Down},
			traverse.State{Pos: grid.Position{X: x, Y: h - 1}, Dir: grid.Up},
		)
	}
	for y := 0; y < h; y++ {
		starts = append(starts,
			traverse.State{Pos: grid.Position{X: 0, Y: y}, Dir: grid.Right},
			traverse.State{Pos: grid.Position{X: w - 1, Y: y}, Dir: grid.Left},
		)
	}
	return starts
}

// MaxEnergized tries every edge entry and returns the best count and the
// entry that achieved it. Ties keep the first entry in EdgeStarts order.
func MaxEnergized(g *grid.Grid, opts ...traverse.Option) (int, traverse.State, error) {
	best, at := -1, traverse.State{}
	for _, s := range EdgeStarts(g) {
		n, err := Energized(g, s, opts...)
		if err != nil {
			return 0, traverse.State{}, err
		}
		if n > best {
			best, at = n, s
		}
	}
	return best, at, nil
}
