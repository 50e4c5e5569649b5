// Package garden counts the garden plots an elf can stand on after walking
// an exact number of steps from the start tile.
package garden

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
)

// Map symbols.
const (
	Plot  byte = '.'
	Rock  byte = '#'
	Start byte = 'S'
)

// Alphabet is every symbol a garden map may contain.
const Alphabet = ".#S"

var (
	// ErrNoStart indicates the map has no start tile.
	ErrNoStart = errors.New("garden: no start tile")
	// ErrNegativeSteps indicates a negative step budget.
	ErrNegativeSteps = errors.New("garden: negative step count")
)

// Parse reads a garden map restricted to Alphabet.
func Parse(text string) (*grid.Grid, error) {
	g, err := grid.Parse(text, grid.WithAlphabet(Alphabet))
	if err != nil {
		return nil, fmt.Errorf("garden: %w", err)
	}
	return g, nil
}

// Distances returns the shortest step count from the start tile to every
// plot reachable within limit steps. limit < 0 means unbounded.
func Distances(g *grid.Grid, limit int) (map[grid.Position]int, error) {
	start, ok := g.Find(Start)
	if !ok {
		return nil, ErrNoStart
	}
	dist := map[grid.Position]int{start: 0}
	queue := []grid.Position{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		d := dist[p]
		if limit >= 0 && d == limit {
			continue
		}
		for _, n := range g.Neighbors(p) {
			if c, _ := g.Lookup(n); c == Rock {
				continue
			}
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = d + 1
			queue = append(queue, n)
		}
	}
	return dist, nil
}

// Reachable returns how many plots can be occupied after exactly steps
// moves. Stepping back and forth lets a walker burn any even number of
// spare moves, so a plot counts when its distance is within steps and has
// the same parity. A start with no open neighbor cannot move at all, so
// nothing is reachable after any positive number of steps.
func Reachable(g *grid.Grid, steps int) (int, error) {
	if steps < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeSteps, steps)
	}
	dist, err := Distances(g, steps)
	if err != nil {
		return 0, err
	}
	if steps > 0 && len(dist) == 1 {
		return 0, nil
	}
	n := 0
	for _, d := range dist {
		if d%2 == steps%2 {
			n++
		}
	}
	return n, nil
}
