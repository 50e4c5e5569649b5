package aggregate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/rules"
	"github.com/katalvlaran/gridwalk/traverse"
)

// ErrMalformedBoundary indicates loop tiles that do not form a consistent
// boundary along some row.
var ErrMalformedBoundary = errors.New("aggregate: malformed loop boundary")

// LoopLength returns the number of tiles on the loop.
func LoopLength(loop []grid.Position) int {
	return len(loop)
}

// FarthestPoint returns the step count from the start to the point of a
// closed loop farthest from it along the loop: half its length.
func FarthestPoint(loop []grid.Position) int {
	return len(loop) / 2
}

// Energized returns how many distinct cells a set of visited states covers.
func Energized(visited map[traverse.State]struct{}) int {
	cells := make(map[grid.Position]struct{}, len(visited))
	for s := range visited {
		cells[s.Pos] = struct{}{}
	}
	return len(cells)
}

// run tracks an open horizontal stretch of the boundary.
type run uint8

const (
	none run = iota
	fromUp
	fromDown
)

// EnclosedArea counts tiles strictly inside loop. g must hold real pipe
// shapes on every loop tile (the start marker already replaced). Tiles not
// on the loop count as ground whatever they hold.
// Returns ErrMalformedBoundary when a row's boundary tiles cannot pair up.
// Complexity: O(W×H).
func EnclosedArea(g *grid.Grid, loop []grid.Position) (int, error) {
	onLoop := make(map[grid.Position]struct{}, len(loop))
	for _, p := range loop {
		onLoop[p] = struct{}{}
	}

	area := 0
	for y := 0; y < g.Height(); y++ {
		inside, open := false, none
		for x := 0; x < g.Width(); x++ {
			p := grid.Position{X: x, Y: y}
			if _, ok := onLoop[p]; !ok {
				if inside {
					area++
				}
				continue
			}
			tile, _ := g.Lookup(p)
			var err error
			inside, open, err = scan(tile, inside, open)
			if err != nil {
				return 0, fmt.Errorf("%w: %c at %v: %v", ErrMalformedBoundary, tile, p, err)
			}
		}
		if open != none || inside {
			return 0, fmt.Errorf("%w: row %d ends inside the loop", ErrMalformedBoundary, y)
		}
	}
	return area, nil
}

// scan advances the per-row parity state over one boundary tile.
func scan(tile byte, inside bool, open run) (bool, run, error) {
	switch tile {
	case rules.Vertical:
		if open != none {
			return inside, open, errors.New("vertical pipe inside a run")
		}
		return !inside, none, nil
	case rules.Horizontal:
		if open == none {
			return inside, open, errors.New("horizontal pipe outside a run")
		}
		return inside, open, nil
	case rules.NorthEast, rules.SouthEast:
		if open != none {
			return inside, open, errors.New("run opened twice")
		}
		if tile == rules.NorthEast {
			return inside, fromUp, nil
		}
		return inside, fromDown, nil
	case rules.NorthWest, rules.SouthWest:
		if open == none {
			return inside, open, errors.New("run closed before it opened")
		}
		// S-bends cross the row; U-bends do not.
		if (open == fromUp && tile == rules.SouthWest) || (open == fromDown && tile == rules.NorthWest) {
			inside = !inside
		}
		return inside, none, nil
	}
	return inside, open, errors.New("not a pipe")
}
