// Package tilt solves the rolling-rock puzzle: tilting the platform slides
// every round rock until it meets a cube rock, another round rock, or the
// edge. Spinning repeats four tilts; billions of spins are answered by
// detecting the cycle in the sequence of platform states.
package tilt

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridwalk/cycle"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/internal/ctxlog"
)

// Platform symbols.
const (
	Round byte = 'O'
	Cube  byte = '#'
	Empty byte = '.'
)

// Alphabet is every symbol a platform may contain.
const Alphabet = "O#."

// Parse reads a platform restricted to Alphabet.
func Parse(text string) (*grid.Grid, error) {
	g, err := grid.Parse(text, grid.WithAlphabet(Alphabet))
	if err != nil {
		return nil, fmt.Errorf("tilt: %w", err)
	}
	return g, nil
}

// Tilt returns g with every round rock rolled as far as it goes toward dir.
// Complexity: O(W×H).
func Tilt(g *grid.Grid, dir grid.Direction) *grid.Grid {
	rows := make([][]byte, g.Height())
	for y := range rows {
		rows[y] = []byte(g.Row(y))
	}
	w, h := g.Width(), g.Height()

	// Lanes run against dir: each lane starts at the edge rocks roll toward.
	switch dir {
	case grid.Up:
		for x := 0; x < w; x++ {
			roll(h, func(i int) *byte { return &rows[i][x] })
		}
	case grid.Down:
		for x := 0; x < w; x++ {
			roll(h, func(i int) *byte { return &rows[h-1-i][x] })
		}
	case grid.Left:
		for y := 0; y < h; y++ {
			roll(w, func(i int) *byte { return &rows[y][i] })
		}
	case grid.Right:
		for y := 0; y < h; y++ {
			roll(w, func(i int) *byte { return &rows[y][w-1-i] })
		}
	}

	lines := make([]string, h)
	for y, r := range rows {
		lines[y] = string(r)
	}
	out, err := grid.New(lines)
	if err != nil {
		// lines keep g's shape, so New cannot reject them.
		panic(fmt.Sprintf("tilt: rebuild: %v", err))
	}
	return out
}

// roll compacts one lane of n cells toward index 0.
func roll(n int, cell func(i int) *byte) {
	free := 0
	for i := 0; i < n; i++ {
		switch c := cell(i); *c {
		case Cube:
			free = i + 1
		case Round:
			if i != free {
				*cell(free), *c = Round, Empty
			}
			free++
		}
	}
}

// spinOrder is one spin cycle: north, west, south, east.
var spinOrder = [4]grid.Direction{grid.Up, grid.Left, grid.Down, grid.Right}

// Spin applies one full spin cycle to g.
func Spin(g *grid.Grid) *grid.Grid {
	for _, d := range spinOrder {
		g = Tilt(g, d)
	}
	return g
}

// Load is the total load on the north support beams: each round rock
// weighs its distance from the south edge, counting its own row.
func Load(g *grid.Grid) int {
	total := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if c, _ := g.Lookup(grid.Position{X: x, Y: y}); c == Round {
				total += g.Height() - y
			}
		}
	}
	return total
}

// LoadAfter returns the north load after spins spin cycles. Platform states
// are fed to a cycle.Detector; once a cycle is confirmed the state after the
// last spin is read back from history instead of being simulated.
// Snapshot i in the detector is the platform after i+1 spins.
func LoadAfter(ctx context.Context, g *grid.Grid, spins int, opts ...cycle.Option) (int, error) {
	if spins < 0 {
		return 0, fmt.Errorf("tilt: negative spin count %d", spins)
	}
	if spins == 0 {
		return Load(g), nil
	}
	det, err := cycle.NewDetector[string](opts...)
	if err != nil {
		return 0, fmt.Errorf("tilt: %w", err)
	}

	log := ctxlog.FromContext(ctx)
	for i := 0; i < spins; i++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		g = Spin(g)
		c, ok := det.Observe(g.String())
		if !ok {
			continue
		}
		snap, err := det.Extrapolate(c, spins-1)
		if err != nil {
			return 0, fmt.Errorf("tilt: %w", err)
		}
		log.Debug("tilt: spin cycle found", "cycle", c.String(), "simulated", i+1)
		final, err := Parse(snap)
		if err != nil {
			return 0, err
		}
		return Load(final), nil
	}
	return Load(g), nil
}
