package beam_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/beam"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/traverse"
)

const sample = `.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....`

func TestEnergized_Sample(t *testing.T) {
	g, err := beam.Parse(sample)
	require.NoError(t, err)

	n, err := beam.Energized(g, beam.TopLeft)
	require.NoError(t, err)
	assert.Equal(t, 46, n)
}

func TestMaxEnergized_Sample(t *testing.T) {
	g, err := beam.Parse(sample)
	require.NoError(t, err)

	n, at, err := beam.MaxEnergized(g)
	require.NoError(t, err)
	assert.Equal(t, 51, n)

	again, err := beam.Energized(g, at)
	require.NoError(t, err)
	assert.Equal(t, n, again)

	// The top-row entry at column 3 heading down reaches the maximum.
	top, err := beam.Energized(g, traverse.State{Pos: grid.Position{X: 3, Y: 0}, Dir: grid.Down})
	require.NoError(t, err)
	assert.Equal(t, 51, top)
}

// TestEnergized_Deterministic: running the same walk twice lights the same count.
func TestEnergized_Deterministic(t *testing.T) {
	g, err := beam.Parse(sample)
	require.NoError(t, err)
	a, err := beam.Energized(g, beam.TopLeft, traverse.WithOrder(traverse.FIFO))
	require.NoError(t, err)
	b, err := beam.Energized(g, beam.TopLeft, traverse.WithOrder(traverse.LIFO))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestEnergized_BruteForce compares the engine against a naive fixed-point
// enumeration of (position, heading) states on a 10×10 grid holding one
// mirror and one splitter.
func TestEnergized_BruteForce(t *testing.T) {
	rows := []string{
		"..........",
		"..........",
		"....\\.....",
		"..........",
		"..........",
		"..........",
		"....-.....",
		"..........",
		"..........",
		"..........",
	}
	g, err := grid.New(rows)
	require.NoError(t, err)

	for _, start := range append(beam.EdgeStarts(g), beam.TopLeft) {
		got, err := beam.Energized(g, start)
		require.NoError(t, err)
		assert.Equal(t, bruteForce(rows, start), got, "start %v", start)
	}

	// Entering along row 2 heading right: the mirror turns the beam down
	// column 4 into the splitter, which fans it out across row 6.
	got, err := beam.Energized(g, traverse.State{Pos: grid.Position{X: 0, Y: 2}, Dir: grid.Right})
	require.NoError(t, err)
	assert.Equal(t, 5+3+10, got)
}

func TestParse_BadSymbol(t *testing.T) {
	_, err := beam.Parse("..#\n...")
	assert.ErrorIs(t, err, grid.ErrBadSymbol)

	_, err = beam.ParseWalled("..#\n..x")
	assert.ErrorIs(t, err, grid.ErrBadSymbol)
}

func TestEnergized_Walls(t *testing.T) {
	// The top row stops at the wall; the splitter below is never reached.
	g, err := beam.ParseWalled("..#.\n..|.")
	require.NoError(t, err)
	n, err := beam.Energized(g, beam.TopLeft)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// Entering the bottom row, the splitter sends one beam into the wall
	// above it and one off the bottom edge.
	n, err = beam.Energized(g, traverse.State{Pos: grid.Position{X: 0, Y: 1}, Dir: grid.Right})
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	// A beam starting on a wall lights only that cell.
	n, err = beam.Energized(g, traverse.State{Pos: grid.Position{X: 2, Y: 0}, Dir: grid.Down})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

// bruteForce re-derives the energized count without the worklist engine:
// it repeatedly sweeps every known state until no new state appears.
func bruteForce(rows []string, start traverse.State) int {
	h, w := len(rows), len(rows[0])
	type st struct{ x, y, dx, dy int }
	dx, dy := start.Dir.Delta()
	known := map[st]bool{{start.Pos.X, start.Pos.Y, dx, dy}: true}
	for changed := true; changed; {
		changed = false
		for s := range known {
			var outs [][2]int
			switch rows[s.y][s.x] {
			case '.':
				outs = [][2]int{{s.dx, s.dy}}
			case '/':
				outs = [][2]int{{-s.dy, -s.dx}}
			case '\\':
				outs = [][2]int{{s.dy, s.dx}}
			case '|':
				if s.dx == 0 {
					outs = [][2]int{{s.dx, s.dy}}
				} else {
					outs = [][2]int{{0, -1}, {0, 1}}
				}
			case '-':
				if s.dy == 0 {
					outs = [][2]int{{s.dx, s.dy}}
				} else {
					outs = [][2]int{{-1, 0}, {1, 0}}
				}
			}
			for _, o := range outs {
				n := st{s.x + o[0], s.y + o[1], o[0], o[1]}
				if n.x < 0 || n.x >= w || n.y < 0 || n.y >= h || known[n] {
					continue
				}
				known[n] = true
				changed = true
			}
		}
	}
	cells := map[[2]int]bool{}
	for s := range known {
		cells[[2]int{s.x, s.y}] = true
	}
	return len(cells)
}
