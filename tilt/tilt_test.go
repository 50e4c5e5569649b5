package tilt_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/cycle"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/tilt"
)

const sample = `O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....`

func parse(t testing.TB, text string) *grid.Grid {
	t.Helper()
	g, err := tilt.Parse(text)
	require.NoError(t, err)
	return g
}

func TestTilt_North(t *testing.T) {
	g := tilt.Tilt(parse(t, sample), grid.Up)

	want := `OOOO.#.O..
OO..#....#
OO..O##..O
O..#.OO...
........#.
..#....#.#
..O..#.O.O
..O.......
#....###..
#....#....`
	assert.Equal(t, want, g.String())
	assert.Equal(t, 136, tilt.Load(g))
}

func TestTilt_EachDirection(t *testing.T) {
	g := parse(t, ".O#O.\n.....\nO..#O")

	cases := []struct {
		dir  grid.Direction
		want string
	}{
		{grid.Left, "O.#O.\n.....\nO..#O"},
		{grid.Right, ".O#.O\n.....\n..O#O"},
		{grid.Up, "OO#OO\n.....\n...#."},
		{grid.Down, "..#..\n...O.\nOO.#O"},
	}
	for _, tc := range cases {
		t.Run(tc.dir.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, tilt.Tilt(g, tc.dir).String())
		})
	}
}

func TestTilt_LeavesInputUntouched(t *testing.T) {
	g := parse(t, sample)
	before := g.String()
	_ = tilt.Spin(g)
	assert.Equal(t, before, g.String())
}

func TestSpin_Sample(t *testing.T) {
	want := `.....#....
....#...O#
...OO##...
.OO#......
.....OOO#.
.O#...O#.#
....O#....
......OOOO
#...O###..
#..OO#....`
	assert.Equal(t, want, tilt.Spin(parse(t, sample)).String())
}

func TestLoadAfter_Sample(t *testing.T) {
	g := parse(t, sample)
	for _, k := range []int{2, cycle.DefaultMinOccurrences} {
		n, err := tilt.LoadAfter(context.Background(), g, 1_000_000_000, cycle.WithMinOccurrences(k))
		require.NoError(t, err)
		assert.Equal(t, 64, n, "min occurrences %d", k)
	}
}

// TestLoadAfter_MatchesSimulation checks extrapolation against plain
// simulation for every spin count up to 40, which covers counts landing
// on each phase of the sample's cycle, including exact multiples of it.
func TestLoadAfter_MatchesSimulation(t *testing.T) {
	g := parse(t, sample)
	sim := g
	for n := 1; n <= 40; n++ {
		sim = tilt.Spin(sim)
		got, err := tilt.LoadAfter(context.Background(), g, n, cycle.WithMinOccurrences(2))
		require.NoError(t, err)
		assert.Equal(t, tilt.Load(sim), got, "spins %d", n)
	}
}

func TestLoadAfter_Edges(t *testing.T) {
	g := parse(t, sample)

	n, err := tilt.LoadAfter(context.Background(), g, 0)
	require.NoError(t, err)
	assert.Equal(t, tilt.Load(g), n)

	_, err = tilt.LoadAfter(context.Background(), g, -1)
	assert.Error(t, err)

	_, err = tilt.LoadAfter(context.Background(), g, 10, cycle.WithMinOccurrences(1))
	assert.ErrorIs(t, err, cycle.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = tilt.LoadAfter(ctx, g, 10)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParse_BadSymbol(t *testing.T) {
	_, err := tilt.Parse("O.x\n...")
	assert.ErrorIs(t, err, grid.ErrBadSymbol)
}
