package pipemaze_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/pipemaze"
	"github.com/katalvlaran/gridwalk/rules"
	"github.com/katalvlaran/gridwalk/traverse"
)

const (
	simple = "" +
		".....\n" +
		".S-7.\n" +
		".|.|.\n" +
		".L-J.\n" +
		".....\n"

	complexLoop = "" +
		"7-F7-\n" +
		".FJ|7\n" +
		"SJLL7\n" +
		"|F--J\n" +
		"LJ.LJ\n"

	squeeze = "" +
		"..........\n" +
		".S------7.\n" +
		".|F----7|.\n" +
		".||....||.\n" +
		".||....||.\n" +
		".|L-7F-J|.\n" +
		".|..||..|.\n" +
		".L--JL--J.\n" +
		"..........\n"

	larger = "" +
		".F----7F7F7F7F-7....\n" +
		".|F--7||||||||FJ....\n" +
		".||.FJ||||||||L7....\n" +
		"FJL7L7LJLJ||LJ.L-7..\n" +
		"L--J.L7...LJS7F-7L7.\n" +
		"....F-J..F7FJ|L7L7L7\n" +
		"....L7.F7||L7|.L7L7|\n" +
		".....|FJLJ|FJ|F7|.LJ\n" +
		"....FJL-7.||.||||...\n" +
		"....L---J.LJ.LJLJ...\n"

	junk = "" +
		"FF7FSF7F7F7F7F7F---7\n" +
		"L|LJ||||||||||||F--J\n" +
		"FL-7LJLJ||||||LJL-77\n" +
		"F--JF--7||LJLJ7F7FJ-\n" +
		"L---JF-JLJ.||-FJLJJ7\n" +
		"|F|F-JF---7F7-L7L|7|\n" +
		"|FFJF7L7F-JF7|JL---7\n" +
		"7-L-JL7||F7|L7F-7F7|\n" +
		"L.L7LFJ|||||FJL7||LJ\n" +
		"L7JLJL-JLJLJL--JLJ.L\n"
)

func TestFarthest(t *testing.T) {
	cases := map[string]struct {
		text string
		want int
	}{
		"Simple":  {simple, 4},
		"Complex": {complexLoop, 8},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			m, err := pipemaze.Parse(context.Background(), tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.want, m.Farthest())
			assert.Equal(t, 2*tc.want, m.LoopLength())
		})
	}
}

func TestEnclosed(t *testing.T) {
	cases := map[string]struct {
		text string
		want int
	}{
		"Simple":  {simple, 1},
		"Squeeze": {squeeze, 4},
		"Larger":  {larger, 8},
		"Junk":    {junk, 10},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			m, err := pipemaze.Parse(context.Background(), tc.text)
			require.NoError(t, err)
			got, err := m.Enclosed()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParse_StartShape(t *testing.T) {
	m, err := pipemaze.Parse(context.Background(), simple)
	require.NoError(t, err)
	assert.Equal(t, grid.Position{X: 1, Y: 1}, m.Start)
	assert.Equal(t, "F", string(m.Shape))
	assert.Equal(t, m.Start, m.Loop[0])
	assert.Zero(t, m.Grid.Count('S'))

	m, err = pipemaze.Parse(context.Background(), complexLoop)
	require.NoError(t, err)
	assert.Equal(t, "F", string(m.Shape))
}

// TestLoop_NoDanglingEnds: every loop tile's openings lead to a loop tile
// that opens back.
func TestLoop_NoDanglingEnds(t *testing.T) {
	for _, text := range []string{simple, complexLoop, squeeze, larger, junk} {
		m, err := pipemaze.Parse(context.Background(), text)
		require.NoError(t, err)

		on := make(map[grid.Position]bool, len(m.Loop))
		for _, p := range m.Loop {
			on[p] = true
		}
		for _, p := range m.Loop {
			tile, err := m.Grid.At(p)
			require.NoError(t, err)
			for _, side := range rules.Openings(tile) {
				q, ok := m.Grid.Step(p, side)
				require.True(t, ok, "%v opens off the grid", p)
				require.True(t, on[q], "%v opens to %v which is off the loop", p, q)
				back, _ := m.Grid.Lookup(q)
				assert.True(t, rules.Opens(back, side.Opposite()), "%v ↔ %v", p, q)
			}
		}
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := pipemaze.Parse(context.Background(), "...\n.F-\n...")
	assert.ErrorIs(t, err, pipemaze.ErrNoStart)

	_, err = pipemaze.Parse(context.Background(), "...\n.S.\n...")
	assert.ErrorIs(t, err, rules.ErrNoStartShape)

	_, err = pipemaze.Parse(context.Background(), "..\n.S.")
	assert.ErrorIs(t, err, grid.ErrNonRectangular)

	_, err = pipemaze.Parse(context.Background(), "S-7\n|x|\nL-J")
	assert.ErrorIs(t, err, grid.ErrBadSymbol)

	// S fits F, but the loop behind it never closes.
	_, err = pipemaze.Parse(context.Background(), "S-7\n|.|\nL-.")
	assert.ErrorIs(t, err, traverse.ErrBrokenLoop)
}
