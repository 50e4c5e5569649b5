package grid_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/grid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged, and off-alphabet inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		opts []grid.Option
		err  error
	}{
		{"NoRows", nil, nil, grid.ErrEmptyGrid},
		{"EmptyRow", []string{""}, nil, grid.ErrEmptyGrid},
		{"NonRectangular", []string{"..", "."}, nil, grid.ErrNonRectangular},
		{"BadSymbol", []string{"..", ".x"}, []grid.Option{grid.WithAlphabet(".#")}, grid.ErrBadSymbol},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.rows, tc.opts...)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestParse_LineTerminators checks CRLF handling and trailing blank lines.
func TestParse_LineTerminators(t *testing.T) {
	g, err := grid.Parse("ab\r\ncd\r\n\n")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, []string{"ab", "cd"}, g.Rows())
}

func TestNew_CopiesInput(t *testing.T) {
	rows := []string{"ab", "cd"}
	g, err := grid.New(rows)
	require.NoError(t, err)
	rows[0] = "zz"
	assert.Equal(t, "ab", g.Row(0))
}

//----------------------------------------------------------------------------//
// Lookup
//----------------------------------------------------------------------------//

// TestAt_Bounds checks At and Lookup on a 3×2 grid.
func TestAt_Bounds(t *testing.T) {
	g, err := grid.Parse("abc\ndef")
	require.NoError(t, err)

	tile, err := g.At(grid.Position{X: 2, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, byte('f'), tile)

	for _, p := range []grid.Position{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 2}, {X: 0, Y: -1}} {
		_, err := g.At(p)
		assert.ErrorIs(t, err, grid.ErrOutOfBounds, "At%v", p)
		_, ok := g.Lookup(p)
		assert.False(t, ok, "Lookup%v", p)
	}
}

// TestNeighbors_Order verifies in-bounds filtering and Up, Down, Left, Right order.
func TestNeighbors_Order(t *testing.T) {
	g, err := grid.Parse("...\n...\n...")
	require.NoError(t, err)

	assert.Equal(t,
		[]grid.Position{{X: 1, Y: 0}, {X: 1, Y: 2}, {X: 0, Y: 1}, {X: 2, Y: 1}},
		g.Neighbors(grid.Position{X: 1, Y: 1}))
	assert.Equal(t,
		[]grid.Position{{X: 0, Y: 1}, {X: 1, Y: 0}},
		g.Neighbors(grid.Position{X: 0, Y: 0}))
	assert.Len(t, g.Neighbors(grid.Position{X: 1, Y: 0}), 3)
}

func TestFindCountColumn(t *testing.T) {
	g, err := grid.Parse("..#\n#S.\n..#")
	require.NoError(t, err)

	p, ok := g.Find('S')
	require.True(t, ok)
	assert.Equal(t, grid.Position{X: 1, Y: 1}, p)

	_, ok = g.Find('Z')
	assert.False(t, ok)

	assert.Equal(t, 3, g.Count('#'))
	assert.Equal(t, "#.#", g.Column(2))
}

func TestWith_LeavesOriginal(t *testing.T) {
	g, err := grid.Parse("S.\n..")
	require.NoError(t, err)

	h, err := g.With(grid.Position{}, 'F')
	require.NoError(t, err)
	assert.Equal(t, "F.\n..", h.String())
	assert.Equal(t, "S.\n..", g.String())

	_, err = g.With(grid.Position{X: 5}, 'F')
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

//----------------------------------------------------------------------------//
// Rotation
//----------------------------------------------------------------------------//

func TestRotate(t *testing.T) {
	g, err := grid.Parse("abc\ndef")
	require.NoError(t, err)

	right := g.RotateRight()
	if diff := cmp.Diff([]string{"da", "eb", "fc"}, right.Rows()); diff != "" {
		t.Errorf("RotateRight mismatch (-want +got):\n%s", diff)
	}
	left := g.RotateLeft()
	if diff := cmp.Diff([]string{"cf", "be", "ad"}, left.Rows()); diff != "" {
		t.Errorf("RotateLeft mismatch (-want +got):\n%s", diff)
	}

	assert.True(t, g.Equal(right.RotateLeft()), "right then left is identity")
	assert.True(t, g.Equal(left.RotateLeft().RotateLeft().RotateLeft()), "four lefts is identity")
}

//----------------------------------------------------------------------------//
// Direction
//----------------------------------------------------------------------------//

func TestDirection(t *testing.T) {
	pairs := map[grid.Direction]grid.Direction{
		grid.Up: grid.Down, grid.Down: grid.Up, grid.Left: grid.Right, grid.Right: grid.Left,
	}
	for d, opp := range pairs {
		assert.Equal(t, opp, d.Opposite(), "%v.Opposite()", d)
		p := grid.Position{X: 3, Y: 3}
		assert.Equal(t, p, p.Step(d).Step(d.Opposite()), "%v round trip", d)
	}
	assert.True(t, grid.Up.Vertical())
	assert.False(t, grid.Right.Vertical())
	assert.Equal(t, "Left", grid.Left.String())
}
