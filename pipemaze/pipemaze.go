// Package pipemaze solves the pipe-loop puzzle: a grid of pipe tiles holds
// one closed loop through the start marker S; report how far along the loop
// its farthest point is, and how many tiles it encloses.
package pipemaze

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridwalk/aggregate"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/internal/ctxlog"
	"github.com/katalvlaran/gridwalk/rules"
	"github.com/katalvlaran/gridwalk/traverse"
)

// ErrNoStart indicates the maze has no start marker.
var ErrNoStart = errors.New("pipemaze: no start tile")

// Maze is a parsed pipe maze with its loop already traced.
type Maze struct {
	// Grid has the start marker replaced by its inferred shape.
	Grid  *grid.Grid
	Start grid.Position
	Shape byte
	Loop  []grid.Position
}

// Parse reads a maze, infers the start tile's shape, and traces the loop.
// Returns grid errors for malformed text, ErrNoStart, rules.ErrNoStartShape,
// or traverse.ErrBrokenLoop.
func Parse(ctx context.Context, text string) (*Maze, error) {
	raw, err := grid.Parse(text, grid.WithAlphabet(rules.PipeAlphabet))
	if err != nil {
		return nil, fmt.Errorf("pipemaze: %w", err)
	}
	start, ok := raw.Find(rules.Start)
	if !ok {
		return nil, ErrNoStart
	}
	shape, err := rules.InferStart(raw, start)
	if err != nil {
		return nil, fmt.Errorf("pipemaze: %w", err)
	}
	g, err := raw.With(start, shape)
	if err != nil {
		return nil, fmt.Errorf("pipemaze: %w", err)
	}

	heading := rules.Openings(shape)[0]
	loop, err := traverse.TraceLoop(g, rules.Pipe, traverse.State{Pos: start, Dir: heading}, traverse.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("pipemaze: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("pipemaze: loop traced",
		"start", start.String(), "shape", string(shape), "length", len(loop.Path))

	return &Maze{Grid: g, Start: start, Shape: shape, Loop: loop.Path}, nil
}

// LoopLength returns the number of tiles on the loop.
func (m *Maze) LoopLength() int {
	return aggregate.LoopLength(m.Loop)
}

// Farthest returns the number of steps from the start to the farthest loop tile.
func (m *Maze) Farthest() int {
	return aggregate.FarthestPoint(m.Loop)
}

// Enclosed returns the number of tiles inside the loop.
func (m *Maze) Enclosed() (int, error) {
	return aggregate.EnclosedArea(m.Grid, m.Loop)
}
