package traverse

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
)

// TraceLoop follows a closed loop out of start.Pos, leaving it with heading
// start.Dir. At every other tile rule must yield exactly one heading. The
// walk ends when it re-enters start.Pos; the first step is taken before the
// check, so a loop never closes at step zero.
// The tile under start.Pos must already be a real tile for rule: re-entering
// it has to lead back out with start.Dir.
// Returns ErrGridNil, ErrStartOutOfBounds, ErrOptionViolation, ErrStateLimit, or
// ErrBrokenLoop (wrapping the rule's error when there is one) if the path
// leaves the grid, dead-ends, forks, or crosses itself.
func TraceLoop(g *grid.Grid, rule Rule, start State, opts ...Option) (*Loop, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(start.Pos) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}

	seen := map[grid.Position]struct{}{start.Pos: {}}
	path := []grid.Position{start.Pos}
	pos, dir := start.Pos, start.Dir
	for {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		next, ok := g.Step(pos, dir)
		if !ok {
			return nil, fmt.Errorf("%w: left the grid at %v heading %v", ErrBrokenLoop, pos, dir)
		}
		if next == start.Pos {
			if err := closes(g, rule, start, dir); err != nil {
				return nil, err
			}
			break
		}
		if _, dup := seen[next]; dup {
			return nil, fmt.Errorf("%w: revisited %v", ErrBrokenLoop, next)
		}
		tile, _ := g.Lookup(next)
		outs, err := rule(tile, dir)
		if err != nil {
			return nil, fmt.Errorf("%w: at %v: %w", ErrBrokenLoop, next, err)
		}
		if len(outs) != 1 {
			return nil, fmt.Errorf("%w: %d exits at %v", ErrBrokenLoop, len(outs), next)
		}
		state := State{Pos: next, Dir: dir}
		if err := o.OnVisit(state); err != nil {
			return nil, fmt.Errorf("traverse: OnVisit error at %v: %w", state, err)
		}
		seen[next] = struct{}{}
		path = append(path, next)
		if o.MaxStates > 0 && len(path) > o.MaxStates {
			return nil, fmt.Errorf("%w: %d", ErrStateLimit, o.MaxStates)
		}
		pos, dir = next, outs[0]
	}

	return &Loop{Path: path}, nil
}

// closes checks that re-entering the start tile with heading dir leads back
// out along start.Dir.
func closes(g *grid.Grid, rule Rule, start State, dir grid.Direction) error {
	tile, _ := g.Lookup(start.Pos)
	outs, err := rule(tile, dir)
	if err != nil {
		return fmt.Errorf("%w: at start %v: %w", ErrBrokenLoop, start.Pos, err)
	}
	if len(outs) != 1 || outs[0] != start.Dir {
		return fmt.Errorf("%w: start %v does not lead back out %v", ErrBrokenLoop, start.Pos, start.Dir)
	}
	return nil
}
