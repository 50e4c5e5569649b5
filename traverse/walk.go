package traverse

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
)

// walker encapsulates mutable walk state. It lives for one Walk call.
type walker struct {
	grid    *grid.Grid
	rule    Rule
	opts    Options
	work    []State
	visited map[State]struct{}
	res     *Result
}

// Walk expands every state reachable from starts under rule.
// Start states are recorded as visited; starts repeated in the slice are
// recorded once.
// Returns ErrGridNil, ErrNoStart, ErrStartOutOfBounds for invalid input,
// ErrOptionViolation for bad options, ErrStateLimit when WithMaxStates is
// exceeded, the rule's error wrapped with the failing state, or the
// context's error on cancellation.
func Walk(g *grid.Grid, rule Rule, starts []State, opts ...Option) (*Result, error) {
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
	if len(starts) == 0 {
		return nil, ErrNoStart
	}
	for _, s := range starts {
		if !g.InBounds(s.Pos) {
			return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, s)
		}
	}

	capacity := g.Width() * g.Height()
	w := &walker{
		grid:    g,
		rule:    rule,
		opts:    o,
		work:    make([]State, 0, len(starts)),
		visited: make(map[State]struct{}, capacity),
		res:     &Result{Order: make([]State, 0, capacity)},
	}
	for _, s := range starts {
		if err := w.record(s); err != nil {
			return nil, err
		}
	}
	if err := w.loop(); err != nil {
		return nil, err
	}
	w.res.Visited = w.visited

	return w.res, nil
}

// record marks s visited, runs OnVisit, and pushes s onto the worklist.
// Already-visited states are ignored.
func (w *walker) record(s State) error {
	if _, seen := w.visited[s]; seen {
		return nil
	}
	if w.opts.MaxStates > 0 && len(w.visited) >= w.opts.MaxStates {
		return fmt.Errorf("%w: %d", ErrStateLimit, w.opts.MaxStates)
	}
	w.visited[s] = struct{}{}
	w.res.Order = append(w.res.Order, s)
	if err := w.opts.OnVisit(s); err != nil {
		return fmt.Errorf("traverse: OnVisit error at %v: %w", s, err)
	}
	w.work = append(w.work, s)
	return nil
}

// pop removes the next state according to the configured Order.
func (w *walker) pop() State {
	var s State
	if w.opts.Order == LIFO {
		s = w.work[len(w.work)-1]
		w.work = w.work[:len(w.work)-1]
	} else {
		s = w.work[0]
		w.work = w.work[1:]
	}
	return s
}

// loop drains the worklist, expanding each state through the rule.
func (w *walker) loop() error {
	for len(w.work) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		s := w.pop()
		tile, _ := w.grid.Lookup(s.Pos)
		outs, err := w.rule(tile, s.Dir)
		if err != nil {
			return fmt.Errorf("traverse: at %v: %w", s, err)
		}
		for _, d := range outs {
			next, ok := w.grid.Step(s.Pos, d)
			if !ok {
				continue
			}
			if err := w.record(State{Pos: next, Dir: d}); err != nil {
				return err
			}
		}
	}
	return nil
}
