package traverse

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
)

// Sentinel errors for traversal.
var (
	// ErrGridNil is returned when a nil grid is passed.
	ErrGridNil = errors.New("traverse: grid is nil")
	// ErrNoStart is returned when Walk receives no start states.
	ErrNoStart = errors.New("traverse: no start state")
	// ErrStartOutOfBounds is returned when a start state lies outside the grid.
	ErrStartOutOfBounds = errors.New("traverse: start state out of bounds")
	// ErrStateLimit is returned when WithMaxStates is exceeded.
	ErrStateLimit = errors.New("traverse: state limit exceeded")
	// ErrBrokenLoop is returned when TraceLoop cannot close the loop.
	ErrBrokenLoop = errors.New("traverse: loop is broken")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")
)

// State is a cursor: a position plus the heading it was entered with.
type State struct {
	Pos grid.Position
	Dir grid.Direction
}

func (s State) String() string {
	return fmt.Sprintf("%v→%v", s.Pos, s.Dir)
}

// Rule maps the tile under a cursor and the cursor's heading to the
// headings it leaves with. An empty result ends that path; an error aborts
// the walk.
type Rule func(tile byte, travel grid.Direction) ([]grid.Direction, error)

// Order selects how the worklist is consumed.
type Order int

const (
	// FIFO expands states breadth-first.
	FIFO Order = iota
	// LIFO expands states depth-first.
	LIFO
)

// Option configures Walk and TraceLoop via functional arguments.
type Option func(*Options)

// Options holds walk parameters and hooks.
type Options struct {
	// Ctx allows cancellation; checked once per expanded state.
	Ctx context.Context

	// Order is the worklist discipline. Default FIFO.
	Order Order

	// OnVisit is called once per state when it is first recorded.
	// Returning an error aborts the walk.
	OnVisit func(s State) error

	// MaxStates, if > 0, aborts with ErrStateLimit once more states
	// than this have been recorded.
	MaxStates int

	err error
}

// DefaultOptions returns Options with a background context, FIFO order,
// no hook, and no state limit.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Order:   FIFO,
		OnVisit: func(State) error { return nil },
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOrder selects FIFO or LIFO expansion.
func WithOrder(order Order) Option {
	return func(o *Options) {
		switch order {
		case FIFO, LIFO:
			o.Order = order
		default:
			o.err = fmt.Errorf("%w: unknown order %d", ErrOptionViolation, order)
		}
	}
}

// WithOnVisit registers a hook run for every newly recorded state.
func WithOnVisit(fn func(s State) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxStates caps the number of recorded states.
//
//	n > 0:  limit to n states
//	n == 0: no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// Result holds the outcome of a Walk.
//   - Visited: every state recorded, start states included.
//   - Order: states in the order they were recorded.
type Result struct {
	Visited map[State]struct{}
	Order   []State
}

// Positions collapses Visited to the set of distinct positions.
func (r *Result) Positions() map[grid.Position]struct{} {
	out := make(map[grid.Position]struct{}, len(r.Visited))
	for s := range r.Visited {
		out[s.Pos] = struct{}{}
	}
	return out
}

// Loop is the closed path found by TraceLoop, in walk order, beginning at
// the start position. The start is not repeated at the end.
type Loop struct {
	Path []grid.Position
}
