package cycle

import (
	"errors"
	"fmt"
)

// DefaultMinOccurrences is the number of evenly spaced occurrences
// required before a cycle is trusted.
const DefaultMinOccurrences = 4

var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cycle: invalid option supplied")
	// ErrNotRecorded is returned when a requested index has no snapshot.
	ErrNotRecorded = errors.New("cycle: index not recorded")
)

// Cycle describes a periodic tail: for every i >= Start,
// snapshot[i] == snapshot[i+Period].
type Cycle struct {
	Start  int
	Period int
}

// Index maps step index n onto the earliest recorded index holding the
// same snapshot: n itself before the cycle starts, otherwise
// Start + (n-Start) mod Period. Indices are zero-based, matching
// Detector history.
func (c Cycle) Index(n int) int {
	if n < c.Start || c.Period <= 0 {
		return n
	}
	return c.Start + (n-c.Start)%c.Period
}

func (c Cycle) String() string {
	return fmt.Sprintf("start=%d period=%d", c.Start, c.Period)
}

// Option configures a Detector.
type Option func(*Options)

// Options holds Detector parameters.
type Options struct {
	// MinOccurrences is how many evenly spaced occurrences of one value
	// confirm a cycle. Must be at least 2.
	MinOccurrences int

	err error
}

// WithMinOccurrences sets the confirmation threshold.
// k < 2 is invalid → ErrOptionViolation.
func WithMinOccurrences(k int) Option {
	return func(o *Options) {
		if k < 2 {
			o.err = fmt.Errorf("%w: MinOccurrences must be >= 2 (%d)", ErrOptionViolation, k)
			return
		}
		o.MinOccurrences = k
	}
}

// Detector watches a growing sequence of comparable snapshots.
// It is not safe for concurrent use.
type Detector[T comparable] struct {
	minOcc  int
	history []T
	seen    map[T][]int
}

// NewDetector builds an empty Detector.
func NewDetector[T comparable](opts ...Option) (*Detector[T], error) {
	o := Options{MinOccurrences: DefaultMinOccurrences}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Detector[T]{
		minOcc: o.MinOccurrences,
		seen:   make(map[T][]int),
	}, nil
}

// Observe appends v at index Len() and reports a cycle once v confirms one.
// Only the last MinOccurrences occurrences of v must be evenly spaced;
// earlier occurrences are ignored, so a stray repeat in a transient prefix
// does not hide a cycle that settles in later. The reported Start is the
// first occurrence in that trailing window.
func (d *Detector[T]) Observe(v T) (Cycle, bool) {
	i := len(d.history)
	d.history = append(d.history, v)
	occ := append(d.seen[v], i)
	d.seen[v] = occ

	if len(occ) < d.minOcc {
		return Cycle{}, false
	}
	run := occ[len(occ)-d.minOcc:]
	period := run[1] - run[0]
	for j := 2; j < len(run); j++ {
		if run[j]-run[j-1] != period {
			return Cycle{}, false
		}
	}
	return Cycle{Start: run[0], Period: period}, true
}

// Len returns the number of recorded snapshots.
func (d *Detector[T]) Len() int { return len(d.history) }

// History returns the recorded snapshots. The slice must not be modified.
func (d *Detector[T]) History() []T { return d.history }

// At returns the snapshot recorded at index i.
func (d *Detector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(d.history) {
		var zero T
		return zero, fmt.Errorf("%w: %d of %d", ErrNotRecorded, i, len(d.history))
	}
	return d.history[i], nil
}

// Extrapolate returns the snapshot at step n according to c.
func (d *Detector[T]) Extrapolate(c Cycle, n int) (T, error) {
	return d.At(c.Index(n))
}

// Detect feeds seq to a fresh Detector and returns the first confirmed cycle.
func Detect[T comparable](seq []T, opts ...Option) (Cycle, bool, error) {
	d, err := NewDetector[T](opts...)
	if err != nil {
		return Cycle{}, false, err
	}
	for _, v := range seq {
		if c, ok := d.Observe(v); ok {
			return c, true, nil
		}
	}
	return Cycle{}, false, nil
}
