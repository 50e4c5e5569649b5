// Package race solves the toy-boat race: holding the button for h of T
// milliseconds moves the boat h×(T-h) millimetres; count the hold times
// that beat the record.
package race

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridwalk/grid"
)

// ErrMalformed indicates the race sheet cannot be read.
var ErrMalformed = errors.New("race: malformed input")

// Race is one race: its duration and the distance to beat.
type Race struct {
	Time   int64
	Record int64
}

// Window is the inclusive range of winning hold times.
type Window struct {
	Lo, Hi int64
}

// Count returns the number of hold times in w.
func (w Window) Count() int64 { return w.Hi - w.Lo + 1 }

// Parse reads a sheet of the form
//
//	Time:      7  15   30
//	Distance:  9  40  200
//
// with one race per column.
func Parse(text string) ([]Race, error) {
	times, records, err := fields(text)
	if err != nil {
		return nil, err
	}
	if len(times) != len(records) {
		return nil, fmt.Errorf("%w: %d times but %d distances", ErrMalformed, len(times), len(records))
	}
	races := make([]Race, len(times))
	for i := range times {
		if races[i].Time, err = number(times[i]); err != nil {
			return nil, err
		}
		if races[i].Record, err = number(records[i]); err != nil {
			return nil, err
		}
	}
	return races, nil
}

// ParseJoined reads the same sheet as a single race whose numbers are the
// columns' digits run together.
func ParseJoined(text string) (Race, error) {
	times, records, err := fields(text)
	if err != nil {
		return Race{}, err
	}
	var r Race
	if r.Time, err = number(strings.Join(times, "")); err != nil {
		return Race{}, err
	}
	if r.Record, err = number(strings.Join(records, "")); err != nil {
		return Race{}, err
	}
	return r, nil
}

func fields(text string) (times, records []string, err error) {
	lines := grid.Lines(text)
	if len(lines) != 2 {
		return nil, nil, fmt.Errorf("%w: want 2 lines, got %d", ErrMalformed, len(lines))
	}
	t, ok := strings.CutPrefix(lines[0], "Time:")
	if !ok {
		return nil, nil, fmt.Errorf("%w: missing Time: line", ErrMalformed)
	}
	d, ok := strings.CutPrefix(lines[1], "Distance:")
	if !ok {
		return nil, nil, fmt.Errorf("%w: missing Distance: line", ErrMalformed)
	}
	times, records = strings.Fields(t), strings.Fields(d)
	if len(times) == 0 {
		return nil, nil, fmt.Errorf("%w: no races", ErrMalformed)
	}
	return times, records, nil
}

func number(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: bad number %q", ErrMalformed, s)
	}
	return n, nil
}

// beats reports whether holding for h beats r's record.
func (r Race) beats(h int64) bool {
	return h > 0 && h < r.Time && h*(r.Time-h) > r.Record
}

// WinningHolds returns the window of hold times that beat the record.
// The boundaries are the roots of h² - T·h + D = 0, nudged onto the
// integers that strictly beat D. ok is false when the quadratic has no
// real roots or no integer lies strictly between them.
func WinningHolds(r Race) (Window, bool) {
	t, d := float64(r.Time), float64(r.Record)
	disc := t*t - 4*d
	if disc < 0 {
		return Window{}, false
	}
	root := math.Sqrt(disc)
	lo := int64(math.Floor((t-root)/2)) + 1
	hi := int64(math.Ceil((t+root)/2)) - 1

	// Float rounding can leave either bound one step off.
	for lo > 1 && r.beats(lo-1) {
		lo--
	}
	for lo <= hi && !r.beats(lo) {
		lo++
	}
	for hi < r.Time-1 && r.beats(hi+1) {
		hi++
	}
	for hi >= lo && !r.beats(hi) {
		hi--
	}
	if lo > hi {
		return Window{}, false
	}
	return Window{Lo: lo, Hi: hi}, true
}

// Margin multiplies the winning-hold counts of races. A race that cannot
// be won contributes zero.
func Margin(races []Race) int64 {
	m := int64(1)
	for _, r := range races {
		w, ok := WinningHolds(r)
		if !ok {
			return 0
		}
		m *= w.Count()
	}
	return m
}
