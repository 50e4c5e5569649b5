// Package almanac resolves seeds through a chain of interval maps
// (seed → soil → … → location) and finds the lowest location, either for
// single seeds or for whole seed ranges scanned in parallel.
package almanac

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridwalk/grid"
)

var (
	// ErrMalformed indicates the almanac text cannot be read.
	ErrMalformed = errors.New("almanac: malformed input")
	// ErrNoSeeds indicates there is nothing to resolve.
	ErrNoSeeds = errors.New("almanac: no seeds")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("almanac: invalid option supplied")
)

// Range sends [Src, Src+Len) to [Dst, Dst+Len).
type Range struct {
	Dst, Src, Len int64
}

// Map is one stage of the chain. Values outside every range pass through.
type Map struct {
	Name   string
	Ranges []Range
}

// Apply maps v through m. Ranges are half-open: Src+Len is not covered.
func (m Map) Apply(v int64) int64 {
	for _, r := range m.Ranges {
		if v >= r.Src && v-r.Src < r.Len {
			return r.Dst + (v - r.Src)
		}
	}
	return v
}

// Almanac is the seed list and the map chain in file order.
type Almanac struct {
	Seeds []int64
	Maps  []Map
}

// Parse reads
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	...
func Parse(text string) (*Almanac, error) {
	lines := grid.Lines(text)
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrMalformed)
	}
	head, ok := strings.CutPrefix(lines[0], "seeds:")
	if !ok {
		return nil, fmt.Errorf("%w: missing seeds: line", ErrMalformed)
	}
	a := &Almanac{}
	for _, f := range strings.Fields(head) {
		n, err := number(f)
		if err != nil {
			return nil, err
		}
		a.Seeds = append(a.Seeds, n)
	}

	var cur *Map
	for i, line := range lines[1:] {
		switch {
		case line == "":
			cur = nil
		case strings.HasSuffix(line, " map:"):
			a.Maps = append(a.Maps, Map{Name: strings.TrimSuffix(line, " map:")})
			cur = &a.Maps[len(a.Maps)-1]
		case cur == nil:
			return nil, fmt.Errorf("%w: line %d: range outside a map", ErrMalformed, i+2)
		default:
			f := strings.Fields(line)
			if len(f) != 3 {
				return nil, fmt.Errorf("%w: line %d: want 3 numbers, got %q", ErrMalformed, i+2, line)
			}
			var r Range
			var err error
			if r.Dst, err = number(f[0]); err != nil {
				return nil, err
			}
			if r.Src, err = number(f[1]); err != nil {
				return nil, err
			}
			if r.Len, err = number(f[2]); err != nil {
				return nil, err
			}
			cur.Ranges = append(cur.Ranges, r)
		}
	}
	return a, nil
}

func number(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: bad number %q", ErrMalformed, s)
	}
	return n, nil
}

// Location resolves seed through every map in order.
func (a *Almanac) Location(seed int64) int64 {
	v := seed
	for _, m := range a.Maps {
		v = m.Apply(v)
	}
	return v
}

// LowestLocation returns the lowest location of any listed seed.
func (a *Almanac) LowestLocation() (int64, error) {
	if len(a.Seeds) == 0 {
		return 0, ErrNoSeeds
	}
	best := a.Location(a.Seeds[0])
	for _, s := range a.Seeds[1:] {
		best = min(best, a.Location(s))
	}
	return best, nil
}
