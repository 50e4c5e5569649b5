package almanac

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridwalk/internal/ctxlog"
)

// Defaults for LowestInRanges.
const (
	DefaultWorkers   = 4
	DefaultChunkSize = 100_000
)

// cancelEvery is how many seeds a worker resolves between context checks.
const cancelEvery = 1 << 12

// Option configures LowestInRanges.
type Option func(*Options)

// Options holds scan parameters.
type Options struct {
	// Workers bounds the goroutines scanning chunks at once.
	Workers int
	// ChunkSize is the most seeds one chunk covers.
	ChunkSize int64

	err error
}

// WithWorkers sets the worker bound. n < 1 → ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithChunkSize sets the chunk length. n < 1 → ErrOptionViolation.
func WithChunkSize(n int64) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: chunk size must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.ChunkSize = n
	}
}

// chunk is a half-open run of seeds [start, start+n).
type chunk struct {
	start, n int64
}

// chunks reads the seed list as (start, length) pairs and cuts each range
// into runs of at most size seeds.
func (a *Almanac) chunks(size int64) ([]chunk, error) {
	if len(a.Seeds) == 0 {
		return nil, ErrNoSeeds
	}
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: %d seed numbers do not form pairs", ErrMalformed, len(a.Seeds))
	}
	var out []chunk
	for i := 0; i < len(a.Seeds); i += 2 {
		start, n := a.Seeds[i], a.Seeds[i+1]
		for off := int64(0); off < n; off += size {
			out = append(out, chunk{start: start + off, n: min(size, n-off)})
		}
	}
	return out, nil
}

// LowestInRanges treats the seed list as (start, length) pairs and returns
// the lowest location over every seed they cover. Each range is split into
// chunks that workers scan independently; every chunk writes only its own
// result slot and the slots are reduced with min once all workers finish.
// Returns ErrNoSeeds, ErrMalformed for an odd seed list, ErrOptionViolation,
// or the context's error on cancellation.
func (a *Almanac) LowestInRanges(ctx context.Context, opts ...Option) (int64, error) {
	o := Options{Workers: DefaultWorkers, ChunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}
	chunks, err := a.chunks(o.ChunkSize)
	if err != nil {
		return 0, err
	}

	ctxlog.FromContext(ctx).Debug("almanac: scanning seed ranges",
		"chunks", len(chunks), "workers", o.Workers)

	results := make([]int64, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, c := range chunks {
		i, c := i, c
		g.Go(func() error {
			best := int64(math.MaxInt64)
			for k := int64(0); k < c.n; k++ {
				if k%cancelEvery == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				best = min(best, a.Location(c.start+k))
			}
			results[i] = best
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	if len(results) == 0 {
		return 0, fmt.Errorf("%w: every seed range is empty", ErrNoSeeds)
	}
	best := results[0]
	for _, r := range results[1:] {
		best = min(best, r)
	}
	return best, nil
}
