package sqrterr

import (
	"context"
	"fmt"
	"runtime"

	"github.com/zaitcev/airspy-yoga/dsp/isqrt"
	"golang.org/x/sync/errgroup"
)

// chunkSize is the number of inputs evaluated between context checks.
const chunkSize = 1 << 16

// Sweep evaluates every input of the tables' layout in increasing order.
func Sweep(t *isqrt.Tables) Accumulator {
	return SweepRange(t, 0, uint64(t.Layout().Max())+1)
}

// SweepRange evaluates the inputs in [lo, hi) in increasing order.
func SweepRange(t *isqrt.Tables, lo, hi uint64) Accumulator {
	acc := NewAccumulator()
	for x := lo; x < hi; x++ {
		v := uint32(x)
		acc = acc.Observe(v, t.Approx(v), isqrt.Floor(x))
	}
	return acc
}

// sweepChunked is SweepRange with a context check every chunkSize inputs.
func sweepChunked(ctx context.Context, t *isqrt.Tables, lo, hi uint64) (Accumulator, error) {
	acc := NewAccumulator()
	for start := lo; start < hi; start += chunkSize {
		if err := ctx.Err(); err != nil {
			return Accumulator{}, err
		}
		acc = acc.Merge(SweepRange(t, start, min(start+chunkSize, hi)))
	}
	return acc, nil
}

// SweepParallel evaluates every input using the given number of workers.
// Zero workers means runtime.GOMAXPROCS(0). The result is identical to
// [Sweep] for any worker count.
func SweepParallel(ctx context.Context, t *isqrt.Tables, workers int) (Accumulator, error) {
	if t == nil {
		return Accumulator{}, ErrNilTables
	}

	if workers < 0 {
		return Accumulator{}, fmt.Errorf("%w: got %d", ErrWorkers, workers)
	}

	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	total := uint64(t.Layout().Max()) + 1
	if uint64(workers) > total {
		workers = int(total)
	}

	parts := make([]Accumulator, workers)
	g, ctx := errgroup.WithContext(ctx)

	for i := range workers {
		lo := total * uint64(i) / uint64(workers)
		hi := total * uint64(i+1) / uint64(workers)

		g.Go(func() error {
			acc, err := sweepChunked(ctx, t, lo, hi)
			if err != nil {
				return err
			}
			parts[i] = acc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Accumulator{}, fmt.Errorf("sqrterr: sweep: %w", err)
	}

	acc := NewAccumulator()
	for _, p := range parts {
		acc = acc.Merge(p)
	}

	return acc, nil
}

// MonotonicityReport describes the steps where the approximation decreases
// as the input increases.
type MonotonicityReport struct {
	Steps uint64 // number of x with Approx(x) < Approx(x-1)
	First uint32 // first such x, valid when Steps > 0
	Prev  uint32 // Approx(First-1)
	Next  uint32 // Approx(First)
}

// Monotonicity scans every input once and reports decreasing steps. The
// segment boundaries do not guarantee monotonic output, so this is measured
// rather than assumed. The scan stops early if ctx is canceled.
func Monotonicity(ctx context.Context, t *isqrt.Tables) (MonotonicityReport, error) {
	if t == nil {
		return MonotonicityReport{}, ErrNilTables
	}

	var rep MonotonicityReport

	limit := uint64(t.Layout().Max())
	prev := t.Approx(0)
	for x := uint64(1); x <= limit; x++ {
		if x%chunkSize == 1 {
			if err := ctx.Err(); err != nil {
				return MonotonicityReport{}, fmt.Errorf("sqrterr: monotonicity: %w", err)
			}
		}

		cur := t.Approx(uint32(x))
		if cur < prev {
			if rep.Steps == 0 {
				rep.First, rep.Prev, rep.Next = uint32(x), prev, cur
			}
			rep.Steps++
		}
		prev = cur
	}

	return rep, nil
}
