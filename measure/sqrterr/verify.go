package sqrterr

import (
	"context"
	"fmt"
	"slices"

	"github.com/zaitcev/airspy-yoga/dsp/isqrt"
)

// DefaultSamples are the inputs printed with per-segment detail.
var DefaultSamples = []uint32{5, 50, 500, 5000, 50000, 500000, 5000000}

// Config holds verifier parameters.
type Config struct {
	// Samples are diagnosed individually, in the given order.
	Samples []uint32
	// Workers is the sweep parallelism. 1 runs the sweep on the calling
	// goroutine; 0 uses runtime.GOMAXPROCS(0).
	Workers int
}

// DefaultConfig returns the default samples and a sequential sweep.
func DefaultConfig() Config {
	return Config{
		Samples: slices.Clone(DefaultSamples),
		Workers: 1,
	}
}

// Sample is the evaluation of a single input with its segment indices.
type Sample struct {
	Input         uint32
	Hi, Mid, Lo   uint32
	Approx, Exact uint32
	Ratio         float64
}

// Diagnose evaluates each input in xs.
func Diagnose(t *isqrt.Tables, xs []uint32) []Sample {
	l := t.Layout()
	out := make([]Sample, len(xs))

	for i, x := range xs {
		hi, mid, lo := l.Split(x)
		approx, exact := t.Approx(x), isqrt.Floor(uint64(x))
		out[i] = Sample{
			Input:  x,
			Hi:     hi,
			Mid:    mid,
			Lo:     lo,
			Approx: approx,
			Exact:  exact,
			Ratio:  Ratio(approx, exact),
		}
	}

	return out
}

// Report is the full generator output for one set of tables.
type Report struct {
	Tables  *isqrt.Tables
	Samples []Sample
	Result  Accumulator
}

// Verify diagnoses the configured samples and sweeps the whole input range.
func Verify(ctx context.Context, t *isqrt.Tables, cfg Config) (*Report, error) {
	if t == nil {
		return nil, ErrNilTables
	}

	rep := &Report{
		Tables:  t,
		Samples: Diagnose(t, cfg.Samples),
	}

	var (
		acc Accumulator
		err error
	)
	if cfg.Workers == 1 {
		acc, err = sweepChunked(ctx, t, 0, uint64(t.Layout().Max())+1)
		if err != nil {
			err = fmt.Errorf("sqrterr: sweep: %w", err)
		}
	} else {
		acc, err = SweepParallel(ctx, t, cfg.Workers)
	}
	if err != nil {
		return nil, err
	}
	rep.Result = acc

	return rep, nil
}
