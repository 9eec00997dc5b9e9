// Command sqrtgen builds the segmented square-root tables for one input
// width, checks them against the exact root over every representable input
// and prints the tables followed by the diagnostics.
//
// Usage:
//
//	sqrtgen [flags]
//
// Output, one item per line:
//
//	<value> <mask>      every high table entry, then every mid table entry
//	<value>             every low table entry
//	<x>(0x<x>=[<hi>,<mid>,<lo>]): <approx> (<exact> <ratio>)
//	smallest fraction <ratio> asqrt(<x>)=<approx> vs <exact>
//	largest fraction <ratio> asqrt(<x>)=<approx> vs <exact>
//
// Examples:
//
//	sqrtgen
//	sqrtgen -bits 24 -workers 8 -o sqrt24.txt
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/zaitcev/airspy-yoga/dsp/isqrt"
	"github.com/zaitcev/airspy-yoga/internal/cli"
	"github.com/zaitcev/airspy-yoga/measure/sqrterr"
)

const (
	tool  = "sqrtgen"
	usage = "[-bits 23|24] [-workers n] [-o outfile] [-v]"
)

var errBits = errors.New("input width must be 23 or 24")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func layoutFor(bits int) (isqrt.Layout, error) {
	switch bits {
	case 23:
		return isqrt.Layout23(), nil
	case 24:
		return isqrt.Layout24(), nil
	default:
		return isqrt.Layout{}, fmt.Errorf("%w: got %d", errBits, bits)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(tool, flag.ContinueOnError)
	fs.SetOutput(stderr)
	bits := fs.Int("bits", 23, "input width in bits (23 or 24)")
	workers := fs.Int("workers", 1, "sweep workers (0 = one per CPU)")
	outName := fs.String("o", "", "output file (default stdout)")
	verbose := fs.Bool("v", false, "log progress to stderr")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if fs.NArg() != 0 {
		return cli.Fail(stderr, tool, usage, errors.New("positional parameter supplied"))
	}

	log := cli.NewLogger(stderr, *verbose)

	layout, err := layoutFor(*bits)
	if err != nil {
		return cli.Fail(stderr, tool, usage, err)
	}

	tables, err := isqrt.NewTables(layout)
	if err != nil {
		return cli.Fail(stderr, tool, "", err)
	}
	log.Debug("tables built",
		"width", layout.Width,
		"high", layout.High, "mid", layout.Mid, "low", layout.Low,
		"overrides", []int{layout.HighOverrides, layout.MidOverrides})

	cfg := sqrterr.DefaultConfig()
	cfg.Workers = *workers

	start := time.Now()
	rep, err := sqrterr.Verify(ctx, tables, cfg)
	if err != nil {
		return cli.Fail(stderr, tool, "", err)
	}
	log.Info("sweep done",
		"inputs", rep.Result.Count,
		"min_ratio", rep.Result.Min.Ratio,
		"max_ratio", rep.Result.Max.Ratio,
		"elapsed", time.Since(start))

	mono, err := sqrterr.Monotonicity(ctx, tables)
	if err != nil {
		return cli.Fail(stderr, tool, "", err)
	}
	if mono.Steps > 0 {
		log.Warn("approximation is not monotonic",
			"steps", mono.Steps, "first", mono.First, "from", mono.Prev, "to", mono.Next)
	}

	out, err := cli.Output(*outName, stdout)
	if err != nil {
		return cli.Fail(stderr, tool, "", err)
	}

	if _, err := rep.WriteTo(out); err != nil {
		_ = out.Close()
		return cli.Fail(stderr, tool, "", fmt.Errorf("write report: %w", err))
	}

	if err := out.Close(); err != nil {
		return cli.Fail(stderr, tool, "", err)
	}

	return 0
}
