// Command pythagen prints a C initializer for a table of
// floor(sqrt(i^2 + q^2)) over all pairs of offset-binary samples.
//
// Usage:
//
//	pythagen [-b nbits] [-s] [-o outfile]
//
// With -s the table is floor(sqrt(v)) over unsigned v instead.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/zaitcev/airspy-yoga/dsp/pythag"
	"github.com/zaitcev/airspy-yoga/internal/cli"
)

const (
	tool  = "pythagen"
	usage = "[-b nbits] [-s] [-o outfile]"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(tool, flag.ContinueOnError)
	fs.SetOutput(stderr)
	bits := fs.Int("b", 12, "sample width in bits (7 .. 12)")
	naked := fs.Bool("s", false, "emit a plain sqrt table instead of distances")
	outName := fs.String("o", "", "output file (default stdout)")
	verbose := fs.Bool("v", false, "log to stderr")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if fs.NArg() != 0 {
		return cli.Fail(stderr, tool, usage, errors.New("positional parameter supplied"))
	}

	mode := pythag.ModeDistance
	if *naked {
		mode = pythag.ModeSqrt
	}

	if err := pythag.Validate(*bits); err != nil {
		return cli.Fail(stderr, tool, usage, err)
	}

	log := cli.NewLogger(stderr, *verbose)

	out, err := cli.Output(*outName, stdout)
	if err != nil {
		return cli.Fail(stderr, tool, "", err)
	}

	start := time.Now()
	if err := pythag.WriteC(out, *bits, mode); err != nil {
		_ = out.Close()
		return cli.Fail(stderr, tool, "", err)
	}
	log.Debug("table written", "bits", *bits, "entries", pythag.Len(*bits, mode), "elapsed", time.Since(start))

	if err := out.Close(); err != nil {
		return cli.Fail(stderr, tool, "", fmt.Errorf("close output: %w", err))
	}

	return 0
}
