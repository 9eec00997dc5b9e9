// Command firresp prints the magnitude response of the built-in FIR
// bandpass as "<frequency> <|H(f)|>" lines.
//
// Usage:
//
//	firresp [-o outfile] [-s fs] [-n points] [-fft] [-db]
//
// Frequencies run from 0 to fs in n equal steps (fs excluded). The -fft
// flag evaluates the points with one FFT instead of direct summation and
// needs n to be a power of two. The -db flag prints 20*log10|H(f)|.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/zaitcev/airspy-yoga/dsp/filter/fir"
	"github.com/zaitcev/airspy-yoga/internal/cli"
)

const (
	tool  = "firresp"
	usage = "[-o outfile] [-s Fs] [-n points] [-fft] [-db]"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(tool, flag.ContinueOnError)
	fs.SetOutput(stderr)
	outName := fs.String("o", "", "output file (default stdout)")
	rate := fs.Float64("s", 1.0e6, "sampling frequency in Hz (1e6 for RTL-SDR, 1e7 or 2e7 for AirSpy)")
	points := fs.Int("n", 200, "number of response points")
	useFFT := fs.Bool("fft", false, "evaluate with an FFT (points must be a power of two)")
	inDB := fs.Bool("db", false, "print the magnitude in dB")
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

	log := cli.NewLogger(stderr, *verbose)
	filter := fir.New(fir.DefaultBandpass)

	freqs, err := fir.Frequencies(*points, *rate)
	if err != nil {
		return cli.Fail(stderr, tool, usage, err)
	}

	var mag []float64
	if *useFFT {
		mag, err = filter.MagnitudeResponseFFT(*points)
	} else {
		mag, err = filter.MagnitudeResponse(*points)
	}
	if err != nil {
		return cli.Fail(stderr, tool, usage, err)
	}

	if *inDB {
		for k := range mag {
			if *useFFT {
				mag[k] = 20 * math.Log10(mag[k])
			} else {
				mag[k] = filter.MagnitudeDB(freqs[k], *rate)
			}
		}
	}
	log.Debug("response computed", "taps", filter.Order()+1, "points", *points, "fs", *rate, "fft", *useFFT, "db", *inDB)

	out, err := cli.Output(*outName, stdout)
	if err != nil {
		return cli.Fail(stderr, tool, "", err)
	}

	bw := bufio.NewWriter(out)
	for k := range mag {
		_, _ = fmt.Fprintf(bw, "%f %f\n", freqs[k], mag[k])
	}

	if err := bw.Flush(); err != nil {
		_ = out.Close()
		return cli.Fail(stderr, tool, "", fmt.Errorf("write response: %w", err))
	}

	if err := out.Close(); err != nil {
		return cli.Fail(stderr, tool, "", err)
	}

	return 0
}
