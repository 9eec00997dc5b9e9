// Package pythag generates lookup tables of sqrt(i^2 + q^2) for pairs of
// offset-binary samples, as produced by 8 to 12 bit SDR front ends.
//
// A sample v in [0, 2^bits) stands for the signed value v - 2^(bits-1).
package pythag

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/zaitcev/airspy-yoga/dsp/isqrt"
)

// Supported sample widths.
const (
	MinBits = 7
	MaxBits = 12
)

// ErrBits is returned for sample widths outside [MinBits, MaxBits].
var ErrBits = errors.New("pythag: number of bits must be 7 .. 12")

// Mode selects the table contents.
type Mode int

const (
	// ModeDistance emits floor(sqrt(i^2 + q^2)) for every sample pair.
	ModeDistance Mode = iota
	// ModeSqrt emits floor(sqrt(v)) for every unsigned v.
	ModeSqrt
)

// Distance returns floor(sqrt(i^2 + q^2)) for offset-binary samples i, q.
func Distance(bits int, i, q uint32) uint32 {
	zero := int64(1) << uint(bits-1)
	di, dq := int64(i)-zero, int64(q)-zero
	return isqrt.Floor(uint64(di*di + dq*dq))
}

// Len returns the number of table entries for the given width and mode.
func Len(bits int, mode Mode) int {
	n := 1 << uint(bits)
	if mode == ModeDistance {
		return n * n
	}
	return n
}

// Validate reports whether bits is a supported sample width.
func Validate(bits int) error {
	if bits < MinBits || bits > MaxBits {
		return fmt.Errorf("%w: got %d", ErrBits, bits)
	}
	return nil
}

// Table returns the table in row-major order (i outer, q inner).
func Table(bits int, mode Mode) ([]uint32, error) {
	if err := Validate(bits); err != nil {
		return nil, err
	}

	n := uint32(1) << uint(bits)
	out := make([]uint32, 0, Len(bits, mode))

	if mode == ModeSqrt {
		for v := range n {
			out = append(out, isqrt.Floor(uint64(v)))
		}
		return out, nil
	}

	for i := range n {
		for q := range n {
			out = append(out, Distance(bits, i, q))
		}
	}

	return out, nil
}

// WriteC streams the table to w as a brace-enclosed C initializer, one
// value per line. Distance tables carry a "// i" comment before each row.
func WriteC(w io.Writer, bits int, mode Mode) error {
	if err := Validate(bits); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	n := uint32(1) << uint(bits)
	var line []byte

	entry := func(v uint32, last bool) {
		line = append(line[:0], "  "...)
		line = strconv.AppendUint(line, uint64(v), 10)
		if !last {
			line = append(line, ',')
		}
		line = append(line, '\n')
		_, _ = bw.Write(line)
	}

	_, _ = bw.WriteString("{\n")

	if mode == ModeSqrt {
		for v := range n {
			entry(isqrt.Floor(uint64(v)), v == n-1)
		}
	} else {
		for i := range n {
			line = append(line[:0], "  // "...)
			line = strconv.AppendUint(line, uint64(i), 10)
			line = append(line, '\n')
			_, _ = bw.Write(line)
			for q := range n {
				entry(Distance(bits, i, q), i == n-1 && q == n-1)
			}
		}
	}

	_, _ = bw.WriteString("}\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("pythag: write table: %w", err)
	}

	return nil
}
