package isqrt

import (
	"fmt"
	"math/bits"
)

// DefaultPassMask is the mask stored in override entries. Any value that
// covers every bit of the widest possible root works.
const DefaultPassMask uint32 = 0xffff

const maxSegmentWidth = 16

// Segment is a contiguous bit field of the input word.
type Segment struct {
	Offset int // bit position of the least significant bit
	Width  int // number of bits
}

// Mask returns the right-aligned all-ones mask of the segment width.
func (s Segment) Mask() uint32 {
	return 1<<uint(s.Width) - 1
}

// Index extracts the segment from x as a table index.
func (s Segment) Index(x uint32) uint32 {
	return (x >> uint(s.Offset)) & s.Mask()
}

// Top returns the bit position one past the most significant bit.
func (s Segment) Top() int {
	return s.Offset + s.Width
}

// Size returns the number of table entries the segment addresses.
func (s Segment) Size() int {
	return 1 << uint(s.Width)
}

// Layout describes how an input word of Width bits is split into the three
// table segments, and how the low-index entries of the high and mid tables
// are patched.
//
// HighOverrides and MidOverrides are the number of leading entries forced to
// (0, PassMask). The shipped layouts use 1<<overlap, which is the number of
// upper-segment indices whose bits all lie inside the overlap with the
// segment below; those indices carry no information of their own and must
// let the lower segment through.
type Layout struct {
	Width int

	High Segment
	Mid  Segment
	Low  Segment

	HighOverrides int
	MidOverrides  int
	PassMask      uint32
}

// Option mutates a Layout.
type Option func(*Layout)

// WithOverrides sets the number of patched entries in the high and mid
// tables.
func WithOverrides(high, mid int) Option {
	return func(l *Layout) {
		l.HighOverrides = high
		l.MidOverrides = mid
	}
}

// WithPassMask sets the mask stored in patched entries.
func WithPassMask(mask uint32) Option {
	return func(l *Layout) {
		l.PassMask = mask
	}
}

// Layout23 returns the 23-bit layout: three 9-bit segments at bits 14, 7
// and 0, overlapping by 2 bits, with four patched entries per upper table.
func Layout23(opts ...Option) Layout {
	return newLayout(23,
		Segment{Offset: 14, Width: 9},
		Segment{Offset: 7, Width: 9},
		Segment{Offset: 0, Width: 9},
		opts)
}

// Layout24 returns the 24-bit layout: an 8-bit high segment at bit 16 and
// 9-bit mid and low segments at bits 8 and 0, overlapping by 1 bit, with
// two patched entries per upper table.
func Layout24(opts ...Option) Layout {
	return newLayout(24,
		Segment{Offset: 16, Width: 8},
		Segment{Offset: 8, Width: 9},
		Segment{Offset: 0, Width: 9},
		opts)
}

func newLayout(width int, high, mid, low Segment, opts []Option) Layout {
	l := Layout{
		Width:    width,
		High:     high,
		Mid:      mid,
		Low:      low,
		PassMask: DefaultPassMask,
	}
	l.HighOverrides = 1 << uint(l.UpperOverlap())
	l.MidOverrides = 1 << uint(l.LowerOverlap())

	for _, opt := range opts {
		if opt != nil {
			opt(&l)
		}
	}

	return l
}

// UpperOverlap returns the number of bits shared by the high and mid
// segments.
func (l Layout) UpperOverlap() int {
	return l.Mid.Top() - l.High.Offset
}

// LowerOverlap returns the number of bits shared by the mid and low
// segments.
func (l Layout) LowerOverlap() int {
	return l.Low.Top() - l.Mid.Offset
}

// Max returns the largest input representable in the layout.
func (l Layout) Max() uint32 {
	return uint32(uint64(1)<<uint(l.Width) - 1)
}

// Split returns the high, mid and low segment indices of x.
func (l Layout) Split(x uint32) (hi, mid, lo uint32) {
	return l.High.Index(x), l.Mid.Index(x), l.Low.Index(x)
}

// Validate reports whether the segments tile the input width with the
// required overlaps. It returns the first violated constraint.
//
//nolint:cyclop
func (l Layout) Validate() error {
	if l.Width < 1 || l.Width > 32 {
		return fmt.Errorf("%w: got %d", ErrWidth, l.Width)
	}

	for _, s := range []struct {
		name string
		seg  Segment
	}{{"high", l.High}, {"mid", l.Mid}, {"low", l.Low}} {
		if s.seg.Width < 1 || s.seg.Width > maxSegmentWidth {
			return fmt.Errorf("%w: %s segment is %d bits", ErrSegmentWidth, s.name, s.seg.Width)
		}
	}

	if l.Low.Offset != 0 {
		return fmt.Errorf("%w: got offset %d", ErrLowOffset, l.Low.Offset)
	}

	if l.High.Offset <= l.Mid.Offset || l.Mid.Offset <= l.Low.Offset {
		return fmt.Errorf("%w: got %d/%d/%d", ErrOffsetOrder, l.High.Offset, l.Mid.Offset, l.Low.Offset)
	}

	if l.High.Top() != l.Width {
		return fmt.Errorf("%w: high segment ends at bit %d, width is %d", ErrTopCoverage, l.High.Top(), l.Width)
	}

	if ov := l.UpperOverlap(); ov < 1 || ov > 2 || ov >= l.High.Width {
		return fmt.Errorf("%w: high/mid overlap is %d bits", ErrOverlap, ov)
	}

	if ov := l.LowerOverlap(); ov < 1 || ov > 2 || ov >= l.Mid.Width {
		return fmt.Errorf("%w: mid/low overlap is %d bits", ErrOverlap, ov)
	}

	if l.HighOverrides < 0 || l.HighOverrides > l.High.Size() {
		return fmt.Errorf("%w: high table has %d entries, %d overrides", ErrOverrideCount, l.High.Size(), l.HighOverrides)
	}

	if l.MidOverrides < 0 || l.MidOverrides > l.Mid.Size() {
		return fmt.Errorf("%w: mid table has %d entries, %d overrides", ErrOverrideCount, l.Mid.Size(), l.MidOverrides)
	}

	rootMask := uint32(1)<<uint(bits.Len32(Floor(uint64(l.Max())))) - 1
	if l.PassMask&rootMask != rootMask {
		return fmt.Errorf("%w: mask %#x, roots need %#x", ErrPassMask, l.PassMask, rootMask)
	}

	return nil
}
