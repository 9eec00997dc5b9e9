package isqrt

import "slices"

// Entry is one table row. Value is the partial root contributed by the
// segment; Mask gates the contribution of the segments below it.
type Entry struct {
	Value uint32
	Mask  uint32
}

// SegmentTable is the lookup table of one segment, indexed by the segment's
// bit field.
type SegmentTable []Entry

// Tables holds the three segment tables of a layout. It is immutable after
// construction and safe for concurrent use.
//
// The Mask column of the low table is always zero and never read by
// [Tables.Approx]; it exists so the three tables share one row format.
type Tables struct {
	layout Layout
	high   SegmentTable
	mid    SegmentTable
	low    SegmentTable
}

// NewTables validates the layout and builds its tables. Construction is a
// pure function of the layout.
func NewTables(layout Layout) (*Tables, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	t := &Tables{
		layout: layout,
		high:   buildSegment(layout.High),
		mid:    buildSegment(layout.Mid),
		low:    buildSegment(layout.Low),
	}

	patch(t.high, layout.HighOverrides, layout.PassMask)
	patch(t.mid, layout.MidOverrides, layout.PassMask)

	return t, nil
}

// buildSegment fills value = floor(sqrt(i << offset)) for every index.
func buildSegment(s Segment) SegmentTable {
	tab := make(SegmentTable, s.Size())
	for i := range tab {
		tab[i] = Entry{Value: Floor(uint64(i) << uint(s.Offset))}
	}
	return tab
}

// patch forces the first n entries to pass the lower segments through.
// Without it an upper index that only covers overlap bits would yield its
// own near-zero root and mask out everything below.
func patch(tab SegmentTable, n int, mask uint32) {
	for i := range n {
		tab[i] = Entry{Value: 0, Mask: mask}
	}
}

// Layout returns the layout the tables were built from.
func (t *Tables) Layout() Layout { return t.layout }

// High returns a copy of the high segment table.
func (t *Tables) High() SegmentTable { return slices.Clone(t.high) }

// Mid returns a copy of the mid segment table.
func (t *Tables) Mid() SegmentTable { return slices.Clone(t.mid) }

// Low returns a copy of the low segment table.
func (t *Tables) Low() SegmentTable { return slices.Clone(t.low) }
