package isqrt

import (
	"io"
	"strconv"
)

// AppendText appends the tables in the generator text format to buf:
// "<value> <mask>" for every high entry, then every mid entry, then
// "<value>" for every low entry, one per line.
func (t *Tables) AppendText(buf []byte) []byte {
	for _, tab := range []SegmentTable{t.high, t.mid} {
		for _, e := range tab {
			buf = strconv.AppendUint(buf, uint64(e.Value), 10)
			buf = append(buf, ' ')
			buf = strconv.AppendUint(buf, uint64(e.Mask), 10)
			buf = append(buf, '\n')
		}
	}

	for _, e := range t.low {
		buf = strconv.AppendUint(buf, uint64(e.Value), 10)
		buf = append(buf, '\n')
	}

	return buf
}

// WriteTo writes the text form of the tables to w.
func (t *Tables) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(t.AppendText(nil))
	return int64(n), err
}
