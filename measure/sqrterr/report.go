package sqrterr

import (
	"fmt"
	"io"
	"strconv"
)

// AppendText appends the report to buf: the tables, one diagnostic line per
// sample, then the smallest and largest ratio records.
func (r *Report) AppendText(buf []byte) []byte {
	buf = r.Tables.AppendText(buf)

	for _, s := range r.Samples {
		buf = fmt.Appendf(buf, "%d(0x%x=[%x,%x,%x]): %d (%d %f)\n",
			s.Input, s.Input, s.Hi, s.Mid, s.Lo, s.Approx, s.Exact, s.Ratio)
	}

	lo, hi := r.Result.Min, r.Result.Max
	buf = fmt.Appendf(buf, "smallest fraction %s asqrt(%s)=%s vs %s\n",
		formatRatio(lo.Ratio), field(lo, lo.Input), field(lo, lo.Approx), field(lo, lo.Exact))
	buf = fmt.Appendf(buf, "largest fraction %s asqrt(%s)=%s vs %s\n",
		formatRatio(hi.Ratio), field(hi, hi.Input), field(hi, hi.Approx), field(hi, hi.Exact))

	return buf
}

// WriteTo writes the report to w.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.AppendText(nil))
	return int64(n), err
}

func formatRatio(r float64) string {
	return strconv.FormatFloat(r, 'g', -1, 64)
}

func field(e Extremum, v uint32) string {
	if !e.Set {
		return "none"
	}
	return strconv.FormatUint(uint64(v), 10)
}
