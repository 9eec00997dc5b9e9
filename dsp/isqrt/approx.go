package isqrt

import "fmt"

// Approx returns the approximate integer square root of x.
//
//	result = v3 | (m3 & (v2 | (m2 & v1)))
//
// Bits of x above the layout width are discarded by segment extraction.
func (t *Tables) Approx(x uint32) uint32 {
	h := t.high[t.layout.High.Index(x)]
	m := t.mid[t.layout.Mid.Index(x)]
	v1 := t.low[t.layout.Low.Index(x)].Value

	return h.Value | (h.Mask & (m.Value | (m.Mask & v1)))
}

// ApproxChecked is Approx with a range check on x.
func (t *Tables) ApproxChecked(x uint32) (uint32, error) {
	if x > t.layout.Max() {
		return 0, fmt.Errorf("%w: %d > %d", ErrOutOfRange, x, t.layout.Max())
	}
	return t.Approx(x), nil
}
