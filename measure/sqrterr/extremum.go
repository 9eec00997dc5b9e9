package sqrterr

// ZeroRatio is the ratio assigned when the exact root is zero and the
// approximation is not.
const ZeroRatio = 1e6

// Ratio returns approx/exact, with exact == 0 mapped to 1 when approx is
// also zero and to [ZeroRatio] otherwise.
func Ratio(approx, exact uint32) float64 {
	if exact == 0 {
		if approx != 0 {
			return ZeroRatio
		}
		return 1
	}
	return float64(approx) / float64(exact)
}

// Extremum is one end of the observed ratio range. A record that was never
// improved upon keeps Ratio 1 and Set false.
type Extremum struct {
	Ratio  float64
	Input  uint32
	Approx uint32
	Exact  uint32
	Set    bool
}

// Accumulator folds observations into the smallest and largest ratio
// records. The zero value is not ready for use; start from
// [NewAccumulator].
type Accumulator struct {
	Min   Extremum
	Max   Extremum
	Count uint64
}

// NewAccumulator returns an accumulator with both records at ratio 1.
func NewAccumulator() Accumulator {
	return Accumulator{
		Min: Extremum{Ratio: 1},
		Max: Extremum{Ratio: 1},
	}
}

// Observe returns a with one more observation folded in. Records only move
// on a strict improvement, so among equal ratios the first one seen wins.
func (a Accumulator) Observe(x, approx, exact uint32) Accumulator {
	r := Ratio(approx, exact)
	a.Count++

	if r < a.Min.Ratio {
		a.Min = Extremum{Ratio: r, Input: x, Approx: approx, Exact: exact, Set: true}
	}

	if r > a.Max.Ratio {
		a.Max = Extremum{Ratio: r, Input: x, Approx: approx, Exact: exact, Set: true}
	}

	return a
}

// Merge combines two accumulators. Equal ratios resolve to the record with
// the smaller input, so merging partitions in any order gives the result a
// single in-order sweep would.
func (a Accumulator) Merge(b Accumulator) Accumulator {
	return Accumulator{
		Min:   pick(a.Min, b.Min, func(x, y float64) bool { return x < y }),
		Max:   pick(a.Max, b.Max, func(x, y float64) bool { return x > y }),
		Count: a.Count + b.Count,
	}
}

func pick(a, b Extremum, better func(x, y float64) bool) Extremum {
	switch {
	case !b.Set:
		return a
	case !a.Set:
		if better(b.Ratio, a.Ratio) {
			return b
		}
		return a
	case better(b.Ratio, a.Ratio):
		return b
	case b.Ratio == a.Ratio && b.Input < a.Input:
		return b
	default:
		return a
	}
}
