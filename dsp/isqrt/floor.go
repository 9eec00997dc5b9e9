package isqrt

import "math"

// Floor returns floor(sqrt(x)) exactly.
//
// The float64 estimate is corrected with integer comparisons, so the result
// is exact over the whole uint64 range.
func Floor(x uint64) uint32 {
	r := uint64(math.Sqrt(float64(x)))
	if r > math.MaxUint32 {
		r = math.MaxUint32
	}

	for r*r > x {
		r--
	}

	for r < math.MaxUint32 && (r+1)*(r+1) <= x {
		r++
	}

	return uint32(r)
}
