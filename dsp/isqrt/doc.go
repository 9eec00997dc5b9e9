// Package isqrt builds segmented lookup tables that approximate the integer
// square root of a wide unsigned value without multiplication, addition or
// floating point at evaluation time.
//
// The input word is split into three overlapping bit fields (high, mid and
// low). Each field indexes a small table of (value, mask) entries and the
// approximation is composed by mask-and-or folding:
//
//	sqrt(x) ~= v3 | (m3 & (v2 | (m2 & v1)))
//
// A mask acts as an "enable correction from below" gate. Only the first few
// entries of the high and mid tables carry a non-zero mask (the override
// patch); everywhere else the most significant non-zero field alone decides
// the result. This keeps the evaluation branch-free and cheap enough for an
// FPGA or small microcontroller, at the cost of a bounded relative error.
//
// Two layouts are shipped: [Layout23] for 23-bit magnitudes (three 9-bit
// fields overlapping by 2 bits) and [Layout24] for 24-bit magnitudes
// (8/9/9-bit fields overlapping by 1 bit).
//
// # Usage
//
//	tables, err := isqrt.NewTables(isqrt.Layout24())
//	if err != nil {
//	    return err
//	}
//	r := tables.Approx(5000) // 69, exact is 70
//
// Inputs wider than the layout are not rejected by [Tables.Approx]: field
// extraction masks them, so the high bits silently alias into range exactly
// as the hardware would. Use [Tables.ApproxChecked] where that is a bug.
package isqrt
