package isqrt_test

import (
	"fmt"

	"github.com/zaitcev/airspy-yoga/dsp/isqrt"
)

func ExampleTables_Approx() {
	tables, err := isqrt.NewTables(isqrt.Layout24())
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, x := range []uint32{50, 5000, 5000000} {
		fmt.Println(x, tables.Approx(x), isqrt.Floor(uint64(x)))
	}

	// Output:
	// 50 7 7
	// 5000 69 70
	// 5000000 2231 2236
}

func ExampleLayout_Validate() {
	l := isqrt.Layout24()
	l.Low.Width = 8

	fmt.Println(l.Validate())

	// Output:
	// isqrt: adjacent segments must overlap by 1 or 2 bits: mid/low overlap is 0 bits
}
