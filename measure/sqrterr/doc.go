// Package sqrterr measures how far a segmented square-root approximation
// strays from the exact integer root.
//
// [Sweep] evaluates every representable input once, in order, and folds the
// approx/exact ratio into an [Accumulator] that keeps only the smallest and
// largest ratios seen. Memory stays bounded to the tables plus the two
// records regardless of the input width. [SweepParallel] splits the range
// across workers and merges their accumulators; the merge prefers the
// smaller input on equal ratios, which is what a sequential sweep does, so
// the result does not depend on the partitioning.
//
// # Usage
//
//	tables, _ := isqrt.NewTables(isqrt.Layout24())
//	rep, err := sqrterr.Verify(ctx, tables, sqrterr.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	_, err = rep.WriteTo(os.Stdout)
package sqrterr
