package checkgroup

import "math"

// Epsilon is the tolerance used by ApproxEqual
const Epsilon = 1e-4

// ApproxEqual reports whether |x-y| < Epsilon.
// The difference is taken in float64 and rounded to single precision before
// the comparison, so a difference of exactly 1e-4 as written in source is not
// approximately equal.
func ApproxEqual(x, y float64) bool {
	return float32(math.Abs(x-y)) < float32(Epsilon)
}
