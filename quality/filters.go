package quality

import "math"

// Avoid returns a predicate that rejects this particular value, widened by
// the machine epsilon to both sides.
//
//	quality.Filter(quality.Uniform[float32](-4.2e+9, 4.2e+9, 10000), quality.Avoid[float32](0))
func Avoid[F Float](x F) func(F) bool {
	low, high := ShiftLeft(x), ShiftRight(x)
	return func(y F) bool {
		return y < low || y > high
	}
}

// AvoidMults returns a predicate that rejects all integer multiples of
// this particular value. Useful for skipping the periodic singular points
// of trigonometric functions:
//
//	quality.Filter(sample, quality.AvoidMults(float32(math.Pi/2)))
func AvoidMults[F Float](x F) func(F) bool {
	low, high := ShiftLeft(F(0)), ShiftRight(F(0))
	return func(y F) bool {
		rounded := F(math.Round(float64(y / x)))
		z := y - rounded*x
		return z < low || z > high
	}
}

// AvoidEvenMults returns a predicate that rejects all even integer
// multiples of this particular value: for value x that is 2x, 4x, but not
// 3x.
func AvoidEvenMults[F Float](x F) func(F) bool {
	low, high := ShiftLeft(F(0)), ShiftRight(F(0))
	return func(y F) bool {
		rounded := math.Round(float64(y / x))
		z := y - F(rounded)*x
		return (z < low || z > high) || int64(rounded)%2 != 0
	}
}

// AvoidOddMults returns a predicate that rejects all odd integer multiples
// of this particular value: for value x that is x, 3x, but not 2x.
func AvoidOddMults[F Float](x F) func(F) bool {
	low, high := ShiftLeft(F(0)), ShiftRight(F(0))
	return func(y F) bool {
		rounded := math.Round(float64(y / x))
		z := y - F(rounded)*x
		return (z < low || z > high) || int64(rounded)%2 == 0
	}
}
