package quality

import "math"

// Float is the set of floating point widths the package can measure.
type Float interface {
	float32 | float64
}

// IEEE-754 layout constants per width. The generic entry points dispatch on
// the concrete type; the bit arithmetic itself is monomorphic.
const (
	expMask32      uint32 = 0x7f800000
	expBias32      int32  = 127
	mantissaMask32 uint32 = 0x007fffff
	mantissaBits32 uint32 = 23

	expMask64      uint64 = 0x7ff0000000000000
	expBias64      int32  = 1023
	mantissaMask64 uint64 = 0x000fffffffffffff
	mantissaBits64 uint64 = 52
)

// Eps returns the machine epsilon of F.
func Eps[F Float]() F {
	var x F
	switch any(x).(type) {
	case float32:
		return F(math.Nextafter32(1, 2) - 1)
	default:
		return F(math.Nextafter(1, 2) - 1)
	}
}

// NextUp gives the next machine number after x. Negative zero and positive
// zero are treated as the same point, so stepping up from either yields the
// smallest positive value. The input must be finite.
func NextUp[F Float](x F) F {
	switch v := any(x).(type) {
	case float32:
		return F(nextUp32(v))
	case float64:
		return F(nextUp64(v))
	}
	panic("quality: unsupported float type")
}

// NextDown gives the previous machine number before x. The input must be
// finite.
func NextDown[F Float](x F) F {
	return -NextUp(-x)
}

func nextUp32(x float32) float32 {
	if x == 0 {
		x = 0 // fold -0 onto 0
	}
	bits := math.Float32bits(x)
	if x >= 0 {
		bits++
	} else {
		bits--
	}
	return math.Float32frombits(bits)
}

func nextUp64(x float64) float64 {
	if x == 0 {
		x = 0
	}
	bits := math.Float64bits(x)
	if x >= 0 {
		bits++
	} else {
		bits--
	}
	return math.Float64frombits(bits)
}

// Decompose splits x into real y and integer n such that x = y * 2^n and
// 1 <= y < 2. The decomposition is exact for normal x.
func Decompose[F Float](x F) (F, int32) {
	switch v := any(x).(type) {
	case float32:
		y, n := decompose32(v)
		return F(y), n
	case float64:
		y, n := decompose64(v)
		return F(y), n
	}
	panic("quality: unsupported float type")
}

func decompose32(x float32) (float32, int32) {
	xbits := math.Float32bits(x)

	ybits := xbits&^expMask32 | uint32(expBias32)<<mantissaBits32

	n := int32((xbits&expMask32)>>mantissaBits32) - expBias32

	return math.Float32frombits(ybits), n
}

func decompose64(x float64) (float64, int32) {
	xbits := math.Float64bits(x)

	ybits := xbits&^expMask64 | uint64(expBias64)<<mantissaBits64

	n := int32((xbits&expMask64)>>mantissaBits64) - expBias64

	return math.Float64frombits(ybits), n
}

// FloatsBetween returns the exact count of machine numbers in [low, high],
// inclusive of both bounds. It panics if low > high.
//
// If the interval spans zero it splits into the negative and positive
// halves, counting zero once. Otherwise the negative case is normalized to
// the positive one by a magnitude swap, both endpoints are decomposed, and
// the count is the number of values per exponent (2^mantissa bits) summed
// over the exponent range plus the mantissa difference at the matching
// exponent, with a borrow when the high endpoint's exponent is one greater
// but its mantissa bits are numerically smaller.
func FloatsBetween[F Float](low, high F) uint64 {
	if low == high {
		return 1
	}
	if low > high {
		panic("quality: floats between: low is greater than high")
	}

	if (low >= 0) != (high >= 0) {
		// Subtract nothing: the split counts zero exactly once because the
		// negative half ends just below zero.
		return FloatsBetween(low, NextDown(F(0))) + FloatsBetween(F(0), high)
	}
	if low < 0 {
		low, high = -high, -low
	}

	yLow, nLow := Decompose(low)
	yHigh, nHigh := Decompose(high)

	var mLow, mHigh, perExponent uint64
	switch any(low).(type) {
	case float32:
		mLow = uint64(math.Float32bits(float32(yLow)) & mantissaMask32)
		mHigh = uint64(math.Float32bits(float32(yHigh)) & mantissaMask32)
		perExponent = 1 << mantissaBits32
	case float64:
		mLow = math.Float64bits(float64(yLow)) & mantissaMask64
		mHigh = math.Float64bits(float64(yHigh)) & mantissaMask64
		perExponent = 1 << mantissaBits64
	}

	// Borrow from the exponent so that mHigh >= mLow.
	if mLow > mHigh {
		mHigh += perExponent
		nHigh--
	}

	return uint64(nHigh-nLow)*perExponent + mHigh - mLow + 1
}

// ShiftLeft returns x minus the machine epsilon of F. For finer resolution
// use NextDown.
func ShiftLeft[F Float](x F) F {
	return x - Eps[F]()
}

// ShiftRight returns x plus the machine epsilon of F. For finer resolution
// use NextUp.
func ShiftRight[F Float](x F) F {
	return x + Eps[F]()
}
