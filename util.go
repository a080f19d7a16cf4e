package nikisas

import "math"

// f is a shortcut for math.Float32frombits.
func f(x uint32) float32 {
	return math.Float32frombits(x)
}

// abs returns the absolute value of x by clearing the sign bit.
func abs(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ signMask)
}

// absSgn returns the absolute value and the sign of x. The sign is composed
// directly from the sign bit and the bias, so there is no branch involved.
func absSgn(x float32) (float32, float32) {
	xbits := math.Float32bits(x)

	ybits := xbits &^ signMask

	sbits := xbits & signMask
	sbits |= uint32(expBias) << mantissaBits

	return math.Float32frombits(ybits), math.Float32frombits(sbits)
}

// roundSmall rounds x to the nearest 32-bit integer. Hence, it only works
// for inputs whose nearest integer fits in a 32-bit machine signed integer.
// Ties resolve to even, a consequence of the double-precision addition
// below.
func roundSmall(x float32) int32 {
	t := float64(x) + roundAdd
	return int32(uint32(math.Float64bits(t) & roundMask))
}

// decompose splits x into real y and integer n such that
//
//	x = y * 2^n and 1 <= |y| < 2.
//
// Since this is the machine representation of the floating point number,
// the decomposition is exact. Zero, subnormal, NaN and infinite inputs are
// outside the supported domain and produce a meaningless result.
func decompose(x float32) (float32, int32) {
	xbits := math.Float32bits(x)

	ybits := xbits &^ expMask
	ybits |= uint32(expBias) << mantissaBits

	n := int32((xbits&expMask)>>mantissaBits) - expBias

	return math.Float32frombits(ybits), n
}

// clamp restricts a value to a certain interval.
func clamp(x, min, max int32) int32 {
	if x < min {
		return min
	} else if x > max {
		return max
	}
	return x
}

// scale multiplies x by 2^n by adding n to the exponent field. The resulting
// exponent saturates at the boundaries of the representable range instead of
// wrapping, which diverges from true multiplication; callers only ever apply
// small, bounded n.
func scale(x float32, n int32) float32 {
	xbits := math.Float32bits(x)
	e := int32((xbits & expMask) >> mantissaBits)
	e = clamp(e+n, 0, expMax)
	xbits &^= expMask
	xbits |= uint32(e) << mantissaBits
	return math.Float32frombits(xbits)
}

// reduce splits x into integer k and real y such that
//
//	x = k * cst + y and |y| <= cst / 2.
//
// It must hold that cstInv = 1 / cst. The explicit inverse is required
// because it is more precise to compute the inverse of a number that cannot
// be stored in finite precision and then round it to nearest.
func reduce(x, cst, cstInv float32) (int32, float32) {
	k := roundSmall(x * cstInv)
	y := x - float32(k)*cst
	return k, y
}

// reduce1 is an optimized version of reduce(x, 1, 1), that is, it splits x
// into integer k and real y such that
//
//	x = k + y and |y| <= 0.5.
//
// For splitting a number into its integral and fractional parts, use
// truncFract.
func reduce1(x float32) (int32, float32) {
	k := roundSmall(x)
	return k, x - float32(k)
}

// truncFract splits x into its integral and fractional parts, that is, into
// integer k and real y such that
//
//	x = k + y and 0 <= y < 1.
func truncFract(x float32) (int32, float32) {
	k, y := reduce1(x)
	if y < 0 {
		return k - 1, y + 1
	}
	return k, y
}

// squareMul raises x to the integer power k using binary exponentiation.
// Negative exponents invert the base. The loop is bounded by the bit width
// of the exponent.
func squareMul(x float32, k int32) float32 {
	base := x
	if k < 0 {
		k, base = -k, 1/x
	}

	r := float32(1)
	for {
		if isOdd(k) {
			r *= base
		}

		k >>= 1
		if k == 0 {
			break
		}

		base *= base
	}

	return r
}

// nearlyEqual compares x with a using the given tolerance.
func nearlyEqual(x, a, tol float32) bool {
	return abs(x-a) <= tol
}

// isEven determines if n is an even integer.
func isEven(n int32) bool {
	return n&0x1 == 0x0
}

// isOdd determines if n is an odd integer.
func isOdd(n int32) bool {
	return n&0x1 == 0x1
}

// moduloMask computes n modulo m for m that is a power of two minus one,
// with a result that is always non-negative.
func moduloMask(n int32, m uint32) uint32 {
	return uint32(n & int32(m))
}

// fma is a fused-multiply-add shaped step (x * m + a).
func fma(x, m, a float32) float32 {
	return x*m + a
}

// poly evaluates a degree-4 polynomial at x using Horner's method, most
// significant coefficient last in the table. Coefficients are exact bit
// patterns.
func poly(x float32, coeffs [5]uint32) float32 {
	p := f(coeffs[4])
	p = fma(x, p, f(coeffs[3]))
	p = fma(x, p, f(coeffs[2]))
	p = fma(x, p, f(coeffs[1]))
	p = fma(x, p, f(coeffs[0]))
	return p
}
