package nikisas

import "math"

// Pow computes x raised to the power p.
//
// For negative bases the power must reduce to an exact integer; otherwise
// NaN is returned.
//
// Approximating the power function is hard. The straightforward identity
//
//	x^p = exp(ln(x^p)) = exp(p * ln(x))
//
// produces very inaccurate results in general, because even a tiny error in
// the logarithm is exponentiated afterwards. Instead, the integral part of
// the exponent is handled by square-and-multiply, which costs up to 32
// iterations of a small loop but keeps the exp(ln) composition confined to
// the fractional remainder.
//
// Special cases:
//   - Pow(x, p) = 1 for x within Epsilon of 1
//   - Pow(x, p) = x for p within Epsilon of 1
//   - Pow(x, p) = 1 for p within Epsilon of 0
//   - Pow(x, p) = Pow2(p) for x within Epsilon of 2
//   - Pow(x, p) = Pow10(p) for x within Epsilon of 10
//
// For non-negative x, the base is decomposed into x = y * 2^n with
// 1 <= y < 2 and the exponents split as
//
//	p   = pi + pf,   pi integer, 0 <= pf < 1
//	p*n = qi + qf,   qi integer, |qf| <= 1/2
//
// so that
//
//	x^p = y^pi * y^pf * 2^qi * 2^qf
//
// where y^pi uses square-and-multiply, y^pf uses exp(pf * ln(y)) as the
// only approximated term, 2^qf uses Pow2, and multiplying by 2^qi is exact
// bit manipulation of the exponent field.
//
// For negative x, p must be an integer, which is the case exactly when its
// fractional remainder is zero. The fractional terms then vanish and the
// computation reduces to y^k scaled by 2^(k*n).
func Pow(x, p float32) float32 {
	if nearlyEqual(x, 1, Epsilon) {
		return 1
	} else if nearlyEqual(p, 1, Epsilon) {
		return x
	} else if nearlyEqual(p, 0, Epsilon) {
		return 1
	} else if nearlyEqual(x, 2, Epsilon) {
		return Pow2(p)
	} else if nearlyEqual(x, 10, Epsilon) {
		return Pow10(p)
	}

	if x >= 0 {
		y, n := decompose(x)

		pi, pf := truncFract(p)
		pni, pnf := reduce1(p * float32(n))

		return scale(squareMul(y, pi)*Exp(pf*Ln(y))*Pow2(pnf), pni)
	}

	k, z := reduce1(p)
	if z == 0 {
		y, n := decompose(x)
		return scale(squareMul(y, k), n*k)
	}
	return float32(math.NaN())
}

// powReduce reduces p to an integer k and non-negative real z with an
// inversion flag, so that p = k + z if the flag is unset and p = k - z if
// it is set. Shared by Pow2 and Pow10.
func powReduce(x float32) (int32, float32, bool) {
	k, y := reduce1(x)
	if y < 0 {
		return k, -y, true
	}
	return k, y, false
}
