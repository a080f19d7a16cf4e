package nikisas

// Ln computes the natural logarithm of x.
//
// The theoretical input domain is (0, max float32] ≈ (0, 3.40282347e+38],
// but near zero the values get quite inaccurate.
//
// Special cases:
//   - Ln(1) = 0 exactly
//   - Ln(x) = 1 for x within Epsilon of E
//
// The input x is decomposed into real y and integer n such that
//
//	x = y * 2^n, where 1 <= y < 2
//
// Using ln(x) = n*ln(2) + ln(y) directly would suffer catastrophic
// cancellation for n = -1 and y ≈ 2, so when y > sqrt(2) the decomposition
// is adjusted to (y/2, n+1). That keeps x = y * 2^n while shifting y into
// [1/sqrt(2), sqrt(2)], symmetric around the logarithm's root at 1.
//
// With z = y - 1, ln(1+z) is approximated by a polynomial in the form
//
//	ln(1+z) ≈ z - 1/2*z^2 + z^3*P(z)
//
// where the prefix corresponds to the low-degree Taylor polynomial of
// ln(1+z) at 0 and P is a calibrated minimax polynomial. Reconstruction is
// then ln(x) = n*ln(2) + ln(1+z).
func Ln(x float32) float32 {
	if x == 1 {
		return 0
	} else if nearlyEqual(x, f(bitsE), Epsilon) {
		return 1
	}

	y, n := decompose(x)

	if y > f(bitsSqrt2) {
		y *= 0.5
		n++
	}

	z := y - 1
	z2 := z * z
	lny := z - 0.5*z2 + z2*z*poly(z, polyLn1p)

	return float32(n)*f(bitsLn2) + lny
}
