package nikisas

// Exp computes the exponentiation function e^x.
//
// The input domain is limited to approximately [ln(min positive float32),
// ln(max float32)] ≈ [-87.3, 88.7] due to limits of the machine
// representation; outside it the result saturates towards 0 or the maximum
// representable value.
//
// Special cases:
//   - Exp(1) = E exactly
//   - Exp(x) = 1 for x within Epsilon of 0
//
// The input x is reduced to an integer k and real z such that
//
//	x = k*ln(2) + z and |z| <= ln(2)/2
//
// Exponentiation of z uses a polynomial in the form
//
//	exp(z) ≈ 1 + z + 1/2*z^2 + z^3*P(z)
//
// where the prefix corresponds to the low-degree Taylor polynomial of exp
// at 0 and P is a calibrated minimax polynomial. The reconstruction follows
//
//	exp(x) = exp(k*ln(2) + z) = 2^k * exp(z)
//
// where multiplying by 2^k is exact bit manipulation of the exponent field.
func Exp(x float32) float32 {
	if x == 1 {
		return f(bitsE)
	} else if nearlyEqual(x, 0, Epsilon) {
		return 1
	}

	k, z := reduce(x, f(bitsLn2), f(bitsLn2Inv))

	z2 := z * z
	expz := 1 + z + 0.5*z2 + z2*z*poly(z, polyExp)

	return scale(expz, k)
}
