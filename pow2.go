package nikisas

// Pow2 computes 2 raised to the power p.
//
// The input domain is limited to approximately [log2(min positive float32),
// log2(max float32)] ≈ [-126.0, 127.9] due to limits of the machine
// representation; outside it the result saturates towards 0 or the maximum
// representable value.
//
// Special cases:
//   - Pow2(p) = 1 for p within Epsilon of 0
//
// The input p is reduced to an integer k and real y such that
//
//	p = k + y and |y| <= 1/2
//
// With z = |y|, 2^z is approximated by a polynomial in the form
//
//	2^z ≈ 1 + z*P(z)
//
// where the prefix corresponds to the low-degree Taylor polynomial of 2^z
// at 0 and P is a calibrated minimax polynomial, and
//
//	2^y = 2^z   if y >= 0
//	2^y = 1/2^z otherwise
//
// The reconstruction 2^p = 2^k * 2^y multiplies by 2^k using exact bit
// manipulation of the exponent field.
func Pow2(p float32) float32 {
	if nearlyEqual(p, 0, Epsilon) {
		return 1
	}

	k, z, inv := powReduce(p)

	pow2z := 1 + z*poly(z, polyPow2)
	if inv {
		pow2z = 1 / pow2z
	}

	return scale(pow2z, k)
}
