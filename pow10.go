package nikisas

// Pow10 computes 10 raised to the power p.
//
// The input domain is limited to approximately [log10(min positive
// float32), log10(max float32)] ≈ [-37.9, 38.5] due to limits of the
// machine representation; outside it the result saturates towards 0 or
// overflows to +Inf through the square-and-multiply step.
//
// Special cases:
//   - Pow10(p) = 1 for p within Epsilon of 0
//
// The input p is reduced to an integer k and real y such that
//
//	p = k + y and |y| <= 1/2
//
// With z = |y|, 10^z is approximated by a polynomial in the form
//
//	10^z ≈ 1 + z*P(z)
//
// where the prefix corresponds to the low-degree Taylor polynomial of 10^z
// at 0 and P is a calibrated minimax polynomial, and
//
//	10^y = 10^z   if y >= 0
//	10^y = 1/10^z otherwise
//
// The reconstruction 10^p = 10^k * 10^y computes 10^k with the
// square-and-multiply loop; the number of iterations is limited by
// log2(max |k|) < 6 for the whole input domain.
func Pow10(p float32) float32 {
	if nearlyEqual(p, 0, Epsilon) {
		return 1
	}

	k, z, inv := powReduce(p)

	pow10z := 1 + z*poly(z, polyPow10)
	if inv {
		pow10z = 1 / pow10z
	}

	return squareMul(10, k) * pow10z
}
