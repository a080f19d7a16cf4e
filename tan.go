package nikisas

// Tan computes the tangent of x in radians.
//
// The input domain is limited to approximately [-2.1e+9, 2.1e+9] because
// the integral part of the argument reduction must fit in a 32-bit integer.
// Near the asymptotes at odd multiples of π/2 the values get quite
// inaccurate.
//
// The input x is reduced to an integer k and real z such that
//
//	x = k*π/2 + z and |z| <= π/4
//
// The approximation is split into 2 pieces over one period of the tangent
// from -π/2 to π/2:
//
//	x in [-π/4, π/4]               ->  tan(x) =  tan(z)
//	x in [-π/2, -π/4) ∪ (π/4, π/2] ->  tan(x) = -1/tan(z)
//
// The first piece corresponds to even k, the second to odd k. The kernel is
// a polynomial in z² in the form
//
//	tan(z) ≈ z + z^3*P(z^2)
//
// where the prefix corresponds to the low-degree Taylor polynomial at 0 and
// P is a calibrated minimax polynomial; the z³ multiplier carries the odd
// parity of the tangent.
//
// When |z| is within Epsilon of π/4 the exact values ±1 are returned
// without any approximation, depending on the sign of z.
func Tan(x float32) float32 {
	k, z := reduce(x, f(bitsPiHalf), f(bitsPiHalfInv))
	zAbs, zSgn := absSgn(z)

	if nearlyEqual(zAbs, f(bitsPiQuart), Epsilon) {
		if zSgn == 1 {
			return 1
		}
		return -1
	}

	z2 := z * z
	tanz := z + z2*z*poly(z2, polyTan)

	if isEven(k) {
		return tanz
	}
	return -1 / tanz
}
