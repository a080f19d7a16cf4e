package nikisas

// Sin computes the sine of x in radians.
//
// The input domain is limited to approximately [-2.1e+9, 2.1e+9] because
// the integral part of the argument reduction must fit in a 32-bit integer.
//
// The input x is reduced to an integer k and real z such that
//
//	x = k*π/2 + z and |z| <= π/4
//
// The approximation is split into 4 pieces over one period of the sine from
// -π/4 to 7π/4:
//
//	x in [-π/4,  π/4)  ->  sin(x) =  sin(z)
//	x in [ π/4, 3π/4)  ->  sin(x) =  cos(z)
//	x in [3π/4, 5π/4)  ->  sin(x) = -sin(z)
//	x in [5π/4, 7π/4)  ->  sin(x) = -cos(z)
//
// The piece is selected by i = k mod 4. The kernels are polynomials in z²
// in the forms
//
//	sin(z) ≈ z + z^3*P(z^2)
//	cos(z) ≈ 1 + z^2*Q(z^2)
//
// where the prefixes correspond to the low-degree Taylor polynomials at 0
// and P, Q are calibrated minimax polynomials. Evaluating in z² rather than
// z matters: sine is odd and cosine is even, so the z³ and z² multipliers
// carry the parity.
//
// When z is within Epsilon of zero, x is 0, π/2, π, 3π/2 or a periodic
// multiple of one of these, and the exact values 0, 1, 0, -1 are returned
// without any approximation.
func Sin(x float32) float32 {
	k, z := reduce(x, f(bitsPiHalf), f(bitsPiHalfInv))
	i := moduloMask(k, 0x3)

	if nearlyEqual(z, 0, Epsilon) {
		switch i {
		case 0:
			return 0
		case 1:
			return 1
		case 2:
			return 0
		default:
			return -1
		}
	}

	z2 := z * z

	switch i {
	case 0:
		return z + z2*z*poly(z2, polySin)
	case 1:
		return 1 + z2*poly(z2, polyCos)
	case 2:
		return -(z + z2*z*poly(z2, polySin))
	default:
		return -(1 + z2*poly(z2, polyCos))
	}
}
