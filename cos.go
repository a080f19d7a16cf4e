package nikisas

// Cos computes the cosine of x in radians.
//
// The input domain is limited to approximately [-2.1e+9, 2.1e+9] due to the
// argument reduction, see Sin.
//
// It is computed as sin(x + π/2) using the Sin routine.
func Cos(x float32) float32 {
	return Sin(x + f(bitsPiHalf))
}
