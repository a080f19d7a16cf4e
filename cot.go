package nikisas

// Cot computes the cotangent of x in radians.
//
// The input domain is limited to approximately [-2.1e+9, 2.1e+9] due to the
// argument reduction, see Tan. Near the asymptotes at multiples of π the
// values get quite inaccurate.
//
// It is computed as 1 / tan(x) using the Tan routine.
func Cot(x float32) float32 {
	return 1 / Tan(x)
}
