package nikisas

// log10SnapTol is the tolerance for deciding that a computed decimal
// logarithm was meant to be an exact integer, that is, that the input was a
// power of ten. It is deliberately wider than the Epsilon tolerance used
// elsewhere; it is a calibration parameter tied to the accuracy of Ln.
const log10SnapTol = 16 * Epsilon

// Log10 computes the decimal logarithm of x.
//
// The theoretical input domain is (0, max float32] ≈ (0, 3.40282347e+38],
// but near zero the values get quite inaccurate.
//
// The computation routes through Ln using the identity
//
//	log10(x) = ln(x) / ln(10) = ln(x) * log10(e)
//
// with log10(e) a precomputed constant.
//
// Powers of ten cannot be detected from the mantissa the way Log2 detects
// powers of two. Instead, when the computed value is within log10SnapTol of
// an integer the input is assumed to have been an exact power of ten and
// the rounded value is returned.
func Log10(x float32) float32 {
	log10x := Ln(x) * f(bitsLog10E)
	rounded := float32(roundSmall(log10x))

	if nearlyEqual(log10x, rounded, log10SnapTol) {
		return rounded
	}
	return log10x
}
