package nikisas

// Log2 computes the binary logarithm of x.
//
// The theoretical input domain is (0, max float32] ≈ (0, 3.40282347e+38],
// but near zero the values get quite inaccurate.
//
// The computation routes through Ln using the identity
//
//	log2(x) = ln(x) / ln(2) = ln(x) * log2(e)
//
// with log2(e) a precomputed constant.
//
// When x is an exact power of two the result is exact: x is decomposed into
// y * 2^n with 1 <= y < 2, and a unit mantissa (y == 1) means x = 2^n, so
//
//	log2(x) = log2(y) + n*log2(2) = 0 + n = n
func Log2(x float32) float32 {
	y, n := decompose(x)

	if y == 1 {
		return float32(n)
	}

	return Ln(x) * f(bitsLog2E)
}
