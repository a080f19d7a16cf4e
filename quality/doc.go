/*
Package quality measures the implementation quality of mathematical
functions by computing errors for inputs sampled from a given interval.

To determine the errors of an implementation against a reference:

	// Uniformly sample 100000 values from -87.3 to 88.7.
	stats := quality.Measure(quality.Uniform[float32](-87.3, 88.7, 100000), func(x float32) (float32, float32) {
		// Use the implementation from the standard library as ground truth.
		return nikisas.Exp(x), float32(math.Exp(float64(x)))
	})
	stats.WritePlain(os.Stdout, "exp")

To enforce desired error bounds:

	bounds := quality.NewBounds[float32]().Rel(0.001).Abs(0.0001)
	err := quality.Assert(quality.Uniform[float32](-87.3, 88.7, 100000), bounds, func(x float32) (float32, float32) {
		return nikisas.Exp(x), float32(math.Exp(float64(x)))
	})
	// err is non-nil if any bound is violated, carrying the offending
	// argument and the error magnitudes.

If you want to learn more about testing approximation errors, read W. J.
Cody: Performance testing of function subroutines,
https://dl.acm.org/doi/10.1145/1476793.1476921.

# Relative error

The relative error approximates the worst-case behavior of the function in
the interval:

	rel = max over sampled x of |F(x) - f(x)| / |f(x)|

where F is the tested implementation and f is the reference. Scaling by
f(x) normalizes the error to the magnitude of the result: the absolute
error of exp(80) might be quite large yet acceptable compared to the
magnitude, while an absolute error of 0.1 in ln(2) would be enormous.

# Absolute error

The absolute error is the unscaled worst case:

	abs = max over sampled x of |F(x) - f(x)|

It is the right metric when the error must be bounded regardless of
magnitude, in particular near roots of the reference where the relative
error is meaningless.

When both relative and absolute bounds are set, a sample passes if at
least one of them holds. This supports accuracy contracts of the form
"0.1% relative error or 4 decimal places, whichever is satisfied".

# Root-mean-square error

The root-mean-square error takes all sampled values into account and
indicates the overall quality of the implementation:

	rms = sqrt(1/N * sum of (|F(x) - f(x)| / |f(x)|)^2)

If it is close to the maximum relative error, the implementation is stable
across the interval; if it is significantly lower, there are pathological
inputs on which the implementation performs comparatively poorly.

# Domains

Approximations usually reduce the input into a small primary range,
approximate the reduced argument and reconstruct the result. Sweeps should
therefore come in at least two parts: one sampling the primary range to
exercise the approximation error, and one sampling the entire input range
to capture the additional error introduced by the argument reduction.

Use Uniform or UniformFraction for random sampling, ExhaustiveBetween or
ExhaustiveNear to visit every representable value around a point of
interest, and Filter with the Avoid* predicates to exclude singular points
such as asymptotes.
*/
package quality
