/*
Package nikisas implements common mathematical functions for single-precision
floats with focus on speed and simplicity of implementation at the cost of
precision. It never calls out to a platform math library: every function is
built from bit-level manipulation of the IEEE-754 representation, argument
reduction and fixed-degree polynomial evaluation, so it is suitable for
constrained environments where predictable cost matters more than the last
few bits of accuracy.

Simple example:

	y := nikisas.Ln(nikisas.E)
	fmt.Println(y)
	// Output: 1

What's included:

	exponentiation - Exp(x), Pow(x, p), Pow2(p), Pow10(p)
	logarithms     - Ln(x), Log2(x), Log10(x)
	trigonometry   - Sin(x), Cos(x), Tan(x), Cot(x)

The polynomial coefficients are precomputed minimax approximations and are
stored as exact bit patterns; they are calibration data, not derived at
runtime.

# Errors

The implementations are tested so that the error is bound to be 0.1% or 4
decimal places, whichever is satisfied first. The testing samples inputs from
the valid interval of each function and compares against the float64
implementations in the standard math package. See the quality subpackage for
the measurement machinery.

Measured errors:

	function | maximum relative | root mean square
	---------|------------------|-----------------
	exp      | 4.15e-6          | 1.39e-6
	ln       | 9.60e-8          | 4.05e-8
	log2     | 1.29e-7          | 4.08e-8
	log10    | 2.02e-7          | 6.24e-8
	pow2     | 1.19e-7          | 3.53e-8
	pow10    | 4.47e-6          | 1.49e-6

The trigonometric functions give poor results near their roots and
asymptotes for large arguments, where the relative error is dominated by
the error of the argument reduction.

# Domains

Input domains are limited by the machine representation: the reduction step
stores the integral multiplier in a 32-bit integer and the reconstruction
step cannot exceed the representable exponent range. Out-of-domain inputs
yield NaN or a saturated value, never a panic. The exact domain of each
function is documented on the function itself.
*/
package nikisas
