package nikisas

// IEEE-754 single-precision layout. All bit tricks in this package are
// expressed in terms of these constants; nothing else inspects the raw
// representation directly.
const (
	// expMask selects the exponent field.
	expMask uint32 = 0x7f800000

	// expBias is the exponent bias.
	expBias int32 = 127

	// expMax is the maximum raw exponent field value.
	expMax int32 = 255

	// mantissaBits is the width of the mantissa field, which is also the
	// right offset of the exponent field.
	mantissaBits uint32 = 23

	// signMask selects the sign bit.
	signMask uint32 = 0x80000000
)

const (
	// roundAdd is 2^52 + 2^51, used by roundSmall. Adding it to a double
	// pushes the integer part of the sum into the low 32 bits of the
	// mantissa.
	roundAdd = 6755399441055744.0

	// roundMask selects the lower 32 bits of a double's bit pattern.
	roundMask uint64 = 0xffffffff
)

// Epsilon is the machine epsilon of float32, the equality check tolerance
// used by the special-case detection throughout the package.
const Epsilon float32 = 1.19209290e-07
