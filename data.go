package nikisas

// Calibrated constants, stored as exact float32 bit patterns. These are
// inputs to the approximations, never derived at runtime.
const (
	bitsE         uint32 = 0x402df854
	bitsLn2       uint32 = 0x3f317218
	bitsLn2Inv    uint32 = 0x3fb8aa3b
	bitsSqrt2     uint32 = 0x3fb504f3
	bitsLog2E     uint32 = 0x3fb8aa3b
	bitsLog10E    uint32 = 0x3ede5bd9
	bitsPiHalf    uint32 = 0x3fc90fdb
	bitsPiHalfInv uint32 = 0x3f22f983
	bitsPiQuart   uint32 = 0x3f490fdb
)

// Minimax polynomial coefficients found with Sollya, one table per
// approximated kernel. The tables are opaque calibration data; changing one
// changes the measured error bounds.
var (
	polyExp   = [5]uint32{0x3e2aaa83, 0x3d2aaa70, 0x3c08c01f, 0x3ab6aaed, 0x39063f86}
	polyLn1p  = [5]uint32{0x3eaa95d3, 0xbe7f5a82, 0x3e51db4d, 0xbe3d687c, 0x3defc7b9}
	polyPow2  = [5]uint32{0x3f31721a, 0x3e75fcfc, 0x3d637c2c, 0x3c1b5267, 0x3acf2bc8}
	polyPow10 = [5]uint32{0x4013623b, 0x402929c4, 0x40069c52, 0x3f694226, 0x3f7749be}
	polySin   = [5]uint32{0xbe2aaaa8, 0x3c0886a0, 0xb94e294d, 0xb477034f, 0x35ea3ca9}
	polyCos   = [5]uint32{0xbf000000, 0x3d2aaaab, 0xbab60baa, 0x37d033fe, 0xb499e1e4}
	polyTan   = [5]uint32{0x3eaaaf56, 0x3e07e0db, 0x3d6d3401, 0x3c3750d4, 0x3cae109d}
)
