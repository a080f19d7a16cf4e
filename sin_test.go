package nikisas

import (
	"math"
	"testing"

	"github.com/shabbyrobe/golib/assert"

	"github.com/pnevyk/nikisas/quality"
)

func TestSinSpecialCases(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(float32(0), Sin(0))
	tt.MustEqual(float32(1), Sin(Pi*0.5))
	tt.MustEqual(float32(0), Sin(Pi))
	tt.MustEqual(float32(-1), Sin(Pi*1.5))
}

func TestSinPeriod(t *testing.T) {
	tt := assert.WrapTB(t)

	err := quality.Assert(quality.Uniform(-Pi, Pi, 100000), errorBounds(), against(Sin, math.Sin))
	tt.MustOK(err)
}

// Up to this magnitude the reduction remainder stays within the kernel's
// working range, so the output is still bounded like a sine value.
func TestSinMidRangeBounded(t *testing.T) {
	tt := assert.WrapTB(t)

	d := quality.Uniform[float32](-1e+5, 1e+5, propIterations)
	for {
		x, ok := d.Next()
		if !ok {
			break
		}
		y := Sin(x)
		tt.MustAssert(abs(y) <= 1.000001, "Sin(%v) = %v", x, y)
	}
}

// Far from zero the float32 reduction loses the angle entirely, so the
// magnitude of the output is unspecified. It must still be a number.
func TestSinFullRangeFinite(t *testing.T) {
	tt := assert.WrapTB(t)

	d := quality.Uniform[float32](-2.1e+9, 2.1e+9, propIterations)
	for {
		x, ok := d.Next()
		if !ok {
			break
		}
		y := Sin(x)
		tt.MustAssert(!math.IsNaN(float64(y)) && !math.IsInf(float64(y), 0), "Sin(%v) = %v", x, y)
	}
}

func BenchmarkSin(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloatResult = Sin(BenchInput1)
	}
}
