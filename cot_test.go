package nikisas

import (
	"math"
	"testing"

	"github.com/shabbyrobe/golib/assert"

	"github.com/pnevyk/nikisas/quality"
)

func cotRef(x float64) float64 {
	return 1 / math.Tan(x)
}

func TestCotSpecialCases(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(float32(1), Cot(Pi*0.25))
	tt.MustAssert(math.IsInf(float64(Cot(0)), 1))
}

// The period is kept clear of the asymptotes at 0 and π, where the error
// grows with the reciprocal of the distance to them and no fixed bound can
// hold.
func TestCotPeriod(t *testing.T) {
	tt := assert.WrapTB(t)

	low := float32(0.001)
	high := float32(math.Pi - 0.001)
	err := quality.Assert(quality.Uniform(low, high, 100000), errorBounds(), against(Cot, cotRef))
	tt.MustOK(err)
}

func TestCotReciprocal(t *testing.T) {
	tt := assert.WrapTB(t)

	d := quality.Filter[float32](quality.Uniform[float32](-10, 10, propIterations), quality.AvoidMults(float32(math.Pi/2)))
	for {
		x, ok := d.Next()
		if !ok {
			break
		}
		tt.MustEqual(1/Tan(x), Cot(x), "at %v", x)
	}
}

func BenchmarkCot(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloatResult = Cot(BenchInput1)
	}
}
