package quality

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// randFinite32 draws a finite float32 from random bit patterns.
func randFinite32(rng *rand.Rand) float32 {
	for {
		x := math.Float32frombits(uint32(rng.Uint32()))
		if x == x && !math.IsInf(float64(x), 0) {
			return x
		}
	}
}

func TestEps(t *testing.T) {
	require.Equal(t, float32(0x1p-23), Eps[float32]())
	require.Equal(t, 0x1p-52, Eps[float64]())
}

func TestNextUp(t *testing.T) {
	require.Equal(t, float32(1)+0x1p-23, NextUp[float32](1))
	require.Equal(t, 1+0x1p-52, NextUp[float64](1))

	// Stepping down from 1 crosses into the finer-grained binade below.
	require.Equal(t, float32(1)-0x1p-24, NextDown[float32](1))

	// Positive and negative zero are one point.
	smallest := math.Float32frombits(1)
	require.Equal(t, smallest, NextUp(float32(0)))
	require.Equal(t, smallest, NextUp(negZero32()))
	require.Equal(t, -smallest, NextDown(float32(0)))
	require.Equal(t, -smallest, NextDown(negZero32()))

	require.Equal(t, float32(-1)+0x1p-24, NextUp(float32(-1)))
}

func TestNextUpDownRoundTrip(t *testing.T) {
	for _, x := range []float32{0, 1, -1, 0.5, 3.14159, -2.75e+9, math.Float32frombits(1)} {
		require.Equal(t, x, NextDown(NextUp(x)), "at %v", x)
		require.Equal(t, x, NextUp(NextDown(x)), "at %v", x)
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		x := randFinite32(rng)
		if x == 0 {
			// Stepping up and back from either zero lands on positive zero.
			continue
		}
		require.Equal(t, x, NextDown(NextUp(x)), "at %v", x)
		require.Equal(t, x, NextUp(NextDown(x)), "at %v", x)
	}
}

func negZero32() float32 {
	return math.Float32frombits(0x80000000)
}

func TestDecompose(t *testing.T) {
	y, n := Decompose[float32](6)
	require.Equal(t, float32(1.5), y)
	require.Equal(t, int32(2), n)

	y, n = Decompose[float32](0.375)
	require.Equal(t, float32(1.5), y)
	require.Equal(t, int32(-2), n)

	y64, n := Decompose[float64](-48)
	require.Equal(t, -1.5, y64)
	require.Equal(t, int32(5), n)

	for _, x := range []float64{1, 2.5, 9.75e-12, 8.4e+21} {
		y, n := Decompose(x)
		require.Equal(t, x, math.Ldexp(y, int(n)), "recomposing %v", x)
	}
}

func TestFloatsBetween(t *testing.T) {
	require.Equal(t, uint64(1), FloatsBetween[float32](1, 1))
	require.Equal(t, uint64(2), FloatsBetween(float32(1), NextUp[float32](1)))

	// A full binade holds one value per mantissa pattern, plus the closing
	// endpoint.
	require.Equal(t, uint64(1)<<23+1, FloatsBetween[float32](1, 2))
	require.Equal(t, uint64(1)<<52+1, FloatsBetween[float64](1, 2))
	require.Equal(t, uint64(1)<<23+1, FloatsBetween[float32](-2, -1))

	// Subnormals count like any other value.
	require.Equal(t, uint64(11), FloatsBetween(float32(0), math.Float32frombits(10)))

	// Crossing zero counts zero exactly once.
	require.Equal(t, uint64(2)*uint64(math.Float32bits(1))+1, FloatsBetween[float32](-1, 1))

	require.Equal(t, uint64(1)<<23, FloatsBetween(float32(1), NextDown[float32](2)))
	require.Equal(t, uint64(127)<<23+1, FloatsBetween[float32](0, 1))
	require.Equal(t, uint64(2), FloatsBetween(float32(3.14), NextUp[float32](3.14)))

	require.Panics(t, func() { FloatsBetween[float32](2, 1) })
}

// The enumerated count around an arbitrary point must agree with the
// closed-form count, including degenerate intervals where the epsilon is
// too small to move the endpoints.
func TestExhaustiveNearCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		x := randFinite32(rng)
		k := 1 + rng.Intn(100)

		var eps float32
		for j := 0; j < k; j++ {
			eps = NextUp(eps)
		}

		var n uint64
		d := ExhaustiveNear(x, eps)
		for {
			if _, ok := d.Next(); !ok {
				break
			}
			n++
		}

		require.Equal(t, FloatsBetween(x-eps, x+eps), n, "around %v with eps %v", x, eps)
	}
}

func TestFloatsBetweenMatchesExhaustive(t *testing.T) {
	for _, low := range []float32{1, -1.5, 0, math.Float32frombits(3), 6.0e+7} {
		high := low
		for i := 0; i < 100; i++ {
			high = NextUp(high)
		}

		var n uint64
		d := ExhaustiveBetween(low, high)
		for {
			if _, ok := d.Next(); !ok {
				break
			}
			n++
		}

		require.Equal(t, FloatsBetween(low, high), n, "counting from %v", low)
	}
}

func TestShift(t *testing.T) {
	require.Equal(t, float32(1)+0x1p-23, ShiftRight[float32](1))
	require.Equal(t, float32(1)-0x1p-23, ShiftLeft[float32](1))
	require.Equal(t, Eps[float64](), ShiftRight[float64](0))
}
