package quality

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUniformCount(t *testing.T) {
	d := Uniform[float32](0, 1, 1000)

	var n int
	for {
		x, ok := d.Next()
		if !ok {
			break
		}
		require.GreaterOrEqual(t, x, float32(0))
		require.LessOrEqual(t, x, float32(1))
		n++
	}
	require.Equal(t, 1000, n)
}

func TestUniformSpread(t *testing.T) {
	d := Uniform[float32](1, 2, 100000)

	seen := make(map[uint32]struct{})
	for {
		x, ok := d.Next()
		if !ok {
			break
		}
		seen[math.Float32bits(x)] = struct{}{}
	}

	// Samples over a full binade must hit almost entirely distinct values.
	require.Greater(t, len(seen), 99000)
}

func TestUniformClosedInterval(t *testing.T) {
	low := float32(1)
	high := NextUp(NextUp(low))
	d := Uniform(low, high, 10000)

	sawHigh := false
	for {
		x, ok := d.Next()
		if !ok {
			break
		}
		require.GreaterOrEqual(t, x, low)
		require.LessOrEqual(t, x, high)
		if x == high {
			sawHigh = true
		}
	}
	// The draw is inclusive, so the top of a three-value interval must
	// show up among ten thousand samples.
	require.True(t, sawHigh)
}

func TestUniformReproducible(t *testing.T) {
	a := Uniform[float64](-5, 5, 100)
	b := Uniform[float64](-5, 5, 100)
	for {
		x, okA := a.Next()
		y, okB := b.Next()
		require.Equal(t, okA, okB)
		if !okA {
			break
		}
		require.Equal(t, x, y)
	}
}

func TestUniformFractionCount(t *testing.T) {
	low := float32(1)
	high := low
	for i := 0; i < 8; i++ {
		high = NextUp(high)
	}

	// 9 machine numbers in the interval, half of them rounds to 5.
	d := UniformFraction(low, high, 0.5)
	var n int
	for {
		if _, ok := d.Next(); !ok {
			break
		}
		n++
	}
	require.Equal(t, 5, n)
}

func TestUniformPanics(t *testing.T) {
	require.Panics(t, func() { Uniform[float32](1, 1, 10) })
	require.Panics(t, func() { Uniform[float32](2, 1, 10) })
	require.Panics(t, func() { Uniform[float32](0, 1, -1) })
	require.Panics(t, func() { UniformFraction[float32](0, 1, 0) })
	require.Panics(t, func() { UniformFraction[float32](0, 1, 1.5) })
}

func TestExhaustiveBetween(t *testing.T) {
	low := float32(1)
	high := low
	for i := 0; i < 4; i++ {
		high = NextUp(high)
	}

	d := ExhaustiveBetween(low, high)

	var values []float32
	for {
		x, ok := d.Next()
		if !ok {
			break
		}
		values = append(values, x)
	}

	require.Len(t, values, 5)
	require.Equal(t, low, values[0])
	require.Equal(t, high, values[4])
	for i := 1; i < len(values); i++ {
		require.Greater(t, values[i], values[i-1])
	}

	require.Panics(t, func() { ExhaustiveBetween[float32](1, 1) })
}

func TestExhaustiveNear(t *testing.T) {
	d := ExhaustiveNear[float32](1, 0x1p-21)

	first, ok := d.Next()
	require.True(t, ok)
	require.Equal(t, float32(1)-0x1p-21, first)

	var last float32
	var n uint64
	for {
		x, ok := d.Next()
		if !ok {
			break
		}
		last = x
		n++
	}
	require.Equal(t, float32(1)+0x1p-21, last)
	require.Equal(t, FloatsBetween(float32(1)-0x1p-21, float32(1)+0x1p-21)-1, n)

	require.Panics(t, func() { ExhaustiveNear[float32](1, 0) })
}

func TestFilter(t *testing.T) {
	d := Filter[float32](Uniform[float32](-1, 1, 1000), func(x float32) bool {
		return x >= 0
	})

	var n int
	for {
		x, ok := d.Next()
		if !ok {
			break
		}
		require.GreaterOrEqual(t, x, float32(0))
		n++
	}

	// Roughly half of the samples is dropped.
	require.Greater(t, n, 400)
	require.Less(t, n, 600)
}

func TestMeasure(t *testing.T) {
	stats := Measure[float32](Uniform[float32](1, 2, 100), func(x float32) (float32, float32) {
		return x * 1.5, x
	})

	require.Equal(t, uint64(100), stats.Count())
	require.InEpsilon(t, 0.5, float64(stats.MaxRel()), 1e-6)
	require.InEpsilon(t, 0.5, float64(stats.RMS()), 1e-6)
}

func TestAssert(t *testing.T) {
	identity := func(x float32) (float32, float32) {
		return x, x
	}
	require.NoError(t, Assert[float32](Uniform[float32](1, 2, 100), NewBounds[float32]().Rel(0.001), identity))

	off := func(x float32) (float32, float32) {
		return x + 0.5, x
	}
	err := Assert[float32](Uniform[float32](1, 2, 100), NewBounds[float32]().Rel(0.001), off)
	require.Error(t, err)

	var violation *Violation[float32, float32]
	require.ErrorAs(t, err, &violation)
	require.Equal(t, float32(0.5), violation.Abs)
	require.True(t, violation.RelDefined)
}
