package quality

import (
	"math"
	"math/rand"
)

// sampleSeed is the fixed seed of every UniformSample, so that sweeps are
// reproducible across runs.
const sampleSeed = 3

// Domain is a finite producer of sample points from an interval.
type Domain[F Float] interface {
	// Next returns the next sample, or false when the domain is exhausted.
	Next() (F, bool)
}

// UniformSample draws pseudorandom values uniformly from an interval. This
// is the primary way of determining errors over a domain.
type UniformSample[F Float] struct {
	low, high F
	count     int
	rng       *rand.Rand
}

// Uniform creates a sampler of the interval [low, high] with a fixed
// number of values. It panics if low >= high or count is negative.
func Uniform[F Float](low, high F, count int) *UniformSample[F] {
	if low >= high {
		panic("quality: uniform sample: low is not less than high")
	}
	if count < 0 {
		panic("quality: uniform sample: negative count")
	}
	return &UniformSample[F]{
		low:   low,
		high:  high,
		count: count,
		rng:   rand.New(rand.NewSource(sampleSeed)),
	}
}

// UniformFraction creates a sampler whose count is the given fraction of
// the total number of machine numbers within the interval. Be careful with
// intervals crossing zero: there are a lot of machine numbers around zero
// and the sample count may become infeasible. The fraction must be in
// (0, 1]; it panics otherwise, or if low >= high.
func UniformFraction[F Float](low, high F, fraction float64) *UniformSample[F] {
	if fraction <= 0 || fraction > 1 {
		panic("quality: uniform sample: fraction outside (0, 1]")
	}
	count := int(math.Round(float64(FloatsBetween(low, high)) * fraction))
	return Uniform(low, high, count)
}

// Next implements Domain.
func (s *UniformSample[F]) Next() (F, bool) {
	if s.count == 0 {
		var zero F
		return zero, false
	}
	s.count--
	// Draw from 2^53 evenly spaced points so both bounds are reachable.
	// A bare Float64 product is half-open at the top and never produces
	// high when F is float64.
	const steps = 1 << 53
	u := float64(s.rng.Int63n(steps)) / (steps - 1)
	if u == 1 {
		return s.high, true
	}
	v := F(float64(s.low) + u*(float64(s.high)-float64(s.low)))
	if v > s.high {
		v = s.high
	}
	return v, true
}

// Exhaustive visits every machine number in an interval in increasing
// order, inclusive of both bounds. This is useful for testing values near
// an extreme of interest; the sequence is finite by construction.
type Exhaustive[F Float] struct {
	cur, high F
}

// ExhaustiveBetween creates an exhaustive iterator over [low, high]. It
// panics if low >= high.
func ExhaustiveBetween[F Float](low, high F) *Exhaustive[F] {
	if low >= high {
		panic("quality: exhaustive: low is not less than high")
	}
	return &Exhaustive[F]{cur: low, high: high}
}

// ExhaustiveNear creates an exhaustive iterator over the interval
// symmetric around value with the given epsilon to both sides. It panics
// if eps is not positive.
func ExhaustiveNear[F Float](value, eps F) *Exhaustive[F] {
	if eps <= 0 {
		panic("quality: exhaustive: eps is not positive")
	}
	return &Exhaustive[F]{cur: value - eps, high: value + eps}
}

// Next implements Domain.
func (e *Exhaustive[F]) Next() (F, bool) {
	if e.cur > e.high {
		var zero F
		return zero, false
	}
	v := e.cur
	e.cur = NextUp(e.cur)
	return v, true
}

type filtered[F Float] struct {
	d    Domain[F]
	keep func(F) bool
}

// Filter wraps a domain so that values rejected by the predicate are
// skipped before evaluation. The predicate is applied lazily, one sample
// at a time.
func Filter[F Float](d Domain[F], keep func(F) bool) Domain[F] {
	return &filtered[F]{d: d, keep: keep}
}

func (f *filtered[F]) Next() (F, bool) {
	for {
		v, ok := f.d.Next()
		if !ok {
			return v, false
		}
		if f.keep(v) {
			return v, true
		}
	}
}

// Measure runs the domain through the compute function, which returns the
// (computed, reference) pair for an input, and aggregates the errors
// without enforcing any bounds.
func Measure[F Float](d Domain[F], compute func(F) (F, F)) *Stats[F, F] {
	stats := NewStats[F, F]()
	for {
		x, ok := d.Next()
		if !ok {
			break
		}
		computed, reference := compute(x)
		// Never fails without bounds.
		_ = stats.Record(x, computed, reference)
	}
	return stats
}

// Assert runs the domain through the compute function and enforces the
// given bounds: the relative/absolute bounds per sample, failing fast on
// the first violation, and the root-mean-square bound at the end of the
// sweep. The result is deterministic for a fixed domain, so there is
// nothing to retry; the only useful outcomes are nil or a descriptive
// error.
func Assert[F Float](d Domain[F], bounds Bounds[F], compute func(F) (F, F)) error {
	stats := BoundedStats[F, F](bounds)
	for {
		x, ok := d.Next()
		if !ok {
			break
		}
		computed, reference := compute(x)
		if err := stats.Record(x, computed, reference); err != nil {
			return err
		}
	}
	return stats.Assert()
}
