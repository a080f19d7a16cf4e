package quality

import (
	"fmt"
	"math"
)

// Bounds declares the error bounds to be enforced. By default all are
// empty and therefore not checked; setting a bound enables checking it.
//
//	bounds := quality.NewBounds[float32]().Rel(0.001).Abs(0.0001)
//
// When both the relative and the absolute bound are set, a sample passes
// if at least one of them holds.
type Bounds[F Float] struct {
	rel, abs, rms          F
	hasRel, hasAbs, hasRMS bool
}

// NewBounds creates empty bounds, that is, none is checked.
func NewBounds[F Float]() Bounds[F] {
	return Bounds[F]{}
}

// Rel sets the bound for the maximum relative error.
func (b Bounds[F]) Rel(bound F) Bounds[F] {
	b.rel, b.hasRel = bound, true
	return b
}

// Abs sets the bound for the maximum absolute error.
func (b Bounds[F]) Abs(bound F) Bounds[F] {
	b.abs, b.hasAbs = bound, true
	return b
}

// RMS sets the bound for the root-mean-square error.
func (b Bounds[F]) RMS(bound F) Bounds[F] {
	b.rms, b.hasRMS = bound, true
	return b
}

// CheckRelOrAbs reports whether the relative and absolute errors satisfy
// the bounds. With both bounds set, satisfying either one is enough.
func (b Bounds[F]) CheckRelOrAbs(rel, abs F) bool {
	switch {
	case b.hasRel && b.hasAbs:
		return rel <= b.rel || abs <= b.abs
	case b.hasRel:
		return rel <= b.rel
	case b.hasAbs:
		return abs <= b.abs
	default:
		return true
	}
}

// CheckAbs reports whether the absolute error satisfies the bound. This is
// used on its own when the relative error is undefined because the
// reference value is zero.
func (b Bounds[F]) CheckAbs(abs F) bool {
	return !b.hasAbs || abs <= b.abs
}

// CheckRMS reports whether the root-mean-square error satisfies the bound.
func (b Bounds[F]) CheckRMS(rms F) bool {
	return !b.hasRMS || rms <= b.rms
}

// Violation is returned when a single sample exceeds the per-sample error
// bounds. It carries the offending argument and both error magnitudes.
type Violation[F Float, In any] struct {
	Arg In
	Rel F
	Abs F

	// RelDefined is false when the reference value was zero, in which case
	// Rel is meaningless and only the absolute bound was checked.
	RelDefined bool
}

func (v *Violation[F, In]) Error() string {
	if !v.RelDefined {
		return fmt.Sprintf("error exceeded at %v, absolute error = %v", v.Arg, v.Abs)
	}
	return fmt.Sprintf("error exceeded at %v, relative error = %v, absolute error = %v", v.Arg, v.Rel, v.Abs)
}

// RMSViolation is returned by Stats.Assert when the aggregate
// root-mean-square error exceeds its bound.
type RMSViolation[F Float] struct {
	RMS   F
	Bound F
}

func (v *RMSViolation[F]) Error() string {
	return fmt.Sprintf("root-mean-square error %v exceeds the bound %v", v.RMS, v.Bound)
}

// Stats aggregates errors between computed and reference values, input by
// input. The first type parameter is the floating point width, the second
// the argument type, which for multiple-argument functions can be a small
// struct or array.
//
// A Stats value belongs to a single sweep; for parallel sweeps over
// disjoint sub-intervals, give each its own Stats and combine them with
// Merge at the end.
type Stats[F Float, In any] struct {
	maxAbs, maxRel       F
	maxAbsArg, maxRelArg In
	sumRel               F
	count                uint64
	bounds               Bounds[F]
}

// NewStats initializes the aggregator without any bounds.
func NewStats[F Float, In any]() *Stats[F, In] {
	return &Stats[F, In]{}
}

// BoundedStats initializes the aggregator with the given bounds. Record
// then fails fast on the first sample that violates them.
func BoundedStats[F Float, In any](bounds Bounds[F]) *Stats[F, In] {
	return &Stats[F, In]{bounds: bounds}
}

// Record computes the errors between the computed and reference value for
// the given argument and folds them into the running statistics. If bounds
// were supplied and this sample violates them, a *Violation is returned
// immediately.
//
// When the reference value is exactly zero the relative error is
// undefined; the sample is excluded from the relative and root-mean-square
// accumulation but still checked against the absolute bound.
func (s *Stats[F, In]) Record(arg In, computed, reference F) error {
	abs := computed - reference
	if abs < 0 {
		abs = -abs
	}

	if abs > s.maxAbs {
		s.maxAbs, s.maxAbsArg = abs, arg
	}

	if reference == 0 {
		if !s.bounds.CheckAbs(abs) {
			return &Violation[F, In]{Arg: arg, Abs: abs}
		}
		return nil
	}

	ref := reference
	if ref < 0 {
		ref = -ref
	}
	rel := abs / ref

	if rel > s.maxRel {
		s.maxRel, s.maxRelArg = rel, arg
	}

	s.sumRel += rel * rel
	s.count++

	if !s.bounds.CheckRelOrAbs(rel, abs) {
		return &Violation[F, In]{Arg: arg, Rel: rel, Abs: abs, RelDefined: true}
	}
	return nil
}

// MaxRel returns the maximum relative error encountered.
func (s *Stats[F, In]) MaxRel() F { return s.maxRel }

// MaxRelArg returns the argument of the maximum relative error.
func (s *Stats[F, In]) MaxRelArg() In { return s.maxRelArg }

// MaxAbs returns the maximum absolute error encountered.
func (s *Stats[F, In]) MaxAbs() F { return s.maxAbs }

// MaxAbsArg returns the argument of the maximum absolute error.
func (s *Stats[F, In]) MaxAbsArg() In { return s.maxAbsArg }

// Count returns the number of samples with a defined relative error.
func (s *Stats[F, In]) Count() uint64 { return s.count }

// RMS returns the root-mean-square error over all processed samples with a
// defined relative error.
func (s *Stats[F, In]) RMS() F {
	if s.count == 0 {
		return 0
	}
	return F(math.Sqrt(float64(s.sumRel) / float64(s.count)))
}

// Assert checks the aggregate root-mean-square bound after a full sweep.
// The per-sample relative and absolute bounds were already enforced during
// Record.
func (s *Stats[F, In]) Assert() error {
	rms := s.RMS()
	if s.count > 0 && !s.bounds.CheckRMS(rms) {
		return &RMSViolation[F]{RMS: rms, Bound: s.bounds.rms}
	}
	return nil
}

// Merge folds the statistics of another sweep into s: the element-wise
// maximum of the worst-case records and the recombination of the
// sum-of-squares and counts, not of the root-mean-square values
// themselves. Bounds are not merged; they belong to the sweep that
// enforced them.
func (s *Stats[F, In]) Merge(o *Stats[F, In]) {
	if o.maxAbs > s.maxAbs {
		s.maxAbs, s.maxAbsArg = o.maxAbs, o.maxAbsArg
	}
	if o.maxRel > s.maxRel {
		s.maxRel, s.maxRelArg = o.maxRel, o.maxRelArg
	}
	s.sumRel += o.sumRel
	s.count += o.count
}
