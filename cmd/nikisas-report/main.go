// Command nikisas-report measures the approximation error of every function
// in the nikisas package against the float64 implementations in the
// standard math package, and prints the resulting error table.
//
// Usage:
//
//	nikisas-report                  # plain-text table over all functions
//	nikisas-report -csv             # CSV table with header
//	nikisas-report -count 100000    # samples per sweep
//	nikisas-report -fn exp,ln,sin   # restrict to a subset of functions
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/pnevyk/nikisas"
	"github.com/pnevyk/nikisas/quality"
)

var (
	csvOut = flag.Bool("csv", false, "Emit the table in CSV format instead of plain text")
	count  = flag.Int("count", 10000, "Number of sampled values per sweep")
	fns    = flag.String("fn", "", "Comma-separated subset of functions to measure (default: all)")
)

// report is the output surface shared by all Stats instantiations.
type report interface {
	WritePlain(w io.Writer, name string) error
	WriteCSV(w io.Writer, name string) error
}

type sweep struct {
	name string
	run  func(count int) report
}

// wrap adapts a float32 function and its float64 reference into the
// (computed, reference) shape the quality package consumes.
func wrap(fn func(float32) float32, ref func(float64) float64) func(float32) (float32, float32) {
	return func(x float32) (float32, float32) {
		return fn(x), float32(ref(float64(x)))
	}
}

// uniform measures fn against ref over [low, high], optionally skipping
// values rejected by keep.
func uniform(low, high float32, fn func(float32) float32, ref func(float64) float64, keep func(float32) bool) func(count int) report {
	return func(count int) report {
		var d quality.Domain[float32] = quality.Uniform(low, high, count)
		if keep != nil {
			d = quality.Filter(d, keep)
		}
		return quality.Measure(d, wrap(fn, ref))
	}
}

// powSweep measures Pow over a grid of bases and powers. The argument of a
// worst-case record is the (base, power) pair.
func powSweep(count int) report {
	stats := quality.NewStats[float32, [2]float32]()

	// Roughly count samples in total, spread over a base/power grid.
	outer := int(math.Sqrt(float64(count)))
	if outer < 1 {
		outer = 1
	}

	bases := quality.Uniform(quality.ShiftRight(float32(0)), 32, outer)
	for {
		x, ok := bases.Next()
		if !ok {
			break
		}
		powers := quality.Filter[float32](quality.Uniform[float32](-10, 10, outer), quality.Avoid(float32(0)))
		for {
			p, ok := powers.Next()
			if !ok {
				break
			}
			ref := math.Pow(float64(x), float64(p))
			if math.IsInf(ref, 0) || math.IsNaN(ref) {
				continue
			}
			_ = stats.Record([2]float32{x, p}, nikisas.Pow(x, p), float32(ref))
		}
	}
	return stats
}

var sweeps = []sweep{
	{"exp", uniform(-87.3, 88.7, nikisas.Exp, math.Exp, nil)},
	{"ln", uniform(quality.ShiftRight(float32(0)), 3.4e+38, nikisas.Ln, math.Log, nil)},
	{"log2", uniform(quality.ShiftRight(float32(0)), 3.4e+38, nikisas.Log2, math.Log2, nil)},
	{"log10", uniform(quality.ShiftRight(float32(0)), 3.4e+38, nikisas.Log10, math.Log10, nil)},
	{"pow", powSweep},
	{"pow2", uniform(-126.0, 127.9, nikisas.Pow2, math.Exp2, nil)},
	{"pow10", uniform(-37.9, 38.5, nikisas.Pow10, pow10Ref, nil)},
	{"sin", uniform(-2.1e+9, 2.1e+9, nikisas.Sin, math.Sin, nil)},
	{"cos", uniform(-2.1e+9, 2.1e+9, nikisas.Cos, math.Cos, nil)},
	{"tan", uniform(-2.1e+9, 2.1e+9, nikisas.Tan, math.Tan, quality.AvoidOddMults(float32(math.Pi/2)))},
	{"cot", uniform(-2.1e+9, 2.1e+9, nikisas.Cot, cotRef, quality.AvoidMults(float32(math.Pi/2)))},
}

func pow10Ref(p float64) float64 {
	return math.Pow(10, p)
}

func cotRef(x float64) float64 {
	return 1 / math.Tan(x)
}

func main() {
	flag.Parse()

	selected := map[string]bool{}
	if *fns != "" {
		for _, name := range strings.Split(*fns, ",") {
			selected[strings.TrimSpace(name)] = true
		}
	}

	if *csvOut {
		if err := quality.CSVHeader(os.Stdout); err != nil {
			fail(err)
		}
	}

	for _, s := range sweeps {
		if len(selected) > 0 && !selected[s.name] {
			continue
		}

		stats := s.run(*count)

		var err error
		if *csvOut {
			err = stats.WriteCSV(os.Stdout, s.name)
		} else {
			err = stats.WritePlain(os.Stdout, s.name)
		}
		if err != nil {
			fail(err)
		}
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "nikisas-report:", err)
	os.Exit(1)
}
