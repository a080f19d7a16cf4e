package nikisas

import (
	"math"
	"testing"
)

var (
	BenchFloatResult   float32
	BenchFloat64Result float64

	BenchInput1 float32 = 1.2345678
	BenchInput2 float32 = -4.321
)

// Standard library equivalents, as a baseline for the approximations.

func BenchmarkStdlibExp(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloat64Result = math.Exp(float64(BenchInput1))
	}
}

func BenchmarkStdlibLog(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloat64Result = math.Log(float64(BenchInput1))
	}
}

func BenchmarkStdlibPow(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloat64Result = math.Pow(float64(BenchInput1), float64(BenchInput2))
	}
}

func BenchmarkStdlibSin(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloat64Result = math.Sin(float64(BenchInput1))
	}
}

func BenchmarkStdlibTan(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloat64Result = math.Tan(float64(BenchInput1))
	}
}
