package kernel

import (
	"math"
	"math/rand"
)

// ramp returns 0, 1, ..., n-1.
func ramp(n int) []float32 {
	v := make([]float32, n)
	for i := range v {
		v[i] = float32(i)
	}
	return v
}

// smallInts returns values in [-3, 3]; every partial sum of their products is
// exactly representable for the lengths used in these tests.
func smallInts(rng *rand.Rand, n int) []float32 {
	v := make([]float32, n)
	for i := range v {
		v[i] = float32(rng.Intn(7) - 3)
	}
	return v
}

func randomVector(rng *rand.Rand, n int) []float32 {
	v := make([]float32, n)
	for i := range v {
		v[i] = rng.Float32()*2 - 1
	}
	return v
}

// reference64 returns the dot product in float64 and the sum of |x*y|.
func reference64(xs, ys []float32) (dot, abs float64) {
	n := min(len(xs), len(ys))
	for i := 0; i < n; i++ {
		p := float64(xs[i]) * float64(ys[i])
		dot += p
		abs += math.Abs(p)
	}
	return dot, abs
}

// withinRoundoff checks got against the float64 reference using the standard
// error bound for float32 summation in any order.
func withinRoundoff(got float32, xs, ys []float32) bool {
	const u = 1.0 / (1 << 24)
	dot, abs := reference64(xs, ys)
	n := min(len(xs), len(ys))
	tol := 2 * float64(n+2) * u * abs
	return math.Abs(float64(got)-dot) <= tol
}

// relEqual compares with the relative tolerance used for reassociated sums.
func relEqual(a, b float32) bool {
	const tolerance = 1e-5
	if a == b {
		return true
	}
	return math.Abs(float64(a-b)) <= tolerance*math.Max(math.Abs(float64(a)), math.Abs(float64(b)))
}
