package kernel

import (
	"math/rand"
	"testing"
)

func TestVectorKernels(t *testing.T) {
	kernels := map[string]func(xs, ys []float32) float32{
		"Vec4": DotVec4,
		"Vec8": DotVec8,
	}

	for name, fn := range kernels {
		t.Run(name+"/Scenario", func(t *testing.T) {
			x := ramp(8)
			if got := fn(x, x); !relEqual(got, 140) {
				t.Errorf("got %f, want 140", got)
			}
		})

		t.Run(name+"/Empty", func(t *testing.T) {
			if got := fn(nil, ramp(5)); got != 0 {
				t.Errorf("got %f with an empty xs, want 0", got)
			}
			if got := fn(ramp(5), []float32{}); got != 0 {
				t.Errorf("got %f with an empty ys, want 0", got)
			}
		})

		t.Run(name+"/RemainderOnly", func(t *testing.T) {
			// Shorter than one chunk: only the scalar path runs.
			xs := []float32{1, 2, 3}
			ys := []float32{4, 5, 6}
			if got := fn(xs, ys); got != 32 {
				t.Errorf("got %f, want 32", got)
			}
		})

		t.Run(name+"/Truncation", func(t *testing.T) {
			rng := rand.New(rand.NewSource(3))
			for _, n := range []int{5, 8, 13, 64, 333} {
				xs := randomVector(rng, n+rng.Intn(20)+1)
				ys := randomVector(rng, n)
				if got, want := fn(xs, ys), fn(xs[:len(ys)], ys); got != want {
					t.Errorf("n=%d: longer xs gives %v, truncated gives %v", n, got, want)
				}
				if got, want := fn(ys, xs), fn(ys, xs[:len(ys)]); got != want {
					t.Errorf("n=%d: longer ys gives %v, truncated gives %v", n, got, want)
				}
			}
		})

		t.Run(name+"/MatchesScalarOnIntegers", func(t *testing.T) {
			// Integer-valued inputs keep every partial sum exact, so
			// reassociation cannot change the result.
			rng := rand.New(rand.NewSource(11))
			for _, n := range []int{1, 4, 7, 8, 9, 100, 1023} {
				xs := smallInts(rng, n)
				ys := smallInts(rng, n)
				if got, want := fn(xs, ys), Dot(xs, ys); got != want {
					t.Errorf("n=%d: got %v, scalar %v", n, got, want)
				}
			}
		})
	}
}

func TestLanes(t *testing.T) {
	a := loadF32x4([]float32{1, 2, 3, 4})
	b := loadF32x4([]float32{5, 6, 7, 8})
	if got := a.mul(b); got != (f32x4{5, 12, 21, 32}) {
		t.Errorf("mul: got %v", got)
	}
	if got := a.add(b); got != (f32x4{6, 8, 10, 12}) {
		t.Errorf("add: got %v", got)
	}
	if got := a.mulAdd(a, b).reduceSum(); got != 80 {
		t.Errorf("mulAdd/reduceSum: got %v, want 80", got)
	}

	c := loadF32x8(ramp(8))
	if got := c.mulAdd(c, c).reduceSum(); got != 28+140 {
		t.Errorf("f32x8 mulAdd/reduceSum: got %v, want 168", got)
	}
}

func TestSplitIndex(t *testing.T) {
	cases := []struct {
		lx, ly, width int
		n, split      int
	}{
		{0, 0, 4, 0, 0},
		{3, 10, 4, 3, 0},
		{10, 9, 4, 9, 8},
		{16, 16, 8, 16, 16},
		{23, 100, 8, 23, 16},
	}
	for _, tc := range cases {
		n, split := splitIndex(make([]float32, tc.lx), make([]float32, tc.ly), tc.width)
		if n != tc.n || split != tc.split {
			t.Errorf("splitIndex(%d, %d, %d) = (%d, %d), want (%d, %d)",
				tc.lx, tc.ly, tc.width, n, split, tc.n, tc.split)
		}
	}
}
