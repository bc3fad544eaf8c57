// Package workload generates the input buffers fed to the dot product kernels.
package workload

import (
	"fmt"
	"math/rand"

	"github.com/x448/float16"
)

// Kind selects how a buffer is filled.
type Kind string

const (
	// Zero is an all-zero buffer, the classic benchmark input.
	Zero Kind = "zero"
	// Ramp holds 0, 1, 2, ... n-1.
	Ramp Kind = "ramp"
	// Random holds seeded uniform values in [-1, 1).
	Random Kind = "random"
	// Half holds Random values rounded to the IEEE-754 half precision grid.
	// Their products are exact in float32, so only summation rounds.
	Half Kind = "half"
)

// Kinds lists every supported workload.
var Kinds = []Kind{Zero, Ramp, Random, Half}

// ParseKind validates a workload name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown workload '%s'", s)
}

// Generate returns a new buffer of n elements. The same kind, size and seed
// always produce the same buffer.
func Generate(kind Kind, n int, seed int64) ([]float32, error) {
	if n < 0 {
		return nil, fmt.Errorf("workload size must not be negative, got %d", n)
	}
	v := make([]float32, n)

	switch kind {
	case Zero:
	case Ramp:
		for i := range v {
			v[i] = float32(i)
		}
	case Random, Half:
		rng := rand.New(rand.NewSource(seed))
		for i := range v {
			v[i] = rng.Float32()*2 - 1
		}
		if kind == Half {
			roundToHalf(v)
		}
	default:
		return nil, fmt.Errorf("unknown workload '%s'", kind)
	}
	return v, nil
}

// roundToHalf rounds every element to the nearest float16 value in place.
func roundToHalf(v []float32) {
	for i, f := range v {
		v[i] = float16.Fromfloat32(f).Float32()
	}
}

// Pair returns two independent buffers of the same kind, the second seeded
// with seed+1. Zero and Ramp produce two equal buffers.
func Pair(kind Kind, n int, seed int64) (xs, ys []float32, err error) {
	if xs, err = Generate(kind, n, seed); err != nil {
		return nil, nil, err
	}
	if ys, err = Generate(kind, n, seed+1); err != nil {
		return nil, nil, err
	}
	return xs, ys, nil
}
