package kernel

import (
	"fmt"

	"gonum.org/v1/gonum/blas/gonum"
)

// --- Gonum-based adapters ---
var gonumEngine = gonum.Implementation{}

// DotBLAS forwards to Gonum's BLAS Sdot with unit strides. Unlike the other
// kernels it requires x and y to have the same length.
func DotBLAS(x, y []float32) (float32, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("blas: %d != %d: %w", len(x), len(y), ErrLengthMismatch)
	}
	return gonumEngine.Sdot(len(x), x, 1, y, 1), nil
}
