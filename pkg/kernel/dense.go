package kernel

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// DenseVector is a dense vector backed by a Gonum mat.VecDense.
// Gonum stores float64, so building one converts every element.
type DenseVector struct {
	vec *mat.VecDense // nil for the empty vector
}

// NewDenseVector copies x into a new dense vector.
func NewDenseVector(x []float32) *DenseVector {
	if len(x) == 0 {
		// mat.NewVecDense panics on a zero length.
		return &DenseVector{}
	}
	data := make([]float64, len(x))
	for i, v := range x {
		data[i] = float64(v)
	}
	return &DenseVector{vec: mat.NewVecDense(len(x), data)}
}

// Len returns the number of elements in v.
func (v *DenseVector) Len() int {
	if v.vec == nil {
		return 0
	}
	return v.vec.Len()
}

// Dot returns the dot product of v and w.
func (v *DenseVector) Dot(w *DenseVector) (float32, error) {
	return DotDense(v, w)
}

// DotDense returns mat.Dot(a, b) narrowed to float32. The sum is accumulated
// in float64 and rounded once, so it can differ from the float32 kernels on
// inputs with cancellation. Gonum panics on a length mismatch, so it is
// checked here first.
func DotDense(a, b *DenseVector) (float32, error) {
	if a.Len() != b.Len() {
		return 0, fmt.Errorf("dense: %d != %d: %w", a.Len(), b.Len(), ErrLengthMismatch)
	}
	if a.Len() == 0 {
		return 0, nil
	}
	return float32(mat.Dot(a.vec, b.vec)), nil
}

// dotDenseSlices is the catalog entry for Dense. It converts on every call,
// so it measures conversion as well as the dot product itself.
func dotDenseSlices(xs, ys []float32) (float32, error) {
	return DotDense(NewDenseVector(xs), NewDenseVector(ys))
}
