package kernel

// Dot is the reference dot product: a sequential sum of xs[i]*ys[i] over the
// positions both slices share. It returns 0 if either slice is empty.
func Dot(xs, ys []float32) float32 {
	n := min(len(xs), len(ys))
	xs, ys = xs[:n], ys[:n]

	var sum float32
	for i := range xs {
		sum += xs[i] * ys[i]
	}
	return sum
}

// SumSquares returns the self dot product of x.
func SumSquares(x []float32) float32 {
	return Dot(x, x)
}
