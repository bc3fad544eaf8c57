package kernel

// splitIndex returns the shared length of xs and ys and the end of the prefix
// that fills whole chunks of width lanes.
func splitIndex(xs, ys []float32, width int) (n, split int) {
	n = min(len(xs), len(ys))
	return n, n / width * width
}

// dotTail sums the scalar remainder xs[from:n]*ys[from:n].
func dotTail(xs, ys []float32, from, n int) float32 {
	var sum float32
	for i := from; i < n; i++ {
		sum += xs[i] * ys[i]
	}
	return sum
}

// DotVec4 computes the dot product over the shared prefix of xs and ys using
// 4-lane accumulation. The part that does not fill a whole chunk is summed
// sequentially and added to the horizontally reduced lanes. Elements past the
// end of the shorter slice are ignored.
func DotVec4(xs, ys []float32) float32 {
	n, split := splitIndex(xs, ys, 4)

	var acc f32x4
	for i := 0; i < split; i += 4 {
		acc = acc.mulAdd(loadF32x4(xs[i:i+4]), loadF32x4(ys[i:i+4]))
	}
	return dotTail(xs, ys, split, n) + acc.reduceSum()
}

// DotVec8 is DotVec4 with 8 lanes.
func DotVec8(xs, ys []float32) float32 {
	n, split := splitIndex(xs, ys, 8)

	var acc f32x8
	for i := 0; i < split; i += 8 {
		acc = acc.mulAdd(loadF32x8(xs[i:i+8]), loadF32x8(ys[i:i+8]))
	}
	return dotTail(xs, ys, split, n) + acc.reduceSum()
}
