package kernel

import "fmt"

// checkMultiple enforces the unrolled kernels' precondition on the shared length.
func checkMultiple(n, factor int) error {
	if n%factor != 0 {
		return fmt.Errorf("unrolled(%d): length %d: %w", factor, n, ErrLengthNotMultiple)
	}
	return nil
}

// DotUnrolled4 computes the dot product with four independent accumulators.
// Element i feeds accumulator i%4 and the accumulators are summed in order 0..3.
// The shared length of xs and ys must be a multiple of 4.
func DotUnrolled4(xs, ys []float32) (float32, error) {
	n := min(len(xs), len(ys))
	if err := checkMultiple(n, 4); err != nil {
		return 0, err
	}
	xs, ys = xs[:n], ys[:n]

	var s0, s1, s2, s3 float32
	for i := 0; i < n; i += 4 {
		x, y := xs[i:i+4:i+4], ys[i:i+4:i+4]
		s0 += x[0] * y[0]
		s1 += x[1] * y[1]
		s2 += x[2] * y[2]
		s3 += x[3] * y[3]
	}
	return s0 + s1 + s2 + s3, nil
}

// DotUnrolled8 computes the dot product with eight independent accumulators.
// The shared length of xs and ys must be a multiple of 8.
func DotUnrolled8(xs, ys []float32) (float32, error) {
	n := min(len(xs), len(ys))
	if err := checkMultiple(n, 8); err != nil {
		return 0, err
	}
	xs, ys = xs[:n], ys[:n]

	var s0, s1, s2, s3, s4, s5, s6, s7 float32
	for i := 0; i < n; i += 8 {
		x, y := xs[i:i+8:i+8], ys[i:i+8:i+8]
		s0 += x[0] * y[0]
		s1 += x[1] * y[1]
		s2 += x[2] * y[2]
		s3 += x[3] * y[3]
		s4 += x[4] * y[4]
		s5 += x[5] * y[5]
		s6 += x[6] * y[6]
		s7 += x[7] * y[7]
	}
	return s0 + s1 + s2 + s3 + s4 + s5 + s6 + s7, nil
}
