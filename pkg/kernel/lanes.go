package kernel

// f32x4 and f32x8 are fixed-width lane accumulators. Operations return new values
// and never allocate, which keeps the loops in the vector kernels easy for the
// compiler to keep in registers.
type (
	f32x4 [4]float32
	f32x8 [8]float32
)

// loadF32x4 copies exactly four elements; s must have length 4.
func loadF32x4(s []float32) f32x4 { return f32x4(s) }

func (a f32x4) mul(b f32x4) f32x4 {
	return f32x4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

func (a f32x4) add(b f32x4) f32x4 {
	return f32x4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// mulAdd returns a + x*y lane-wise.
func (a f32x4) mulAdd(x, y f32x4) f32x4 {
	return a.add(x.mul(y))
}

// reduceSum adds the lanes in index order.
func (a f32x4) reduceSum() float32 {
	return a[0] + a[1] + a[2] + a[3]
}

// loadF32x8 copies exactly eight elements; s must have length 8.
func loadF32x8(s []float32) f32x8 { return f32x8(s) }

func (a f32x8) mul(b f32x8) f32x8 {
	return f32x8{
		a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3],
		a[4] * b[4], a[5] * b[5], a[6] * b[6], a[7] * b[7],
	}
}

func (a f32x8) add(b f32x8) f32x8 {
	return f32x8{
		a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3],
		a[4] + b[4], a[5] + b[5], a[6] + b[6], a[7] + b[7],
	}
}

func (a f32x8) mulAdd(x, y f32x8) f32x8 {
	return a.add(x.mul(y))
}

func (a f32x8) reduceSum() float32 {
	return a[0] + a[1] + a[2] + a[3] + a[4] + a[5] + a[6] + a[7]
}
