package kernel

// fma4Lanes is set by architecture files when the CPU has a fused multiply-add
// vector instruction. It returns the horizontally reduced lane sum of xs and ys,
// whose length must be a non-zero multiple of 4.
var (
	fma4Lanes func(xs, ys []float32) float32
	fma4Desc  string
)

// dotFMA4 has the contract of DotVec4, with the lane step done by a native
// fused multiply-add. Only reachable through the catalog when fma4Lanes is set.
func dotFMA4(xs, ys []float32) float32 {
	n, split := splitIndex(xs, ys, 4)
	tail := dotTail(xs, ys, split, n)
	if split == 0 {
		return tail
	}
	return tail + fma4Lanes(xs[:split], ys[:split])
}
