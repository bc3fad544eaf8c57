//go:build !noasm && !cgo

package kernel

import "golang.org/x/sys/cpu"

// Without cgo the NEON kernel is plain Go assembly (dot_fma_neon_arm64.s).
func init() {
	if cpu.ARM64.HasASIMD {
		fma4Lanes = dotFMA4NEONAsm
		fma4Desc = "NEON FMLA (asm)"
	}
}

// dotFMA4NEONLanes accumulates 4-lane fused multiply-adds over the first n
// elements of x and y into acc. n must be a multiple of 4.
//
//go:noescape
func dotFMA4NEONLanes(x, y *float32, n int, acc *[4]float32)

// dotFMA4NEONAsm expects len(xs) to be a non-zero multiple of 4, no larger than len(ys).
func dotFMA4NEONAsm(xs, ys []float32) float32 {
	var acc f32x4
	dotFMA4NEONLanes(&xs[0], &ys[0], len(xs), (*[4]float32)(&acc))
	return acc.reduceSum()
}
