//go:build arm64 && cgo

package kernel

/*
#cgo CFLAGS: -O3
#include <arm_neon.h>
#include <stddef.h>

static float dot_fma4_neon(const float* x, const float* y, size_t n) {
	float32x4_t acc = vdupq_n_f32(0.0f);
	for (size_t i = 0; i < n; i += 4) {
		acc = vfmaq_f32(acc, vld1q_f32(x + i), vld1q_f32(y + i));
	}
	return vaddvq_f32(acc);
}
*/
import "C"

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

func init() {
	if cpu.ARM64.HasASIMD {
		fma4Lanes = dotFMA4NEON
		fma4Desc = "NEON FMLA (cgo)"
	}
}

// dotFMA4NEON expects len(xs) to be a non-zero multiple of 4, no larger than len(ys).
func dotFMA4NEON(xs, ys []float32) float32 {
	return float32(C.dot_fma4_neon(
		(*C.float)(unsafe.Pointer(&xs[0])),
		(*C.float)(unsafe.Pointer(&ys[0])),
		C.size_t(len(xs)),
	))
}
