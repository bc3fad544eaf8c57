//go:build !noasm

package kernel

import "github.com/klauspost/cpuid/v2"

//go:generate go run ./gen -out dot_fma_amd64.s -stubs dot_fma_stub_amd64.go -pkg kernel

func init() {
	if cpuid.CPU.Supports(cpuid.AVX, cpuid.FMA3) {
		fma4Lanes = dotFMA4AVX
		fma4Desc = "AVX/FMA3 (avo)"
	}
}
