// Package kernel provides competing implementations of the float32 dot product.
// It ships a scalar reference, unrolled variants, portable fixed-width lane kernels
// (4 and 8 lanes), a fused multiply-add kernel bound to native vector instructions,
// and thin adapters over Gonum's BLAS and dense vector types.
//
// Every kernel is reachable through a catalog. Architecture files register the
// hardware-accelerated entries in init() after checking the CPU at runtime, so a
// kernel that the current machine cannot run is simply absent from the catalog.
package kernel

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// --- Public Types ---

// Kernel names a dot product implementation in the catalog.
type Kernel string

const (
	// Scalar is the sequential reference implementation.
	Scalar Kernel = "scalar"
	// Unrolled4 splits the loop across four independent accumulators.
	Unrolled4 Kernel = "unrolled4"
	// Unrolled8 splits the loop across eight independent accumulators.
	Unrolled8 Kernel = "unrolled8"
	// Vec4 is the portable 4-lane kernel.
	Vec4 Kernel = "vec4"
	// Vec8 is the portable 8-lane kernel.
	Vec8 Kernel = "vec8"
	// FMA4 is the 4-lane fused multiply-add kernel on native vector instructions.
	FMA4 Kernel = "fma4"
	// BLAS forwards to Gonum's BLAS Sdot.
	BLAS Kernel = "blas"
	// Dense forwards to Gonum's dense vector dot product.
	Dense Kernel = "dense"
)

// Func is the uniform call surface shared by every catalog entry.
type Func func(xs, ys []float32) (float32, error)

var (
	// ErrLengthNotMultiple is returned by the unrolled kernels when the input
	// length is not a multiple of the unroll factor.
	ErrLengthNotMultiple = errors.New("input length is not a multiple of the unroll factor")
	// ErrLengthMismatch is returned by the adapters when the two inputs differ in length.
	ErrLengthMismatch = errors.New("vectors must have the same length")
	// ErrUnavailable is returned for a known kernel the current CPU cannot run.
	ErrUnavailable = errors.New("kernel not available on this platform")
)

// entry is a registered catalog item.
type entry struct {
	fn   Func
	desc string
	// reference entries are performance baselines, not part of the tested kernel surface.
	reference bool
}

// displayOrder fixes the listing order of Available and Core.
var displayOrder = []Kernel{Scalar, Unrolled4, Unrolled8, Vec4, Vec8, FMA4, BLAS, Dense}

// --- Catalog ---

var (
	catalog     map[Kernel]entry
	catalogOnce sync.Once
)

// buildCatalog runs once, after every init() has had the chance to set fma4Lanes.
func buildCatalog() {
	catalog = map[Kernel]entry{
		Scalar:    {fn: total(Dot), desc: "Pure Go"},
		Unrolled4: {fn: DotUnrolled4, desc: "Pure Go (4 accumulators)"},
		Unrolled8: {fn: DotUnrolled8, desc: "Pure Go (8 accumulators)"},
		Vec4:      {fn: total(DotVec4), desc: "Pure Go lanes (4 x float32)"},
		Vec8:      {fn: total(DotVec8), desc: "Pure Go lanes (8 x float32)"},
		BLAS:      {fn: DotBLAS, desc: "Gonum BLAS Sdot", reference: true},
		Dense:     {fn: dotDenseSlices, desc: "Gonum mat.VecDense", reference: true},
	}
	if fma4Lanes != nil {
		catalog[FMA4] = entry{fn: total(dotFMA4), desc: fma4Desc}
	}

	slog.Info("simddot compute engine initialized", "kernels", len(catalog))
	for _, k := range displayOrder {
		if e, ok := catalog[k]; ok {
			slog.Info("  kernel registered", "name", string(k), "impl", e.desc)
		}
	}
}

func loadCatalog() map[Kernel]entry {
	catalogOnce.Do(buildCatalog)
	return catalog
}

// total lifts a kernel without an error path onto the catalog signature.
func total(fn func(xs, ys []float32) float32) Func {
	return func(xs, ys []float32) (float32, error) {
		return fn(xs, ys), nil
	}
}

func isKnown(k Kernel) bool {
	for _, known := range displayOrder {
		if known == k {
			return true
		}
	}
	return false
}

// --- Public Getter Functions ---

// Get returns the implementation registered under k. It returns an error wrapping
// ErrUnavailable if k is a known kernel that was not registered on this machine.
func Get(k Kernel) (Func, error) {
	e, ok := loadCatalog()[k]
	if !ok {
		if isKnown(k) {
			return nil, fmt.Errorf("kernel '%s': %w", k, ErrUnavailable)
		}
		return nil, fmt.Errorf("kernel '%s' not supported", k)
	}
	return e.fn, nil
}

// Available lists every registered kernel, reference adapters included.
func Available() []Kernel {
	cat := loadCatalog()
	out := make([]Kernel, 0, len(cat))
	for _, k := range displayOrder {
		if _, ok := cat[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

// Core lists the registered kernels that make up the tested surface.
func Core() []Kernel {
	cat := loadCatalog()
	out := make([]Kernel, 0, len(cat))
	for _, k := range displayOrder {
		if e, ok := cat[k]; ok && !e.reference {
			out = append(out, k)
		}
	}
	return out
}

// Describe returns a short description of the implementation behind k,
// or the empty string if k is not registered.
func Describe(k Kernel) string {
	return loadCatalog()[k].desc
}

// HasFMA4 reports whether the fused multiply-add kernel is registered.
func HasFMA4() bool {
	_, ok := loadCatalog()[FMA4]
	return ok
}

// Best returns the fastest 4-lane kernel for this machine: FMA4 when the CPU
// supports it, the portable Vec4 kernel otherwise.
func Best() (Kernel, Func) {
	if e, ok := loadCatalog()[FMA4]; ok {
		return FMA4, e.fn
	}
	return Vec4, loadCatalog()[Vec4].fn
}

// ParseKernel validates a kernel name coming from configuration or flags.
func ParseKernel(s string) (Kernel, error) {
	k := Kernel(s)
	if !isKnown(k) {
		return "", fmt.Errorf("unknown kernel '%s'", s)
	}
	return k, nil
}
