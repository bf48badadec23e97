// Package registry holds the catalogue of specialized vector kernels.
//
// Architecture packages register Kernels entries from init(); the vx
// package resolves the active set once at startup. Each kernel is a
// drop-in substitute for the portable core of the same operation: it
// must produce bit-identical results, except Rcp4f/Rcp8f/Rsqrt4f/Rsqrt8f
// which may be bounded approximations.
package registry

import (
	"sync"

	"github.com/vxmath/go-vx/internal/cpu"
)

// Kernels is one registered set of specialized implementations. Only the
// shapes an instruction set actually accelerates need to be populated;
// unset fields fall through to lower-priority entries and finally to the
// portable cores.
//
// The field set mirrors the classic SIMD override catalogue: wide
// float32 sqrt/rsqrt/rcp/round-to-int, float32 fused multiply-add,
// min/max/abs at 4 lanes, a 4x32-bit blend, the widening 8x8->16 bit
// multiply, and half-float pack/unpack at 4 and 8 lanes.
type Kernels struct {
	// Name identifies the entry ("sse", "avx", "neon", ...).
	Name string

	// Level is the instruction set this entry requires.
	Level cpu.SIMDLevel

	// Priority orders entries when several are compatible; higher wins.
	// Suggested: SSE2 10, AVX/NEON 15, AVX2 20.
	Priority int

	Sqrt4f  func([4]float32) [4]float32
	Sqrt8f  func([8]float32) [8]float32
	Rsqrt4f func([4]float32) [4]float32
	Rsqrt8f func([8]float32) [8]float32
	Rcp4f   func([4]float32) [4]float32
	Rcp8f   func([8]float32) [8]float32
	Lrint4f func([4]float32) [4]int32
	Lrint8f func([8]float32) [8]int32

	Fma4f func(x, y, z [4]float32) [4]float32
	Fma8f func(x, y, z [8]float32) [8]float32

	Min4f func(a, b [4]float32) [4]float32
	Max4f func(a, b [4]float32) [4]float32
	Abs4f func([4]float32) [4]float32

	// Blend4x32 selects 32-bit lanes by mask bits: (c&t)|(^c&e).
	Blend4x32 func(c, t, e [4]uint32) [4]uint32

	// WidenMul8 is the 8-lane u8*u8 -> u16 long multiply.
	WidenMul8 func(x, y [8]uint8) [8]uint16

	ToHalf4   func([4]float32) [4]uint16
	ToHalf8   func([8]float32) [8]uint16
	FromHalf4 func([4]uint16) [4]float32
	FromHalf8 func([8]uint16) [8]float32
}

// Registry collects Kernels entries for resolution.
type Registry struct {
	mu      sync.Mutex
	entries []Kernels
}

// Global is the registry every arch package registers into.
var Global = &Registry{}

// Register adds an entry. Called from arch package init() functions;
// registration must complete before the first Resolve.
func (r *Registry) Register(e Kernels) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

// Resolve merges the compatible entries by descending priority: each
// kernel slot takes the highest-priority non-nil implementation. Slots
// nobody registered stay nil, which means "use the portable core".
func (r *Registry) Resolve(f cpu.Features) Kernels {
	r.mu.Lock()
	defer r.mu.Unlock()

	sorted := make([]Kernels, len(r.entries))
	copy(sorted, r.entries)
	for i := 1; i < len(sorted); i++ {
		key := sorted[i]
		j := i - 1
		for j >= 0 && sorted[j].Priority < key.Priority {
			sorted[j+1] = sorted[j]
			j--
		}
		sorted[j+1] = key
	}

	var out Kernels
	for _, e := range sorted {
		if !cpu.Supports(f, e.Level) {
			continue
		}
		if out.Name == "" {
			out.Name = e.Name
		}
		merge(&out, e)
	}
	return out
}

// Reset clears all entries. For tests only.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}

func merge(dst *Kernels, src Kernels) {
	if dst.Sqrt4f == nil {
		dst.Sqrt4f = src.Sqrt4f
	}
	if dst.Sqrt8f == nil {
		dst.Sqrt8f = src.Sqrt8f
	}
	if dst.Rsqrt4f == nil {
		dst.Rsqrt4f = src.Rsqrt4f
	}
	if dst.Rsqrt8f == nil {
		dst.Rsqrt8f = src.Rsqrt8f
	}
	if dst.Rcp4f == nil {
		dst.Rcp4f = src.Rcp4f
	}
	if dst.Rcp8f == nil {
		dst.Rcp8f = src.Rcp8f
	}
	if dst.Lrint4f == nil {
		dst.Lrint4f = src.Lrint4f
	}
	if dst.Lrint8f == nil {
		dst.Lrint8f = src.Lrint8f
	}
	if dst.Fma4f == nil {
		dst.Fma4f = src.Fma4f
	}
	if dst.Fma8f == nil {
		dst.Fma8f = src.Fma8f
	}
	if dst.Min4f == nil {
		dst.Min4f = src.Min4f
	}
	if dst.Max4f == nil {
		dst.Max4f = src.Max4f
	}
	if dst.Abs4f == nil {
		dst.Abs4f = src.Abs4f
	}
	if dst.Blend4x32 == nil {
		dst.Blend4x32 = src.Blend4x32
	}
	if dst.WidenMul8 == nil {
		dst.WidenMul8 = src.WidenMul8
	}
	if dst.ToHalf4 == nil {
		dst.ToHalf4 = src.ToHalf4
	}
	if dst.ToHalf8 == nil {
		dst.ToHalf8 = src.ToHalf8
	}
	if dst.FromHalf4 == nil {
		dst.FromHalf4 = src.FromHalf4
	}
	if dst.FromHalf8 == nil {
		dst.FromHalf8 = src.FromHalf8
	}
}
