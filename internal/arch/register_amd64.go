//go:build amd64 && !purego

package arch

import (
	"github.com/vxmath/go-vx/internal/cpu"
	"github.com/vxmath/go-vx/internal/registry"
)

// Registration follows the x86 extension ladder: SSE2 brings the 4-wide
// float kernels, AVX widens them to 8 lanes and adds the blend, and
// FMA-class CPUs (AVX2) add fused multiply-add and half pack/unpack,
// F16C being present on every FMA-capable part.
func init() {
	registry.Global.Register(registry.Kernels{
		Name:     "sse",
		Level:    cpu.SIMDSSE2,
		Priority: 10,

		Sqrt4f:  sqrt4f,
		Rsqrt4f: rsqrt4f,
		Rcp4f:   rcp4f,
		Lrint4f: lrint4f,
		Min4f:   min4f,
		Max4f:   max4f,
		Abs4f:   abs4f,
	})

	registry.Global.Register(registry.Kernels{
		Name:     "avx",
		Level:    cpu.SIMDAVX,
		Priority: 15,

		Sqrt8f:    sqrt8f,
		Rsqrt8f:   rsqrt8f,
		Rcp8f:     rcp8f,
		Lrint8f:   lrint8f,
		Blend4x32: blend4x32,
	})

	registry.Global.Register(registry.Kernels{
		Name:     "avx2",
		Level:    cpu.SIMDAVX2,
		Priority: 20,

		Fma4f:     fma4f,
		Fma8f:     fma8f,
		ToHalf4:   toHalf4,
		ToHalf8:   toHalf8,
		FromHalf4: fromHalf4,
		FromHalf8: fromHalf8,
	})
}
