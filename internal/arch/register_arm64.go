//go:build arm64 && !purego

package arch

import (
	"github.com/vxmath/go-vx/internal/cpu"
	"github.com/vxmath/go-vx/internal/registry"
)

// One NEON entry: 128-bit registers cover the 4-wide float kernels, the
// bit select (vbsl), the 8-lane long multiply (vmull), fused
// multiply-add (vfma) and 4-lane half conversions (vcvt).
func init() {
	registry.Global.Register(registry.Kernels{
		Name:     "neon",
		Level:    cpu.SIMDNEON,
		Priority: 15,

		Sqrt4f:    sqrt4f,
		Rsqrt4f:   rsqrt4f,
		Rcp4f:     rcp4f,
		Lrint4f:   lrint4f,
		Min4f:     min4f,
		Max4f:     max4f,
		Abs4f:     abs4f,
		Fma4f:     fma4f,
		Blend4x32: blend4x32,
		WidenMul8: widenMul8,
		ToHalf4:   toHalf4,
		FromHalf4: fromHalf4,
	})
}
