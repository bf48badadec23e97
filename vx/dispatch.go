package vx

import (
	"github.com/vxmath/go-vx/internal/cpu"
	"github.com/vxmath/go-vx/internal/registry"

	// Registers the specialized kernels for the build target.
	_ "github.com/vxmath/go-vx/internal/arch"
)

// active is the kernel set resolved once at startup. Unset slots mean
// "use the portable core". With the purego build tag, or VX_NO_SIMD set,
// nothing registers and every slot is nil.
var active registry.Kernels

func init() {
	active = registry.Global.Resolve(cpu.DetectFeatures())
}

// Active returns the name of the specialized kernel set in use, or
// "portable" when every operation runs the portable core.
func Active() string {
	if active.Name == "" {
		return "portable"
	}
	return active.Name
}
