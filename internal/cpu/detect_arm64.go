//go:build arm64

package cpu

import (
	"os"
	"runtime"

	"golang.org/x/sys/cpu"
)

// NEON (Advanced SIMD) is part of the arm64 baseline. x/sys/cpu only
// reports ASIMD on linux, so trust the baseline elsewhere (notably
// darwin).
func detectFeaturesImpl() Features {
	hasNEON := cpu.ARM64.HasASIMD || runtime.GOOS == "darwin"
	return Features{
		HasNEON:      hasNEON,
		ForceGeneric: os.Getenv("VX_NO_SIMD") != "",
	}
}
