//go:build amd64

package cpu

import (
	"os"

	"golang.org/x/sys/cpu"
)

// SSE2 is part of the x86-64 baseline, so it is always present here.
func detectFeaturesImpl() Features {
	return Features{
		HasSSE2:      true,
		HasAVX:       cpu.X86.HasAVX,
		HasAVX2:      cpu.X86.HasAVX2,
		HasFMA:       cpu.X86.HasFMA,
		ForceGeneric: os.Getenv("VX_NO_SIMD") != "",
	}
}
