//go:build !amd64 && !arm64

package cpu

import "os"

func detectFeaturesImpl() Features {
	return Features{
		ForceGeneric: os.Getenv("VX_NO_SIMD") != "",
	}
}
