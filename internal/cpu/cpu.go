// Package cpu detects the SIMD instruction sets available on the host,
// for kernel selection in the vx registry.
//
// Detection runs once, lazily, and is cached. Tests can pin a fake
// feature set with ForceFeatures.
package cpu

import "sync"

// SIMDLevel identifies an instruction set a kernel requires. Levels are
// not comparable across architectures; Supports checks them against the
// detected Features instead.
type SIMDLevel int

const (
	// SIMDNone means plain Go; always supported.
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 is the x86-64 baseline 128-bit set.
	SIMDSSE2

	// SIMDAVX adds 256-bit float operations.
	SIMDAVX

	// SIMDAVX2 adds 256-bit integer operations; kernels at this level
	// also assume FMA, so Supports requires both.
	SIMDAVX2

	// SIMDNEON is ARM Advanced SIMD (the arm64 baseline).
	SIMDNEON
)

// String returns a human-readable name for the level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "none"
	case SIMDSSE2:
		return "sse2"
	case SIMDAVX:
		return "avx"
	case SIMDAVX2:
		return "avx2"
	case SIMDNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Features describes the host capabilities relevant to kernel selection.
type Features struct {
	HasSSE2 bool
	HasAVX  bool
	HasAVX2 bool
	HasFMA  bool
	HasNEON bool

	// ForceGeneric disables every specialized kernel, leaving only the
	// portable path. Set when VX_NO_SIMD is in the environment.
	ForceGeneric bool
}

var (
	detected   Features
	detectOnce sync.Once

	forcedMu sync.RWMutex
	forced   *Features
)

// DetectFeatures returns the host's features, detecting them on first
// call. Safe for concurrent use.
func DetectFeatures() Features {
	forcedMu.RLock()
	f := forced
	forcedMu.RUnlock()
	if f != nil {
		return *f
	}

	detectOnce.Do(func() {
		detected = detectFeaturesImpl()
	})
	return detected
}

// ForceFeatures overrides detection until the returned restore func is
// called. Intended for tests.
func ForceFeatures(f Features) (restore func()) {
	forcedMu.Lock()
	prev := forced
	forced = &f
	forcedMu.Unlock()
	return func() {
		forcedMu.Lock()
		forced = prev
		forcedMu.Unlock()
	}
}

// Supports reports whether features f satisfy the given level.
func Supports(f Features, level SIMDLevel) bool {
	if f.ForceGeneric {
		return level == SIMDNone
	}
	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return f.HasSSE2
	case SIMDAVX:
		return f.HasAVX
	case SIMDAVX2:
		return f.HasAVX2 && f.HasFMA
	case SIMDNEON:
		return f.HasNEON
	default:
		return false
	}
}
