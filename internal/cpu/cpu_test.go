package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForceFeatures(t *testing.T) {
	restore := ForceFeatures(Features{HasSSE2: true, HasAVX: true})
	defer restore()

	f := DetectFeatures()
	assert.True(t, f.HasSSE2)
	assert.True(t, f.HasAVX)
	assert.False(t, f.HasAVX2)
	assert.False(t, f.HasNEON)
}

func TestForceFeaturesNests(t *testing.T) {
	outer := ForceFeatures(Features{HasNEON: true})
	inner := ForceFeatures(Features{ForceGeneric: true})
	assert.True(t, DetectFeatures().ForceGeneric)

	inner()
	assert.True(t, DetectFeatures().HasNEON)
	assert.False(t, DetectFeatures().ForceGeneric)

	outer()
}

func TestSupports(t *testing.T) {
	f := Features{HasSSE2: true, HasAVX: true}
	assert.True(t, Supports(f, SIMDNone))
	assert.True(t, Supports(f, SIMDSSE2))
	assert.True(t, Supports(f, SIMDAVX))
	assert.False(t, Supports(f, SIMDAVX2))
	assert.False(t, Supports(f, SIMDNEON))

	neon := Features{HasNEON: true}
	assert.True(t, Supports(neon, SIMDNEON))
	assert.False(t, Supports(neon, SIMDSSE2))
}

func TestSupportsAVX2NeedsFMA(t *testing.T) {
	// AVX2 kernels use fused multiply-add, so AVX2 without FMA does
	// not qualify.
	noFMA := Features{HasSSE2: true, HasAVX: true, HasAVX2: true}
	assert.False(t, Supports(noFMA, SIMDAVX2))
	assert.True(t, Supports(noFMA, SIMDAVX))

	full := noFMA
	full.HasFMA = true
	assert.True(t, Supports(full, SIMDAVX2))
}

func TestSupportsForceGeneric(t *testing.T) {
	f := Features{HasSSE2: true, HasAVX2: true, ForceGeneric: true}
	assert.True(t, Supports(f, SIMDNone))
	assert.False(t, Supports(f, SIMDSSE2))
	assert.False(t, Supports(f, SIMDAVX2))
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "none", SIMDNone.String())
	assert.Equal(t, "sse2", SIMDSSE2.String())
	assert.Equal(t, "avx", SIMDAVX.String())
	assert.Equal(t, "avx2", SIMDAVX2.String())
	assert.Equal(t, "neon", SIMDNEON.String())
	assert.Equal(t, "unknown", SIMDLevel(99).String())
}
