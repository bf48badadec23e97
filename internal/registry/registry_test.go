package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vxmath/go-vx/internal/cpu"
)

func sqrtStub(tag float32) func([4]float32) [4]float32 {
	return func(x [4]float32) [4]float32 {
		return [4]float32{tag, tag, tag, tag}
	}
}

func TestResolvePickHighestPriority(t *testing.T) {
	r := &Registry{}
	r.Register(Kernels{
		Name: "sse", Level: cpu.SIMDSSE2, Priority: 10,
		Sqrt4f: sqrtStub(1),
		Rcp4f:  sqrtStub(1),
	})
	r.Register(Kernels{
		Name: "avx2", Level: cpu.SIMDAVX2, Priority: 20,
		Sqrt4f: sqrtStub(2),
	})

	got := r.Resolve(cpu.Features{HasSSE2: true, HasAVX2: true, HasFMA: true})
	require.NotNil(t, got.Sqrt4f)
	assert.Equal(t, "avx2", got.Name)
	assert.Equal(t, float32(2), got.Sqrt4f([4]float32{})[0], "highest priority entry should win the slot")

	// Slots the winner leaves empty fall through to lower priority.
	require.NotNil(t, got.Rcp4f)
	assert.Equal(t, float32(1), got.Rcp4f([4]float32{})[0])
}

func TestResolveSkipsUnsupported(t *testing.T) {
	r := &Registry{}
	r.Register(Kernels{
		Name: "avx2", Level: cpu.SIMDAVX2, Priority: 20,
		Sqrt4f: sqrtStub(2),
	})
	r.Register(Kernels{
		Name: "sse", Level: cpu.SIMDSSE2, Priority: 10,
		Sqrt4f: sqrtStub(1),
	})

	got := r.Resolve(cpu.Features{HasSSE2: true})
	assert.Equal(t, "sse", got.Name)
	assert.Equal(t, float32(1), got.Sqrt4f([4]float32{})[0])
}

func TestResolveForceGeneric(t *testing.T) {
	r := &Registry{}
	r.Register(Kernels{
		Name: "neon", Level: cpu.SIMDNEON, Priority: 15,
		Sqrt4f: sqrtStub(3),
	})

	got := r.Resolve(cpu.Features{HasNEON: true, ForceGeneric: true})
	assert.Equal(t, "", got.Name)
	assert.Nil(t, got.Sqrt4f)
}

func TestResolveEmpty(t *testing.T) {
	r := &Registry{}
	got := r.Resolve(cpu.Features{HasSSE2: true, HasAVX: true, HasAVX2: true})
	assert.Equal(t, "", got.Name)
	assert.Nil(t, got.Sqrt4f)
	assert.Nil(t, got.Blend4x32)
}

func TestReset(t *testing.T) {
	r := &Registry{}
	r.Register(Kernels{Name: "sse", Level: cpu.SIMDSSE2, Priority: 10, Sqrt4f: sqrtStub(1)})
	r.Reset()
	got := r.Resolve(cpu.Features{HasSSE2: true})
	assert.Nil(t, got.Sqrt4f)
}

func TestResolveStablePriorityTie(t *testing.T) {
	r := &Registry{}
	r.Register(Kernels{Name: "a", Level: cpu.SIMDSSE2, Priority: 10, Sqrt4f: sqrtStub(1)})
	r.Register(Kernels{Name: "b", Level: cpu.SIMDSSE2, Priority: 10, Rcp4f: sqrtStub(2)})

	got := r.Resolve(cpu.Features{HasSSE2: true})
	// Registration order breaks ties.
	assert.Equal(t, "a", got.Name)
	require.NotNil(t, got.Sqrt4f)
	require.NotNil(t, got.Rcp4f)
}
