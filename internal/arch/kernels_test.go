//go:build (amd64 || arm64) && !purego

package arch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSqrtKernels(t *testing.T) {
	x := [4]float32{0, 1, 2, 1e10}
	got := sqrt4f(x)
	for i, v := range x {
		assert.Equal(t, float32(math.Sqrt(float64(v))), got[i], "lane %d", i)
	}

	x8 := [8]float32{0.25, 1, 4, 9, 16, 2, 7, 1e-10}
	got8 := sqrt8f(x8)
	for i, v := range x8 {
		assert.Equal(t, float32(math.Sqrt(float64(v))), got8[i], "lane %d", i)
	}
}

func TestLrintKernels(t *testing.T) {
	x := [4]float32{0.5, 1.5, -2.5, 100.7}
	assert.Equal(t, [4]int32{0, 2, -2, 101}, lrint4f(x))
}

func TestFmaKernels(t *testing.T) {
	x := [4]float32{1e-8, 2, -3, 1.0000001}
	y := [4]float32{1e8, 0.5, 7, 1.0000001}
	z := [4]float32{-1, 10, 21, -1}
	got := fma4f(x, y, z)
	for i := range x {
		want := float32(math.FMA(float64(x[i]), float64(y[i]), float64(z[i])))
		assert.Equal(t, want, got[i], "lane %d", i)
	}

	// A result just past a binary32 tie: the float64 detour alone
	// would collapse onto the tie and round to even the wrong way.
	a := float32(1 + 0x1p-12)
	tie := fma4f([4]float32{a, a, a, a}, [4]float32{a, a, a, a},
		[4]float32{0x1p-70, 0x1p-70, 0x1p-70, 0x1p-70})
	assert.Equal(t, [4]float32{0x1.002002p+00, 0x1.002002p+00, 0x1.002002p+00, 0x1.002002p+00}, tie)
}

func TestMinMaxAbsKernels(t *testing.T) {
	nan := float32(math.NaN())
	a := [4]float32{1, 5, nan, 2}
	b := [4]float32{2, 4, 1, nan}

	mn := min4f(a, b)
	assert.Equal(t, float32(1), mn[0])
	assert.Equal(t, float32(4), mn[1])
	assert.True(t, math.IsNaN(float64(mn[2])), "unordered min returns first operand")
	assert.Equal(t, float32(2), mn[3])

	mx := max4f(a, b)
	assert.Equal(t, float32(2), mx[0])
	assert.Equal(t, float32(5), mx[1])
	assert.True(t, math.IsNaN(float64(mx[2])))
	assert.Equal(t, float32(2), mx[3])

	ab := abs4f([4]float32{-1.5, float32(math.Copysign(0, -1)), 2, -0.25})
	assert.Equal(t, [4]float32{1.5, 0, 2, 0.25}, ab)
	assert.False(t, math.Signbit(float64(ab[1])), "abs clears the sign of -0")
}

func TestBlendKernel(t *testing.T) {
	c := [4]uint32{0xFFFFFFFF, 0, 0xFFFFFFFF, 0}
	tt := [4]uint32{1, 2, 3, 4}
	e := [4]uint32{10, 20, 30, 40}
	assert.Equal(t, [4]uint32{1, 20, 3, 40}, blend4x32(c, tt, e))
}

func TestWidenMulKernel(t *testing.T) {
	x := [8]uint8{0, 1, 255, 128, 16, 200, 255, 3}
	y := [8]uint8{0, 255, 255, 2, 16, 100, 1, 85}
	got := widenMul8(x, y)
	for i := range x {
		assert.Equal(t, uint16(x[i])*uint16(y[i]), got[i], "lane %d", i)
	}
}

func TestRsqrtRcpApproxBounds(t *testing.T) {
	inputs := []float32{0.001, 0.25, 1, 2, 100, 1e6}
	for _, v := range inputs {
		got := rsqrtApprox(v)
		want := 1 / math.Sqrt(float64(v))
		rel := math.Abs(float64(got)-want) / want
		assert.Less(t, rel, 1e-4, "rsqrt(%v)", v)

		gotR := rcpApprox(v)
		wantR := 1 / float64(v)
		relR := math.Abs(float64(gotR)-wantR) / wantR
		assert.Less(t, relR, 1e-4, "rcp(%v)", v)
	}
}

func TestHalfKernels(t *testing.T) {
	assert.Equal(t, uint16(0x3C00), toHalf(1))
	assert.Equal(t, uint16(0xBC00), toHalf(-1))
	assert.Equal(t, uint16(0x7BFF), toHalf(65504))
	assert.Equal(t, uint16(0), toHalf(3.0517578e-05), "subnormal half flushes to zero")

	assert.Equal(t, float32(1), fromHalf(0x3C00))
	assert.Equal(t, float32(65504), fromHalf(0x7BFF))
	assert.Equal(t, float32(0), fromHalf(0x03FF), "subnormal input flushes to zero")

	// 4- and 8-lane wrappers agree with the scalar.
	in := [8]float32{0, 1, -2, 0.25, 1024, -0.125, 3.5, 65504}
	h := toHalf8(in)
	for i, f := range in {
		assert.Equal(t, toHalf(f), h[i], "lane %d", i)
	}
	back := fromHalf8(h)
	assert.Equal(t, in, back)
}
