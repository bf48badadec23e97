package vx

import (
	"math"
	"testing"
)

func TestSqrt(t *testing.T) {
	x := Load4([]float32{0, 1, 2, 1e20})
	got := Sqrt4(x)
	for i := 0; i < 4; i++ {
		want := float32(math.Sqrt(float64(x[i])))
		if got[i] != want {
			t.Errorf("Sqrt4: lane %d: got %v, want %v", i, got[i], want)
		}
	}

	// Negative inputs produce NaN, the scalar contract.
	if neg := Sqrt4(Splat4[float32](-1)); !math.IsNaN(float64(neg[0])) {
		t.Errorf("Sqrt4(-1): got %v, want NaN", neg[0])
	}

	d := Load8([]float64{0, 0.25, 2, 1e300, 4, 9, 16, 1e-20})
	gotD := Sqrt8(d)
	for i := 0; i < 8; i++ {
		if want := math.Sqrt(d[i]); gotD[i] != want {
			t.Errorf("Sqrt8 float64: lane %d: got %v, want %v", i, gotD[i], want)
		}
	}
}

func TestRounding(t *testing.T) {
	x := Load8([]float32{1.5, -1.5, 2.5, -2.5, 0.4, -0.4, 7, -0})
	ceil := Ceil8(x)
	floor := Floor8(x)
	trunc := Trunc8(x)
	round := Round8(x)
	for i := 0; i < 8; i++ {
		f := float64(x[i])
		if want := float32(math.Ceil(f)); ceil[i] != want {
			t.Errorf("Ceil8: lane %d: got %v, want %v", i, ceil[i], want)
		}
		if want := float32(math.Floor(f)); floor[i] != want {
			t.Errorf("Floor8: lane %d: got %v, want %v", i, floor[i], want)
		}
		if want := float32(math.Trunc(f)); trunc[i] != want {
			t.Errorf("Trunc8: lane %d: got %v, want %v", i, trunc[i], want)
		}
		if want := float32(math.Round(f)); round[i] != want {
			t.Errorf("Round8: lane %d: got %v, want %v", i, round[i], want)
		}
	}
}

func TestLrint(t *testing.T) {
	// Ties round to even, unlike Round.
	x := Load8([]float32{0.5, 1.5, 2.5, -0.5, -1.5, 100.4, -100.6, 3})
	want := Vec8[int32]{0, 2, 2, 0, -2, 100, -101, 3}
	if got := Lrint8(x); got != want {
		t.Errorf("Lrint8: got %v, want %v", got, want)
	}

	small := Lrint4(Load4([]float32{8388609.0, -8388609.0, 0, 1}))
	if small[0] != 8388609 || small[1] != -8388609 {
		t.Errorf("Lrint4 large: got %v", small)
	}
}

func TestFract(t *testing.T) {
	x := Load4([]float32{1.25, -1.25, 3, 0.75})
	got := Fract4(x)
	want := Vec4[float32]{0.25, 0.75, 0, 0.75}
	for i := 0; i < 4; i++ {
		if got[i] != want[i] {
			t.Errorf("Fract4: lane %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTrig(t *testing.T) {
	x := Load4([]float32{0, math.Pi / 6, math.Pi / 4, math.Pi / 2})
	sin := Sin4(x)
	cos := Cos4(x)
	tan := Tan4(x)
	atan := Atan4(x)
	for i := 0; i < 4; i++ {
		f := float64(x[i])
		if want := float32(math.Sin(f)); sin[i] != want {
			t.Errorf("Sin4: lane %d: got %v, want %v", i, sin[i], want)
		}
		if want := float32(math.Cos(f)); cos[i] != want {
			t.Errorf("Cos4: lane %d: got %v, want %v", i, cos[i], want)
		}
		if want := float32(math.Tan(f)); tan[i] != want {
			t.Errorf("Tan4: lane %d: got %v, want %v", i, tan[i], want)
		}
		if want := float32(math.Atan(f)); atan[i] != want {
			t.Errorf("Atan4: lane %d: got %v, want %v", i, atan[i], want)
		}
	}
}

func TestPow(t *testing.T) {
	x := Load4([]float32{2, 3, 10, 0.5})
	y := Load4([]float32{10, 0, -1, 2})
	got := Pow4(x, y)
	for i := 0; i < 4; i++ {
		want := float32(math.Pow(float64(x[i]), float64(y[i])))
		if got[i] != want {
			t.Errorf("Pow4: lane %d: got %v, want %v", i, got[i], want)
		}
	}
}

func TestFma(t *testing.T) {
	x := Load4([]float32{1e-8, 2, -3, 1.0000001})
	y := Load4([]float32{1e8, 0.5, 7, 1.0000001})
	z := Load4([]float32{-1, 10, 21, -1})
	got := Fma4(x, y, z)
	for i := 0; i < 4; i++ {
		want := float32(math.FMA(float64(x[i]), float64(y[i]), float64(z[i])))
		if got[i] != want {
			t.Errorf("Fma4: lane %d: got %v, want %v", i, got[i], want)
		}
	}
}

func TestFmaSingleRounding(t *testing.T) {
	// x*x + z lands just past a float32 tie: the exact value is
	// 1 + 2^-11 + 2^-24 + 2^-70, and 2^-24 is exactly half an ulp at 1.
	// A double-rounded emulation (via float64 and back) loses the 2^-70
	// and resolves the tie down to 0x1.002p+00; the fused result must
	// round up.
	x := Splat4[float32](1 + 0x1p-12)
	z := Splat4[float32](0x1p-70)
	got := Fma4(x, x, z)
	want := float32(0x1.002002p+00)
	for i := 0; i < 4; i++ {
		if got[i] != want {
			t.Errorf("Fma4 tie straddle: lane %d: got %x, want %x", i, got[i], want)
		}
	}

	// Mirror case below the tie: exact 1 + 2^-11 + 2^-24 - 2^-70 must
	// round down.
	low := Fma4(x, x, Splat4[float32](-0x1p-70))
	for i := 0; i < 4; i++ {
		if lw := float32(0x1.002p+00); low[i] != lw {
			t.Errorf("Fma4 below tie: lane %d: got %x, want %x", i, low[i], lw)
		}
	}

	// The wider widths route through the same lane op.
	got8 := Fma8(Splat8[float32](1+0x1p-12), Splat8[float32](1+0x1p-12), Splat8[float32](0x1p-70))
	for i := 0; i < 8; i++ {
		if got8[i] != want {
			t.Errorf("Fma8 tie straddle: lane %d: got %x, want %x", i, got8[i], want)
		}
	}
}

func TestRcpRsqrt(t *testing.T) {
	x := Load4([]float32{1, 2, 0.25, 100})
	rcp := Rcp4(x)
	rsq := Rsqrt4(x)
	for i := 0; i < 4; i++ {
		// Platforms may register an approximate kernel, so check a
		// relative error bound rather than exact bits.
		wantRcp := 1 / float64(x[i])
		if rel := math.Abs(float64(rcp[i])-wantRcp) / wantRcp; rel > 1e-4 {
			t.Errorf("Rcp4: lane %d: got %v, want ~%v (rel err %v)", i, rcp[i], wantRcp, rel)
		}
		wantRsq := 1 / math.Sqrt(float64(x[i]))
		if rel := math.Abs(float64(rsq[i])-wantRsq) / wantRsq; rel > 1e-4 {
			t.Errorf("Rsqrt4: lane %d: got %v, want ~%v (rel err %v)", i, rsq[i], wantRsq, rel)
		}
	}
}

func TestCast(t *testing.T) {
	f := Load4([]float32{1.9, -1.9, 100.5, 0})
	n := Cast4[int32](f)
	// Float to int truncates toward zero.
	if n != (Vec4[int32]{1, -1, 100, 0}) {
		t.Errorf("Cast4 float32->int32: got %v", n)
	}

	back := Cast4[float32](n)
	if back != (Vec4[float32]{1, -1, 100, 0}) {
		t.Errorf("Cast4 int32->float32: got %v", back)
	}

	b := Cast4[uint8](Load4([]int32{255, 256, -1, 7}))
	// Narrowing wraps, same as the scalar conversion.
	if b != (Vec4[uint8]{255, 0, 255, 7}) {
		t.Errorf("Cast4 int32->uint8: got %v", b)
	}

	w := Cast8[float64](Load8([]uint8{0, 1, 127, 128, 200, 255, 2, 3}))
	for i, src := range []uint8{0, 1, 127, 128, 200, 255, 2, 3} {
		if w[i] != float64(src) {
			t.Errorf("Cast8 uint8->float64: lane %d: got %v, want %v", i, w[i], src)
		}
	}
}

func TestWideMathSplits(t *testing.T) {
	// The 16-lane ops agree with the scalar reference whatever path
	// dispatch picked.
	var x Vec16[float32]
	for i := range x {
		x[i] = float32(i) * 0.7
	}
	got := Sqrt16(x)
	for i := 0; i < 16; i++ {
		if want := float32(math.Sqrt(float64(x[i]))); got[i] != want {
			t.Errorf("Sqrt16: lane %d: got %v, want %v", i, got[i], want)
		}
	}

	r := Lrint16(x)
	for i := 0; i < 16; i++ {
		if want := int32(math.RoundToEven(float64(x[i]))); r[i] != want {
			t.Errorf("Lrint16: lane %d: got %v, want %v", i, r[i], want)
		}
	}
}
