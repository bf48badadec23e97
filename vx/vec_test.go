package vx

import (
	"math"
	"testing"
)

func TestSplat(t *testing.T) {
	v := Splat4[float32](42)
	for i := range v {
		if v[i] != 42 {
			t.Errorf("Splat4: lane %d: got %v, want 42", i, v[i])
		}
	}
	w := Splat16[int8](-7)
	for i := range w {
		if w[i] != -7 {
			t.Errorf("Splat16: lane %d: got %v, want -7", i, w[i])
		}
	}
}

func TestLoadStore(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	v := Load8(data)
	for i := range v {
		if v[i] != data[i] {
			t.Errorf("Load8: lane %d: got %v, want %v", i, v[i], data[i])
		}
	}

	dst := make([]float32, 10)
	v.Store(dst)
	for i := 0; i < 8; i++ {
		if dst[i] != data[i] {
			t.Errorf("Store: lane %d: got %v, want %v", i, dst[i], data[i])
		}
	}
	if dst[8] != 0 || dst[9] != 0 {
		t.Errorf("Store wrote past the lane count: %v", dst[8:])
	}
}

func TestLoadShortPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Load4 from a 3-element slice did not panic")
		}
	}()
	Load4([]float32{1, 2, 3})
}

func TestLoHiJoin(t *testing.T) {
	v := Load8([]int32{0, 1, 2, 3, 4, 5, 6, 7})
	lo, hi := v.Lo(), v.Hi()
	for i := 0; i < 4; i++ {
		if lo[i] != int32(i) {
			t.Errorf("Lo: lane %d: got %v, want %v", i, lo[i], i)
		}
		if hi[i] != int32(i+4) {
			t.Errorf("Hi: lane %d: got %v, want %v", i, hi[i], i+4)
		}
	}
	if got := lo.Join(hi); got != v {
		t.Errorf("Join(Lo, Hi): got %v, want %v", got, v)
	}
	if got := hi.Join(lo); got == v {
		t.Error("Join(Hi, Lo) should not round-trip")
	}

	one := Splat1[uint16](9)
	two := one.Join(Splat1[uint16](3))
	if two != (Vec2[uint16]{9, 3}) {
		t.Errorf("Vec1.Join: got %v, want [9 3]", two)
	}
}

func TestArithmetic(t *testing.T) {
	a := Load4([]float32{1, -2, 3.5, 100})
	b := Load4([]float32{0.5, 4, -3.5, 25})

	sum := a.Add(b)
	diff := a.Sub(b)
	prod := a.Mul(b)
	quot := a.Div(b)
	neg := a.Neg()
	for i := 0; i < 4; i++ {
		if want := a[i] + b[i]; sum[i] != want {
			t.Errorf("Add: lane %d: got %v, want %v", i, sum[i], want)
		}
		if want := a[i] - b[i]; diff[i] != want {
			t.Errorf("Sub: lane %d: got %v, want %v", i, diff[i], want)
		}
		if want := a[i] * b[i]; prod[i] != want {
			t.Errorf("Mul: lane %d: got %v, want %v", i, prod[i], want)
		}
		if want := a[i] / b[i]; quot[i] != want {
			t.Errorf("Div: lane %d: got %v, want %v", i, quot[i], want)
		}
		if want := -a[i]; neg[i] != want {
			t.Errorf("Neg: lane %d: got %v, want %v", i, neg[i], want)
		}
	}
}

func TestArithmeticInt(t *testing.T) {
	a := Load8([]int16{1, -2, 30000, -30000, 7, 0, -1, 128})
	b := Load8([]int16{1, -2, 30000, -30000, -7, 5, 1, 2})

	sum := a.Add(b)
	prod := a.Mul(b)
	for i := 0; i < 8; i++ {
		// Integer lanes wrap, same as the scalar operators.
		if want := a[i] + b[i]; sum[i] != want {
			t.Errorf("Add int16: lane %d: got %v, want %v", i, sum[i], want)
		}
		if want := a[i] * b[i]; prod[i] != want {
			t.Errorf("Mul int16: lane %d: got %v, want %v", i, prod[i], want)
		}
	}
}

func TestDivByZeroFloat(t *testing.T) {
	a := Load4([]float32{1, -1, 0, 5})
	z := Splat4[float32](0)
	q := a.Div(z)
	if !math.IsInf(float64(q[0]), 1) {
		t.Errorf("1/0: got %v, want +Inf", q[0])
	}
	if !math.IsInf(float64(q[1]), -1) {
		t.Errorf("-1/0: got %v, want -Inf", q[1])
	}
	if !math.IsNaN(float64(q[2])) {
		t.Errorf("0/0: got %v, want NaN", q[2])
	}
}

func TestMinMax(t *testing.T) {
	a := Load4([]float32{1, 5, -3, 2})
	b := Load4([]float32{2, 4, -3, -2})
	mn := a.Min(b)
	mx := a.Max(b)
	wantMin := [4]float32{1, 4, -3, -2}
	wantMax := [4]float32{2, 5, -3, 2}
	for i := 0; i < 4; i++ {
		if mn[i] != wantMin[i] {
			t.Errorf("Min: lane %d: got %v, want %v", i, mn[i], wantMin[i])
		}
		if mx[i] != wantMax[i] {
			t.Errorf("Max: lane %d: got %v, want %v", i, mx[i], wantMax[i])
		}
	}
}

func TestMinMaxUnordered(t *testing.T) {
	nan := float32(math.NaN())
	a := Load4([]float32{nan, 1, nan, 2})
	b := Load4([]float32{1, nan, nan, 3})

	// Unordered compares return the first operand.
	mn := a.Min(b)
	if !math.IsNaN(float64(mn[0])) {
		t.Errorf("Min(NaN, 1): got %v, want NaN", mn[0])
	}
	if mn[1] != 1 {
		t.Errorf("Min(1, NaN): got %v, want 1", mn[1])
	}
	mx := a.Max(b)
	if !math.IsNaN(float64(mx[0])) {
		t.Errorf("Max(NaN, 1): got %v, want NaN", mx[0])
	}
	if mx[1] != 1 {
		t.Errorf("Max(1, NaN): got %v, want 1", mx[1])
	}
}

func TestAbs(t *testing.T) {
	f := Load4([]float32{-1.5, 2, float32(math.Copysign(0, -1)), -0}).Abs()
	want := [4]float32{1.5, 2, 0, 0}
	for i := 0; i < 4; i++ {
		if f[i] != want[i] || math.Signbit(float64(f[i])) {
			t.Errorf("Abs float: lane %d: got %v, want +%v", i, f[i], want[i])
		}
	}

	n := Load4([]int32{-5, 5, 0, math.MinInt32 + 1}).Abs()
	wantI := [4]int32{5, 5, 0, math.MaxInt32}
	for i := 0; i < 4; i++ {
		if n[i] != wantI[i] {
			t.Errorf("Abs int: lane %d: got %v, want %v", i, n[i], wantI[i])
		}
	}
}

func TestMulAdd(t *testing.T) {
	v := Load4([]float32{1, 2, 3, 4})
	m := Splat4[float32](10)
	a := Splat4[float32](0.5)
	got := v.MulAdd(m, a)
	for i := 0; i < 4; i++ {
		want := v[i]*10 + 0.5
		if got[i] != want {
			t.Errorf("MulAdd: lane %d: got %v, want %v", i, got[i], want)
		}
	}
}

func TestReduce(t *testing.T) {
	v := Load8([]float32{3, -1, 4, 1, 5, -9, 2, 6})
	if got := v.ReduceMin(); got != -9 {
		t.Errorf("ReduceMin: got %v, want -9", got)
	}
	if got := v.ReduceMax(); got != 6 {
		t.Errorf("ReduceMax: got %v, want 6", got)
	}

	u := Load16([]uint8{9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 10, 11, 12, 13, 14, 255})
	if got := u.ReduceMin(); got != 0 {
		t.Errorf("ReduceMin uint8: got %v, want 0", got)
	}
	if got := u.ReduceMax(); got != 255 {
		t.Errorf("ReduceMax uint8: got %v, want 255", got)
	}
}

func TestBitwise(t *testing.T) {
	x := Load4([]uint32{0xF0F0F0F0, 0, 0xFFFFFFFF, 0x12345678})
	y := Load4([]uint32{0x0F0F0F0F, 0xFFFFFFFF, 0xFFFFFFFF, 0x0000FFFF})

	and := And4(x, y)
	or := Or4(x, y)
	xor := Xor4(x, y)
	andNot := AndNot4(x, y)
	not := Not4(x)
	for i := 0; i < 4; i++ {
		if want := x[i] & y[i]; and[i] != want {
			t.Errorf("And4: lane %d: got %#x, want %#x", i, and[i], want)
		}
		if want := x[i] | y[i]; or[i] != want {
			t.Errorf("Or4: lane %d: got %#x, want %#x", i, or[i], want)
		}
		if want := x[i] ^ y[i]; xor[i] != want {
			t.Errorf("Xor4: lane %d: got %#x, want %#x", i, xor[i], want)
		}
		if want := x[i] &^ y[i]; andNot[i] != want {
			t.Errorf("AndNot4: lane %d: got %#x, want %#x", i, andNot[i], want)
		}
		if want := ^x[i]; not[i] != want {
			t.Errorf("Not4: lane %d: got %#x, want %#x", i, not[i], want)
		}
	}
}

func TestShifts(t *testing.T) {
	x := Load4([]int32{1, -8, 256, math.MinInt32})
	left := ShiftLeft4(x, 3)
	right := ShiftRight4(x, 2)
	for i := 0; i < 4; i++ {
		if want := x[i] << 3; left[i] != want {
			t.Errorf("ShiftLeft4: lane %d: got %v, want %v", i, left[i], want)
		}
		// Signed lanes shift arithmetically.
		if want := x[i] >> 2; right[i] != want {
			t.Errorf("ShiftRight4: lane %d: got %v, want %v", i, right[i], want)
		}
	}

	u := Load4([]uint32{0x80000000, 1, 0xFFFFFFFF, 4})
	uright := ShiftRight4(u, 4)
	for i := 0; i < 4; i++ {
		if want := u[i] >> 4; uright[i] != want {
			t.Errorf("ShiftRight4 uint: lane %d: got %#x, want %#x", i, uright[i], want)
		}
	}
}

func TestShuffle(t *testing.T) {
	rgba := []uint8{10, 20, 30, 40}
	bgra := Shuffle4(rgba, 2, 1, 0, 3)
	if bgra != (Vec4[uint8]{30, 20, 10, 40}) {
		t.Errorf("Shuffle4: got %v, want [30 20 10 40]", bgra)
	}

	src := []float32{1, 2}
	dup := Shuffle4(src, 0, 0, 1, 1)
	if dup != (Vec4[float32]{1, 1, 2, 2}) {
		t.Errorf("Shuffle4 dup: got %v, want [1 1 2 2]", dup)
	}
}

func TestReverseBroadcast(t *testing.T) {
	v := Load4([]int32{1, 2, 3, 4})
	if got := Reverse4(v); got != (Vec4[int32]{4, 3, 2, 1}) {
		t.Errorf("Reverse4: got %v", got)
	}
	if got := BroadcastLane4(v, 2); got != Splat4[int32](3) {
		t.Errorf("BroadcastLane4: got %v, want all 3", got)
	}

	w := Load8([]int32{0, 1, 2, 3, 4, 5, 6, 7})
	r := Reverse8(w)
	for i := 0; i < 8; i++ {
		if r[i] != w[7-i] {
			t.Errorf("Reverse8: lane %d: got %v, want %v", i, r[i], w[7-i])
		}
	}
}

func TestScaleByTwo(t *testing.T) {
	v := Load4([]float32{1, 2, 3, 4}).Mul(Splat4[float32](2))
	if v != (Vec4[float32]{2, 4, 6, 8}) {
		t.Errorf("scale by 2: got %v, want [2 4 6 8]", v)
	}
}
