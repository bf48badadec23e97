//go:build (amd64 || arm64) && !purego

package arch

import "math"

// Exact kernels. Each must match the corresponding portable core in the
// vx package bit-for-bit; vx's dispatch tests hold them to that.

func sqrt4f(x [4]float32) [4]float32 {
	for i, v := range x {
		x[i] = float32(math.Sqrt(float64(v)))
	}
	return x
}

func sqrt8f(x [8]float32) [8]float32 {
	for i, v := range x {
		x[i] = float32(math.Sqrt(float64(v)))
	}
	return x
}

func lrint4f(x [4]float32) (r [4]int32) {
	for i, v := range x {
		r[i] = int32(math.RoundToEven(float64(v)))
	}
	return r
}

func lrint8f(x [8]float32) (r [8]int32) {
	for i, v := range x {
		r[i] = int32(math.RoundToEven(float64(v)))
	}
	return r
}

// fma32 rounds once, like the hardware instruction. The float64 product
// is exact; the binary64 sum is rounded to odd (2Sum error term nudges
// an even significand) before the single float32 rounding, so a result
// just past a binary32 tie cannot collapse onto it.
func fma32(x, y, z float32) float32 {
	p := float64(x) * float64(y)
	zd := float64(z)
	s := p + zd
	a1 := s - zd
	t := (p - a1) + (zd - (s - a1))
	if t != 0 && math.Float64bits(s)&1 == 0 {
		if t > 0 {
			s = math.Nextafter(s, math.Inf(1))
		} else {
			s = math.Nextafter(s, math.Inf(-1))
		}
	}
	return float32(s)
}

func fma4f(x, y, z [4]float32) [4]float32 {
	for i := range x {
		x[i] = fma32(x[i], y[i], z[i])
	}
	return x
}

func fma8f(x, y, z [8]float32) [8]float32 {
	for i := range x {
		x[i] = fma32(x[i], y[i], z[i])
	}
	return x
}

// min/max keep the first operand on unordered input, same as the
// portable cores.

func min4f(a, b [4]float32) [4]float32 {
	for i := range a {
		if b[i] < a[i] {
			a[i] = b[i]
		}
	}
	return a
}

func max4f(a, b [4]float32) [4]float32 {
	for i := range a {
		if a[i] < b[i] {
			a[i] = b[i]
		}
	}
	return a
}

func abs4f(x [4]float32) [4]float32 {
	for i, v := range x {
		x[i] = math.Float32frombits(math.Float32bits(v) &^ (1 << 31))
	}
	return x
}

func blend4x32(c, t, e [4]uint32) (r [4]uint32) {
	for i := range r {
		r[i] = (c[i] & t[i]) | (^c[i] & e[i])
	}
	return r
}

func widenMul8(x, y [8]uint8) (r [8]uint16) {
	for i := range r {
		r[i] = uint16(x[i]) * uint16(y[i])
	}
	return r
}

// Approximate kernels. Rcp and Rsqrt carry no exactness contract, only
// "reciprocal-like": these use the exponent-bits seed plus two Newton
// steps, good to a few ulps of relative error.

func rsqrtApprox(x float32) float32 {
	y := math.Float32frombits(0x5f37_59df - math.Float32bits(x)>>1)
	y = y * (1.5 - 0.5*x*y*y)
	y = y * (1.5 - 0.5*x*y*y)
	return y
}

func rcpApprox(x float32) float32 {
	y := math.Float32frombits(0x7ef3_11c3 - math.Float32bits(x))
	y = y * (2 - x*y)
	y = y * (2 - x*y)
	return y
}

func rsqrt4f(x [4]float32) [4]float32 {
	for i, v := range x {
		x[i] = rsqrtApprox(v)
	}
	return x
}

func rsqrt8f(x [8]float32) [8]float32 {
	for i, v := range x {
		x[i] = rsqrtApprox(v)
	}
	return x
}

func rcp4f(x [4]float32) [4]float32 {
	for i, v := range x {
		x[i] = rcpApprox(v)
	}
	return x
}

func rcp8f(x [8]float32) [8]float32 {
	for i, v := range x {
		x[i] = rcpApprox(v)
	}
	return x
}

// Half kernels implement the same finite, flush-to-zero contract as the
// portable cores in vx/half.go.

func toHalf(f float32) uint16 {
	sem := math.Float32bits(f)
	s := sem & 0x8000_0000
	em := sem ^ s
	if em < 0x3880_0000 {
		return 0
	}
	return uint16((s >> 16) + (em >> 13) - ((127 - 15) << 10))
}

func fromHalf(h uint16) float32 {
	wide := uint32(h)
	s := wide & 0x8000
	em := wide ^ s
	if em < 0x0400 {
		return 0
	}
	return math.Float32frombits((s << 16) + (em << 13) + ((127 - 15) << 23))
}

func toHalf4(x [4]float32) (r [4]uint16) {
	for i, v := range x {
		r[i] = toHalf(v)
	}
	return r
}

func toHalf8(x [8]float32) (r [8]uint16) {
	for i, v := range x {
		r[i] = toHalf(v)
	}
	return r
}

func fromHalf4(x [4]uint16) (r [4]float32) {
	for i, v := range x {
		r[i] = fromHalf(v)
	}
	return r
}

func fromHalf8(x [8]uint16) (r [8]float32) {
	for i, v := range x {
		r[i] = fromHalf(v)
	}
	return r
}
