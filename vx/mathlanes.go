package vx

import (
	"math"
	"unsafe"
)

// Float math cores. Each lane is computed through the math package at
// float64 and converted back to T. For float64 lanes that is the direct
// libm result; for float32 lanes sqrt stays correctly rounded through
// the double rounding, and the transcendentals are at least as accurate
// as a single-precision libm.

func sqrtLanes[T Floats](dst, a []T) {
	for i := range dst {
		dst[i] = T(math.Sqrt(float64(a[i])))
	}
}

func ceilLanes[T Floats](dst, a []T) {
	for i := range dst {
		dst[i] = T(math.Ceil(float64(a[i])))
	}
}

func floorLanes[T Floats](dst, a []T) {
	for i := range dst {
		dst[i] = T(math.Floor(float64(a[i])))
	}
}

func truncLanes[T Floats](dst, a []T) {
	for i := range dst {
		dst[i] = T(math.Trunc(float64(a[i])))
	}
}

// roundLanes rounds half away from zero, like C round().
func roundLanes[T Floats](dst, a []T) {
	for i := range dst {
		dst[i] = T(math.Round(float64(a[i])))
	}
}

func sinLanes[T Floats](dst, a []T) {
	for i := range dst {
		dst[i] = T(math.Sin(float64(a[i])))
	}
}

func cosLanes[T Floats](dst, a []T) {
	for i := range dst {
		dst[i] = T(math.Cos(float64(a[i])))
	}
}

func tanLanes[T Floats](dst, a []T) {
	for i := range dst {
		dst[i] = T(math.Tan(float64(a[i])))
	}
}

func atanLanes[T Floats](dst, a []T) {
	for i := range dst {
		dst[i] = T(math.Atan(float64(a[i])))
	}
}

func powLanes[T Floats](dst, a, b []T) {
	for i := range dst {
		dst[i] = T(math.Pow(float64(a[i]), float64(b[i])))
	}
}

// rcpLanes and rsqrtLanes are the portable "approximate" forms: exact
// 1/x and 1/sqrt(x). Specialized kernels may substitute a faster bounded
// approximation; callers only get "reciprocal-like" cross-platform.
func rcpLanes[T Floats](dst, a []T) {
	for i := range dst {
		dst[i] = 1 / a[i]
	}
}

func rsqrtLanes[T Floats](dst, a []T) {
	for i := range dst {
		dst[i] = 1 / T(math.Sqrt(float64(a[i])))
	}
}

func fractLanes[T Floats](dst, a []T) {
	for i := range dst {
		dst[i] = a[i] - T(math.Floor(float64(a[i])))
	}
}

// fma32 is a correctly rounded float32 fused multiply-add. The product
// is exact in float64 (24+24 significand bits fit in 53), but rounding
// the sum to binary64 and then to binary32 can land on a binary32 tie
// and resolve it the wrong way. So the binary64 sum is rounded to odd:
// 2Sum recovers the exact addition error, and a nonzero error nudges an
// even significand one ulp toward the exact value. The final float32
// conversion then rounds once.
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

// fmaLane is the fused form: a single rounding step.
func fmaLane[T Floats](x, y, z T) T {
	if unsafe.Sizeof(x) == 4 {
		return T(fma32(float32(x), float32(y), float32(z)))
	}
	return T(math.FMA(float64(x), float64(y), float64(z)))
}

func fmaLanes[T Floats](dst, x, y, z []T) {
	for i := range dst {
		dst[i] = fmaLane(x[i], y[i], z[i])
	}
}

// lrintLanes converts to int32 rounding to nearest, ties to even.
func lrintLanes[T Floats](dst []int32, a []T) {
	for i := range dst {
		dst[i] = int32(math.RoundToEven(float64(a[i])))
	}
}

// castLane converts a lane with Go scalar conversion semantics:
// float to integer truncates toward zero, integer widening/narrowing
// follows two's complement, integer to float rounds to nearest. 64-bit
// integers route through a 64-bit intermediary so they never lose
// precision to an unnecessary float step.
func castLane[D, S Lanes](s S) D {
	switch sv := any(s).(type) {
	case float32:
		return castFromFloat[D](float64(sv))
	case float64:
		return castFromFloat[D](sv)
	case int8:
		return castFromInt[D](int64(sv))
	case int16:
		return castFromInt[D](int64(sv))
	case int32:
		return castFromInt[D](int64(sv))
	case int64:
		return castFromInt[D](sv)
	case uint8:
		return castFromUint[D](uint64(sv))
	case uint16:
		return castFromUint[D](uint64(sv))
	case uint32:
		return castFromUint[D](uint64(sv))
	case uint64:
		return castFromUint[D](sv)
	default:
		var zero D
		return zero
	}
}

func castFromFloat[D Lanes](f float64) D {
	var zero D
	switch any(zero).(type) {
	case float32:
		return any(float32(f)).(D)
	case float64:
		return any(f).(D)
	case int8:
		return any(int8(f)).(D)
	case int16:
		return any(int16(f)).(D)
	case int32:
		return any(int32(f)).(D)
	case int64:
		return any(int64(f)).(D)
	case uint8:
		return any(uint8(f)).(D)
	case uint16:
		return any(uint16(f)).(D)
	case uint32:
		return any(uint32(f)).(D)
	case uint64:
		return any(uint64(f)).(D)
	}
	return zero
}

func castFromInt[D Lanes](v int64) D {
	var zero D
	switch any(zero).(type) {
	case float32:
		return any(float32(v)).(D)
	case float64:
		return any(float64(v)).(D)
	case int8:
		return any(int8(v)).(D)
	case int16:
		return any(int16(v)).(D)
	case int32:
		return any(int32(v)).(D)
	case int64:
		return any(v).(D)
	case uint8:
		return any(uint8(v)).(D)
	case uint16:
		return any(uint16(v)).(D)
	case uint32:
		return any(uint32(v)).(D)
	case uint64:
		return any(uint64(v)).(D)
	}
	return zero
}

func castFromUint[D Lanes](v uint64) D {
	var zero D
	switch any(zero).(type) {
	case float32:
		return any(float32(v)).(D)
	case float64:
		return any(float64(v)).(D)
	case int8:
		return any(int8(v)).(D)
	case int16:
		return any(int16(v)).(D)
	case int32:
		return any(int32(v)).(D)
	case int64:
		return any(int64(v)).(D)
	case uint8:
		return any(uint8(v)).(D)
	case uint16:
		return any(uint16(v)).(D)
	case uint32:
		return any(uint32(v)).(D)
	case uint64:
		return any(v).(D)
	}
	return zero
}

func castLanes[D, S Lanes](dst []D, src []S) {
	for i := range dst {
		dst[i] = castLane[D](src[i])
	}
}
