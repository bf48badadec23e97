// Copyright 2026 go-vx Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vx

import "math"

// This file holds the portable per-lane cores. Every public operation is
// defined in terms of one of these; registered kernels must agree with
// them bit-for-bit, except rcpLanes/rsqrtLanes which specialized kernels
// may replace with a bounded approximation.
//
// All cores take destination-first slices of equal length. dst may alias
// the first operand.

func addLanes[T Lanes](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subLanes[T Lanes](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func mulLanes[T Lanes](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func divLanes[T Lanes](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

func negLanes[T Lanes](dst, a []T) {
	for i := range dst {
		dst[i] = -a[i]
	}
}

// mulAddLanes is mad: f*m+a with two roundings. See fmaLanes for the
// fused form.
func mulAddLanes[T Lanes](dst, f, m, a []T) {
	for i := range dst {
		dst[i] = f[i]*m[i] + a[i]
	}
}

func andLanes[T Integers](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] & b[i]
	}
}

func orLanes[T Integers](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] | b[i]
	}
}

func xorLanes[T Integers](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

func andNotLanes[T Integers](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] &^ b[i]
	}
}

func notLanes[T Integers](dst, a []T) {
	for i := range dst {
		dst[i] = ^a[i]
	}
}

// Shift counts >= the lane width produce 0 (or the sign fill for signed
// right shifts), per Go's shift semantics. Negative counts panic.
func shiftLeftLanes[T Integers](dst, a []T, bits int) {
	for i := range dst {
		dst[i] = a[i] << bits
	}
}

func shiftRightLanes[T Integers](dst, a []T, bits int) {
	for i := range dst {
		dst[i] = a[i] >> bits
	}
}

// minLane and maxLane follow the "return the first operand on ties or
// unordered input" convention: min(NaN, y) is NaN, min(x, NaN) is x.
func minLane[T Lanes](a, b T) T {
	if b < a {
		return b
	}
	return a
}

func maxLane[T Lanes](a, b T) T {
	if a < b {
		return b
	}
	return a
}

func minLanes[T Lanes](dst, a, b []T) {
	for i := range dst {
		dst[i] = minLane(a[i], b[i])
	}
}

func maxLanes[T Lanes](dst, a, b []T) {
	for i := range dst {
		dst[i] = maxLane(a[i], b[i])
	}
}

func reduceMinLanes[T Lanes](v []T) T {
	r := v[0]
	for _, x := range v[1:] {
		r = minLane(r, x)
	}
	return r
}

func reduceMaxLanes[T Lanes](v []T) T {
	r := v[0]
	for _, x := range v[1:] {
		r = maxLane(r, x)
	}
	return r
}

func absLane[T Lanes](a T) T {
	switch av := any(a).(type) {
	case float32:
		return any(math.Float32frombits(math.Float32bits(av) &^ (1 << 31))).(T)
	case float64:
		return any(math.Abs(av)).(T)
	}
	if a < 0 {
		return -a
	}
	return a
}

func absLanes[T Lanes](dst, a []T) {
	for i := range dst {
		dst[i] = absLane(a[i])
	}
}

func anyLanes[T Integers](v []T) bool {
	for _, x := range v {
		if x != 0 {
			return true
		}
	}
	return false
}

func allLanes[T Integers](v []T) bool {
	for _, x := range v {
		if x == 0 {
			return false
		}
	}
	return true
}

// Comparison cores. M must be the integer lane type with T's size; lanes
// of the result are all-ones or all-zero, never any other pattern.

func maskOf[M Integers](ok bool) M {
	if ok {
		return ^M(0)
	}
	return 0
}

func eqLanes[M Integers, T Lanes](dst []M, a, b []T) {
	for i := range dst {
		dst[i] = maskOf[M](a[i] == b[i])
	}
}

func neLanes[M Integers, T Lanes](dst []M, a, b []T) {
	for i := range dst {
		dst[i] = maskOf[M](a[i] != b[i])
	}
}

func ltLanes[M Integers, T Lanes](dst []M, a, b []T) {
	for i := range dst {
		dst[i] = maskOf[M](a[i] < b[i])
	}
}

func leLanes[M Integers, T Lanes](dst []M, a, b []T) {
	for i := range dst {
		dst[i] = maskOf[M](a[i] <= b[i])
	}
}

func gtLanes[M Integers, T Lanes](dst []M, a, b []T) {
	for i := range dst {
		dst[i] = maskOf[M](a[i] > b[i])
	}
}

func geLanes[M Integers, T Lanes](dst []M, a, b []T) {
	for i := range dst {
		dst[i] = maskOf[M](a[i] >= b[i])
	}
}

func logicalNotLanes[M Integers, T Lanes](dst []M, a []T) {
	for i := range dst {
		dst[i] = maskOf[M](a[i] == 0)
	}
}
