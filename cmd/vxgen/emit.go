// Copyright 2026 go-vx Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package main

import (
	"fmt"
	"io"
	"strings"
)

// emitFile writes the unformatted source of vec<n>.go. The output is
// piped through imports.Process, so spacing here only has to be close.
func emitFile(w io.Writer, n int) {
	p := func(format string, args ...any) {
		fmt.Fprintf(w, format+"\n", args...)
	}

	p("// Code generated by vxgen; DO NOT EDIT.")
	p("")
	p("package vx")
	p("")
	p(`import "unsafe"`)
	p("")

	emitType(p, n)
	emitArith(p, n)
	emitBitwise(p, n)
	emitCompare(p, n)
	emitSelect(p, n)
	emitMath(p, n)
	emitShuffle(p, n)
	emitHalfAndColor(p, n)
}

type printf func(format string, args ...any)

func emitType(p printf, n int) {
	if n == 1 {
		p("// Vec1 is the one-lane base case: the scalar itself, as a vector. Every")
		p("// wider operation bottoms out here.")
	} else {
		p("// Vec%d is %d lanes of T: recursively, a pair of Vec%d halves laid out as", n, n, n/2)
		p("// the plain array [%d]T.", n)
	}
	p("type Vec%d[T Lanes] [%d]T", n, n)
	p("")
	p("// Splat%d returns a Vec%d with every lane set to v.", n, n)
	p("func Splat%d[T Lanes](v T) Vec%d[T] {", n, n)
	p("	return Vec%d[T]{%s}", n, repeatLanes("v", n))
	p("}")
	p("")
	p("// Load%d copies the first %d lane(s) from src. Panics if src is shorter.", n, n)
	p("func Load%d[T Lanes](src []T) Vec%d[T] {", n, n)
	p("	return Vec%d[T](src)", n)
	p("}")
	p("")
	p("// Store copies the lanes to dst. Panics if dst is shorter than %d.", n)
	p("func (v Vec%d[T]) Store(dst []T) {", n)
	p("	_ = dst[%d]", n-1)
	p("	copy(dst, v[:])")
	p("}")
	p("")
	if n > 1 {
		p("// Lo returns the low half.")
		p("func (v Vec%d[T]) Lo() Vec%d[T] {", n, n/2)
		p("	return Vec%d[T](v[:%d])", n/2, n/2)
		p("}")
		p("")
		p("// Hi returns the high half.")
		p("func (v Vec%d[T]) Hi() Vec%d[T] {", n, n/2)
		p("	return Vec%d[T](v[%d:])", n/2, n/2)
		p("}")
		p("")
	}
	if n < 16 {
		p("// Join concatenates v and hi into a Vec%d, with v as the low half.", 2*n)
		p("func (v Vec%d[T]) Join(hi Vec%d[T]) Vec%d[T] {", n, n, 2*n)
		if n == 1 {
			p("	return Vec2[T]{v[0], hi[0]}")
		} else {
			p("	var r Vec%d[T]", 2*n)
			p("	copy(r[:%d], v[:])", n)
			p("	copy(r[%d:], hi[:])", n)
			p("	return r")
		}
		p("}")
		p("")
	}
}

func emitArith(p printf, n int) {
	binOps := []struct{ name, doc, core string }{
		{"Add", "the lanewise sum v + y", "addLanes"},
		{"Sub", "the lanewise difference v - y", "subLanes"},
		{"Mul", "the lanewise product v * y", "mulLanes"},
		{"Div", "the lanewise quotient v / y", "divLanes"},
	}
	for _, op := range binOps {
		p("// %s returns %s.", op.name, op.doc)
		p("func (v Vec%d[T]) %s(y Vec%d[T]) Vec%d[T] {", n, op.name, n, n)
		p("	%s(v[:], v[:], y[:])", op.core)
		p("	return v")
		p("}")
		p("")
	}
	p("// Neg returns the lanewise negation -v.")
	p("func (v Vec%d[T]) Neg() Vec%d[T] {", n, n)
	p("	negLanes(v[:], v[:])")
	p("	return v")
	p("}")
	p("")

	// Min, Max, and Abs carry the 4-lane float32 kernel: width 4 hooks
	// it directly, the wider widths split in half to reach it.
	mmOps := []struct{ name, doc, core, kernel string }{
		{"Min", "the lanewise minimum of v and y", "minLanes", "Min4f"},
		{"Max", "the lanewise maximum of v and y", "maxLanes", "Max4f"},
		{"Abs", "the lanewise absolute value", "absLanes", "Abs4f"},
	}
	for _, op := range mmOps {
		unary := op.name == "Abs"
		p("// %s returns %s.", op.name, op.doc)
		if unary {
			p("func (v Vec%d[T]) %s() Vec%d[T] {", n, op.name, n)
		} else {
			p("func (v Vec%d[T]) %s(y Vec%d[T]) Vec%d[T] {", n, op.name, n, n)
		}
		switch {
		case n == 4 && unary:
			p("	if active.%s != nil {", op.kernel)
			p("		if vf, ok := any(v).(Vec4[float32]); ok {")
			p("			return any(Vec4[float32](active.%s([4]float32(vf)))).(Vec4[T])", op.kernel)
			p("		}")
			p("	}")
		case n == 4:
			p("	if active.%s != nil {", op.kernel)
			p("		if vf, ok := any(v).(Vec4[float32]); ok {")
			p("			yf := any(y).(Vec4[float32])")
			p("			return any(Vec4[float32](active.%s([4]float32(vf), [4]float32(yf)))).(Vec4[T])", op.kernel)
			p("		}")
			p("	}")
		case n > 4 && unary:
			p("	if active.%s != nil {", op.kernel)
			p("		return v.Lo().%s().Join(v.Hi().%s())", op.name, op.name)
			p("	}")
		case n > 4:
			p("	if active.%s != nil {", op.kernel)
			p("		return v.Lo().%s(y.Lo()).Join(v.Hi().%s(y.Hi()))", op.name, op.name)
			p("	}")
		}
		if unary {
			p("	%s(v[:], v[:])", op.core)
		} else {
			p("	%s(v[:], v[:], y[:])", op.core)
		}
		p("	return v")
		p("}")
		p("")
	}

	p("// MulAdd returns v*m + a with two roundings (mad). See Fma%d for the", n)
	p("// fused form.")
	p("func (v Vec%d[T]) MulAdd(m, a Vec%d[T]) Vec%d[T] {", n, n, n)
	p("	mulAddLanes(v[:], v[:], m[:], a[:])")
	p("	return v")
	p("}")
	p("")
	p("// ReduceMin returns the smallest lane.")
	p("func (v Vec%d[T]) ReduceMin() T {", n)
	p("	return reduceMinLanes(v[:])")
	p("}")
	p("")
	p("// ReduceMax returns the largest lane.")
	p("func (v Vec%d[T]) ReduceMax() T {", n)
	p("	return reduceMaxLanes(v[:])")
	p("}")
	p("")
}

func emitBitwise(p printf, n int) {
	binOps := []struct{ name, op, core string }{
		{"And", "x & y", "andLanes"},
		{"Or", "x | y", "orLanes"},
		{"Xor", "x ^ y", "xorLanes"},
		{"AndNot", "x &^ y", "andNotLanes"},
	}
	for _, op := range binOps {
		p("// %s%d returns the lanewise %s.", op.name, n, op.op)
		p("func %s%d[T Integers](x, y Vec%d[T]) Vec%d[T] {", op.name, n, n, n)
		p("	%s(x[:], x[:], y[:])", op.core)
		p("	return x")
		p("}")
		p("")
	}
	p("// Not%d returns the lanewise complement ^x.", n)
	p("func Not%d[T Integers](x Vec%d[T]) Vec%d[T] {", n, n, n)
	p("	notLanes(x[:], x[:])")
	p("	return x")
	p("}")
	p("")
	for _, op := range []struct{ name, dir, core string }{
		{"ShiftLeft", "left", "shiftLeftLanes"},
		{"ShiftRight", "right", "shiftRightLanes"},
	} {
		p("// %s%d shifts every lane %s by bits.", op.name, n, op.dir)
		p("func %s%d[T Integers](x Vec%d[T], bits int) Vec%d[T] {", op.name, n, n, n)
		p("	%s(x[:], x[:], bits)", op.core)
		p("	return x")
		p("}")
		p("")
	}
}

func emitCompare(p printf, n int) {
	cmpOps := []struct{ name, doc, core string }{
		{"Eq", "", "eqLanes"},
		{"Ne", "compares x != y lanewise", "neLanes"},
		{"Lt", "compares x < y lanewise", "ltLanes"},
		{"Le", "compares x <= y lanewise", "leLanes"},
		{"Gt", "compares x > y lanewise", "gtLanes"},
		{"Ge", "compares x >= y lanewise", "geLanes"},
	}
	for _, op := range cmpOps {
		if op.name == "Eq" {
			p("// Eq%d compares x == y, producing all-ones or all-zero lanes of M, the", n)
			p("// integer type with T's size.")
		} else {
			p("// %s%d %s.", op.name, n, op.doc)
		}
		p("func %s%d[M Integers, T Lanes](x, y Vec%d[T]) Vec%d[M] {", op.name, n, n, n)
		p("	var r Vec%d[M]", n)
		p("	%s(r[:], x[:], y[:])", op.core)
		p("	return r")
		p("}")
		p("")
	}
	p("// LogicalNot%d yields the canonical all-ones mask where x is zero and", n)
	p("// all-zero elsewhere.")
	p("func LogicalNot%d[M Integers, T Lanes](x Vec%d[T]) Vec%d[M] {", n, n, n)
	p("	var r Vec%d[M]", n)
	p("	logicalNotLanes(r[:], x[:])")
	p("	return r")
	p("}")
	p("")
}

func emitSelect(p printf, n int) {
	p("// BitCast%d reinterprets the lanes of v as type D. D and S must have the", n)
	p("// same size; BitCast%d panics otherwise.", n)
	p("func BitCast%d[D, S Lanes](v Vec%d[S]) Vec%d[D] {", n, n, n)
	p("	var d Vec%d[D]", n)
	p("	if unsafe.Sizeof(d) != unsafe.Sizeof(v) {")
	p(`		panic("vx: bit cast size mismatch")`)
	p("	}")
	p("	return *(*Vec%d[D])(unsafe.Pointer(&v))", n)
	p("}")
	p("")
	p("// Select%d picks then-lanes where cond is all-ones and els-lanes where it", n)
	p("// is all-zero, as the pure bit operation (cond & then) | (^cond & els).")
	p("func Select%d[T Lanes, M Integers](cond Vec%d[M], then, els Vec%d[T]) Vec%d[T] {", n, n, n, n)
	switch {
	case n == 4:
		p("	if active.Blend4x32 != nil {")
		p("		var t T")
		p("		var m M")
		p("		if unsafe.Sizeof(t) == 4 && unsafe.Sizeof(m) == 4 {")
		p("			r := active.Blend4x32(")
		p("				[4]uint32(BitCast4[uint32](cond)),")
		p("				[4]uint32(BitCast4[uint32](then)),")
		p("				[4]uint32(BitCast4[uint32](els)))")
		p("			return BitCast4[T](Vec4[uint32](r))")
		p("		}")
		p("	}")
	case n > 4:
		p("	if active.Blend4x32 != nil {")
		p("		lo := Select%d(cond.Lo(), then.Lo(), els.Lo())", n/2)
		p("		return lo.Join(Select%d(cond.Hi(), then.Hi(), els.Hi()))", n/2)
		p("	}")
	}
	p("	tm := BitCast%d[M](then)", n)
	p("	em := BitCast%d[M](els)", n)
	p("	r := Or%d(And%d(cond, tm), AndNot%d(em, cond))", n, n, n)
	p("	return BitCast%d[T](r)", n)
	p("}")
	p("")
	p("// Any%d reports whether any lane is nonzero.", n)
	p("func Any%d[T Integers](m Vec%d[T]) bool {", n, n)
	p("	return anyLanes(m[:])")
	p("}")
	p("")
	p("// All%d reports whether every lane is nonzero.", n)
	p("func All%d[T Integers](m Vec%d[T]) bool {", n, n)
	p("	return allLanes(m[:])")
	p("}")
	p("")
}

// kernelUnary emits a float op that hooks a registered kernel at widths
// 4 and 8 and splits in half at wider widths.
func kernelUnary(p printf, n int, name, core string, extraDoc []string) {
	for _, line := range extraDoc {
		p("%s", line)
	}
	p("func %s%d[T Floats](x Vec%d[T]) Vec%d[T] {", name, n, n, n)
	k4 := name + "4f"
	k8 := name + "8f"
	switch n {
	case 4:
		p("	if active.%s != nil {", k4)
		p("		if xf, ok := any(x).(Vec4[float32]); ok {")
		p("			return any(Vec4[float32](active.%s([4]float32(xf)))).(Vec4[T])", k4)
		p("		}")
		p("	}")
	case 8:
		p("	if active.%s != nil {", k8)
		p("		if xf, ok := any(x).(Vec8[float32]); ok {")
		p("			return any(Vec8[float32](active.%s([8]float32(xf)))).(Vec8[T])", k8)
		p("		}")
		p("	}")
		p("	if active.%s != nil {", k4)
		p("		return %s4(x.Lo()).Join(%s4(x.Hi()))", name, name)
		p("	}")
	case 16:
		p("	if active.%s != nil || active.%s != nil {", k8, k4)
		p("		return %s8(x.Lo()).Join(%s8(x.Hi()))", name, name)
		p("	}")
	}
	p("	%s(x[:], x[:])", core)
	p("	return x")
	p("}")
	p("")
}

func emitMath(p printf, n int) {
	kernelUnary(p, n, "Sqrt", "sqrtLanes", []string{
		fmt.Sprintf("// Sqrt%d returns the lanewise square root.", n),
	})

	plain := []struct{ name, doc, core string }{
		{"Ceil", "rounds every lane up to an integer", "ceilLanes"},
		{"Floor", "rounds every lane down to an integer", "floorLanes"},
		{"Trunc", "rounds every lane toward zero", "truncLanes"},
		{"Round", "", "roundLanes"},
		{"Sin", "returns the lanewise sine", "sinLanes"},
		{"Cos", "returns the lanewise cosine", "cosLanes"},
		{"Tan", "returns the lanewise tangent", "tanLanes"},
		{"Atan", "returns the lanewise arctangent", "atanLanes"},
	}
	for _, op := range plain {
		// Atan2 would read as the two-argument arctangent.
		fn := fmt.Sprintf("%s%d", op.name, n)
		if op.name == "Atan" && n == 2 {
			fn = "Atan2v"
		}
		if op.name == "Round" {
			p("// %s rounds every lane to the nearest integer, halves away from", fn)
			p("// zero.")
		} else {
			p("// %s %s.", fn, op.doc)
		}
		p("func %s[T Floats](x Vec%d[T]) Vec%d[T] {", fn, n, n)
		p("	%s(x[:], x[:])", op.core)
		p("	return x")
		p("}")
		p("")
	}

	p("// Pow%d returns the lanewise x**y.", n)
	p("func Pow%d[T Floats](x, y Vec%d[T]) Vec%d[T] {", n, n, n)
	p("	powLanes(x[:], x[:], y[:])")
	p("	return x")
	p("}")
	p("")
	p("// Fract%d returns the lanewise x - floor(x).", n)
	p("func Fract%d[T Floats](x Vec%d[T]) Vec%d[T] {", n, n, n)
	p("	fractLanes(x[:], x[:])")
	p("	return x")
	p("}")
	p("")

	rcpDoc := []string{
		fmt.Sprintf("// Rcp%d returns a reciprocal-like value per lane.", n),
	}
	rsqrtDoc := []string{
		fmt.Sprintf("// Rsqrt%d returns a reciprocal-square-root-like value per lane.", n),
	}
	if n >= 4 {
		rcpDoc = []string{
			fmt.Sprintf("// Rcp%d returns a reciprocal-like value per lane. With a platform kernel", n),
			"// registered this is the hardware estimate refined by Newton steps, not",
			"// the exact 1/x; the portable path computes 1/x.",
		}
		rsqrtDoc = []string{
			fmt.Sprintf("// Rsqrt%d returns a reciprocal-square-root-like value per lane. With a", n),
			"// platform kernel registered this is the hardware estimate refined by",
			"// Newton steps, not the exact 1/sqrt(x).",
		}
	} else {
		rcpDoc = []string{
			fmt.Sprintf("// Rcp%d returns a reciprocal-like value per lane; here the exact 1/x.", n),
		}
		rsqrtDoc = []string{
			fmt.Sprintf("// Rsqrt%d returns a reciprocal-square-root-like value per lane; here the", n),
			"// exact 1/sqrt(x).",
		}
	}
	kernelUnary(p, n, "Rcp", "rcpLanes", rcpDoc)
	kernelUnary(p, n, "Rsqrt", "rsqrtLanes", rsqrtDoc)

	p("// Fma%d returns x*y + z with a single rounding step per lane.", n)
	p("func Fma%d[T Floats](x, y, z Vec%d[T]) Vec%d[T] {", n, n, n)
	switch n {
	case 4:
		p("	if active.Fma4f != nil {")
		p("		if xf, ok := any(x).(Vec4[float32]); ok {")
		p("			yf := any(y).(Vec4[float32])")
		p("			zf := any(z).(Vec4[float32])")
		p("			return any(Vec4[float32](active.Fma4f([4]float32(xf), [4]float32(yf), [4]float32(zf)))).(Vec4[T])")
		p("		}")
		p("	}")
	case 8:
		p("	if active.Fma8f != nil {")
		p("		if xf, ok := any(x).(Vec8[float32]); ok {")
		p("			yf := any(y).(Vec8[float32])")
		p("			zf := any(z).(Vec8[float32])")
		p("			return any(Vec8[float32](active.Fma8f([8]float32(xf), [8]float32(yf), [8]float32(zf)))).(Vec8[T])")
		p("		}")
		p("	}")
		p("	if active.Fma4f != nil {")
		p("		return Fma4(x.Lo(), y.Lo(), z.Lo()).Join(Fma4(x.Hi(), y.Hi(), z.Hi()))")
		p("	}")
	case 16:
		p("	if active.Fma8f != nil || active.Fma4f != nil {")
		p("		return Fma8(x.Lo(), y.Lo(), z.Lo()).Join(Fma8(x.Hi(), y.Hi(), z.Hi()))")
		p("	}")
	}
	p("	fmaLanes(x[:], x[:], y[:], z[:])")
	p("	return x")
	p("}")
	p("")

	p("// Lrint%d converts every lane to int32, rounding to nearest even.", n)
	p("func Lrint%d[T Floats](x Vec%d[T]) Vec%d[int32] {", n, n, n)
	switch n {
	case 4:
		p("	if active.Lrint4f != nil {")
		p("		if xf, ok := any(x).(Vec4[float32]); ok {")
		p("			return Vec4[int32](active.Lrint4f([4]float32(xf)))")
		p("		}")
		p("	}")
	case 8:
		p("	if active.Lrint8f != nil {")
		p("		if xf, ok := any(x).(Vec8[float32]); ok {")
		p("			return Vec8[int32](active.Lrint8f([8]float32(xf)))")
		p("		}")
		p("	}")
		p("	if active.Lrint4f != nil {")
		p("		return Lrint4(x.Lo()).Join(Lrint4(x.Hi()))")
		p("	}")
	case 16:
		p("	if active.Lrint8f != nil || active.Lrint4f != nil {")
		p("		return Lrint8(x.Lo()).Join(Lrint8(x.Hi()))")
		p("	}")
	}
	p("	var r Vec%d[int32]", n)
	p("	lrintLanes(r[:], x[:])")
	p("	return r")
	p("}")
	p("")

	p("// Cast%d converts every lane to type D with Go scalar conversion", n)
	p("// semantics (float to int truncates toward zero).")
	p("func Cast%d[D Lanes, S Lanes](v Vec%d[S]) Vec%d[D] {", n, n, n)
	p("	var r Vec%d[D]", n)
	p("	castLanes(r[:], v[:])")
	p("	return r")
	p("}")
	p("")
}

func emitShuffle(p printf, n int) {
	p("// Shuffle%d builds a Vec%d from the indexed lanes of src.", n, n)
	p("func Shuffle%d[T Lanes](src []T, %s int) Vec%d[T] {", n, indexParams(n), n)
	p("	return Vec%d[T]{%s}", n, indexBody(n))
	p("}")
	p("")
	if n > 1 {
		p("// Reverse%d reverses the lane order.", n)
		p("func Reverse%d[T Lanes](v Vec%d[T]) Vec%d[T] {", n, n, n)
		p("	return Vec%d[T]{%s}", n, reverseBody(n))
		p("}")
		p("")
		p("// BroadcastLane%d returns a Vec%d with every lane set to v's given lane.", n, n)
		p("func BroadcastLane%d[T Lanes](v Vec%d[T], lane int) Vec%d[T] {", n, n, n)
		p("	return Splat%d(v[lane])", n)
		p("}")
		p("")
	}
}

func emitHalfAndColor(p printf, n int) {
	p("// ToHalf%d packs float32 lanes to half precision. Finite inputs only;", n)
	p("// halves that would be subnormal flush to zero.")
	p("func ToHalf%d(x Vec%d[float32]) Vec%d[uint16] {", n, n, n)
	switch n {
	case 4:
		p("	if active.ToHalf4 != nil {")
		p("		return Vec4[uint16](active.ToHalf4([4]float32(x)))")
		p("	}")
	case 8:
		p("	if active.ToHalf8 != nil {")
		p("		return Vec8[uint16](active.ToHalf8([8]float32(x)))")
		p("	}")
		p("	if active.ToHalf4 != nil {")
		p("		return ToHalf4(x.Lo()).Join(ToHalf4(x.Hi()))")
		p("	}")
	case 16:
		p("	if active.ToHalf8 != nil || active.ToHalf4 != nil {")
		p("		return ToHalf8(x.Lo()).Join(ToHalf8(x.Hi()))")
		p("	}")
	}
	p("	var r Vec%d[uint16]", n)
	p("	toHalfLanes(r[:], x[:])")
	p("	return r")
	p("}")
	p("")
	p("// FromHalf%d unpacks half-precision lanes to float32, flushing subnormal", n)
	p("// halves to zero.")
	p("func FromHalf%d(x Vec%d[uint16]) Vec%d[float32] {", n, n, n)
	switch n {
	case 4:
		p("	if active.FromHalf4 != nil {")
		p("		return Vec4[float32](active.FromHalf4([4]uint16(x)))")
		p("	}")
	case 8:
		p("	if active.FromHalf8 != nil {")
		p("		return Vec8[float32](active.FromHalf8([8]uint16(x)))")
		p("	}")
		p("	if active.FromHalf4 != nil {")
		p("		return FromHalf4(x.Lo()).Join(FromHalf4(x.Hi()))")
		p("	}")
	case 16:
		p("	if active.FromHalf8 != nil || active.FromHalf4 != nil {")
		p("		return FromHalf8(x.Lo()).Join(FromHalf8(x.Hi()))")
		p("	}")
	}
	p("	var r Vec%d[float32]", n)
	p("	fromHalfLanes(r[:], x[:])")
	p("	return r")
	p("}")
	p("")
	p("// Div255x%d packs 16-bit lanes down to 8 bits as (x+127)/255, the", n)
	p("// bit-exact rounding divide by 255.")
	p("func Div255x%d(x Vec%d[uint16]) Vec%d[uint8] {", n, n, n)
	p("	var r Vec%d[uint8]", n)
	p("	div255Lanes(r[:], x[:])")
	p("	return r")
	p("}")
	p("")
	p("// ApproxScale%d returns (x*y+x)/256 per lane: within one unit of", n)
	p("// Div255 of the exact product, and exact when either input is 0 or 255.")
	p("func ApproxScale%d(x, y Vec%d[uint8]) Vec%d[uint8] {", n, n, n)
	p("	var r Vec%d[uint8]", n)
	p("	approxScaleLanes(r[:], x[:], y[:])")
	p("	return r")
	p("}")
	p("")
	switch {
	case n < 8:
		p("// WidenMul%d multiplies 8-bit lanes into 16-bit lanes. Narrow inputs", n)
		p("// double up to reach the 8-lane kernel when one is registered.")
	case n == 8:
		p("// WidenMul8 multiplies 8-bit lanes into 16-bit lanes. This is the")
		p("// width the platform kernel is registered at.")
	default:
		p("// WidenMul%d multiplies 8-bit lanes into 16-bit lanes, splitting onto", n)
		p("// the 8-lane kernel when one is registered.")
	}
	p("func WidenMul%d(x, y Vec%d[uint8]) Vec%d[uint16] {", n, n, n)
	switch {
	case n < 8:
		p("	if active.WidenMul8 != nil {")
		p("		return WidenMul%d(x.Join(x), y.Join(y)).Lo()", 2*n)
		p("	}")
	case n == 8:
		p("	if active.WidenMul8 != nil {")
		p("		return Vec8[uint16](active.WidenMul8([8]uint8(x), [8]uint8(y)))")
		p("	}")
	default:
		p("	if active.WidenMul8 != nil {")
		p("		return WidenMul8(x.Lo(), y.Lo()).Join(WidenMul8(x.Hi(), y.Hi()))")
		p("	}")
	}
	p("	var r Vec%d[uint16]", n)
	p("	widenMulLanes(r[:], x[:], y[:])")
	p("	return r")
	p("}")
}

func repeatLanes(s string, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = s
	}
	return strings.Join(parts, ", ")
}

func indexParams(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("i%d", i)
	}
	return strings.Join(parts, ", ")
}

func indexBody(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("src[i%d]", i)
	}
	return strings.Join(parts, ", ")
}

func reverseBody(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("v[%d]", n-1-i)
	}
	return strings.Join(parts, ", ")
}
