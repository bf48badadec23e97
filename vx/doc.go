// Package vx provides fixed-width SIMD-style vector values.
//
// A VecN[T] is N lanes of element type T, for the power-of-two widths
// 1, 2, 4, 8 and 16. Each vector is a plain Go array value: its memory
// layout is exactly [N]T with the alignment of T, it lives on the
// stack, and it is safe to copy, index and store like any array.
//
// Every operation has a single portable definition. Faster kernels for
// specific (operation, width, element type) shapes can be substituted
// through the internal registry when the CPU supports them; they are
// required to produce bit-identical results, except Rcp and Rsqrt which
// are documented approximations. Build with the purego tag, or set
// VX_NO_SIMD, to force the portable path everywhere.
//
// Basic usage:
//
//	a := vx.Splat4[float32](2)
//	b := vx.Vec4[float32]{1, 2, 3, 4}
//	c := a.Mul(b)       // {2, 4, 6, 8}
//	c.Store(out)
//
// Comparisons produce mask vectors: same width, integer element of the
// same size as T (int32 for float32, int64 for float64, T itself for
// integer T), each lane all-ones or all-zero. Masks combine with AndN,
// OrN and NotN, reduce with AnyN and AllN, and steer SelectN.
package vx
