package vx

import "math"

// Half-precision packing under a restricted contract: inputs are assumed
// finite, and subnormal halves flush to zero in both directions. This is
// not a full IEEE 754 binary16 conversion; infinities and NaNs are out
// of contract. Key constants: a float32 is 1-8-23 with bias 127, a half
// is 1-5-10 with bias 15.

const (
	halfBiasShift = (127 - 15) << 10
	wideBiasShift = (127 - 15) << 23
)

func toHalfLane(f float32) uint16 {
	sem := math.Float32bits(f)
	s := sem & 0x8000_0000
	em := sem ^ s
	if em < 0x3880_0000 { // subnormal as a half: flush
		return 0
	}
	return uint16((s >> 16) + (em >> 13) - halfBiasShift)
}

func fromHalfLane(h uint16) float32 {
	wide := uint32(h)
	s := wide & 0x8000
	em := wide ^ s
	if em < 0x0400 { // subnormal half: flush
		return 0
	}
	return math.Float32frombits((s << 16) + (em << 13) + wideBiasShift)
}

func toHalfLanes(dst []uint16, src []float32) {
	for i := range dst {
		dst[i] = toHalfLane(src[i])
	}
}

func fromHalfLanes(dst []float32, src []uint16) {
	for i := range dst {
		dst[i] = fromHalfLane(src[i])
	}
}
