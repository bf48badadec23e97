package vx

// 8-bit fixed-point color cores. These renormalize products of 8-bit
// quantities, where 255 plays the role of 1.0.

// div255Lane is the bit-exact rounding divide-by-255: (x+127)/255,
// packing a 16-bit product back down to 8 bits. The sum is widened so
// inputs up to 65535 don't wrap before the divide.
func div255Lane(x uint16) uint8 {
	return uint8((uint32(x) + 127) / 255)
}

// approxScaleLane approximates div255(x*y) within one unit, and is exact
// whenever x or y is 0 or 255. Any of (x*y+x)/256, (x*y+y)/256 and
// (x*y+255)/256 would do; (x*y+x)/256 is the historical pick.
func approxScaleLane(x, y uint8) uint8 {
	xy := uint32(x) * uint32(y)
	return uint8((xy + uint32(x)) / 256)
}

// widenMulLane is the 8x8 -> 16 bit widening multiply.
func widenMulLane(x, y uint8) uint16 {
	return uint16(x) * uint16(y)
}

func div255Lanes(dst []uint8, src []uint16) {
	for i := range dst {
		dst[i] = div255Lane(src[i])
	}
}

func approxScaleLanes(dst, x, y []uint8) {
	for i := range dst {
		dst[i] = approxScaleLane(x[i], y[i])
	}
}

func widenMulLanes(dst []uint16, x, y []uint8) {
	for i := range dst {
		dst[i] = widenMulLane(x[i], y[i])
	}
}
