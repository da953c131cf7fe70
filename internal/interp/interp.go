package interp

import "math"

// Interpolate maps v linearly from [srcMin, srcMax] onto [dstMin, dstMax].
// Values outside the source range extrapolate; srcMin must differ from srcMax.
func Interpolate(v, srcMin, srcMax, dstMin, dstMax float64) float64 {
	return (v-srcMin)*(dstMax-dstMin)/(srcMax-srcMin) + dstMin
}

// Bit classifies an intensity byte as 0 or 1 by mapping it onto [0, 1]
// and rounding to the nearest end.
func Bit(b byte) byte {
	return bitTable[b]
}

var bitTable = func() (t [256]byte) {
	for i := range t {
		t[i] = byte(math.Round(Interpolate(float64(i), 0, 255, 0, 1)))
	}
	return
}()
