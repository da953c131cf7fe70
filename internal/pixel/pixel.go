// Package pixel turns bit strings into raw RGB samples and back.
// Callers validate arguments first; see internal/validate.
package pixel

import (
	"strings"

	"github.com/yyyoichi/bitpixel/internal/chunk"
	"github.com/yyyoichi/bitpixel/internal/interp"
)

const (
	channels = 3

	on  byte = 255
	off byte = 0
)

// Encode maps every bit to a grey RGB sample, pads the last row with zero
// samples up to width, then repeats each row and each byte scale times.
//
// Process:
//  1. '1' becomes 255 and '0' becomes 0, swapped when inverted.
//  2. Zero bytes are appended until the count is a multiple of width.
//  3. Each byte is repeated over the three channels.
//  4. The samples are split into rows of width*3 bytes.
//  5. Each row is emitted scale times, every byte in it repeated scale times.
func Encode(bits string, width, scale int, inverted bool) []byte {
	one, zero := on, off
	if inverted {
		one, zero = zero, one
	}

	// padding stays zero-valued whatever the polarity
	padded := (len(bits) + width - 1) / width * width
	samples := make([]byte, padded*channels)
	for i := 0; i < len(bits); i++ {
		v := zero
		if bits[i] == '1' {
			v = one
		}
		at := i * channels
		samples[at], samples[at+1], samples[at+2] = v, v, v
	}

	rows := chunk.Slice(samples, width*channels)
	out := make([]byte, 0, len(samples)*scale*scale)
	scaled := make([]byte, width*channels*scale)
	for _, row := range rows {
		for i, v := range row {
			for s := range scale {
				scaled[i*scale+s] = v
			}
		}
		for range scale {
			out = append(out, scaled...)
		}
	}
	return out
}

// Decode reverses Encode for the same width, scale and inversion.
//
// Process:
//  1. Every byte is classified as 0 or 1 by rounding its intensity.
//  2. The classified bytes are split into rows of width*3*scale.
//  3. Only every scale-th row is kept; the others are vertical copies.
//  4. Each kept row is split into groups of 3*scale bytes, one per bit.
//     A group is '1' only when every byte in it is 1.
//  5. When inverted, every resulting bit is flipped.
//
// The result includes the padding Encode appended.
func Decode(values []byte, width, scale int, inverted bool) string {
	classified := make([]byte, len(values))
	for i, v := range values {
		classified[i] = interp.Bit(v)
	}

	one, zero := byte('1'), byte('0')
	if inverted {
		one, zero = zero, one
	}

	groupLen := channels * scale
	rows := chunk.Slice(classified, width*groupLen)

	var sb strings.Builder
	sb.Grow(len(rows) / scale * width)
	for at := scale - 1; at < len(rows); at += scale {
		for _, group := range chunk.Slice(rows[at], groupLen) {
			if allSet(group, groupLen) {
				sb.WriteByte(one)
			} else {
				sb.WriteByte(zero)
			}
		}
	}
	return sb.String()
}

// allSet reports whether group is complete and holds only ones.
func allSet(group []byte, size int) bool {
	if len(group) != size {
		return false
	}
	for _, v := range group {
		if v != 1 {
			return false
		}
	}
	return true
}
