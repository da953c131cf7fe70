// Package bitpixel stores a bit string in the pixels of a raster image and reads it back.
package bitpixel

import (
	"github.com/yyyoichi/bitpixel/internal/pixel"
	"github.com/yyyoichi/bitpixel/internal/validate"
)

// Encode converts a string of '0' and '1' characters into raw RGB samples.
// This is a convenience function that creates a Codec instance and calls its Encode method.
// The bit string is checked before the options, so input errors take precedence.
func Encode(bits string, opts ...Option) ([]byte, error) {
	if err := validate.BitString(bits); err != nil {
		return nil, err
	}
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.Encode(bits)
}

// Decode converts raw RGB samples back into a string of '0' and '1' characters.
// This is a convenience function that creates a Codec instance and calls its Decode method.
// Empty values are reported before any option error.
func Decode(values []byte, opts ...Option) (string, error) {
	if err := validate.Length(len(values)); err != nil {
		return "", err
	}
	c, err := New(opts...)
	if err != nil {
		return "", err
	}
	return c.Decode(values)
}

// Codec holds the row width, scale and polarity shared by Encode and Decode.
// The same options must be used on both sides; they are not stored in the samples.
// A Codec is immutable and safe for concurrent use.
type Codec struct {
	width    int
	scale    int
	inverted bool
}

// New initializes a Codec. WithWidth is required; scale defaults to 1 and
// inversion to false.
func New(opts ...Option) (*Codec, error) {
	c := new(Codec)
	if err := c.init(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Codec) init(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	if c.width == 0 {
		return &ValidationError{Kind: ErrInvalidOption, Field: "width", Reason: "is required"}
	}
	if c.scale == 0 {
		c.scale = 1
	}
	return nil
}

// Width returns the number of bits per row.
func (c *Codec) Width() int { return c.width }

// Scale returns how many times each pixel is repeated along both axes.
func (c *Codec) Scale() int { return c.scale }

// Inverted reports whether '1' is stored as black instead of white.
func (c *Codec) Inverted() bool { return c.inverted }

// Encode converts bits into raw RGB samples.
//
// Process:
//  1. Maps '1' to 255 and '0' to 0, swapped when inverted.
//  2. Pads with zero bytes until the bit count is a multiple of width.
//  3. Repeats every byte over three channels.
//  4. Splits the samples into rows of width pixels.
//  5. Repeats each row, and each byte within it, scale times.
//
// The result holds len(bits) rounded up to width, times 3*scale*scale bytes.
// Padding is not recoverable: Decode returns the padded bit string.
//
// Returns an error if bits is empty or not binary, if width exceeds len(bits),
// or if scale is so large that the result length would overflow an int.
func (c *Codec) Encode(bits string) ([]byte, error) {
	if err := validate.Bits(bits, c.width, c.scale); err != nil {
		return nil, err
	}
	return pixel.Encode(bits, c.width, c.scale, c.inverted), nil
}

// Decode converts raw RGB samples produced by Encode back into bits.
//
// Process:
//  1. Rounds every byte to 0 or 1, absorbing lossy compression noise.
//  2. Splits the result into rows of width*3*scale bytes.
//  3. Keeps every scale-th row, discarding the vertical copies.
//  4. Reads one bit per 3*scale bytes: '1' only when all of them are 1.
//  5. Flips every bit when inverted.
//
// Returns an error if values is empty or shorter than one scaled row.
func (c *Codec) Decode(values []byte) (string, error) {
	if err := validate.Samples(len(values), c.width, c.scale); err != nil {
		return "", err
	}
	return pixel.Decode(values, c.width, c.scale, c.inverted), nil
}

// DecodeValues is Decode for samples held in a wider integer type.
// Returns an error if any value lies outside [0, 255].
func (c *Codec) DecodeValues(values []int) (string, error) {
	if err := validate.Values(values, c.width, c.scale); err != nil {
		return "", err
	}
	b := make([]byte, len(values))
	for i, v := range values {
		b[i] = byte(v)
	}
	return pixel.Decode(b, c.width, c.scale, c.inverted), nil
}

// ImageSize returns the pixel dimensions of an RGB image holding n samples
// produced by this Codec.
func (c *Codec) ImageSize(n int) (width, height int) {
	width = c.width * c.scale
	rowLen := width * 3
	return width, (n + rowLen - 1) / rowLen
}

// WidthFromImage derives the width option from the pixel width of an image
// encoded at scale. Returns an error if pixelWidth is not a positive multiple of scale.
func WidthFromImage(pixelWidth, scale int) (int, error) {
	if err := validate.Scale(scale); err != nil {
		return 0, err
	}
	if pixelWidth < scale || pixelWidth%scale != 0 {
		return 0, &ValidationError{
			Kind:   ErrInvalidOption,
			Field:  "scale",
			Reason: "must evenly divide the image width",
		}
	}
	return pixelWidth / scale, nil
}
