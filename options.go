package bitpixel

import "github.com/yyyoichi/bitpixel/internal/validate"

type Option func(*Codec) error

// WithWidth sets how many bits form one image row before scaling.
// It is required, and must not exceed the number of bits being encoded.
func WithWidth(width int) Option {
	return func(c *Codec) error {
		if err := validate.Width(width); err != nil {
			return err
		}
		c.width = width
		return nil
	}
}

// WithScale repeats every row, and every byte within a row, scale times.
// For example, a scale of 2 doubles both the pixel width and the pixel height
// of the resulting image. Defaults to 1.
func WithScale(scale int) Option {
	return func(c *Codec) error {
		if err := validate.Scale(scale); err != nil {
			return err
		}
		c.scale = scale
		return nil
	}
}

// WithInverted swaps the polarity so that '1' becomes a black pixel and
// '0' a white one. Defaults to false.
func WithInverted(inverted bool) Option {
	return func(c *Codec) error {
		c.inverted = inverted
		return nil
	}
}
