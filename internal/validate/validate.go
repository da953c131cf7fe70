package validate

import (
	"errors"
	"fmt"
	"math"
)

const channels = 3

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidOption = errors.New("invalid option")
)

// Error reports which field failed which constraint.
// It unwraps to ErrInvalidInput or ErrInvalidOption.
type Error struct {
	Kind   error
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s %s", e.Kind, e.Field, e.Reason)
}

func (e *Error) Unwrap() error { return e.Kind }

func input(field, format string, args ...any) error {
	return &Error{Kind: ErrInvalidInput, Field: field, Reason: fmt.Sprintf(format, args...)}
}

func option(field, format string, args ...any) error {
	return &Error{Kind: ErrInvalidOption, Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Width checks that width is a positive integer.
func Width(width int) error {
	if width < 1 {
		return option("width", "must be a positive integer, got %d", width)
	}
	return nil
}

// Scale checks that scale is a positive integer.
func Scale(scale int) error {
	if scale < 1 {
		return option("scale", "must be a positive integer, got %d", scale)
	}
	return nil
}

// BitString checks that bits is non-empty and holds only '0' and '1'.
func BitString(bits string) error {
	if len(bits) == 0 {
		return input("bits", "must not be empty")
	}
	for i := 0; i < len(bits); i++ {
		if c := bits[i]; c != '0' && c != '1' {
			return input("bits", "must contain only '0' and '1', got %q at %d", c, i)
		}
	}
	return nil
}

// Bits checks the bit string, that one row of width bits fits in it, and
// that the encoded length padded*3*scale*scale fits in an int.
func Bits(bits string, width, scale int) error {
	if err := BitString(bits); err != nil {
		return err
	}
	if err := Width(width); err != nil {
		return err
	}
	if width > len(bits) {
		return option("width", "must not exceed bit count %d, got %d", len(bits), width)
	}
	if err := Scale(scale); err != nil {
		return err
	}
	// width <= len(bits), so padded stays below 2*len(bits)
	padded := (len(bits) + width - 1) / width * width
	if limit := math.MaxInt / channels / padded; scale > limit/scale {
		return option("scale", "is too large for %d bits, got %d", len(bits), scale)
	}
	return nil
}

// Values checks that every sample fits in a byte and that the samples can
// form at least one full scaled row.
func Values(values []int, width, scale int) error {
	if len(values) == 0 {
		return input("values", "must not be empty")
	}
	for i, v := range values {
		if v < 0 || v > 255 {
			return input("values", "must be within [0,255], got %d at %d", v, i)
		}
	}
	return Samples(len(values), width, scale)
}

// Length checks that a byte sequence of length n is non-empty.
func Length(n int) error {
	if n == 0 {
		return input("values", "must not be empty")
	}
	return nil
}

// Samples checks a byte sequence of length n against width and scale.
func Samples(n, width, scale int) error {
	if err := Length(n); err != nil {
		return err
	}
	if err := Scale(scale); err != nil {
		return err
	}
	if err := Width(width); err != nil {
		return err
	}
	// width*scale*3 <= n, written so the product is never formed
	if width > n/channels || scale > n/channels/width {
		return option("width", "needs width*scale*3 bytes for one row (width %d, scale %d), got %d", width, scale, n)
	}
	return nil
}
