package bitpixel

import "github.com/yyyoichi/bitpixel/internal/validate"

var (
	// ErrInvalidInput reports a malformed bit string or sample sequence.
	ErrInvalidInput = validate.ErrInvalidInput
	// ErrInvalidOption reports a missing, non-positive or inconsistent width or scale.
	ErrInvalidOption = validate.ErrInvalidOption
)

// ValidationError names the field and constraint that failed.
// It unwraps to ErrInvalidInput or ErrInvalidOption.
type ValidationError = validate.Error
