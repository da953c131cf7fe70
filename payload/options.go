package payload

import "github.com/yyyoichi/bitstream-go"

var (
	DefaultShuffleSeed int64 = 1234567890
)

type (
	// Option is a function for selecting the algorithm for payload generation.
	// It allows choosing whether to use error correction codes (ECC) and which type.
	Option  func(*coding)
	coding  struct{ f factory }
	factory interface {
		encode(data []uint64, size int) ([]uint64, int)
		decode(data []bool, size int) *bitstream.BitReader[uint64]
		encodedLen(size int) int
	}
)

// WithoutECC is an option that does not use error correction codes.
// It uses the payload bits as-is without encoding.
func WithoutECC() Option {
	return func(c *coding) {
		c.f = withoutecc{}
	}
}

// WithGolay is an option that uses Golay code for error correction.
// seed is the seed value for shuffling the encoded bits.
// The encoded bits are deterministically shuffled so that a damaged region
// of the image spreads its errors over many code words.
func WithGolay(seed int64) Option {
	return func(c *coding) {
		c.f = shuffledgolay(seed)
	}
}

func newCoding(opts ...Option) coding {
	if len(opts) == 0 {
		opts = append(opts, WithGolay(DefaultShuffleSeed))
	}
	var c coding
	for _, opt := range opts {
		opt(&c)
	}
	if c.f == nil {
		c.f = shuffledgolay(DefaultShuffleSeed)
	}
	return c
}
