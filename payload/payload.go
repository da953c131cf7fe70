// Package payload turns text and bytes into bit strings for bitpixel,
// optionally protected by a shuffled Golay code, and recovers them.
package payload

import (
	"errors"
	"fmt"

	"github.com/yyyoichi/bitpixel/internal/bitconv"
	"github.com/yyyoichi/bitstream-go"
)

var (
	ErrInvalidBits = errors.New("invalid payload bits")
	ErrShortBits   = errors.New("too few bits for payload")
)

// Payload holds the encoded bits of a message.
type Payload struct {
	size   int
	reader *bitstream.BitReader[uint64]
}

// New initializes a Payload from the first size bits of data.
// By default, it uses the Golay code with shuffle error correction algorithm.
func New(data []uint64, size int, opts ...Option) *Payload {
	c := newCoding(opts...)
	if max := len(data) * 64; max < size {
		size = max
	}
	encoded, encodedLen := c.f.encode(data, size)
	reader := bitstream.NewBitReader(encoded, 0, 0)
	reader.SetBits(encodedLen)
	return &Payload{size: size, reader: reader}
}

func NewBytes(data []byte, opts ...Option) *Payload {
	return NewBools(bitconv.BytesToBools(data), opts...)
}

func NewString(data string, opts ...Option) *Payload {
	return NewBytes([]byte(data), opts...)
}

func NewBools(data []bool, opts ...Option) *Payload {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range data {
		w.WriteBool(v)
	}
	return New(w.Data(), w.Bits(), opts...)
}

// Len returns the number of encoded bits.
func (p *Payload) Len() int {
	return p.reader.Bits()
}

// Size returns the number of message bits before encoding.
func (p *Payload) Size() int {
	return p.size
}

// Bits returns the encoded bits as a string of '0' and '1', ready for bitpixel.Encode.
func (p *Payload) Bits() string {
	bits := make([]bool, p.Len())
	for i := range bits {
		bits[i], _ = p.reader.ReadBitAt(i)
	}
	return bitconv.BoolsToString(bits)
}

// Extract recovers a message of a known size from decoded bits.
// It must be created with the options used for the Payload.
type Extract struct {
	size int
	c    coding
}

// NewExtract prepares the extraction of a message of size bits.
func NewExtract(size int, opts ...Option) *Extract {
	return &Extract{size: size, c: newCoding(opts...)}
}

// Len returns the number of encoded bits Decode consumes.
func (e *Extract) Len() int {
	return e.c.f.encodedLen(e.size)
}

// Size returns the number of message bits.
func (e *Extract) Size() int {
	return e.size
}

// DecodeToBools returns the message bits. Bits beyond Len, such as the row
// padding added by bitpixel, are ignored.
func (e *Extract) DecodeToBools(bits string) ([]bool, error) {
	data, err := bitconv.StringToBools(bits)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBits, err)
	}
	if len(data) < e.Len() {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrShortBits, e.Len(), len(data))
	}
	if e.size == 0 {
		return []bool{}, nil
	}
	r := e.c.f.decode(data[:e.Len()], e.size)
	out := make([]bool, e.size)
	for i := range out {
		out[i], _ = r.ReadBitAt(i)
	}
	return out, nil
}

// Decode returns the message bytes. A trailing partial byte is zero padded.
func (e *Extract) Decode(bits string) ([]byte, error) {
	out, err := e.DecodeToBools(bits)
	if err != nil {
		return nil, err
	}
	return bitconv.BoolsToBytes(out), nil
}

// DecodeToString is Decode returning a string.
func (e *Extract) DecodeToString(bits string) (string, error) {
	b, err := e.Decode(bits)
	return string(b), err
}
