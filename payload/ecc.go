package payload

import (
	"math/rand"

	"github.com/yyyoichi/bitstream-go"
	"github.com/yyyoichi/golay"
)

var _ factory = (*shuffledgolay)(nil)

// shuffledgolay protects a payload with Golay(24,12) code words and then
// scatters the code word bits over the payload, so that a run of damaged
// pixels lands in many code words instead of one. The value is the seed.
type shuffledgolay int64

func (sg shuffledgolay) encode(data []uint64, size int) ([]uint64, int) {
	if size == 0 {
		return nil, 0
	}
	if size > len(data)*64 {
		panic("payload: size is larger than the packed data")
	}
	var words []uint64
	enc := golay.NewEncoder(&words)
	_ = enc.Encode(data, size)
	n := enc.Bits()

	src := bitstream.NewBitReader(words, 0, 0)
	dst := bitstream.NewBitWriter[uint64](0, 0)
	for to, from := range sg.permutation(n) {
		bit, _ := src.ReadBitAt(from)
		dst.WriteBitAt(to, bit)
	}
	return dst.Data(), n
}

func (sg shuffledgolay) decode(data []bool, size int) *bitstream.BitReader[uint64] {
	// bit i of the pixels came from position order[i] of the code words
	words := bitstream.NewBitWriter[uint64](0, 0)
	for i, from := range sg.permutation(len(data)) {
		words.WriteBitAt(from, data[i])
	}

	var corrected []uint64
	dec := golay.NewDecoder(words.Data(), words.Bits())
	_ = dec.Decode(&corrected)

	r := bitstream.NewBitReader(corrected, 0, 0)
	r.SetBits(size)
	return r
}

func (sg shuffledgolay) encodedLen(size int) int {
	if size == 0 {
		return 0
	}
	return golay.EncodedBits(size)
}

// permutation returns the code word position stored at each payload bit.
// The same seed and length always give the same order.
func (sg shuffledgolay) permutation(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	rand.New(rand.NewSource(int64(sg))).Shuffle(n, func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return order
}

var _ factory = (*withoutecc)(nil)

// withoutecc stores the payload bits as they are.
type withoutecc struct{}

func (withoutecc) encode(data []uint64, size int) ([]uint64, int) {
	return data, size
}

func (withoutecc) decode(data []bool, size int) *bitstream.BitReader[uint64] {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range data {
		w.WriteBool(v)
	}
	r := bitstream.NewBitReader(w.Data(), 0, 0)
	r.SetBits(size)
	return r
}

func (withoutecc) encodedLen(size int) int {
	return size
}
