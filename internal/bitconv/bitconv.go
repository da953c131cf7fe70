package bitconv

import "errors"

var ErrNotBinary = errors.New("bit string must contain only '0' and '1'")

func BytesToBools(b []byte) []bool {
	bits := make([]bool, 0, len(b)*8)
	for _, bb := range b {
		for i := 7; i >= 0; i-- {
			bits = append(bits, ((bb>>uint(i))&1) == 1)
		}
	}
	return bits
}

func BoolsToBytes(bits []bool) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, bit := range bits {
		if bit {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
	return out
}

// BoolsToString renders bits as '0' and '1' characters.
func BoolsToString(bits []bool) string {
	out := make([]byte, len(bits))
	for i, bit := range bits {
		out[i] = '0'
		if bit {
			out[i] = '1'
		}
	}
	return string(out)
}

// StringToBools parses a string of '0' and '1' characters.
func StringToBools(s string) ([]bool, error) {
	bits := make([]bool, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			bits[i] = true
		default:
			return nil, ErrNotBinary
		}
	}
	return bits, nil
}
