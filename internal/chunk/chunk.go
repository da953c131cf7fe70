package chunk

// Slice splits s into consecutive groups of size elements.
// The last group holds the remainder and may be shorter.
// The groups share s's backing array.
func Slice[T any](s []T, size int) [][]T {
	if len(s) == 0 || size < 1 {
		return nil
	}
	out := make([][]T, 0, (len(s)+size-1)/size)
	for start := 0; start < len(s); start += size {
		end := min(start+size, len(s))
		out = append(out, s[start:end:end])
	}
	return out
}

// String is Slice for strings.
func String(s string, size int) []string {
	if len(s) == 0 || size < 1 {
		return nil
	}
	out := make([]string, 0, (len(s)+size-1)/size)
	for start := 0; start < len(s); start += size {
		out = append(out, s[start:min(start+size, len(s))])
	}
	return out
}
