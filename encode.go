package kangaroo

// rightEncode returns the variable-length integer encoding used by
// KangarooTwelve: the big-endian bytes of x with no leading zeros,
// followed by one byte holding the count of those bytes.
//
// rightEncode(0) is the single byte 0x00:
// zero content bytes, then a zero count.
func rightEncode(x uint64) []byte {
	if x == 0 {
		return []byte{0}
	}

	n := 0
	for v := x; v > 0; v >>= 8 {
		n++
	}

	out := make([]byte, n+1)
	for i := n - 1; i >= 0; i-- {
		out[i] = byte(x)
		x >>= 8
	}
	out[n] = byte(n)

	return out
}
