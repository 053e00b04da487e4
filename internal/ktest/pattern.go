package ktest

// Pattern returns n bytes of the cyclic pattern 0x00, 0x01, ..., 0xFA
// used throughout the KangarooTwelve test vectors.
func Pattern(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i % 251)
	}
	return out
}
