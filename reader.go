package kangaroo

import (
	"errors"

	"golang.org/x/crypto/sha3"
)

// ChunkSize is the fixed KangarooTwelve chunk size in bytes.
// The first chunk of the finalized input becomes part of the final node;
// every later chunk is hashed into a chaining value.
const ChunkSize = 8192

// chainingValueSize is the size of one trailing-chunk chaining value.
const chainingValueSize = 32

// Domain separation bytes for the TurboSHAKE128 sponge.
// They keep a single-chunk message, a leaf within the tree,
// and the final node cryptographically distinct,
// even for identical raw input bytes.
const (
	dsSingleChunk = 0x07
	dsLeaf        = 0x0B
	dsFinalNode   = 0x06
)

// chunkZeroMarker separates the first chunk from the chaining values
// within the final node.
var chunkZeroMarker = [8]byte{0x03, 0, 0, 0, 0, 0, 0, 0}

// finalNodeTrailer terminates the final node,
// after the trailing-chunk count.
var finalNodeTrailer = [2]byte{0xFF, 0xFF}

// Reader holds a finalized message and produces the XOF output.
//
// Read may be called exactly once.
// A Reader is deliberately not a resumable [io.Reader]:
// continuing to squeeze a partially consumed sponge is outside
// this construction's contract, so a second Read panics
// instead of returning bytes that would silently be wrong.
type Reader struct {
	buf           []byte
	customization []byte

	finished bool
}

// Read runs the tree-hashing computation and fills all of p with output.
// It always returns len(p) and a nil error.
// A zero-length p is legal and still consumes the Reader.
//
// Requesting two output lengths from two finalizations of the same
// message yields outputs that agree on their common prefix.
//
// Read panics if called a second time on the same Reader.
func (r *Reader) Read(p []byte) (int, error) {
	if r.finished {
		panic(errors.New(
			"BUG: (*Reader).Read called twice; finalize a Hasher again for more output",
		))
	}
	r.finished = true

	// S = M || C || rightEncode(len(C)).
	// The Reader owns buf, so appending in place is safe.
	s := append(r.buf, r.customization...)
	s = append(s, rightEncode(uint64(len(r.customization)))...)

	// At least one chunk always exists:
	// even for an empty message and customization,
	// the length encoding contributes one byte to S.
	nChunks := (len(s) + ChunkSize - 1) / ChunkSize

	if nChunks == 1 {
		// Single chunk: hash S directly, no tree.
		sponge := sha3.NewTurboShake128(dsSingleChunk)
		_, _ = sponge.Write(s)
		_, _ = sponge.Read(p)
		return len(p), nil
	}

	// Hash every trailing chunk into its chaining value.
	cvs := chainingValues(s[ChunkSize:], nChunks-1)

	// The final node is the first chunk, the marker,
	// the chaining values in chunk order,
	// the encoded trailing-chunk count, and the trailer.
	// Stream the pieces into the sponge rather than
	// assembling another chunk-sized buffer.
	sponge := sha3.NewTurboShake128(dsFinalNode)
	_, _ = sponge.Write(s[:ChunkSize])
	_, _ = sponge.Write(chunkZeroMarker[:])
	_, _ = sponge.Write(cvs)
	_, _ = sponge.Write(rightEncode(uint64(nChunks - 1)))
	_, _ = sponge.Write(finalNodeTrailer[:])
	_, _ = sponge.Read(p)

	return len(p), nil
}
