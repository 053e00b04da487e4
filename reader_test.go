package kangaroo_test

import (
	"testing"

	"github.com/gordian-engine/kangaroo"
	"github.com/gordian-engine/kangaroo/internal/ktest"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

func TestReader_Read_panicsOnSecondCall(t *testing.T) {
	t.Parallel()

	h := kangaroo.New()
	_, err := h.Write([]byte("hello"))
	require.NoError(t, err)

	r := h.Finalize()

	out := make([]byte, 32)
	_, err = r.Read(out)
	require.NoError(t, err)

	require.Panics(t, func() {
		_, _ = r.Read(out)
	})
}

func TestReader_zeroLengthOutput(t *testing.T) {
	t.Parallel()

	h := kangaroo.New()
	_, err := h.Write(ktest.Pattern(100))
	require.NoError(t, err)

	r := h.Finalize()

	n, err := r.Read(nil)
	require.NoError(t, err)
	require.Zero(t, n)

	// Even a zero-length read consumes the Reader.
	require.Panics(t, func() {
		_, _ = r.Read(make([]byte, 1))
	})
}

func TestReader_outputsSharePrefix(t *testing.T) {
	t.Parallel()

	for _, sz := range []int{5, kangaroo.ChunkSize + 5, 20 * kangaroo.ChunkSize} {
		m := ktest.Pattern(sz)

		short := kt128(t, m, nil, 16)
		long := kt128(t, m, nil, 64)

		require.Equal(t, short, long[:16], "message size %d", sz)
	}
}

// Reconstructs a two-chunk computation from the sponge primitive directly,
// confirming the chunk split, the domain separation bytes,
// the chunk-zero marker, the encoded trailing-chunk count of 1,
// and the final trailer.
func TestReader_twoChunkFinalNodeLayout(t *testing.T) {
	t.Parallel()

	m := ktest.Pattern(kangaroo.ChunkSize + 1000)

	// With an empty customization the finalized input is
	// the message followed by the single byte 0x00.
	s := append(ktest.Pattern(kangaroo.ChunkSize+1000), 0x00)

	leaf := sha3.NewTurboShake128(0x0B)
	_, err := leaf.Write(s[kangaroo.ChunkSize:])
	require.NoError(t, err)
	cv := make([]byte, 32)
	_, err = leaf.Read(cv)
	require.NoError(t, err)

	final := sha3.NewTurboShake128(0x06)
	_, err = final.Write(s[:kangaroo.ChunkSize])
	require.NoError(t, err)
	_, err = final.Write([]byte{0x03, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	_, err = final.Write(cv)
	require.NoError(t, err)
	_, err = final.Write([]byte{0x01, 0x01}) // One trailing chunk, length-encoded.
	require.NoError(t, err)
	_, err = final.Write([]byte{0xFF, 0xFF})
	require.NoError(t, err)

	exp := make([]byte, 48)
	_, err = final.Read(exp)
	require.NoError(t, err)

	require.Equal(t, exp, kt128(t, m, nil, 48))
}

// A message short of the chunk boundary takes the single-chunk path:
// the output is the 0x07-domain sponge over the finalized input,
// with no tree structure at all.
func TestReader_singleChunkFastPath(t *testing.T) {
	t.Parallel()

	m := ktest.Pattern(100)

	sponge := sha3.NewTurboShake128(0x07)
	_, err := sponge.Write(m)
	require.NoError(t, err)
	_, err = sponge.Write([]byte{0x00})
	require.NoError(t, err)

	exp := make([]byte, 32)
	_, err = sponge.Read(exp)
	require.NoError(t, err)

	require.Equal(t, exp, kt128(t, m, nil, 32))
}

// An empty finalized input still forms one (empty) chunk.
func TestReader_emptyInputIsOneEmptyChunk(t *testing.T) {
	t.Parallel()

	// New with no writes and an empty customization:
	// the finalized input is the single encoding byte 0x00,
	// so this is the single-chunk path over one byte.
	sponge := sha3.NewTurboShake128(0x07)
	_, err := sponge.Write([]byte{0x00})
	require.NoError(t, err)

	exp := make([]byte, 32)
	_, err = sponge.Read(exp)
	require.NoError(t, err)

	require.Equal(t, exp, kt128(t, nil, nil, 32))
}

// Customizations of 256 bytes or more exercise the multi-byte
// length encoding appended at finalization.
func TestReader_longCustomizationLengthEncoding(t *testing.T) {
	t.Parallel()

	m := []byte("message")
	c := ktest.Pattern(300)

	// S = M || C || {0x01, 0x2C, 0x02} for a 300-byte customization.
	sponge := sha3.NewTurboShake128(0x07)
	_, err := sponge.Write(m)
	require.NoError(t, err)
	_, err = sponge.Write(c)
	require.NoError(t, err)
	_, err = sponge.Write([]byte{0x01, 0x2C, 0x02})
	require.NoError(t, err)

	exp := make([]byte, 32)
	_, err = sponge.Read(exp)
	require.NoError(t, err)

	require.Equal(t, exp, kt128(t, m, c, 32))
}
