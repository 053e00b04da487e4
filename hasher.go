package kangaroo

import "bytes"

// Hasher accumulates a message and an optional customization string.
//
// Absorbing performs no hashing.
// All of the work happens when the [Reader] produced by
// [Hasher.Finalize] or [Hasher.FinalizeReset] is read.
type Hasher struct {
	// The message absorbed so far.
	buf []byte

	// The customization string, fixed at construction.
	// It is appended to the message, with its length encoding,
	// only at finalization;
	// it never influences intermediate chunk boundaries.
	customization []byte
}

// New returns a Hasher with an empty customization string.
func New() *Hasher {
	return &Hasher{}
}

// NewWithCustomization returns a Hasher with the given customization string.
// The customization is copied, so the caller may reuse the slice.
func NewWithCustomization(customization []byte) *Hasher {
	return &Hasher{
		customization: bytes.Clone(customization),
	}
}

// Write absorbs p into the message.
// It may be called any number of times before finalizing,
// and it never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.buf = append(h.buf, p...)
	return len(p), nil
}

// Reset discards the absorbed message but keeps the customization string,
// so one Hasher can process independent messages
// under the same customization.
func (h *Hasher) Reset() {
	h.buf = h.buf[:0]
}

// Finalize consumes the Hasher into a [Reader].
// The message and the customization string both move into the Reader,
// leaving the Hasher as if it had just been created by [New].
//
// Use [Hasher.FinalizeReset] instead to keep the customization string
// for further messages.
func (h *Hasher) Finalize() *Reader {
	r := &Reader{
		buf:           h.buf,
		customization: h.customization,
	}

	h.buf = nil
	h.customization = nil

	return r
}

// FinalizeReset moves the absorbed message into a new [Reader]
// but retains the customization string,
// leaving the Hasher ready to absorb the next message.
//
// The customization is shared between the Hasher and the Reader;
// neither side modifies it.
func (h *Hasher) FinalizeReset() *Reader {
	r := &Reader{
		buf:           h.buf,
		customization: h.customization,
	}

	h.buf = nil

	return r
}
