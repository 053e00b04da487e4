// Package kangaroo implements the KangarooTwelve (KT128) extendable-output
// function, a tree-hashing mode over the TurboSHAKE128 sponge,
// as specified in [RFC 9861].
//
// Input is split into 8192-byte chunks.
// Every chunk after the first is hashed independently into a
// 32-byte chaining value, and the first chunk together with
// the chaining values forms a final node whose sponge output
// is the function's output, at whatever length the caller asks for.
//
// Absorb a message with a [Hasher], then call [Hasher.Finalize]
// (or [Hasher.FinalizeReset] to keep the customization string for
// another message) and read the output from the returned [Reader]
// exactly once.
//
// The underlying sponge is [golang.org/x/crypto/sha3.NewTurboShake128];
// this package only implements the chunking and tree construction
// layered on top of it.
//
// [RFC 9861]: https://www.rfc-editor.org/rfc/rfc9861
package kangaroo
