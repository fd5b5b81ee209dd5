package witness

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/blake2b"
)

// DigestSize is the byte length of a witness digest.
const DigestSize = blake2b.Size256

// ErrEmptyRegion indicates Generate was called on a nil or empty region.
var ErrEmptyRegion = errors.New("witness: region must be non-empty")

// Witness is a detached integrity digest over a byte region. Immutable
// once created; Destroy zeroizes it and poisons further verification.
type Witness struct {
	digest [DigestSize]byte
	length int // length of the witnessed region; -1 once destroyed
}

// Generate computes a witness over region. It never retains a reference
// into region. Returns ErrEmptyRegion if region is nil or empty.
//
// Complexity: O(len(region)) time, O(1) memory beyond the handle.
func Generate(region []byte) (*Witness, error) {
	if len(region) == 0 {
		return nil, ErrEmptyRegion
	}

	return &Witness{
		digest: blake2b.Sum256(region),
		length: len(region),
	}, nil
}

// Length returns the length of the region the witness was taken over,
// or -1 if the witness has been destroyed.
func (w *Witness) Length() int {
	if w == nil {
		return -1
	}

	return w.length
}

// Verify recomputes the digest over region and compares it against the
// witness in constant time. Returns false when the witness is nil or
// destroyed, when the lengths differ, or when the digests differ.
//
// Complexity: O(len(region)) time, O(1) memory.
func (w *Witness) Verify(region []byte) bool {
	if w == nil || w.length <= 0 || len(region) != w.length {
		return false
	}
	sum := blake2b.Sum256(region)

	return subtle.ConstantTimeCompare(w.digest[:], sum[:]) == 1
}

// Destroy zeroizes the digest and poisons the length so any later Verify
// fails. Idempotent and safe on a nil witness.
func (w *Witness) Destroy() {
	if w == nil {
		return
	}
	zero := make([]byte, DigestSize)
	subtle.ConstantTimeCopy(1, w.digest[:], zero)
	w.length = -1
}
