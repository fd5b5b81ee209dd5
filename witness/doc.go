// Package witness produces and verifies detached integrity digests over
// byte regions.
//
// 🚀 What is a witness?
//
//	A witness is a fixed-size BLAKE2b-256 digest plus the exact length of
//	the region it was computed over.  It is a detached snapshot: creating
//	one never retains a reference into the source region, and the region
//	may be freed or mutated afterwards — verification simply recomputes
//	the digest and compares.
//
// ✨ Guarantees:
//   - Deterministic in (region contents, length)
//   - Any single-byte change in the region fails verification with
//     overwhelming probability (full 256-bit digest, no weak folds)
//   - Length is pinned: verifying against a region of a different length
//     fails before any hashing happens
//   - Digest comparison is constant-time
//
// ⚙️ Usage:
//
//	w, err := witness.Generate(buf)
//	if err != nil {
//	    // ErrEmptyRegion
//	}
//	// ... later ...
//	if !w.Verify(buf) {
//	    // region mutated since the witness was taken
//	}
//	w.Destroy() // zeroizes; safe to call twice, safe on nil
//
// Destroy poisons the witness so stale verification always fails rather
// than silently succeeding against a zeroed digest.
package witness
