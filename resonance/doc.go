// Package resonance classifies bytes into the 96 resonance equivalence
// classes that drive harmonia's clustering and scheduling.
//
// 🚀 What is a resonance class?
//
//	Every byte value belongs to exactly one class: value mod 96.  The 96
//	classes partition any region into equivalence groups that the cluster
//	package later gathers into CSR views and the harmonic package aligns
//	into time windows.  Two classes "harmonize" when their sum is congruent
//	to zero mod 96; each class has exactly one harmonic conjugate.
//
// ✨ Key operations:
//   - Classify(b)            — byte → Class in [0,96)
//   - ClassifyPage(page)     — 256 bytes → 256 classes, order-preserving
//   - Histogram(page)        — 96 per-class counts, always summing to 256
//   - HarmonicConjugate(r)   — the unique partner class of r
//   - Harmonizes(r1, r2)     — (r1 + r2) mod 96 == 0
//
// Pages are exactly PageSize (256) bytes; ClassifyPage and Histogram
// reject any other length with ErrBadPageSize.
//
// ⚙️ Usage:
//
//	import "github.com/selivant/harmonia/resonance"
//
//	classes, err := resonance.ClassifyPage(page)
//	if err != nil {
//	    // handle ErrBadPageSize
//	}
//	hist, _ := resonance.Histogram(page)
//
// Complexity: all operations are O(1) per byte, O(PageSize) per page.
package resonance
