// Package harmonic schedules operations into time windows aligned to
// resonance classes.
//
// 🚀 What is a harmonic window?
//
//	For a reference time now and a resonance class r, the harmonic window
//	is the earliest instant t ≥ now with (t + r) mod 96 == 0.  Domain
//	operations of class r dispatch at their window so that co-occurring
//	work stays phase-aligned with the conservation modulus.
//
// ✨ Key operations:
//   - NextWindow(now, r)      — closed-form earliest alignment, no search
//   - NextWindowAfter(t, r)   — the same over time.Time, second resolution
//   - Harmonizes(r1, r2)      — whether two classes may share a window
//
// Guarantees, for every now and valid r:
//
//	NextWindow(now, r) >= now
//	(NextWindow(now, r) + r) % 96 == 0
//	no smaller value ≥ now satisfies the congruence
//
// ⚙️ Usage:
//
//	at := harmonic.NextWindow(now, class)
//	delay := at - now // in [0,95]
//
// Complexity: O(1), pure arithmetic.
package harmonic
