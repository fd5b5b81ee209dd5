package harmonic

import (
	"time"

	"github.com/selivant/harmonia/resonance"
)

// Modulus is the alignment base shared with the conservation law.
const Modulus = 96

// NextWindow returns the earliest instant t ≥ now such that
// (t + r) mod 96 == 0, computed in closed form:
//
//	now + ((96 - ((now + r) mod 96)) mod 96)
//
// The class is reduced mod 96 on entry, and negative now values are
// handled by normalizing the inner remainder, so the result is always
// the smallest aligned instant at or after now.
//
// Complexity: O(1).
func NextWindow(now int64, r resonance.Class) int64 {
	phase := (now + int64(r%Modulus)) % Modulus
	if phase < 0 {
		phase += Modulus
	}

	return now + (Modulus-phase)%Modulus
}

// NextWindowAfter is NextWindow over wall-clock time at second
// resolution: the earliest second at or after t whose Unix timestamp
// aligns with class r.
func NextWindowAfter(t time.Time, r resonance.Class) time.Time {
	sec := t.Unix()
	if t.Nanosecond() > 0 {
		sec++ // round up so the window never precedes t
	}

	return time.Unix(NextWindow(sec, r), 0).UTC()
}

// Harmonizes reports whether two classes may share a window:
// (r1 + r2) mod 96 == 0. It is resonance.Harmonizes, re-exported for
// scheduling call sites.
func Harmonizes(r1, r2 resonance.Class) bool {
	return resonance.Harmonizes(r1, r2)
}
