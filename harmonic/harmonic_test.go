package harmonic_test

import (
	"testing"
	"time"

	"github.com/selivant/harmonia/harmonic"
	"github.com/selivant/harmonia/resonance"
)

// TestNextWindow_Properties sweeps every class against varied reference
// times and checks the three scheduling guarantees.
func TestNextWindow_Properties(t *testing.T) {
	nows := []int64{0, 1, 47, 95, 96, 97, 1000, 1<<40 + 7}
	for _, now := range nows {
		for r := resonance.Class(0); r < resonance.NumClasses; r++ {
			got := harmonic.NextWindow(now, r)
			if got < now {
				t.Fatalf("NextWindow(%d,%d) = %d < now", now, r, got)
			}
			if (got+int64(r))%harmonic.Modulus != 0 {
				t.Fatalf("NextWindow(%d,%d) = %d not aligned", now, r, got)
			}
			// Earliest: every earlier candidate ≥ now must fail the congruence.
			for c := now; c < got; c++ {
				if (c+int64(r))%harmonic.Modulus == 0 {
					t.Fatalf("NextWindow(%d,%d) = %d but %d already aligns", now, r, got, c)
				}
			}
		}
	}
}

// TestNextWindow_KnownValues pins a few hand-computed windows.
func TestNextWindow_KnownValues(t *testing.T) {
	cases := []struct {
		name string
		now  int64
		r    resonance.Class
		want int64
	}{
		{"AlreadyAligned", 96, 0, 96},
		{"ZeroClassFromZero", 0, 0, 0},
		{"OneStepShort", 95, 0, 96},
		{"ClassShifts", 0, 1, 95},
		{"ClassAtNow", 0, 96 - 48, 48},
		{"MidCycle", 100, 20, 172}, // 172 + 20 = 192 = 2·96
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := harmonic.NextWindow(tc.now, tc.r); got != tc.want {
				t.Errorf("NextWindow(%d,%d) = %d; want %d", tc.now, tc.r, got, tc.want)
			}
		})
	}
}

// TestNextWindow_NegativeNow normalizes below-zero reference times.
func TestNextWindow_NegativeNow(t *testing.T) {
	for _, now := range []int64{-1, -95, -96, -1000} {
		for _, r := range []resonance.Class{0, 1, 48, 95} {
			got := harmonic.NextWindow(now, r)
			if got < now {
				t.Fatalf("NextWindow(%d,%d) = %d < now", now, r, got)
			}
			if m := (got + int64(r)) % harmonic.Modulus; m != 0 {
				t.Fatalf("NextWindow(%d,%d) = %d; misaligned (mod = %d)", now, r, got, m)
			}
		}
	}
}

// TestNextWindowAfter schedules against wall-clock time.
func TestNextWindowAfter(t *testing.T) {
	base := time.Unix(1_700_000_000, 0).UTC()
	for _, r := range []resonance.Class{0, 7, 95} {
		at := harmonic.NextWindowAfter(base, r)
		if at.Before(base) {
			t.Fatalf("NextWindowAfter(%v,%d) = %v before base", base, r, at)
		}
		if (at.Unix()+int64(r))%harmonic.Modulus != 0 {
			t.Fatalf("NextWindowAfter(%v,%d) misaligned", base, r)
		}
	}

	// Sub-second reference times must round up, never back.
	frac := time.Unix(1_700_000_000, 500_000_000)
	at := harmonic.NextWindowAfter(frac, 0)
	if at.Before(frac) {
		t.Fatalf("NextWindowAfter rounded backwards: %v < %v", at, frac)
	}
}

// TestHarmonizes_MatchesResonance keeps the re-export in lockstep.
func TestHarmonizes_MatchesResonance(t *testing.T) {
	for r1 := resonance.Class(0); r1 < resonance.NumClasses; r1 += 5 {
		for r2 := resonance.Class(0); r2 < resonance.NumClasses; r2 += 7 {
			if harmonic.Harmonizes(r1, r2) != resonance.Harmonizes(r1, r2) {
				t.Fatalf("Harmonizes(%d,%d) diverges from resonance", r1, r2)
			}
		}
	}
}
