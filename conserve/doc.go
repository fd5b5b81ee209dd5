// Package conserve implements the mod-96 conservation law that every
// harmonia memory region must obey.
//
// 🚀 What is the conservation law?
//
//	A byte region is conserved when the sum of its byte values, taken
//	modulo 96, equals zero.  Conservation is the single invariant shared
//	by the domain lifecycle gate and the resonance clustering pipeline:
//	  • Domains refuse to verify regions that break it
//	  • Bulk copy/fill collaborators must preserve it end to end
//	  • Deltas between snapshots quantify exactly how far a mutation drifted
//
// ✨ Key operations:
//   - Sum(region)            — fold a region into its mod-96 value
//   - IsConserved(region)    — Sum(region) == 0
//   - Delta(before, after)   — normalized drift in [0,96), never negative
//
// All three are pure, allocation-free, O(len) single passes. An empty
// region sums to zero and is therefore trivially conserved.
//
// ⚙️ Usage:
//
//	import "github.com/selivant/harmonia/conserve"
//
//	if !conserve.IsConserved(buf) {
//	    drift := conserve.Delta(snapshot, buf)
//	    // repair or reject: drift tells how many units to release
//	}
//
// See example_test.go for runnable examples.
package conserve
