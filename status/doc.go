// Package status classifies harmonia errors into a small kind taxonomy
// and tracks the most recent failure per call context.
//
// 🚀 Why a kind taxonomy?
//
//	Collaborators outside Go (or far from the failing call) want a stable
//	enumeration, not a package-specific sentinel: did the region break
//	conservation, did a witness mismatch, was a lifecycle rule violated?
//	Of maps every sentinel this module returns onto one of six kinds:
//
//	  Ok, ConservationViolation, WitnessMismatch,
//	  BudgetExceeded, MemoryFailure, InvalidState
//
//	Gates that report bool rather than error (domain.Verify,
//	witness.Verify) have matching sentinels here — ErrConservationViolation
//	and ErrWitnessMismatch — for callers that need to surface the failure.
//
// ✨ Last-error tracking:
//
//	Tracker is a caller-owned recorder, deliberately not a process-wide
//	global: share one per call context (request, worker, FFI boundary) and
//	it is safe under concurrency, with no cross-context bleed.
//
// ⚙️ Usage:
//
//	var tr status.Tracker
//	if !dom.Verify() {
//	    return tr.Record(status.ErrConservationViolation)
//	}
//	if err := dom.Commit(); err != nil {
//	    return tr.Record(err)
//	}
//	// elsewhere:
//	fmt.Println(tr.Last()) // e.g. "invalid state"
package status
