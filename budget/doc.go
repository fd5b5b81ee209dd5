// Package budget implements per-domain resource ledgers with
// conserved-currency, mod-96 semantics.
//
// 🚀 What is a budget?
//
//	A budget is a token balance in [0,95] owned by exactly one memory
//	domain.  Allocation spends from the balance and can never exceed it;
//	release always succeeds and wraps modulo 96 — a release can lift a
//	balance past its original allocation.  That wrap is intentional:
//	budgets are nonlinear conserved tokens, not linear counters, and the
//	system-wide sum of balances is what is conserved, mod 96.
//
// ✨ Concurrency:
//
//	Allocate and Release are lock-free compare-and-swap retry loops on a
//	single atomic word.  Concurrent callers on the same ledger never lose
//	an update; ledgers of different domains share no state at all.
//
// ⚙️ Usage:
//
//	l, err := budget.NewLedger(64)
//	if err != nil {
//	    // ErrClassRange: budget classes live in [0,95]
//	}
//	if !l.Allocate(10) {
//	    // insufficient balance — no state changed
//	}
//	l.Release(42) // always succeeds, wraps mod 96
//
// Complexity: all operations are O(1) (amortized, bounded CAS retries).
package budget
