// Package domain implements the memory-domain lifecycle: exclusive
// ownership of an externally supplied byte range, gated by the mod-96
// conservation law and funded by a per-domain budget ledger.
//
// 🚀 What is a memory domain?
//
//	A domain is bookkeeping over a fixed-capacity byte region that someone
//	else allocates and frees.  Its lifecycle is a one-way street:
//
//	  Created ──Attach──▶ Attached ──Commit──▶ Committed
//	     │                   │  ▲                  │
//	     │                   └──┘ (re-attach OK)   │
//	     └────────────── Destroy (any state) ──────┘
//
//	Commit is one-shot and only legal from Attached; Destroy is terminal
//	and idempotent.  The domain never copies and never frees the attached
//	buffer — the caller retains that responsibility for its lifetime.
//
// ✨ Key features:
//   - Linearizable transitions – a single RWMutex orders Attach, Commit,
//     Verify and Destroy on one domain; different domains never contend
//   - Conservation gate – Verify reports whether the bound region sums
//     to zero mod 96 (false, not an error, when nothing is attached)
//   - Budget composition – Allocate/Release delegate to a lock-free
//     mod-96 ledger owned by the domain
//   - Optional zap logging of lifecycle transitions (nop by default)
//
// Errors:
//
//	ErrBudgetClass      - budget class above 95 at creation.
//	ErrZeroCapacity     - capacity of zero at creation.
//	ErrNilBuffer        - Attach with a nil or empty buffer.
//	ErrNotAttached      - Commit before any successful Attach.
//	ErrAlreadyCommitted - second Commit, or Attach after Commit.
//	ErrDestroyed        - Attach or Commit on a destroyed domain.
//
// ⚙️ Usage:
//
//	d, err := domain.New(1024, 64)
//	if err != nil { ... }
//	if err := d.Attach(buf); err != nil { ... }
//	if !d.Verify() {
//	    // region breaks the conservation law; repair before committing
//	}
//	if err := d.Commit(); err != nil { ... }
//	d.Destroy() // safe to call again
package domain
