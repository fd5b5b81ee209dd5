package domain

import (
	"sync"

	"go.uber.org/zap"

	"github.com/selivant/harmonia/budget"
	"github.com/selivant/harmonia/conserve"
)

// Domain owns the lifecycle bookkeeping and budget for one externally
// attached byte region. It never owns the region itself: Attach binds a
// caller-managed buffer and Destroy releases only the bookkeeping.
//
// mu linearizes lifecycle transitions and region access on this domain;
// the budget ledger is lock-free and independent of mu, so Allocate and
// Release never contend with Attach or Commit.
type Domain struct {
	mu     sync.RWMutex
	state  State
	region []byte // caller-owned; nil until first Attach

	capacity int
	ledger   *budget.Ledger
	log      *zap.Logger
}

// New creates a domain in state Created with the given fixed capacity and
// initial budget class. Returns ErrBudgetClass if budgetClass > 95 and
// ErrZeroCapacity if capacity == 0.
func New(capacity int, budgetClass uint8, opts ...Option) (*Domain, error) {
	if budgetClass >= budget.Modulus {
		return nil, ErrBudgetClass
	}
	if capacity <= 0 {
		return nil, ErrZeroCapacity
	}

	ledger, err := budget.NewLedger(budgetClass)
	if err != nil {
		return nil, err
	}

	d := &Domain{
		state:    Created,
		capacity: capacity,
		ledger:   ledger,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.log.Debug("domain created",
		zap.Int("capacity", capacity),
		zap.Uint8("budget_class", budgetClass))

	return d, nil
}

// Capacity returns the fixed capacity set at creation.
func (d *Domain) Capacity() int {
	return d.capacity
}

// State returns the current lifecycle state.
func (d *Domain) State() State {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.state
}

// Attach binds buf to the domain and transitions to Attached. The domain
// holds buf by reference for the duration of its lifecycle; the caller
// keeps ownership of the memory. Re-attachment replaces the prior binding
// and is permitted until Commit. Returns ErrNilBuffer for a nil or empty
// buffer, ErrAlreadyCommitted after Commit, and ErrDestroyed after Destroy.
func (d *Domain) Attach(buf []byte) error {
	if len(buf) == 0 {
		return ErrNilBuffer
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.state {
	case Destroyed:
		return ErrDestroyed
	case Committed:
		return ErrAlreadyCommitted
	}

	d.region = buf
	d.state = Attached
	d.log.Debug("domain attached", zap.Int("length", len(buf)))

	return nil
}

// Verify reports whether the attached region satisfies the conservation
// law (sum of bytes ≡ 0 mod 96). It returns false — not an error — when
// no region is attached or the domain is destroyed.
func (d *Domain) Verify() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.state != Attached && d.state != Committed {
		return false
	}

	return conserve.IsConserved(d.region)
}

// Commit freezes the domain's lifecycle. It is one-shot: only legal from
// Attached, and every later Commit fails. Returns ErrNotAttached from
// Created, ErrAlreadyCommitted from Committed, ErrDestroyed from Destroyed.
func (d *Domain) Commit() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.state {
	case Created:
		return ErrNotAttached
	case Committed:
		return ErrAlreadyCommitted
	case Destroyed:
		return ErrDestroyed
	}

	d.state = Committed
	d.log.Debug("domain committed", zap.Int("length", len(d.region)))

	return nil
}

// Destroy releases the domain's bookkeeping and drops the region
// reference. The attached buffer itself is untouched — the caller owns
// it. Idempotent: destroying a destroyed domain is a safe no-op.
func (d *Domain) Destroy() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == Destroyed {
		return
	}

	d.region = nil
	d.state = Destroyed
	d.log.Debug("domain destroyed")
}

// Allocate spends amount from the domain's budget. It reports false when
// amount exceeds the current balance. Safe for concurrent use and never
// blocked by lifecycle transitions.
func (d *Domain) Allocate(amount uint8) bool {
	return d.ledger.Allocate(amount)
}

// Release returns amount to the domain's budget, wrapping mod 96.
func (d *Domain) Release(amount uint8) {
	d.ledger.Release(amount)
}

// Balance returns the current budget balance in [0,95].
func (d *Domain) Balance() uint8 {
	return d.ledger.Balance()
}
