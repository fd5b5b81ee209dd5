package domain

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors for domain lifecycle operations.
var (
	// ErrBudgetClass indicates a creation budget class above 95.
	ErrBudgetClass = errors.New("domain: budget class must be in [0,95]")

	// ErrZeroCapacity indicates a creation capacity of zero.
	ErrZeroCapacity = errors.New("domain: capacity must be positive")

	// ErrNilBuffer indicates Attach received a nil or empty buffer.
	ErrNilBuffer = errors.New("domain: attach buffer must be non-empty")

	// ErrNotAttached indicates Commit was called before a successful Attach.
	ErrNotAttached = errors.New("domain: commit requires an attached region")

	// ErrAlreadyCommitted indicates a second Commit, or an Attach after Commit.
	ErrAlreadyCommitted = errors.New("domain: domain is already committed")

	// ErrDestroyed indicates an operation on a destroyed domain.
	ErrDestroyed = errors.New("domain: domain has been destroyed")
)

// State is the lifecycle discriminant of a Domain.
type State uint8

const (
	// Created: capacity and budget fixed, no region bound yet.
	Created State = iota

	// Attached: a region is bound; re-attachment is still permitted.
	Attached

	// Committed: lifecycle frozen; no further transitions except Destroy.
	Committed

	// Destroyed: terminal; all bookkeeping released.
	Destroyed
)

// String returns the lifecycle state name.
func (s State) String() string {
	switch s {
	case Created:
		return "Created"
	case Attached:
		return "Attached"
	case Committed:
		return "Committed"
	case Destroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}

// Option configures a Domain at creation.
type Option func(d *Domain)

// WithLogger wires a zap logger that records lifecycle transitions.
// Without it the domain is silent (zap.NewNop).
func WithLogger(log *zap.Logger) Option {
	return func(d *Domain) {
		if log != nil {
			d.log = log
		}
	}
}
