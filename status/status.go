package status

import (
	"errors"
	"sync"

	"github.com/selivant/harmonia/budget"
	"github.com/selivant/harmonia/cluster"
	"github.com/selivant/harmonia/domain"
	"github.com/selivant/harmonia/resonance"
	"github.com/selivant/harmonia/witness"
)

// Sentinels for gates that report bool rather than error; callers record
// these when a verification gate fails.
var (
	// ErrConservationViolation indicates a region whose byte sum is not
	// congruent to zero mod 96 where the law is required to hold.
	ErrConservationViolation = errors.New("status: conservation law violated")

	// ErrWitnessMismatch indicates a witness whose digest or length no
	// longer matches the region it was taken over.
	ErrWitnessMismatch = errors.New("status: witness mismatch")
)

// Kind is the stable error classification exposed to collaborators.
type Kind uint8

const (
	// Ok: no error.
	Ok Kind = iota

	// ConservationViolation: sum mod 96 ≠ 0 where required.
	ConservationViolation

	// WitnessMismatch: digest or length mismatch on verification.
	WitnessMismatch

	// BudgetExceeded: allocation beyond balance, or a class above 95.
	BudgetExceeded

	// MemoryFailure: allocation or attachment failure, malformed input shape.
	MemoryFailure

	// InvalidState: illegal lifecycle transition or use-after-destroy.
	InvalidState

	// Unknown: a non-nil error from outside this module.
	Unknown
)

// String returns the collaborator-facing text for a kind.
func (k Kind) String() string {
	switch k {
	case Ok:
		return "ok"
	case ConservationViolation:
		return "conservation violation"
	case WitnessMismatch:
		return "witness mismatch"
	case BudgetExceeded:
		return "budget exceeded"
	case MemoryFailure:
		return "memory failure"
	case InvalidState:
		return "invalid state"
	default:
		return "unknown"
	}
}

// Of classifies an error produced by this module into its Kind. A nil
// error is Ok; errors from outside the module classify as Unknown.
func Of(err error) Kind {
	switch {
	case err == nil:
		return Ok
	case errors.Is(err, ErrConservationViolation):
		return ConservationViolation
	case errors.Is(err, ErrWitnessMismatch):
		return WitnessMismatch
	case errors.Is(err, domain.ErrBudgetClass),
		errors.Is(err, budget.ErrClassRange):
		return BudgetExceeded
	case errors.Is(err, domain.ErrZeroCapacity),
		errors.Is(err, domain.ErrNilBuffer),
		errors.Is(err, witness.ErrEmptyRegion),
		errors.Is(err, resonance.ErrBadPageSize),
		errors.Is(err, cluster.ErrEmptyInput),
		errors.Is(err, cluster.ErrPageAlign),
		errors.Is(err, cluster.ErrClassRange):
		return MemoryFailure
	case errors.Is(err, domain.ErrNotAttached),
		errors.Is(err, domain.ErrAlreadyCommitted),
		errors.Is(err, domain.ErrDestroyed),
		errors.Is(err, cluster.ErrViewDestroyed):
		return InvalidState
	default:
		return Unknown
	}
}

// Tracker records the most recent failure for one call context. The zero
// value is ready to use and reads as Ok. Safe for concurrent use, though
// a tracker is normally owned by a single context.
type Tracker struct {
	mu   sync.Mutex
	kind Kind
	err  error
}

// Record classifies err, stores it as the context's last error, and
// returns err unchanged so it threads through return statements. A nil
// err resets the tracker to Ok.
func (t *Tracker) Record(err error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.kind = Of(err)
	t.err = err

	return err
}

// Last returns the kind of the most recently recorded error (Ok if none).
func (t *Tracker) Last() Kind {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.kind
}

// Err returns the most recently recorded error, nil if none.
func (t *Tracker) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.err
}

// Reset clears the tracker back to Ok.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.kind = Ok
	t.err = nil
}
