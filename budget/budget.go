package budget

import (
	"errors"
	"sync/atomic"
)

// Modulus is the wrap base for all balance arithmetic.
const Modulus = 96

// ErrClassRange indicates a budget class outside [0,95].
var ErrClassRange = errors.New("budget: class must be in [0,95]")

// Ledger is a lock-free mod-96 token balance. The zero value is a valid
// ledger with balance 0; NewLedger validates the initial class.
//
// All methods are safe for concurrent use; updates go through
// compare-and-swap retry loops so no increment or decrement is ever lost.
type Ledger struct {
	balance atomic.Uint32
}

// NewLedger creates a ledger holding the initial budget class.
// Returns ErrClassRange if class is not in [0,95].
func NewLedger(class uint8) (*Ledger, error) {
	if class >= Modulus {
		return nil, ErrClassRange
	}

	l := &Ledger{}
	l.balance.Store(uint32(class))

	return l, nil
}

// Balance returns the current balance, always in [0,95].
func (l *Ledger) Balance() uint8 {
	return uint8(l.balance.Load())
}

// Allocate spends amount from the balance. It reports false — leaving the
// balance untouched — when amount exceeds the balance observed at commit
// time. Amounts are reduced mod 96 on entry.
func (l *Ledger) Allocate(amount uint8) bool {
	amt := uint32(amount) % Modulus
	for {
		cur := l.balance.Load()
		if amt > cur {
			return false
		}
		if l.balance.CompareAndSwap(cur, (cur-amt)%Modulus) {
			return true
		}
	}
}

// Release returns amount to the balance, wrapping mod 96. It always
// succeeds: releasing past 95 wraps around, by the conserved-currency
// contract. Amounts are reduced mod 96 on entry.
func (l *Ledger) Release(amount uint8) {
	amt := uint32(amount) % Modulus
	for {
		cur := l.balance.Load()
		if l.balance.CompareAndSwap(cur, (cur+amt)%Modulus) {
			return
		}
	}
}
