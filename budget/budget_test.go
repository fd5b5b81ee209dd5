package budget_test

import (
	"errors"
	"testing"

	"github.com/selivant/harmonia/budget"
)

// TestNewLedger_ClassRange accepts [0,95] and rejects everything above.
func TestNewLedger_ClassRange(t *testing.T) {
	for _, class := range []uint8{0, 1, 95} {
		l, err := budget.NewLedger(class)
		if err != nil {
			t.Errorf("NewLedger(%d) error = %v; want nil", class, err)

			continue
		}
		if l.Balance() != class {
			t.Errorf("Balance = %d; want %d", l.Balance(), class)
		}
	}
	for _, class := range []uint8{96, 100, 255} {
		if _, err := budget.NewLedger(class); !errors.Is(err, budget.ErrClassRange) {
			t.Errorf("NewLedger(%d) error = %v; want ErrClassRange", class, err)
		}
	}
}

// TestAllocate covers success, exact drain, and over-allocation.
func TestAllocate(t *testing.T) {
	cases := []struct {
		name    string
		start   uint8
		amount  uint8
		ok      bool
		balance uint8
	}{
		{"Partial", 50, 20, true, 30},
		{"ExactDrain", 50, 50, true, 0},
		{"Zero", 50, 0, true, 50},
		{"Exceeds", 50, 51, false, 50},
		{"FromEmpty", 0, 1, false, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := budget.NewLedger(tc.start)
			if err != nil {
				t.Fatalf("NewLedger error: %v", err)
			}
			if ok := l.Allocate(tc.amount); ok != tc.ok {
				t.Errorf("Allocate(%d) = %v; want %v", tc.amount, ok, tc.ok)
			}
			if l.Balance() != tc.balance {
				t.Errorf("Balance = %d; want %d", l.Balance(), tc.balance)
			}
		})
	}
}

// TestRelease_Wraps checks that release wraps mod 96 and can lift the
// balance past the original allocation.
func TestRelease_Wraps(t *testing.T) {
	cases := []struct {
		name    string
		start   uint8
		amount  uint8
		balance uint8
	}{
		{"Plain", 10, 5, 15},
		{"ToMax", 0, 95, 95},
		{"WrapExact", 95, 1, 0},
		{"WrapPast", 90, 20, 14},
		{"AmountReduced", 10, 96, 10}, // 96 ≡ 0
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := budget.NewLedger(tc.start)
			if err != nil {
				t.Fatalf("NewLedger error: %v", err)
			}
			l.Release(tc.amount)
			if l.Balance() != tc.balance {
				t.Errorf("Balance = %d; want %d", l.Balance(), tc.balance)
			}
		})
	}
}

// TestAllocateRelease_RoundTrip restores the original balance mod 96.
func TestAllocateRelease_RoundTrip(t *testing.T) {
	for start := uint8(0); start < 96; start += 7 {
		l, err := budget.NewLedger(start)
		if err != nil {
			t.Fatalf("NewLedger error: %v", err)
		}
		amount := start / 2
		if !l.Allocate(amount) {
			t.Fatalf("Allocate(%d) failed from balance %d", amount, start)
		}
		l.Release(amount)
		if l.Balance() != start {
			t.Errorf("round-trip balance = %d; want %d", l.Balance(), start)
		}
	}
}
