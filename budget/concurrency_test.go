// Package budget_test verifies ledger safety under concurrent allocation
// and release storms.
package budget_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/selivant/harmonia/budget"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// TestConcurrentReleases fires paired releases whose total is a multiple
// of 96, so the final balance must equal the starting one.
func TestConcurrentReleases(t *testing.T) {
	l, err := budget.NewLedger(17)
	require.NoError(t, err)

	const pairs = 200 // each pair releases 1 + 95 ≡ 0 (mod 96)
	var wg sync.WaitGroup
	wg.Add(2 * pairs)
	for i := 0; i < pairs; i++ {
		go func() {
			defer wg.Done()
			l.Release(1)
		}()
		go func() {
			defer wg.Done()
			l.Release(95)
		}()
	}
	wg.Wait()

	require.Equal(t, uint8(17), l.Balance(), "paired releases must cancel mod 96")
}

// TestConcurrentAllocateRelease runs matched allocate/release pairs; every
// successful allocation is released again, so the balance must return to
// its start and never go negative (allocation from an insufficient balance
// simply fails).
func TestConcurrentAllocateRelease(t *testing.T) {
	l, err := budget.NewLedger(95)
	require.NoError(t, err)

	const workers = 100
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(amount uint8) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if l.Allocate(amount) {
					l.Release(amount)
				}
			}
		}(uint8(i%5 + 1))
	}
	wg.Wait()

	require.Equal(t, uint8(95), l.Balance(), "matched pairs must restore the balance")
}

// TestIndependentLedgers confirms ledgers share no state.
func TestIndependentLedgers(t *testing.T) {
	a, err := budget.NewLedger(10)
	require.NoError(t, err)
	b, err := budget.NewLedger(20)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			a.Release(1)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			b.Release(2)
		}
	}()
	wg.Wait()

	require.Equal(t, uint8((10+1000)%96), a.Balance())
	require.Equal(t, uint8((20+2000)%96), b.Balance())
}
