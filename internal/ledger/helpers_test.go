package ledger

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func counterIDs() IDGenerator {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("TX%04d", n.Add(1))
	}
}

// stepClock advances one minute per reading.
func stepClock(start time.Time) Clock {
	var n atomic.Int64
	return func() time.Time {
		return start.Add(time.Duration(n.Add(1)-1) * time.Minute)
	}
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	return NewRegistry(
		WithIDGenerator(counterIDs()),
		WithClock(stepClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))),
	)
}

func mustCreate(t *testing.T, r *Registry, id, owner, balance string) *Account {
	t.Helper()
	acc, err := r.CreateAccount(id, owner, d(balance), "0000", Savings)
	require.NoError(t, err)
	return acc
}

func requireReconciled(t *testing.T, accounts ...*Account) {
	t.Helper()
	for _, acc := range accounts {
		snap := acc.Snapshot()
		require.NoError(t, Reconcile(snap))
		if latest, ok := snap.Latest(); ok {
			require.True(t, latest.BalanceAfter.Equal(snap.Balance), "newest balanceAfter %s != balance %s", latest.BalanceAfter, snap.Balance)
		}
	}
}
