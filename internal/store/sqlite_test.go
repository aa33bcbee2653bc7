package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pankaj-Bori/mybank-management-system/internal/ledger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "nested", "statements.db"), os.DirFS("../.."))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seededStatement(t *testing.T) Statement {
	t.Helper()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tick := 0
	reg, err := ledger.NewSeededRegistry(ledger.WithClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}))
	require.NoError(t, err)

	demo, _ := reg.GetAccount(ledger.DemoAccountID)
	require.NoError(t, demo.Deposit(decimal.NewFromInt(250), "Salary"))
	require.NoError(t, reg.Transfer(ledger.DemoAccountID, ledger.ReserveAccountID, decimal.RequireFromString("100.50"), "Rent"))

	return Statement{
		Label:     "test",
		Currency:  "USD",
		CreatedAt: base.Add(time.Hour),
		Accounts:  reg.Snapshots(),
	}
}

func TestStore_SaveStatement(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	st := seededStatement(t)

	id, err := s.SaveStatement(ctx, st)
	require.NoError(t, err)
	assert.Positive(t, id)

	exports, err := s.ListExports(ctx)
	require.NoError(t, err)
	require.Len(t, exports, 1)
	assert.Equal(t, id, exports[0].ID)
	assert.Equal(t, "test", exports[0].Label)
	assert.Equal(t, 2, exports[0].Accounts)
	assert.True(t, st.CreatedAt.Equal(exports[0].CreatedAt))

	accounts, err := s.ExportedAccounts(ctx, id)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, ledger.DemoAccountID, accounts[0].AccountID)
	assert.True(t, accounts[0].Balance.Equal(decimal.RequireFromString("5149.50")))
	assert.True(t, accounts[0].InitialBalance.Equal(decimal.NewFromInt(5000)))
	assert.Equal(t, string(ledger.Savings), accounts[0].AccountType)

	txs, err := s.ExportedTransactions(ctx, id, ledger.DemoAccountID)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, 1, txs[0].Seq)
	assert.Equal(t, "Salary", txs[0].Description)
	assert.Equal(t, string(ledger.KindDeposit), txs[0].Kind)
	assert.Equal(t, "Transfer to Central Reserve: Rent", txs[1].Description)
	assert.True(t, txs[1].BalanceAfter.Equal(decimal.RequireFromString("5149.50")))

	reserve, err := s.ExportedTransactions(ctx, id, ledger.ReserveAccountID)
	require.NoError(t, err)
	require.Len(t, reserve, 1)
	assert.Equal(t, "Transfer from Demo User", reserve[0].Description)
}

func TestStore_PINNeverWritten(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	_, err := s.SaveStatement(ctx, seededStatement(t))
	require.NoError(t, err)

	for _, table := range []string{"exports", "accounts", "transactions"} {
		rows, err := s.db.QueryxContext(ctx, "SELECT * FROM "+table)
		require.NoError(t, err)
		for rows.Next() {
			row := map[string]any{}
			require.NoError(t, rows.MapScan(row))
			for col, v := range row {
				assert.NotContains(t, col, "pin")
				var text string
				switch val := v.(type) {
				case string:
					text = val
				case []byte:
					text = string(val)
				}
				assert.NotEqual(t, "mybank@123", text)
				assert.NotEqual(t, "admin", text)
			}
		}
		require.NoError(t, rows.Err())
		require.NoError(t, rows.Close())
	}
}

func TestStore_EmptyStatement(t *testing.T) {
	s := newTestStore(t)
	_, err := s.SaveStatement(context.Background(), Statement{Label: "empty"})
	assert.ErrorIs(t, err, ErrEmptyStatement)
}

func TestStore_UnknownExport(t *testing.T) {
	s := newTestStore(t)
	_, err := s.ExportedAccounts(context.Background(), 42)
	assert.ErrorIs(t, err, ErrExportNotFound)
}

func TestStore_ReopenKeepsExports(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "statements.db")

	s, err := NewStore(path, os.DirFS("../.."))
	require.NoError(t, err)
	_, err = s.SaveStatement(ctx, seededStatement(t))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = NewStore(path, os.DirFS("../.."))
	require.NoError(t, err)
	defer s.Close()
	_, err = s.SaveStatement(ctx, seededStatement(t))
	require.NoError(t, err)

	exports, err := s.ListExports(ctx)
	require.NoError(t, err)
	assert.Len(t, exports, 2)
}
