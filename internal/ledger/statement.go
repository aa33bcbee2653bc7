package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Filter selects ledger entries by kind and by calendar day. Since and
// Until are inclusive whole days in their own location; zero leaves that
// side open. An empty Kind matches both kinds.
type Filter struct {
	Kind  Kind
	Since time.Time
	Until time.Time
}

func (f Filter) Match(tx Transaction) bool {
	if f.Kind != "" && tx.Kind != f.Kind {
		return false
	}
	if !f.Since.IsZero() && tx.Timestamp.Before(startOfDay(f.Since)) {
		return false
	}
	if !f.Until.IsZero() && tx.Timestamp.After(endOfDay(f.Until)) {
		return false
	}
	return true
}

// FilterTransactions keeps the entries matching f, preserving order.
func FilterTransactions(txs []Transaction, f Filter) []Transaction {
	out := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if f.Match(tx) {
			out = append(out, tx)
		}
	}
	return out
}

type Summary struct {
	Inflow      decimal.Decimal
	Outflow     decimal.Decimal
	Net         decimal.Decimal
	Deposits    int
	Withdrawals int
}

func Summarize(txs []Transaction) Summary {
	var s Summary
	for _, tx := range txs {
		switch tx.Kind {
		case KindDeposit:
			s.Inflow = s.Inflow.Add(tx.Amount)
			s.Deposits++
		case KindWithdrawal:
			s.Outflow = s.Outflow.Add(tx.Amount)
			s.Withdrawals++
		}
	}
	s.Net = s.Inflow.Sub(s.Outflow)
	return s
}

// Reconcile replays the ledger from the opening balance and checks every
// balanceAfter and the final balance against it.
func Reconcile(d AccountData) error {
	running := d.InitialBalance
	for i := len(d.Transactions) - 1; i >= 0; i-- {
		tx := d.Transactions[i]
		if !tx.Amount.IsPositive() {
			return fmt.Errorf("%w: account %s entry %s has non-positive amount %s", ErrLedgerMismatch, d.ID, tx.ID, tx.Amount)
		}
		running = running.Add(tx.Signed())
		if running.IsNegative() {
			return fmt.Errorf("%w: account %s went negative at entry %s", ErrLedgerMismatch, d.ID, tx.ID)
		}
		if !running.Equal(tx.BalanceAfter) {
			return fmt.Errorf("%w: account %s entry %s records %s, replay gives %s", ErrLedgerMismatch, d.ID, tx.ID, tx.BalanceAfter, running)
		}
	}
	if !running.Equal(d.Balance) {
		return fmt.Errorf("%w: account %s balance %s, replay gives %s", ErrLedgerMismatch, d.ID, d.Balance, running)
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 999999999, t.Location())
}
