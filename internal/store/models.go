package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Pankaj-Bori/mybank-management-system/internal/ledger"
)

// Statement is one export request: a labelled set of account snapshots.
type Statement struct {
	Label     string
	Currency  string
	CreatedAt time.Time
	Accounts  []ledger.AccountData
}

type Export struct {
	ID        int64     `db:"id"`
	Label     string    `db:"label"`
	Currency  string    `db:"currency"`
	CreatedAt time.Time `db:"created_at"`
	Accounts  int       `db:"accounts"`
}

type ExportedAccount struct {
	ExportID       int64           `db:"export_id"`
	AccountID      string          `db:"account_id"`
	OwnerName      string          `db:"owner_name"`
	AccountType    string          `db:"account_type"`
	InitialBalance decimal.Decimal `db:"initial_balance"`
	Balance        decimal.Decimal `db:"balance"`
	CreatedAt      time.Time       `db:"created_at"`
}

// ExportedTransaction rows are numbered oldest first within an account.
type ExportedTransaction struct {
	ExportID     int64           `db:"export_id"`
	AccountID    string          `db:"account_id"`
	Seq          int             `db:"seq"`
	TxID         string          `db:"tx_id"`
	Kind         string          `db:"kind"`
	Amount       decimal.Decimal `db:"amount"`
	Description  string          `db:"description"`
	BalanceAfter decimal.Decimal `db:"balance_after"`
	CreatedAt    time.Time       `db:"created_at"`
}
