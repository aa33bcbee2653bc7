package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind is the stored kind of a ledger entry. Transfers are recorded as one
// entry of each kind, never as a kind of their own.
type Kind string

const (
	KindDeposit    Kind = "DEPOSIT"
	KindWithdrawal Kind = "WITHDRAWAL"
)

type AccountType string

const (
	Savings  AccountType = "SAVINGS"
	Checking AccountType = "CHECKING"
)

// ParseAccountType accepts the category name in any case.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(strings.ToUpper(strings.TrimSpace(s))) {
	case Savings:
		return Savings, nil
	case Checking:
		return Checking, nil
	default:
		return "", fmt.Errorf("%w '%s' (must be SAVINGS or CHECKING)", ErrInvalidAccountType, s)
	}
}

// Transaction is an immutable ledger entry.
type Transaction struct {
	ID           string
	Kind         Kind
	Amount       decimal.Decimal
	Description  string
	Timestamp    time.Time
	BalanceAfter decimal.Decimal
}

// Signed returns the amount with the sign it applies to the balance.
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind == KindWithdrawal {
		return t.Amount.Neg()
	}
	return t.Amount
}

// AccountData is a detached copy of an account. Transactions are ordered
// newest first.
type AccountData struct {
	ID             string
	OwnerName      string
	Balance        decimal.Decimal
	InitialBalance decimal.Decimal
	PIN            string
	Type           AccountType
	Transactions   []Transaction
	CreatedAt      time.Time
}

// Latest returns the newest transaction, if any.
func (d AccountData) Latest() (Transaction, bool) {
	if len(d.Transactions) == 0 {
		return Transaction{}, false
	}
	return d.Transactions[0], true
}
