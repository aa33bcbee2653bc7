package ledger

import (
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

const (
	defaultDepositDescription    = "Deposit"
	defaultWithdrawalDescription = "Withdrawal"
)

// Account owns one account's balance and its append-only ledger.
// Identity fields are fixed at creation and read without locking.
type Account struct {
	id             string
	ownerName      string
	pin            string
	accountType    AccountType
	createdAt      time.Time
	initialBalance decimal.Decimal

	mu      sync.Mutex
	balance decimal.Decimal
	txs     []Transaction // oldest first

	newID  IDGenerator
	now    Clock
	logger *slog.Logger
}

func (a *Account) ID() string           { return a.id }
func (a *Account) OwnerName() string    { return a.ownerName }
func (a *Account) Type() AccountType    { return a.accountType }
func (a *Account) CreatedAt() time.Time { return a.createdAt }

// CheckPIN compares the credential in plain text.
func (a *Account) CheckPIN(pin string) bool {
	return a.pin == pin
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Deposit adds a positive amount and records a DEPOSIT entry. An empty
// description is recorded as "Deposit".
func (a *Account) Deposit(amount decimal.Decimal, description string) error {
	if !amount.IsPositive() {
		a.rejected("deposit", amount, ErrInvalidAmount)
		return ErrInvalidAmount
	}
	if description == "" {
		description = defaultDepositDescription
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.credit(amount, description)
	return nil
}

// Withdraw removes a positive amount not exceeding the balance and records
// a WITHDRAWAL entry. An empty description is recorded as "Withdrawal".
func (a *Account) Withdraw(amount decimal.Decimal, description string) error {
	if !amount.IsPositive() {
		a.rejected("withdrawal", amount, ErrInvalidAmount)
		return ErrInvalidAmount
	}
	if description == "" {
		description = defaultWithdrawalDescription
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.debit(amount, description); err != nil {
		a.rejected("withdrawal", amount, err)
		return err
	}
	return nil
}

// Snapshot returns a copy of the account with transactions newest first.
func (a *Account) Snapshot() AccountData {
	a.mu.Lock()
	defer a.mu.Unlock()

	txs := make([]Transaction, len(a.txs))
	for i, tx := range a.txs {
		txs[len(a.txs)-1-i] = tx
	}

	return AccountData{
		ID:             a.id,
		OwnerName:      a.ownerName,
		Balance:        a.balance,
		InitialBalance: a.initialBalance,
		PIN:            a.pin,
		Type:           a.accountType,
		Transactions:   txs,
		CreatedAt:      a.createdAt,
	}
}

// receiveTransfer credits a transfer leg. The amount has already been
// validated and the caller holds a.mu.
func (a *Account) receiveTransfer(amount decimal.Decimal, counterpartyName string) {
	a.credit(amount, "Transfer from "+counterpartyName)
}

// credit and debit require a.mu to be held.
func (a *Account) credit(amount decimal.Decimal, description string) {
	a.balance = a.balance.Add(amount)
	a.record(KindDeposit, amount, description)
}

func (a *Account) debit(amount decimal.Decimal, description string) error {
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	a.record(KindWithdrawal, amount, description)
	return nil
}

func (a *Account) record(kind Kind, amount decimal.Decimal, description string) {
	tx := Transaction{
		ID:           a.newID(),
		Kind:         kind,
		Amount:       amount,
		Description:  description,
		Timestamp:    a.now(),
		BalanceAfter: a.balance,
	}
	a.txs = append(a.txs, tx)

	a.logger.Debug("ledger entry recorded",
		"account", a.id,
		"tx", tx.ID,
		"kind", string(kind),
		"amount", amount.String(),
		"balance", a.balance.String(),
	)
}

func (a *Account) rejected(op string, amount decimal.Decimal, err error) {
	a.logger.Debug(op+" rejected", "account", a.id, "amount", amount.String(), "reason", err)
}
