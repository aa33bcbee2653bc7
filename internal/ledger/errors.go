package ledger

import "errors"

var (
	ErrInvalidAmount          = errors.New("amount must be greater than zero")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrAccountExists          = errors.New("account already exists")
	ErrAccountNotFound        = errors.New("account not found")
	ErrSameAccount            = errors.New("cannot transfer to the same account")
	ErrNegativeOpeningBalance = errors.New("opening balance can't be negative")
	ErrInvalidAccountType     = errors.New("invalid account type")
	ErrLedgerMismatch         = errors.New("ledger does not reconcile")
)
