package ledger

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IDGenerator produces transaction identifiers.
type IDGenerator func() string

// Clock stamps accounts and transactions.
type Clock func() time.Time

// NewUUID is the default IDGenerator: a random 128-bit token.
func NewUUID() string {
	return uuid.NewString()
}

type Option func(*Registry)

func WithClock(c Clock) Option {
	return func(r *Registry) { r.now = c }
}

func WithIDGenerator(g IDGenerator) Option {
	return func(r *Registry) { r.newID = g }
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// Registry holds every account keyed by identifier and runs the transfer
// protocol between two of them.
type Registry struct {
	mu       sync.RWMutex
	accounts map[string]*Account

	newID  IDGenerator
	now    Clock
	logger *slog.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		accounts: make(map[string]*Account),
		newID:    NewUUID,
		now:      time.Now,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewSeededRegistry returns a registry holding the demo and reserve accounts.
func NewSeededRegistry(opts ...Option) (*Registry, error) {
	r := NewRegistry(opts...)
	if err := r.Seed(); err != nil {
		return nil, err
	}
	return r, nil
}

// CreateAccount opens an account with no transactions. An existing id is
// rejected with ErrAccountExists and the existing account is left as is.
func (r *Registry) CreateAccount(id, ownerName string, initialBalance decimal.Decimal, pin string, accountType AccountType) (*Account, error) {
	if accountType != Savings && accountType != Checking {
		return nil, fmt.Errorf("%w '%s'", ErrInvalidAccountType, accountType)
	}
	if initialBalance.IsNegative() {
		return nil, ErrNegativeOpeningBalance
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[id]; exists {
		r.logger.Debug("account creation rejected", "account", id, "reason", ErrAccountExists)
		return nil, fmt.Errorf("%w: %s", ErrAccountExists, id)
	}

	acc := &Account{
		id:             id,
		ownerName:      ownerName,
		pin:            pin,
		accountType:    accountType,
		createdAt:      r.now(),
		initialBalance: initialBalance,
		balance:        initialBalance,
		newID:          r.newID,
		now:            r.now,
		logger:         r.logger,
	}
	r.accounts[id] = acc

	r.logger.Debug("account created", "account", id, "type", string(accountType), "balance", initialBalance.String())
	return acc, nil
}

// GetAccount looks an account up by identifier.
func (r *Registry) GetAccount(id string) (*Account, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	acc, ok := r.accounts[id]
	return acc, ok
}

// ListAccountIDs returns every identifier once, sorted.
func (r *Registry) ListAccountIDs() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.accounts))
	for id := range r.accounts {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	sort.Strings(ids)
	return ids
}

// Snapshots returns a copy of every account, ordered by identifier.
func (r *Registry) Snapshots() []AccountData {
	ids := r.ListAccountIDs()
	out := make([]AccountData, 0, len(ids))
	for _, id := range ids {
		if acc, ok := r.GetAccount(id); ok {
			out = append(out, acc.Snapshot())
		}
	}
	return out
}

// Transfer moves amount from one account to another. Every check runs
// before either account is touched, and both legs are applied while the
// pair is locked, so no caller can observe the sender debited without the
// receiver credited.
func (r *Registry) Transfer(fromID, toID string, amount decimal.Decimal, description string) error {
	if fromID == toID {
		return ErrSameAccount
	}

	sender, ok := r.GetAccount(fromID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, fromID)
	}
	receiver, ok := r.GetAccount(toID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, toID)
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	unlock := lockPair(sender, receiver)
	defer unlock()

	if sender.balance.LessThan(amount) {
		r.logger.Debug("transfer rejected", "from", fromID, "to", toID, "amount", amount.String(), "reason", ErrInsufficientFunds)
		return ErrInsufficientFunds
	}

	memo := fmt.Sprintf("Transfer to %s: %s", receiver.ownerName, description)
	if err := sender.debit(amount, memo); err != nil {
		return err
	}
	receiver.receiveTransfer(amount, sender.ownerName)

	r.logger.Info("transfer committed", "from", fromID, "to", toID, "amount", amount.String())
	return nil
}

// lockPair locks two distinct accounts in identifier order.
func lockPair(a, b *Account) func() {
	first, second := a, b
	if second.id < first.id {
		first, second = second, first
	}
	first.mu.Lock()
	second.mu.Lock()
	return func() {
		second.mu.Unlock()
		first.mu.Unlock()
	}
}
