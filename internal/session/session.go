// Package session tracks which account is logged in to the console and
// applies the console's defaults before calling into the ledger.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Pankaj-Bori/mybank-management-system/internal/constants"
	"github.com/Pankaj-Bori/mybank-management-system/internal/ledger"
)

var (
	ErrInvalidCredentials = errors.New("invalid account ID or PIN")
	ErrNotLoggedIn        = errors.New("no account is logged in")
	ErrTargetRequired     = errors.New("target account ID required")
)

// Session is single-user: one account at a time is active.
type Session struct {
	registry *ledger.Registry
	current  *ledger.Account
	logger   *slog.Logger
}

func New(registry *ledger.Registry, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{registry: registry, logger: logger}
}

func (s *Session) Registry() *ledger.Registry {
	return s.registry
}

// Login activates the account when the PIN matches. Unknown accounts and
// wrong PINs produce the same error.
func (s *Session) Login(id, pin string) error {
	acc, ok := s.registry.GetAccount(strings.TrimSpace(id))
	if !ok || !acc.CheckPIN(pin) {
		s.logger.Warn("login failed", "account", id)
		return ErrInvalidCredentials
	}
	s.current = acc
	s.logger.Info("logged in", "account", acc.ID())
	return nil
}

// Register opens a savings account and logs in to it.
func (s *Session) Register(id, ownerName string, initialBalance decimal.Decimal, pin string) error {
	acc, err := s.registry.CreateAccount(strings.TrimSpace(id), strings.TrimSpace(ownerName), initialBalance, pin, ledger.Savings)
	if err != nil {
		return fmt.Errorf("open account: %w", err)
	}
	s.current = acc
	s.logger.Info("logged in", "account", acc.ID(), "new", true)
	return nil
}

func (s *Session) Logout() {
	if s.current != nil {
		s.logger.Info("logged out", "account", s.current.ID())
	}
	s.current = nil
}

func (s *Session) LoggedIn() bool {
	return s.current != nil
}

func (s *Session) Current() (*ledger.Account, error) {
	if s.current == nil {
		return nil, ErrNotLoggedIn
	}
	return s.current, nil
}

func (s *Session) Snapshot() (ledger.AccountData, error) {
	acc, err := s.Current()
	if err != nil {
		return ledger.AccountData{}, err
	}
	return acc.Snapshot(), nil
}

func (s *Session) Deposit(amount decimal.Decimal, description string) error {
	acc, err := s.Current()
	if err != nil {
		return err
	}
	return acc.Deposit(amount, orDefault(description, constants.ManualDepositMemo))
}

func (s *Session) Withdraw(amount decimal.Decimal, description string) error {
	acc, err := s.Current()
	if err != nil {
		return err
	}
	return acc.Withdraw(amount, orDefault(description, constants.ManualWithdrawalMemo))
}

// Transfer sends money from the logged-in account to toID.
func (s *Session) Transfer(toID string, amount decimal.Decimal, description string) error {
	acc, err := s.Current()
	if err != nil {
		return err
	}
	toID = strings.TrimSpace(toID)
	if toID == "" {
		return ErrTargetRequired
	}
	return s.registry.Transfer(acc.ID(), toID, amount, orDefault(description, constants.TransferMemo))
}

// History returns the logged-in account's entries matching f, newest first.
func (s *Session) History(f ledger.Filter) ([]ledger.Transaction, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return ledger.FilterTransactions(snap.Transactions, f), nil
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return strings.TrimSpace(s)
}
