package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/Pankaj-Bori/mybank-management-system/internal/constants"
	"github.com/Pankaj-Bori/mybank-management-system/internal/ledger"
	"github.com/Pankaj-Bori/mybank-management-system/internal/utils"
)

// AccountLookup is the part of the registry the validator needs.
type AccountLookup interface {
	GetAccount(id string) (*ledger.Account, bool)
}

// AccountValidator checks console input before it reaches the ledger.
type AccountValidator struct {
	accounts AccountLookup
}

func NewAccountValidator(accounts AccountLookup) *AccountValidator {
	return &AccountValidator{accounts: accounts}
}

// ValidateAccountID validates the shape of an identifier without
// checking the registry.
func ValidateAccountID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("account ID can't be empty")
	}
	if len(id) > constants.MaxAccountIDLen {
		return fmt.Errorf("account ID too long (max %d characters)", constants.MaxAccountIDLen)
	}
	for _, r := range id {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' {
			return fmt.Errorf("account ID may only contain letters, digits and '-'")
		}
	}
	return nil
}

// ValidateNewAccountID also rejects identifiers already in use.
func (v *AccountValidator) ValidateNewAccountID(id string) error {
	if err := ValidateAccountID(id); err != nil {
		return err
	}
	if _, exists := v.accounts.GetAccount(strings.TrimSpace(id)); exists {
		return fmt.Errorf("account ID '%s' already exists", strings.TrimSpace(id))
	}
	return nil
}

// ValidateExistingAccountID requires the identifier to be registered.
func (v *AccountValidator) ValidateExistingAccountID(id string) error {
	if err := ValidateAccountID(id); err != nil {
		return err
	}
	if _, exists := v.accounts.GetAccount(strings.TrimSpace(id)); !exists {
		return fmt.Errorf("account '%s' not found", strings.TrimSpace(id))
	}
	return nil
}

func ValidateOwnerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("owner name can't be empty")
	}
	if len(name) > constants.MaxNameLen {
		return fmt.Errorf("owner name too long (max %d characters)", constants.MaxNameLen)
	}
	return nil
}

func ValidatePIN(pin string) error {
	if len(pin) < constants.MinPINLen {
		return fmt.Errorf("PIN must be at least %d characters", constants.MinPINLen)
	}
	if strings.ContainsFunc(pin, unicode.IsSpace) {
		return fmt.Errorf("PIN can't contain spaces")
	}
	return nil
}

// ValidateAmount requires a positive amount with at most two decimals.
func ValidateAmount(s string) error {
	d, err := utils.ParseAmount(s)
	if err != nil {
		return err
	}
	if !d.IsPositive() {
		return fmt.Errorf("amount must be greater than zero")
	}
	return nil
}

// ValidateOpeningBalance allows zero but not negative balances.
func ValidateOpeningBalance(s string) error {
	d, err := utils.ParseAmount(s)
	if err != nil {
		return err
	}
	if d.IsNegative() {
		return fmt.Errorf("opening balance can't be negative")
	}
	return nil
}

// ValidateOptionalDate accepts an empty string or a YYYY-MM-DD date.
func ValidateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.ParseInLocation(constants.DateFormat, strings.TrimSpace(s), time.Local); err != nil {
		return fmt.Errorf("invalid date '%s', use YYYY-MM-DD", s)
	}
	return nil
}
