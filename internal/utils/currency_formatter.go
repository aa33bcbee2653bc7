package utils

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/Pankaj-Bori/mybank-management-system/internal/constants"
)

// FormatAmount renders a decimal with two places and thousands grouping,
// e.g. 1000500 -> "1,000,500.00". Amounts of any size are grouped exactly.
func FormatAmount(d decimal.Decimal) string {
	d = d.Round(constants.AmountPlaces)

	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	d = d.Abs()

	fixed := d.StringFixed(constants.AmountPlaces)
	frac := ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		frac = fixed[i:]
	}

	return sign + humanize.BigComma(d.BigInt()) + frac
}

// FormatMoney prefixes the formatted amount with the currency code.
func FormatMoney(d decimal.Decimal, currency string) string {
	if currency == "" {
		return FormatAmount(d)
	}
	return fmt.Sprintf("%s %s", currency, FormatAmount(d))
}

// FormatSigned renders an amount with an explicit + or - sign.
func FormatSigned(d decimal.Decimal) string {
	if d.IsNegative() {
		return FormatAmount(d)
	}
	return "+" + FormatAmount(d)
}

// ParseAmount parses user input such as "150", "150.5" or "1,250.00".
// Scientific notation ("1e5") is rejected, and more than two decimal
// places is rejected rather than rounded.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	s := strings.ReplaceAll(strings.TrimSpace(amountStr), ",", "")
	if s == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}

	if strings.ContainsAny(s, "eE") {
		return decimal.Zero, fmt.Errorf("invalid amount: %s (use plain digits)", amountStr)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount: %s", amountStr)
	}
	if !d.Equal(d.Truncate(constants.AmountPlaces)) {
		return decimal.Zero, fmt.Errorf("invalid amount: %s (at most %d decimal places)", amountStr, constants.AmountPlaces)
	}
	return d, nil
}
