package views

import (
	"github.com/pterm/pterm"

	"github.com/Pankaj-Bori/mybank-management-system/internal/constants"
	"github.com/Pankaj-Bori/mybank-management-system/internal/ledger"
	"github.com/Pankaj-Bori/mybank-management-system/internal/ui"
	"github.com/Pankaj-Bori/mybank-management-system/internal/utils"
)

// RenderReceipt prints the entry an operation just recorded.
func RenderReceipt(tx ledger.Transaction, currency string) error {
	ui.Separator()

	tableData := pterm.TableData{
		{pterm.Blue("Reference"), tx.ID},
		{pterm.Blue("Type"), string(tx.Kind)},
		{pterm.Blue("Amount"), utils.FormatMoney(tx.Amount, currency)},
		{pterm.Blue("Description"), tx.Description},
		{pterm.Blue("Time"), tx.Timestamp.Format(constants.DateFormat + " " + constants.TimeFormat)},
		{pterm.Blue("New Balance"), utils.FormatMoney(tx.BalanceAfter, currency)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
