package views

import (
	"github.com/pterm/pterm"

	"github.com/Pankaj-Bori/mybank-management-system/internal/ledger"
	"github.com/Pankaj-Bori/mybank-management-system/internal/ui"
	"github.com/Pankaj-Bori/mybank-management-system/internal/utils"
)

type DashboardItem struct {
	Account  ledger.AccountData
	Currency string
	Recent   int
}

// RenderDashboard prints the logged-in account header, its analytics and
// the most recent transactions.
func RenderDashboard(data DashboardItem) error {
	acc := data.Account

	ui.PrintL1Title("Welcome, %s", acc.OwnerName)

	header := pterm.TableData{
		{pterm.Blue("Account ID"), acc.ID},
		{pterm.Blue("Type"), string(acc.Type)},
		{pterm.Blue("Balance"), pterm.Bold.Sprint(utils.FormatMoney(acc.Balance, data.Currency))},
	}
	if err := pterm.DefaultTable.WithData(header).Render(); err != nil {
		return err
	}

	ui.PrintL2Title("Analytics")
	if err := RenderAnalytics(ledger.Summarize(acc.Transactions), data.Currency); err != nil {
		return err
	}

	return NewTransactionListView(data.Currency).Render("Recent Transactions", acc.Transactions, data.Recent)
}
