package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/Pankaj-Bori/mybank-management-system/internal/ledger"
	"github.com/Pankaj-Bori/mybank-management-system/internal/ui"
	"github.com/Pankaj-Bori/mybank-management-system/internal/utils"
)

// RenderAnalytics prints total inflow, outflow and net movement.
func RenderAnalytics(s ledger.Summary, currency string) error {
	tableData := pterm.TableData{
		{pterm.Blue("Total Inflow"), ui.Inflow(utils.FormatMoney(s.Inflow, currency)), fmt.Sprintf("%d deposits", s.Deposits)},
		{pterm.Blue("Total Outflow"), ui.Outflow(utils.FormatMoney(s.Outflow, currency)), fmt.Sprintf("%d withdrawals", s.Withdrawals)},
		{pterm.Blue("Net"), utils.FormatSigned(s.Net), ""},
	}
	return pterm.DefaultTable.WithData(tableData).Render()
}
