package views

import (
	"github.com/pterm/pterm"

	"github.com/Pankaj-Bori/mybank-management-system/internal/constants"
	"github.com/Pankaj-Bori/mybank-management-system/internal/ledger"
	"github.com/Pankaj-Bori/mybank-management-system/internal/ui"
	"github.com/Pankaj-Bori/mybank-management-system/internal/utils"
)

func RenderAccountSuccess(acc ledger.AccountData, currency string) error {
	ui.Separator()

	tableData := pterm.TableData{
		{pterm.Blue("Account ID"), acc.ID},
		{pterm.Blue("Owner"), acc.OwnerName},
		{pterm.Blue("Type"), string(acc.Type)},
		{pterm.Blue("Opening Balance"), utils.FormatMoney(acc.InitialBalance, currency)},
		{pterm.Blue("Opened"), acc.CreatedAt.Format(constants.DateFormat)},
	}

	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Success.Print("Account created successfully!\n")

	return nil
}
