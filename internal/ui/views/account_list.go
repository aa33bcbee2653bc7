package views

import (
	"strconv"

	"github.com/pterm/pterm"

	"github.com/Pankaj-Bori/mybank-management-system/internal/ledger"
	"github.com/Pankaj-Bori/mybank-management-system/internal/utils"
)

type AccountListView struct {
	Currency string
}

func NewAccountListView(currency string) *AccountListView {
	return &AccountListView{Currency: currency}
}

// Render lists the accounts with a column showing whether each one's
// history replays to its balance.
func (v *AccountListView) Render(accounts []ledger.AccountData) error {
	pterm.DefaultSection.Println("Account Balances")
	if err := pterm.DefaultTable.WithHasHeader().WithRightAlignment().WithData(v.rows(accounts)).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))

	return nil
}

func (v *AccountListView) rows(accounts []ledger.AccountData) pterm.TableData {
	tableData := pterm.TableData{{"ID", "Owner", "Type", "Entries", "Balance", "Consistent"}}

	for _, acc := range accounts {
		consistent := pterm.Green("yes")
		if err := ledger.Reconcile(acc); err != nil {
			consistent = pterm.Red("no")
		}

		accType := string(acc.Type)
		if acc.Type == ledger.Checking {
			accType = pterm.Gray(accType)
		}

		tableData = append(tableData, []string{
			acc.ID,
			acc.OwnerName,
			accType,
			strconv.Itoa(len(acc.Transactions)),
			utils.FormatMoney(acc.Balance, v.Currency),
			consistent,
		})
	}
	return tableData
}
