package views

import (
	"github.com/pterm/pterm"

	"github.com/Pankaj-Bori/mybank-management-system/internal/constants"
	"github.com/Pankaj-Bori/mybank-management-system/internal/ledger"
	"github.com/Pankaj-Bori/mybank-management-system/internal/ui"
	"github.com/Pankaj-Bori/mybank-management-system/internal/utils"
)

type TransactionListView struct {
	Currency string
}

func NewTransactionListView(currency string) *TransactionListView {
	return &TransactionListView{Currency: currency}
}

// Render prints up to limit transactions in the order given. A limit of
// zero or less prints all of them.
func (v *TransactionListView) Render(title string, txs []ledger.Transaction, limit int) error {
	if len(txs) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	shown := txs
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	pterm.DefaultSection.Println(title)
	if err := pterm.DefaultTable.WithHasHeader().WithData(v.rows(shown)).Render(); err != nil {
		return err
	}
	if len(shown) < len(txs) {
		pterm.Info.Printf("Showing %d of %d transactions\n", len(shown), len(txs))
	} else {
		pterm.Info.Printf("Total: %d transactions\n", len(txs))
	}
	return nil
}

func (v *TransactionListView) rows(txs []ledger.Transaction) pterm.TableData {
	tableData := pterm.TableData{
		{"Date", "Time", "Type", "Description", "Amount", "Balance"},
	}

	for _, tx := range txs {
		amount := utils.FormatSigned(tx.Signed())
		kind := string(tx.Kind)
		switch tx.Kind {
		case ledger.KindDeposit:
			kind, amount = ui.Inflow(kind), ui.Inflow(amount)
		case ledger.KindWithdrawal:
			kind, amount = ui.Outflow(kind), ui.Outflow(amount)
		}

		tableData = append(tableData, []string{
			tx.Timestamp.Format(constants.DateFormat),
			tx.Timestamp.Format(constants.TimeFormat),
			kind,
			tx.Description,
			amount,
			utils.FormatMoney(tx.BalanceAfter, v.Currency),
		})
	}
	return tableData
}
