package views

import (
	"strconv"

	"github.com/pterm/pterm"

	"github.com/Pankaj-Bori/mybank-management-system/internal/errhandler"
	"github.com/Pankaj-Bori/mybank-management-system/internal/script"
)

func RenderRunReport(report script.Report, currency string) error {
	pterm.DefaultSection.Printf("Script %s", report.Script)
	if err := pterm.DefaultTable.WithHasHeader().WithData(stepRows(report)).Render(); err != nil {
		return err
	}

	if failed := report.Failed(); failed > 0 {
		pterm.Warning.Printf("%d of %d steps failed\n", failed, len(report.Results))
	} else {
		pterm.Success.Printf("All %d steps applied\n", len(report.Results))
	}

	return NewAccountListView(currency).Render(report.Accounts)
}

func stepRows(report script.Report) pterm.TableData {
	tableData := pterm.TableData{{"#", "Step", "Result"}}
	for _, res := range report.Results {
		result := pterm.Green("ok")
		if !res.OK() {
			result = pterm.Red(errhandler.Capitalize(res.Err.Error()))
		}
		tableData = append(tableData, []string{strconv.Itoa(res.Index), res.Step.Summary(), result})
	}
	return tableData
}
