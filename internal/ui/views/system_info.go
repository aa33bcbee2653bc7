package views

import (
	"strings"

	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath      string
	ExportPath      string
	ExportExists    bool // true = Found, false = Not Found
	DefaultCurrency string
	LogLevel        string
	AppDataDir      string
	SeedAccounts    []string
}

func RenderSystemInfo(data SystemInfoItem) error {
	exportStatus := pterm.Green("Found")
	if !data.ExportExists {
		exportStatus = pterm.Red("Not Found (Will be created on first export)")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Statement Export", data.ExportPath},
		{"Export Status", exportStatus},
		{"Default Currency", data.DefaultCurrency},
		{"Log Level", data.LogLevel},
		{"AppData Directory", data.AppDataDir},
		{"Seeded Accounts", strings.Join(data.SeedAccounts, ", ")},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
