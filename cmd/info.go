package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Pankaj-Bori/mybank-management-system/internal/app"
	"github.com/Pankaj-Bori/mybank-management-system/internal/ui/views"
)

type infoRunner struct {
	app *app.App
}

func NewInfoCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, statement export path, and the seeded accounts.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: state.app,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.app.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	exportPath := r.app.Statements.Path()
	exportExists := false
	if _, err := os.Stat(exportPath); err == nil {
		exportExists = true
	}

	items := views.SystemInfoItem{
		ConfigPath:      configPath,
		ExportPath:      exportPath,
		ExportExists:    exportExists,
		DefaultCurrency: cfg.Defaults.Currency,
		LogLevel:        cfg.Log.Level,
		AppDataDir:      getAppDataDirOrUnknown(),
		SeedAccounts:    r.app.Registry.ListAccountIDs(),
	}

	return views.RenderSystemInfo(items)
}

func getAppDataDirOrUnknown() string {
	dir, err := app.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
