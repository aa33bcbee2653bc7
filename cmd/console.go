package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Pankaj-Bori/mybank-management-system/internal/app"
	"github.com/Pankaj-Bori/mybank-management-system/internal/console"
	"github.com/Pankaj-Bori/mybank-management-system/internal/ui/prompts"
)

type consoleRunner struct {
	app *app.App
}

func newConsoleRunner(application *app.App) *consoleRunner {
	return &consoleRunner{app: application}
}

func NewConsoleCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Start the interactive banking console",
		Long: `Start the interactive banking console.

Log in with an existing account or open a new one, then deposit,
withdraw, transfer, browse your history or export a statement.
This is also what runs when mybank is started without a command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newConsoleRunner(state.app).Run(cmd.Context())
		},
	}
}

func (r *consoleRunner) Run(ctx context.Context) error {
	c := console.New(r.app.Session, prompts.NewTerminal(), console.Options{
		Currency:     r.app.Config.Defaults.Currency,
		HistoryLimit: r.app.Config.Defaults.HistoryLimit,
		Exporter:     r.app.Statements,
		Logger:       r.app.Logger,
	})
	return c.Run(ctx)
}
