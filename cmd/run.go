package cmd

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Pankaj-Bori/mybank-management-system/internal/app"
	"github.com/Pankaj-Bori/mybank-management-system/internal/script"
	"github.com/Pankaj-Bori/mybank-management-system/internal/ui/views"
)

// exportConfigured is the --export value used when the flag has no path.
const exportConfigured = "configured"

type runFlags struct {
	Export string
	Strict bool
}

type runRunner struct {
	app   *app.App
	flags *runFlags
}

func NewRunCmd(state *appState) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Apply a YAML script of banking operations",
		Long: `Apply a YAML script of banking operations to the seeded accounts.

Each step has an op (create, deposit, withdraw or transfer) and the fields
that op needs. A failing step is reported and the rest still run.

Examples:
	mybank run payroll.yaml
	mybank run payroll.yaml --export
	mybank run payroll.yaml --export ./payroll.db --strict`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &runRunner{
				app:   state.app,
				flags: flags,
			}
			return runner.Run(cmd.Context(), args[0])
		},
	}

	cmd.Flags().StringVarP(&flags.Export, "export", "e", "", "export a statement of every account (--export=path for another file)")
	cmd.Flags().Lookup("export").NoOptDefVal = exportConfigured
	cmd.Flags().BoolVar(&flags.Strict, "strict", false, "exit with an error if any step fails")

	return cmd
}

func (r *runRunner) Run(ctx context.Context, path string) error {
	sc, err := script.LoadFile(path)
	if err != nil {
		return err
	}

	report := script.NewRunner(r.app.Registry, r.app.Logger).Run(sc)

	currency := r.app.Config.Defaults.Currency
	if err := views.RenderRunReport(report, currency); err != nil {
		return err
	}

	if r.flags.Export != "" {
		exporter := r.app.Statements
		if r.flags.Export != exportConfigured {
			exportPath, err := app.ExpandPath(r.flags.Export)
			if err != nil {
				return err
			}
			exporter = app.NewStatementExporter(exportPath, r.app.Statements.FS(), currency, r.app.Logger)
			defer exporter.Close()
		}

		id, err := exporter.ExportLabelled(ctx, "run:"+sc.Name, report.Accounts)
		if err != nil {
			return fmt.Errorf("export statement: %w", err)
		}
		pterm.Success.Printf("Statement exported to %s (export #%d)\n", exporter.Path(), id)
	}

	if r.flags.Strict && report.Failed() > 0 {
		return fmt.Errorf("%d of %d steps failed", report.Failed(), len(report.Results))
	}
	return nil
}
