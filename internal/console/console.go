// Package console runs the interactive banking menus on top of a session.
package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"

	"github.com/Pankaj-Bori/mybank-management-system/internal/constants"
	"github.com/Pankaj-Bori/mybank-management-system/internal/errhandler"
	"github.com/Pankaj-Bori/mybank-management-system/internal/ledger"
	"github.com/Pankaj-Bori/mybank-management-system/internal/session"
	"github.com/Pankaj-Bori/mybank-management-system/internal/ui/views"
	"github.com/Pankaj-Bori/mybank-management-system/internal/utils"
	"github.com/Pankaj-Bori/mybank-management-system/internal/validation"
)

const (
	MenuLogin    = "Login"
	MenuRegister = "Open an account"
	MenuQuit     = "Quit"

	MenuDeposit  = "Deposit"
	MenuWithdraw = "Withdraw"
	MenuTransfer = "Transfer"
	MenuHistory  = "Transaction history"
	MenuExport   = "Export statement"
	MenuLogout   = "Logout"

	FilterAll         = "All"
	FilterDeposits    = "Deposits"
	FilterWithdrawals = "Withdrawals"
)

var ErrExportUnavailable = errors.New("statement export is not configured")

// Prompter asks the user for input. Implementations return an error that
// errhandler.IsCancelled recognises when the user aborts a prompt.
type Prompter interface {
	Select(title string, options []string) (string, error)
	Input(title, placeholder string, validate func(string) error) (string, error)
	Secret(title string) (string, error)
	Confirm(title string, def bool) (bool, error)
}

// Exporter persists account snapshots and returns the export id.
type Exporter interface {
	Export(ctx context.Context, accounts []ledger.AccountData) (int64, error)
}

type Options struct {
	Currency     string
	HistoryLimit int
	Exporter     Exporter
	Logger       *slog.Logger
}

type Console struct {
	session   *session.Session
	prompter  Prompter
	validator *validation.AccountValidator
	exporter  Exporter
	currency  string
	recent    int
	logger    *slog.Logger
}

func New(sess *session.Session, prompter Prompter, opts Options) *Console {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = constants.DefaultHistoryLimit
	}
	return &Console{
		session:   sess,
		prompter:  prompter,
		validator: validation.NewAccountValidator(sess.Registry()),
		exporter:  opts.Exporter,
		currency:  opts.Currency,
		recent:    opts.HistoryLimit,
		logger:    opts.Logger,
	}
}

// Run shows the welcome menu until the user quits. Cancelling the welcome
// menu quits; cancelling the dashboard menu logs out. Operation failures
// are printed and the loop continues.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !c.session.LoggedIn() {
			quit, err := c.welcome()
			if err != nil {
				return err
			}
			if quit {
				pterm.Info.Println("Goodbye!")
				return nil
			}
			continue
		}

		if err := c.dashboard(ctx); err != nil {
			return err
		}
	}
}

func (c *Console) welcome() (bool, error) {
	choice, err := c.prompter.Select("Welcome to MyBank", []string{MenuLogin, MenuRegister, MenuQuit})
	if err != nil {
		if errhandler.IsCancelled(err) {
			return true, nil
		}
		return false, err
	}

	switch choice {
	case MenuLogin:
		errhandler.Report(c.login())
	case MenuRegister:
		errhandler.Report(c.register())
	case MenuQuit:
		return true, nil
	}
	return false, nil
}

func (c *Console) dashboard(ctx context.Context) error {
	snap, err := c.session.Snapshot()
	if err != nil {
		return err
	}
	if err := views.RenderDashboard(views.DashboardItem{Account: snap, Currency: c.currency, Recent: c.recent}); err != nil {
		return err
	}

	choice, err := c.prompter.Select("What would you like to do?", []string{
		MenuDeposit, MenuWithdraw, MenuTransfer, MenuHistory, MenuExport, MenuLogout,
	})
	if err != nil {
		if errhandler.IsCancelled(err) {
			c.logout()
			return nil
		}
		return err
	}

	switch choice {
	case MenuDeposit:
		errhandler.Report(c.deposit())
	case MenuWithdraw:
		errhandler.Report(c.withdraw())
	case MenuTransfer:
		errhandler.Report(c.transfer())
	case MenuHistory:
		errhandler.Report(c.history())
	case MenuExport:
		errhandler.Report(c.export(ctx))
	case MenuLogout:
		c.logout()
	}
	return nil
}

func (c *Console) login() error {
	id, err := c.prompter.Input("Account ID", "", validation.ValidateAccountID)
	if err != nil {
		return err
	}
	pin, err := c.prompter.Secret("PIN")
	if err != nil {
		return err
	}
	if err := c.session.Login(id, pin); err != nil {
		return err
	}

	acc, _ := c.session.Current()
	pterm.Success.Printf("Logged in as %s\n", acc.OwnerName())
	return nil
}

func (c *Console) register() error {
	id, err := c.prompter.Input("Choose an account ID", "", c.validator.ValidateNewAccountID)
	if err != nil {
		return err
	}
	owner, err := c.prompter.Input("Owner name", "", validation.ValidateOwnerName)
	if err != nil {
		return err
	}
	balanceStr, err := c.prompter.Input("Opening balance", "0", validation.ValidateOpeningBalance)
	if err != nil {
		return err
	}
	initial, err := utils.ParseAmount(balanceStr)
	if err != nil {
		return err
	}

	pin, err := c.prompter.Secret(fmt.Sprintf("Choose a PIN (at least %d characters)", constants.MinPINLen))
	if err != nil {
		return err
	}
	if err := validation.ValidatePIN(pin); err != nil {
		return err
	}
	again, err := c.prompter.Secret("Repeat PIN")
	if err != nil {
		return err
	}
	if again != pin {
		return fmt.Errorf("PINs do not match")
	}

	if err := c.session.Register(id, owner, initial, pin); err != nil {
		return err
	}
	snap, err := c.session.Snapshot()
	if err != nil {
		return err
	}
	return views.RenderAccountSuccess(snap, c.currency)
}

func (c *Console) deposit() error {
	amount, desc, err := c.askAmount("Deposit amount", constants.ManualDepositMemo)
	if err != nil {
		return err
	}
	if err := c.session.Deposit(amount, desc); err != nil {
		return err
	}
	pterm.Success.Printf("Deposited %s\n", utils.FormatMoney(amount, c.currency))
	return c.receipt()
}

func (c *Console) withdraw() error {
	amount, desc, err := c.askAmount("Withdrawal amount", constants.ManualWithdrawalMemo)
	if err != nil {
		return err
	}
	if err := c.session.Withdraw(amount, desc); err != nil {
		return err
	}
	pterm.Success.Printf("Withdrew %s\n", utils.FormatMoney(amount, c.currency))
	return c.receipt()
}

func (c *Console) transfer() error {
	toID, err := c.prompter.Input("Recipient account ID", "", c.validator.ValidateExistingAccountID)
	if err != nil {
		return err
	}
	amount, desc, err := c.askAmount("Transfer amount", constants.TransferMemo)
	if err != nil {
		return err
	}

	to, ok := c.session.Registry().GetAccount(strings.TrimSpace(toID))
	if !ok {
		return fmt.Errorf("%w: %s", ledger.ErrAccountNotFound, toID)
	}
	ok, err = c.prompter.Confirm(fmt.Sprintf("Send %s to %s?", utils.FormatMoney(amount, c.currency), to.OwnerName()), true)
	if err != nil {
		return err
	}
	if !ok {
		pterm.Info.Println("Transfer cancelled")
		return nil
	}

	if err := c.session.Transfer(toID, amount, desc); err != nil {
		return err
	}
	pterm.Success.Printf("Sent %s to %s\n", utils.FormatMoney(amount, c.currency), to.OwnerName())
	return c.receipt()
}

func (c *Console) history() error {
	kind, err := c.prompter.Select("Show", []string{FilterAll, FilterDeposits, FilterWithdrawals})
	if err != nil {
		return err
	}
	since, err := c.askDate("From date (YYYY-MM-DD, optional)")
	if err != nil {
		return err
	}
	until, err := c.askDate("To date (YYYY-MM-DD, optional)")
	if err != nil {
		return err
	}

	f := ledger.Filter{Since: since, Until: until}
	switch kind {
	case FilterDeposits:
		f.Kind = ledger.KindDeposit
	case FilterWithdrawals:
		f.Kind = ledger.KindWithdrawal
	}

	txs, err := c.session.History(f)
	if err != nil {
		return err
	}
	if err := views.NewTransactionListView(c.currency).Render("Transaction History", txs, 0); err != nil {
		return err
	}
	if len(txs) == 0 {
		return nil
	}
	return views.RenderAnalytics(ledger.Summarize(txs), c.currency)
}

func (c *Console) export(ctx context.Context) error {
	if c.exporter == nil {
		return ErrExportUnavailable
	}
	snap, err := c.session.Snapshot()
	if err != nil {
		return err
	}
	id, err := c.exporter.Export(ctx, []ledger.AccountData{snap})
	if err != nil {
		return fmt.Errorf("export statement: %w", err)
	}
	pterm.Success.Printf("Statement exported (export #%d, %d transactions)\n", id, len(snap.Transactions))
	return nil
}

func (c *Console) logout() {
	c.session.Logout()
	pterm.Info.Println("Logged out")
}

func (c *Console) askAmount(title, defaultMemo string) (decimal.Decimal, string, error) {
	amountStr, err := c.prompter.Input(title, "", validation.ValidateAmount)
	if err != nil {
		return decimal.Zero, "", err
	}
	amount, err := utils.ParseAmount(amountStr)
	if err != nil {
		return decimal.Zero, "", err
	}
	desc, err := c.prompter.Input("Description (optional)", defaultMemo, nil)
	if err != nil {
		return decimal.Zero, "", err
	}
	return amount, desc, nil
}

func (c *Console) askDate(title string) (time.Time, error) {
	s, err := c.prompter.Input(title, "", validation.ValidateOptionalDate)
	if err != nil {
		return time.Time{}, err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(constants.DateFormat, s, time.Local)
}

func (c *Console) receipt() error {
	snap, err := c.session.Snapshot()
	if err != nil {
		return err
	}
	tx, ok := snap.Latest()
	if !ok {
		return nil
	}
	return views.RenderReceipt(tx, c.currency)
}
