package script

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Pankaj-Bori/mybank-management-system/internal/ledger"
	"github.com/Pankaj-Bori/mybank-management-system/internal/utils"
)

type StepResult struct {
	Index int
	Step  Step
	Err   error
}

func (r StepResult) OK() bool { return r.Err == nil }

type Report struct {
	Script   string
	Results  []StepResult
	Accounts []ledger.AccountData
}

func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.OK() {
			n++
		}
	}
	return n
}

type Runner struct {
	registry *ledger.Registry
	logger   *slog.Logger
}

func NewRunner(registry *ledger.Registry, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{registry: registry, logger: logger}
}

// Run applies every step in order. A failing step is recorded in the
// report and the remaining steps still run.
func (r *Runner) Run(sc Script) Report {
	report := Report{Script: sc.Name, Results: make([]StepResult, 0, len(sc.Steps))}
	for i, step := range sc.Steps {
		err := r.apply(step)
		if err != nil {
			r.logger.Warn("step failed", "step", i+1, "op", step.Op, "error", err)
		} else {
			r.logger.Debug("step applied", "step", i+1, "op", step.Op)
		}
		report.Results = append(report.Results, StepResult{Index: i + 1, Step: step, Err: err})
	}
	report.Accounts = r.registry.Snapshots()
	return report
}

func (r *Runner) apply(s Step) error {
	switch strings.ToLower(strings.TrimSpace(s.Op)) {
	case OpCreate:
		if err := requireFields("account", s.Account, "owner", s.Owner, "pin", s.PIN); err != nil {
			return err
		}
		initial := decimal.Zero
		if strings.TrimSpace(s.Amount) != "" {
			var err error
			if initial, err = utils.ParseAmount(s.Amount); err != nil {
				return err
			}
		}
		accType := ledger.Savings
		if strings.TrimSpace(s.Type) != "" {
			var err error
			if accType, err = ledger.ParseAccountType(s.Type); err != nil {
				return err
			}
		}
		_, err := r.registry.CreateAccount(s.Account, s.Owner, initial, s.PIN, accType)
		return err

	case OpDeposit, OpWithdraw:
		if err := requireFields("account", s.Account, "amount", s.Amount); err != nil {
			return err
		}
		amount, err := utils.ParseAmount(s.Amount)
		if err != nil {
			return err
		}
		acc, ok := r.registry.GetAccount(s.Account)
		if !ok {
			return fmt.Errorf("%w: %s", ledger.ErrAccountNotFound, s.Account)
		}
		if strings.EqualFold(s.Op, OpDeposit) {
			return acc.Deposit(amount, s.Description)
		}
		return acc.Withdraw(amount, s.Description)

	case OpTransfer:
		if err := requireFields("from", s.From, "to", s.To, "amount", s.Amount); err != nil {
			return err
		}
		amount, err := utils.ParseAmount(s.Amount)
		if err != nil {
			return err
		}
		return r.registry.Transfer(s.From, s.To, amount, s.Description)

	default:
		return fmt.Errorf("%w '%s'", ErrUnknownOp, s.Op)
	}
}

// requireFields takes name/value pairs and reports the first empty value.
func requireFields(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			return fmt.Errorf("%w '%s'", ErrMissingField, pairs[i])
		}
	}
	return nil
}
