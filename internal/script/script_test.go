package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pankaj-Bori/mybank-management-system/internal/ledger"
)

const sample = `
steps:
  - op: create
    account: "1001"
    owner: Alice
    pin: "4321"
    type: checking
    amount: 250
  - op: deposit
    account: "1001"
    amount: "100.25"
    description: Salary
  - op: withdraw
    account: "1001"
    amount: 1000
  - op: transfer
    from: "1001"
    to: "999999"
    amount: 50
    description: Rent
  - op: fly
    account: "1001"
  - op: transfer
    from: "1001"
    to: "1001"
    amount: 1
`

func TestLoad(t *testing.T) {
	sc, err := Load("sample", strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, sc.Steps, 6)
	assert.Equal(t, "sample", sc.Name)
	assert.Equal(t, Step{Op: "create", Account: "1001", Owner: "Alice", PIN: "4321", Type: "checking", Amount: "250"}, sc.Steps[0])
	assert.Equal(t, "100.25", sc.Steps[1].Amount)
	assert.Equal(t, "transfer 50 from 1001 to 999999", sc.Steps[3].Summary())
}

func TestLoad_NoSteps(t *testing.T) {
	_, err := Load("empty", strings.NewReader("title: nothing\n"))
	assert.ErrorIs(t, err, ErrNoSteps)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	sc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, sc.Name)
	assert.Len(t, sc.Steps, 6)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRunner_Run(t *testing.T) {
	reg, err := ledger.NewSeededRegistry()
	require.NoError(t, err)
	sc, err := Load("sample", strings.NewReader(sample))
	require.NoError(t, err)

	report := NewRunner(reg, nil).Run(sc)

	require.Len(t, report.Results, 6)
	assert.True(t, report.Results[0].OK())
	assert.True(t, report.Results[1].OK())
	assert.ErrorIs(t, report.Results[2].Err, ledger.ErrInsufficientFunds)
	assert.True(t, report.Results[3].OK())
	assert.ErrorIs(t, report.Results[4].Err, ErrUnknownOp)
	assert.ErrorIs(t, report.Results[5].Err, ledger.ErrSameAccount)
	assert.Equal(t, 3, report.Failed())

	require.Len(t, report.Accounts, 3)
	alice, ok := reg.GetAccount("1001")
	require.True(t, ok)
	assert.Equal(t, ledger.Checking, alice.Type())
	assert.True(t, alice.Balance().Equal(decimal.RequireFromString("300.25")))

	for _, acc := range report.Accounts {
		assert.NoError(t, ledger.Reconcile(acc), acc.ID)
	}
}

func TestRunner_StepValidation(t *testing.T) {
	reg := ledger.NewRegistry()
	r := NewRunner(reg, nil)

	tests := []struct {
		name string
		step Step
		want error
	}{
		{"create without pin", Step{Op: "create", Account: "1", Owner: "A"}, ErrMissingField},
		{"create bad type", Step{Op: "create", Account: "1", Owner: "A", PIN: "1234", Type: "gold"}, ledger.ErrInvalidAccountType},
		{"deposit unknown account", Step{Op: "deposit", Account: "nope", Amount: "1"}, ledger.ErrAccountNotFound},
		{"deposit zero", Step{Op: "deposit", Account: "1", Amount: "0"}, ledger.ErrInvalidAmount},
		{"transfer without to", Step{Op: "transfer", From: "1", Amount: "1"}, ErrMissingField},
	}

	_, err := reg.CreateAccount("1", "A", decimal.Zero, "1234", ledger.Savings)
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, r.apply(tt.step), tt.want)
		})
	}

	assert.Error(t, r.apply(Step{Op: "deposit", Account: "1", Amount: "abc"}))
	assert.NoError(t, r.apply(Step{Op: "create", Account: "2", Owner: "B", PIN: "1234"}))
	b, ok := reg.GetAccount("2")
	require.True(t, ok)
	assert.Equal(t, ledger.Savings, b.Type())
	assert.True(t, b.Balance().IsZero())
}
