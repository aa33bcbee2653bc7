// Package script applies a YAML list of banking operations to a registry.
//
// A script looks like:
//
//	steps:
//	  - op: create
//	    account: "1001"
//	    owner: Alice
//	    pin: "4321"
//	    type: checking
//	    amount: 250
//	  - op: transfer
//	    from: "1001"
//	    to: "999999"
//	    amount: 20.50
//	    description: Rent
package script

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
)

const (
	OpCreate   = "create"
	OpDeposit  = "deposit"
	OpWithdraw = "withdraw"
	OpTransfer = "transfer"
)

var (
	ErrNoSteps      = errors.New("script has no steps")
	ErrUnknownOp    = errors.New("unknown operation")
	ErrMissingField = errors.New("missing field")
)

type Step struct {
	Op          string `mapstructure:"op"`
	Account     string `mapstructure:"account"`
	From        string `mapstructure:"from"`
	To          string `mapstructure:"to"`
	Owner       string `mapstructure:"owner"`
	PIN         string `mapstructure:"pin"`
	Type        string `mapstructure:"type"`
	Amount      string `mapstructure:"amount"`
	Description string `mapstructure:"description"`
}

type Script struct {
	Name  string
	Steps []Step `mapstructure:"steps"`
}

// Summary is a one-line rendering of the step for reports.
func (s Step) Summary() string {
	switch strings.ToLower(s.Op) {
	case OpCreate:
		return fmt.Sprintf("create %s (%s) with %s", s.Account, s.Owner, orZero(s.Amount))
	case OpDeposit, OpWithdraw:
		return fmt.Sprintf("%s %s on %s", strings.ToLower(s.Op), s.Amount, s.Account)
	case OpTransfer:
		return fmt.Sprintf("transfer %s from %s to %s", s.Amount, s.From, s.To)
	default:
		return s.Op
	}
}

// LoadFile reads a script file. The format follows the file extension.
func LoadFile(path string) (Script, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Script{}, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	sc, err := decode(v)
	if err != nil {
		return Script{}, fmt.Errorf("script %s: %w", path, err)
	}
	sc.Name = path
	return sc, nil
}

// Load reads a YAML script from r.
func Load(name string, r io.Reader) (Script, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(r); err != nil {
		return Script{}, fmt.Errorf("failed to read script %s: %w", name, err)
	}
	sc, err := decode(v)
	if err != nil {
		return Script{}, fmt.Errorf("script %s: %w", name, err)
	}
	sc.Name = name
	return sc, nil
}

func decode(v *viper.Viper) (Script, error) {
	var sc Script
	if err := v.Unmarshal(&sc); err != nil {
		return Script{}, fmt.Errorf("failed to decode steps: %w", err)
	}
	if len(sc.Steps) == 0 {
		return Script{}, ErrNoSteps
	}
	return sc, nil
}

func orZero(s string) string {
	if strings.TrimSpace(s) == "" {
		return "0"
	}
	return s
}
