package errhandler

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestIsCancelled(t *testing.T) {
	assert.True(t, IsCancelled(terminal.InterruptErr))
	assert.True(t, IsCancelled(huh.ErrUserAborted))
	assert.True(t, IsCancelled(fmt.Errorf("login: %w", huh.ErrUserAborted)))
	assert.False(t, IsCancelled(errors.New("insufficient funds")))
	assert.True(t, IsCancelled(context.Canceled))
	assert.False(t, IsCancelled(nil))
}

func TestReport(t *testing.T) {
	pterm.DisableOutput()
	defer pterm.EnableOutput()

	assert.False(t, Report(nil))
	assert.False(t, Report(errors.New("boom")))
	assert.True(t, Report(terminal.InterruptErr))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Insufficient funds", Capitalize("insufficient funds"))
	assert.Equal(t, "Élan", Capitalize("élan"))
}
