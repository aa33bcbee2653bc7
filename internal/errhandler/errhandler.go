package errhandler

import (
	"context"
	"errors"
	"os"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

// IsCancelled reports whether err comes from the user pressing Ctrl-C,
// inside a prompt or while the process was waiting.
func IsCancelled(err error) bool {
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		errors.Is(err, context.Canceled)
}

// Report prints err as a single console line and returns true if it was
// a cancellation.
func Report(err error) bool {
	if err == nil {
		return false
	}
	if IsCancelled(err) {
		pterm.Warning.Println("Operation Cancelled")
		return true
	}
	pterm.Error.Println(Capitalize(err.Error()))
	return false
}

// HandleError reports err and exits: 0 for a cancellation, 1 otherwise.
func HandleError(err error) {
	if Report(err) {
		os.Exit(0)
	}
	os.Exit(1)
}

func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
