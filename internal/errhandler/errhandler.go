package errhandler

import (
	"errors"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/teller/internal/ledger"
	"github.com/pterm/pterm"
)

// IsCancelled reports whether err comes from the operator aborting a prompt.
func IsCancelled(err error) bool {
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		strings.Contains(err.Error(), "interrupt")
}

func HandleError(err error) {
	if IsCancelled(err) {
		pterm.Warning.Println("Operation Cancelled")
		os.Exit(0)
	}

	pterm.Error.Println(Message(err))
	os.Exit(1)
}

// Message turns err into the line shown to the operator.
func Message(err error) string {
	var rej *ledger.RejectionError
	if errors.As(err, &rej) {
		if rej.Message != "" {
			return capitalize(rej.Message)
		}
		return capitalize(rej.Error())
	}

	var te *ledger.TransportError
	if errors.As(err, &te) {
		return "Network error: the ledger could not be reached (" + te.Err.Error() + ")"
	}

	return capitalize(err.Error())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = []rune(strings.ToUpper(string(r[0])))[0]
	return string(r)
}
