package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

func PrintL1Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf(" %s   ", text)

	style.Println(paddedText)
}

func PrintL2Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf("# %s   ", text)

	style.Println(paddedText)
}

// Separator prints a green separator line between console screens.
func Separator() {
	pterm.Println(pterm.Green("----------------------------------------"))
}

// ColorByMovement colors s by the direction of the ledger entry type.
func ColorByMovement(txType, s string) string {
	switch txType {
	case "deposit", "transfer-in":
		return pterm.Green(s)
	case "withdraw", "withdrawal", "transfer-out":
		return pterm.Red(s)
	case "transfer":
		return pterm.Blue(s)
	default:
		return s
	}
}
