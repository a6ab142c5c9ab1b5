package prompts

import (
	"fmt"

	"github.com/hance08/teller/internal/validation"
	"github.com/shopspring/decimal"
)

// PromptMovementAmount asks for a positive amount for the given movement.
func PromptMovementAmount(kind string) (decimal.Decimal, error) {
	raw, err := PromptAmount(
		fmt.Sprintf("Amount to %s:", kind),
		"Positive number, e.g. 500 or 250.50",
		func(s string) error {
			_, err := validation.ParseAmount(s)
			return err
		},
	)
	if err != nil {
		return decimal.Zero, err
	}
	return validation.ParseAmount(raw)
}
