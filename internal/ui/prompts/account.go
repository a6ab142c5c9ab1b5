package prompts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/utils"
	"github.com/hance08/teller/internal/validation"
)

// PromptAccountType prompts for account type selection
func PromptAccountType() (string, error) {
	options := make([]string, 0, len(constants.AccountTypes))
	for _, t := range constants.AccountTypes {
		options = append(options, strings.ToUpper(t[:1])+t[1:])
	}

	selected, err := PromptSelect("Account type:", options, "Savings")
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return strings.ToLower(selected), nil
}

// PromptInitialBalance asks for the opening balance; empty means zero.
func PromptInitialBalance() (string, error) {
	return PromptAmount("Initial balance:", "Leave empty for 0", func(s string) error {
		_, err := validation.ParseInitialBalance(s)
		return err
	})
}

// PromptAccountSelect lets the operator pick one of accounts. Accounts whose
// id is in exclude are hidden.
func PromptAccountSelect(title string, accounts []model.Account, currency string, exclude ...int64) (int64, error) {
	var opts []huh.Option[int64]
	for _, acc := range accounts {
		if containsID(exclude, acc.ID) {
			continue
		}
		label := fmt.Sprintf("%s  %s  %s", acc.AccountNumber, acc.Type, utils.FormatMoney(acc.Balance, currency))
		opts = append(opts, huh.NewOption(label, acc.ID))
	}
	if len(opts) == 0 {
		return 0, fmt.Errorf("no accounts to choose from")
	}

	var selected int64
	err := huh.NewSelect[int64]().
		Title(title).
		Options(opts...).
		Value(&selected).
		Height(10).
		Run()
	return selected, err
}

// PromptAccountID asks for a raw account id, for accounts not yet cached.
func PromptAccountID(title string) (int64, error) {
	raw, err := PromptInput(title, "", func(s string) error {
		_, err := validation.ParseID(s)
		return err
	})
	if err != nil {
		return 0, err
	}
	return validation.ParseID(raw)
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
