package views

import (
	"fmt"

	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/utils"
	"github.com/pterm/pterm"
)

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

func (v *AccountListView) Render(accounts []model.Account, currency string) error {
	if len(accounts) == 0 {
		pterm.Warning.Println("No accounts found")
		return nil
	}

	headers := []string{"ID", "Account Number", "Type", "Balance"}
	tableData := pterm.TableData{headers}

	for _, acc := range accounts {
		balance := utils.FormatMoney(acc.Balance, currency)

		var coloredType, coloredBalance string
		switch acc.Type {
		case constants.AccountTypeSavings:
			coloredType = pterm.Green(acc.Type)
		case constants.AccountTypeChecking:
			coloredType = pterm.Blue(acc.Type)
		default:
			coloredType = acc.Type
		}
		if acc.Balance.IsZero() {
			coloredBalance = pterm.Gray(balance)
		} else {
			coloredBalance = balance
		}

		tableData = append(tableData, []string{fmt.Sprintf("%d", acc.ID), acc.AccountNumber, coloredType, coloredBalance})
	}

	pterm.DefaultSection.Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))

	return nil
}
