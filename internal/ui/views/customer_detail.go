package views

import (
	"fmt"

	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/ui"
	"github.com/pterm/pterm"
)

func RenderCustomerDetail(c *model.Customer, currency string) error {
	pterm.Println()
	ui.PrintL2Title("Customer Info")

	dob := c.DateOfBirth
	if dob == "" {
		dob = "-"
	}

	infoData := pterm.TableData{
		{"Field", "Value"},
		{"ID", fmt.Sprintf("%d", c.ID)},
		{"Name", c.FullName()},
		{"National ID", c.NationalID},
		{"Phone", c.Phone},
		{"Email", c.Email},
		{"Address", c.Address},
		{"Date of Birth", dob},
	}
	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render(); err != nil {
		return err
	}

	pterm.Println()
	return NewAccountListView().Render(c.Accounts, currency)
}
