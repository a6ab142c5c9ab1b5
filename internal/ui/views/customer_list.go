package views

import (
	"fmt"

	"github.com/hance08/teller/internal/model"
	"github.com/pterm/pterm"
)

func RenderCustomerList(customers []model.Customer) error {
	if len(customers) == 0 {
		pterm.Warning.Println("No customers found")
		return nil
	}

	tableData := pterm.TableData{
		{"ID", "Name", "National ID", "Phone", "Email", "KYC"},
	}
	for _, c := range customers {
		kyc := pterm.Gray("no")
		if c.KYCVerified {
			kyc = pterm.Green("yes")
		}
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", c.ID),
			c.FullName(),
			c.NationalID,
			c.Phone,
			c.Email,
			kyc,
		})
	}

	pterm.DefaultSection.Println("Customers")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d customers\n", len(customers))
	return nil
}
