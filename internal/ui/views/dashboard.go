package views

import (
	"fmt"

	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui"
	"github.com/hance08/teller/internal/utils"
	"github.com/pterm/pterm"
)

func RenderDashboard(snap service.Snapshot, currency string) error {
	ui.PrintL1Title("Dashboard")
	pterm.Println()

	panels := pterm.Panels{
		{
			{Data: pterm.DefaultBox.WithTitle("Customers").Sprint(pterm.Bold.Sprint(fmt.Sprintf("%d", snap.Stats.TotalCustomers)))},
			{Data: pterm.DefaultBox.WithTitle("Accounts").Sprint(pterm.Bold.Sprint(fmt.Sprintf("%d", snap.Stats.TotalAccounts)))},
			{Data: pterm.DefaultBox.WithTitle("Total Balance").Sprint(pterm.Bold.Sprint(utils.FormatMoney(snap.Stats.TotalBalance, currency)))},
		},
	}
	if err := pterm.DefaultPanel.WithPanels(panels).Render(); err != nil {
		return err
	}

	pterm.Println()
	ui.PrintL2Title("Recent Transactions")

	if len(snap.Recent) == 0 {
		pterm.Info.Println("No recent transactions")
		return nil
	}

	tableData := pterm.TableData{
		{"Date", "Customer", "Account", "Type", "Amount"},
	}
	for _, item := range snap.Recent {
		date := "-"
		if !item.CreatedAt.IsZero() {
			date = item.CreatedAt.Local().Format(constants.DateTimeFormat)
		}
		name := item.FirstName
		if item.LastName != "" {
			name += " " + item.LastName
		}

		tableData = append(tableData, []string{
			date,
			name,
			item.AccountNumber,
			ui.ColorByMovement(item.Type, item.Type),
			ui.ColorByMovement(item.Type, utils.FormatMoney(item.Amount, currency)),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
