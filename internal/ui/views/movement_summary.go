package views

import (
	"fmt"
	"strings"

	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/utils"
	"github.com/pterm/pterm"
)

func RenderMovementSummary(res *service.MovementResult, currency string) error {
	pterm.Success.Printf("%s of %s completed\n", capitalizeKind(res.Kind), utils.FormatMoney(res.Amount, currency))

	if len(res.Updated) == 0 {
		return nil
	}

	tableData := pterm.TableData{
		{"Account", "Number", "New Balance"},
	}
	for _, acc := range res.Updated {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", acc.ID),
			acc.AccountNumber,
			utils.FormatMoney(acc.Balance, currency),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	if len(res.Updated) < len(res.Involved) {
		pterm.Info.Println("The other account's balance is refreshed with its history")
	}
	return nil
}

func capitalizeKind(kind string) string {
	if kind == "" {
		return kind
	}
	return strings.ToUpper(kind[:1]) + kind[1:]
}
