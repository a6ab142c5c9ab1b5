package views

import (
	"fmt"

	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/ui"
	"github.com/hance08/teller/internal/utils"
	"github.com/pterm/pterm"
)

type TransactionListView struct{}

func NewTransactionListView() *TransactionListView {
	return &TransactionListView{}
}

// Render shows at most limit entries of an account's history.
func (v *TransactionListView) Render(accountID int64, txs []model.Transaction, currency string, limit int) error {
	if len(txs) == 0 {
		pterm.Warning.Printf("No transactions found for account %d\n", accountID)
		return nil
	}

	shown := txs
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	pterm.DefaultSection.Printf("Transactions of account %d (showing %d of %d)", accountID, len(shown), len(txs))

	tableData := pterm.TableData{
		{"ID", "Date", "Type", "Description", "Amount"},
	}

	for _, tx := range shown {
		date := "-"
		if !tx.CreatedAt.IsZero() {
			date = tx.CreatedAt.Local().Format(constants.DateTimeFormat)
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", tx.ID),
			date,
			ui.ColorByMovement(tx.Type, tx.Type),
			tx.Description,
			ui.ColorByMovement(tx.Type, utils.FormatMoney(tx.Amount, currency)),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(txs))
	return nil
}
