package account

import (
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/hance08/teller/internal/validation"
	"github.com/spf13/cobra"
)

type historyFlags struct {
	Limit int
}

type HistoryCommandRunner struct {
	svc   *service.Service
	flags *historyFlags
	cmd   *cobra.Command
}

func NewHistoryCmd(svc *service.Service) *cobra.Command {
	flags := &historyFlags{}

	cmd := &cobra.Command{
		Use:   "history <account-id>",
		Short: "Show the transaction history of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &HistoryCommandRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run(args)
		},
	}

	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", constants.DefaultLimit, "Number of transactions to show")

	return cmd
}

func (r *HistoryCommandRunner) Run(args []string) error {
	accountID, err := validation.ParseID(args[0])
	if err != nil {
		return err
	}
	return ShowHistory(r.cmd, r.svc, accountID, r.flags.Limit)
}

func ShowHistory(cmd *cobra.Command, svc *service.Service, accountID int64, limit int) error {
	txs, err := svc.Account.History(cmd.Context(), accountID)
	if err != nil {
		return err
	}
	return views.NewTransactionListView().Render(accountID, txs, svc.Config.Defaults.Currency, limit)
}
