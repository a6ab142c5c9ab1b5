package account

import (
	"github.com/hance08/teller/internal/service"
	"github.com/spf13/cobra"
)

func NewAccountCmd(svc *service.Service) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Open accounts and show their transaction history.",
		Long:  `Open accounts and show their transaction history.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return svc.Session.Require()
		},
	}

	accountCmd.AddCommand(NewCreateCmd(svc))
	accountCmd.AddCommand(NewHistoryCmd(svc))

	return accountCmd
}
