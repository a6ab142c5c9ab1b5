package customer

import (
	"github.com/hance08/teller/internal/service"
	"github.com/spf13/cobra"
)

func NewCustomerCmd(svc *service.Service) *cobra.Command {
	customerCmd := &cobra.Command{
		Use:   "customer",
		Short: "List and register customers, and show their accounts.",
		Long:  `List and register customers, and show their accounts.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return svc.Session.Require()
		},
	}

	customerCmd.AddCommand(NewListCmd(svc))
	customerCmd.AddCommand(NewCreateCmd(svc))
	customerCmd.AddCommand(NewAccountsCmd(svc))

	return customerCmd
}
