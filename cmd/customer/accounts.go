package customer

import (
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui/prompts"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/hance08/teller/internal/validation"
	"github.com/spf13/cobra"
)

type AccountsCommandRunner struct {
	svc *service.Service
	cmd *cobra.Command
}

func NewAccountsCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts [customer-id]",
		Short: "Show a customer and their accounts",
		Long: `Show a customer's details and accounts. Without an id you pick the
customer from a list.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &AccountsCommandRunner{
				svc: svc,
				cmd: cmd,
			}
			return runner.Run(args)
		},
	}
}

func (r *AccountsCommandRunner) Run(args []string) error {
	var customerID int64
	var err error

	if len(args) == 1 {
		customerID, err = validation.ParseID(args[0])
	} else {
		customerID, err = PickCustomer(r.cmd, r.svc)
	}
	if err != nil {
		return err
	}

	c, err := r.svc.Customer.Accounts(r.cmd.Context(), customerID)
	if err != nil {
		return err
	}
	return views.RenderCustomerDetail(c, r.svc.Config.Defaults.Currency)
}

// PickCustomer lists customers and lets the operator choose one.
func PickCustomer(cmd *cobra.Command, svc *service.Service) (int64, error) {
	customers, err := svc.Customer.List(cmd.Context())
	if err != nil {
		return 0, err
	}
	return prompts.PromptCustomerSelect(customers)
}
