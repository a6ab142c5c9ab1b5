package transaction

import (
	"github.com/hance08/teller/cmd/customer"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui/prompts"
	"github.com/spf13/cobra"
)

// PickAccount asks for a customer, loads their accounts and lets the
// operator choose one.
func PickAccount(cmd *cobra.Command, svc *service.Service) (int64, error) {
	customerID, err := customer.PickCustomer(cmd, svc)
	if err != nil {
		return 0, err
	}

	c, err := svc.Customer.Accounts(cmd.Context(), customerID)
	if err != nil {
		return 0, err
	}
	return prompts.PromptAccountSelect("Account:", c.Accounts, svc.Config.Defaults.Currency)
}

// Interactive collects the amount (and destination for transfers) for an
// already chosen account and performs the movement.
func Interactive(cmd *cobra.Command, svc *service.Service, kind string, from int64) error {
	amount, err := prompts.PromptMovementAmount(kind)
	if err != nil {
		return err
	}

	var to int64
	if kind == constants.MoveTransfer {
		to, err = pickDestination(svc, from)
		if err != nil {
			return err
		}
	}

	return Execute(cmd, svc, kind, from, to, amount, false)
}

const otherAccount = "Another account (enter ID)"

// pickDestination offers the accounts already loaded this session and
// falls back to a typed id.
func pickDestination(svc *service.Service, from int64) (int64, error) {
	known := svc.Cache.Accounts()

	if len(known) > 1 {
		choice, err := prompts.PromptSelect("Destination:", []string{"Loaded account", otherAccount}, "Loaded account")
		if err != nil {
			return 0, err
		}
		if choice != otherAccount {
			return prompts.PromptAccountSelect("Destination account:", known, svc.Config.Defaults.Currency, from)
		}
	}

	return prompts.PromptAccountID("Destination account ID:")
}
