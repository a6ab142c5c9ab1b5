package account

import (
	"fmt"

	"github.com/hance08/teller/cmd/customer"
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui/prompts"
	"github.com/hance08/teller/internal/utils"
	"github.com/hance08/teller/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type createFlags struct {
	CustomerID int64
	Type       string
	Balance    string
}

type CreateCommandRunner struct {
	svc   *service.Service
	flags *createFlags
	cmd   *cobra.Command
}

func NewCreateCmd(svc *service.Service) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open a new account for a customer",
		Long: `Open a savings or checking account for an existing customer.

Examples:
	# Interactive mode
	teller account create

	# Quick mode with flags
	teller account create --customer 3 --type checking --balance 5000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &CreateCommandRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().Int64Var(&flags.CustomerID, "customer", 0, "Customer ID")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Account type: savings (default) or checking")
	cmd.Flags().StringVarP(&flags.Balance, "balance", "b", "", "Initial balance (default 0)")

	return cmd
}

func (r *CreateCommandRunner) Run() error {
	if r.cmd.Flags().Changed("customer") {
		return Open(r.cmd, r.svc, r.flags.CustomerID, r.flags.Type, r.flags.Balance)
	}

	customerID, err := customer.PickCustomer(r.cmd, r.svc)
	if err != nil {
		return err
	}
	return OpenInteractive(r.cmd, r.svc, customerID)
}

// OpenInteractive asks for the account details and opens the account.
func OpenInteractive(cmd *cobra.Command, svc *service.Service, customerID int64) error {
	accType, err := prompts.PromptAccountType()
	if err != nil {
		return err
	}
	balance, err := prompts.PromptInitialBalance()
	if err != nil {
		return err
	}
	return Open(cmd, svc, customerID, accType, balance)
}

func Open(cmd *cobra.Command, svc *service.Service, customerID int64, accType, balance string) error {
	initial, err := validation.ParseInitialBalance(balance)
	if err != nil {
		return fmt.Errorf("invalid initial balance: %w", err)
	}

	acc, err := svc.Account.Create(cmd.Context(), customerID, accType, initial, svc.Dashboard.RefreshFunc())
	if err != nil {
		return err
	}

	pterm.Success.Printf("Account %s (%s) opened with %s (ID: %d)\n",
		acc.AccountNumber, acc.Type, utils.FormatMoney(acc.Balance, svc.Config.Defaults.Currency), acc.ID)
	return nil
}
