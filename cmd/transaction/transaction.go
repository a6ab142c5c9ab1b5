package transaction

import (
	"fmt"

	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/hance08/teller/internal/utils"
	"github.com/hance08/teller/internal/validation"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type movementFlags struct {
	Account int64
	To      int64
	Amount  string
	Yes     bool
}

type movementRunner struct {
	svc   *service.Service
	kind  string
	flags *movementFlags
	cmd   *cobra.Command
}

func NewDepositCmd(svc *service.Service) *cobra.Command {
	return newMovementCmd(svc, constants.MoveDeposit, "Deposit money into an account",
		`teller deposit --account 7 --amount 500`)
}

func NewWithdrawCmd(svc *service.Service) *cobra.Command {
	return newMovementCmd(svc, constants.MoveWithdraw, "Withdraw money from an account",
		`teller withdraw --account 7 --amount 250.50`)
}

func NewTransferCmd(svc *service.Service) *cobra.Command {
	return newMovementCmd(svc, constants.MoveTransfer, "Transfer money between accounts",
		`teller transfer --account 7 --to 9 --amount 100`)
}

func newMovementCmd(svc *service.Service, kind, short, example string) *cobra.Command {
	flags := &movementFlags{}

	cmd := &cobra.Command{
		Use:   kind,
		Short: short,
		Long: fmt.Sprintf(`%s.

Without flags you pick the customer and account interactively. The
balance shown afterwards is the one confirmed by the ledger.

Examples:
	# Interactive mode
	teller %s

	# Quick mode with flags
	%s`, short, kind, example),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &movementRunner{
				svc:   svc,
				kind:  kind,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().Int64VarP(&flags.Account, "account", "a", 0, "Account ID")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "m", "", "Amount (e.g., 500 or 250.50)")
	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation")
	if kind == constants.MoveTransfer {
		cmd.Flags().Int64Var(&flags.To, "to", 0, "Destination account ID")
	}

	return cmd
}

func (r *movementRunner) Run() error {
	if err := r.svc.Session.Require(); err != nil {
		return err
	}

	hasFlags := r.cmd.Flags().Changed("account") || r.cmd.Flags().Changed("amount")

	if hasFlags {
		return r.flagsMode()
	}
	return r.interactiveMode()
}

func (r *movementRunner) flagsMode() error {
	if r.flags.Account == 0 || r.flags.Amount == "" {
		return fmt.Errorf("when using flags, --account and --amount are both required")
	}
	if r.kind == constants.MoveTransfer && r.flags.To == 0 {
		return validation.ErrMissingDestination
	}

	amount, err := validation.ParseAmount(r.flags.Amount)
	if err != nil {
		return err
	}

	return Execute(r.cmd, r.svc, r.kind, r.flags.Account, r.flags.To, amount, r.flags.Yes)
}

func (r *movementRunner) interactiveMode() error {
	from, err := PickAccount(r.cmd, r.svc)
	if err != nil {
		return err
	}
	return Interactive(r.cmd, r.svc, r.kind, from)
}

// Execute confirms and performs one movement, then renders the outcome.
// to is only used for transfers.
func Execute(cmd *cobra.Command, svc *service.Service, kind string, from, to int64, amount decimal.Decimal, skipConfirm bool) error {
	currency := svc.Config.Defaults.Currency

	if !skipConfirm {
		question := fmt.Sprintf("%s %s on account %d?", kindTitle(kind), utils.FormatMoney(amount, currency), from)
		if kind == constants.MoveTransfer {
			question = fmt.Sprintf("Transfer %s from account %d to account %d?", utils.FormatMoney(amount, currency), from, to)
		}
		ok, err := ui.Confirm(question, true)
		if err != nil {
			return err
		}
		if !ok {
			pterm.Info.Println("Nothing was moved")
			return nil
		}
	}

	ctx := cmd.Context()
	refresh := svc.Dashboard.RefreshFunc()

	var res *service.MovementResult
	var err error
	switch kind {
	case constants.MoveDeposit:
		res, err = svc.Transaction.Deposit(ctx, from, amount, refresh)
	case constants.MoveWithdraw:
		res, err = svc.Transaction.Withdraw(ctx, from, amount, refresh)
	case constants.MoveTransfer:
		res, err = svc.Transaction.Transfer(ctx, from, to, amount, refresh)
	default:
		return fmt.Errorf("unknown movement %q", kind)
	}
	if err != nil {
		return err
	}

	return views.RenderMovementSummary(res, currency)
}

func kindTitle(kind string) string {
	switch kind {
	case constants.MoveDeposit:
		return "Deposit"
	case constants.MoveWithdraw:
		return "Withdraw"
	default:
		return "Transfer"
	}
}
