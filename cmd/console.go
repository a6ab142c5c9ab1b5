package cmd

import (
	"errors"
	"sync/atomic"

	"github.com/hance08/teller/cmd/account"
	"github.com/hance08/teller/cmd/customer"
	"github.com/hance08/teller/cmd/transaction"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/errhandler"
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui"
	"github.com/hance08/teller/internal/ui/prompts"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type consoleRunner struct {
	svc *service.Service
	cmd *cobra.Command

	// set when a background refresh published a new dashboard
	updated atomic.Bool
}

func NewConsoleCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Start the interactive staff console",
		Long: `Start the interactive staff console. Logged out, it offers login and
registration; logged in, it opens on the dashboard.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &consoleRunner{
				svc: svc,
				cmd: cmd,
			}
			return runner.Run()
		},
	}
}

func (r *consoleRunner) Run() error {
	unsubscribe := r.svc.Dashboard.Subscribe(func(service.Snapshot) {
		r.updated.Store(true)
	})
	defer unsubscribe()

	ui.PrintL1Title("Teller Console")

	if r.svc.Session.IsLoggedIn() {
		r.report(r.showDashboard())
	}

	for {
		loggedIn := r.svc.Session.IsLoggedIn()
		if loggedIn && r.updated.Swap(false) {
			pterm.Info.Println("Dashboard figures were refreshed, choose Dashboard to view them")
		}

		action, err := prompts.PromptConsoleAction(loggedIn)
		if err != nil {
			if errhandler.IsCancelled(err) {
				return nil
			}
			return err
		}
		if action == prompts.ActionQuit {
			return nil
		}

		r.report(r.dispatch(action))
		ui.Separator()
	}
}

func (r *consoleRunner) dispatch(action string) error {
	switch action {
	case prompts.ActionLogin, prompts.ActionRegister:
		register := action == prompts.ActionRegister
		title := "Staff login"
		if register {
			title = "Register staff user"
		}
		username, password, err := prompts.PromptCredentials(title)
		if err != nil {
			return err
		}
		if err := authenticate(r.cmd, r.svc, username, password, register); err != nil {
			return err
		}
		return r.showDashboard()

	case prompts.ActionDashboard:
		return r.showDashboard()

	case prompts.ActionCustomers:
		customers, err := r.svc.Customer.List(r.cmd.Context())
		if err != nil {
			return err
		}
		return views.RenderCustomerList(customers)

	case prompts.ActionNewCust:
		in, err := prompts.PromptCustomer()
		if err != nil {
			return err
		}
		return customer.Create(r.cmd, r.svc, in)

	case prompts.ActionAccounts:
		customerID, err := customer.PickCustomer(r.cmd, r.svc)
		if err != nil {
			return err
		}
		return r.accountScreen(customerID)

	case prompts.ActionReport:
		runner := &reportRunner{svc: r.svc, flags: &reportFlags{}, cmd: r.cmd}
		return runner.Download()

	case prompts.ActionSendHR:
		runner := &reportRunner{svc: r.svc, flags: &reportFlags{}, cmd: r.cmd}
		return runner.Send()

	case prompts.ActionLogout:
		// let pending refreshes land before the cache is dropped
		r.svc.Wait()
		if err := r.svc.Session.Logout(); err != nil {
			return err
		}
		r.updated.Store(false)
		pterm.Success.Println("Logged out")
		return nil
	}

	return errors.New("unknown action " + action)
}

func (r *consoleRunner) showDashboard() error {
	snap := r.svc.Dashboard.Refresh(r.cmd.Context())
	r.updated.Store(false)
	return views.RenderDashboard(snap, r.svc.Config.Defaults.Currency)
}

// accountScreen loops over one customer's accounts until the operator goes
// back.
func (r *consoleRunner) accountScreen(customerID int64) error {
	currency := r.svc.Config.Defaults.Currency

	for {
		c, err := r.svc.Customer.Accounts(r.cmd.Context(), customerID)
		if err != nil {
			return err
		}
		if err := views.RenderCustomerDetail(c, currency); err != nil {
			return err
		}

		action, err := prompts.PromptAccountAction(len(c.Accounts) > 0)
		if err != nil {
			return err
		}

		switch action {
		case prompts.AccountBack:
			return nil
		case prompts.AccountOpen:
			r.report(account.OpenInteractive(r.cmd, r.svc, customerID))
		case prompts.AccountHistory:
			id, err := prompts.PromptAccountSelect("Account:", c.Accounts, currency)
			if err != nil {
				r.report(err)
				continue
			}
			r.report(account.ShowHistory(r.cmd, r.svc, id, constants.DefaultLimit))
		case prompts.AccountDeposit, prompts.AccountWithdraw, prompts.AccountTransfer:
			id, err := prompts.PromptAccountSelect("Account:", c.Accounts, currency)
			if err != nil {
				r.report(err)
				continue
			}
			r.report(transaction.Interactive(r.cmd, r.svc, action, id))
		}
		ui.Separator()
	}
}

// report prints err without leaving the console.
func (r *consoleRunner) report(err error) {
	if err == nil {
		return
	}
	if errhandler.IsCancelled(err) {
		pterm.Warning.Println("Operation Cancelled")
		return
	}
	pterm.Error.Println(errhandler.Message(err))
}
