package prompts

import "github.com/charmbracelet/huh"

// Console actions
const (
	ActionLogin     = "login"
	ActionRegister  = "register"
	ActionDashboard = "dashboard"
	ActionCustomers = "customers"
	ActionNewCust   = "new-customer"
	ActionAccounts  = "accounts"
	ActionReport    = "report"
	ActionSendHR    = "report-send"
	ActionLogout    = "logout"
	ActionQuit      = "quit"
)

// PromptConsoleAction shows the logged-out or logged-in main menu.
func PromptConsoleAction(loggedIn bool) (string, error) {
	var opts []huh.Option[string]
	if loggedIn {
		opts = []huh.Option[string]{
			huh.NewOption("Dashboard", ActionDashboard),
			huh.NewOption("Customers", ActionCustomers),
			huh.NewOption("New customer", ActionNewCust),
			huh.NewOption("Customer accounts", ActionAccounts),
			huh.NewOption("Download daily report", ActionReport),
			huh.NewOption("Send daily report to HR", ActionSendHR),
			huh.NewOption("Logout", ActionLogout),
			huh.NewOption("Quit", ActionQuit),
		}
	} else {
		opts = []huh.Option[string]{
			huh.NewOption("Login", ActionLogin),
			huh.NewOption("Register staff user", ActionRegister),
			huh.NewOption("Quit", ActionQuit),
		}
	}

	selected := opts[0].Value
	err := huh.NewSelect[string]().
		Title("What would you like to do?").
		Options(opts...).
		Value(&selected).
		Run()
	return selected, err
}

// Account screen actions
const (
	AccountDeposit  = "deposit"
	AccountWithdraw = "withdraw"
	AccountTransfer = "transfer"
	AccountHistory  = "history"
	AccountOpen     = "open"
	AccountBack     = "back"
)

// PromptAccountAction shows what can be done on a customer's accounts.
func PromptAccountAction(hasAccounts bool) (string, error) {
	opts := []huh.Option[string]{}
	if hasAccounts {
		opts = append(opts,
			huh.NewOption("Deposit", AccountDeposit),
			huh.NewOption("Withdraw", AccountWithdraw),
			huh.NewOption("Transfer", AccountTransfer),
			huh.NewOption("Transaction history", AccountHistory),
		)
	}
	opts = append(opts,
		huh.NewOption("Open new account", AccountOpen),
		huh.NewOption("Back", AccountBack),
	)

	selected := opts[0].Value
	err := huh.NewSelect[string]().
		Title("Account action:").
		Options(opts...).
		Value(&selected).
		Run()
	return selected, err
}
