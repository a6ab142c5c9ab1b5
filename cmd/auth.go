package cmd

import (
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type authFlags struct {
	Username string
	Password string
}

type authRunner struct {
	svc      *service.Service
	flags    *authFlags
	register bool
	cmd      *cobra.Command
}

func NewLoginCmd(svc *service.Service) *cobra.Command {
	return newAuthCmd(svc, false)
}

func NewRegisterCmd(svc *service.Service) *cobra.Command {
	return newAuthCmd(svc, true)
}

func newAuthCmd(svc *service.Service, register bool) *cobra.Command {
	flags := &authFlags{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the ledger",
		Long: `Log in with a staff username and password. The session is kept in the
local database until you log out.

Examples:
	teller login
	teller login -u teller01 -p secret`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &authRunner{
				svc:      svc,
				flags:    flags,
				register: register,
				cmd:      cmd,
			}
			return runner.Run()
		},
	}
	if register {
		cmd.Use = "register"
		cmd.Short = "Register a staff user"
		cmd.Long = `Create a staff user on the ledger and log in as that user.`
	}

	cmd.Flags().StringVarP(&flags.Username, "username", "u", "", "Staff username")
	cmd.Flags().StringVarP(&flags.Password, "password", "p", "", "Password (prompted when omitted)")

	return cmd
}

func (r *authRunner) Run() error {
	username, password := r.flags.Username, r.flags.Password

	if username == "" || password == "" {
		title := "Staff login"
		if r.register {
			title = "Register staff user"
		}
		var err error
		username, password, err = prompts.PromptCredentials(title)
		if err != nil {
			return err
		}
	}

	return authenticate(r.cmd, r.svc, username, password, r.register)
}

func authenticate(cmd *cobra.Command, svc *service.Service, username, password string, register bool) error {
	spinner, _ := pterm.DefaultSpinner.Start("Contacting ledger...")

	var err error
	if register {
		err = svc.Session.Register(cmd.Context(), username, password)
	} else {
		err = svc.Session.Login(cmd.Context(), username, password)
	}
	if err != nil {
		spinner.Fail("Authentication failed")
		return err
	}

	spinner.Success("Logged in as " + username)
	return nil
}

func NewLogoutCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.Session.Logout(); err != nil {
				return err
			}
			pterm.Success.Println("Logged out")
			return nil
		},
	}
}
