package customer

import (
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type createFlags struct {
	FirstName   string
	LastName    string
	NationalID  string
	Phone       string
	Email       string
	Address     string
	DateOfBirth string
	KYC         bool
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
		Short: "Register a new customer",
		Long: `Register a new customer with the ledger.

First name, last name, national ID and phone are required. The date of
birth accepts dd/mm/yyyy or yyyy-mm-dd.

Examples:
	# Interactive mode
	teller customer create

	# Quick mode with flags
	teller customer create --first-name Chikondi --last-name Banda --national-id MW123 --phone 0999000111`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &CreateCommandRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVar(&flags.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&flags.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&flags.NationalID, "national-id", "", "National ID")
	cmd.Flags().StringVar(&flags.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&flags.Email, "email", "", "Email address (optional)")
	cmd.Flags().StringVar(&flags.Address, "address", "", "Address (optional)")
	cmd.Flags().StringVar(&flags.DateOfBirth, "dob", "", "Date of birth (optional)")
	cmd.Flags().BoolVar(&flags.KYC, "kyc", false, "Mark KYC as verified")

	return cmd
}

func (r *CreateCommandRunner) Run() error {
	var in model.CustomerInput

	hasFlags := r.cmd.Flags().Changed("first-name") || r.cmd.Flags().Changed("last-name") ||
		r.cmd.Flags().Changed("national-id") || r.cmd.Flags().Changed("phone")

	if hasFlags {
		in = model.CustomerInput{
			FirstName:   r.flags.FirstName,
			LastName:    r.flags.LastName,
			NationalID:  r.flags.NationalID,
			Phone:       r.flags.Phone,
			Email:       r.flags.Email,
			Address:     r.flags.Address,
			DateOfBirth: r.flags.DateOfBirth,
			KYCVerified: r.flags.KYC,
		}
	} else {
		var err error
		in, err = prompts.PromptCustomer()
		if err != nil {
			return err
		}
	}

	return Create(r.cmd, r.svc, in)
}

// Create registers in and reports the new customer's id.
func Create(cmd *cobra.Command, svc *service.Service, in model.CustomerInput) error {
	c, err := svc.Customer.Create(cmd.Context(), in, svc.Dashboard.RefreshFunc())
	if err != nil {
		return err
	}
	pterm.Success.Printf("Customer %s created successfully! (ID: %d)\n", c.FullName(), c.ID)
	return nil
}
