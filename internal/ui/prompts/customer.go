package prompts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/validation"
)

// PromptCustomer collects a new customer's details. Required fields are
// checked inline; the date of birth accepts dd/mm/yyyy or yyyy-mm-dd.
func PromptCustomer() (model.CustomerInput, error) {
	var in model.CustomerInput

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("First name:").Value(&in.FirstName).Validate(required("first name")),
			huh.NewInput().Title("Last name:").Value(&in.LastName).Validate(required("last name")),
			huh.NewInput().Title("National ID:").Value(&in.NationalID).Validate(required("national ID")),
			huh.NewInput().Title("Phone:").Value(&in.Phone).Validate(required("phone")),
		).Title("Customer"),
		huh.NewGroup(
			huh.NewInput().Title("Email:").Description("Optional").Value(&in.Email).Validate(optionalEmail),
			huh.NewInput().Title("Address:").Description("Optional").Value(&in.Address),
			huh.NewInput().Title("Date of birth:").Description("dd/mm/yyyy or yyyy-mm-dd, optional").Value(&in.DateOfBirth),
			huh.NewConfirm().Title("KYC verified?").Affirmative("Yes").Negative("No").Value(&in.KYCVerified),
		).Title("Details"),
	)

	if err := form.Run(); err != nil {
		return model.CustomerInput{}, err
	}
	return validation.NormalizeCustomer(in), nil
}

// PromptCustomerSelect lets the operator pick a customer by name.
func PromptCustomerSelect(customers []model.Customer) (int64, error) {
	if len(customers) == 0 {
		return 0, fmt.Errorf("no customers registered yet")
	}

	var opts []huh.Option[int64]
	for _, c := range customers {
		label := fmt.Sprintf("%s (ID %d, %s)", c.FullName(), c.ID, c.NationalID)
		opts = append(opts, huh.NewOption(label, c.ID))
	}

	selected := customers[0].ID
	err := huh.NewSelect[int64]().
		Title("Customer:").
		Options(opts...).
		Value(&selected).
		Height(10).
		Run()
	return selected, err
}

func optionalEmail(s string) error {
	s = strings.TrimSpace(s)
	if s != "" && !strings.Contains(s, "@") {
		return fmt.Errorf("invalid email address")
	}
	return nil
}
