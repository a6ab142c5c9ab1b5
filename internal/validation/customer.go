package validation

import (
	"fmt"
	"strings"

	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/model"
)

// ValidateCustomer checks the fields the ledger requires to register a
// customer.
func ValidateCustomer(in model.CustomerInput) error {
	if strings.TrimSpace(in.FirstName) == "" ||
		strings.TrimSpace(in.LastName) == "" ||
		strings.TrimSpace(in.NationalID) == "" ||
		strings.TrimSpace(in.Phone) == "" {
		return ErrMissingRequiredFields
	}

	for _, name := range []string{in.FirstName, in.LastName} {
		if len(name) > constants.MaxNameLen {
			return fmt.Errorf("name too long (max %d characters)", constants.MaxNameLen)
		}
	}

	if in.Email != "" && !strings.Contains(in.Email, "@") {
		return fmt.Errorf("invalid email address '%s'", in.Email)
	}

	return nil
}

// NormalizeDate rewrites dd/mm/yyyy into yyyy-mm-dd. Anything else is
// returned trimmed but unchanged.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "/") {
		return s
	}

	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return s
	}
	day, month, year := parts[0], parts[1], parts[2]
	return fmt.Sprintf("%s-%s-%s", year, padTwo(month), padTwo(day))
}

// NormalizeCustomer trims every field and normalizes the date of birth.
func NormalizeCustomer(in model.CustomerInput) model.CustomerInput {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.NationalID = strings.TrimSpace(in.NationalID)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	in.Address = strings.TrimSpace(in.Address)
	in.DateOfBirth = NormalizeDate(in.DateOfBirth)
	return in
}

func padTwo(s string) string {
	s = strings.TrimSpace(s)
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
