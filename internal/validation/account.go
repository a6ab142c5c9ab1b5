package validation

import (
	"strconv"
	"strings"

	"github.com/hance08/teller/internal/constants"
)

// NormalizeAccountType lowercases t and defaults it to savings.
func NormalizeAccountType(t string) (string, error) {
	t = strings.ToLower(strings.TrimSpace(t))
	if t == "" {
		return constants.AccountTypeSavings, nil
	}
	for _, known := range constants.AccountTypes {
		if t == known {
			return t, nil
		}
	}
	return "", ErrInvalidAccountType
}

// ParseID parses a customer or account identifier.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

func ValidateCredentials(username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return ErrEmptyCredentials
	}
	return nil
}
