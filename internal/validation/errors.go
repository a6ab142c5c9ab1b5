package validation

import "errors"

var (
	ErrInvalidAmount         = errors.New("amount must be a positive number")
	ErrMissingDestination    = errors.New("destination account is required")
	ErrMissingRequiredFields = errors.New("please fill in all required fields")
	ErrInvalidAccountType    = errors.New("account type must be savings or checking")
	ErrNegativeBalance       = errors.New("initial balance can't be negative")
	ErrInvalidID             = errors.New("id must be a positive integer")
	ErrEmptyCredentials      = errors.New("username and password are required")
)
