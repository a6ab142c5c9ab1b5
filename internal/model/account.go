package model

import "github.com/shopspring/decimal"

type Account struct {
	ID            int64           `json:"id"`
	CustomerID    int64           `json:"customer_id"`
	AccountNumber string          `json:"account_number"`
	Type          string          `json:"account_type"`
	Balance       decimal.Decimal `json:"balance"`
}

// AccountInput is the payload sent when opening a new account.
type AccountInput struct {
	CustomerID     int64
	Type           string
	InitialBalance decimal.Decimal
}
