package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a ledger entry as returned by the remote ledger. The console
// never creates these locally.
type Transaction struct {
	ID          int64
	AccountID   int64
	Type        string
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
}

// FeedItem is one row of the dashboard's recent-transaction feed.
type FeedItem struct {
	Transaction
	FirstName     string
	LastName      string
	AccountNumber string
}

type DashboardStats struct {
	TotalCustomers int64
	TotalAccounts  int64
	TotalBalance   decimal.Decimal
}

func (s DashboardStats) Equal(o DashboardStats) bool {
	return s.TotalCustomers == o.TotalCustomers &&
		s.TotalAccounts == o.TotalAccounts &&
		s.TotalBalance.Equal(o.TotalBalance)
}

type Credentials struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
