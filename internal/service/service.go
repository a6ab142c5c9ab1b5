package service

import (
	"context"

	"github.com/hance08/teller/internal/cache"
	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/ledger"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/store"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Ledger is the subset of the remote ledger client the services rely on.
type Ledger interface {
	Login(ctx context.Context, username, password string) (*model.Credentials, error)
	Register(ctx context.Context, username, password string) (*model.Credentials, error)

	ListCustomers(ctx context.Context) ([]model.Customer, error)
	CreateCustomer(ctx context.Context, in model.CustomerInput) (*model.Customer, error)
	CustomerAccounts(ctx context.Context, customerID int64) (*model.Customer, error)

	CreateAccount(ctx context.Context, in model.AccountInput) (*model.Account, error)
	Transactions(ctx context.Context, accountID int64) ([]model.Transaction, error)
	Deposit(ctx context.Context, accountID int64, amount decimal.Decimal) (*model.Account, error)
	Withdraw(ctx context.Context, accountID int64, amount decimal.Decimal) (*model.Account, error)
	Transfer(ctx context.Context, fromID, toID int64, amount decimal.Decimal) (*ledger.TransferResult, error)

	Stats(ctx context.Context) (map[string]any, error)
	RecentTransactions(ctx context.Context) (any, error)

	DailyReport(ctx context.Context) (*ledger.Artifact, error)
	SendDailyReport(ctx context.Context) (*ledger.Artifact, error)
}

var _ Ledger = (*ledger.Client)(nil)

// RefreshFunc is a best-effort dependent refresh, typically the dashboard's.
type RefreshFunc func(ctx context.Context) error

type Service struct {
	Session     *SessionService
	Customer    *CustomerService
	Account     *AccountService
	Transaction *TransactionService
	Dashboard   *DashboardService
	Report      *ReportService

	Cache  *cache.AccountCache
	Config *config.Config

	followUps *followUps
}

func NewService(client Ledger, repo store.Repository, accounts *cache.AccountCache, cfg *config.Config, log *logrus.Logger) *Service {
	fu := newFollowUps(log)
	accountSvc := NewAccountService(client, accounts, fu)

	return &Service{
		Session:     NewSessionService(client, repo, accounts),
		Customer:    NewCustomerService(client, accounts, fu),
		Account:     accountSvc,
		Transaction: NewTransactionService(client, accounts, accountSvc, fu, log),
		Dashboard:   NewDashboardService(client, log),
		Report:      NewReportService(client, repo, cfg.Reports.Dir, cfg.Reports.Filename, log),
		Cache:       accounts,
		Config:      cfg,
		followUps:   fu,
	}
}

// Wait blocks until every detached follow-up refresh has finished.
func (s *Service) Wait() {
	s.followUps.Wait()
}
