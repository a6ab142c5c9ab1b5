package service

import (
	"context"
	"fmt"

	"github.com/hance08/teller/internal/cache"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/validation"
	"github.com/shopspring/decimal"
)

type AccountService struct {
	ledger    Ledger
	cache     *cache.AccountCache
	followUps *followUps
}

func NewAccountService(l Ledger, c *cache.AccountCache, fu *followUps) *AccountService {
	return &AccountService{ledger: l, cache: c, followUps: fu}
}

// Create opens an account for customerID and caches the ledger's record.
func (s *AccountService) Create(ctx context.Context, customerID int64, accType string, initial decimal.Decimal, refresh RefreshFunc) (*model.Account, error) {
	if customerID <= 0 {
		return nil, validation.ErrInvalidID
	}
	accType, err := validation.NormalizeAccountType(accType)
	if err != nil {
		return nil, err
	}
	if initial.IsNegative() {
		return nil, validation.ErrNegativeBalance
	}

	acc, err := s.ledger.CreateAccount(ctx, model.AccountInput{
		CustomerID:     customerID,
		Type:           accType,
		InitialBalance: initial,
	})
	if err != nil {
		return nil, err
	}

	if acc.CustomerID == 0 {
		acc.CustomerID = customerID
	}
	s.cache.Put(*acc)

	if refresh != nil {
		s.followUps.Go(ctx, "create account", refresh)
	}
	return acc, nil
}

// History fetches the ledger history for accountID and caches it.
func (s *AccountService) History(ctx context.Context, accountID int64) ([]model.Transaction, error) {
	if accountID <= 0 {
		return nil, validation.ErrInvalidID
	}
	txs, err := s.ledger.Transactions(ctx, accountID)
	if err != nil {
		return nil, err
	}
	s.cache.PutHistory(accountID, txs)
	return txs, nil
}

// RefreshHistory is History without the result, for follow-up refreshes.
func (s *AccountService) RefreshHistory(ctx context.Context, accountID int64) error {
	if _, err := s.History(ctx, accountID); err != nil {
		return fmt.Errorf("refresh history of account %d: %w", accountID, err)
	}
	return nil
}

func (s *AccountService) Cached(accountID int64) (model.Account, bool) {
	return s.cache.Get(accountID)
}

func (s *AccountService) CachedHistory(accountID int64) ([]model.Transaction, bool) {
	return s.cache.History(accountID)
}
