package service

import (
	"context"

	"github.com/hance08/teller/internal/cache"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/validation"
)

type CustomerService struct {
	ledger    Ledger
	cache     *cache.AccountCache
	followUps *followUps
}

func NewCustomerService(l Ledger, c *cache.AccountCache, fu *followUps) *CustomerService {
	return &CustomerService{ledger: l, cache: c, followUps: fu}
}

func (s *CustomerService) List(ctx context.Context) ([]model.Customer, error) {
	return s.ledger.ListCustomers(ctx)
}

// Create validates and registers a customer. On success refresh, when
// given, runs detached.
func (s *CustomerService) Create(ctx context.Context, in model.CustomerInput, refresh RefreshFunc) (*model.Customer, error) {
	in = validation.NormalizeCustomer(in)
	if err := validation.ValidateCustomer(in); err != nil {
		return nil, err
	}

	customer, err := s.ledger.CreateCustomer(ctx, in)
	if err != nil {
		return nil, err
	}

	if refresh != nil {
		s.followUps.Go(ctx, "create customer", refresh)
	}
	return customer, nil
}

// Accounts loads a customer's accounts and caches every record returned.
func (s *CustomerService) Accounts(ctx context.Context, customerID int64) (*model.Customer, error) {
	customer, err := s.ledger.CustomerAccounts(ctx, customerID)
	if err != nil {
		return nil, err
	}

	for i := range customer.Accounts {
		if customer.Accounts[i].CustomerID == 0 {
			customer.Accounts[i].CustomerID = customer.ID
		}
	}
	s.cache.PutAll(customer.Accounts)

	return customer, nil
}
