package service

import (
	"context"
	"errors"
	"io"

	"github.com/hance08/teller/internal/cache"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// MovementResult is what the caller learns once the ledger confirmed a money
// movement and the cache was updated.
type MovementResult struct {
	Kind   string
	Amount decimal.Decimal

	// Updated holds the account records the ledger echoed back, already
	// written to the cache.
	Updated []model.Account

	// Involved lists every account whose history is refreshed afterwards.
	Involved []int64
}

// TransactionService performs deposits, withdrawals and transfers.
//
// Each operation runs in two phases. Phase one validates input, calls the
// ledger and writes the returned records to the cache; its outcome is the
// operation's outcome. Phase two runs detached: it refreshes the history of
// every involved account and then the caller's RefreshFunc. Phase two errors
// are logged and never reach the caller.
type TransactionService struct {
	ledger    Ledger
	cache     *cache.AccountCache
	accounts  *AccountService
	followUps *followUps
	locks     *accountLocks
	log       *logrus.Logger
}

func NewTransactionService(l Ledger, c *cache.AccountCache, accounts *AccountService, fu *followUps, log *logrus.Logger) *TransactionService {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &TransactionService{
		ledger:    l,
		cache:     c,
		accounts:  accounts,
		followUps: fu,
		locks:     newAccountLocks(),
		log:       log,
	}
}

func (s *TransactionService) Deposit(ctx context.Context, accountID int64, amount decimal.Decimal, refresh RefreshFunc) (*MovementResult, error) {
	return s.single(ctx, constants.MoveDeposit, accountID, amount, refresh, s.ledger.Deposit)
}

// Withdraw does not check the cached balance; overdraft policy belongs to
// the ledger.
func (s *TransactionService) Withdraw(ctx context.Context, accountID int64, amount decimal.Decimal, refresh RefreshFunc) (*MovementResult, error) {
	return s.single(ctx, constants.MoveWithdraw, accountID, amount, refresh, s.ledger.Withdraw)
}

type singleMove func(ctx context.Context, accountID int64, amount decimal.Decimal) (*model.Account, error)

func (s *TransactionService) single(ctx context.Context, kind string, accountID int64, amount decimal.Decimal, refresh RefreshFunc, call singleMove) (*MovementResult, error) {
	if accountID <= 0 {
		return nil, validation.ErrInvalidID
	}
	if err := validation.ValidateAmount(amount); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(accountID)
	acc, err := call(ctx, accountID, amount)
	if err != nil {
		unlock()
		return nil, err
	}
	s.cache.Put(*acc)
	unlock()

	s.log.WithFields(logrus.Fields{
		"op":         kind,
		"account_id": accountID,
		"amount":     amount.String(),
	}).Info("money movement confirmed")

	involved := []int64{accountID}
	s.scheduleFollowUp(ctx, kind, involved, refresh)

	return &MovementResult{
		Kind:     kind,
		Amount:   amount,
		Updated:  []model.Account{*acc},
		Involved: involved,
	}, nil
}

// Transfer moves amount from fromID to toID. Whichever sides the ledger
// echoes back update the cache; the other side keeps its cached record.
func (s *TransactionService) Transfer(ctx context.Context, fromID, toID int64, amount decimal.Decimal, refresh RefreshFunc) (*MovementResult, error) {
	if fromID <= 0 {
		return nil, validation.ErrInvalidID
	}
	if toID <= 0 {
		return nil, validation.ErrMissingDestination
	}
	if err := validation.ValidateAmount(amount); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(fromID, toID)
	res, err := s.ledger.Transfer(ctx, fromID, toID, amount)
	if err != nil {
		unlock()
		return nil, err
	}

	var updated []model.Account
	for _, acc := range []*model.Account{res.From, res.To} {
		if acc != nil {
			s.cache.Put(*acc)
			updated = append(updated, *acc)
		}
	}
	unlock()

	s.log.WithFields(logrus.Fields{
		"op":      constants.MoveTransfer,
		"from_id": fromID,
		"to_id":   toID,
		"amount":  amount.String(),
		"echoed":  len(updated),
	}).Info("money movement confirmed")

	involved := []int64{fromID}
	if toID != fromID {
		involved = append(involved, toID)
	}
	s.scheduleFollowUp(ctx, constants.MoveTransfer, involved, refresh)

	return &MovementResult{
		Kind:     constants.MoveTransfer,
		Amount:   amount,
		Updated:  updated,
		Involved: involved,
	}, nil
}

// Wait blocks until pending follow-up refreshes finish.
func (s *TransactionService) Wait() {
	s.followUps.Wait()
}

func (s *TransactionService) scheduleFollowUp(ctx context.Context, kind string, involved []int64, refresh RefreshFunc) {
	s.followUps.Go(ctx, kind, func(ctx context.Context) error {
		var g errgroup.Group
		for _, id := range involved {
			g.Go(func() error {
				return s.accounts.RefreshHistory(ctx, id)
			})
		}
		historyErr := g.Wait()

		var refreshErr error
		if refresh != nil {
			refreshErr = refresh(ctx)
		}
		return errors.Join(historyErr, refreshErr)
	})
}
