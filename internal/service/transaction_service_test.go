package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/hance08/teller/internal/ledger"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func seed(svc *Service, id int64, balance int64) {
	svc.Cache.Put(model.Account{ID: id, CustomerID: 1, Balance: decimal.NewFromInt(balance)})
}

func cachedBalance(t *testing.T, svc *Service, id int64) decimal.Decimal {
	t.Helper()
	acc, ok := svc.Cache.Get(id)
	if !ok {
		t.Fatalf("account %d not cached", id)
	}
	return acc.Balance
}

func TestDepositUpdatesCacheAndRefreshesHistory(t *testing.T) {
	fake, client := newFakeLedger(t)
	fake.setBalance(7, 1000)
	svc, _ := newTestService(t, client)
	seed(svc, 7, 1000)

	var refreshed atomic.Int32
	res, err := svc.Transaction.Deposit(context.Background(), 7, decimal.NewFromInt(500), func(ctx context.Context) error {
		refreshed.Add(1)
		return nil
	})
	if err != nil {
		t.Fatalf("Deposit: %v", err)
	}

	// the cache is updated before the caller sees success
	if got := cachedBalance(t, svc, 7); !got.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("cached balance = %s, want 1500", got)
	}
	if len(res.Updated) != 1 || res.Updated[0].ID != 7 {
		t.Fatalf("Updated = %+v", res.Updated)
	}

	svc.Wait()
	if n := fake.count("transactions:7"); n != 1 {
		t.Fatalf("history fetches for 7 = %d, want 1", n)
	}
	if _, ok := svc.Cache.History(7); !ok {
		t.Fatal("history for 7 not cached")
	}
	if refreshed.Load() != 1 {
		t.Fatalf("refresh callback ran %d times, want 1", refreshed.Load())
	}
}

func TestWithdrawDecrementsBalance(t *testing.T) {
	fake, client := newFakeLedger(t)
	fake.setBalance(7, 1000)
	svc, _ := newTestService(t, client)
	seed(svc, 7, 1000)

	if _, err := svc.Transaction.Withdraw(context.Background(), 7, decimal.RequireFromString("250.50"), nil); err != nil {
		t.Fatalf("Withdraw: %v", err)
	}
	svc.Wait()

	if got := cachedBalance(t, svc, 7); !got.Equal(decimal.RequireFromString("749.50")) {
		t.Fatalf("cached balance = %s, want 749.50", got)
	}
}

func TestInvalidMovementsIssueNoRequests(t *testing.T) {
	fake, client := newFakeLedger(t)
	fake.setBalance(7, 1000)
	svc, _ := newTestService(t, client)
	seed(svc, 7, 1000)
	ctx := context.Background()

	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{"zero deposit", func() error {
			_, err := svc.Transaction.Deposit(ctx, 7, decimal.Zero, nil)
			return err
		}, validation.ErrInvalidAmount},
		{"negative withdraw", func() error {
			_, err := svc.Transaction.Withdraw(ctx, 7, decimal.NewFromInt(-5), nil)
			return err
		}, validation.ErrInvalidAmount},
		{"zero transfer", func() error {
			_, err := svc.Transaction.Transfer(ctx, 7, 9, decimal.Zero, nil)
			return err
		}, validation.ErrInvalidAmount},
		{"transfer without destination", func() error {
			_, err := svc.Transaction.Transfer(ctx, 7, 0, decimal.NewFromInt(10), nil)
			return err
		}, validation.ErrMissingDestination},
		{"deposit without account", func() error {
			_, err := svc.Transaction.Deposit(ctx, 0, decimal.NewFromInt(10), nil)
			return err
		}, validation.ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run(); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}

	svc.Wait()
	if n := fake.totalCalls(); n != 0 {
		t.Fatalf("ledger received %d requests, want 0", n)
	}
	if got := cachedBalance(t, svc, 7); !got.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("cached balance = %s, want 1000", got)
	}
}

func TestTransferPartialEcho(t *testing.T) {
	fake, client := newFakeLedger(t)
	fake.setBalance(7, 1000)
	fake.setBalance(9, 200)
	fake.transferEcho = "from"
	svc, _ := newTestService(t, client)
	seed(svc, 7, 1000)
	seed(svc, 9, 200)

	res, err := svc.Transaction.Transfer(context.Background(), 7, 9, decimal.NewFromInt(100), nil)
	if err != nil {
		t.Fatalf("Transfer: %v", err)
	}
	svc.Wait()

	if got := cachedBalance(t, svc, 7); !got.Equal(decimal.NewFromInt(900)) {
		t.Fatalf("cached balance of 7 = %s, want 900", got)
	}
	// not echoed, so the stale record stays
	if got := cachedBalance(t, svc, 9); !got.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("cached balance of 9 = %s, want 200", got)
	}
	if len(res.Involved) != 2 {
		t.Fatalf("Involved = %v, want both accounts", res.Involved)
	}
	for _, key := range []string{"transactions:7", "transactions:9"} {
		if n := fake.count(key); n != 1 {
			t.Errorf("%s fetched %d times, want 1", key, n)
		}
	}
}

func TestTransferEchoingBothSides(t *testing.T) {
	fake, client := newFakeLedger(t)
	fake.setBalance(7, 1000)
	fake.setBalance(9, 200)
	svc, _ := newTestService(t, client)

	if _, err := svc.Transaction.Transfer(context.Background(), 7, 9, decimal.NewFromInt(100), nil); err != nil {
		t.Fatalf("Transfer: %v", err)
	}
	svc.Wait()

	if got := cachedBalance(t, svc, 7); !got.Equal(decimal.NewFromInt(900)) {
		t.Errorf("cached balance of 7 = %s, want 900", got)
	}
	if got := cachedBalance(t, svc, 9); !got.Equal(decimal.NewFromInt(300)) {
		t.Errorf("cached balance of 9 = %s, want 300", got)
	}
}

func TestTransferWithoutEchoIsRejected(t *testing.T) {
	fake, client := newFakeLedger(t)
	fake.setBalance(7, 1000)
	fake.setBalance(9, 200)
	fake.transferEcho = "none"
	svc, _ := newTestService(t, client)
	seed(svc, 7, 1000)

	_, err := svc.Transaction.Transfer(context.Background(), 7, 9, decimal.NewFromInt(100), nil)
	if !ledger.IsRejection(err) {
		t.Fatalf("err = %v, want rejection", err)
	}
	svc.Wait()
	if n := fake.count("transactions:7"); n != 0 {
		t.Fatalf("history fetched %d times after a rejection", n)
	}
}

func TestRejectedMovementLeavesCacheUntouched(t *testing.T) {
	fake, client := newFakeLedger(t)
	fake.setBalance(7, 100)
	svc, _ := newTestService(t, client)
	seed(svc, 7, 100)

	var refreshed atomic.Bool
	_, err := svc.Transaction.Withdraw(context.Background(), 7, decimal.NewFromInt(500), func(ctx context.Context) error {
		refreshed.Store(true)
		return nil
	})
	var rej *ledger.RejectionError
	if !errors.As(err, &rej) {
		t.Fatalf("err = %v, want *RejectionError", err)
	}
	if rej.Message != "Insufficient funds" {
		t.Fatalf("Message = %q", rej.Message)
	}

	svc.Wait()
	if got := cachedBalance(t, svc, 7); !got.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("cached balance = %s, want 100", got)
	}
	if refreshed.Load() {
		t.Fatal("refresh ran after a failed movement")
	}
	if n := fake.count("transactions:7"); n != 0 {
		t.Fatalf("history fetched %d times after a failure", n)
	}
}

func TestTransportFaultLeavesCacheUntouched(t *testing.T) {
	svc, _ := newTestService(t, ledger.NewClient("http://127.0.0.1:1", 0, nil, nil))
	seed(svc, 7, 1000)

	_, err := svc.Transaction.Deposit(context.Background(), 7, decimal.NewFromInt(500), nil)
	if !ledger.IsTransport(err) {
		t.Fatalf("err = %v, want transport error", err)
	}
	if got := cachedBalance(t, svc, 7); !got.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("cached balance = %s, want 1000", got)
	}
}

func TestFailingRefreshDoesNotFailMovement(t *testing.T) {
	tests := []struct {
		name      string
		refresh   RefreshFunc
		wantLevel logrus.Level
		wantMsg   string
		wantField string
		wantValue string
	}{
		{
			name:      "error",
			refresh:   func(ctx context.Context) error { return errors.New("dashboard down") },
			wantLevel: logrus.WarnLevel,
			wantMsg:   "follow-up refresh failed",
			wantField: logrus.ErrorKey,
			wantValue: "dashboard down",
		},
		{
			name:      "panic",
			refresh:   func(ctx context.Context) error { panic("dashboard exploded") },
			wantLevel: logrus.ErrorLevel,
			wantMsg:   "follow-up refresh panicked",
			wantField: "panic",
			wantValue: "dashboard exploded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake, client := newFakeLedger(t)
			fake.setBalance(7, 1000)
			svc, _, hook := newLoggedTestService(t, client)

			res, err := svc.Transaction.Deposit(context.Background(), 7, decimal.NewFromInt(1), tt.refresh)
			if err != nil {
				t.Fatalf("Deposit: %v", err)
			}
			svc.Wait()

			if res.Kind != "deposit" {
				t.Fatalf("Kind = %q", res.Kind)
			}
			if got := cachedBalance(t, svc, 7); !got.Equal(decimal.NewFromInt(1001)) {
				t.Fatalf("cached balance = %s, want 1001", got)
			}

			entry := findEntry(hook, tt.wantLevel, tt.wantMsg)
			if entry == nil {
				t.Fatalf("no %s entry %q logged", tt.wantLevel, tt.wantMsg)
			}
			if got := fmt.Sprint(entry.Data[tt.wantField]); !strings.Contains(got, tt.wantValue) || entry.Data["op"] != "deposit" {
				t.Fatalf("entry fields = %v", entry.Data)
			}
		})
	}
}

func TestRefreshSeesUpdatedCache(t *testing.T) {
	fake, client := newFakeLedger(t)
	fake.setBalance(7, 1000)
	svc, _ := newTestService(t, client)

	var seen decimal.Decimal
	_, err := svc.Transaction.Deposit(context.Background(), 7, decimal.NewFromInt(500), func(ctx context.Context) error {
		acc, _ := svc.Cache.Get(7)
		seen = acc.Balance
		return nil
	})
	if err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	svc.Wait()

	if !seen.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("refresh saw balance %s, want 1500", seen)
	}
}

func TestConcurrentMovementsKeepLatestBalance(t *testing.T) {
	fake, client := newFakeLedger(t)
	fake.setBalance(7, 1000)
	fake.setBalance(9, 1000)
	svc, _ := newTestService(t, client)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := svc.Transaction.Deposit(ctx, 7, decimal.NewFromInt(10), nil); err != nil {
				t.Errorf("Deposit: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := svc.Transaction.Transfer(ctx, 9, 7, decimal.NewFromInt(5), nil); err != nil {
				t.Errorf("Transfer: %v", err)
			}
		}()
	}
	wg.Wait()
	svc.Wait()

	if got := cachedBalance(t, svc, 7); !got.Equal(decimal.NewFromInt(1150)) {
		t.Fatalf("cached balance of 7 = %s, want 1150", got)
	}
	if got := cachedBalance(t, svc, 9); !got.Equal(decimal.NewFromInt(950)) {
		t.Fatalf("cached balance of 9 = %s, want 950", got)
	}
}
