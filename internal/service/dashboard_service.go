package service

import (
	"context"
	"io"
	"sync"

	"github.com/hance08/teller/internal/ledger"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/utils"
	"github.com/sirupsen/logrus"
)

// Snapshot is one self-consistent view of the dashboard.
type Snapshot struct {
	Stats  model.DashboardStats
	Recent []model.FeedItem
}

func (s Snapshot) Equal(o Snapshot) bool {
	if !s.Stats.Equal(o.Stats) || len(s.Recent) != len(o.Recent) {
		return false
	}
	for i := range s.Recent {
		a, b := s.Recent[i], o.Recent[i]
		if a.ID != b.ID || a.Type != b.Type || !a.Amount.Equal(b.Amount) ||
			a.AccountNumber != b.AccountNumber || !a.CreatedAt.Equal(b.CreatedAt) {
			return false
		}
	}
	return true
}

// DashboardService aggregates statistics and the recent feed. Refresh never
// fails: unavailable data degrades to zero values or an empty feed.
type DashboardService struct {
	ledger Ledger
	log    *logrus.Logger

	refreshMu sync.Mutex

	mu      sync.RWMutex
	current Snapshot
	subs    map[int]func(Snapshot)
	nextSub int
}

func NewDashboardService(l Ledger, log *logrus.Logger) *DashboardService {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &DashboardService{
		ledger:  l,
		log:     log,
		current: Snapshot{Recent: []model.FeedItem{}},
		subs:    make(map[int]func(Snapshot)),
	}
}

func (s *DashboardService) Refresh(ctx context.Context) Snapshot {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	next := Snapshot{Stats: s.Current().Stats, Recent: []model.FeedItem{}}

	raw, err := s.ledger.Stats(ctx)
	if err != nil {
		// keep the statistics already held
		s.log.WithError(err).Warn("dashboard statistics unavailable")
		return s.publish(next)
	}
	next.Stats = CoerceStats(raw)

	payload, err := s.ledger.RecentTransactions(ctx)
	if err != nil {
		s.log.WithError(err).Warn("recent transactions unavailable")
		return s.publish(next)
	}

	if items, ok := ledger.FeedItems(payload); ok {
		next.Recent = items
	} else {
		s.log.Debug("recent transactions payload is not a list")
	}

	return s.publish(next)
}

// RefreshFunc adapts Refresh for callers that schedule a dependent refresh.
func (s *DashboardService) RefreshFunc() RefreshFunc {
	return func(ctx context.Context) error {
		s.Refresh(ctx)
		return nil
	}
}

func (s *DashboardService) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Subscribe registers fn to receive every published snapshot.
func (s *DashboardService) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *DashboardService) publish(snap Snapshot) Snapshot {
	s.mu.Lock()
	s.current = snap
	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
	return snap
}

// CoerceStats normalizes a statistics payload field by field.
func CoerceStats(raw map[string]any) model.DashboardStats {
	return model.DashboardStats{
		TotalCustomers: utils.CoerceCount(raw["total_customers"]),
		TotalAccounts:  utils.CoerceCount(raw["total_accounts"]),
		TotalBalance:   utils.Coerce(raw["total_balance"]),
	}
}
