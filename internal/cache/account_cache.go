package cache

import (
	"sort"
	"sync"

	"github.com/hance08/teller/internal/model"
)

// AccountCache holds the last account record and transaction history the
// ledger confirmed during this session. Writes are last-write-wins; the
// ledger stays the authority.
type AccountCache struct {
	mu       sync.RWMutex
	accounts map[int64]model.Account
	history  map[int64][]model.Transaction
}

func NewAccountCache() *AccountCache {
	return &AccountCache{
		accounts: make(map[int64]model.Account),
		history:  make(map[int64][]model.Transaction),
	}
}

// Put replaces the cached record for acc.ID.
func (c *AccountCache) Put(acc model.Account) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accounts[acc.ID] = acc
}

// PutAll replaces every record in accs, leaving other entries untouched.
func (c *AccountCache) PutAll(accs []model.Account) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, acc := range accs {
		c.accounts[acc.ID] = acc
	}
}

func (c *AccountCache) Get(id int64) (model.Account, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	acc, ok := c.accounts[id]
	return acc, ok
}

// Accounts returns a copy of every cached account ordered by id.
func (c *AccountCache) Accounts() []model.Account {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.Account, 0, len(c.accounts))
	for _, acc := range c.accounts {
		out = append(out, acc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (c *AccountCache) ForCustomer(customerID int64) []model.Account {
	var out []model.Account
	for _, acc := range c.Accounts() {
		if acc.CustomerID == customerID {
			out = append(out, acc)
		}
	}
	return out
}

func (c *AccountCache) PutHistory(accountID int64, txs []model.Transaction) {
	cp := make([]model.Transaction, len(txs))
	copy(cp, txs)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.history[accountID] = cp
}

func (c *AccountCache) History(accountID int64) ([]model.Transaction, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	txs, ok := c.history[accountID]
	if !ok {
		return nil, false
	}
	cp := make([]model.Transaction, len(txs))
	copy(cp, txs)
	return cp, true
}

func (c *AccountCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.accounts)
}

// Reset drops everything, e.g. on logout.
func (c *AccountCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accounts = make(map[int64]model.Account)
	c.history = make(map[int64][]model.Transaction)
}
