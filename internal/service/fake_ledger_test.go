package service

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/hance08/teller/internal/cache"
	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/ledger"
	"github.com/hance08/teller/internal/store"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// fakeLedger is an in-memory ledger served over HTTP. It applies deposits,
// withdrawals and transfers to its own balances and counts every call.
type fakeLedger struct {
	mu       sync.Mutex
	balances map[int64]decimal.Decimal
	calls    map[string]int

	stats        any
	recent       any
	breakStats   bool
	breakRecent  bool
	transferEcho string // "both", "from", "to" or "none"
	reportBody   string
	reportStatus int
}

func newFakeLedger(t *testing.T) (*fakeLedger, *ledger.Client) {
	t.Helper()

	f := &fakeLedger{
		balances:     make(map[int64]decimal.Decimal),
		calls:        make(map[string]int),
		stats:        map[string]any{"total_customers": 3, "total_accounts": 5, "total_balance": "12500.50"},
		recent:       []any{},
		transferEcho: "both",
		reportBody:   "%PDF-1.4 daily",
		reportStatus: http.StatusOK,
	}

	r := mux.NewRouter()
	r.HandleFunc("/auth/login", f.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/auth/register", f.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/customers", f.handleListCustomers).Methods(http.MethodGet)
	r.HandleFunc("/customers", f.handleCreateCustomer).Methods(http.MethodPost)
	r.HandleFunc("/customers/{id}/accounts", f.handleCustomerAccounts).Methods(http.MethodGet)
	r.HandleFunc("/accounts", f.handleCreateAccount).Methods(http.MethodPost)
	r.HandleFunc("/accounts/recent/all", f.handleRecent).Methods(http.MethodGet)
	r.HandleFunc("/accounts/{id}/transactions", f.handleTransactions).Methods(http.MethodGet)
	r.HandleFunc("/accounts/{id}/deposit", f.handleMove(1)).Methods(http.MethodPost)
	r.HandleFunc("/accounts/{id}/withdraw", f.handleMove(-1)).Methods(http.MethodPost)
	r.HandleFunc("/accounts/{from}/transfer/{to}", f.handleTransfer).Methods(http.MethodPost)
	r.HandleFunc("/stats", f.handleStats).Methods(http.MethodGet)
	r.HandleFunc("/reports/daily", f.handleReport("report")).Methods(http.MethodGet)
	r.HandleFunc("/reports/daily/send", f.handleReport("report-send")).Methods(http.MethodGet)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return f, ledger.NewClient(srv.URL, 5*time.Second, nil, nil)
}

func (f *fakeLedger) setBalance(id int64, balance int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.balances[id] = decimal.NewFromInt(balance)
}

func (f *fakeLedger) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

func (f *fakeLedger) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeLedger) hit(key string) {
	f.mu.Lock()
	f.calls[key]++
	f.mu.Unlock()
}

func (f *fakeLedger) accountJSON(id int64) map[string]any {
	return map[string]any{
		"id":             id,
		"customer_id":    1,
		"account_number": fmt.Sprintf("ACC-%03d", id),
		"account_type":   "savings",
		"balance":        f.balances[id].String(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// dropConnection makes the client observe a transport fault.
func dropConnection(w http.ResponseWriter) {
	hj, ok := w.(http.Hijacker)
	if !ok {
		panic("response writer does not support hijacking")
	}
	conn, _, err := hj.Hijack()
	if err == nil {
		_ = conn.Close()
	}
}

func pathID(r *http.Request, name string) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	return id
}

func readAmount(r *http.Request) decimal.Decimal {
	var body struct {
		Amount decimal.Decimal `json:"amount"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	return body.Amount
}

func (f *fakeLedger) handleLogin(w http.ResponseWriter, r *http.Request) {
	f.hit("login")
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	if body.Password != "password123" {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "Invalid credentials"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"accessToken": "access-" + body.Username, "refreshToken": "refresh-" + body.Username})
}

func (f *fakeLedger) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	f.hit("customers")
	writeJSON(w, http.StatusOK, map[string]any{"customers": []any{
		map[string]any{"id": 1, "first_name": "Chikondi", "last_name": "Banda", "national_id": "N1", "phone": "0999"},
	}})
}

func (f *fakeLedger) handleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	f.hit("create-customer")
	var body map[string]any
	_ = json.NewDecoder(r.Body).Decode(&body)
	body["id"] = 42
	writeJSON(w, http.StatusCreated, map[string]any{"customer": body})
}

func (f *fakeLedger) handleCustomerAccounts(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	f.hit(fmt.Sprintf("customer-accounts:%d", id))

	f.mu.Lock()
	defer f.mu.Unlock()
	accounts := []any{}
	for accID := range f.balances {
		accounts = append(accounts, f.accountJSON(accID))
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "first_name": "Chikondi", "accounts": accounts})
}

func (f *fakeLedger) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	f.hit("create-account")
	var body struct {
		CustomerID     int64           `json:"customer_id"`
		AccountType    string          `json:"account_type"`
		InitialBalance decimal.Decimal `json:"initial_balance"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	f.mu.Lock()
	defer f.mu.Unlock()
	id := int64(100 + len(f.balances))
	f.balances[id] = body.InitialBalance
	acc := f.accountJSON(id)
	acc["customer_id"] = body.CustomerID
	acc["account_type"] = body.AccountType
	writeJSON(w, http.StatusCreated, map[string]any{"account": acc})
}

func (f *fakeLedger) handleTransactions(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	f.hit(fmt.Sprintf("transactions:%d", id))
	writeJSON(w, http.StatusOK, []any{
		map[string]any{"id": 1, "account_id": id, "type": "deposit", "amount": "100.00", "description": "Deposit", "created_at": "2025-01-02T10:00:00Z"},
	})
}

func (f *fakeLedger) handleMove(sign int64) http.HandlerFunc {
	op := "deposit"
	if sign < 0 {
		op = "withdraw"
	}
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r, "id")
		f.hit(fmt.Sprintf("%s:%d", op, id))
		amount := readAmount(r)

		f.mu.Lock()
		defer f.mu.Unlock()
		bal, ok := f.balances[id]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{"message": "Account not found"})
			return
		}
		if sign < 0 && bal.LessThan(amount) {
			writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Insufficient funds"})
			return
		}
		f.balances[id] = bal.Add(amount.Mul(decimal.NewFromInt(sign)))
		writeJSON(w, http.StatusOK, map[string]any{"message": op + " successful", "account": f.accountJSON(id)})
	}
}

func (f *fakeLedger) handleTransfer(w http.ResponseWriter, r *http.Request) {
	from, to := pathID(r, "from"), pathID(r, "to")
	f.hit(fmt.Sprintf("transfer:%d:%d", from, to))
	amount := readAmount(r)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.balances[from] = f.balances[from].Sub(amount)
	f.balances[to] = f.balances[to].Add(amount)

	resp := map[string]any{"message": "Transfer successful"}
	switch f.transferEcho {
	case "both":
		resp["from_account"] = f.accountJSON(from)
		resp["to_account"] = f.accountJSON(to)
	case "from":
		resp["from_account"] = f.accountJSON(from)
	case "to":
		resp["to_account"] = f.accountJSON(to)
	default:
		resp = map[string]any{"message": "Transfer failed"}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (f *fakeLedger) handleStats(w http.ResponseWriter, r *http.Request) {
	f.hit("stats")
	f.mu.Lock()
	broken, stats := f.breakStats, f.stats
	f.mu.Unlock()
	if broken {
		dropConnection(w)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (f *fakeLedger) handleRecent(w http.ResponseWriter, r *http.Request) {
	f.hit("recent")
	f.mu.Lock()
	broken, recent := f.breakRecent, f.recent
	f.mu.Unlock()
	if broken {
		dropConnection(w)
		return
	}
	writeJSON(w, http.StatusOK, recent)
}

func (f *fakeLedger) handleReport(key string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.hit(key)
		f.mu.Lock()
		status, body := f.reportStatus, f.reportBody
		f.mu.Unlock()
		if status != http.StatusOK {
			writeJSON(w, status, map[string]any{"message": "report generation failed"})
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = io.WriteString(w, body)
	}
}

// memRepo is an in-memory store.Repository.
type memRepo struct {
	mu      sync.Mutex
	slots   map[string]string
	reports []*store.ReportRecord
}

func newMemRepo() *memRepo {
	return &memRepo{slots: make(map[string]string)}
}

func (m *memRepo) SetCredentials(slots map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range slots {
		m.slots[k] = v
	}
	return nil
}

func (m *memRepo) GetCredential(slot string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.slots[slot]
	if !ok {
		return "", store.ErrRecordNotFound
	}
	return v, nil
}

func (m *memRepo) ClearCredentials() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots = make(map[string]string)
	return nil
}

func (m *memRepo) AccessToken() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slots["access_token"], nil
}

func (m *memRepo) RecordReport(r store.ReportRecord) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = int64(len(m.reports) + 1)
	m.reports = append(m.reports, &r)
	return r.ID, nil
}

func (m *memRepo) ListReports(limit int) ([]*store.ReportRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*store.ReportRecord, 0, len(m.reports))
	for i := len(m.reports) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.reports[i])
	}
	return out, nil
}

func (m *memRepo) Close() error { return nil }

func newTestService(t *testing.T, client Ledger) (*Service, *memRepo) {
	t.Helper()
	svc, repo, _ := newLoggedTestService(t, client)
	return svc, repo
}

// newLoggedTestService also returns a hook capturing every log entry.
func newLoggedTestService(t *testing.T, client Ledger) (*Service, *memRepo, *test.Hook) {
	t.Helper()
	cfg := config.NewDefault()
	cfg.Reports.Dir = t.TempDir()
	repo := newMemRepo()
	log, hook := test.NewNullLogger()
	return NewService(client, repo, cache.NewAccountCache(), cfg, log), repo, hook
}

// findEntry returns the first entry logged at level with message msg.
func findEntry(hook *test.Hook, level logrus.Level, msg string) *logrus.Entry {
	for _, e := range hook.AllEntries() {
		if e.Level == level && e.Message == msg {
			return e
		}
	}
	return nil
}
