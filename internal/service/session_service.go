package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hance08/teller/internal/cache"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/store"
	"github.com/hance08/teller/internal/validation"
)

// ErrNotLoggedIn is returned by Require when no access token is stored.
var ErrNotLoggedIn = errors.New("not logged in, run 'teller login' first")

type SessionService struct {
	ledger Ledger
	repo   store.Repository
	cache  *cache.AccountCache
}

func NewSessionService(l Ledger, repo store.Repository, c *cache.AccountCache) *SessionService {
	return &SessionService{ledger: l, repo: repo, cache: c}
}

// SessionStatus describes the stored credentials. Expiry is read from the
// access token without verifying it; the console never renews tokens.
type SessionStatus struct {
	LoggedIn   bool
	HasRefresh bool
	Subject    string
	ExpiresAt  time.Time
	Expired    bool
}

func (s *SessionService) Login(ctx context.Context, username, password string) error {
	if err := validation.ValidateCredentials(username, password); err != nil {
		return err
	}
	creds, err := s.ledger.Login(ctx, username, password)
	if err != nil {
		return err
	}
	return s.store(creds)
}

// Register creates a staff user and logs in with the returned session.
func (s *SessionService) Register(ctx context.Context, username, password string) error {
	if err := validation.ValidateCredentials(username, password); err != nil {
		return err
	}
	creds, err := s.ledger.Register(ctx, username, password)
	if err != nil {
		return err
	}
	return s.store(creds)
}

// Logout clears every credential slot and the session cache.
func (s *SessionService) Logout() error {
	if err := s.repo.ClearCredentials(); err != nil {
		return err
	}
	s.cache.Reset()
	return nil
}

func (s *SessionService) IsLoggedIn() bool {
	token, err := s.repo.AccessToken()
	return err == nil && token != ""
}

// Require fails with ErrNotLoggedIn unless a session is stored.
func (s *SessionService) Require() error {
	if !s.IsLoggedIn() {
		return ErrNotLoggedIn
	}
	return nil
}

func (s *SessionService) Status() (*SessionStatus, error) {
	token, err := s.repo.AccessToken()
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	status := &SessionStatus{LoggedIn: token != ""}
	if !status.LoggedIn {
		return status, nil
	}

	if _, err := s.repo.GetCredential(constants.SlotRefreshToken); err == nil {
		status.HasRefresh = true
	} else if !errors.Is(err, store.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// opaque token, nothing more to report
		return status, nil
	}
	if sub, err := claims.GetSubject(); err == nil {
		status.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		status.ExpiresAt = exp.Time
		status.Expired = time.Now().After(exp.Time)
	}

	return status, nil
}

func (s *SessionService) store(creds *model.Credentials) error {
	slots := map[string]string{
		constants.SlotAccessToken: creds.AccessToken,
	}
	if creds.RefreshToken != "" {
		slots[constants.SlotRefreshToken] = creds.RefreshToken
	}

	// a new session fully replaces the previous one
	if err := s.repo.ClearCredentials(); err != nil {
		return err
	}
	if err := s.repo.SetCredentials(slots); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	s.cache.Reset()
	return nil
}
