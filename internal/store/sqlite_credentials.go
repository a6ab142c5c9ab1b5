package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hance08/teller/internal/constants"
)

// SetCredentials writes every slot in one transaction so a session is never
// half stored.
func (s *Store) SetCredentials(slots map[string]string) error {
	return s.ExecTx(func(tx *Store) error {
		stmt, err := tx.db.Prepare(`
			INSERT INTO credentials (slot, value, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT(slot) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare SQL : %w", err)
		}
		defer func() {
			_ = stmt.Close()
		}()

		now := time.Now().Unix()
		for slot, value := range slots {
			if slot == "" {
				return ErrEmptySlot
			}
			if _, err := stmt.Exec(slot, value, now); err != nil {
				return fmt.Errorf("failed to store credential %q: %w", slot, err)
			}
		}
		return nil
	})
}

func (s *Store) GetCredential(slot string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM credentials WHERE slot = ?", slot).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("credential %q: %w", slot, ErrRecordNotFound)
		}
		return "", fmt.Errorf("failed to read credential %q: %w", slot, err)
	}
	return value, nil
}

// ClearCredentials removes every slot.
func (s *Store) ClearCredentials() error {
	if _, err := s.db.Exec("DELETE FROM credentials"); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}

// AccessToken satisfies ledger.TokenSource. A missing slot yields "".
func (s *Store) AccessToken() (string, error) {
	token, err := s.GetCredential(constants.SlotAccessToken)
	if errors.Is(err, ErrRecordNotFound) {
		return "", nil
	}
	return token, err
}
