package store

import (
	"fmt"
	"time"
)

func (s *Store) RecordReport(r ReportRecord) (int64, error) {
	if r.CreatedAt == 0 {
		r.CreatedAt = time.Now().Unix()
	}

	stmt, err := s.db.Prepare(`
		INSERT INTO report_history (kind, path, size, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	var id int64
	if err := stmt.QueryRow(r.Kind, r.Path, r.Size, r.CreatedAt).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to record report: %w", err)
	}
	return id, nil
}

// ListReports returns the most recent reports first.
func (s *Store) ListReports(limit int) ([]*ReportRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT id, kind, path, size, created_at
		FROM report_history
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []*ReportRecord
	for rows.Next() {
		r := &ReportRecord{}
		if err := rows.Scan(&r.ID, &r.Kind, &r.Path, &r.Size, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
