package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/ledger"
	"github.com/hance08/teller/internal/store"
	"github.com/sirupsen/logrus"
)

type ReportResult struct {
	Kind        string
	Path        string
	Size        int64
	ContentType string
	Dispatched  bool
}

// ReportService fetches rendered reports and saves them locally.
type ReportService struct {
	ledger   Ledger
	repo     store.Repository
	dir      string
	filename string
	log      *logrus.Logger
}

func NewReportService(l Ledger, repo store.Repository, dir, filename string, log *logrus.Logger) *ReportService {
	if dir == "" {
		dir = "."
	}
	if filename == "" {
		filename = constants.DefaultTarget
	}
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &ReportService{ledger: l, repo: repo, dir: dir, filename: filename, log: log}
}

// FetchAndDownload saves the daily report locally.
func (s *ReportService) FetchAndDownload(ctx context.Context) (*ReportResult, error) {
	art, err := s.ledger.DailyReport(ctx)
	if err != nil {
		return nil, err
	}
	return s.saveAndRecord(constants.ReportDaily, art)
}

// FetchAndDispatch has the ledger deliver the daily report to HR and saves
// the same bytes locally. A successful response confirms the dispatch.
func (s *ReportService) FetchAndDispatch(ctx context.Context) (*ReportResult, error) {
	art, err := s.ledger.SendDailyReport(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.saveAndRecord(constants.ReportDispatch, art)
	if err != nil {
		return nil, err
	}
	res.Dispatched = true
	return res, nil
}

func (s *ReportService) History(limit int) ([]*store.ReportRecord, error) {
	return s.repo.ListReports(limit)
}

func (s *ReportService) saveAndRecord(kind string, art *ledger.Artifact) (*ReportResult, error) {
	path, size, err := s.save(kind, art)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.RecordReport(store.ReportRecord{Kind: kind, Path: path, Size: size}); err != nil {
		s.log.WithError(err).WithField("path", path).Warn("failed to record report history")
	}

	s.log.WithFields(logrus.Fields{"kind": kind, "path": path, "size": size}).Info("report saved")

	return &ReportResult{
		Kind:        kind,
		Path:        path,
		Size:        size,
		ContentType: art.ContentType,
	}, nil
}

// save streams the artifact into a temporary file next to the target and
// renames it into place. The artifact and the temporary file are released
// before save returns, whatever the outcome.
func (s *ReportService) save(kind string, art *ledger.Artifact) (string, int64, error) {
	defer func() {
		_ = art.Close()
	}()

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", 0, fmt.Errorf("failed to create report directory %s: %w", s.dir, err)
	}

	tmp, err := os.CreateTemp(s.dir, ".report-*.part")
	if err != nil {
		return "", 0, fmt.Errorf("failed to create temporary report file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	size, err := io.Copy(tmp, art.Body)
	if err != nil {
		_ = tmp.Close()
		return "", 0, fmt.Errorf("failed to receive report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", 0, fmt.Errorf("failed to write report: %w", err)
	}

	target := s.target(kind, time.Now())
	if err := os.Rename(tmpName, target); err != nil {
		return "", 0, fmt.Errorf("failed to save report to %s: %w", target, err)
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		abs = target
	}
	return abs, size, nil
}

// target names a report after the configured file name, its kind and its
// time, e.g. report-daily-20250102-150405.pdf. Existing files are never
// reused.
func (s *ReportService) target(kind string, at time.Time) string {
	ext := filepath.Ext(s.filename)
	stem := strings.TrimSuffix(s.filename, ext)
	base := fmt.Sprintf("%s-%s-%s", stem, kind, at.Format("20060102-150405"))

	name := filepath.Join(s.dir, base+ext)
	for i := 1; fileExists(name); i++ {
		name = filepath.Join(s.dir, fmt.Sprintf("%s-%d%s", base, i, ext))
	}
	return name
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
