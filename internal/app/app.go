package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hance08/teller/internal/cache"
	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/ledger"
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/store"
	"github.com/sirupsen/logrus"
)

type App struct {
	Service *service.Service
	Store   store.Repository
	Ledger  *ledger.Client
	Log     *logrus.Logger
}

// NewApp initialize config, database, ledger client and services, then return App entity
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	log, err := NewLogger(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}

	dbPathRaw := cfg.Database.Path

	if dbPathRaw == "" {
		appDir, _ := AppDataDir()
		dbPathRaw = filepath.Join(appDir, "teller.db")
	}

	dbStore, err := store.NewStore(dbPathRaw, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	client := ledger.NewClient(cfg.API.BaseURL, cfg.API.Timeout, dbStore, log)
	svc := service.NewService(client, dbStore, cache.NewAccountCache(), cfg, log)

	cleanup := func() {
		// follow-up refreshes may still be writing to the cache or logging
		svc.Wait()
		if err := dbStore.Close(); err != nil {
			log.WithError(err).Error("error closing database")
		}
	}

	return &App{
		Service: svc,
		Store:   dbStore,
		Ledger:  client,
		Log:     log,
	}, cleanup, nil
}

// NewLogger builds the console logger. Output goes to stderr so it never
// mixes with rendered tables.
func NewLogger(level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return log, nil
}

func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".teller"), nil
	}

	return filepath.Join(configDir, "teller"), nil
}
