package cmd

import (
	"os"
	"path/filepath"

	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	svc *service.Service
}

func NewInfoCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database path, ledger address and session details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				svc: svc,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	configPath := r.svc.Config.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	appDir := getAppDataDirOrUnknown()

	dbPath := r.svc.Config.Database.Path
	if dbPath == "" {
		dbPath = filepath.Join(appDir, "teller.db")
	}

	dbExists := false
	if _, err := os.Stat(dbPath); err == nil {
		dbExists = true
	}

	reportsDir, err := filepath.Abs(r.svc.Config.Reports.Dir)
	if err != nil {
		reportsDir = r.svc.Config.Reports.Dir
	}

	session, err := r.svc.Session.Status()
	if err != nil {
		return err
	}

	items := views.SystemInfoItem{
		ConfigPath:      configPath,
		DBPath:          dbPath,
		DBExists:        dbExists,
		BaseURL:         r.svc.Config.API.BaseURL,
		ReportsDir:      reportsDir,
		DefaultCurrency: r.svc.Config.Defaults.Currency,
		AppDataDir:      appDir,
		Session:         session,
	}

	return views.RenderSystemInfo(items)
}

func getAppDataDirOrUnknown() string {
	dir, err := app.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
