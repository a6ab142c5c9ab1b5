package views

import (
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/service"
	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath      string
	DBPath          string
	DBExists        bool // true = Found, false = Not Found
	BaseURL         string
	ReportsDir      string
	DefaultCurrency string
	AppDataDir      string
	Session         *service.SessionStatus
}

func RenderSystemInfo(data SystemInfoItem) error {
	dbStatus := pterm.Green("Found")
	if !data.DBExists {
		dbStatus = pterm.Red("Not Found (Will be created)")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Database Path", data.DBPath},
		{"Database Status", dbStatus},
		{"Ledger URL", data.BaseURL},
		{"Reports Directory", data.ReportsDir},
		{"Default Currency", data.DefaultCurrency},
		{"AppData Directory", data.AppDataDir},
		{"Session", sessionLine(data.Session)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

func sessionLine(s *service.SessionStatus) string {
	if s == nil || !s.LoggedIn {
		return pterm.Gray("Logged out")
	}

	line := pterm.Green("Logged in")
	if s.Subject != "" {
		line += " as " + s.Subject
	}
	if !s.ExpiresAt.IsZero() {
		exp := s.ExpiresAt.Local().Format(constants.DateTimeFormat)
		if s.Expired {
			line += pterm.Red(" (expired " + exp + ", login again)")
		} else {
			line += " (until " + exp + ")"
		}
	}
	return line
}
