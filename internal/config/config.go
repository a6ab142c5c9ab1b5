package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const DefaultBaseURL = "http://localhost:5000"

type Config struct {
	API        APIConfig      `mapstructure:"api"`
	Database   DatabaseConfig `mapstructure:"database"`
	Reports    ReportsConfig  `mapstructure:"reports"`
	Log        LogConfig      `mapstructure:"log"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	ConfigPath string         `mapstructure:"-"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type ReportsConfig struct {
	Dir      string `mapstructure:"dir"`
	Filename string `mapstructure:"filename"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
}

func NewDefault() *Config {
	return &Config{
		API:      APIConfig{BaseURL: DefaultBaseURL, Timeout: 15 * time.Second},
		Database: DatabaseConfig{Path: ""},
		Reports:  ReportsConfig{Dir: ".", Filename: "report.pdf"},
		Log:      LogConfig{Level: "warn"},
		Defaults: DefaultsConfig{Currency: "MWK"},
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if u, err := url.Parse(c.API.BaseURL); err != nil {
		problems = append(problems, fmt.Sprintf("invalid api.base_url '%s': %v", c.API.BaseURL, err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		problems = append(problems, fmt.Sprintf("invalid api.base_url '%s': scheme must be http or https", c.API.BaseURL))
	} else if u.Host == "" {
		problems = append(problems, fmt.Sprintf("invalid api.base_url '%s': missing host", c.API.BaseURL))
	}

	if c.API.Timeout <= 0 {
		problems = append(problems, fmt.Sprintf("invalid api.timeout %v: must be positive", c.API.Timeout))
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log.level '%s'", c.Log.Level))
	}

	if strings.TrimSpace(c.Reports.Filename) == "" {
		problems = append(problems, "reports.filename cannot be empty")
	} else if strings.ContainsAny(c.Reports.Filename, `/\`) {
		problems = append(problems, fmt.Sprintf("invalid reports.filename '%s': must not contain a path separator", c.Reports.Filename))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}
