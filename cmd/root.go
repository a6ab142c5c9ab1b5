package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/hance08/teller/cmd/account"
	"github.com/hance08/teller/cmd/customer"
	"github.com/hance08/teller/cmd/transaction"
	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/errhandler"
	"github.com/hance08/teller/internal/ui/prompts"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	cfgFile = configFlag(os.Args[1:])

	if err := initConfig(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	application, cleanup, err := app.NewApp(cfg, migrations)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	svc := application.Service

	rootCmd := &cobra.Command{
		Use:   "teller",
		Short: "teller is a staff console for the bank ledger",
		Long: `teller is a CLI/TUI staff console for the bank ledger.

It manages customers and their accounts, performs deposits, withdrawals
and transfers, shows the dashboard and downloads the daily report.
Run "teller console" for the interactive console.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(NewLoginCmd(svc))
	rootCmd.AddCommand(NewRegisterCmd(svc))
	rootCmd.AddCommand(NewLogoutCmd(svc))
	rootCmd.AddCommand(NewDashboardCmd(svc))
	rootCmd.AddCommand(NewReportCmd(svc))
	rootCmd.AddCommand(NewConsoleCmd(svc))
	rootCmd.AddCommand(NewInfoCmd(svc))

	rootCmd.AddCommand(customer.NewCustomerCmd(svc))
	rootCmd.AddCommand(account.NewAccountCmd(svc))
	rootCmd.AddCommand(transaction.NewDepositCmd(svc))
	rootCmd.AddCommand(transaction.NewWithdrawCmd(svc))
	rootCmd.AddCommand(transaction.NewTransferCmd(svc))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = rootCmd.ExecuteContext(ctx)
	stop()
	cleanup()

	if err != nil {
		errhandler.HandleError(err)
	}
}

// configFlag reads --config ahead of cobra, since the config decides how
// the command tree is wired.
func configFlag(args []string) string {
	flags := pflag.NewFlagSet("teller", pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.SetOutput(io.Discard)
	flags.Usage = func() {}

	var path string
	flags.StringVarP(&path, "config", "c", "", "")
	_ = flags.Parse(args)
	return path
}

func initConfig() error {
	// a .env next to the binary is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	setDefaults()

	created := false
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.AppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		created, err = createDefaultConfig(appDir)
		if err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix("TELLER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	if created && os.Getenv("TELLER_API_BASE_URL") == "" {
		if err := initWizard(); err != nil {
			return err
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	dbPath, err := expandPath(cfg.Database.Path)
	if err != nil {
		return err
	}
	cfg.Database.Path = dbPath

	reportsDir, err := expandPath(cfg.Reports.Dir)
	if err != nil {
		return err
	}
	cfg.Reports.Dir = reportsDir

	return cfg.Validate()
}

func setDefaults() {
	def := config.NewDefault()
	viper.SetDefault("api.base_url", def.API.BaseURL)
	viper.SetDefault("api.timeout", def.API.Timeout.String())
	viper.SetDefault("database.path", def.Database.Path)
	viper.SetDefault("reports.dir", def.Reports.Dir)
	viper.SetDefault("reports.filename", def.Reports.Filename)
	viper.SetDefault("log.level", def.Log.Level)
	viper.SetDefault("defaults.currency", def.Defaults.Currency)
}

func initWizard() error {
	baseURL, err := prompts.PromptInitBaseURL(viper.GetString("api.base_url"))
	if err != nil {
		return err
	}

	viper.Set("api.base_url", baseURL)

	if err := viper.WriteConfig(); err != nil {
		return fmt.Errorf("failed to save config to file: %w", err)
	}

	pterm.Success.Printf("Configuration saved. Ledger address set to: %s\n", baseURL)

	return nil
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}

// createDefaultConfig writes the defaults on first run and reports whether
// it did.
func createDefaultConfig(appDir string) (bool, error) {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return false, nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}

	return true, nil
}
