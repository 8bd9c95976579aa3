package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

const (
	appName         = "balance"
	envPrefix       = "BALANCE"
	settingsName    = "settings"
	paymentsName    = "spend.yaml"
	DefaultResetDay = 18
)

// Config holds the application settings. Payments live in their own file,
// see PaymentsFile.
type Config struct {
	PaymentsFile string     `mapstructure:"payments_file"`
	ResetDay     int        `mapstructure:"reset_day"`
	Currency     string     `mapstructure:"currency"`
	Editor       string     `mapstructure:"editor"`
	LogLevel     string     `mapstructure:"log_level"`
	YNAB         YNABConfig `mapstructure:"ynab"`
}

// YNABConfig holds the settings needed to read a live balance from YNAB.
type YNABConfig struct {
	TokenEnv string `mapstructure:"token_env"`
	BudgetID string `mapstructure:"budget_id"`
}

// Token returns the YNAB token from the configured environment variable.
func (c YNABConfig) Token() string {
	if c.TokenEnv == "" {
		return ""
	}
	return os.Getenv(c.TokenEnv)
}

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"payments-file": "payments_file",
	"log-level":     "log_level",
	"currency":      "currency",
	"editor":        "editor",
	"budget":        "ynab.budget_id",
}

// Dir returns the XDG config directory for the app.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName)
}

// DefaultPaymentsFile is where payments are kept unless configured otherwise.
func DefaultPaymentsFile() string {
	return filepath.Join(Dir(), paymentsName)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("payments_file", DefaultPaymentsFile())
	v.SetDefault("reset_day", DefaultResetDay)
	v.SetDefault("currency", "£")
	v.SetDefault("editor", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("ynab.token_env", "YNAB_TOKEN")
	v.SetDefault("ynab.budget_id", "last-used")
}

// Build resolves the configuration from, lowest to highest priority:
// defaults, the settings file, BALANCE_* environment variables (a local
// .env is loaded first) and the flags that were set on the command line.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	if err := gotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName(settingsName)
		v.SetConfigType("yaml")
		v.AddConfigPath(Dir())
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read settings: %w", err)
			}
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.PaymentsFile = expandHome(cfg.PaymentsFile)

	return &cfg, nil
}

// expandHome turns a leading ~/ into the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
