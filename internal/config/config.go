// =================================
// File: internal/config/config.go
// =================================
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/rovshanmuradov/myportfolio/internal/portfolio"
	"github.com/spf13/viper"
)

type Config struct {
	Theme        string                      `mapstructure:"theme"`
	DebugLogging bool                        `mapstructure:"debug_logging"`
	LogFile      string                      `mapstructure:"log_file"`
	ExportDir    string                      `mapstructure:"export_dir"`
	Currency     string                      `mapstructure:"currency"`
	Holdings     []portfolio.Holding         `mapstructure:"holdings"`
	Performance  map[string]portfolio.Series `mapstructure:"performance"`
}

const (
	ThemeDark  = "dark"
	ThemeLight = "light"

	DefaultTheme     = ThemeDark
	DefaultLogFile   = "logs/dashboard.log"
	DefaultExportDir = "exports"
	DefaultCurrency  = money.USD
)

// LoadConfig reads path if it exists and applies defaults and MYPORTFOLIO_* overrides.
// An empty or missing path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	defaults := map[string]interface{}{
		"theme":      DefaultTheme,
		"log_file":   DefaultLogFile,
		"export_dir": DefaultExportDir,
		"currency":   DefaultCurrency,

		"debug_logging": false,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix("MYPORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	cfg.Currency = strings.ToUpper(strings.TrimSpace(cfg.Currency))
	normalizeTickers(&cfg)

	return &cfg, validateConfig(&cfg)
}

// normalizeTickers upper-cases tickers; viper lower-cases map keys on read.
func normalizeTickers(cfg *Config) {
	for i := range cfg.Holdings {
		cfg.Holdings[i].Ticker = strings.ToUpper(strings.TrimSpace(cfg.Holdings[i].Ticker))
	}
	if len(cfg.Performance) == 0 {
		return
	}
	performance := make(map[string]portfolio.Series, len(cfg.Performance))
	for ticker, series := range cfg.Performance {
		performance[strings.ToUpper(ticker)] = series
	}
	cfg.Performance = performance
}

func validateConfig(cfg *Config) error {
	if cfg.Theme != ThemeDark && cfg.Theme != ThemeLight {
		return fmt.Errorf("invalid theme %q: expected dark or light", cfg.Theme)
	}
	if money.GetCurrency(cfg.Currency) == nil {
		return fmt.Errorf("unknown currency %q", cfg.Currency)
	}
	if cfg.LogFile == "" {
		return errors.New("log_file is empty")
	}
	return validateHoldings(cfg)
}

func validateHoldings(cfg *Config) error {
	seen := make(map[string]struct{}, len(cfg.Holdings))
	for _, h := range cfg.Holdings {
		if strings.TrimSpace(h.Ticker) == "" {
			return errors.New("holding with empty ticker")
		}
		if _, dup := seen[h.Ticker]; dup {
			return fmt.Errorf("duplicate holding %s", h.Ticker)
		}
		seen[h.Ticker] = struct{}{}
		if len(cfg.Performance[h.Ticker]) == 0 {
			return fmt.Errorf("holding %s has no performance series", h.Ticker)
		}
	}
	return nil
}

// Seed returns the configured portfolio, or the built-in mock portfolio when none is set.
func (c *Config) Seed() portfolio.Seed {
	if len(c.Holdings) == 0 {
		return portfolio.DefaultSeed()
	}

	performance := make(map[string]portfolio.Series, len(c.Performance))
	for ticker, series := range c.Performance {
		performance[ticker] = series
	}
	holdings := make([]portfolio.Holding, len(c.Holdings))
	copy(holdings, c.Holdings)

	return portfolio.Seed{Holdings: holdings, Performance: performance}
}
