// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"paylist/internal/logging"
	"paylist/internal/tabular"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		InputDelimiter  string `mapstructure:"input_delimiter" yaml:"input_delimiter"`
		OutputDelimiter string `mapstructure:"output_delimiter" yaml:"output_delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Transfers struct {
		CurrencyMarker           string   `mapstructure:"currency_marker" yaml:"currency_marker"`
		InvoiceStatuses          []string `mapstructure:"invoice_statuses" yaml:"invoice_statuses"`
		TripStatuses             []string `mapstructure:"trip_statuses" yaml:"trip_statuses"`
		ReimbursementPrefixes    []string `mapstructure:"reimbursement_prefixes" yaml:"reimbursement_prefixes"`
		ReimbursementTitlePrefix string   `mapstructure:"reimbursement_title_prefix" yaml:"reimbursement_title_prefix"`
		RequireTripAccountMatch  bool     `mapstructure:"require_trip_account_match" yaml:"require_trip_account_match"`
	} `mapstructure:"transfers" yaml:"transfers"`

	Server struct {
		Host string `mapstructure:"host" yaml:"host"`
		Port int    `mapstructure:"port" yaml:"port"`
	} `mapstructure:"server" yaml:"server"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file from the default locations, then
// PAYLIST_* environment variables.
func InitializeConfig() (*Config, error) {
	return InitializeConfigFile("")
}

// InitializeConfigFile behaves like InitializeConfig but reads the named
// config file instead of searching the default locations. An explicitly
// named file must be readable; the empty path falls back to the search.
func InitializeConfigFile(path string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.paylist")
		v.AddConfigPath(".paylist")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix("PAYLIST")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless named explicitly)
	if err := v.ReadInConfig(); err != nil {
		if path != "" {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// CSV defaults: the sheets paste tab-separated, the bank wants semicolons
	v.SetDefault("csv.input_delimiter", "tab")
	v.SetDefault("csv.output_delimiter", ";")

	// Transfer defaults
	v.SetDefault("transfers.currency_marker", "PLN")
	v.SetDefault("transfers.invoice_statuses", []string{"PENDING", "TO PAY"})
	v.SetDefault("transfers.trip_statuses", []string{"PENDING", "TO PAY"})
	v.SetDefault("transfers.reimbursement_prefixes", []string{"expenses reimbursement", "reimbursement"})
	v.SetDefault("transfers.reimbursement_title_prefix", "Reimbursement - ")
	v.SetDefault("transfers.require_trip_account_match", false)

	// Server defaults
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if _, err := config.InputDelimiter(); err != nil {
		return fmt.Errorf("invalid csv.input_delimiter: %w", err)
	}
	if _, err := config.OutputDelimiter(); err != nil {
		return fmt.Errorf("invalid csv.output_delimiter: %w", err)
	}

	if strings.TrimSpace(config.Transfers.CurrencyMarker) == "" {
		return fmt.Errorf("transfers.currency_marker must not be empty")
	}
	if len(config.Transfers.InvoiceStatuses) == 0 {
		return fmt.Errorf("transfers.invoice_statuses must not be empty")
	}
	if len(config.Transfers.TripStatuses) == 0 {
		return fmt.Errorf("transfers.trip_statuses must not be empty")
	}
	if len(config.Transfers.ReimbursementPrefixes) == 0 {
		return fmt.Errorf("transfers.reimbursement_prefixes must not be empty")
	}

	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got: %d", config.Server.Port)
	}

	return nil
}

// InputDelimiter resolves the configured input delimiter name to a rune.
func (c *Config) InputDelimiter() (rune, error) {
	return tabular.DelimiterFromName(c.CSV.InputDelimiter)
}

// OutputDelimiter resolves the configured output delimiter name to a rune.
func (c *Config) OutputDelimiter() (rune, error) {
	return tabular.DelimiterFromName(c.CSV.OutputDelimiter)
}

// NewLogger builds the application logger from the logging section.
func NewLogger(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(config.Log.Level, config.Log.Format)
}
