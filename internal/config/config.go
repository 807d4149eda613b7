package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	defaultAutoApproveLimit = 500
	defaultCurrencySymbol   = "$"
)

// Config root configuration
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Approval ApprovalConfig `mapstructure:"approval"`
	Audit    AuditConfig    `mapstructure:"audit"`
}

// LogConfig application logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// ApprovalConfig submission classification settings
type ApprovalConfig struct {
	AutoApproveLimit float64 `mapstructure:"auto_approve_limit"`
	CurrencySymbol   string  `mapstructure:"currency_symbol"`
}

// AuditConfig audit trail settings
type AuditConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// DefaultConfig returns config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			File:   "",
		},
		Approval: ApprovalConfig{
			AutoApproveLimit: defaultAutoApproveLimit,
			CurrencySymbol:   defaultCurrencySymbol,
		},
		Audit: AuditConfig{
			Enabled: false,
			Path:    "",
		},
	}
}

// ConfigDir returns the requisition config directory
func ConfigDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".requisition")
}

// ConfigPath returns the config file path
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.json")
}

// StateDir holds files written while the program runs (audit trail).
func StateDir() string {
	return filepath.Join(ConfigDir(), "state")
}

// Load loads config from file or returns defaults
func Load() (*Config, error) {
	cfg := DefaultConfig()

	configPath := ConfigPath()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(cfg); err != nil {
			return cfg, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("json")
	v.SetEnvPrefix("REQUISITION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return cfg, err
	}

	if err := v.Unmarshal(cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.MatchName = func(mapKey, fieldName string) bool {
			return normalizeKey(mapKey) == normalizeKey(fieldName)
		}
	}); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func normalizeKey(input string) string {
	input = strings.ReplaceAll(input, "_", "")
	input = strings.ReplaceAll(input, "-", "")
	return strings.ToLower(input)
}

// Save saves config to file
func Save(cfg *Config) error {
	configPath := ConfigPath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

// Validate checks that the configuration values are within acceptable ranges.
func (c *Config) Validate() error {
	if c.Approval.AutoApproveLimit < 0 {
		return fmt.Errorf("approval.auto_approve_limit must not be negative, got %v", c.Approval.AutoApproveLimit)
	}
	if strings.TrimSpace(c.Approval.CurrencySymbol) == "" {
		c.Approval.CurrencySymbol = defaultCurrencySymbol
	}

	level := strings.ToLower(strings.TrimSpace(c.Log.Level))
	if level == "" {
		c.Log.Level = "info"
	} else {
		validLevels := map[string]bool{
			"debug": true,
			"info":  true,
			"warn":  true,
			"error": true,
		}
		if !validLevels[level] {
			return fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
		}
		c.Log.Level = level
	}

	format := strings.ToLower(strings.TrimSpace(c.Log.Format))
	switch format {
	case "":
		c.Log.Format = "text"
	case "text", "json":
		c.Log.Format = format
	default:
		return fmt.Errorf("log.format must be one of text, json; got %q", c.Log.Format)
	}

	return nil
}

// AutoApproveLimit returns the approval threshold as a decimal. A limit of 0
// turns auto-approval off for every non-negative total.
func (c *Config) AutoApproveLimit() decimal.Decimal {
	return decimal.NewFromFloat(c.Approval.AutoApproveLimit)
}

// AuditPath returns the audit trail file, expanding a leading ~.
func (c *Config) AuditPath() string {
	path := strings.TrimSpace(c.Audit.Path)
	if path == "" {
		return filepath.Join(StateDir(), "audit.jsonl")
	}
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		rest := strings.TrimPrefix(strings.TrimPrefix(path[1:], string(filepath.Separator)), "/")
		return filepath.Join(homeDir, rest)
	}
	return path
}
