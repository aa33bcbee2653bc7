package config

import (
	"fmt"
	"strings"

	"github.com/Pankaj-Bori/mybank-management-system/internal/constants"
)

type Config struct {
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Export     ExportConfig   `mapstructure:"export"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type DefaultsConfig struct {
	Currency     string `mapstructure:"currency"`
	HistoryLimit int    `mapstructure:"history_limit"`
}

// ExportConfig.Path empty means <app dir>/statements.db.
type ExportConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func NewDefault() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Currency:     constants.DefaultCurrency,
			HistoryLimit: constants.DefaultHistoryLimit,
		},
		Export: ExportConfig{Path: ""},
		Log: LogConfig{
			Level:  constants.DefaultLogLevel,
			Format: constants.DefaultLogFormat,
		},
	}
}

// Defaults flattens NewDefault into viper-style keys.
func Defaults() map[string]any {
	d := NewDefault()
	return map[string]any{
		"defaults.currency":      d.Defaults.Currency,
		"defaults.history_limit": d.Defaults.HistoryLimit,
		"export.path":            d.Export.Path,
		"log.level":              d.Log.Level,
		"log.format":             d.Log.Format,
	}
}

func (c *Config) Validate() error {
	c.Defaults.Currency = strings.ToUpper(strings.TrimSpace(c.Defaults.Currency))
	if c.Defaults.Currency == "" {
		return fmt.Errorf("defaults.currency can't be empty")
	}
	if c.Defaults.HistoryLimit <= 0 {
		return fmt.Errorf("defaults.history_limit must be positive, got %d", c.Defaults.HistoryLimit)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got '%s'", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got '%s'", c.Log.Format)
	}
	return nil
}
