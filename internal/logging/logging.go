// Package logging builds the process logger: log/slog records rendered
// by pterm so they match the console output.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pterm/pterm"

	"github.com/Pankaj-Bori/mybank-management-system/internal/config"
)

func ParseLevel(level string) (pterm.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return pterm.LogLevelDebug, nil
	case "", "info":
		return pterm.LogLevelInfo, nil
	case "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	default:
		return pterm.LogLevelInfo, fmt.Errorf("unknown log level '%s'", level)
	}
}

func New(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	formatter := pterm.LogFormatterColorful
	if strings.EqualFold(cfg.Format, "json") {
		formatter = pterm.LogFormatterJSON
	}

	logger := pterm.DefaultLogger.
		WithLevel(level).
		WithFormatter(formatter).
		WithWriter(w)

	return slog.New(pterm.NewSlogHandler(logger)), nil
}
