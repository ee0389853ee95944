// Package logging builds the JSON slog logger used by the numeral command.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// DefaultLevel keeps routine runs quiet; only problems are reported.
const DefaultLevel = "warn"

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	Level string
}

// NewLogger creates a slog.Logger with a JSON handler writing to w. An empty
// level means DefaultLevel; an unknown one falls back to INFO. Use ParseLevel
// first when the caller needs to reject bad levels.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	level, err := ParseLevel(config.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(handler)
}

// OrDiscard returns l, or a logger that drops every record when l is nil.
func OrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l
}

// ParseLevel maps debug, info, warn, warning and error (any case) to a
// slog.Level. The empty string is DefaultLevel.
func ParseLevel(level string) (slog.Level, error) {
	if strings.TrimSpace(level) == "" {
		level = DefaultLevel
	}
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
}
