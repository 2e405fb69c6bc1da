package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/sentencemine/internal/config"
)

// NewLogger creates the command logger on stderr and installs it as the slog
// default. See newLogger for the handler rules.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

// newLogger writes JSON records for format "json" and text otherwise. Text
// output carries the source position only at debug level, so ordinary runs
// stay readable in a terminal.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	level := parseLevel(cfg.Level)
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	opts.AddSource = level <= slog.LevelDebug
	return slog.New(slog.NewTextHandler(w, opts))
}

// parseLevel accepts slog level names in any case, including offsets such as
// "info+2". Anything else is info.
func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
