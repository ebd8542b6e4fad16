package app

import (
	"io"
	"log/slog"
)

// newLogger builds the application logger writing to outW. level is any
// name slog understands ("debug", "warn", "info+2", ...); anything else
// means info. format "json" selects the JSON handler, anything else text.
func newLogger(level, format string, outW io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
