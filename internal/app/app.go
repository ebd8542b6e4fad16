package app

import (
	"io"
	"log/slog"

	"github.com/vasalvit/lsys"
	"github.com/vasalvit/lsys/internal/preset"
)

// App renders figures according to a Config.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	presets []preset.Preset
}

// NewApp returns an App logging to outW at the level and in the format
// cfg asks for.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	lsys.SetLogger(logger)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:    outW,
		logger:  logger,
		presets: preset.Builtin(),
	}
}
