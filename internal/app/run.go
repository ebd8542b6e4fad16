package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/vasalvit/lsys"
	"github.com/vasalvit/lsys/internal/canvas"
	"github.com/vasalvit/lsys/internal/ctxlog"
	"github.com/vasalvit/lsys/internal/preset"
)

// Run draws the figure described by cfg, or lists the presets.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	if cfg.List {
		for _, name := range preset.Names(a.presets) {
			fmt.Fprintln(a.outW, name)
		}
		return nil
	}

	settings, err := a.resolveSettings(ctx, cfg)
	if err != nil {
		return err
	}
	if err := settings.Config().Validate(); err != nil {
		return err
	}

	// Like a form, the snapshot keeps what was asked for even if the
	// grammar turns out to be broken.
	if cfg.StatePath != "" {
		if err := preset.SaveSettings(cfg.StatePath, settings); err != nil {
			return err
		}
		logger.Debug("Settings saved.", "path", cfg.StatePath)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	fig, err := settings.Figure(cfg.MaxSegments)
	if err != nil {
		return fmt.Errorf("invalid grammar: %w", err)
	}

	ctx = ctxlog.With(ctx, "output", cfg.Output, "depth", settings.Depth)
	return a.draw(ctx, fig, cfg)
}

// draw renders fig onto a fresh canvas and saves it to cfg.Output.
func (a *App) draw(ctx context.Context, fig *lsys.Figure, cfg *Config) error {
	logger := ctxlog.FromContext(ctx)

	c, err := canvas.New(cfg.Output, cfg.Size)
	if err != nil {
		return err
	}
	if cfg.Axes {
		canvas.Setup(c, float64(cfg.Size))
		logger.Debug("Axes drawn.")
	}

	var lines int
	view := lsys.Viewport{Size: float64(cfg.Size), Border: cfg.Border}
	err = fig.RenderContext(ctx, view, func(x0, y0, x1, y1 float64) {
		c.Line(x0, y0, x1, y1)
		lines++
	})
	if err != nil {
		return fmt.Errorf("failed to render figure: %w", err)
	}

	if err := c.Save(cfg.Output); err != nil {
		return fmt.Errorf("failed to save %s: %w", cfg.Output, err)
	}
	logger.Info("Figure written.", "lines", lines)
	return nil
}

// resolveSettings layers the snapshot, the preset and the explicit flags
// over the default settings, in that order.
func (a *App) resolveSettings(ctx context.Context, cfg *Config) (preset.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	settings := preset.Default()

	if cfg.StatePath != "" {
		saved, err := preset.LoadSettings(cfg.StatePath)
		switch {
		case errors.Is(err, os.ErrNotExist):
			logger.Debug("No saved settings, using defaults.", "path", cfg.StatePath)
		case err != nil:
			return preset.Settings{}, err
		default:
			logger.Debug("Saved settings loaded.", "path", cfg.StatePath)
			settings = saved
		}
	}

	if cfg.Preset != "" {
		p, ok := preset.Find(a.presets, cfg.Preset)
		if !ok {
			return preset.Settings{}, fmt.Errorf("unknown preset %q, run with -list to see them", cfg.Preset)
		}
		logger.Debug("Preset selected.", "name", p.Name)
		settings = p.Settings
	}

	return cfg.Overrides.Apply(settings), nil
}
