package app

import (
	"errors"
	"fmt"

	"github.com/vasalvit/lsys/internal/preset"
)

// Config holds everything a run needs.
type Config struct {
	Output    string // .png or .svg file to write
	Preset    string // name of a built-in preset, may be empty
	StatePath string // settings snapshot to read and update, may be empty
	List      bool   // print the preset names and stop

	Size        int
	Border      float64
	Axes        bool
	MaxSegments int

	LogFormat string
	LogLevel  string

	// Overrides are settings given explicitly on the command line. They
	// win over the preset and the snapshot.
	Overrides Overrides
}

// Overrides holds optional replacements for individual settings; nil
// fields are left alone.
type Overrides struct {
	Axiom           *string
	Rules           *string
	InitialAngle    *float64
	AngleStep       *float64
	ScaleMultiplier *float64
	Depth           *int
}

// Apply returns s with the set fields of o replaced.
func (o Overrides) Apply(s preset.Settings) preset.Settings {
	if o.Axiom != nil {
		s.Axiom = *o.Axiom
	}
	if o.Rules != nil {
		s.Rules = *o.Rules
	}
	if o.InitialAngle != nil {
		s.InitialAngle = *o.InitialAngle
	}
	if o.AngleStep != nil {
		s.AngleStep = *o.AngleStep
	}
	if o.ScaleMultiplier != nil {
		s.ScaleMultiplier = *o.ScaleMultiplier
	}
	if o.Depth != nil {
		s.Depth = *o.Depth
	}
	return s
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.List {
		return &cfg, nil
	}
	if cfg.Output == "" {
		return nil, errors.New("an output file is required")
	}
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("size must be positive, got %d", cfg.Size)
	}
	if cfg.Border < 0 || 2*cfg.Border >= float64(cfg.Size) {
		return nil, fmt.Errorf("border %v does not fit a canvas of size %d", cfg.Border, cfg.Size)
	}
	if cfg.MaxSegments < 0 {
		return nil, fmt.Errorf("max-segments must not be negative, got %d", cfg.MaxSegments)
	}
	return &cfg, nil
}
