package preset

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vasalvit/lsys"
)

//go:embed presets.hcl
var builtinSrc []byte

// Settings is everything needed to draw a figure, apart from the canvas.
type Settings struct {
	Axiom           string  `hcl:"axiom"`
	Rules           string  `hcl:"rules"`
	InitialAngle    float64 `hcl:"initial_angle"`
	AngleStep       float64 `hcl:"angle_step"`
	ScaleMultiplier float64 `hcl:"scale_multiplier"`
	Depth           int     `hcl:"depth"`
}

// Config returns the numeric part of s.
func (s Settings) Config() lsys.Config {
	return lsys.Config{
		InitialAngle:    s.InitialAngle,
		AngleStep:       s.AngleStep,
		ScaleMultiplier: s.ScaleMultiplier,
		Depth:           s.Depth,
	}
}

// Figure parses s into a drawable figure.
func (s Settings) Figure(maxSegments int) (*lsys.Figure, error) {
	c := s.Config()
	c.MaxSegments = maxSegments
	return lsys.NewFigure(s.Axiom, s.Rules, c)
}

// Preset is a named set of settings.
type Preset struct {
	Name     string
	Settings Settings
}

type presetBlock struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

type presetFile struct {
	Presets []*presetBlock `hcl:"preset,block"`
}

// Load decodes a file of preset blocks. Every preset must parse as a
// figure and names must be unique, ignoring case.
func Load(src []byte, filename string) ([]Preset, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse presets %s: %w", filename, diags)
	}

	var root presetFile
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode presets %s: %w", filename, diags)
	}

	presets := make([]Preset, 0, len(root.Presets))
	seen := make(map[string]bool, len(root.Presets))
	for _, block := range root.Presets {
		key := strings.ToLower(block.Name)
		if seen[key] {
			return nil, fmt.Errorf("%s: duplicate preset %q", filename, block.Name)
		}
		seen[key] = true

		var s Settings
		if diags := gohcl.DecodeBody(block.Body, nil, &s); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode preset %q: %w", block.Name, diags)
		}
		if _, err := s.Figure(0); err != nil {
			return nil, fmt.Errorf("preset %q: %w", block.Name, err)
		}
		presets = append(presets, Preset{Name: block.Name, Settings: s})
	}
	return presets, nil
}

// Builtin returns the presets that ship with the program.
func Builtin() []Preset {
	presets, err := Load(builtinSrc, "presets.hcl")
	if err != nil {
		panic(err)
	}
	return presets
}

// Default returns the settings used when nothing else is given.
func Default() Settings {
	return Builtin()[0].Settings
}

// Find looks a preset up by name, ignoring case.
func Find(presets []Preset, name string) (Preset, bool) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// Names lists the preset names in catalogue order.
func Names(presets []Preset) []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}
