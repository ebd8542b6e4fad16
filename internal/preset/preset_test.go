package preset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vasalvit/lsys"
)

func TestBuiltin(t *testing.T) {
	presets := Builtin()
	require.Equal(t, []string{
		"Big-H", "Carpet", "Dragon Curve", "Koch Star", "Sierpinski",
		"Snowflake", "Tree", "Twig", "Weed",
	}, Names(presets))

	for _, p := range presets {
		f, err := p.Settings.Figure(0)
		require.NoError(t, err, p.Name)
		require.NotEmpty(t, f.Axiom, p.Name)
		require.NotEmpty(t, f.Rules, p.Name)
	}
}

func TestBuiltinMultiLineRules(t *testing.T) {
	p, ok := Find(Builtin(), "dragon curve")
	require.True(t, ok)
	require.Equal(t, "f=[+f][+g--g4-f]\ng=-g++g-", p.Settings.Rules)

	f, err := p.Settings.Figure(0)
	require.NoError(t, err)
	require.Len(t, f.Rules, 2)
	require.Equal(t, 13, f.Config.Depth)
	require.Equal(t, 45.0, f.Config.AngleStep)
}

func TestBuiltinRenders(t *testing.T) {
	for _, p := range Builtin() {
		s := p.Settings
		if s.Depth > 4 {
			s.Depth = 4
		}
		f, err := s.Figure(0)
		require.NoError(t, err)

		var n int
		err = f.Render(lsys.Viewport{Size: 400, Border: 10}, func(_, _, _, _ float64) { n++ })
		require.NoError(t, err, p.Name)
		require.Greater(t, n, 0, p.Name)
	}
}

func TestFind(t *testing.T) {
	presets := Builtin()

	p, ok := Find(presets, "KOCH STAR")
	require.True(t, ok)
	require.Equal(t, "Koch Star", p.Name)
	require.Equal(t, "f++f++f", p.Settings.Axiom)

	_, ok = Find(presets, "nope")
	require.False(t, ok)
}

func TestDefault(t *testing.T) {
	require.Equal(t, Builtin()[0].Settings, Default())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"syntax", `preset "a" {`, "failed to parse presets"},
		{"missing attribute", `preset "a" { axiom = "f" }`, "failed to decode preset"},
		{
			"duplicate",
			`preset "a" {
				axiom = "f"
				rules = ""
				initial_angle = 0
				angle_step = 90
				scale_multiplier = 0.5
				depth = 1
			}
			preset "A" {
				axiom = "f"
				rules = ""
				initial_angle = 0
				angle_step = 90
				scale_multiplier = 0.5
				depth = 1
			}`,
			"duplicate preset",
		},
		{
			"bad grammar",
			`preset "a" {
				axiom = "f"
				rules = "fg=f"
				initial_angle = 0
				angle_step = 90
				scale_multiplier = 0.5
				depth = 1
			}`,
			"malformed rule",
		},
		{
			"bad config",
			`preset "a" {
				axiom = "f"
				rules = ""
				initial_angle = 0
				angle_step = 90
				scale_multiplier = 0
				depth = 1
			}`,
			"scale multiplier",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.src), "test.hcl")
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func requireSettings(t *testing.T, want, got Settings) {
	t.Helper()
	require.Equal(t, want.Axiom, got.Axiom)
	require.Equal(t, want.Rules, got.Rules)
	require.InDelta(t, want.InitialAngle, got.InitialAngle, 1e-12)
	require.InDelta(t, want.AngleStep, got.AngleStep, 1e-12)
	require.InDelta(t, want.ScaleMultiplier, got.ScaleMultiplier, 1e-12)
	require.Equal(t, want.Depth, got.Depth)
}

func TestSettingsRoundTrip(t *testing.T) {
	for _, p := range Builtin() {
		got, err := DecodeSettings(p.Settings.Encode(), "snapshot.hcl")
		require.NoError(t, err, p.Name)
		requireSettings(t, p.Settings, got)
	}

	odd := Settings{
		Axiom:           `f "quoted" ${x}`,
		Rules:           "f=f\n\ng=-g",
		InitialAngle:    -12.5,
		AngleStep:       0.1,
		ScaleMultiplier: 1e-3,
		Depth:           0,
	}
	got, err := DecodeSettings(odd.Encode(), "snapshot.hcl")
	require.NoError(t, err)
	requireSettings(t, odd, got)
}

func TestSaveLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.hcl")

	_, err := LoadSettings(path)
	require.True(t, errors.Is(err, os.ErrNotExist))

	want := Default()
	require.NoError(t, SaveSettings(path, want))

	got, err := LoadSettings(path)
	require.NoError(t, err)
	requireSettings(t, want, got)
}

func TestDecodeSettingsErrors(t *testing.T) {
	_, err := DecodeSettings([]byte(`axiom = `), "bad.hcl")
	require.Error(t, err)

	_, err = DecodeSettings([]byte(`axiom = "f"`), "short.hcl")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to decode settings")
}
