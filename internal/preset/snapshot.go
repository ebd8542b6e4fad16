package preset

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// Encode writes s as flat HCL attributes, one per setting.
func (s Settings) Encode() []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	body.SetAttributeValue("axiom", cty.StringVal(s.Axiom))
	body.SetAttributeValue("rules", cty.StringVal(s.Rules))
	body.SetAttributeValue("initial_angle", cty.NumberFloatVal(s.InitialAngle))
	body.SetAttributeValue("angle_step", cty.NumberFloatVal(s.AngleStep))
	body.SetAttributeValue("scale_multiplier", cty.NumberFloatVal(s.ScaleMultiplier))
	body.SetAttributeValue("depth", cty.NumberIntVal(int64(s.Depth)))
	return f.Bytes()
}

// DecodeSettings reads settings written by Encode.
func DecodeSettings(src []byte, filename string) (Settings, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return Settings{}, fmt.Errorf("failed to parse settings %s: %w", filename, diags)
	}
	var s Settings
	if diags := gohcl.DecodeBody(file.Body, nil, &s); diags.HasErrors() {
		return Settings{}, fmt.Errorf("failed to decode settings %s: %w", filename, diags)
	}
	return s, nil
}

// LoadSettings reads a settings file. A missing file is reported with an
// error matching os.ErrNotExist.
func LoadSettings(path string) (Settings, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}
	return DecodeSettings(src, path)
}

// SaveSettings writes s to path, replacing the file.
func SaveSettings(path string, s Settings) error {
	if err := os.WriteFile(path, s.Encode(), 0o644); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
