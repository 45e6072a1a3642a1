// Package preset loads render settings from YAML or TOML files. Enum fields
// are validated; numeric fields are clamped, never rejected.
package preset

import (
	"fmt"
	"image/color"
	"strings"

	"flavor-gradient/internal/palette"
	"flavor-gradient/internal/render"
)

// Preset is everything the host needs for one render or export.
type Preset struct {
	Prompts          []string `yaml:"prompts" toml:"prompts" validate:"max=64"`
	Type             string   `yaml:"type" toml:"type" validate:"oneof=linear smear"`
	Angle            float64  `yaml:"angle" toml:"angle"`
	SmearStrength    float64  `yaml:"smear_strength" toml:"smear_strength"`
	Pattern          string   `yaml:"pattern" toml:"pattern" validate:"oneof=none fractal"`
	FractalIntensity float64  `yaml:"fractal_intensity" toml:"fractal_intensity"`
	FractalScale     float64  `yaml:"fractal_scale" toml:"fractal_scale"`
	FractalOctaves   int      `yaml:"fractal_octaves" toml:"fractal_octaves"`
	Seed             float64  `yaml:"seed" toml:"seed"`
	ReferenceSize    int      `yaml:"reference_size" toml:"reference_size"`
	ExportSize       int      `yaml:"export_size" toml:"export_size"`
	DeviceScale      float64  `yaml:"device_scale" toml:"device_scale"`
	Output           string   `yaml:"output" toml:"output" validate:"omitempty,png_name"`
}

// Default matches the app's initial state.
func Default() Preset {
	p := render.DefaultParams()
	return Preset{
		Prompts:          []string{"ube", "mango", "coconut"},
		Type:             string(p.Type),
		Angle:            p.Angle,
		SmearStrength:    p.SmearStrength,
		Pattern:          string(p.Pattern),
		FractalIntensity: p.FractalIntensity,
		FractalScale:     p.FractalScale,
		FractalOctaves:   p.FractalOctaves,
		Seed:             p.Seed,
		ExportSize:       render.DefaultExportSize,
		DeviceScale:      1,
	}
}

// PromptList cleans the prompt entries the same way free-form input is
// cleaned: entries may themselves hold comma or newline separated flavors.
func (p Preset) PromptList() []string {
	return palette.ParsePrompts(strings.Join(p.Prompts, ","))
}

// Colors resolves the prompts to a color list of at least two entries.
func (p Preset) Colors() []color.RGBA {
	return palette.Colors(p.PromptList())
}

// Params converts the preset to normalized render parameters.
func (p Preset) Params() render.Params {
	return render.Params{
		Angle:            p.Angle,
		Type:             render.Type(p.Type),
		SmearStrength:    p.SmearStrength,
		Pattern:          render.Pattern(p.Pattern),
		FractalIntensity: p.FractalIntensity,
		FractalScale:     p.FractalScale,
		FractalOctaves:   p.FractalOctaves,
		Seed:             p.Seed,
		ReferenceSize:    p.ReferenceSize,
	}.Normalized()
}

// Dimension is the square export size in pixels after clamping.
func (p Preset) Dimension() int {
	return render.ExportDimension(p.ExportSize, p.DeviceScale)
}

// Adjustments lists every numeric field that clamping will change, in a
// form suitable for a warning log.
func (p Preset) Adjustments() []string {
	n := p.Params()
	var notes []string
	note := func(field string, from, to float64) {
		if from != to {
			notes = append(notes, fmt.Sprintf("%s %v -> %v", field, from, to))
		}
	}
	note("angle", p.Angle, n.Angle)
	note("smear_strength", p.SmearStrength, n.SmearStrength)
	note("fractal_intensity", p.FractalIntensity, n.FractalIntensity)
	note("fractal_scale", p.FractalScale, n.FractalScale)
	note("fractal_octaves", float64(p.FractalOctaves), float64(n.FractalOctaves))
	note("export_size", float64(p.ExportSize), float64(render.ClampExportSize(p.ExportSize)))
	return notes
}
