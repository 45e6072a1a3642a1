package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"

	apperrors "flavor-gradient/internal/errors"
	"flavor-gradient/internal/preset"
)

// effectFlags are the render settings every rendering command accepts.
// Values only override the preset when the flag was set explicitly.
type effectFlags struct {
	presetPath    string
	effect        string
	angle         float64
	smear         float64
	pattern       string
	intensity     float64
	scale         float64
	octaves       int
	seed          float64
	referenceSize int
	size          int
	deviceScale   float64
	output        string
}

func (f *effectFlags) register(cmd *cobra.Command) {
	d := preset.Default()
	flagSet := cmd.Flags()
	flagSet.StringVarP(&f.presetPath, "preset", "p", "", "Preset file (.yaml, .yml or .toml)")
	flagSet.StringVar(&f.effect, "type", d.Type, "Effect type: linear or smear")
	flagSet.Float64Var(&f.angle, "angle", d.Angle, "Gradient angle in degrees")
	flagSet.Float64Var(&f.smear, "smear", d.SmearStrength, "Smear strength in [0,1]")
	flagSet.StringVar(&f.pattern, "pattern", d.Pattern, "Overlay pattern: none or fractal")
	flagSet.Float64Var(&f.intensity, "intensity", d.FractalIntensity, "Fractal intensity in [0,1]")
	flagSet.Float64Var(&f.scale, "scale", d.FractalScale, "Fractal scale in pixels (min 40)")
	flagSet.IntVar(&f.octaves, "octaves", d.FractalOctaves, "Fractal octaves in [2,7]")
	flagSet.Float64Var(&f.seed, "seed", d.Seed, "Noise seed")
	flagSet.IntVar(&f.referenceSize, "reference-size", d.ReferenceSize, "Width the fractal scale is expressed at (0 = output pixels)")
	flagSet.IntVar(&f.size, "size", d.ExportSize, "Export size in pixels, clamped to [512,4096]")
	flagSet.Float64Var(&f.deviceScale, "dpr", d.DeviceScale, "Device pixel ratio, clamped to [1,3]")
	flagSet.StringVarP(&f.output, "output", "o", "", "Output PNG file")
}

// resolve layers defaults, the preset file, explicit flags and positional
// prompts, in that order, and validates the result.
func (f *effectFlags) resolve(cmd *cobra.Command, args []string) (preset.Preset, error) {
	p := preset.Default()
	if f.presetPath != "" {
		loaded, err := preset.Load(f.presetPath)
		if err != nil {
			suggestion := "Check that the preset file exists and is readable."
			if errors.Is(err, apperrors.ErrInvalidPreset) && !errors.Is(err, fs.ErrNotExist) {
				suggestion = "Check the file syntax and field names."
			}
			return preset.Preset{}, newCommandError("load preset", f.presetPath, err, suggestion)
		}
		p = loaded
	}

	flagSet := cmd.Flags()
	set := func(name string, apply func()) {
		if flagSet.Changed(name) {
			apply()
		}
	}
	set("type", func() { p.Type = f.effect })
	set("angle", func() { p.Angle = f.angle })
	set("smear", func() { p.SmearStrength = f.smear })
	set("pattern", func() { p.Pattern = f.pattern })
	set("intensity", func() { p.FractalIntensity = f.intensity })
	set("scale", func() { p.FractalScale = f.scale })
	set("octaves", func() { p.FractalOctaves = f.octaves })
	set("seed", func() { p.Seed = f.seed })
	set("reference-size", func() { p.ReferenceSize = f.referenceSize })
	set("size", func() { p.ExportSize = f.size })
	set("dpr", func() { p.DeviceScale = f.deviceScale })
	set("output", func() { p.Output = f.output })

	if len(args) > 0 {
		p.Prompts = []string{strings.Join(args, ",")}
	}

	if err := preset.Validate(&p); err != nil {
		return preset.Preset{}, newCommandError("resolve settings", "validating flags", err, fmt.Sprintf("Run '%s --help' for accepted values.", cmd.CommandPath()))
	}
	return p, nil
}
