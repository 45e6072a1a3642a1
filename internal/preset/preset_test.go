package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "flavor-gradient/internal/errors"
	"flavor-gradient/internal/palette"
	"flavor-gradient/internal/render"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	validYAML := `prompts:
  - strawberry
  - "Cookies & Cream"
type: linear
angle: 120
pattern: none
export_size: 2048
output: berry.png
`

	validTOML := `prompts = ["matcha", "milk"]
type = "smear"
smear_strength = 0.8
pattern = "fractal"
fractal_octaves = 6
seed = 12
`

	cases := []struct {
		name     string
		file     string
		contents string
		assert   func(t *testing.T, p Preset, err error)
	}{
		{
			name:     "yaml overrides defaults",
			file:     "berry.yaml",
			contents: validYAML,
			assert: func(t *testing.T, p Preset, err error) {
				require.NoError(t, err)
				require.Equal(t, []string{"strawberry", "Cookies & Cream"}, p.Prompts)
				require.Equal(t, "linear", p.Type)
				require.Equal(t, 120.0, p.Angle)
				require.Equal(t, 2048, p.ExportSize)
				require.Equal(t, "berry.png", p.Output)
				// Untouched fields keep the defaults.
				require.Equal(t, 140.0, p.FractalScale)
				require.Equal(t, 7.0, p.Seed)
			},
		},
		{
			name:     "toml is accepted",
			file:     "matcha.toml",
			contents: validTOML,
			assert: func(t *testing.T, p Preset, err error) {
				require.NoError(t, err)
				require.Equal(t, []string{"matcha", "milk"}, p.Prompts)
				require.Equal(t, 0.8, p.SmearStrength)
				require.Equal(t, 6, p.FractalOctaves)
				require.Equal(t, 12.0, p.Seed)
				require.Equal(t, 30.0, p.Angle)
			},
		},
		{
			name:     "empty yaml gives defaults",
			file:     "empty.yml",
			contents: "",
			assert: func(t *testing.T, p Preset, err error) {
				require.NoError(t, err)
				require.Equal(t, Default(), p)
			},
		},
		{
			name:     "malformed yaml reports a line",
			file:     "broken.yaml",
			contents: "prompts:\n  - ube\nangle: [1, 2]\n",
			assert: func(t *testing.T, p Preset, err error) {
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 3, parseErr.Line)
			},
		},
		{
			name:     "unknown yaml key is rejected",
			file:     "typo.yaml",
			contents: "angel: 30\n",
			assert: func(t *testing.T, p Preset, err error) {
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "angel")
			},
		},
		{
			name:     "unknown toml key is rejected",
			file:     "typo.toml",
			contents: "angel = 30\n",
			assert: func(t *testing.T, p Preset, err error) {
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "angel")
			},
		},
		{
			name:     "malformed toml",
			file:     "broken.toml",
			contents: "type = \n",
			assert: func(t *testing.T, p Preset, err error) {
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
		{
			name:     "bad effect type is a validation error",
			file:     "wobble.yaml",
			contents: "type: wobble\n",
			assert: func(t *testing.T, p Preset, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "type", validationErr.Field)
				require.Contains(t, validationErr.Message, "linear smear")
			},
		},
		{
			name:     "output must be a png",
			file:     "jpeg.yaml",
			contents: "output: out.jpg\n",
			assert: func(t *testing.T, p Preset, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "output", validationErr.Field)
			},
		},
		{
			name:     "out of range numbers are kept for clamping",
			file:     "wild.yaml",
			contents: "angle: -90\nsmear_strength: 3\nfractal_scale: 5\nfractal_octaves: 11\nexport_size: 100000\n",
			assert: func(t *testing.T, p Preset, err error) {
				require.NoError(t, err)
				params := p.Params()
				require.Equal(t, 270.0, params.Angle)
				require.Equal(t, 1.0, params.SmearStrength)
				require.Equal(t, 40.0, params.FractalScale)
				require.Equal(t, 7, params.FractalOctaves)
				require.Equal(t, render.MaxExportSize, p.Dimension())
				require.ElementsMatch(t, []string{
					"angle -90 -> 270",
					"smear_strength 3 -> 1",
					"fractal_scale 5 -> 40",
					"fractal_octaves 11 -> 7",
					"export_size 100000 -> 4096",
				}, p.Adjustments())
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p, err := Load(writeFile(t, tc.file, tc.contents))
			tc.assert(t, p, err)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "preset.json", "{}"))
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	_, err = Decode("inline", []byte("{}"), Format("json"))
	require.ErrorAs(t, err, &validationErr)
}

func TestPresetColors(t *testing.T) {
	t.Parallel()

	p := Default()
	require.Equal(t, "linear-gradient(30deg, #6d4aff 0%, #ffb703 50%, #fef9ef 100%)",
		render.Describe(p.Colors(), p.Angle).CSS())

	p.Prompts = []string{"ube, mango", "", "coconut\nkiwi"}
	require.Equal(t, []string{"ube", "mango", "coconut", "kiwi"}, p.PromptList())

	p.Prompts = nil
	require.Equal(t, palette.DefaultPair(), p.Colors())
}

func TestDefaultHasNoAdjustments(t *testing.T) {
	t.Parallel()

	require.Empty(t, Default().Adjustments())
	require.Equal(t, render.DefaultParams(), Default().Params())
	require.Equal(t, render.DefaultExportSize, Default().Dimension())
}
