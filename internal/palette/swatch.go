package palette

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Swatch pairs a resolved color with where it came from.
type Swatch struct {
	Label   string
	Color   color.RGBA
	Curated bool
}

// Swatches resolves prompts the same way Colors does, keeping a label for
// every entry.
func Swatches(prompts []string) []Swatch {
	if len(prompts) > MaxPrompts {
		prompts = prompts[:MaxPrompts]
	}
	colors := Colors(prompts)
	out := make([]Swatch, len(colors))
	for i, c := range colors {
		sw := Swatch{Color: c}
		switch {
		case len(prompts) == 0:
			sw.Label = "default"
		case i < len(prompts):
			sw.Label = prompts[i]
			_, sw.Curated = Lookup(Normalize(prompts[i]))
		default:
			sw.Label = prompts[0] + " (complement)"
		}
		out[i] = sw
	}
	return out
}

// HSL reports the swatch color as hue in degrees and saturation/lightness
// in [0,1].
func (s Swatch) HSL() (h, sat, l float64) {
	c, _ := colorful.MakeColor(s.Color)
	return c.Hsl()
}

const labelWidth = 24

var (
	labelStyle = lipgloss.NewStyle().Width(labelWidth)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// WriteSwatches prints one line per swatch: a color block, the label, the
// hex value and its HSL readout.
func WriteSwatches(w io.Writer, swatches []Swatch) error {
	for _, sw := range swatches {
		hex := Hex(sw.Color)
		block := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("      ")
		h, s, l := sw.HSL()
		source := "hashed"
		if sw.Curated {
			source = "curated"
		}
		_, err := fmt.Fprintf(w, "%s %s %s %s\n",
			block,
			labelStyle.Render(truncate(sw.Label, labelWidth-1)),
			hex,
			dimStyle.Render(fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%) %s", h, s*100, l*100, source)),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
