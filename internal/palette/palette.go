package palette

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
)

// MaxPrompts is the number of flavor prompts kept from user input.
const MaxPrompts = 8

const (
	fallbackToken = "flavor"

	pastelSaturation = 68
	pastelLightness  = 68

	// Hue rotation used to synthesize a partner for a single flavor.
	complementRotation = 200
)

// --- Default pair (used when no prompt survives parsing) ---
var defaultPair = [2]color.RGBA{
	{R: 0xff, G: 0x7a, B: 0x00, A: 0xff}, // orange
	{R: 0xff, G: 0xe0, B: 0x66, A: 0xff}, // banana
}

// DefaultPair returns the two colors used for an empty prompt list.
func DefaultPair() []color.RGBA {
	return []color.RGBA{defaultPair[0], defaultPair[1]}
}

// Normalize lowercases raw and strips everything outside [a-z0-9].
func Normalize(raw string) string {
	lowered := strings.ToLower(raw)
	var b strings.Builder
	b.Grow(len(lowered))
	for i := 0; i < len(lowered); i++ {
		c := lowered[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// HashHue maps s to a hue in [0,360) using h = h*31 + code over the
// string's UTF-16 code units with uint32 wraparound.
func HashHue(s string) int {
	var h uint32
	for _, unit := range utf16.Encode([]rune(s)) {
		h = h*31 + uint32(unit)
	}
	return int(h % 360)
}

// HSL converts hue (degrees), saturation and lightness (percent) to an
// opaque RGBA color. Channels are rounded half-up from 255*x.
func HSL(h, s, l float64) color.RGBA {
	s /= 100
	l /= 100
	a := s * math.Min(l, 1-l)
	f := func(n float64) uint8 {
		k := math.Mod(n+h/30, 12)
		v := l - a*math.Max(-1, math.Min(k-3, math.Min(9-k, 1)))
		return uint8(math.Floor(255*v + 0.5))
	}
	return color.RGBA{R: f(0), G: f(8), B: f(4), A: 255}
}

// Resolve returns the color for a raw flavor name. Curated flavors come
// straight from the table; anything else gets a hashed pastel.
func Resolve(raw string) color.RGBA {
	token := Normalize(raw)
	if c, ok := Lookup(token); ok {
		return c
	}
	return pastel(HashHue(hashKey(token)))
}

// Complement is the partner color synthesized for a single flavor: the
// hue of the prompt as typed (trimmed, not normalized) rotated by 200
// degrees. "Strawberry" and "strawberry" therefore get different partners.
func Complement(raw string) color.RGBA {
	hue := HashHue(hashKey(strings.TrimSpace(raw)))
	return pastel((hue + complementRotation) % 360)
}

// ParsePrompts splits free-form text on commas and line breaks, trims each
// entry, drops empty ones and keeps at most MaxPrompts.
func ParsePrompts(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n'
	})
	prompts := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		prompts = append(prompts, f)
		if len(prompts) == MaxPrompts {
			break
		}
	}
	return prompts
}

// Colors turns prompts into a color list that always has at least two
// entries.
func Colors(prompts []string) []color.RGBA {
	if len(prompts) > MaxPrompts {
		prompts = prompts[:MaxPrompts]
	}
	switch len(prompts) {
	case 0:
		return DefaultPair()
	case 1:
		return []color.RGBA{Resolve(prompts[0]), Complement(prompts[0])}
	}
	out := make([]color.RGBA, len(prompts))
	for i, p := range prompts {
		out[i] = Resolve(p)
	}
	return out
}

// Hex formats c as #rrggbb, ignoring alpha.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex converts a #RGB or #RRGGBB string to an opaque color.RGBA.
func ParseHex(hex string) (color.RGBA, error) {
	if len(hex) != 4 && len(hex) != 7 {
		return color.RGBA{}, fmt.Errorf("invalid hex color length: must be #RGB or #RRGGBB, got length %d", len(hex))
	}
	if hex[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid hex color format: must start with #")
	}

	digits := hex[1:]
	width := len(digits) / 3
	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(digits[i*width:(i+1)*width], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color format (%s): %w", hex, err)
		}
		if width == 1 {
			v *= 17 // F becomes FF
		}
		ch[i] = uint8(v)
	}
	return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}, nil
}

func hashKey(token string) string {
	if token == "" {
		return fallbackToken
	}
	return token
}

func pastel(hue int) color.RGBA {
	return HSL(float64(hue), pastelSaturation, pastelLightness)
}
