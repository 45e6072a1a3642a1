// Package render turns a color list and effect parameters into pixels: a
// directional gradient, an optional motion smear and an optional fbm
// marble overlay, in that order.
package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"flavor-gradient/internal/noise"
	"flavor-gradient/internal/palette"
)

// Render paints a width x height image for params and colors. Each call owns
// its buffer and noise field, so concurrent calls need no coordination. The
// only error is ctx's.
func Render(ctx context.Context, params Params, colors []color.RGBA, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid render size %dx%d", width, height)
	}
	p := params.Normalized()
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	// 1) Base gradient
	if err := PaintGradient(ctx, img, p.Angle, colors); err != nil {
		return nil, err
	}

	// 2) Smear along the gradient angle
	if p.Type == TypeSmear {
		if err := Smear(ctx, img, p.Angle, p.SmearStrength); err != nil {
			return nil, err
		}
	}

	// 3) Fractal overlay, always last
	if p.Pattern == PatternFractal && p.FractalIntensity > 0 {
		field := noise.New(p.Seed)
		if err := Overlay(ctx, img, field, p.effectiveScale(width), p.FractalOctaves, p.FractalIntensity); err != nil {
			return nil, err
		}
	}

	return img, nil
}

// effectiveScale stretches FractalScale from ReferenceSize to width.
func (p Params) effectiveScale(width int) float64 {
	if p.ReferenceSize <= 0 {
		return p.FractalScale
	}
	return p.FractalScale * float64(width) / float64(p.ReferenceSize)
}

// Stop is one gradient stop; Position is a percentage.
type Stop struct {
	Color    color.RGBA
	Position float64
}

// Descriptor is the textual summary of a gradient, independent of any
// rendering.
type Descriptor struct {
	Angle float64
	Stops []Stop
}

// Describe lays colors out as evenly spaced stops from 0% to 100%.
func Describe(colors []color.RGBA, angle float64) Descriptor {
	d := Descriptor{
		Angle: NormalizeAngle(angle),
		Stops: make([]Stop, len(colors)),
	}
	denom := float64(max(len(colors)-1, 1))
	for i, c := range colors {
		d.Stops[i] = Stop{Color: c, Position: float64(i) / denom * 100}
	}
	return d
}

// CSS formats d as a linear-gradient(...) value, e.g.
// "linear-gradient(30deg, #6d4aff 0%, #ffb703 50%, #fef9ef 100%)".
func (d Descriptor) CSS() string {
	var b strings.Builder
	b.WriteString("linear-gradient(")
	b.WriteString(formatNumber(d.Angle))
	b.WriteString("deg")
	for _, s := range d.Stops {
		b.WriteString(", ")
		b.WriteString(palette.Hex(s.Color))
		b.WriteByte(' ')
		b.WriteString(formatNumber(s.Position))
		b.WriteByte('%')
	}
	b.WriteByte(')')
	return b.String()
}

func (d Descriptor) String() string { return d.CSS() }

// formatNumber prints the shortest decimal that round-trips, without an
// exponent.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
