package render

import (
	"context"
	"image"
	"image/color"
	"math"

	"flavor-gradient/internal/palette"
)

// axis is the gradient line: every pixel is projected onto start + t*dir.
type axis struct {
	startX, startY float64
	dirX, dirY     float64
	invLen2        float64
}

// newAxis runs through the buffer centre along (cos θ, sin θ), reaching
// width and height away on each side so the stops span the whole buffer
// whatever the aspect ratio.
func newAxis(width, height int, angle float64) axis {
	rad := NormalizeAngle(angle) * math.Pi / 180
	w, h := float64(width), float64(height)
	vx, vy := math.Cos(rad)*w, math.Sin(rad)*h

	a := axis{
		startX: w/2 - vx,
		startY: h/2 - vy,
		dirX:   2 * vx,
		dirY:   2 * vy,
	}
	if l2 := a.dirX*a.dirX + a.dirY*a.dirY; l2 > 0 {
		a.invLen2 = 1 / l2
	}
	return a
}

// at returns the clamped position in [0,1] of the point (x, y).
func (a axis) at(x, y float64) float64 {
	t := ((x-a.startX)*a.dirX + (y-a.startY)*a.dirY) * a.invLen2
	return math.Max(0, math.Min(1, t))
}

// PaintGradient fills img with a linear gradient at angle degrees. colors
// are placed as evenly spaced stops in list order and interpolated in RGB.
// Pixels are sampled at their centres.
func PaintGradient(ctx context.Context, img *image.RGBA, angle float64, colors []color.RGBA) error {
	stops := gradientStops(colors)
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	ax := newAxis(width, height, angle)

	return forEachRow(ctx, height, func(y int) {
		fy := float64(y) + 0.5
		offset := y * img.Stride
		for x := 0; x < width; x++ {
			c := stopColor(stops, ax.at(float64(x)+0.5, fy))
			i := offset + x*4
			img.Pix[i] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = 255
		}
	})
}

// gradientStops guarantees at least two stops.
func gradientStops(colors []color.RGBA) []color.RGBA {
	switch len(colors) {
	case 0:
		return palette.DefaultPair()
	case 1:
		return []color.RGBA{colors[0], colors[0]}
	}
	return colors
}

// stopColor interpolates between the two stops enclosing t.
func stopColor(stops []color.RGBA, t float64) color.RGBA {
	segments := len(stops) - 1
	pos := t * float64(segments)
	i := int(math.Floor(pos))
	if i >= segments {
		i = segments - 1
	}
	if i < 0 {
		i = 0
	}
	local := pos - float64(i)
	from, to := stops[i], stops[i+1]
	return color.RGBA{
		R: mix(from.R, to.R, local),
		G: mix(from.G, to.G, local),
		B: mix(from.B, to.B, local),
		A: 255,
	}
}

func mix(a, b uint8, t float64) uint8 {
	return uint8(roundHalfUp(float64(a)*(1-t) + float64(b)*t))
}
