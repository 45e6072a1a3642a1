package render

import (
	"context"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

const (
	smearMinPasses = 4
	smearMaxPasses = 24
	smearShiftRate = 0.0015
)

// smearMask composites each pass at 6% opacity.
var smearMask = image.NewUniform(color.Alpha16{A: 0xffff * 6 / 100})

// SmearPasses returns the pass count and per-pass shift in pixels for a
// width x height buffer. Both have floors, so strength 0 still smears: pass i
// moves by (i+1)*shift, and colour can travel at most
// shift*passes*(passes+1)/2 pixels along the angle (10 at strength 0).
func SmearPasses(width, height int, strength float64) (passes, shift int) {
	strength = clamp01(strength)
	passes = max(smearMinPasses, roundHalfUp(smearMaxPasses*strength))
	shift = max(1, roundHalfUp(float64(width+height)*smearShiftRate*strength))
	return passes, shift
}

// Smear drags img along angle degrees. Pass i snapshots the buffer and
// composites the snapshot, moved (i+1)*shift pixels along the angle, over
// the live buffer at 6% opacity. Later passes read the result of earlier
// ones, so the streak compounds.
func Smear(ctx context.Context, img *image.RGBA, angle, strength float64) error {
	b := img.Bounds()
	passes, shift := SmearPasses(b.Dx(), b.Dy(), strength)
	rad := NormalizeAngle(angle) * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)

	snapshot := image.NewRGBA(b)
	opts := &draw.Options{SrcMask: smearMask}
	for i := 0; i < passes; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		// img may be a SubImage sharing its parent's stride.
		draw.Draw(snapshot, b, img, b.Min, draw.Src)

		step := float64(shift * (i + 1))
		s2d := f64.Aff3{
			1, 0, cos * step,
			0, 1, sin * step,
		}
		draw.BiLinear.Transform(img, s2d, snapshot, b, draw.Over, opts)
	}
	return nil
}
