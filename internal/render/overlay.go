package render

import (
	"context"
	"image"
	"math"

	"flavor-gradient/internal/noise"
)

// Overlay brightens img with fbm marbling. Each pixel's fbm value at
// (x/scale, y/scale) is shaped by Gamma, scaled by 255*intensity and added
// to R, G and B with saturation. Alpha is left alone and no channel ever
// decreases.
func Overlay(ctx context.Context, img *image.RGBA, field *noise.Field, scale float64, octaves int, intensity float64) error {
	intensity = clamp01(intensity)
	if intensity == 0 {
		return nil
	}
	if math.IsNaN(scale) || scale < MinFractalScale {
		scale = MinFractalScale
	}
	octaves = noise.ClampOctaves(octaves)

	b := img.Bounds()
	width := b.Dx()
	return forEachRow(ctx, b.Dy(), func(y int) {
		fy := float64(y) / scale
		row := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < width; x++ {
			n := field.FBM(float64(x)/scale, fy, octaves, Lacunarity, Gain)
			n = clamp01(math.Pow(n, Gamma))
			v := int(math.Floor(255 * n * intensity))
			if v == 0 {
				continue
			}
			i := x * 4
			row[i] = addClamp(row[i], v)
			row[i+1] = addClamp(row[i+1], v)
			row[i+2] = addClamp(row[i+2], v)
		}
	})
}

func addClamp(c uint8, v int) uint8 {
	return uint8(min(255, int(c)+v))
}
