// Package noise implements a seeded, tileable 2D value noise and a fractal
// (fbm) accumulator on top of it.
package noise

import "math"

// Size is the grid period along each axis.
const Size = 256

const (
	// MinOctaves and MaxOctaves bound the fbm layer count.
	MinOctaves = 2
	MaxOctaves = 7

	// below1 is the largest float32 under 1.
	below1 = float32(0.99999994)
)

// Field is a 256x256 grid of pseudo-random values in [0,1). A Field is
// immutable after New and safe for concurrent use.
type Field struct {
	seed float64
	grid [Size * Size]float32
}

// New builds the grid for seed. Every call produces a fresh grid; nothing is
// shared between fields.
func New(seed float64) *Field {
	f := &Field{seed: seed}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			f.grid[y*Size+x] = cell(float64(x)*12.9898+float64(y)*78.233, seed)
		}
	}
	return f
}

// Seed returns the seed the field was built with.
func (f *Field) Seed() float64 { return f.seed }

// cell is the fractional part of sin(n*127.1 + seed*13.7) * 43758.5453.
func cell(n, seed float64) float32 {
	v := math.Sin(n*127.1+seed*13.7) * 43758.5453
	v -= math.Floor(v)
	// float32 rounding can push values just under 1 up to exactly 1.
	c := float32(v)
	if c >= 1 {
		c = below1
	}
	return c
}

// Sample returns the noise value at (x, y). Coordinates wrap every Size
// units on both axes; corners are blended with a smoothstep weight.
func (f *Field) Sample(x, y float64) float64 {
	x = wrap(x)
	y = wrap(y)

	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	x1, y1 := (x0+1)%Size, (y0+1)%Size
	fx := smoothstep(x - float64(x0))
	fy := smoothstep(y - float64(y0))

	v00 := float64(f.grid[y0*Size+x0])
	v10 := float64(f.grid[y0*Size+x1])
	v01 := float64(f.grid[y1*Size+x0])
	v11 := float64(f.grid[y1*Size+x1])

	return lerp(lerp(v00, v10, fx), lerp(v01, v11, fx), fy)
}

// FBM sums octaves of Sample, starting at amplitude 0.5 and frequency 1 and
// scaling them by gain and lacunarity after each layer. Callers clamp
// octaves with ClampOctaves.
func (f *Field) FBM(x, y float64, octaves int, lacunarity, gain float64) float64 {
	sum, amp, freq := 0.0, 0.5, 1.0
	for i := 0; i < octaves; i++ {
		sum += amp * f.Sample(x*freq, y*freq)
		freq *= lacunarity
		amp *= gain
	}
	return sum
}

// ClampOctaves limits n to [MinOctaves, MaxOctaves].
func ClampOctaves(n int) int {
	return max(MinOctaves, min(MaxOctaves, n))
}

func wrap(v float64) float64 {
	v = math.Mod(math.Mod(v, Size)+Size, Size)
	// NaN and Inf collapse to the origin.
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// smoothstep is t*t*(3-2t) for t already in [0,1].
func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
