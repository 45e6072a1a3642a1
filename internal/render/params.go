package render

import (
	"math"

	"flavor-gradient/internal/noise"
)

// Type selects the base effect.
type Type string

const (
	TypeLinear Type = "linear"
	TypeSmear  Type = "smear"
)

// Pattern selects the overlay applied on top of the base effect.
type Pattern string

const (
	PatternNone    Pattern = "none"
	PatternFractal Pattern = "fractal"
)

const (
	// MinFractalScale is the smallest fbm period in pixels.
	MinFractalScale = 40

	// Fixed fbm shape.
	Lacunarity = 2.0
	Gain       = 0.5

	// Gamma brightens the overlay's mid-tones.
	Gamma = 1.2
)

// Params is the full effect configuration for one render.
type Params struct {
	Angle            float64 // degrees, taken modulo 360
	Type             Type
	SmearStrength    float64 // [0,1]
	Pattern          Pattern
	FractalIntensity float64 // [0,1]
	FractalScale     float64 // pixels, >= MinFractalScale
	FractalOctaves   int     // [2,7]
	Seed             float64

	// ReferenceSize, when positive, is the width FractalScale is expressed
	// at. The scale is stretched by width/ReferenceSize so that renders at
	// different sizes keep the same marbling. Zero means FractalScale is in
	// output pixels.
	ReferenceSize int
}

// DefaultParams mirrors the app's initial controls.
func DefaultParams() Params {
	return Params{
		Angle:            30,
		Type:             TypeSmear,
		SmearStrength:    0.45,
		Pattern:          PatternFractal,
		FractalIntensity: 0.25,
		FractalScale:     140,
		FractalOctaves:   4,
		Seed:             7,
	}
}

// Normalized returns p with every numeric field clamped into its domain.
// Unknown Type or Pattern values fall back to linear and none.
func (p Params) Normalized() Params {
	p.Angle = NormalizeAngle(p.Angle)
	p.SmearStrength = clamp01(p.SmearStrength)
	p.FractalIntensity = clamp01(p.FractalIntensity)
	p.FractalOctaves = noise.ClampOctaves(p.FractalOctaves)
	if math.IsNaN(p.FractalScale) || p.FractalScale < MinFractalScale {
		p.FractalScale = MinFractalScale
	}
	if p.ReferenceSize < 0 {
		p.ReferenceSize = 0
	}
	if p.Type != TypeSmear {
		p.Type = TypeLinear
	}
	if p.Pattern != PatternFractal {
		p.Pattern = PatternNone
	}
	return p
}

// NormalizeAngle maps degrees into [0,360).
func NormalizeAngle(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

// roundHalfUp rounds .5 towards +Inf.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
