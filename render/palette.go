package render

import (
	"image/color"
	"math"
)

// Gradient is a piecewise-linear color map over evenly spaced stops.
type Gradient []color.NRGBA

// Inferno returns a perceptually ordered black-purple-orange-yellow map.
func Inferno() Gradient {
	return Gradient{
		{0x00, 0x00, 0x04, 0xff},
		{0x16, 0x0b, 0x39, 0xff},
		{0x42, 0x0a, 0x68, 0xff},
		{0x6a, 0x17, 0x6e, 0xff},
		{0x93, 0x26, 0x67, 0xff},
		{0xbc, 0x37, 0x54, 0xff},
		{0xdd, 0x51, 0x3a, 0xff},
		{0xf3, 0x78, 0x19, 0xff},
		{0xfc, 0xa5, 0x0a, 0xff},
		{0xf6, 0xd7, 0x46, 0xff},
		{0xfc, 0xff, 0xa4, 0xff},
	}
}

// Grayscale returns a black-to-white map.
func Grayscale() Gradient {
	return Gradient{
		{0x00, 0x00, 0x00, 0xff},
		{0xff, 0xff, 0xff, 0xff},
	}
}

// At returns the color at t in [0, 1]; t is clamped, NaN maps to 0.
func (g Gradient) At(t float64) color.NRGBA {
	if len(g) == 0 {
		return color.NRGBA{}
	}
	if math.IsNaN(t) || t <= 0 || len(g) == 1 {
		return g[0]
	}
	if t >= 1 {
		return g[len(g)-1]
	}

	pos := t * float64(len(g)-1)
	i := int(pos)
	f := pos - float64(i)
	a, b := g[i], g[i+1]
	return color.NRGBA{
		R: lerp8(a.R, b.R, f),
		G: lerp8(a.G, b.G, f),
		B: lerp8(a.B, b.B, f),
		A: lerp8(a.A, b.A, f),
	}
}

func lerp8(a, b uint8, f float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*f))
}
