package texel

import "image/color"

// Color represents a color with red, green, blue, and alpha components.
// Each component is nominally in the range [0, 1]. The type itself does not
// clamp; conversion to byte-sampled buffer formats clamps and rounds.
type Color struct {
	R, G, B, A float64
}

// Luminance weights for grayscale conversion (ITU-R BT.601).
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1.0}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Gray creates an opaque gray color with all RGB channels set to v.
func Gray(v float64) Color {
	return Color{R: v, G: v, B: v, A: 1.0}
}

// Luminance returns the luminance of the color using the standard
// 0.299 R + 0.587 G + 0.114 B weighting.
func (c Color) Luminance() float64 {
	return lumaR*c.R + lumaG*c.G + lumaB*c.B
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Color converts to the standard color.Color interface.
func (c Color) Color() color.Color {
	return color.NRGBA{
		R: byteOf(c.R),
		G: byteOf(c.G),
		B: byteOf(c.B),
		A: byteOf(c.A),
	}
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float64(nrgba.R) / 255,
		G: float64(nrgba.G) / 255,
		B: float64(nrgba.B) / 255,
		A: float64(nrgba.A) / 255,
	}
}

// byteOf converts a [0, 1] channel to a byte sample, clamping and rounding
// to nearest.
func byteOf(v float64) uint8 {
	v *= 255
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = RGBA(0, 0, 0, 0)
)
