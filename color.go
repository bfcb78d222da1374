package inkui

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// ErrInvalidColorFormat is returned when a hex color string cannot be
// parsed. Callers should substitute their own fallback color.
var ErrInvalidColorFormat = errors.New("invalid color format")

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Invert returns the night-mode inversion of the color: each of R, G, B
// reflected around the channel midpoint, alpha preserved.
func (c RGBA) Invert() RGBA {
	return RGBA{R: 1 - c.R, G: 1 - c.G, B: 1 - c.B, A: c.A}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// ParseHex parses a hex color string into an RGBA.
// Supported formats (leading '#' optional): "RGB", "RGBA", "RRGGBB",
// "RRGGBBAA". In the shorthand forms each single digit d maps to channel
// d/15, so "F" is full intensity and "8" is 8/15, not 0x88/255.
//
// Malformed input (wrong length, non-hex characters) returns an error
// wrapping [ErrInvalidColorFormat].
func ParseHex(hex string) (RGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	n := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		v, ok := hexNibble(s[i])
		if !ok {
			return RGBA{}, fmt.Errorf("%w: %q has non-hex character %q", ErrInvalidColorFormat, hex, s[i])
		}
		n[i] = v
	}

	c := RGBA{A: 1}
	switch len(n) {
	case 3: // RGB
		c.R, c.G, c.B = float64(n[0])/15, float64(n[1])/15, float64(n[2])/15
	case 4: // RGBA
		c.R, c.G, c.B = float64(n[0])/15, float64(n[1])/15, float64(n[2])/15
		c.A = float64(n[3]) / 15
	case 6: // RRGGBB
		c.R = float64(n[0]*16+n[1]) / 255
		c.G = float64(n[2]*16+n[3]) / 255
		c.B = float64(n[4]*16+n[5]) / 255
	case 8: // RRGGBBAA
		c.R = float64(n[0]*16+n[1]) / 255
		c.G = float64(n[2]*16+n[3]) / 255
		c.B = float64(n[4]*16+n[5]) / 255
		c.A = float64(n[6]*16+n[7]) / 255
	default:
		return RGBA{}, fmt.Errorf("%w: %q has length %d, want 3, 4, 6 or 8 digits", ErrInvalidColorFormat, hex, len(s))
	}
	return c, nil
}

// Hex creates a color from a hex string, returning opaque black if the
// string is malformed. Use [ParseHex] to detect malformed input.
func Hex(hex string) RGBA {
	c, err := ParseHex(hex)
	if err != nil {
		return RGBA{A: 1}
	}
	return c
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA{}
)

// HSV is a color in hue-saturation-value form.
// H is in degrees [0, 360); S and V are in [0, 1].
type HSV struct {
	H, S, V float64
}

// RGB converts the color to RGBA form using the piecewise sextant formula:
// chroma c = V*S, intermediate x = c*(1-|((H/60) mod 2)-1|), match
// value m = V-c; the 60-degree sextant selects the channel ordering.
func (h HSV) RGB() RGBA {
	hue := math.Mod(h.H, 360)
	if hue < 0 {
		hue += 360
	}

	c := h.V * h.S
	x := c * (1 - math.Abs(math.Mod(hue/60, 2)-1))
	m := h.V - c

	var r, g, b float64
	switch {
	case hue < 60:
		r, g, b = c, x, 0
	case hue < 120:
		r, g, b = x, c, 0
	case hue < 180:
		r, g, b = 0, c, x
	case hue < 240:
		r, g, b = 0, x, c
	case hue < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB(r+m, g+m, b+m)
}

// Hex renders the color as an uppercase "#RRGGBB" string. Alpha is not
// represented; the result re-parses to the same HSV within 1/255 per
// channel.
func (h HSV) Hex() string {
	c := h.RGB()
	return fmt.Sprintf("#%02X%02X%02X",
		uint8(math.Round(clamp255(c.R*255))),
		uint8(math.Round(clamp255(c.G*255))),
		uint8(math.Round(clamp255(c.B*255))))
}

// RGBToHSV converts an RGBA color to HSV. Alpha is ignored.
func RGBToHSV(c RGBA) HSV {
	mx := math.Max(c.R, math.Max(c.G, c.B))
	mn := math.Min(c.R, math.Min(c.G, c.B))
	delta := mx - mn

	var h float64
	switch {
	case delta == 0:
		h = 0
	case mx == c.R:
		h = 60 * math.Mod((c.G-c.B)/delta, 6)
	case mx == c.G:
		h = 60 * ((c.B-c.R)/delta + 2)
	default:
		h = 60 * ((c.R-c.G)/delta + 4)
	}
	if h < 0 {
		h += 360
	}

	var s float64
	if mx > 0 {
		s = delta / mx
	}
	return HSV{H: h, S: s, V: mx}
}

// HexToHSV parses a hex color string directly into HSV.
// Malformed input returns an error wrapping [ErrInvalidColorFormat].
func HexToHSV(hex string) (HSV, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return HSV{}, err
	}
	return RGBToHSV(c), nil
}
