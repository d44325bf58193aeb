package core

import (
	"fmt"
	"math"
)

const rgbFlag Color = 1 << 24

// RGB returns a true color.
func RGB(r, g, b uint8) Color {
	return rgbFlag | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// HSL returns the true color for hue h in turns [0, 1), saturation s and
// lightness l in [0, 1].
func HSL(h, s, l float64) Color {
	s = ClampF(s, 0, 1)
	l = ClampF(l, 0, 1)
	h = WrapF(h, 1) * 6

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h, 2)-1))
	var r, g, b float64
	switch int(h) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := l - c/2
	return RGB(channel(r+m), channel(g+m), channel(b+m))
}

func channel(v float64) uint8 {
	return uint8(math.Round(ClampF(v, 0, 1) * 255))
}

// IsRGB reports whether c is a true color rather than a predefined one.
func (c Color) IsRGB() bool {
	return c&rgbFlag != 0
}

// Components returns the red, green and blue channels of a true color.
func (c Color) Components() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex formats a true color as #rrggbb. Predefined colors give "".
func (c Color) Hex() string {
	if !c.IsRGB() {
		return ""
	}
	r, g, b := c.Components()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
