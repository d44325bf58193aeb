package crystal

import "github.com/vovakirdan/crystal-run/internal/core"

// NormalHueOrder returns n hues in [0, 1) ordered by binary subdivision
// (0, 1/2, 1/4, 3/4, 1/8, 5/8, ...), so any prefix of the list is spread
// as evenly as possible around the color wheel.
//
// noinline works around a go1.25.1 compiler crash ("len larger than cap for
// OSLICEHEADER") when a call with constant n <= 0 is inlined.
//
//go:noinline
func NormalHueOrder(n int) []float64 {
	if n <= 0 {
		return nil
	}
	hues := make([]float64, 1, n)
	step := 1.0
	for len(hues) < n {
		step /= 2
		for _, h := range hues {
			if len(hues) == n {
				break
			}
			hues = append(hues, h+step)
		}
	}
	return hues
}

// Crystal hues are fully saturated and a little lighter than pure.
const (
	hueSaturation = 1.0
	hueLightness  = 0.6
)

// HueColor returns the true color for a hue in turns.
func HueColor(h float64) core.Color {
	return core.HSL(h, hueSaturation, hueLightness)
}

// Palette is a fixed list of colors indexed by slot.
type Palette struct {
	colors []core.Color
}

// NewPalette builds an n-slot palette in hue order.
func NewPalette(n int) Palette {
	hues := NormalHueOrder(n)
	colors := make([]core.Color, len(hues))
	for i, h := range hues {
		colors[i] = HueColor(h)
	}
	return Palette{colors: colors}
}

// Color returns the color for slot i, wrapping out-of-range slots.
func (p Palette) Color(i int) core.Color {
	if len(p.colors) == 0 {
		return core.ColorDefault
	}
	i %= len(p.colors)
	if i < 0 {
		i += len(p.colors)
	}
	return p.colors[i]
}

// Len returns the number of slots.
func (p Palette) Len() int {
	return len(p.colors)
}
