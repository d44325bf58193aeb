package crystal

import (
	"testing"

	"github.com/vovakirdan/crystal-run/internal/core"
)

func TestNormalHueOrder(t *testing.T) {
	got := NormalHueOrder(8)
	want := []float64{0, 0.5, 0.25, 0.75, 0.125, 0.625, 0.375, 0.875}
	if len(got) != len(want) {
		t.Fatalf("len = %d, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("hue[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestNormalHueOrderTruncates(t *testing.T) {
	if got := NormalHueOrder(3); len(got) != 3 || got[2] != 0.25 {
		t.Errorf("NormalHueOrder(3) = %v", got)
	}
	if got := NormalHueOrder(0); got != nil {
		t.Errorf("NormalHueOrder(0) = %v, expected nil", got)
	}
	seen := map[float64]bool{}
	for _, h := range NormalHueOrder(32) {
		if h < 0 || h >= 1 || seen[h] {
			t.Fatalf("bad or duplicate hue %v", h)
		}
		seen[h] = true
	}
}

func TestHueColor(t *testing.T) {
	tests := []struct {
		hue  float64
		want string
	}{
		{0, "#ff3333"},
		{0.5, "#33ffff"},
		{1, "#ff3333"},
		{0.75, "#9933ff"},
	}
	for _, tt := range tests {
		if got := HueColor(tt.hue).Hex(); got != tt.want {
			t.Errorf("HueColor(%v) = %s, expected %s", tt.hue, got, tt.want)
		}
	}
}

func TestPaletteSlotsAreDistinct(t *testing.T) {
	for _, n := range []int{16, 32} {
		p := NewPalette(n)
		seen := map[core.Color]int{}
		for i := 0; i < p.Len(); i++ {
			c := p.Color(i)
			if !c.IsRGB() {
				t.Errorf("slot %d of %d is not a true color", i, n)
			}
			if j, ok := seen[c]; ok {
				t.Errorf("slots %d and %d of %d share %s", j, i, n, c.Hex())
			}
			seen[c] = i
		}
	}
}

func TestPaletteWraps(t *testing.T) {
	p := NewPalette(4)
	if p.Len() != 4 {
		t.Fatalf("Len = %d, expected 4", p.Len())
	}
	if p.Color(5) != p.Color(1) || p.Color(-1) != p.Color(3) {
		t.Error("palette slots should wrap")
	}
	if (Palette{}).Color(2) != core.ColorDefault {
		t.Error("empty palette should give the default color")
	}
}
