package housestyle

import "testing"

func TestRGB(t *testing.T) {
	data := []struct {
		r, g, b uint8
		want    string
	}{
		{0, 0, 0, "#000000"},
		{255, 255, 255, "#ffffff"},
		{75, 130, 173, "#4b82ad"},
		{0, 98, 175, "#0062af"},
	}
	for _, d := range data {
		if got := RGB(d.r, d.g, d.b); got != d.want {
			t.Errorf("RGB(%d, %d, %d) = %s, want %s", d.r, d.g, d.b, got, d.want)
		}
	}
}

func TestPaletteColor(t *testing.T) {
	t.Run("cycles past the end", func(t *testing.T) {
		p := Palette{"#111111", "#222222", "#333333"}
		if got := p.Color(4); got != "#222222" {
			t.Errorf("Color(4) = %s, want #222222", got)
		}
	})
	t.Run("empty palette gives empty color", func(t *testing.T) {
		var p Palette
		if got := p.Color(0); got != "" {
			t.Errorf("Color(0) = %q, want empty", got)
		}
	})
}

func TestPalettes(t *testing.T) {
	if ClassicColors.Color(0) != ClassicBlue {
		t.Errorf("ClassicColors starts with %s, want %s", ClassicColors.Color(0), ClassicBlue)
	}
	if OutlookColors.Color(0) != OutlookBlue {
		t.Errorf("OutlookColors starts with %s, want %s", OutlookColors.Color(0), OutlookBlue)
	}
	var found bool
	for _, c := range ClassicBarColors {
		if c == "black" {
			found = true
		}
	}
	if !found {
		t.Error("ClassicBarColors should carry black for bar outlines")
	}
	if len(Category10) != 10 || len(Tableau10) != 10 {
		t.Errorf("categorical palettes should have 10 entries, got %d and %d", len(Category10), len(Tableau10))
	}
}
