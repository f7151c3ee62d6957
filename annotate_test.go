package housestyle

import "testing"

func TestTitleBlock(t *testing.T) {
	t.Run("renders both lines", func(t *testing.T) {
		block := TitleBlock{
			Title:    "Figure X. Real GDP",
			Subtitle: "(Index, 2010=100)",
			Theme:    Classic(),
		}
		if block.Render() == nil {
			t.Fatal("Render() returned nil")
		}
	})

	t.Run("height grows with a subtitle", func(t *testing.T) {
		var (
			with    = TitleBlock{Title: "t", Subtitle: "s", Theme: Outlook()}
			without = TitleBlock{Title: "t", Theme: Outlook()}
		)
		if with.Height() <= without.Height() {
			t.Errorf("Height() with subtitle %g should exceed %g", with.Height(), without.Height())
		}
	})
}

func TestDecoratorsAreLayers(t *testing.T) {
	layers := []Data{
		TitleBlock{Title: "t", Theme: Outlook()},
		Caption{Text: "c", Theme: Outlook()},
		ForecastBand[float64, float64]{},
		TickOverlay{},
	}
	for _, l := range layers {
		if l.OffsetX() != 0 || l.OffsetY() != 0 {
			t.Errorf("%T should not be offset", l)
		}
	}
}

func TestForecastBand(t *testing.T) {
	var (
		x = NumberScaler(NumberDomain(2000, 2025), NewRange(0, 500))
		y = NumberScaler(NumberDomain(100, 0), NewRange(0, 300))
	)
	band := ForecastBand[float64, float64]{
		From: 2022,
		To:   2025,
		X:    x,
		Y:    y,
	}
	if band.Render() == nil {
		t.Fatal("Render() returned nil")
	}
	if band.OffsetX() != 0 || band.OffsetY() != 0 {
		t.Error("band should not be offset")
	}
}

func TestTickOverlay(t *testing.T) {
	brk, err := GenerateBreaks([]float64{0, 25})
	if err != nil {
		t.Fatalf("GenerateBreaks() returned error: %v", err)
	}
	overlay := TickOverlay{
		Breaks:       brk,
		Y:            NumberScaler(brk.Flip(), NewRange(0, 300)),
		Span:         NewRange(0, 500),
		Sizes:        Outlook().LineTicks,
		WithEndTicks: true,
	}
	if overlay.Render() == nil {
		t.Fatal("Render() returned nil")
	}
}
