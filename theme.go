package housestyle

// TickSizes describes inward tick marks drawn along a plot edge.
type TickSizes struct {
	Major      float64
	Minor      float64
	MajorWidth float64
	MinorWidth float64
}

// Theme is the immutable description of one house style. A Theme is
// built once by one of the constructors below and then passed around
// by value; nothing in the library mutates it.
type Theme struct {
	Families []string

	TextSize     float64
	TitleSize    float64
	SubtitleSize float64
	CaptionSize  float64
	LegendSize   float64

	TextColor  string
	TitleColor string
	Background string

	BorderColor string
	BorderWidth float64

	LineTicks TickSizes
	BarTicks  TickSizes

	Colors Palette
}

// Ticks returns the tick sizes for the given chart kind. Bar charts
// use shorter marks so they do not collide with the bars.
func (t Theme) Ticks(bar bool) TickSizes {
	if bar {
		return t.BarTicks
	}
	return t.LineTicks
}

// Axis marks stay black in every house style, even when titles are
// colored.
const tickColor = "black"

// Classic returns the book style: large text, colored bold titles and
// a full light grey border around the plot area.
func Classic() Theme {
	return Theme{
		Families:     []string{"Segoe UI", "sans-serif"},
		TextSize:     14,
		TitleSize:    18,
		SubtitleSize: 16,
		CaptionSize:  12,
		LegendSize:   12,
		TextColor:    "black",
		TitleColor:   ClassicBlue,
		Background:   "white",
		BorderColor:  ClassicLightGrey,
		BorderWidth:  1,
		LineTicks:    TickSizes{Major: 6, Minor: 4, MajorWidth: 1, MinorWidth: 0.75},
		BarTicks:     TickSizes{Major: 4, Minor: 2.5, MajorWidth: 1, MinorWidth: 0.75},
		Colors:       ClassicColors,
	}
}

// ClassicPanel is the book style scaled down for small multiples.
func ClassicPanel() Theme {
	t := Classic()
	t.TextSize = 10
	t.TitleSize = 14
	t.SubtitleSize = 12
	t.CaptionSize = 10
	t.LegendSize = 10
	return t
}

// Outlook returns the report style: compact text, hairline black
// border and inward tick marks on both vertical edges.
func Outlook() Theme {
	return Theme{
		Families:     []string{"Arial", "sans-serif"},
		TextSize:     8,
		TitleSize:    10,
		SubtitleSize: 9,
		CaptionSize:  8,
		LegendSize:   8,
		TextColor:    "black",
		TitleColor:   OutlookBlue,
		Background:   "white",
		BorderColor:  "black",
		BorderWidth:  0.4,
		LineTicks:    TickSizes{Major: 4, Minor: 2.5, MajorWidth: 0.4, MinorWidth: 0.3},
		BarTicks:     TickSizes{Major: 2.5, Minor: 1.5, MajorWidth: 0.4, MinorWidth: 0.3},
		Colors:       OutlookColors,
	}
}

// OutlookPanel is the report style scaled down for small multiples.
func OutlookPanel() Theme {
	t := Outlook()
	t.TextSize = 7
	t.TitleSize = 8
	t.SubtitleSize = 7
	t.CaptionSize = 7
	t.LegendSize = 6.5
	return t
}

// Named looks a theme up by its configuration name.
func Named(name string) (Theme, bool) {
	switch name {
	case "classic":
		return Classic(), true
	case "classic-panel":
		return ClassicPanel(), true
	case "", "outlook":
		return Outlook(), true
	case "outlook-panel":
		return OutlookPanel(), true
	default:
		return Theme{}, false
	}
}
