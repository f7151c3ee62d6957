// Package decode loads chart and theme settings from TOML style
// files, so a figure can be restyled without touching code.
package decode

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/midbel/housestyle"
	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Theme  ThemeConfig   `toml:"theme"`
	Chart  ChartConfig   `toml:"chart"`
	Series []SerieConfig `toml:"series"`
}

type ThemeConfig struct {
	Base         string   `toml:"base"`
	Families     []string `toml:"font-family"`
	TextSize     float64  `toml:"text-size"`
	TitleSize    float64  `toml:"title-size"`
	SubtitleSize float64  `toml:"subtitle-size"`
	CaptionSize  float64  `toml:"caption-size"`
	LegendSize   float64  `toml:"legend-size"`
	TitleColor   string   `toml:"title-color"`
	BorderColor  string   `toml:"border-color"`
	BorderWidth  float64  `toml:"border-width"`
	Palette      string   `toml:"palette"`
}

type ChartConfig struct {
	Title    string    `toml:"title"`
	Subtitle string    `toml:"subtitle"`
	Caption  string    `toml:"caption"`
	Width    float64   `toml:"width"`
	Height   float64   `toml:"height"`
	Ticks    int       `toml:"ticks"`
	Padding  []float64 `toml:"padding"`
	Legend   string    `toml:"legend"`
}

type SerieConfig struct {
	File          string  `toml:"file"`
	Title         string  `toml:"title"`
	Color         string  `toml:"color"`
	Type          string  `toml:"type"`
	Point         string  `toml:"point"`
	Style         string  `toml:"style"`
	Width         float64 `toml:"width"`
	Fill          bool    `toml:"fill"`
	IgnoreMissing bool    `toml:"ignore-missing"`
}

const (
	defaultWidth  = 800
	defaultHeight = 600
	defaultTicks  = 6
)

func Default() Config {
	var cfg Config
	cfg.Chart.Width = defaultWidth
	cfg.Chart.Height = defaultHeight
	cfg.Chart.Ticks = defaultTicks
	return cfg
}

func Decode(r io.Reader) (*Config, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := toml.Unmarshal(buf, &cfg); err != nil {
		return nil, DecodeError{Message: err.Error()}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func DecodeFile(file string) (*Config, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	cfg, err := Decode(r)
	if err != nil {
		var de DecodeError
		if errors.As(err, &de) {
			de.File = file
			return nil, de
		}
	}
	return cfg, err
}

func (c Config) validate() error {
	if _, err := c.BuildTheme(); err != nil {
		return err
	}
	if _, err := c.Chart.Orient(); err != nil {
		return err
	}
	for _, s := range c.Series {
		if _, err := s.LineStyle(); err != nil {
			return err
		}
		switch s.Type {
		case "", "line", "step", "scatter", "bar":
		default:
			return OptionError{Option: "type", Section: "series", Value: s.Type}
		}
	}
	return nil
}

// BuildTheme resolves the named base theme and applies the overrides
// of the [theme] section on top of it.
func (c Config) BuildTheme() (housestyle.Theme, error) {
	th, ok := housestyle.Named(c.Theme.Base)
	if !ok {
		return th, OptionError{Option: "base", Section: "theme", Value: c.Theme.Base}
	}
	if len(c.Theme.Families) > 0 {
		th.Families = c.Theme.Families
	}
	if c.Theme.TextSize > 0 {
		th.TextSize = c.Theme.TextSize
	}
	if c.Theme.TitleSize > 0 {
		th.TitleSize = c.Theme.TitleSize
	}
	if c.Theme.SubtitleSize > 0 {
		th.SubtitleSize = c.Theme.SubtitleSize
	}
	if c.Theme.CaptionSize > 0 {
		th.CaptionSize = c.Theme.CaptionSize
	}
	if c.Theme.LegendSize > 0 {
		th.LegendSize = c.Theme.LegendSize
	}
	if c.Theme.TitleColor != "" {
		th.TitleColor = c.Theme.TitleColor
	}
	if c.Theme.BorderColor != "" {
		th.BorderColor = c.Theme.BorderColor
	}
	if c.Theme.BorderWidth > 0 {
		th.BorderWidth = c.Theme.BorderWidth
	}
	if c.Theme.Palette != "" {
		p, err := getPalette(c.Theme.Palette)
		if err != nil {
			return th, err
		}
		th.Colors = p
	}
	return th, nil
}

func getPalette(name string) (housestyle.Palette, error) {
	switch name {
	case "classic":
		return housestyle.ClassicColors, nil
	case "classic-bar":
		return housestyle.ClassicBarColors, nil
	case "outlook":
		return housestyle.OutlookColors, nil
	case "category10":
		return housestyle.Category10, nil
	case "tableau10":
		return housestyle.Tableau10, nil
	default:
		return nil, OptionError{Option: "palette", Section: "theme", Value: name}
	}
}

// Pad expands the padding list the CSS way: one value for all sides,
// two for vertical/horizontal, four for top, right, bottom, left.
func (c ChartConfig) Pad() housestyle.Padding {
	p := housestyle.Padding{
		Top:    60,
		Right:  40,
		Bottom: 50,
		Left:   60,
	}
	switch len(c.Padding) {
	case 1:
		p.Top, p.Right, p.Bottom, p.Left = c.Padding[0], c.Padding[0], c.Padding[0], c.Padding[0]
	case 2:
		p.Top, p.Bottom = c.Padding[0], c.Padding[0]
		p.Right, p.Left = c.Padding[1], c.Padding[1]
	case 4:
		p.Top, p.Right, p.Bottom, p.Left = c.Padding[0], c.Padding[1], c.Padding[2], c.Padding[3]
	default:
	}
	return p
}

func (c ChartConfig) Orient() (housestyle.Orientation, error) {
	switch c.Legend {
	case "":
		return 0, nil
	case "top-left":
		return housestyle.OrientLeft | housestyle.OrientTop, nil
	case "top":
		return housestyle.OrientTop, nil
	case "top-right":
		return housestyle.OrientRight | housestyle.OrientTop, nil
	case "right":
		return housestyle.OrientRight, nil
	case "bottom-right":
		return housestyle.OrientRight | housestyle.OrientBottom, nil
	case "bottom":
		return housestyle.OrientBottom, nil
	case "bottom-left":
		return housestyle.OrientLeft | housestyle.OrientBottom, nil
	case "left":
		return housestyle.OrientLeft, nil
	default:
		return 0, OptionError{Option: "legend", Section: "chart", Value: c.Legend}
	}
}

func (s SerieConfig) LineStyle() (housestyle.LineStyle, error) {
	switch s.Style {
	case "", "straight":
		return housestyle.StyleStraight, nil
	case "dotted":
		return housestyle.StyleDotted, nil
	case "dashed":
		return housestyle.StyleDashed, nil
	default:
		return 0, OptionError{Option: "style", Section: "series", Value: s.Style}
	}
}

func (s SerieConfig) MakeNumberRenderer() (housestyle.Renderer[float64, float64], error) {
	return makeRenderer[float64, float64](s)
}

func (s SerieConfig) MakeTimeRenderer() (housestyle.Renderer[time.Time, float64], error) {
	return makeRenderer[time.Time, float64](s)
}

func (s SerieConfig) MakeCategoryRenderer(colors housestyle.Palette) (housestyle.Renderer[string, float64], error) {
	switch s.Type {
	case "bar":
		return housestyle.BarRenderer[string, float64]{
			Fill:  colors,
			Width: s.Width,
		}, nil
	default:
		return nil, OptionError{Option: "type", Section: "series", Value: s.Type}
	}
}

func makeRenderer[T housestyle.ScalerConstraint, U ~float64](s SerieConfig) (housestyle.Renderer[T, U], error) {
	style, err := s.LineStyle()
	if err != nil {
		return nil, err
	}
	switch s.Type {
	case "", "line":
		return housestyle.LinearRenderer[T, U]{
			Color:         s.Color,
			Width:         s.Width,
			Style:         style,
			Fill:          s.Fill,
			Point:         housestyle.GetShape(s.Point),
			IgnoreMissing: s.IgnoreMissing,
		}, nil
	case "step":
		return housestyle.StepRenderer[T, U]{
			Color:         s.Color,
			Width:         s.Width,
			Fill:          s.Fill,
			Point:         housestyle.GetShape(s.Point),
			IgnoreMissing: s.IgnoreMissing,
		}, nil
	case "scatter":
		point := housestyle.GetShape(s.Point)
		if point == nil {
			point = housestyle.GetCircle
		}
		return housestyle.PointRenderer[T, U]{
			Color: s.Color,
			Point: point,
		}, nil
	default:
		return nil, OptionError{Option: "type", Section: "series", Value: s.Type}
	}
}
