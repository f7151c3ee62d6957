package main

import (
	"fmt"
	"io"
	"math"

	"github.com/midbel/housestyle"
	"github.com/midbel/housestyle/decode"
)

type LineCmd struct {
	Title    string  `help:"Chart title."`
	Subtitle string  `help:"Chart subtitle, typically the unit of the series."`
	Caption  string  `help:"Caption printed below the chart."`
	Theme    string  `help:"Theme name." default:"classic" enum:"classic,classic-panel,outlook,outlook-panel"`
	Config   string  `help:"TOML configuration file. Flags above are ignored when given." type:"existingfile"`
	Width    float64 `help:"Chart width." default:"800"`
	Height   float64 `help:"Chart height." default:"600"`
	Xcol     int     `help:"Index of the x column." default:"0"`
	Ycol     int     `help:"Index of the y column." default:"1"`
	Span     string  `help:"X span as from:to. Computed from the data when omitted."`
	Step     float64 `help:"Distance between major breaks on the y axis. Computed when omitted."`
	Forecast string  `help:"Shade the x span given as from:to."`
	Output   string  `short:"o" help:"Output file. Writes to stdout when omitted."`

	Files []string `arg:"" optional:"" help:"CSV data files, one serie per file." type:"existingfile"`
}

func (c *LineCmd) Run() error {
	cfg, err := c.config()
	if err != nil {
		return err
	}
	theme, err := cfg.BuildTheme()
	if err != nil {
		return err
	}
	orient, err := cfg.Chart.Orient()
	if err != nil {
		return err
	}

	sources := cfg.Series
	for _, f := range c.Files {
		sources = append(sources, decode.SerieConfig{File: f})
	}
	if len(sources) == 0 {
		return fmt.Errorf("no data file given")
	}

	var (
		sets [][]housestyle.Point[float64, float64]
		all  []float64
	)
	for _, s := range sources {
		points, err := readPoints(s.File, c.Xcol, c.Ycol)
		if err != nil {
			return fmt.Errorf("%s: %w", s.File, err)
		}
		sets = append(sets, points)
		all = append(all, housestyle.Ys(points)...)
	}
	brk, err := c.breaks(all)
	if err != nil {
		return err
	}
	xmin, xmax, err := c.span(sets)
	if err != nil {
		return err
	}

	var (
		pad    = cfg.Chart.Pad()
		xscale = housestyle.NumberScaler(housestyle.NumberDomain(xmin, xmax), housestyle.NewRange(0, cfg.Chart.Width-pad.Horizontal()))
		yscale = housestyle.NumberScaler(brk.Flip(), housestyle.NewRange(0, cfg.Chart.Height-pad.Vertical()))
	)

	ch := housestyle.Chart[float64, float64]{
		Title:    cfg.Chart.Title,
		Subtitle: cfg.Chart.Subtitle,
		Caption:  cfg.Chart.Caption,
		Width:    cfg.Chart.Width,
		Height:   cfg.Chart.Height,
		Theme:    theme,
		Padding:  pad,
		Left: housestyle.NumberAxis{
			Orientation:    housestyle.OrientLeft,
			Scaler:         yscale,
			Breaks:         brk,
			WithLabelTicks: true,
			TextSize:       theme.TextSize,
		},
		Bottom: housestyle.NumberAxis{
			Orientation:    housestyle.OrientBottom,
			Scaler:         xscale,
			Ticks:          cfg.Chart.Ticks,
			Sizes:          theme.LineTicks,
			TextSize:       theme.TextSize,
			WithInnerTicks: true,
			WithLabelTicks: true,
		},
	}
	ch.Legend.Orient = orient

	var layers []housestyle.Data
	if c.Forecast != "" {
		from, to, err := parseSpan(c.Forecast)
		if err != nil {
			return err
		}
		layers = append(layers, housestyle.ForecastBand[float64, float64]{
			From: from,
			To:   to,
			X:    xscale,
			Y:    yscale,
		})
	}
	layers = append(layers, housestyle.TickOverlay{
		Breaks:       brk,
		Y:            yscale,
		Span:         housestyle.NewRange(0, ch.DrawingWidth()),
		Sizes:        theme.LineTicks,
		WithEndTicks: true,
	})
	style := theme.Style()
	for i, s := range sources {
		if s.Color == "" {
			s.Color = theme.Colors.Color(i)
		}
		if s.Width <= 0 {
			s.Width = style.Line.Width
		}
		if s.Title == "" {
			s.Title = getIdent(s.File)
		}
		rdr, err := s.MakeNumberRenderer()
		if err != nil {
			return err
		}
		layers = append(layers, housestyle.Serie[float64, float64]{
			Title:    s.Title,
			Color:    s.Color,
			X:        xscale,
			Y:        yscale,
			Points:   sets[i],
			Renderer: rdr,
		})
	}

	return withOutput(c.Output, func(w io.Writer) error {
		ch.Render(w, layers...)
		return nil
	})
}

func (c *LineCmd) config() (*decode.Config, error) {
	if c.Config != "" {
		return decode.DecodeFile(c.Config)
	}
	cfg := decode.Default()
	cfg.Theme.Base = c.Theme
	cfg.Chart.Title = c.Title
	cfg.Chart.Subtitle = c.Subtitle
	cfg.Chart.Caption = c.Caption
	cfg.Chart.Width = c.Width
	cfg.Chart.Height = c.Height
	return &cfg, nil
}

func (c *LineCmd) breaks(all []float64) (housestyle.Breaks, error) {
	if c.Step > 0 {
		return housestyle.GenerateBreaksBy(all, c.Step)
	}
	return housestyle.GenerateBreaks(all)
}

func (c *LineCmd) span(sets [][]housestyle.Point[float64, float64]) (float64, float64, error) {
	if c.Span != "" {
		return parseSpan(c.Span)
	}
	var (
		min = math.Inf(1)
		max = math.Inf(-1)
	)
	for _, points := range sets {
		for _, pt := range points {
			min = math.Min(min, pt.X)
			max = math.Max(max, pt.X)
		}
	}
	if min >= max {
		return 0, 0, fmt.Errorf("data has no usable x extent")
	}
	return min, max, nil
}
