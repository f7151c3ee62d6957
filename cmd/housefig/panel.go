package main

import (
	"fmt"
	"io"

	"github.com/midbel/housestyle"
	"github.com/midbel/housestyle/report"
)

type PanelCmd struct {
	Title    string  `help:"Figure title."`
	Subtitle string  `help:"Figure subtitle, typically the unit of the series."`
	Caption  string  `help:"Caption printed below the figure."`
	Theme    string  `help:"Theme name." default:"outlook-panel" enum:"classic,classic-panel,outlook,outlook-panel"`
	Width    float64 `help:"Figure width." default:"800"`
	Height   float64 `help:"Figure height." default:"600"`
	Cols     int     `help:"Number of panel columns." default:"2"`
	Xcol     int     `help:"Index of the x column." default:"0"`
	Ycol     int     `help:"Index of the y column." default:"1"`
	Forecast string  `help:"Shade the x span given as from:to on every panel."`
	Output   string  `short:"o" help:"Output file. Writes to stdout when omitted."`

	Files []string `arg:"" help:"CSV data files, one panel per file." type:"existingfile"`
}

func (c *PanelCmd) Run() error {
	theme, ok := housestyle.Named(c.Theme)
	if !ok {
		return fmt.Errorf("%s: unknown theme", c.Theme)
	}
	var window *report.Window
	if c.Forecast != "" {
		from, to, err := parseSpan(c.Forecast)
		if err != nil {
			return err
		}
		window = &report.Window{From: from, To: to}
	}

	rp := report.Report{
		Title:    c.Title,
		Subtitle: c.Subtitle,
		Caption:  c.Caption,
		Theme:    theme,
		Width:    c.Width,
		Height:   c.Height,
		Cols:     c.Cols,
	}
	for _, f := range c.Files {
		points, err := readPoints(f, c.Xcol, c.Ycol)
		if err != nil {
			return fmt.Errorf("%s: %w", f, err)
		}
		rp.Panels = append(rp.Panels, report.Panel{
			Title:    getIdent(f),
			Points:   points,
			Forecast: window,
		})
	}

	return withOutput(c.Output, func(w io.Writer) error {
		return rp.Render(w)
	})
}
