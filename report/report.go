// Package report lays several charts sharing one break set out as a
// single figure, the small multiples convention of outlook style
// publications.
package report

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/midbel/housestyle"
	"github.com/midbel/svg"
	"golang.org/x/sync/errgroup"
)

// Window marks a forecast span on the x axis of one panel.
type Window struct {
	From float64
	To   float64
}

type Panel struct {
	Title    string
	Color    string
	Points   []housestyle.Point[float64, float64]
	Forecast *Window
}

type Report struct {
	Title    string
	Subtitle string
	Caption  string
	Theme    housestyle.Theme
	Width    float64
	Height   float64
	Cols     int
	Padding  housestyle.Padding
	XTicks   int

	Panels []Panel
}

const (
	defaultWidth  = 800
	defaultHeight = 600
	defaultCols   = 2
	defaultXTicks = 6
)

var defaultPad = housestyle.Padding{
	Top:    30,
	Right:  15,
	Bottom: 30,
	Left:   35,
}

// Render draws every panel on a shared y scale and writes the figure
// as one SVG document. Panels are composed concurrently; the y breaks
// are computed once over the values of all panels so the panels stay
// comparable.
func (r Report) Render(w io.Writer) error {
	if len(r.Panels) == 0 {
		return fmt.Errorf("report: no panel to render")
	}
	r = r.withDefaults()

	var all []float64
	for _, p := range r.Panels {
		all = append(all, housestyle.Ys(p.Points)...)
	}
	brk, err := housestyle.GenerateBreaks(all)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	xmin, xmax, err := xdomain(r.Panels)
	if err != nil {
		return err
	}

	var (
		header = r.headerHeight()
		footer = r.footerHeight()
		rows   = (len(r.Panels) + r.Cols - 1) / r.Cols
		cellw  = r.Width / float64(r.Cols)
		cellh  = (r.Height - header - footer) / float64(rows)
		els    = make([]svg.Element, len(r.Panels))
		grp    errgroup.Group
	)
	for i, p := range r.Panels {
		i, p := i, p
		grp.Go(func() error {
			el, err := r.panelElement(p, brk, xmin, xmax, cellw, cellh)
			if err != nil {
				return fmt.Errorf("panel %s: %w", p.Title, err)
			}
			els[i] = el
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}

	doc := svg.NewSVG()
	doc.Dim = svg.NewDim(r.Width, r.Height)
	doc.OmitProlog = true

	if r.Theme.Background != "" {
		var rec svg.Rect
		rec.Dim = svg.NewDim(r.Width, r.Height)
		rec.Fill = svg.NewFill(r.Theme.Background)
		doc.Append(rec.AsElement())
	}
	if r.Title != "" {
		block := housestyle.TitleBlock{
			Title:    r.Title,
			Subtitle: r.Subtitle,
			Theme:    r.Theme,
		}
		tg := svg.Group{Transform: svg.Translate(r.Padding.Left, 0)}
		tg.Append(block.Render())
		doc.Append(tg.AsElement())
	}
	for i, el := range els {
		var (
			col  = i % r.Cols
			row  = i / r.Cols
			cell = svg.Group{Transform: svg.Translate(float64(col)*cellw, header+float64(row)*cellh)}
		)
		cell.Append(el)
		doc.Append(cell.AsElement())
	}
	if r.Caption != "" {
		note := housestyle.Caption{
			Text:  r.Caption,
			Theme: r.Theme,
		}
		cg := svg.Group{Transform: svg.Translate(r.Padding.Left, r.Height-footer+r.Theme.CaptionSize*0.4)}
		cg.Append(note.Render())
		doc.Append(cg.AsElement())
	}

	bw := bufio.NewWriter(w)
	defer bw.Flush()
	doc.Render(bw)
	return nil
}

func (r Report) panelElement(p Panel, brk housestyle.Breaks, xmin, xmax, width, height float64) (svg.Element, error) {
	if len(p.Points) == 0 {
		return nil, fmt.Errorf("no point")
	}
	var (
		pad    = r.Padding
		span   = housestyle.NewRange(0, width-pad.Horizontal())
		xscale = housestyle.NumberScaler(housestyle.NumberDomain(xmin, xmax), span)
		yscale = housestyle.NumberScaler(brk.Flip(), housestyle.NewRange(0, height-pad.Vertical()))
		color  = p.Color
	)
	if color == "" {
		color = r.Theme.Colors.Color(0)
	}

	ch := housestyle.Chart[float64, float64]{
		Title:   p.Title,
		Width:   width,
		Height:  height,
		Theme:   r.Theme,
		Padding: pad,
		Left: housestyle.NumberAxis{
			Orientation:    housestyle.OrientLeft,
			Scaler:         yscale,
			Breaks:         brk,
			WithLabelTicks: true,
			TextSize:       r.Theme.TextSize,
		},
		Bottom: housestyle.NumberAxis{
			Orientation:    housestyle.OrientBottom,
			Scaler:         xscale,
			Ticks:          r.XTicks,
			TextSize:       r.Theme.TextSize,
			Sizes:          r.Theme.LineTicks,
			WithInnerTicks: true,
			WithLabelTicks: true,
			Format: func(f float64) string {
				return strconv.FormatFloat(f, 'f', -1, 64)
			},
		},
	}

	var layers []housestyle.Data
	if p.Forecast != nil {
		layers = append(layers, housestyle.ForecastBand[float64, float64]{
			From: clamp(p.Forecast.From, xmin, xmax),
			To:   clamp(p.Forecast.To, xmin, xmax),
			X:    xscale,
			Y:    yscale,
		})
	}
	layers = append(layers, housestyle.TickOverlay{
		Breaks:       brk,
		Y:            yscale,
		Span:         span,
		Sizes:        r.Theme.LineTicks,
		WithEndTicks: true,
	})
	layers = append(layers, housestyle.Serie[float64, float64]{
		Title:  p.Title,
		Color:  color,
		X:      xscale,
		Y:      yscale,
		Points: p.Points,
		Renderer: housestyle.LinearRenderer[float64, float64]{
			Color: color,
			Width: r.Theme.Style().Line.Width,
		},
	})
	return ch.Element(layers...), nil
}

func (r Report) withDefaults() Report {
	if r.Theme.TextSize == 0 {
		r.Theme = housestyle.OutlookPanel()
	}
	if r.Width <= 0 {
		r.Width = defaultWidth
	}
	if r.Height <= 0 {
		r.Height = defaultHeight
	}
	if r.Cols <= 0 {
		r.Cols = defaultCols
	}
	if r.XTicks <= 0 {
		r.XTicks = defaultXTicks
	}
	if r.Padding == (housestyle.Padding{}) {
		r.Padding = defaultPad
	}
	return r
}

func (r Report) headerHeight() float64 {
	if r.Title == "" {
		return 0
	}
	block := housestyle.TitleBlock{
		Title:    r.Title,
		Subtitle: r.Subtitle,
		Theme:    r.Theme,
	}
	return block.Height()
}

func (r Report) footerHeight() float64 {
	if r.Caption == "" {
		return 0
	}
	return r.Theme.CaptionSize * 2
}

func xdomain(panels []Panel) (float64, float64, error) {
	var (
		min   = math.Inf(1)
		max   = math.Inf(-1)
		found bool
	)
	for _, p := range panels {
		for _, pt := range p.Points {
			if math.IsNaN(pt.X) || math.IsInf(pt.X, 0) {
				continue
			}
			found = true
			if pt.X < min {
				min = pt.X
			}
			if pt.X > max {
				max = pt.X
			}
		}
	}
	if !found || min >= max {
		return 0, 0, fmt.Errorf("report: panels have no usable x extent")
	}
	return min, max, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
