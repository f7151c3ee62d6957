package housestyle

import (
	"github.com/midbel/svg"
)

// TitleBlock draws a left aligned title with an optional subtitle
// under it, colored per the theme. Charts place the block above their
// drawing area; it can also be composed onto any surface directly.
type TitleBlock struct {
	Title    string
	Subtitle string
	Theme    Theme
}

func (t TitleBlock) Render() svg.Element {
	grp := getBaseGroup("", 0, "title")
	grp.Fill = svg.NewFill(t.Theme.TitleColor)

	title := svg.NewText(t.Title)
	title.Pos = svg.NewPos(0, t.Theme.TitleSize)
	title.Font = svg.NewFont(t.Theme.TitleSize)
	title.Anchor = "start"
	grp.Append(title.AsElement())

	if t.Subtitle != "" {
		sub := svg.NewText(t.Subtitle)
		sub.Pos = svg.NewPos(0, t.Theme.TitleSize+t.Theme.SubtitleSize*1.4)
		sub.Font = svg.NewFont(t.Theme.SubtitleSize)
		sub.Anchor = "start"
		grp.Append(sub.AsElement())
	}
	return grp.AsElement()
}

func (t TitleBlock) OffsetX() float64 {
	return 0
}

func (t TitleBlock) OffsetY() float64 {
	return 0
}

// Height reports the vertical room the block needs above the plot.
func (t TitleBlock) Height() float64 {
	h := t.Theme.TitleSize * 1.4
	if t.Subtitle != "" {
		h += t.Theme.SubtitleSize * 1.4
	}
	return h
}

// Caption draws a left aligned source note, the line placed under the
// drawing area of a chart.
type Caption struct {
	Text  string
	Theme Theme
}

func (c Caption) Render() svg.Element {
	grp := getBaseGroup("", 0, "caption")
	grp.Fill = svg.NewFill(c.Theme.TextColor)

	txt := svg.NewText(c.Text)
	txt.Pos = svg.NewPos(0, c.Theme.CaptionSize)
	txt.Font = svg.NewFont(c.Theme.CaptionSize)
	txt.Anchor = "start"
	grp.Append(txt.AsElement())
	return grp.AsElement()
}

func (c Caption) OffsetX() float64 {
	return 0
}

func (c Caption) OffsetY() float64 {
	return 0
}

// ForecastBand shades a window of the x axis behind the series, the
// convention used to mark forecast years. It composes with series as a
// plain layer and should be given to Render before them so the series
// are drawn on top.
type ForecastBand[T, U ScalerConstraint] struct {
	From T
	To   T

	X Scaler[T]
	Y Scaler[U]

	Fill    string
	Opacity float64
}

func (b ForecastBand[T, U]) Render() svg.Element {
	var (
		x0   = b.X.Scale(b.From)
		x1   = b.X.Scale(b.To)
		fill = b.Fill
		op   = b.Opacity
	)
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if fill == "" {
		fill = OutlookLightGrey
	}
	if op <= 0 {
		op = 0.3
	}
	var rec svg.Rect
	rec.Pos = svg.NewPos(x0, 0)
	rec.Dim = svg.NewDim(x1-x0, b.Y.Max())
	rec.Fill = svg.NewFill(fill)
	rec.Fill.Opacity = op

	grp := getBaseGroup("", 0, "forecast")
	grp.Append(rec.AsElement())
	return grp.AsElement()
}

func (b ForecastBand[T, U]) OffsetX() float64 {
	return 0
}

func (b ForecastBand[T, U]) OffsetY() float64 {
	return 0
}

// TickOverlay draws inward tick marks for a break set on both vertical
// edges of the drawing area, majors longer and heavier than minors,
// with optional marks at both ends of the baseline. This is the report
// style convention where the y axis itself carries no ticks.
type TickOverlay struct {
	Breaks Breaks
	Y      Scaler[float64]
	Span   Range
	Sizes  TickSizes
	Color  string

	WithEndTicks bool
}

func (o TickOverlay) Render() svg.Element {
	var (
		grp   = getBaseGroup("", 0, "ticks")
		color = o.Color
		sizes = o.Sizes
	)
	if color == "" {
		color = tickColor
	}
	if sizes.Major <= 0 {
		sizes = Outlook().LineTicks
	}
	var (
		major = svg.NewStroke(color, sizes.MajorWidth)
		minor = svg.NewStroke(color, sizes.MinorWidth)
	)
	for _, v := range o.Breaks.Minor {
		o.appendPair(&grp, v, sizes.Minor, minor)
	}
	for _, v := range o.Breaks.Major {
		o.appendPair(&grp, v, sizes.Major, major)
	}
	if o.WithEndTicks {
		base := o.Y.Scale(o.Breaks.Limits.Min())
		for _, x := range []float64{o.Span.Min(), o.Span.Max() - sizes.Major} {
			seg := svg.NewLine(svg.NewPos(x, base), svg.NewPos(x+sizes.Major, base))
			seg.Stroke = major
			grp.Append(seg.AsElement())
		}
	}
	return grp.AsElement()
}

func (o TickOverlay) appendPair(grp *svg.Group, v, length float64, stroke svg.Stroke) {
	y := o.Y.Scale(v)

	left := svg.NewLine(svg.NewPos(o.Span.Min(), y), svg.NewPos(o.Span.Min()+length, y))
	left.Stroke = stroke
	grp.Append(left.AsElement())

	right := svg.NewLine(svg.NewPos(o.Span.Max()-length, y), svg.NewPos(o.Span.Max(), y))
	right.Stroke = stroke
	grp.Append(right.AsElement())
}

func (o TickOverlay) OffsetX() float64 {
	return 0
}

func (o TickOverlay) OffsetY() float64 {
	return 0
}
