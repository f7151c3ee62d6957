package housestyle

import (
	"bufio"
	"io"

	"github.com/midbel/svg"
)

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Data is any layer composed into a chart: series, forecast bands,
// tick overlays. Offsets shift the layer relative to the drawing area,
// which series bound to a secondary axis use.
type Data interface {
	Render() svg.Element
	OffsetX() float64
	OffsetY() float64
}

// Layers that expose a legend entry.
type legender interface {
	Legend() (string, string)
}

type Chart[T, U ScalerConstraint] struct {
	Title    string
	Subtitle string
	Caption  string
	Width    float64
	Height   float64
	Theme    Theme

	Padding

	Left   Axis
	Right  Axis
	Top    Axis
	Bottom Axis

	Legend struct {
		Title  string
		Orient Orientation
	}
}

func (c Chart[T, U]) DrawingWidth() float64 {
	return c.Width - c.Padding.Horizontal()
}

func (c Chart[T, U]) DrawingHeight() float64 {
	return c.Height - c.Padding.Vertical()
}

func (c Chart[T, U]) Render(w io.Writer, set ...Data) {
	el := svg.NewSVG()
	el.Dim = svg.NewDim(c.Width, c.Height)
	el.OmitProlog = true
	el.Append(c.element(set...))

	bw := bufio.NewWriter(w)
	defer bw.Flush()
	el.Render(bw)
}

// Element renders the chart as a single group so it can be placed
// into a larger figure, typically a panel report.
func (c Chart[T, U]) Element(set ...Data) svg.Element {
	return c.element(set...)
}

func (c Chart[T, U]) element(set ...Data) svg.Element {
	if c.Theme.TextSize == 0 {
		c.Theme = Classic()
	}
	var grp svg.Group
	grp.Class = append(grp.Class, "chart")

	if c.Theme.Background != "" {
		var rec svg.Rect
		rec.Dim = svg.NewDim(c.Width, c.Height)
		rec.Fill = svg.NewFill(c.Theme.Background)
		grp.Append(rec.AsElement())
	}
	if c.Theme.BorderWidth > 0 && c.Theme.BorderColor != "" {
		var rec svg.Rect
		rec.Pos = svg.NewPos(c.Padding.Left, c.Padding.Top)
		rec.Dim = svg.NewDim(c.DrawingWidth(), c.DrawingHeight())
		rec.Fill = svg.NewFill("none")
		rec.Stroke = svg.NewStroke(c.Theme.BorderColor, c.Theme.BorderWidth)
		grp.Append(rec.AsElement())
	}

	grp.Append(c.drawAxis())
	for _, s := range set {
		ar := c.getArea(s)
		ar.Append(s.Render())
		grp.Append(ar.AsElement())
	}
	if c.Title != "" {
		block := TitleBlock{
			Title:    c.Title,
			Subtitle: c.Subtitle,
			Theme:    c.Theme,
		}
		tg := svg.Group{Transform: svg.Translate(c.Padding.Left, 0)}
		tg.Append(block.Render())
		grp.Append(tg.AsElement())
	}
	if c.Caption != "" {
		note := Caption{
			Text:  c.Caption,
			Theme: c.Theme,
		}
		cg := svg.Group{Transform: svg.Translate(c.Padding.Left, c.Height-c.Theme.CaptionSize*1.6)}
		cg.Append(note.Render())
		grp.Append(cg.AsElement())
	}
	if lg := c.drawLegend(set); lg != nil {
		grp.Append(lg)
	}
	return grp.AsElement()
}

func (c Chart[T, U]) getArea(s Data) svg.Group {
	var g svg.Group
	g.Class = append(g.Class, "area")
	g.Transform = svg.Translate(c.Padding.Left-s.OffsetX(), c.Padding.Top+s.OffsetY())
	return g
}

func (c Chart[T, U]) drawLegend(set []Data) svg.Element {
	type entry struct {
		title string
		color string
	}
	var entries []entry
	for _, s := range set {
		lg, ok := s.(legender)
		if !ok {
			continue
		}
		title, color := lg.Legend()
		if title == "" {
			continue
		}
		entries = append(entries, entry{title: title, color: color})
	}
	if len(entries) == 0 {
		return nil
	}
	var (
		size   = c.Theme.LegendSize
		offset = size * 1.4
		height = float64(len(entries)) * offset
		width  float64
		grp    svg.Group
	)
	var shift float64
	if c.Legend.Title != "" {
		height += offset
		shift = offset

		tx := svg.NewText(c.Legend.Title)
		tx.Font = svg.NewFont(size)
		tx.Baseline = "middle"
		grp.Append(tx.AsElement())
	}
	for i, e := range entries {
		if n := float64(len(e.title)); i == 0 || n > width {
			width = n
		}
		var g svg.Group
		g.Transform = svg.Translate(0, shift+float64(i)*offset)
		li := svg.NewLine(svg.NewPos(0, 0), svg.NewPos(20, 0))
		li.Stroke = svg.NewStroke(e.color, 1)

		tx := svg.NewText(e.title)
		tx.Pos = svg.NewPos(30, 0)
		tx.Font = svg.NewFont(size)
		tx.Baseline = "middle"

		g.Append(li.AsElement())
		g.Append(tx.AsElement())
		grp.Append(g.AsElement())
	}
	width *= size * 0.4

	var left, top float64
	switch c.Legend.Orient {
	case OrientRight:
		left = c.Width - c.Padding.Left - width
		top = (c.Height - c.Padding.Top - height) / 2
	case OrientRight | OrientBottom:
		left = c.Width - c.Padding.Left - width
		top = c.Height - c.Padding.Top - height
	case OrientBottom:
		left = (c.Width - width) / 2
		top = c.Height - c.Padding.Top - height
	case OrientLeft | OrientBottom:
		left = c.Padding.Left
		top = c.Height - c.Padding.Top - height
	case OrientLeft:
		left = c.Padding.Left
		top = (c.Height - c.Padding.Vertical() - height) / 2
	case OrientLeft | OrientTop:
		top = c.Padding.Top
		left = c.Padding.Left
	case OrientTop:
		left = (c.Width - width) / 2
		top = c.Padding.Top
	case OrientRight | OrientTop:
		top = c.Padding.Top
		left = c.Width - c.Padding.Left - width
	default:
		return nil
	}
	grp.Transform = svg.Translate(left, top)
	return grp.AsElement()
}

func (c Chart[T, U]) drawAxis() svg.Element {
	var g svg.Group
	g.Id = "axis"
	if c.Left != nil {
		el := c.Left.Render(c.DrawingHeight(), c.DrawingWidth(), c.Padding.Left, c.Padding.Top)
		g.Append(el)
	}
	if c.Right != nil {
		el := c.Right.Render(c.DrawingHeight(), c.DrawingWidth(), c.Width-c.Padding.Right, c.Padding.Top)
		g.Append(el)
	}
	if c.Top != nil {
		el := c.Top.Render(c.DrawingWidth(), c.DrawingHeight(), c.Padding.Left, c.Padding.Top)
		g.Append(el)
	}
	if c.Bottom != nil {
		el := c.Bottom.Render(c.DrawingWidth(), c.DrawingHeight(), c.Padding.Left, c.Height-c.Padding.Bottom)
		g.Append(el)
	}
	return g.AsElement()
}
