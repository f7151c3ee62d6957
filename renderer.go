package housestyle

import (
	"math"

	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

type TextPosition int

const (
	TextBefore TextPosition = 1 << iota
	TextAfter
)

const currentColour = "currentColour"

type Renderer[T, U ScalerConstraint] interface {
	Render(Serie[T, U]) svg.Element
}

type LinearRenderer[T, U ScalerConstraint] struct {
	Color         string
	Width         float64
	Style         LineStyle
	Fill          bool
	Skip          int
	Point         PointFunc
	Text          TextPosition
	IgnoreMissing bool
}

func (r LinearRenderer[T, U]) Render(serie Serie[T, U]) svg.Element {
	var (
		grp = getBaseGroup(r.Color, r.lineWidth(), "line")
		pat = getBasePath(r.Fill)
		pos svg.Pos
		nan bool
	)
	grp.Id = serie.Title
	r.Style.setArray(&pat.Stroke)
	for i, pt := range serie.Points {
		if r.Skip != 0 && i > 0 && i%r.Skip == 0 {
			continue
		}
		if f, ok := isFloat(pt.Y); ok && math.IsNaN(f) {
			nan = true
			continue
		}
		pos.X = serie.X.Scale(pt.X)
		pos.Y = serie.Y.Scale(pt.Y)
		if i == 0 || (nan && r.IgnoreMissing) {
			nan = false
			pat.AbsMoveTo(pos)
		} else {
			pat.AbsLineTo(pos)
		}
		if r.Point != nil {
			el := r.Point(pos)
			if el != nil {
				grp.Append(el)
			}
		}
	}

	appendLineText(&grp, serie, r.Text)

	if r.Fill {
		pos.Y = serie.Y.Max()
		pat.AbsLineTo(pos)
	}
	grp.Append(pat.AsElement())
	return grp.AsElement()
}

func (r LinearRenderer[T, U]) lineWidth() float64 {
	if r.Width <= 0 {
		return 1
	}
	return r.Width
}

type StepRenderer[T, U ScalerConstraint] struct {
	Color         string
	Width         float64
	Fill          bool
	Point         PointFunc
	Text          TextPosition
	IgnoreMissing bool
}

func (r StepRenderer[T, U]) Render(serie Serie[T, U]) svg.Element {
	width := r.Width
	if width <= 0 {
		width = 1
	}
	var (
		grp = getBaseGroup(r.Color, width, "line", "line-step")
		pat = getBasePath(r.Fill)
		pos svg.Pos
		ori svg.Pos
		nan bool
	)
	grp.Id = serie.Title

	pos.X = serie.X.Scale(slices.Fst(serie.Points).X)
	pos.Y = serie.Y.Scale(slices.Fst(serie.Points).Y)
	pat.AbsMoveTo(pos)
	if r.Point != nil {
		grp.Append(r.Point(pos))
	}
	ori = pos
	for _, pt := range slices.Rest(serie.Points) {
		if f, ok := isFloat(pt.Y); ok && math.IsNaN(f) {
			nan = true
			continue
		}
		pos.X = serie.X.Scale(pt.X)
		pos.Y = serie.Y.Scale(pt.Y)
		if nan && r.IgnoreMissing {
			nan = false
			pat.AbsMoveTo(pos)
		} else {
			ori.X += (pos.X - ori.X) / 2
			pat.AbsLineTo(ori)
			ori.Y = pos.Y
			pat.AbsLineTo(ori)
			pat.AbsLineTo(pos)
		}
		ori = pos
		if r.Point != nil {
			grp.Append(r.Point(pos))
		}
	}

	appendLineText(&grp, serie, r.Text)

	if r.Fill {
		pos.Y = serie.Y.Max()
		pat.AbsLineTo(pos)
	}
	grp.Append(pat.AsElement())
	return grp.AsElement()
}

type BarRenderer[T ~string, U ~float64] struct {
	Fill  Palette
	Width float64
}

func (r BarRenderer[T, U]) Render(serie Serie[T, U]) svg.Element {
	if r.Width <= 0 {
		r.Width = 1
	}
	grp := getBaseGroup("", 0, "bar")
	for i, pt := range serie.Points {
		var (
			w   = serie.X.Space() * r.Width
			o   = (serie.X.Space() - w) / 2
			x   = serie.X.Scale(pt.X) + o
			y   = serie.Y.Scale(pt.Y)
			pos = svg.NewPos(x, y)
			dim = svg.NewDim(w, serie.Y.Max()-y)
		)
		var el svg.Rect
		el.Title = string(pt.X)
		el.Pos = pos
		el.Dim = dim
		el.Fill = svg.NewFill(r.Fill.Color(i))
		grp.Append(el.AsElement())
	}
	return grp.AsElement()
}

type PointRenderer[T, U ScalerConstraint] struct {
	Color string
	Skip  int
	Point PointFunc
}

func (r PointRenderer[T, U]) Render(serie Serie[T, U]) svg.Element {
	grp := getBaseGroup(r.Color, 0, "scatter")
	for i, pt := range serie.Points {
		if r.Skip > 0 && i > 0 && i%r.Skip != 0 {
			continue
		}
		var (
			x = serie.X.Scale(pt.X)
			y = serie.Y.Scale(pt.Y)
		)
		el := r.Point(svg.NewPos(x, y))
		grp.Append(el)
	}
	return grp.AsElement()
}

func appendLineText[T, U ScalerConstraint](grp *svg.Group, serie Serie[T, U], where TextPosition) {
	if len(serie.Points) == 0 {
		return
	}
	switch where {
	case TextBefore:
		pt := slices.Fst(serie.Points)
		txt := getLineText(serie.Title, 0, serie.Y.Scale(pt.Y), true)
		grp.Append(txt.AsElement())
	case TextAfter:
		pt := slices.Lst(serie.Points)
		txt := getLineText(serie.Title, serie.X.Scale(pt.X), serie.Y.Scale(pt.Y), false)
		grp.Append(txt.AsElement())
	default:
	}
}

func getLineText(str string, x, y float64, before bool) svg.Text {
	txt := svg.NewText(str)
	txt.Font = svg.NewFont(FontSize)
	txt.Pos = svg.NewPos(x, y)
	txt.Anchor = "end"
	txt.Baseline = "middle"
	if !before {
		txt.Anchor = "start"
		txt.Pos.X += FontSize * 0.4
	} else {
		txt.Pos.X -= FontSize * 0.4
	}
	return txt
}

func getBasePath(fill bool) svg.Path {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Stroke = svg.NewStroke(currentColour, 1)
	if fill {
		pat.Fill = svg.NewFill(currentColour)
		pat.Fill.Opacity = 0.5
	} else {
		pat.Fill = svg.NewFill("none")
	}
	return pat
}

func getBaseGroup(color string, width float64, class ...string) svg.Group {
	var g svg.Group
	if color != "" {
		if width <= 0 {
			width = 1
		}
		g.Fill = svg.NewFill(color)
		g.Stroke = svg.NewStroke(color, width)
	}
	g.Class = class
	return g
}

func isFloat[T any](v T) (float64, bool) {
	x, ok := any(v).(float64)
	return x, ok
}
