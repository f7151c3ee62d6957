package housestyle

import (
	"github.com/midbel/svg"
)

type LineStyle int

const (
	StyleStraight LineStyle = iota
	StyleDotted
	StyleDashed
)

func (s LineStyle) setArray(sk *svg.Stroke) {
	switch s {
	case StyleDotted:
		sk.DashArray = []int{1, 3}
	case StyleDashed:
		sk.DashArray = []int{5}
	default:
	}
}

type Style struct {
	Line struct {
		Style   LineStyle
		Width   float64
		Opacity float64
	}
	Fill struct {
		Opacity float64
		List    Palette
	}
	Text struct {
		Size     float64
		Color    string
		Families []string
	}
}

// Style derives the default drawing style of a theme.
func (t Theme) Style() Style {
	var s Style
	s.Line.Style = StyleStraight
	s.Line.Width = 1
	s.Line.Opacity = 1
	s.Fill.Opacity = 1
	s.Fill.List = t.Colors
	s.Text.Size = t.TextSize
	s.Text.Color = t.TextColor
	s.Text.Families = t.Families
	return s
}
