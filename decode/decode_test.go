package decode

import (
	"os"
	"strings"
	"testing"

	"github.com/midbel/housestyle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFile(t *testing.T) {
	cfg, err := DecodeFile("testdata/outlook.toml")
	require.NoError(t, err)

	assert.Equal(t, "Figure 1.2. Unemployment Rate Change", cfg.Chart.Title)
	assert.Equal(t, 450.0, cfg.Chart.Height)
	require.Len(t, cfg.Series, 2)
	assert.Equal(t, "CHL", cfg.Series[1].Title)

	th, err := cfg.BuildTheme()
	require.NoError(t, err)
	assert.Equal(t, housestyle.OutlookBlue, th.TitleColor)
	assert.Equal(t, housestyle.OutlookColors, th.Colors)

	pad := cfg.Chart.Pad()
	assert.Equal(t, 60.0, pad.Top)
	assert.Equal(t, 40.0, pad.Left)

	orient, err := cfg.Chart.Orient()
	require.NoError(t, err)
	assert.Equal(t, housestyle.OrientLeft|housestyle.OrientTop, orient)
}

func TestDecodeDefaults(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 800.0, cfg.Chart.Width)
	assert.Equal(t, 600.0, cfg.Chart.Height)
	assert.Equal(t, 6, cfg.Chart.Ticks)

	th, err := cfg.BuildTheme()
	require.NoError(t, err)
	assert.Equal(t, housestyle.Outlook(), th)
}

func TestDecodeRejectsUnknownValues(t *testing.T) {
	data := []struct {
		name   string
		body   string
		option string
	}{
		{
			name:   "theme base",
			body:   "[theme]\nbase = \"neon\"\n",
			option: "base",
		},
		{
			name:   "palette",
			body:   "[theme]\npalette = \"rainbow\"\n",
			option: "palette",
		},
		{
			name:   "legend",
			body:   "[chart]\nlegend = \"center\"\n",
			option: "legend",
		},
		{
			name:   "series style",
			body:   "[[series]]\nstyle = \"wavy\"\n",
			option: "style",
		},
		{
			name:   "series type",
			body:   "[[series]]\ntype = \"pie\"\n",
			option: "type",
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(d.body))
			var oe OptionError
			require.ErrorAs(t, err, &oe)
			assert.Equal(t, d.option, oe.Option)
		})
	}
}

func TestDecodeBadToml(t *testing.T) {
	_, err := Decode(strings.NewReader("not toml = ["))
	var de DecodeError
	require.ErrorAs(t, err, &de)
}

func TestMakeRenderer(t *testing.T) {
	t.Run("line with options", func(t *testing.T) {
		s := SerieConfig{Type: "line", Color: "#0062af", Style: "dotted", Point: "square"}
		r, err := s.MakeNumberRenderer()
		require.NoError(t, err)
		lr, ok := r.(housestyle.LinearRenderer[float64, float64])
		require.True(t, ok)
		assert.Equal(t, housestyle.StyleDotted, lr.Style)
		assert.NotNil(t, lr.Point)
	})

	t.Run("default type is line", func(t *testing.T) {
		r, err := SerieConfig{}.MakeTimeRenderer()
		require.NoError(t, err)
		assert.NotNil(t, r)
	})

	t.Run("scatter falls back to circles", func(t *testing.T) {
		r, err := SerieConfig{Type: "scatter"}.MakeNumberRenderer()
		require.NoError(t, err)
		pr, ok := r.(housestyle.PointRenderer[float64, float64])
		require.True(t, ok)
		assert.NotNil(t, pr.Point)
	})

	t.Run("bar wants a category axis", func(t *testing.T) {
		r, err := SerieConfig{Type: "bar"}.MakeCategoryRenderer(housestyle.ClassicBarColors)
		require.NoError(t, err)
		assert.NotNil(t, r)

		_, err = SerieConfig{Type: "line"}.MakeCategoryRenderer(nil)
		assert.Error(t, err)
	})
}

func TestMissingFile(t *testing.T) {
	_, err := DecodeFile("testdata/absent.toml")
	require.ErrorIs(t, err, os.ErrNotExist)
}
