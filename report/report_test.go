package report_test

import (
	"bytes"
	"testing"

	"github.com/midbel/housestyle"
	"github.com/midbel/housestyle/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRender(t *testing.T) {
	rp := report.Report{
		Title:    "Real GDP Growth",
		Subtitle: "percent change",
		Caption:  "Sources: national authorities; and staff calculations.",
		Width:    640,
		Height:   480,
		Panels: []report.Panel{
			makePanel("Brazil", 1.1, 2.9, 3.0, 2.2, 1.8),
			makePanel("Chile", 0.2, 2.4, 2.6, 2.1, 2.3),
			makePanel("Colombia", 0.6, 1.7, 2.8, 3.0, 2.9),
			makePanel("Peru", 2.7, 3.3, 2.4, 2.8, 3.1),
		},
	}
	rp.Panels[0].Forecast = &report.Window{From: 2024, To: 2026}

	var buf bytes.Buffer
	require.NoError(t, rp.Render(&buf))

	doc := buf.String()
	assert.Contains(t, doc, "<svg")
	assert.Contains(t, doc, "Real GDP Growth")
	assert.Contains(t, doc, "Brazil")
	assert.Contains(t, doc, "Peru")
	assert.Contains(t, doc, "Sources")
}

func TestReportOddPanelCount(t *testing.T) {
	rp := report.Report{
		Cols: 2,
		Panels: []report.Panel{
			makePanel("one", 1, 2, 3, 4, 5),
			makePanel("two", 2, 3, 4, 5, 6),
			makePanel("three", 3, 4, 5, 6, 7),
		},
	}
	var buf bytes.Buffer
	require.NoError(t, rp.Render(&buf))
	for _, want := range []string{"one", "two", "three"} {
		assert.Contains(t, buf.String(), want)
	}
}

func TestReportNoPanel(t *testing.T) {
	var rp report.Report
	assert.Error(t, rp.Render(&bytes.Buffer{}))
}

func TestReportEmptyPanel(t *testing.T) {
	rp := report.Report{
		Panels: []report.Panel{
			makePanel("filled", 1, 2, 3),
			{Title: "hollow"},
		},
	}
	assert.Error(t, rp.Render(&bytes.Buffer{}))
}

func makePanel(title string, values ...float64) report.Panel {
	p := report.Panel{
		Title: title,
	}
	for i, v := range values {
		p.Points = append(p.Points, housestyle.NumberPoint(2022+float64(i), v))
	}
	return p
}
