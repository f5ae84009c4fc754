// Package chart renders price series as PNG images
package chart

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bobmcallan/tickerview/internal/models"
)

// RenderCloseChart renders a PNG line chart of closing prices.
// Two series: Close (blue solid) and its 5-day SMA (gray dashed).
// The input is newest-first; the chart is drawn oldest to newest.
func RenderCloseChart(symbol string, series models.Series) ([]byte, error) {
	if len(series) < 2 {
		return nil, fmt.Errorf("need at least 2 bars, got %d", len(series))
	}

	n := len(series)
	xValues := make([]time.Time, n)
	closeY := make([]float64, n)
	for i, b := range series {
		j := n - 1 - i
		xValues[j] = b.Time()
		closeY[j] = b.Close
	}

	closeSeries := chart.TimeSeries{
		Name: "Close",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"), // blue-600
			StrokeWidth: 2.5,
		},
		XValues: xValues,
		YValues: closeY,
	}

	smaSeries := &chart.SMASeries{
		Name: "SMA 5",
		Style: chart.Style{
			StrokeColor:     drawing.ColorFromHex("9ca3af"), // gray-400
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{5.0, 3.0},
		},
		InnerSeries: closeSeries,
		Period:      5,
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s (last %d days)", symbol, n),
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 02")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.2f", f)
				}
				return ""
			},
		},
		Series: []chart.Series{
			closeSeries,
			smaSeries,
		},
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
