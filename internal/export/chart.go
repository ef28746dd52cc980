package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rovshanmuradov/myportfolio/internal/portfolio"
	"github.com/rovshanmuradov/myportfolio/internal/ui/style"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func chartColor(i int) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(string(style.ChartColor(i)), "#"))
}

// RenderDistributionChart renders the holdings split as a PNG pie chart.
// Slice i uses the same palette entry as the terminal legend.
func RenderDistributionChart(slices []portfolio.Slice) ([]byte, error) {
	values := make([]chart.Value, 0, len(slices))
	nonZero := false
	for i, s := range slices {
		if s.Value > 0 {
			nonZero = true
		}
		values = append(values, chart.Value{
			Label: s.Label,
			Value: s.Value,
			Style: chart.Style{
				FillColor:   chartColor(i),
				StrokeColor: drawing.ColorWhite,
			},
		})
	}
	if !nonZero {
		return nil, fmt.Errorf("need at least one holding with a positive value")
	}

	pie := chart.PieChart{
		Title:  "Stock Distribution",
		Width:  512,
		Height: 512,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPerformanceChart renders a weekly trace as a PNG line chart.
func RenderPerformanceChart(ticker string, series portfolio.Series) ([]byte, error) {
	if len(series) < 2 {
		return nil, fmt.Errorf("need at least 2 data points, got %d", len(series))
	}

	xValues := make([]float64, len(series))
	ticks := make([]chart.Tick, len(series))
	for i, p := range series {
		xValues[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: p.Label}
	}

	graph := chart.Chart{
		Title:  "Performance: " + ticker,
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.2f", f)
				}
				return ""
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name: ticker,
				Style: chart.Style{
					StrokeColor: chartColor(0),
					StrokeWidth: 3,
				},
				XValues: xValues,
				YValues: series.Values(),
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
