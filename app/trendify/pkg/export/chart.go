package export

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iWorld-y/trendify/app/trendify/pkg/model"
)

// TrendChart 渲染趋势折线图 PNG，横轴为第 1..n 天
func TrendChart(series model.TrendSeries) ([]byte, error) {
	if len(series.Values) == 0 {
		return nil, fmt.Errorf("trend series is empty")
	}

	days := make([]float64, len(series.Values))
	for i := range series.Values {
		days[i] = float64(i + 1)
	}

	line := chart.ContinuousSeries{
		Name: "Trend Value",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("0B3D91"),
			StrokeWidth: 2.5,
			DotColor:    drawing.ColorFromHex("0B3D91"),
			DotWidth:    3,
		},
		XValues: days,
		YValues: series.Values,
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("Trend (%s)", series.Provenance),
		Width:  900,
		Height: 360,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Name: "Day",
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			Name: "Trend Value",
		},
		Series: []chart.Series{line},
	}

	// 只有一个点或序列为常数时 go-chart 无法推断坐标轴范围
	if len(days) == 1 {
		graph.XAxis.Range = &chart.ContinuousRange{Min: 0, Max: 2}
	}
	if lo, hi := bounds(series.Values); lo == hi {
		graph.YAxis.Range = &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

func bounds(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
