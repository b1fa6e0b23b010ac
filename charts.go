package tablecast

import (
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LineForecast generates an echart line chart for a forecast result,
// plotting the historical values along with the forecast and its
// confidence band over the series index.
func LineForecast(res *Result) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "Forecast: " + res.Column,
			},
		),
	)

	n := len(res.HistoricalData)
	total := n + len(res.ForecastData)

	indexes := make([]int, 0, total)
	for i := 0; i < total; i++ {
		indexes = append(indexes, i)
	}

	lineDataActual := make([]opts.LineData, 0, n)
	for _, p := range res.HistoricalData {
		lineDataActual = append(lineDataActual, opts.LineData{Value: p.Value})
	}

	// pad the forecast series with nulls so it starts where history ends
	lineDataForecast := make([]opts.LineData, 0, total)
	lineDataUpper := make([]opts.LineData, 0, total)
	lineDataLower := make([]opts.LineData, 0, total)
	for i := 0; i < n; i++ {
		lineDataForecast = append(lineDataForecast, opts.LineData{Value: nil})
		lineDataUpper = append(lineDataUpper, opts.LineData{Value: nil})
		lineDataLower = append(lineDataLower, opts.LineData{Value: nil})
	}
	for _, p := range res.ForecastData {
		lineDataForecast = append(lineDataForecast, opts.LineData{Value: p.Value})
		lineDataUpper = append(lineDataUpper, opts.LineData{Value: p.CIUpper})
		lineDataLower = append(lineDataLower, opts.LineData{Value: p.CILower})
	}

	line.SetXAxis(indexes).
		AddSeries("Actual", lineDataActual).
		AddSeries("Forecast", lineDataForecast).
		AddSeries("Upper", lineDataUpper).
		AddSeries("Lower", lineDataLower)
	return line
}

// PlotForecast renders the forecast result to an html file.
func PlotForecast(res *Result, path string) error {
	page := components.NewPage()
	page.AddCharts(
		LineForecast(res),
	)
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return page.Render(io.MultiWriter(file))
}
