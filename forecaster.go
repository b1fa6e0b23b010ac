// Package tablecast forecasts numeric columns of tabular data. It
// extracts a named column into an index-ordered series, detects
// seasonality, selects among three forecasting strategies, and returns
// point forecasts with confidence intervals and backtested accuracy.
package tablecast

import (
	"fmt"

	"github.com/datasight/tablecast/frame"
	"github.com/datasight/tablecast/stats"
)

// DefaultPeriods is the horizon used when none is requested.
const DefaultPeriods = 10

// Options configures a Forecaster.
type Options struct {
	// Method selects the forecasting strategy. MethodAuto picks one
	// from the series characteristics.
	Method Method

	// Periods is the number of future steps to forecast.
	Periods int

	// DateColumn is accepted for wire compatibility. The engine is
	// index-based and does not read it.
	DateColumn string
}

// NewDefaultOptions returns the options used when none are provided.
func NewDefaultOptions() *Options {
	return &Options{
		Method:  MethodAuto,
		Periods: DefaultPeriods,
	}
}

// Forecaster runs the forecasting pipeline over tabular input. It holds
// no per-request state and is safe for concurrent use.
type Forecaster struct {
	opt *Options
}

// New creates a Forecaster using the provided options. If no options are
// provided a default is used.
func New(opt *Options) (*Forecaster, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}
	if opt.Method == "" {
		opt.Method = MethodAuto
	}
	if opt.Periods <= 0 {
		opt.Periods = DefaultPeriods
	}
	if !opt.Method.valid() {
		return nil, fmt.Errorf("%q, %w", opt.Method, ErrUnknownMethod)
	}
	return &Forecaster{opt: opt}, nil
}

// Forecast extracts the named column from the input rows and runs the
// single-series pipeline: seasonality detection, method selection, the
// chosen strategy, and the accuracy backtest. It either returns a
// complete result or an error, never a partial forecast.
func (f *Forecaster) Forecast(rows frame.Rows, column string) (*Result, error) {
	y, err := rows.Column(column)
	if err != nil {
		return nil, fmt.Errorf("unable to extract series, %w", err)
	}

	season := stats.DetectSeasonality(y)
	method := chooseMethod(f.opt.Method, y, season)

	var strat strategy
	switch method {
	case MethodLinear:
		strat = linearStrategy{}
	case MethodSeasonal:
		strat = seasonalStrategy{season: season}
	default:
		strat = movingAverageStrategy{}
	}

	steps, info := strat.forecast(y, f.opt.Periods)
	acc := backtest(y, method)

	n := len(y)
	historical := make([]HistoricalPoint, n)
	for i, v := range y {
		historical[i] = HistoricalPoint{
			Index: i,
			Value: round4(v),
			Type:  pointTypeHistorical,
		}
	}

	forecastData := make([]ForecastPoint, len(steps))
	for i, step := range steps {
		forecastData[i] = ForecastPoint{
			Index:   n + i,
			Value:   round4(step.value),
			Type:    pointTypeForecast,
			CILower: round4(step.lower),
			CIUpper: round4(step.upper),
		}
	}

	return &Result{
		Success:         true,
		Column:          column,
		Periods:         f.opt.Periods,
		ModelInfo:       info,
		AccuracyMetrics: acc,
		HistoricalData:  historical,
		ForecastData:    forecastData,
		Summary:         newSummary(y, steps, season),
	}, nil
}

// newSummary derives the headline numbers from the series and its
// forecast. The change percentage is zero when the last observed value
// is zero.
func newSummary(y []float64, steps []forecastStep, season *stats.Seasonality) Summary {
	last := y[len(y)-1]
	end := steps[len(steps)-1].value

	var changePct float64
	if last != 0 {
		changePct = (end - last) / last * 100
	}

	direction := TrendStable
	switch {
	case changePct > trendChangeThresholdPct:
		direction = TrendIncreasing
	case changePct < -trendChangeThresholdPct:
		direction = TrendDecreasing
	}

	s := Summary{
		CurrentValue:        round4(last),
		ForecastedEndValue:  round4(end),
		ForecastChangePct:   round4(changePct),
		TrendDirection:      direction,
		SeasonalityDetected: season != nil,
	}
	if season != nil {
		s.SeasonalityPeriod = intp(season.Period)
	}
	return s
}
