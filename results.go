package tablecast

import (
	"math"

	"github.com/goccy/go-json"
)

// Model names reported in ModelInfo.Method.
const (
	ModelLinearRegression         = "linear_regression"
	ModelSeasonalDecomposition    = "seasonal_decomposition"
	ModelExponentialMovingAverage = "exponential_moving_average"
)

// Trend direction labels reported in Summary.TrendDirection.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// trendChangeThresholdPct separates a stable forecast from an increasing
// or decreasing one.
const trendChangeThresholdPct = 2.0

const (
	pointTypeHistorical = "historical"
	pointTypeForecast   = "forecast"
)

// ModelInfo reports the fitted parameters of the chosen strategy. Only
// the fields belonging to the reported method are set.
type ModelInfo struct {
	Method            string   `json:"method"`
	Slope             *float64 `json:"slope,omitempty"`
	Intercept         *float64 `json:"intercept,omitempty"`
	RSquared          *float64 `json:"r_squared,omitempty"`
	SeasonalityPeriod *int     `json:"seasonality_period,omitempty"`
	TrendSlope        *float64 `json:"trend_slope,omitempty"`
	Alpha             *float64 `json:"alpha,omitempty"`
	RecentTrend       *float64 `json:"recent_trend,omitempty"`
}

// Accuracy holds backtested error metrics. Nil fields mean the metric
// could not be computed.
type Accuracy struct {
	MAPE *float64 `json:"mape"`
	RMSE *float64 `json:"rmse"`
}

// HistoricalPoint is one observed value of the extracted series.
type HistoricalPoint struct {
	Index int     `json:"index"`
	Value float64 `json:"value"`
	Type  string  `json:"type"`
}

// ForecastPoint is one horizon step with its 95% confidence interval.
type ForecastPoint struct {
	Index   int     `json:"index"`
	Value   float64 `json:"value"`
	Type    string  `json:"type"`
	CILower float64 `json:"ci_lower"`
	CIUpper float64 `json:"ci_upper"`
}

// Summary condenses a forecast into its headline numbers.
type Summary struct {
	CurrentValue        float64 `json:"current_value"`
	ForecastedEndValue  float64 `json:"forecasted_end_value"`
	ForecastChangePct   float64 `json:"forecast_change_pct"`
	TrendDirection      string  `json:"trend_direction"`
	SeasonalityDetected bool    `json:"seasonality_detected"`
	SeasonalityPeriod   *int    `json:"seasonality_period"`
}

// Result is a complete single-series forecast.
type Result struct {
	Success         bool              `json:"success"`
	Column          string            `json:"column"`
	Periods         int               `json:"periods"`
	ModelInfo       ModelInfo         `json:"model_info"`
	AccuracyMetrics Accuracy          `json:"accuracy_metrics"`
	HistoricalData  []HistoricalPoint `json:"historical_data"`
	ForecastData    []ForecastPoint   `json:"forecast_data"`
	Summary         Summary           `json:"summary"`
}

// JSON serializes the result for the wire.
func (r *Result) JSON() ([]byte, error) {
	return json.Marshal(r)
}

// ColumnForecast is the per-column slice of a multi-series result.
type ColumnForecast struct {
	Column       string          `json:"column"`
	Summary      Summary         `json:"summary"`
	ModelInfo    ModelInfo       `json:"model_info"`
	ForecastData []ForecastPoint `json:"forecast_data"`
}

// MultiResult aggregates the columns that could be forecasted.
type MultiResult struct {
	Success          bool             `json:"success"`
	Periods          int              `json:"periods"`
	Forecasts        []ColumnForecast `json:"forecasts"`
	ColumnsProcessed int              `json:"columns_processed"`
}

// JSON serializes the result for the wire.
func (r *MultiResult) JSON() ([]byte, error) {
	return json.Marshal(r)
}

// round4 rounds wire outputs to 4 decimal places.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func f64(v float64) *float64 {
	return &v
}

func intp(v int) *int {
	return &v
}
