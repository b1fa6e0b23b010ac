package tablecast

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

const (
	// emaAlpha is the exponential smoothing constant.
	emaAlpha = 0.3

	// shortWindow bounds the lookback for the recent trend estimate.
	shortWindow = 5
)

// movingAverageStrategy extrapolates a straight line from an exponential
// moving average level using a short-window trend. Serves as the
// fallback when neither trend nor seasonality dominates. The interval
// widens with the square root of the horizon step.
type movingAverageStrategy struct{}

func (movingAverageStrategy) forecast(y []float64, periods int) ([]forecastStep, ModelInfo) {
	n := len(y)

	ema := y[0]
	for _, v := range y[1:] {
		ema = emaAlpha*v + (1-emaAlpha)*ema
	}

	window := shortWindow
	if n < window {
		window = n
	}
	recentTrend := (y[n-1] - y[n-window]) / float64(window)

	std := stat.PopStdDev(y, nil)
	steps := make([]forecastStep, periods)
	for i := 0; i < periods; i++ {
		val := ema + recentTrend*float64(i+1)
		margin := zScore95 * 0.5 * std * math.Sqrt(float64(i+1))
		steps[i] = forecastStep{
			value: val,
			lower: val - margin,
			upper: val + margin,
		}
	}

	info := ModelInfo{
		Method:      ModelExponentialMovingAverage,
		Alpha:       f64(emaAlpha),
		RecentTrend: f64(round4(recentTrend)),
	}
	return steps, info
}
