package tablecast

import (
	"gonum.org/v1/gonum/stat"

	"github.com/datasight/tablecast/stats"
)

// seasonalStrategy removes the detected seasonal component, fits a
// linear trend on the deseasonalized series, and re-applies the
// component over the horizon. The interval width is constant per step.
type seasonalStrategy struct {
	season *stats.Seasonality
}

func (s seasonalStrategy) forecast(y []float64, periods int) ([]forecastStep, ModelInfo) {
	period := s.season.Period

	deseasonalized := make([]float64, len(y))
	for i, v := range y {
		deseasonalized[i] = v - s.season.Component[i%period]
	}
	fit := fitTrend(deseasonalized)

	n := len(y)
	margin := zScore95 * stat.PopStdDev(y, nil)
	steps := make([]forecastStep, periods)
	for i := 0; i < periods; i++ {
		x := n + i
		val := fit.at(float64(x)) + s.season.Component[x%period]
		steps[i] = forecastStep{
			value: val,
			lower: val - margin,
			upper: val + margin,
		}
	}

	info := ModelInfo{
		Method:            ModelSeasonalDecomposition,
		SeasonalityPeriod: intp(period),
		TrendSlope:        f64(round4(fit.slope)),
	}
	return steps, info
}
