package tablecast

// linearStrategy extrapolates an ordinary least squares trend line fit
// over the series index.
type linearStrategy struct{}

func (linearStrategy) forecast(y []float64, periods int) ([]forecastStep, ModelInfo) {
	fit := fitTrend(y)

	n := len(y)
	steps := make([]forecastStep, periods)
	for i := 0; i < periods; i++ {
		x := float64(n + i)
		val := fit.at(x)
		margin := zScore95 * fit.predictionStdErr(x)
		steps[i] = forecastStep{
			value: val,
			lower: val - margin,
			upper: val + margin,
		}
	}

	info := ModelInfo{
		Method:    ModelLinearRegression,
		Slope:     f64(round4(fit.slope)),
		Intercept: f64(round4(fit.intercept)),
		RSquared:  f64(round4(fit.rsquared)),
	}
	return steps, info
}
