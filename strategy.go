package tablecast

// zScore95 is the large-sample normal z value backing every 95%
// confidence interval in the engine.
const zScore95 = 1.96

// forecastStep is one horizon step produced by a strategy before
// rounding and result assembly.
type forecastStep struct {
	value float64
	lower float64
	upper float64
}

// strategy generates point forecasts with a confidence interval per
// horizon step along with the fitted model parameters.
type strategy interface {
	forecast(y []float64, periods int) ([]forecastStep, ModelInfo)
}
