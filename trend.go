package tablecast

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// trendFit is an ordinary least squares fit of value against position
// index 0..n-1. It doubles as a forecasting strategy and as the trend
// signal for method selection.
type trendFit struct {
	slope     float64
	intercept float64
	rsquared  float64
	stdErr    float64 // standard error of the slope
	n         int
	xMean     float64
	ssx       float64 // sum of squared index deviations
}

func fitTrend(y []float64) trendFit {
	n := len(y)
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)

	xMean := stat.Mean(x, nil)
	yMean := stat.Mean(y, nil)
	var ssx, ssy, rss float64
	for i := 0; i < n; i++ {
		dx := x[i] - xMean
		ssx += dx * dx
		dy := y[i] - yMean
		ssy += dy * dy
		resid := y[i] - (intercept + slope*x[i])
		rss += resid * resid
	}

	// a zero-variance target fits exactly with slope 0; report no
	// explained variance rather than dividing by zero
	var rsquared float64
	if ssy > 0 {
		rsquared = 1 - rss/ssy
	}

	var stdErr float64
	if n > 2 && ssx > 0 {
		stdErr = math.Sqrt(rss / float64(n-2) / ssx)
	}

	return trendFit{
		slope:     slope,
		intercept: intercept,
		rsquared:  rsquared,
		stdErr:    stdErr,
		n:         n,
		xMean:     xMean,
		ssx:       ssx,
	}
}

// at evaluates the fitted line at index x.
func (t trendFit) at(x float64) float64 {
	return t.intercept + t.slope*x
}

// predictionStdErr is the out-of-sample standard error of the forecast
// at index x, growing with the distance from the training mean index.
func (t trendFit) predictionStdErr(x float64) float64 {
	dx := x - t.xMean
	return t.stdErr * math.Sqrt(1+1/float64(t.n)+dx*dx/t.ssx)
}
