// Package stats provides the series statistics backing the forecaster,
// autocorrelation and seasonality detection in particular.
package stats

import (
	"gonum.org/v1/gonum/stat"
)

// ACF computes the autocorrelation function of y for lags 0 to maxLag,
// normalized so the lag-0 value equals 1. Returns nil for a zero-variance
// series where the normalization is undefined.
func ACF(y []float64, maxLag int) []float64 {
	n := len(y)
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil
	}

	mean := stat.Mean(y, nil)
	var variance float64
	for _, v := range y {
		diff := v - mean
		variance += diff * diff
	}
	if variance == 0 {
		return nil
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		var sum float64
		for i := k; i < n; i++ {
			sum += (y[i] - mean) * (y[i-k] - mean)
		}
		acf[k] = sum / variance
	}
	return acf
}
