package tablecast

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/datasight/tablecast/stats"
)

var ErrUnknownMethod = errors.New("unknown forecast method")

// Method selects the forecasting strategy.
type Method string

const (
	MethodAuto          Method = "auto"
	MethodLinear        Method = "linear"
	MethodSeasonal      Method = "seasonal"
	MethodMovingAverage Method = "moving_average"
)

// trendStdFraction is the share of the series standard deviation the
// average step change must clear before auto selection picks the linear
// strategy.
const trendStdFraction = 0.1

func (m Method) valid() bool {
	switch m {
	case MethodAuto, MethodLinear, MethodSeasonal, MethodMovingAverage:
		return true
	}
	return false
}

// chooseMethod resolves the requested method against the series. Auto
// prefers seasonal when a period was detected, then linear when the
// trend magnitude dominates, then moving_average. A seasonal request
// without a detected period falls back to moving_average.
func chooseMethod(requested Method, y []float64, season *stats.Seasonality) Method {
	method := requested
	if method == MethodAuto {
		trend := (y[len(y)-1] - y[0]) / float64(len(y))
		switch {
		case season != nil:
			method = MethodSeasonal
		case math.Abs(trend) > trendStdFraction*stat.PopStdDev(y, nil):
			method = MethodLinear
		default:
			method = MethodMovingAverage
		}
	}
	if method == MethodSeasonal && season == nil {
		method = MethodMovingAverage
	}
	return method
}
