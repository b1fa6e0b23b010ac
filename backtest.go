package tablecast

import "math"

// holdout is the number of trailing points reserved for backtesting.
const holdout = 5

// backtest holds out the final points of the series, re-forecasts them,
// and scores the result against the held-out actuals. The linear family
// is re-fit on the truncated series; every other method carries the last
// training value forward. Returns empty metrics when the series is too
// short to split.
func backtest(y []float64, method Method) Accuracy {
	if len(y) <= holdout {
		return Accuracy{}
	}

	trainSize := len(y) - holdout
	train := y[:trainSize]
	test := y[trainSize:]

	predicted := make([]float64, holdout)
	if method == MethodLinear {
		fit := fitTrend(train)
		for i := range predicted {
			predicted[i] = fit.at(float64(trainSize + i))
		}
	} else {
		for i := range predicted {
			predicted[i] = train[trainSize-1]
		}
	}

	var sqSum, mapeSum float64
	var mapeCount int
	for i, actual := range test {
		diff := actual - predicted[i]
		sqSum += diff * diff
		// a zero actual makes the percentage error undefined, so the
		// term is omitted from the average
		if actual != 0 {
			mapeSum += math.Abs(diff / actual)
			mapeCount++
		}
	}

	acc := Accuracy{
		RMSE: f64(round4(math.Sqrt(sqSum / holdout))),
	}
	if mapeCount > 0 {
		acc.MAPE = f64(round4(mapeSum / float64(mapeCount) * 100))
	}
	return acc
}
