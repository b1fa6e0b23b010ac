package tablecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBacktest(t *testing.T) {
	testData := map[string]struct {
		y      []float64
		method Method
		mape   *float64
		rmse   *float64
	}{
		"too short": {
			y:      []float64{1, 2, 3, 4, 5},
			method: MethodLinear,
		},
		"linear refit on exact line": {
			y:      lineSeries(20, 3, 5),
			method: MethodLinear,
			mape:   f64(0),
			rmse:   f64(0),
		},
		"carry forward on constant series": {
			y:      []float64{5, 5, 5, 5, 5, 5, 5, 5, 5, 5},
			method: MethodMovingAverage,
			mape:   f64(0),
			rmse:   f64(0),
		},
		"carry forward on ramp": {
			y:      lineSeries(10, 1, 0),
			method: MethodMovingAverage,
			mape:   f64(40.3492),
			rmse:   f64(3.3166),
		},
		"zero actuals omit mape": {
			y:      []float64{1, 2, 3, 4, 5, 0, 0, 0, 0, 0},
			method: MethodMovingAverage,
			rmse:   f64(5),
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			acc := backtest(td.y, td.method)
			if td.mape == nil {
				assert.Nil(t, acc.MAPE)
			} else {
				require.NotNil(t, acc.MAPE)
				assert.InDelta(t, *td.mape, *acc.MAPE, 1e-4)
			}
			if td.rmse == nil {
				assert.Nil(t, acc.RMSE)
			} else {
				require.NotNil(t, acc.RMSE)
				assert.InDelta(t, *td.rmse, *acc.RMSE, 1e-4)
			}
		})
	}
}

func TestBacktestIgnoresProductionStrategy(t *testing.T) {
	// non-linear methods share the naive carry-forward baseline, so the
	// seasonal and moving average backtests agree on the same series
	y := lineSeries(30, 2, 1)
	seasonal := backtest(y, MethodSeasonal)
	movingAvg := backtest(y, MethodMovingAverage)
	require.NotNil(t, seasonal.RMSE)
	require.NotNil(t, movingAvg.RMSE)
	assert.Equal(t, *seasonal.RMSE, *movingAvg.RMSE)

	linear := backtest(y, MethodLinear)
	require.NotNil(t, linear.RMSE)
	assert.Less(t, *linear.RMSE, *seasonal.RMSE)
}
