package tablecast

import (
	"errors"

	"github.com/datasight/tablecast/frame"
)

// MaxColumns bounds how many columns a multi-series request processes.
// Extra columns are ignored, not rejected.
const MaxColumns = 5

var ErrNoForecastableColumns = errors.New("no columns could be forecasted")

// ForecastColumns fans the single-series pipeline out across the named
// columns and aggregates the results. Columns that fail extraction or
// fitting are dropped from the result set; output order matches input
// order. Fails only when every column fails.
func (f *Forecaster) ForecastColumns(rows frame.Rows, columns []string) (*MultiResult, error) {
	if len(columns) > MaxColumns {
		columns = columns[:MaxColumns]
	}

	forecasts := make([]ColumnForecast, 0, len(columns))
	for _, column := range columns {
		res, err := f.Forecast(rows, column)
		if err != nil {
			continue
		}
		forecasts = append(forecasts, ColumnForecast{
			Column:       column,
			Summary:      res.Summary,
			ModelInfo:    res.ModelInfo,
			ForecastData: res.ForecastData,
		})
	}

	if len(forecasts) == 0 {
		return nil, ErrNoForecastableColumns
	}

	return &MultiResult{
		Success:          true,
		Periods:          f.opt.Periods,
		Forecasts:        forecasts,
		ColumnsProcessed: len(forecasts),
	}, nil
}
