// Package frame holds the tabular request payload and extracts numeric
// series from it for the forecaster.
package frame

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	ErrColumnNotFound   = errors.New("column not found")
	ErrInsufficientData = errors.New("need at least 10 data points for forecasting")
	ErrNoRows           = errors.New("no rows provided")
)

// MinObservations is the smallest usable series length for any forecast.
const MinObservations = 10

// Rows is a decoded tabular payload. Each row maps column name to a raw
// cell value; rows need not share the same key set.
type Rows []map[string]any

// Column coerces the named column to a numeric series. Cells that are
// missing, non-numeric, or non-finite are dropped and the remaining
// values compact into index order.
func (r Rows) Column(name string) ([]float64, error) {
	if len(r) == 0 {
		return nil, ErrNoRows
	}

	var present bool
	y := make([]float64, 0, len(r))
	for _, row := range r {
		raw, exists := row[name]
		if !exists {
			continue
		}
		present = true

		val, ok := toFloat(raw)
		if !ok || math.IsNaN(val) || math.IsInf(val, 0) {
			continue
		}
		y = append(y, val)
	}

	if !present {
		return nil, fmt.Errorf("column %q, %w", name, ErrColumnNotFound)
	}
	if len(y) < MinObservations {
		return nil, fmt.Errorf("column %q has %d numeric values, %w", name, len(y), ErrInsufficientData)
	}
	return y, nil
}

// HasColumn reports whether the named column exists in at least one row.
func (r Rows) HasColumn(name string) bool {
	for _, row := range r {
		if _, exists := row[name]; exists {
			return true
		}
	}
	return false
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		val, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return val, true
	case bool:
		if v {
			return 1.0, true
		}
		return 0.0, true
	default:
		return 0, false
	}
}
