package tablecast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/datasight/tablecast/stats"
)

func TestChooseMethod(t *testing.T) {
	season := &stats.Seasonality{Period: 7, Component: make([]float64, 7)}

	testData := map[string]struct {
		requested Method
		y         []float64
		season    *stats.Seasonality
		expected  Method
	}{
		"explicit linear honored": {
			requested: MethodLinear,
			y:         alternatingSeries(20, 10, 12),
			expected:  MethodLinear,
		},
		"explicit moving average honored": {
			requested: MethodMovingAverage,
			y:         lineSeries(20, 3, 5),
			expected:  MethodMovingAverage,
		},
		"explicit seasonal with profile": {
			requested: MethodSeasonal,
			y:         lineSeries(30, 1, 0),
			season:    season,
			expected:  MethodSeasonal,
		},
		"seasonal without profile falls back": {
			requested: MethodSeasonal,
			y:         lineSeries(15, 1, 0),
			expected:  MethodMovingAverage,
		},
		"auto prefers seasonal": {
			requested: MethodAuto,
			y:         lineSeries(30, 3, 5),
			season:    season,
			expected:  MethodSeasonal,
		},
		"auto picks linear on strong trend": {
			requested: MethodAuto,
			y:         lineSeries(20, 3, 5),
			expected:  MethodLinear,
		},
		"auto falls back to moving average": {
			requested: MethodAuto,
			y:         alternatingSeries(20, 10, 12),
			expected:  MethodMovingAverage,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, chooseMethod(td.requested, td.y, td.season))
		})
	}
}

func TestMethodValid(t *testing.T) {
	assert.True(t, MethodAuto.valid())
	assert.True(t, MethodLinear.valid())
	assert.True(t, MethodSeasonal.valid())
	assert.True(t, MethodMovingAverage.valid())
	assert.False(t, Method("arima").valid())
	assert.False(t, Method("").valid())
}
