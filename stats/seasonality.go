package stats

import (
	"gonum.org/v1/gonum/stat"
)

const (
	// MinSeasonalityLen is the series length above which seasonality
	// detection is attempted.
	MinSeasonalityLen = 20

	// PeakThreshold is the minimum normalized autocorrelation for a lag
	// to qualify as a seasonal period.
	PeakThreshold = 0.3
)

// Seasonality describes a detected periodic structure. Component maps
// phase-in-period to the mean offset from the series mean at that phase.
type Seasonality struct {
	Period    int
	Component []float64
}

// DetectSeasonality searches the autocorrelation function of y for the
// first local maximum above PeakThreshold in ascending lag order and
// returns its lag as the seasonal period. Later, possibly stronger, peaks
// are ignored. Returns nil when the series is too short, has zero
// variance, or no lag qualifies.
func DetectSeasonality(y []float64) *Seasonality {
	n := len(y)
	if n <= MinSeasonalityLen {
		return nil
	}

	acf := ACF(y, n-1)
	if acf == nil {
		return nil
	}

	maxLag := len(acf) - 1
	if n/2 < maxLag {
		maxLag = n / 2
	}

	period := 0
	for lag := 2; lag < maxLag; lag++ {
		if acf[lag] > acf[lag-1] && acf[lag] > acf[lag+1] && acf[lag] > PeakThreshold {
			period = lag
			break
		}
	}
	if period == 0 {
		return nil
	}

	return &Seasonality{
		Period:    period,
		Component: seasonalComponent(y, period),
	}
}

// seasonalComponent averages the values at each phase of the period and
// subtracts the global mean, yielding one offset per phase.
func seasonalComponent(y []float64, period int) []float64 {
	mean := stat.Mean(y, nil)
	component := make([]float64, period)
	for p := 0; p < period; p++ {
		var phase []float64
		for i := p; i < len(y); i += period {
			phase = append(phase, y[i])
		}
		component[p] = stat.Mean(phase, nil) - mean
	}
	return component
}
