package calculator

import (
	"math/rand"
	"testing"
	"time"

	"portfoliometrics/internal/domain"
	"portfoliometrics/internal/util"

	"github.com/stretchr/testify/require"
)

// businessDays returns n weekdays starting on or after start
func businessDays(start time.Time, n int) []time.Time {
	out := []time.Time{}
	for d := start; len(out) < n; d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		out = append(out, d)
	}
	return out
}

// simulatedPrices compounds normally distributed daily returns with
// mean 0.0004 and stdev 0.015 from the base price
func simulatedPrices(rng *rand.Rand, base float64, n int) []float64 {
	prices := make([]float64, n)
	price := base
	for i := range prices {
		price *= 1 + rng.NormFloat64()*0.015 + 0.0004
		prices[i] = price
	}
	return prices
}

func mustSeries(t *testing.T, dates []time.Time, prices []float64) domain.PriceSeries {
	t.Helper()
	s, err := domain.NewPriceSeries(dates, prices)
	require.NoError(t, err)
	return s
}

func d(year, month, day int) time.Time {
	return util.NewDate(year, month, day)
}
