package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInterestRateMap_GetRate(t *testing.T) {
	curve := InterestRateMap{
		Date: date(2024, 3, 1),
		Rates: map[int]float64{
			1:  0.05,
			6:  0.052,
			12: 0.048,
			24: 0.044,
		},
	}

	t.Run("exact maturity", func(t *testing.T) {
		rate, err := curve.GetRate(12)
		require.NoError(t, err)
		require.Equal(t, 0.048, rate)
	})

	t.Run("interpolates", func(t *testing.T) {
		rate, err := curve.GetRate(18)
		require.NoError(t, err)
		require.InDelta(t, 0.046, rate, 1e-12)
	})

	t.Run("clamps outside the curve", func(t *testing.T) {
		rate, err := curve.GetRate(360)
		require.NoError(t, err)
		require.Equal(t, 0.044, rate)
	})

	t.Run("empty curve", func(t *testing.T) {
		_, err := InterestRateMap{}.GetRate(12)
		require.Error(t, err)
	})
}
