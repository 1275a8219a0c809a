package calculator

import (
	"testing"
	"time"

	"portfoliometrics/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCalculateIntraPeriodChange(t *testing.T) {
	t.Run("weekly samples", func(t *testing.T) {
		// mon 2023-01-02 through fri 2023-01-13
		days := businessDays(d(2023, 1, 2), 10)
		values := []float64{100, 101, 102, 103, 104, 110, 106, 107, 108, 109}

		out := CalculateIntraPeriodChange(days, values, days[9], 7*24*time.Hour)
		require.Equal(
			t,
			"",
			cmp.Diff(
				[]domain.ChangePoint{
					{Date: d(2023, 1, 2), Change: 0},
					{Date: d(2023, 1, 9), Change: 10},
				},
				out,
				floatComparer,
			),
		)
	})

	t.Run("missing sample day rolls to the next close", func(t *testing.T) {
		days := []time.Time{d(2023, 1, 2), d(2023, 1, 3), d(2023, 1, 10)}
		out := CalculateIntraPeriodChange(days, []float64{50, 51, 45}, d(2023, 1, 31), 7*24*time.Hour)
		require.Equal(
			t,
			"",
			cmp.Diff(
				[]domain.ChangePoint{
					{Date: d(2023, 1, 2), Change: 0},
					{Date: d(2023, 1, 10), Change: -10},
				},
				out,
				floatComparer,
			),
		)
	})

	t.Run("stops at end", func(t *testing.T) {
		days := businessDays(d(2023, 1, 2), 10)
		values := []float64{100, 101, 102, 103, 104, 110, 106, 107, 108, 109}
		out := CalculateIntraPeriodChange(days, values, d(2023, 1, 6), 24*time.Hour)
		require.Len(t, out, 5)
	})

	t.Run("empty", func(t *testing.T) {
		require.Nil(t, CalculateIntraPeriodChange(nil, nil, d(2023, 1, 6), time.Hour))
	})
}

func TestCalculateBenchmarkComparison(t *testing.T) {
	days := businessDays(d(2023, 1, 2), 3)
	out := CalculateBenchmarkComparison(
		"SPY",
		domain.ValueSeries{Dates: days, Values: []float64{1000, 1100, 1200}},
		mustSeries(t, days, []float64{400, 390, 380}),
		days[2],
	)

	require.Equal(t, "SPY", out.Symbol)
	require.InDelta(t, 20.0, out.PortfolioChange, 1e-9)
	require.InDelta(t, -5.0, out.BenchmarkChange, 1e-9)
	require.Len(t, out.Portfolio, 1)
	require.Len(t, out.Benchmark, 1)
}
