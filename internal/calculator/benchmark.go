package calculator

import (
	"time"

	"portfoliometrics/internal/domain"
	"portfoliometrics/internal/util"

	"github.com/shopspring/decimal"
)

// CalculateIntraPeriodChange converts a sorted series to % change from
// its first value, sampled every granularity up to end. A sample day
// with no data is skipped
func CalculateIntraPeriodChange(
	dates []time.Time,
	values []float64,
	end time.Time,
	granularity time.Duration,
) []domain.ChangePoint {
	if len(dates) == 0 || len(dates) != len(values) || values[0] <= 0 {
		return nil
	}

	start := decimal.NewFromFloat(values[0])
	out := []domain.ChangePoint{
		{Date: dates[0], Change: 0},
	}
	nextTarget := dates[0].Add(granularity)
	for i := 1; i < len(dates) && util.DateLte(dates[i], end); i++ {
		for nextTarget.Before(dates[i]) && !sameDay(nextTarget, dates[i]) {
			nextTarget = nextTarget.Add(24 * time.Hour)
		}
		if sameDay(nextTarget, dates[i]) {
			change := decimal.NewFromInt(100).Mul(decimal.NewFromFloat(values[i]).Sub(start)).Div(start)
			out = append(out, domain.ChangePoint{
				Date:   dates[i],
				Change: change.InexactFloat64(),
			})
			nextTarget = nextTarget.Add(granularity)
		}
	}

	return out
}

func sameDay(a, b time.Time) bool {
	return a.Format(time.DateOnly) == b.Format(time.DateOnly)
}

// CalculateBenchmarkComparison samples the portfolio value series and the
// benchmark closes on the same weekly grid
func CalculateBenchmarkComparison(symbol string, values domain.ValueSeries, benchmark domain.PriceSeries, end time.Time) *domain.BenchmarkComparison {
	week := 7 * 24 * time.Hour
	out := &domain.BenchmarkComparison{
		Symbol:    symbol,
		Portfolio: CalculateIntraPeriodChange(values.Dates, values.Values, end, week),
		Benchmark: CalculateIntraPeriodChange(benchmark.Dates, benchmark.Prices, end, week),
	}
	out.PortfolioChange = totalChange(values.Values)
	out.BenchmarkChange = totalChange(benchmark.Prices)
	return out
}

func totalChange(values []float64) float64 {
	if len(values) < 2 || values[0] <= 0 {
		return 0
	}
	start := decimal.NewFromFloat(values[0])
	last := decimal.NewFromFloat(values[len(values)-1])
	return decimal.NewFromInt(100).Mul(last.Sub(start)).Div(start).InexactFloat64()
}
