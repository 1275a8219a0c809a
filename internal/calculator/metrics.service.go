package calculator

import (
	"fmt"
	"math"
	"sort"
	"time"

	"portfoliometrics/internal/domain"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"
)

const TradingDaysPerYear = 252

// sample stdevs below this are float noise from a flat series
const zeroStdevTolerance = 1e-12

func dailyRiskFreeRate(riskFreeRateAnnual float64) float64 {
	return riskFreeRateAnnual / TradingDaysPerYear
}

// CalculateSharpeRatio is the daily Sharpe ratio of the return series,
// using the sample standard deviation. A series with fewer than two
// points or no variance has no ratio
func CalculateSharpeRatio(returns []float64, riskFreeRateAnnual float64) (float64, error) {
	if len(returns) < 2 {
		return 0, fmt.Errorf("cannot calculate sharpe ratio on %d returns: %w", len(returns), domain.ErrDivisionByZero)
	}

	mean, err := stats.Mean(returns)
	if err != nil {
		return 0, fmt.Errorf("failed to calculate mean return: %w", err)
	}
	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return 0, fmt.Errorf("failed to calculate return stdev: %w", err)
	}
	if math.IsNaN(stdev) || stdev < zeroStdevTolerance {
		return 0, fmt.Errorf("cannot calculate sharpe ratio on flat returns: %w", domain.ErrDivisionByZero)
	}

	return (mean - dailyRiskFreeRate(riskFreeRateAnnual)) / stdev, nil
}

// CalculatePortfolioValueSeries values the holdings on every day any of
// them has a close. A ticker missing on a day adds nothing that day, and
// tickers absent from the table are ignored
func CalculatePortfolioValueSeries(portfolio domain.Portfolio, prices domain.PriceTable) domain.ValueSeries {
	byDate := map[time.Time]decimal.Decimal{}
	for _, h := range portfolio {
		series, ok := prices.Series(h.Ticker)
		if !ok {
			continue
		}
		shares := h.ExactShares()
		for i, d := range series.Dates {
			byDate[d] = byDate[d].Add(shares.Mul(decimal.NewFromFloat(series.Prices[i])))
		}
	}

	out := domain.ValueSeries{
		Dates:  make([]time.Time, 0, len(byDate)),
		Values: make([]float64, 0, len(byDate)),
	}
	for d := range byDate {
		out.Dates = append(out.Dates, d)
	}
	sort.Slice(out.Dates, func(i, j int) bool {
		return out.Dates[i].Before(out.Dates[j])
	})
	for _, d := range out.Dates {
		out.Values = append(out.Values, byDate[d].InexactFloat64())
	}
	return out
}

func valueReturns(values domain.ValueSeries) ([]float64, error) {
	returns := make([]float64, 0, values.Len())
	for i := 1; i < values.Len(); i++ {
		prev := values.Values[i-1]
		if prev <= 0 {
			return nil, fmt.Errorf("%w %f on %s", domain.ErrInvalidTotalValue, prev, values.Dates[i-1].Format(time.DateOnly))
		}
		returns = append(returns, values.Values[i]/prev-1)
	}
	return returns, nil
}

// CalculateRollingSharpeRatio computes the Sharpe ratio over a trailing
// fixed window of daily returns. The output has one point per value
// date; the first lookbackWindow points have no full window and are nil,
// as is any window with no variance
func CalculateRollingSharpeRatio(values domain.ValueSeries, lookbackWindow int, riskFreeRateAnnual float64) (domain.RollingSeries, error) {
	if lookbackWindow < 2 {
		return nil, fmt.Errorf("%w: lookback window must be at least 2, got %d", domain.ErrInvalidInput, lookbackWindow)
	}
	returns, err := valueReturns(values)
	if err != nil {
		return nil, err
	}

	dailyRiskFree := dailyRiskFreeRate(riskFreeRateAnnual)
	out := make(domain.RollingSeries, values.Len())
	for i, d := range values.Dates {
		out[i] = domain.RollingPoint{Date: d}
		// returns[i-1] is the return ending on day i
		end := i
		if end < lookbackWindow {
			continue
		}
		window := returns[end-lookbackWindow : end]
		mean, stdev := stat.MeanStdDev(window, nil)
		if math.IsNaN(stdev) || stdev < zeroStdevTolerance {
			continue
		}
		v := (mean - dailyRiskFree) / stdev
		out[i].Value = &v
	}

	return out, nil
}

// CalculateSummaryMetrics annualizes the stdev and return of the value
// series and finds its worst peak to trough decline
func CalculateSummaryMetrics(values domain.ValueSeries) (*domain.SummaryMetrics, error) {
	if values.Len() < 3 {
		return nil, fmt.Errorf("cannot calculate metrics on %d portfolio values", values.Len())
	}
	returns, err := valueReturns(values)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate returns: %w", err)
	}

	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return nil, err
	}
	annualizedStdev := stdev * math.Sqrt(TradingDaysPerYear)

	startValue := values.Values[0]
	endValue := values.Values[values.Len()-1]
	numHours := values.Dates[values.Len()-1].Sub(values.Dates[0]).Hours()
	numYears := numHours / (365 * 24)
	annualizedReturn := math.Pow(endValue/startValue, 1/numYears) - 1

	return &domain.SummaryMetrics{
		AnnualizedStdev:  annualizedStdev,
		AnnualizedReturn: annualizedReturn,
		MaxDrawdown:      maxDrawdown(values.Values),
	}, nil
}

func maxDrawdown(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	peak := values[0]
	worst := 0.0
	for _, v := range values {
		if v > peak {
			peak = v
		}
		if peak > 0 {
			if dd := (peak - v) / peak; dd > worst {
				worst = dd
			}
		}
	}
	return worst
}
