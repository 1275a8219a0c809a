package calculator

import (
	"fmt"
	"math"
	"sort"
	"time"

	"portfoliometrics/internal/domain"
)

// CalculateReturns converts a price series to day-over-day fractional
// change. The first date has no baseline and is dropped
func CalculateReturns(series domain.PriceSeries) domain.ReturnSeries {
	if series.Len() < 2 {
		return domain.ReturnSeries{}
	}
	out := domain.ReturnSeries{
		Dates:   make([]time.Time, 0, series.Len()-1),
		Returns: make([]float64, 0, series.Len()-1),
	}
	for i := 1; i < series.Len(); i++ {
		out.Dates = append(out.Dates, series.Dates[i])
		out.Returns = append(out.Returns, series.Prices[i]/series.Prices[i-1]-1)
	}
	return out
}

func validTotalValue(totalValue float64) error {
	if totalValue <= 0 || math.IsNaN(totalValue) || math.IsInf(totalValue, 0) {
		return fmt.Errorf("%w %f: weights need a positive portfolio value", domain.ErrInvalidTotalValue, totalValue)
	}
	return nil
}

// CalculateHoldingWeights weights each holding by its latest close, i.e.
// the last entry of its own series, which is not necessarily the day the
// portfolio was valued. Holdings without prices are skipped
func CalculateHoldingWeights(portfolio domain.Portfolio, prices domain.PriceTable, totalValue float64) ([]domain.HoldingWeight, error) {
	if err := validTotalValue(totalValue); err != nil {
		return nil, err
	}

	out := []domain.HoldingWeight{}
	for _, h := range portfolio {
		series, ok := prices.Series(h.Ticker)
		if !ok {
			continue
		}
		latestDate, latestPrice, _ := series.Latest()
		value := latestPrice * h.Shares
		out = append(out, domain.HoldingWeight{
			Ticker:      h.Ticker,
			Shares:      h.Shares,
			LatestPrice: latestPrice,
			LatestDate:  latestDate,
			Value:       value,
			Weight:      value / totalValue,
		})
	}
	return out, nil
}

// CalculateWeightedReturns sums each holding's returns scaled by its
// weight. Series may be ragged: a day missing for one ticker only gets
// contributions from the tickers that have it, and a ticker with no
// prices contributes nothing
func CalculateWeightedReturns(portfolio domain.Portfolio, prices domain.PriceTable, totalValue float64) (domain.ReturnSeries, error) {
	weights, err := CalculateHoldingWeights(portfolio, prices, totalValue)
	if err != nil {
		return domain.ReturnSeries{}, err
	}

	weighted := map[time.Time]float64{}
	for _, w := range weights {
		series, _ := prices.Series(w.Ticker)
		returns := CalculateReturns(series)
		for i, d := range returns.Dates {
			weighted[d] += returns.Returns[i] * w.Weight
		}
	}

	dates := make([]time.Time, 0, len(weighted))
	for d := range weighted {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	out := domain.ReturnSeries{
		Dates:   dates,
		Returns: make([]float64, len(dates)),
	}
	for i, d := range dates {
		out.Returns[i] = weighted[d]
	}
	return out, nil
}
