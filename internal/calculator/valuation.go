package calculator

import (
	"fmt"
	"time"

	"portfoliometrics/internal/domain"

	"github.com/shopspring/decimal"
)

// CalculateTotalValue values the portfolio on the given day. When the day
// has no prices it falls back to the latest earlier day in the table, so
// a day past the end of history is valued at the most recent close. The
// resolved day is returned with the value
func CalculateTotalValue(portfolio domain.Portfolio, prices domain.PriceTable, date time.Time) (*domain.ValuationResult, error) {
	if len(portfolio) == 0 {
		return &domain.ValuationResult{
			Value: decimal.Zero,
			Date:  date,
		}, nil
	}

	for _, h := range portfolio {
		if _, ok := prices.Series(h.Ticker); !ok {
			return nil, fmt.Errorf("cannot compute portfolio total value: %w %s", domain.ErrMissingTicker, h.Ticker)
		}
	}

	// one day is resolved against every ticker's dates and shared by
	// the whole portfolio
	resolved, ok := prices.ResolveDate(date)
	if !ok {
		return nil, fmt.Errorf("cannot compute portfolio total value: %w %s", domain.ErrNoPriceBeforeDate, date.Format(time.DateOnly))
	}

	totalValue := decimal.Zero
	for _, h := range portfolio {
		series, _ := prices.Series(h.Ticker)
		_, price, ok := series.AsOf(resolved)
		if !ok {
			return nil, fmt.Errorf("cannot compute portfolio total value: %w %s for %s", domain.ErrNoPriceBeforeDate, resolved.Format(time.DateOnly), h.Ticker)
		}
		totalValue = totalValue.Add(h.ExactShares().Mul(decimal.NewFromFloat(price)))
	}

	return &domain.ValuationResult{
		Value: totalValue,
		Date:  resolved,
	}, nil
}
