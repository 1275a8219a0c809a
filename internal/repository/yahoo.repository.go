package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"portfoliometrics/internal/domain"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

type yahooPriceRepositoryHandler struct{}

func NewYahooPriceRepository() PriceRepository {
	return yahooPriceRepositoryHandler{}
}

// List pulls adjusted daily closes from the Yahoo chart endpoint. Bars
// with no close are dropped
func (h yahooPriceRepositoryHandler) List(ctx context.Context, symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	// end is exclusive on the chart endpoint
	exclusiveEnd := end.AddDate(0, 0, 1)
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&exclusiveEnd),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	params.Context = &ctx
	iter := chart.Get(params)

	out := []domain.AssetPrice{}
	for iter.Next() {
		bar := iter.Bar()
		if !bar.AdjClose.IsPositive() {
			continue
		}
		date := time.Unix(int64(bar.Timestamp), 0).UTC()
		if date.Before(start) || !date.Before(exclusiveEnd) {
			continue
		}
		out = append(out, domain.AssetPrice{
			Symbol: symbol,
			Date:   date,
			Price:  bar.AdjClose,
		})
	}
	if err := iter.Err(); err != nil {
		// unknown symbols come back as a 404 from the chart endpoint
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			return []domain.AssetPrice{}, nil
		}
		return nil, fmt.Errorf("failed to get prices for %s: %w", symbol, err)
	}

	return out, nil
}
