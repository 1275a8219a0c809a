package repository

import (
	"context"
	"fmt"
	"time"

	"portfoliometrics/internal/domain"
	"portfoliometrics/internal/logger"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/shopspring/decimal"
)

// BarsClient is the part of the alpaca market data client used here
type BarsClient interface {
	GetBars(symbol string, req marketdata.GetBarsRequest) ([]marketdata.Bar, error)
}

type alpacaPriceRepositoryHandler struct {
	MdClient BarsClient
}

func NewAlpacaPriceRepository(apiKey, apiSecret, endpoint string) PriceRepository {
	mdClient := marketdata.NewClient(marketdata.ClientOpts{
		BaseURL:   endpoint,
		APIKey:    apiKey,
		APISecret: apiSecret,
	})

	return &alpacaPriceRepositoryHandler{
		MdClient: mdClient,
	}
}

// List requests split and dividend adjusted daily bars
func (h alpacaPriceRepositoryHandler) List(ctx context.Context, symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	log := logger.FromContext(ctx)

	exclusiveEnd := end.AddDate(0, 0, 1)
	bars, err := h.MdClient.GetBars(symbol, marketdata.GetBarsRequest{
		TimeFrame:  marketdata.OneDay,
		Adjustment: marketdata.All,
		Start:      start,
		End:        exclusiveEnd,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get bars for %s: %w", symbol, err)
	}

	out := []domain.AssetPrice{}
	for _, bar := range bars {
		if bar.Close <= 0 {
			log.Warnf("skipping %s bar on %s with close %f", symbol, bar.Timestamp.Format(time.DateOnly), bar.Close)
			continue
		}
		date := bar.Timestamp.UTC()
		if date.Before(start) || !date.Before(exclusiveEnd) {
			continue
		}
		out = append(out, domain.AssetPrice{
			Symbol: symbol,
			Price:  decimal.NewFromFloat(bar.Close),
			Date:   date,
		})
	}

	return out, nil
}
