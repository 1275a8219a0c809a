package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/stretchr/testify/require"
)

type fakeBarsClient struct {
	bars []marketdata.Bar
	err  error
	req  marketdata.GetBarsRequest
}

func (f *fakeBarsClient) GetBars(symbol string, req marketdata.GetBarsRequest) ([]marketdata.Bar, error) {
	f.req = req
	return f.bars, f.err
}

func Test_alpacaPriceRepositoryHandler_List(t *testing.T) {
	start := time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)

	t.Run("converts daily bars", func(t *testing.T) {
		client := &fakeBarsClient{
			bars: []marketdata.Bar{
				{Timestamp: time.Date(2023, 1, 3, 5, 0, 0, 0, time.UTC), Close: 125.07},
				{Timestamp: time.Date(2023, 1, 4, 5, 0, 0, 0, time.UTC), Close: 0},
				{Timestamp: time.Date(2023, 1, 5, 5, 0, 0, 0, time.UTC), Close: 125.02},
			},
		}
		h := alpacaPriceRepositoryHandler{MdClient: client}

		prices, err := h.List(context.Background(), "AAPL", start, end)
		require.NoError(t, err)
		require.Len(t, prices, 2)
		require.Equal(t, "125.07", prices[0].Price.String())
		require.Equal(t, "AAPL", prices[1].Symbol)

		require.Equal(t, marketdata.OneDay, client.req.TimeFrame)
		require.Equal(t, marketdata.All, client.req.Adjustment)
		require.Equal(t, end.AddDate(0, 0, 1), client.req.End)
	})

	t.Run("client error", func(t *testing.T) {
		h := alpacaPriceRepositoryHandler{MdClient: &fakeBarsClient{err: fmt.Errorf("forbidden")}}
		_, err := h.List(context.Background(), "AAPL", start, end)
		require.ErrorContains(t, err, "AAPL")
	})
}
