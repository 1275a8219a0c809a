package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"portfoliometrics/internal/domain"
	mock_repository "portfoliometrics/internal/repository/mocks"
	"portfoliometrics/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPriceService_LoadPriceTable(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)
	day1 := time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2023, 1, 4, 0, 0, 0, 0, time.UTC)

	t.Run("fetches each symbol once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockPriceRepository(ctrl)
		repo.EXPECT().List(gomock.Any(), "AAPL", start, end).Return([]domain.AssetPrice{
			{Symbol: "AAPL", Price: decimal.NewFromInt(125), Date: day1},
			{Symbol: "AAPL", Price: decimal.NewFromInt(126), Date: day2},
		}, nil)
		repo.EXPECT().List(gomock.Any(), "MSFT", start, end).Return([]domain.AssetPrice{
			{Symbol: "MSFT", Price: decimal.NewFromInt(239), Date: day1},
		}, nil)

		table, err := service.NewPriceService(repo).LoadPriceTable(ctx, []string{"MSFT", "AAPL", "MSFT"}, start, end)
		require.NoError(t, err)
		require.Equal(t, []string{"AAPL", "MSFT"}, table.Symbols())
		require.Equal(t, []float64{125, 126}, table["AAPL"].Prices)
	})

	t.Run("symbols without data are left out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockPriceRepository(ctrl)
		repo.EXPECT().List(gomock.Any(), "AAPL", start, end).Return([]domain.AssetPrice{
			{Symbol: "AAPL", Price: decimal.NewFromInt(125), Date: day1},
		}, nil)
		repo.EXPECT().List(gomock.Any(), "INVALID", start, end).Return([]domain.AssetPrice{}, nil)

		table, err := service.NewPriceService(repo).LoadPriceTable(ctx, []string{"AAPL", "INVALID"}, start, end)
		require.NoError(t, err)
		_, ok := table.Series("INVALID")
		require.False(t, ok)
	})

	t.Run("provider failure fails the load", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockPriceRepository(ctrl)
		repo.EXPECT().List(gomock.Any(), "AAPL", start, end).Return(nil, fmt.Errorf("timeout"))

		_, err := service.NewPriceService(repo).LoadPriceTable(ctx, []string{"AAPL"}, start, end)
		require.ErrorContains(t, err, "timeout")
	})

	t.Run("no symbols", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockPriceRepository(ctrl)

		table, err := service.NewPriceService(repo).LoadPriceTable(ctx, nil, start, end)
		require.NoError(t, err)
		require.Empty(t, table)
	})
}
