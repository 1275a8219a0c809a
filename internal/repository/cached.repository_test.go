package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"portfoliometrics/internal/domain"
	mock_repository "portfoliometrics/internal/repository/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCachedPriceRepository_List(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	prices := []domain.AssetPrice{
		{Symbol: "AAPL", Price: decimal.NewFromInt(130), Date: start.AddDate(0, 0, 2)},
	}

	t.Run("second call within ttl is served from cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mock_repository.NewMockPriceRepository(ctrl)
		source.EXPECT().List(gomock.Any(), "AAPL", start, end).Return(prices, nil).Times(1)

		repo := NewCachedPriceRepository(source, time.Minute)
		for i := 0; i < 3; i++ {
			out, err := repo.List(ctx, "AAPL", start, end)
			require.NoError(t, err)
			require.Equal(t, prices, out)
		}
	})

	t.Run("expired entries are refetched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mock_repository.NewMockPriceRepository(ctrl)
		source.EXPECT().List(gomock.Any(), "AAPL", start, end).Return(prices, nil).Times(2)

		now := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
		repo := NewCachedPriceRepository(source, time.Minute)
		repo.now = func() time.Time { return now }

		_, err := repo.List(ctx, "AAPL", start, end)
		require.NoError(t, err)
		now = now.Add(2 * time.Minute)
		_, err = repo.List(ctx, "AAPL", start, end)
		require.NoError(t, err)
	})

	t.Run("errors are not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mock_repository.NewMockPriceRepository(ctrl)
		gomock.InOrder(
			source.EXPECT().List(gomock.Any(), "AAPL", start, end).Return(nil, fmt.Errorf("rate limited")),
			source.EXPECT().List(gomock.Any(), "AAPL", start, end).Return(prices, nil),
		)

		repo := NewCachedPriceRepository(source, time.Minute)
		_, err := repo.List(ctx, "AAPL", start, end)
		require.Error(t, err)
		out, err := repo.List(ctx, "AAPL", start, end)
		require.NoError(t, err)
		require.Equal(t, prices, out)
	})

	t.Run("zero ttl passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mock_repository.NewMockPriceRepository(ctrl)
		source.EXPECT().List(gomock.Any(), "AAPL", start, end).Return(prices, nil).Times(2)

		repo := NewCachedPriceRepository(source, 0)
		_, err := repo.List(ctx, "AAPL", start, end)
		require.NoError(t, err)
		_, err = repo.List(ctx, "AAPL", start, end)
		require.NoError(t, err)
	})
}
