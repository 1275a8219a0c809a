package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"portfoliometrics/internal/domain"
	"portfoliometrics/internal/service"
	mock_service "portfoliometrics/internal/service/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRiskFreeRateService(t *testing.T) {
	ctx := context.Background()
	// a sunday
	date := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)

	t.Run("fixed", func(t *testing.T) {
		rate, err := service.NewFixedRiskFreeRateService(0.03).AnnualRate(ctx, date)
		require.NoError(t, err)
		require.Equal(t, 0.03, rate)
	})

	t.Run("treasury walks back to the last snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock_service.NewMockYieldCurveClient(ctrl)
		friday := date.AddDate(0, 0, -2)
		gomock.InOrder(
			client.EXPECT().GetYieldCurve(gomock.Any(), date).Return(domain.InterestRateMap{}, fmt.Errorf("no data")),
			client.EXPECT().GetYieldCurve(gomock.Any(), date.AddDate(0, 0, -1)).Return(domain.InterestRateMap{}, fmt.Errorf("no data")),
			client.EXPECT().GetYieldCurve(gomock.Any(), friday).Return(domain.InterestRateMap{
				Date:  friday,
				Rates: map[int]float64{6: 0.053, 12: 0.05, 24: 0.046},
			}, nil),
		)

		rate, err := service.NewTreasuryRiskFreeRateService(client).AnnualRate(ctx, date)
		require.NoError(t, err)
		require.Equal(t, 0.05, rate)
	})

	t.Run("treasury gives up after a week", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock_service.NewMockYieldCurveClient(ctrl)
		client.EXPECT().GetYieldCurve(gomock.Any(), gomock.Any()).Return(domain.InterestRateMap{}, fmt.Errorf("down")).Times(7)

		_, err := service.NewTreasuryRiskFreeRateService(client).AnnualRate(ctx, date)
		require.ErrorContains(t, err, "down")
	})
}
