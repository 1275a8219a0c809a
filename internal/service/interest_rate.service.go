package service

import (
	"context"
	"fmt"
	"time"

	"portfoliometrics/internal/domain"
	"portfoliometrics/internal/logger"
)

// RiskFreeRateService supplies the annual risk free rate used by the
// sharpe calculations
type RiskFreeRateService interface {
	AnnualRate(ctx context.Context, date time.Time) (float64, error)
}

type fixedRiskFreeRateHandler struct {
	Rate float64
}

func NewFixedRiskFreeRateService(rate float64) RiskFreeRateService {
	return fixedRiskFreeRateHandler{Rate: rate}
}

func (h fixedRiskFreeRateHandler) AnnualRate(ctx context.Context, date time.Time) (float64, error) {
	return h.Rate, nil
}

type YieldCurveClient interface {
	GetYieldCurve(ctx context.Context, date time.Time) (domain.InterestRateMap, error)
}

// treasury snapshots only exist for trading days
const maxYieldCurveLookback = 7

type treasuryRiskFreeRateHandler struct {
	Client         YieldCurveClient
	MaturityMonths int
}

func NewTreasuryRiskFreeRateService(client YieldCurveClient) RiskFreeRateService {
	return treasuryRiskFreeRateHandler{
		Client:         client,
		MaturityMonths: 12,
	}
}

// AnnualRate uses the one year treasury yield from the latest snapshot
// on or before date
func (h treasuryRiskFreeRateHandler) AnnualRate(ctx context.Context, date time.Time) (float64, error) {
	log := logger.FromContext(ctx)

	var lastErr error
	for i := 0; i < maxYieldCurveLookback; i++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		day := date.AddDate(0, 0, -i)
		curve, err := h.Client.GetYieldCurve(ctx, day)
		if err != nil {
			lastErr = err
			log.Debugf("no yield curve on %s: %s", day.Format(time.DateOnly), err.Error())
			continue
		}
		return curve.GetRate(h.MaturityMonths)
	}

	return 0, fmt.Errorf("failed to get risk free rate on or before %s: %w", date.Format(time.DateOnly), lastErr)
}
