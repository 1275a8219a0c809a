package repository

import (
	"context"
	"time"

	"portfoliometrics/internal/domain"
)

// PriceRepository lists daily closes for a symbol between start and end,
// inclusive, in ascending date order. A symbol the provider does not know
// returns an empty slice
type PriceRepository interface {
	List(ctx context.Context, symbol string, start, end time.Time) ([]domain.AssetPrice, error)
}

func inRange(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}
