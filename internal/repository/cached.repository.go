package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"portfoliometrics/internal/domain"
)

type priceCacheEntry struct {
	prices    []domain.AssetPrice
	fetchedAt time.Time
}

// PriceCache holds List results by symbol and date range
type PriceCache map[string]priceCacheEntry

func priceCacheKey(symbol string, start, end time.Time) string {
	return fmt.Sprintf("%s|%s|%s", symbol, start.Format(time.DateOnly), end.Format(time.DateOnly))
}

type CachedPriceRepositoryHandler struct {
	Source    PriceRepository
	Ttl       time.Duration
	Cache     PriceCache
	ReadMutex *sync.RWMutex

	now func() time.Time
}

// NewCachedPriceRepository wraps source so repeated requests for the same
// range within ttl skip the provider. A ttl of zero disables caching
func NewCachedPriceRepository(source PriceRepository, ttl time.Duration) *CachedPriceRepositoryHandler {
	return &CachedPriceRepositoryHandler{
		Source:    source,
		Ttl:       ttl,
		Cache:     make(PriceCache),
		ReadMutex: &sync.RWMutex{},
		now:       time.Now,
	}
}

func (h *CachedPriceRepositoryHandler) GetFromCache(key string) ([]domain.AssetPrice, bool) {
	h.ReadMutex.RLock()
	defer h.ReadMutex.RUnlock()
	entry, ok := h.Cache[key]
	if !ok || h.now().Sub(entry.fetchedAt) >= h.Ttl {
		return nil, false
	}
	return entry.prices, true
}

func (h *CachedPriceRepositoryHandler) AddToCache(key string, prices []domain.AssetPrice) {
	h.ReadMutex.Lock()
	h.Cache[key] = priceCacheEntry{
		prices:    prices,
		fetchedAt: h.now(),
	}
	h.ReadMutex.Unlock()
}

func (h *CachedPriceRepositoryHandler) List(ctx context.Context, symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	if h.Ttl <= 0 {
		return h.Source.List(ctx, symbol, start, end)
	}

	key := priceCacheKey(symbol, start, end)
	if prices, ok := h.GetFromCache(key); ok {
		return prices, nil
	}

	prices, err := h.Source.List(ctx, symbol, start, end)
	if err != nil {
		return nil, err
	}
	h.AddToCache(key, prices)

	return prices, nil
}
