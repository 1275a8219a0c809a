package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"portfoliometrics/internal/domain"
	"portfoliometrics/internal/logger"
	"portfoliometrics/internal/repository"
)

const defaultNumPriceWorkers = 10

type PriceService interface {
	LoadPriceTable(ctx context.Context, symbols []string, start, end time.Time) (domain.PriceTable, error)
}

type priceServiceHandler struct {
	PriceRepository repository.PriceRepository
	NumWorkers      int
}

func NewPriceService(priceRepository repository.PriceRepository) PriceService {
	return &priceServiceHandler{
		PriceRepository: priceRepository,
		NumWorkers:      defaultNumPriceWorkers,
	}
}

type symbolPrices struct {
	symbol string
	prices []domain.AssetPrice
	err    error
}

// LoadPriceTable fetches every symbol's closes between start and end.
// Symbols the provider has nothing for are left out of the table so the
// calculators can report them as missing
func (h priceServiceHandler) LoadPriceTable(ctx context.Context, symbols []string, start, end time.Time) (domain.PriceTable, error) {
	log := logger.FromContext(ctx)

	unique := uniqueSymbols(symbols)
	if len(unique) == 0 {
		return domain.PriceTable{}, nil
	}

	numWorkers := h.NumWorkers
	if numWorkers <= 0 || numWorkers > len(unique) {
		numWorkers = len(unique)
	}

	inputCh := make(chan string, len(unique))
	for _, s := range unique {
		inputCh <- s
	}
	close(inputCh)

	resultCh := make(chan symbolPrices, len(unique))
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for symbol := range inputCh {
				if err := ctx.Err(); err != nil {
					resultCh <- symbolPrices{symbol: symbol, err: err}
					continue
				}
				prices, err := h.PriceRepository.List(ctx, symbol, start, end)
				resultCh <- symbolPrices{symbol: symbol, prices: prices, err: err}
			}
		}()
	}
	wg.Wait()
	close(resultCh)

	all := []domain.AssetPrice{}
	errors := []error{}
	for result := range resultCh {
		if result.err != nil {
			errors = append(errors, fmt.Errorf("failed to load prices for %s: %w", result.symbol, result.err))
			continue
		}
		if len(result.prices) == 0 {
			log.Warnf("no prices for %s between %s and %s", result.symbol, start.Format(time.DateOnly), end.Format(time.DateOnly))
			continue
		}
		all = append(all, result.prices...)
	}
	if len(errors) > 0 {
		return nil, fmt.Errorf("failed to load %d/%d symbols. first err: %w", len(errors), len(unique), errors[0])
	}

	table, err := domain.NewPriceTable(all)
	if err != nil {
		return nil, err
	}
	log.Debugf("loaded %d prices for %v", len(all), table.Symbols())

	return table, nil
}

func uniqueSymbols(symbols []string) []string {
	set := map[string]struct{}{}
	out := []string{}
	for _, s := range symbols {
		if _, ok := set[s]; ok || s == "" {
			continue
		}
		set[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
