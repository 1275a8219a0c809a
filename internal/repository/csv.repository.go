package repository

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"portfoliometrics/internal/domain"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// PriceRow is one line of a price file: date,symbol,price
type PriceRow struct {
	Date   string  `csv:"date"`
	Symbol string  `csv:"symbol"`
	Price  float64 `csv:"price"`
}

type csvPriceRepositoryHandler struct {
	path string

	once   sync.Once
	prices map[string][]domain.AssetPrice
	err    error
}

// NewCsvPriceRepository serves prices from a file. The file is read on
// first use
func NewCsvPriceRepository(path string) PriceRepository {
	return &csvPriceRepositoryHandler{
		path: path,
	}
}

func (h *csvPriceRepositoryHandler) load() {
	f, err := os.Open(h.path)
	if err != nil {
		h.err = fmt.Errorf("failed to open price file: %w", err)
		return
	}
	defer f.Close()

	rows := []PriceRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		h.err = fmt.Errorf("failed to parse price file %s: %w", h.path, err)
		return
	}
	h.prices, h.err = pricesFromRows(rows)
}

func pricesFromRows(rows []PriceRow) (map[string][]domain.AssetPrice, error) {
	out := map[string][]domain.AssetPrice{}
	for i, row := range rows {
		date, err := time.Parse(time.DateOnly, row.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date on row %d: %w", i+1, err)
		}
		out[row.Symbol] = append(out[row.Symbol], domain.AssetPrice{
			Symbol: row.Symbol,
			Price:  decimal.NewFromFloat(row.Price),
			Date:   date,
		})
	}
	for _, prices := range out {
		sort.SliceStable(prices, func(i, j int) bool {
			return prices[i].Date.Before(prices[j].Date)
		})
	}
	return out, nil
}

func (h *csvPriceRepositoryHandler) List(ctx context.Context, symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	h.once.Do(h.load)
	if h.err != nil {
		return nil, h.err
	}

	out := []domain.AssetPrice{}
	for _, p := range h.prices[symbol] {
		if inRange(p.Date, start, end) {
			out = append(out, p)
		}
	}
	return out, nil
}
