package domain

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// AssetPrice is a single close as returned by a market data provider
type AssetPrice struct {
	Symbol string
	Price  decimal.Decimal
	Date   time.Time
}

// day strips the time of day so prices from different providers
// land on the same key
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// PriceSeries is the close history of one ticker. Dates are strictly
// increasing, prices are positive
type PriceSeries struct {
	Dates  []time.Time
	Prices []float64
}

func NewPriceSeries(dates []time.Time, prices []float64) (PriceSeries, error) {
	if len(dates) != len(prices) {
		return PriceSeries{}, fmt.Errorf("series has %d dates but %d prices", len(dates), len(prices))
	}
	out := PriceSeries{
		Dates:  make([]time.Time, len(dates)),
		Prices: make([]float64, len(prices)),
	}
	for i := range dates {
		d := day(dates[i])
		if i > 0 && !d.After(out.Dates[i-1]) {
			return PriceSeries{}, fmt.Errorf("series dates must be strictly increasing: %s follows %s", d.Format(time.DateOnly), out.Dates[i-1].Format(time.DateOnly))
		}
		if prices[i] <= 0 || math.IsNaN(prices[i]) || math.IsInf(prices[i], 0) {
			return PriceSeries{}, fmt.Errorf("invalid price %f on %s", prices[i], d.Format(time.DateOnly))
		}
		out.Dates[i] = d
		out.Prices[i] = prices[i]
	}
	return out, nil
}

func (s PriceSeries) Len() int {
	return len(s.Dates)
}

// Latest returns the last entry of the series
func (s PriceSeries) Latest() (time.Time, float64, bool) {
	if len(s.Dates) == 0 {
		return time.Time{}, 0, false
	}
	last := len(s.Dates) - 1
	return s.Dates[last], s.Prices[last], true
}

// AsOf returns the last known price on or before the given day
func (s PriceSeries) AsOf(date time.Time) (time.Time, float64, bool) {
	i := lastOnOrBefore(s.Dates, day(date))
	if i < 0 {
		return time.Time{}, 0, false
	}
	return s.Dates[i], s.Prices[i], true
}

// lastOnOrBefore returns the index of the latest date <= d, or -1
func lastOnOrBefore(dates []time.Time, d time.Time) int {
	i := sort.Search(len(dates), func(i int) bool {
		return dates[i].After(d)
	})
	return i - 1
}

// PriceTable maps ticker to its close history. Tickers share a date
// domain but each series may have gaps of its own
type PriceTable map[string]PriceSeries

// NewPriceTable groups provider prices by symbol. A repeated day for the
// same symbol keeps the last price seen
func NewPriceTable(prices []AssetPrice) (PriceTable, error) {
	bySymbol := map[string]map[time.Time]float64{}
	for _, p := range prices {
		if _, ok := bySymbol[p.Symbol]; !ok {
			bySymbol[p.Symbol] = map[time.Time]float64{}
		}
		bySymbol[p.Symbol][day(p.Date)] = p.Price.InexactFloat64()
	}

	table := PriceTable{}
	for symbol, closes := range bySymbol {
		dates := make([]time.Time, 0, len(closes))
		for d := range closes {
			dates = append(dates, d)
		}
		sort.Slice(dates, func(i, j int) bool {
			return dates[i].Before(dates[j])
		})
		values := make([]float64, len(dates))
		for i, d := range dates {
			values[i] = closes[d]
		}
		series, err := NewPriceSeries(dates, values)
		if err != nil {
			return nil, fmt.Errorf("failed to build price series for %s: %w", symbol, err)
		}
		table[symbol] = series
	}

	return table, nil
}

// Series returns the history for a ticker. Absent and empty series are
// both reported as unavailable
func (t PriceTable) Series(symbol string) (PriceSeries, bool) {
	s, ok := t[symbol]
	if !ok || s.Len() == 0 {
		return PriceSeries{}, false
	}
	return s, true
}

func (t PriceTable) Symbols() []string {
	symbols := make([]string, 0, len(t))
	for symbol := range t {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

// Dates is the aggregate index: every day any ticker has a price
func (t PriceTable) Dates() []time.Time {
	set := map[time.Time]struct{}{}
	for _, s := range t {
		for _, d := range s.Dates {
			set[d] = struct{}{}
		}
	}
	out := make([]time.Time, 0, len(set))
	for d := range set {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Before(out[j])
	})
	return out
}

// ResolveDate finds the latest day in the aggregate index on or before
// target
func (t PriceTable) ResolveDate(target time.Time) (time.Time, bool) {
	dates := t.Dates()
	i := lastOnOrBefore(dates, day(target))
	if i < 0 {
		return time.Time{}, false
	}
	return dates[i], true
}

// Between keeps only the closes from start to end inclusive. Tickers left
// with no closes are dropped
func (t PriceTable) Between(start, end time.Time) PriceTable {
	start, end = day(start), day(end)
	out := PriceTable{}
	for symbol, s := range t {
		lo := sort.Search(len(s.Dates), func(i int) bool {
			return !s.Dates[i].Before(start)
		})
		hi := lastOnOrBefore(s.Dates, end) + 1
		if lo >= hi {
			continue
		}
		out[symbol] = PriceSeries{
			Dates:  s.Dates[lo:hi],
			Prices: s.Prices[lo:hi],
		}
	}
	return out
}
