package domain

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Holding is one line of a portfolio document. The json tag matches the
// upload format, which has always called the share count nShares
type Holding struct {
	Ticker string  `json:"ticker" binding:"required"`
	Shares float64 `json:"nShares" binding:"required,gt=0"`
}

func (h Holding) ExactShares() decimal.Decimal {
	return decimal.NewFromFloat(h.Shares)
}

// Portfolio keeps the order of the uploaded document. An empty
// portfolio is valid and is worth 0
type Portfolio []Holding

func (p Portfolio) Symbols() []string {
	symbols := make([]string, 0, len(p))
	for _, h := range p {
		symbols = append(symbols, h.Ticker)
	}
	return symbols
}

var portfolioValidator = newPortfolioValidator()

func newPortfolioValidator() *validator.Validate {
	v := validator.New()
	// share the tags gin uses when binding request bodies
	v.SetTagName("binding")
	return v
}

// ValidatePortfolio checks the domain rules the calculators rely on:
// non-empty tickers, positive share counts, and unique tickers
func ValidatePortfolio(p Portfolio) error {
	seen := map[string]struct{}{}
	for i, h := range p {
		if err := portfolioValidator.Struct(h); err != nil {
			return fmt.Errorf("%w: holding at index %d: %s", ErrInvalidInput, i, err.Error())
		}
		if _, ok := seen[h.Ticker]; ok {
			return fmt.Errorf("%w: holding at index %d: duplicate ticker %s", ErrInvalidInput, i, h.Ticker)
		}
		seen[h.Ticker] = struct{}{}
	}
	return nil
}

// LoadPortfolio decodes and validates a portfolio document
func LoadPortfolio(r io.Reader) (Portfolio, error) {
	portfolio := Portfolio{}
	if err := json.NewDecoder(r).Decode(&portfolio); err != nil {
		return nil, fmt.Errorf("%w: failed to decode portfolio: %s", ErrInvalidInput, err.Error())
	}
	if err := ValidatePortfolio(portfolio); err != nil {
		return nil, err
	}
	return portfolio, nil
}
