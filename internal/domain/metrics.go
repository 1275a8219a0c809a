package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ValuationResult struct {
	Value decimal.Decimal
	// Date is the day prices were taken from. It precedes the requested
	// day when that day had no trading data
	Date time.Time
}

// ReturnSeries is a date-indexed series of fractional day-over-day
// changes. The weighted portfolio returns use the same shape
type ReturnSeries struct {
	Dates   []time.Time
	Returns []float64
}

func (r ReturnSeries) Len() int {
	return len(r.Dates)
}

// ValueSeries is the portfolio value on each day of the aggregate index
type ValueSeries struct {
	Dates  []time.Time
	Values []float64
}

func (v ValueSeries) Len() int {
	return len(v.Dates)
}

// RollingPoint is nil-valued on days without a full window or with a
// flat window
type RollingPoint struct {
	Date  time.Time `json:"date"`
	Value *float64  `json:"value"`
}

type RollingSeries []RollingPoint

// Defined returns only the points that carry a value
func (r RollingSeries) Defined() RollingSeries {
	out := RollingSeries{}
	for _, p := range r {
		if p.Value != nil {
			out = append(out, p)
		}
	}
	return out
}

type HoldingWeight struct {
	Ticker      string
	Shares      float64
	LatestPrice float64
	LatestDate  time.Time
	Value       float64
	Weight      float64
}

type SummaryMetrics struct {
	AnnualizedStdev  float64
	AnnualizedReturn float64
	MaxDrawdown      float64
}

type ChangePoint struct {
	Date time.Time
	// percent, e.g. 12.5 for +12.5%
	Change float64
}

// BenchmarkComparison puts the portfolio next to a reference ticker over
// the same window. Changes are percent from the first day
type BenchmarkComparison struct {
	Symbol          string
	PortfolioChange float64
	BenchmarkChange float64
	Portfolio       []ChangePoint
	Benchmark       []ChangePoint
}

// PortfolioReport bundles every metric computed for one request
type PortfolioReport struct {
	RequestID          string
	Portfolio          Portfolio
	Valuation          ValuationResult
	Holdings           []HoldingWeight
	RiskFreeRate       float64
	LookbackWindow     int
	SharpeRatio        float64
	Summary            SummaryMetrics
	ValueSeries        ValueSeries
	RollingSharpeRatio RollingSeries
	// nil when no benchmark is configured or it has no prices
	Benchmark *BenchmarkComparison
}
