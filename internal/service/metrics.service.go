package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"portfoliometrics/internal/calculator"
	"portfoliometrics/internal/domain"
	"portfoliometrics/internal/logger"
	"portfoliometrics/internal/util"

	"github.com/shopspring/decimal"
)

// MetricsRequest describes one computation. A zero Date means today, and
// nil overrides fall back to the configured defaults
type MetricsRequest struct {
	Portfolio      domain.Portfolio
	Date           time.Time
	RiskFreeRate   *float64
	LookbackWindow *int
}

type SharpeRatioResult struct {
	Date         time.Time
	TotalValue   decimal.Decimal
	RiskFreeRate float64
	SharpeRatio  float64
	NumReturns   int
}

type RollingSharpeRatioResult struct {
	RiskFreeRate   float64
	LookbackWindow int
	Series         domain.RollingSeries
}

type MetricsService interface {
	Value(ctx context.Context, portfolio domain.Portfolio, date time.Time) (*domain.ValuationResult, error)
	SharpeRatio(ctx context.Context, req MetricsRequest) (*SharpeRatioResult, error)
	RollingSharpeRatio(ctx context.Context, req MetricsRequest) (*RollingSharpeRatioResult, error)
	Report(ctx context.Context, req MetricsRequest) (*domain.PortfolioReport, error)
}

type metricsServiceHandler struct {
	PriceService          PriceService
	RiskFreeRateService   RiskFreeRateService
	HistoryDays           int
	DefaultLookbackWindow int
	// BenchmarkSymbol is compared against in reports. Empty disables it
	BenchmarkSymbol string
	Today           func() time.Time
}

func NewMetricsService(
	priceService PriceService,
	riskFreeRateService RiskFreeRateService,
	historyDays int,
	defaultLookbackWindow int,
	benchmarkSymbol string,
) MetricsService {
	return &metricsServiceHandler{
		PriceService:          priceService,
		RiskFreeRateService:   riskFreeRateService,
		HistoryDays:           historyDays,
		DefaultLookbackWindow: defaultLookbackWindow,
		BenchmarkSymbol:       benchmarkSymbol,
		Today:                 util.Today,
	}
}

type resolvedRequest struct {
	portfolio      domain.Portfolio
	date           time.Time
	historyStart   time.Time
	lookbackWindow int
	riskFreeRate   *float64
}

func (h metricsServiceHandler) resolve(req MetricsRequest) (*resolvedRequest, error) {
	if err := domain.ValidatePortfolio(req.Portfolio); err != nil {
		return nil, err
	}

	date := req.Date
	if date.IsZero() {
		date = h.Today()
	}
	lookbackWindow := h.DefaultLookbackWindow
	if req.LookbackWindow != nil {
		lookbackWindow = *req.LookbackWindow
	}
	if lookbackWindow < 2 {
		return nil, fmt.Errorf("%w: lookback window must be at least 2, got %d", domain.ErrInvalidInput, lookbackWindow)
	}
	if req.RiskFreeRate != nil && (math.IsNaN(*req.RiskFreeRate) || math.IsInf(*req.RiskFreeRate, 0)) {
		return nil, fmt.Errorf("%w: risk free rate must be finite", domain.ErrInvalidInput)
	}

	return &resolvedRequest{
		portfolio:      req.Portfolio,
		date:           date,
		historyStart:   date.AddDate(0, 0, -h.HistoryDays),
		lookbackWindow: lookbackWindow,
		riskFreeRate:   req.RiskFreeRate,
	}, nil
}

// lookbackStart reaches far enough behind historyStart that the first
// day of history already has a full window of trading days. 365/252
// converts trading days to calendar days with holidays included, and
// two extra weeks cover holiday clusters at the edges
func lookbackStart(historyStart time.Time, lookbackWindow int) time.Time {
	calendarDays := lookbackWindow*365/calculator.TradingDaysPerYear + 14
	return historyStart.AddDate(0, 0, -calendarDays)
}

func (h metricsServiceHandler) riskFreeRate(ctx context.Context, req *resolvedRequest) (float64, error) {
	if req.riskFreeRate != nil {
		return *req.riskFreeRate, nil
	}
	rate, err := h.RiskFreeRateService.AnnualRate(ctx, req.date)
	if err != nil {
		return 0, fmt.Errorf("failed to get risk free rate: %w", err)
	}
	return rate, nil
}

func (h metricsServiceHandler) Value(ctx context.Context, portfolio domain.Portfolio, date time.Time) (*domain.ValuationResult, error) {
	log := logger.FromContext(ctx)

	req, err := h.resolve(MetricsRequest{Portfolio: portfolio, Date: date})
	if err != nil {
		return nil, err
	}

	prices, err := h.PriceService.LoadPriceTable(ctx, portfolio.Symbols(), req.historyStart, req.date)
	if err != nil {
		return nil, err
	}

	result, err := calculator.CalculateTotalValue(portfolio, prices, req.date)
	if err != nil {
		return nil, err
	}
	log.Infof("valued %d holdings at %s on %s", len(portfolio), result.Value.StringFixed(2), result.Date.Format(time.DateOnly))

	return result, nil
}

func (h metricsServiceHandler) sharpeRatio(portfolio domain.Portfolio, prices domain.PriceTable, date time.Time, riskFreeRate float64) (*SharpeRatioResult, error) {
	valuation, err := calculator.CalculateTotalValue(portfolio, prices, date)
	if err != nil {
		return nil, err
	}
	weightedReturns, err := calculator.CalculateWeightedReturns(portfolio, prices, valuation.Value.InexactFloat64())
	if err != nil {
		return nil, err
	}
	sharpeRatio, err := calculator.CalculateSharpeRatio(weightedReturns.Returns, riskFreeRate)
	if err != nil {
		return nil, err
	}

	return &SharpeRatioResult{
		Date:         valuation.Date,
		TotalValue:   valuation.Value,
		RiskFreeRate: riskFreeRate,
		SharpeRatio:  sharpeRatio,
		NumReturns:   weightedReturns.Len(),
	}, nil
}

// SharpeRatio values the portfolio on the requested date, weights each
// holding by that value and computes the daily sharpe ratio of the
// weighted returns over the history window
func (h metricsServiceHandler) SharpeRatio(ctx context.Context, in MetricsRequest) (*SharpeRatioResult, error) {
	log := logger.FromContext(ctx)

	req, err := h.resolve(in)
	if err != nil {
		return nil, err
	}
	riskFreeRate, err := h.riskFreeRate(ctx, req)
	if err != nil {
		return nil, err
	}

	prices, err := h.PriceService.LoadPriceTable(ctx, req.portfolio.Symbols(), req.historyStart, req.date)
	if err != nil {
		return nil, err
	}

	result, err := h.sharpeRatio(req.portfolio, prices, req.date, riskFreeRate)
	if err != nil {
		return nil, err
	}
	log.Infof("sharpe ratio %f over %d returns ending %s", result.SharpeRatio, result.NumReturns, result.Date.Format(time.DateOnly))

	return result, nil
}

func rollingSharpeRatio(portfolio domain.Portfolio, prices domain.PriceTable, historyStart time.Time, lookbackWindow int, riskFreeRate float64) (domain.RollingSeries, error) {
	values := calculator.CalculatePortfolioValueSeries(portfolio, prices)
	series, err := calculator.CalculateRollingSharpeRatio(values, lookbackWindow, riskFreeRate)
	if err != nil {
		return nil, err
	}

	out := domain.RollingSeries{}
	for _, p := range series {
		if !p.Date.Before(historyStart) {
			out = append(out, p)
		}
	}
	return out, nil
}

// RollingSharpeRatio returns one point per trading day of the history
// window. Prices are loaded from before the window so its first days
// already have a full lookback
func (h metricsServiceHandler) RollingSharpeRatio(ctx context.Context, in MetricsRequest) (*RollingSharpeRatioResult, error) {
	log := logger.FromContext(ctx)

	req, err := h.resolve(in)
	if err != nil {
		return nil, err
	}
	riskFreeRate, err := h.riskFreeRate(ctx, req)
	if err != nil {
		return nil, err
	}

	prices, err := h.PriceService.LoadPriceTable(
		ctx,
		req.portfolio.Symbols(),
		lookbackStart(req.historyStart, req.lookbackWindow),
		req.date,
	)
	if err != nil {
		return nil, err
	}

	series, err := rollingSharpeRatio(req.portfolio, prices, req.historyStart, req.lookbackWindow, riskFreeRate)
	if err != nil {
		return nil, err
	}
	log.Infof("rolling sharpe ratio has %d/%d defined points", len(series.Defined()), len(series))

	return &RollingSharpeRatioResult{
		RiskFreeRate:   riskFreeRate,
		LookbackWindow: req.lookbackWindow,
		Series:         series,
	}, nil
}

func withSpan(profile *domain.Profile, name string, fn func() error) error {
	_, endSpan := profile.StartNewSpan(name)
	defer endSpan()
	return fn()
}

// Report computes every metric from a single price load
func (h metricsServiceHandler) Report(ctx context.Context, in MetricsRequest) (*domain.PortfolioReport, error) {
	log := logger.FromContext(ctx)
	profile, endProfile := domain.GetProfile(ctx)
	defer endProfile()

	req, err := h.resolve(in)
	if err != nil {
		return nil, err
	}

	var riskFreeRate float64
	err = withSpan(profile, "risk free rate", func() (err error) {
		riskFreeRate, err = h.riskFreeRate(ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}

	var allPrices, prices domain.PriceTable
	err = withSpan(profile, "loading prices", func() (err error) {
		allPrices, err = h.PriceService.LoadPriceTable(
			ctx,
			req.portfolio.Symbols(),
			lookbackStart(req.historyStart, req.lookbackWindow),
			req.date,
		)
		prices = allPrices.Between(req.historyStart, req.date)
		return err
	})
	if err != nil {
		return nil, err
	}

	var sharpe *SharpeRatioResult
	var holdings []domain.HoldingWeight
	err = withSpan(profile, "sharpe ratio", func() (err error) {
		sharpe, err = h.sharpeRatio(req.portfolio, prices, req.date, riskFreeRate)
		if err != nil {
			return err
		}
		holdings, err = calculator.CalculateHoldingWeights(req.portfolio, prices, sharpe.TotalValue.InexactFloat64())
		return err
	})
	if err != nil {
		return nil, err
	}

	var values domain.ValueSeries
	var summary *domain.SummaryMetrics
	err = withSpan(profile, "summary metrics", func() (err error) {
		values = calculator.CalculatePortfolioValueSeries(req.portfolio, prices)
		summary, err = calculator.CalculateSummaryMetrics(values)
		return err
	})
	if err != nil {
		return nil, err
	}

	var rolling domain.RollingSeries
	err = withSpan(profile, "rolling sharpe ratio", func() (err error) {
		rolling, err = rollingSharpeRatio(req.portfolio, allPrices, req.historyStart, req.lookbackWindow, riskFreeRate)
		return err
	})
	if err != nil {
		return nil, err
	}

	var benchmark *domain.BenchmarkComparison
	if h.BenchmarkSymbol != "" {
		_ = withSpan(profile, "benchmark", func() error {
			benchmark = h.benchmark(ctx, values, req)
			return nil
		})
	}

	log.Infof("built report for %d holdings on %s", len(req.portfolio), sharpe.Date.Format(time.DateOnly))

	return &domain.PortfolioReport{
		RequestID: domain.RequestIDFromContext(ctx),
		Portfolio: req.portfolio,
		Valuation: domain.ValuationResult{
			Value: sharpe.TotalValue,
			Date:  sharpe.Date,
		},
		Holdings:           holdings,
		RiskFreeRate:       riskFreeRate,
		LookbackWindow:     req.lookbackWindow,
		SharpeRatio:        sharpe.SharpeRatio,
		Summary:            *summary,
		ValueSeries:        values,
		RollingSharpeRatio: rolling,
		Benchmark:          benchmark,
	}, nil
}

// benchmark is best effort. A report is still useful without it
func (h metricsServiceHandler) benchmark(ctx context.Context, values domain.ValueSeries, req *resolvedRequest) *domain.BenchmarkComparison {
	log := logger.FromContext(ctx)

	prices, err := h.PriceService.LoadPriceTable(ctx, []string{h.BenchmarkSymbol}, req.historyStart, req.date)
	if err != nil {
		log.Warnf("skipping benchmark %s: %s", h.BenchmarkSymbol, err.Error())
		return nil
	}
	series, ok := prices.Series(h.BenchmarkSymbol)
	if !ok || series.Len() == 0 {
		log.Warnf("skipping benchmark %s: no prices", h.BenchmarkSymbol)
		return nil
	}

	return calculator.CalculateBenchmarkComparison(h.BenchmarkSymbol, values, series, req.date)
}
