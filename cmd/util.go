package cmd

import (
	"fmt"

	"portfoliometrics/api"
	"portfoliometrics/internal/repository"
	"portfoliometrics/internal/service"
	"portfoliometrics/internal/util"
	interestrate "portfoliometrics/pkg/interest_rate"
)

type Dependencies struct {
	Config         *util.Config
	MetricsService service.MetricsService
	ApiHandler     *api.ApiHandler
}

func newPriceRepository(cfg *util.Config) (repository.PriceRepository, error) {
	var source repository.PriceRepository
	switch cfg.PriceProvider {
	case "yahoo":
		source = repository.NewYahooPriceRepository()
	case "alpaca":
		source = repository.NewAlpacaPriceRepository(cfg.Alpaca.ApiKey, cfg.Alpaca.ApiSecret, cfg.Alpaca.Endpoint)
	case "csv":
		source = repository.NewCsvPriceRepository(cfg.CsvPath)
	default:
		return nil, fmt.Errorf("unknown price provider %q", cfg.PriceProvider)
	}
	return repository.NewCachedPriceRepository(source, cfg.PriceCacheTtl), nil
}

func newRiskFreeRateService(cfg *util.Config) service.RiskFreeRateService {
	if cfg.RiskFreeRate.Source == "treasury" {
		return service.NewTreasuryRiskFreeRateService(interestrate.NewClient("", nil))
	}
	return service.NewFixedRiskFreeRateService(cfg.RiskFreeRate.Annual)
}

func InitializeDependencies(cfg *util.Config) (*Dependencies, error) {
	priceRepository, err := newPriceRepository(cfg)
	if err != nil {
		return nil, err
	}

	priceService := service.NewPriceService(priceRepository)
	metricsService := service.NewMetricsService(
		priceService,
		newRiskFreeRateService(cfg),
		cfg.HistoryDays,
		cfg.LookbackWindow,
		cfg.BenchmarkSymbol(),
	)

	return &Dependencies{
		Config:         cfg,
		MetricsService: metricsService,
		ApiHandler: &api.ApiHandler{
			MetricsService: metricsService,
		},
	}, nil
}
