package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	for _, key := range []string{"ALPHA_ENV", "PRICE_PROVIDER", "ALPACA_API_KEY", "ALPACA_API_SECRET", "ALPACA_ENDPOINT", "PRICE_CSV_PATH", "PORT", "RISK_FREE_RATE", "BENCHMARK"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, 3009, cfg.Port)
		require.Equal(t, "yahoo", cfg.PriceProvider)
		require.Equal(t, DefaultRiskFreeRate, cfg.RiskFreeRate.Annual)
		require.Equal(t, "fixed", cfg.RiskFreeRate.Source)
		require.Equal(t, DefaultLookbackWindow, cfg.LookbackWindow)
		require.Equal(t, 15*time.Minute, cfg.PriceCacheTtl)
		require.Equal(t, "SPY", cfg.BenchmarkSymbol())
	})

	t.Run("benchmark can be turned off", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
		t.Setenv("BENCHMARK", "none")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, "", cfg.BenchmarkSymbol())
	})

	t.Run("file and env overrides", func(t *testing.T) {
		clearConfigEnv(t)
		path := filepath.Join(t.TempDir(), "config.yaml")
		err := os.WriteFile(path, []byte(`
port: 8080
priceProvider: csv
csvPath: prices.csv
lookbackWindow: 21
priceCacheTtl: 1m
riskFreeRate:
  annual: 0.05
  source: treasury
`), 0o644)
		require.NoError(t, err)
		t.Setenv("CONFIG_PATH", path)
		t.Setenv("RISK_FREE_RATE", "0.04")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, 8080, cfg.Port)
		require.Equal(t, "csv", cfg.PriceProvider)
		require.Equal(t, "prices.csv", cfg.CsvPath)
		require.Equal(t, 21, cfg.LookbackWindow)
		require.Equal(t, time.Minute, cfg.PriceCacheTtl)
		require.Equal(t, 0.04, cfg.RiskFreeRate.Annual)
		require.Equal(t, "treasury", cfg.RiskFreeRate.Source)
	})

	t.Run("explicit zeros are kept", func(t *testing.T) {
		clearConfigEnv(t)
		path := filepath.Join(t.TempDir(), "config.yaml")
		err := os.WriteFile(path, []byte(`
priceCacheTtl: 0s
riskFreeRate:
  annual: 0
`), 0o644)
		require.NoError(t, err)
		t.Setenv("CONFIG_PATH", path)

		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, 0.0, cfg.RiskFreeRate.Annual)
		require.Equal(t, time.Duration(0), cfg.PriceCacheTtl)
		require.Equal(t, "fixed", cfg.RiskFreeRate.Source)
		require.Equal(t, DefaultLookbackWindow, cfg.LookbackWindow)
	})

	t.Run("zero rate from env", func(t *testing.T) {
		clearConfigEnv(t)
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("riskFreeRate:\n  annual: 0.05\n"), 0o644))
		t.Setenv("CONFIG_PATH", path)
		t.Setenv("RISK_FREE_RATE", "0")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, 0.0, cfg.RiskFreeRate.Annual)
	})

	t.Run("alpaca requires keys", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
		t.Setenv("PRICE_PROVIDER", "alpaca")

		_, err := LoadConfig()
		require.ErrorContains(t, err, "alpaca.apiKey")
	})
}
