package util

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultRiskFreeRate   = 0.03
	DefaultLookbackWindow = 252
)

type Config struct {
	Port          int    `yaml:"port"`
	PriceProvider string `yaml:"priceProvider"`
	Alpaca        struct {
		ApiKey    string `yaml:"apiKey"`
		ApiSecret string `yaml:"apiSecret"`
		Endpoint  string `yaml:"endpoint"`
	} `yaml:"alpaca"`
	CsvPath       string        `yaml:"csvPath"`
	HistoryDays   int           `yaml:"historyDays"`
	PriceCacheTtl time.Duration `yaml:"priceCacheTtl"`
	RiskFreeRate  struct {
		Annual float64 `yaml:"annual"`
		// fixed or treasury
		Source string `yaml:"source"`
	} `yaml:"riskFreeRate"`
	LookbackWindow int    `yaml:"lookbackWindow"`
	Schedule       string `yaml:"schedule"`
	// ticker reports are compared against, "none" turns it off
	Benchmark string `yaml:"benchmark"`
}

func (c Config) BenchmarkSymbol() string {
	if strings.EqualFold(c.Benchmark, "none") {
		return ""
	}
	return c.Benchmark
}

func configFile() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	switch strings.ToLower(os.Getenv("ALPHA_ENV")) {
	case "dev":
		return "config-dev.yaml"
	case "test":
		return "config-test.yaml"
	}
	return "config.yaml"
}

// LoadConfig reads the yaml file for the current ALPHA_ENV over the
// defaults, then applies environment overrides. A missing file is not an
// error; everything has a default
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	path := configFile()
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PRICE_PROVIDER"); v != "" {
		c.PriceProvider = v
	}
	if v := os.Getenv("ALPACA_API_KEY"); v != "" {
		c.Alpaca.ApiKey = v
	}
	if v := os.Getenv("ALPACA_API_SECRET"); v != "" {
		c.Alpaca.ApiSecret = v
	}
	if v := os.Getenv("ALPACA_ENDPOINT"); v != "" {
		c.Alpaca.Endpoint = v
	}
	if v := os.Getenv("PRICE_CSV_PATH"); v != "" {
		c.CsvPath = v
	}
	if v := os.Getenv("BENCHMARK"); v != "" {
		c.Benchmark = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Port = port
	}
	if v := os.Getenv("RISK_FREE_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid RISK_FREE_RATE %q: %w", v, err)
		}
		c.RiskFreeRate.Annual = rate
	}
	return nil
}

// DefaultConfig is the starting point files and env vars are layered
// on, so an explicit zero in either stays zero
func DefaultConfig() *Config {
	cfg := &Config{
		Port:           3009,
		PriceProvider:  "yahoo",
		HistoryDays:    365,
		PriceCacheTtl:  15 * time.Minute,
		LookbackWindow: DefaultLookbackWindow,
		Schedule:       "0 0 22 * * 1-5",
		Benchmark:      "SPY",
	}
	cfg.RiskFreeRate.Annual = DefaultRiskFreeRate
	cfg.RiskFreeRate.Source = "fixed"
	return cfg
}

func (c *Config) Validate() error {
	switch c.PriceProvider {
	case "yahoo":
	case "alpaca":
		if c.Alpaca.ApiKey == "" || c.Alpaca.ApiSecret == "" {
			return fmt.Errorf("alpaca.apiKey and alpaca.apiSecret are required for the alpaca provider")
		}
	case "csv":
		if c.CsvPath == "" {
			return fmt.Errorf("csvPath is required for the csv provider")
		}
	default:
		return fmt.Errorf("unknown price provider %q", c.PriceProvider)
	}
	switch c.RiskFreeRate.Source {
	case "fixed", "treasury":
	default:
		return fmt.Errorf("unknown risk free rate source %q", c.RiskFreeRate.Source)
	}
	if c.LookbackWindow < 2 {
		return fmt.Errorf("lookbackWindow must be at least 2, got %d", c.LookbackWindow)
	}
	if c.PriceCacheTtl < 0 {
		return fmt.Errorf("priceCacheTtl cannot be negative")
	}
	if c.HistoryDays <= 0 {
		return fmt.Errorf("historyDays must be positive")
	}
	return nil
}
