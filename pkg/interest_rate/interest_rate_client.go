package interestrate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"portfoliometrics/internal/domain"
)

const DefaultBaseUrl = "https://www.ustreasuryyieldcurve.com"

var yieldKeys = []string{
	"yield_1m",
	"yield_2m",
	"yield_3m",
	"yield_4m",
	"yield_6m",
	"yield_1y",
	"yield_2y",
	"yield_3y",
	"yield_5y",
	"yield_7y",
	"yield_10y",
	"yield_20y",
	"yield_30y",
}

func interestRateMonthsFromApi(in string) (int, error) {
	cleanedStr := strings.Replace(in, "yield_", "", 1)
	if len(cleanedStr) < 2 {
		return 0, fmt.Errorf("invalid yield key %q", in)
	}
	unit := string(cleanedStr[len(cleanedStr)-1])
	cleanedStr = cleanedStr[:len(cleanedStr)-1]
	months, err := strconv.Atoi(cleanedStr)
	if err != nil {
		return 0, err
	}

	if unit == "y" {
		months *= 12
	}

	return months, nil
}

// Client reads treasury yield curve snapshots. Responses are kept in
// memory by date for the life of the client
type Client struct {
	BaseUrl    string
	HttpClient *http.Client

	mu    sync.Mutex
	cache map[string]domain.InterestRateMap
}

func NewClient(baseUrl string, httpClient *http.Client) *Client {
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
		HttpClient: httpClient,
		cache:      map[string]domain.InterestRateMap{},
	}
}

func (c *Client) getBytes(ctx context.Context, date time.Time) ([]byte, error) {
	url := fmt.Sprintf("%s/api/v1/yield_curve_snapshot?date=%s&offset=0", c.BaseUrl, date.Format(time.DateOnly))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	return responseBytes, nil
}

// GetYieldCurve returns annual rates by maturity in months on the given
// date. Maturities the api reports as null are left off the curve
func (c *Client) GetYieldCurve(ctx context.Context, date time.Time) (domain.InterestRateMap, error) {
	tStr := date.Format(time.DateOnly)
	c.mu.Lock()
	cached, ok := c.cache[tStr]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	responseBytes, err := c.getBytes(ctx, date)
	if err != nil {
		return domain.InterestRateMap{}, fmt.Errorf("failed to get yield curve on %s: %w", tStr, err)
	}

	responseBody := []map[string]interface{}{}
	if err := json.Unmarshal(responseBytes, &responseBody); err != nil {
		return domain.InterestRateMap{}, fmt.Errorf("failed to parse yield curve response: %w", err)
	}

	out := map[int]float64{}
	for _, snapshot := range responseBody {
		for _, field := range yieldKeys {
			v, ok := snapshot[field]
			if !ok || v == nil {
				continue
			}
			rate, ok := v.(float64)
			if !ok {
				return domain.InterestRateMap{}, fmt.Errorf("unexpected %s value %v", field, v)
			}
			months, err := interestRateMonthsFromApi(field)
			if err != nil {
				return domain.InterestRateMap{}, err
			}
			out[months] = rate / 100
		}
	}
	if len(out) == 0 {
		return domain.InterestRateMap{}, fmt.Errorf("no yields reported on %s", tStr)
	}

	curve := domain.InterestRateMap{
		Date:  date,
		Rates: out,
	}
	c.mu.Lock()
	c.cache[tStr] = curve
	c.mu.Unlock()

	return curve, nil
}
