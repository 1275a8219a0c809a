package api

import (
	"fmt"
	"net/http"

	"portfoliometrics/internal/domain"
	"portfoliometrics/internal/renderer"
	"portfoliometrics/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type holdingResponse struct {
	Ticker      string  `json:"ticker"`
	Shares      float64 `json:"nShares"`
	LatestPrice float64 `json:"latestPrice"`
	LatestDate  string  `json:"latestDate"`
	Value       float64 `json:"value"`
	Weight      float64 `json:"weight"`
}

type valuePointResponse struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type changePointResponse struct {
	Date   string  `json:"date"`
	Change float64 `json:"change"`
}

type benchmarkResponse struct {
	Symbol          string                `json:"symbol"`
	PortfolioChange float64               `json:"portfolioChange"`
	BenchmarkChange float64               `json:"benchmarkChange"`
	Portfolio       []changePointResponse `json:"portfolio"`
	Benchmark       []changePointResponse `json:"benchmark"`
}

func changePointsResponse(points []domain.ChangePoint) []changePointResponse {
	out := make([]changePointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, changePointResponse{
			Date:   formatDate(p.Date),
			Change: p.Change,
		})
	}
	return out
}

type reportResponse struct {
	RequestID          string                 `json:"requestId"`
	Date               string                 `json:"date"`
	TotalValue         decimal.Decimal        `json:"totalValue"`
	Holdings           []holdingResponse      `json:"holdings"`
	RiskFreeRate       float64                `json:"riskFreeRate"`
	LookbackWindow     int                    `json:"lookbackWindow"`
	SharpeRatio        float64                `json:"sharpeRatio"`
	AnnualizedReturn   float64                `json:"annualizedReturn"`
	AnnualizedStdev    float64                `json:"annualizedStdev"`
	MaxDrawdown        float64                `json:"maxDrawdown"`
	ValueSeries        []valuePointResponse   `json:"valueSeries"`
	RollingSharpeRatio []rollingPointResponse `json:"rollingSharpeRatio"`
	Benchmark          *benchmarkResponse     `json:"benchmark"`
}

func reportResponseFromDomain(report *domain.PortfolioReport) reportResponse {
	holdings := []holdingResponse{}
	for _, h := range report.Holdings {
		holdings = append(holdings, holdingResponse{
			Ticker:      h.Ticker,
			Shares:      h.Shares,
			LatestPrice: h.LatestPrice,
			LatestDate:  formatDate(h.LatestDate),
			Value:       h.Value,
			Weight:      h.Weight,
		})
	}
	values := make([]valuePointResponse, 0, report.ValueSeries.Len())
	for i, d := range report.ValueSeries.Dates {
		values = append(values, valuePointResponse{
			Date:  formatDate(d),
			Value: report.ValueSeries.Values[i],
		})
	}

	var benchmark *benchmarkResponse
	if report.Benchmark != nil {
		benchmark = &benchmarkResponse{
			Symbol:          report.Benchmark.Symbol,
			PortfolioChange: report.Benchmark.PortfolioChange,
			BenchmarkChange: report.Benchmark.BenchmarkChange,
			Portfolio:       changePointsResponse(report.Benchmark.Portfolio),
			Benchmark:       changePointsResponse(report.Benchmark.Benchmark),
		}
	}

	return reportResponse{
		RequestID:          report.RequestID,
		Date:               formatDate(report.Valuation.Date),
		TotalValue:         report.Valuation.Value,
		Holdings:           holdings,
		RiskFreeRate:       report.RiskFreeRate,
		LookbackWindow:     report.LookbackWindow,
		SharpeRatio:        report.SharpeRatio,
		AnnualizedReturn:   report.Summary.AnnualizedReturn,
		AnnualizedStdev:    report.Summary.AnnualizedStdev,
		MaxDrawdown:        report.Summary.MaxDrawdown,
		ValueSeries:        values,
		RollingSharpeRatio: rollingPointsResponse(report.RollingSharpeRatio),
		Benchmark:          benchmark,
	}
}

// writeReport computes the report and writes it in the format named by
// the format query param: json (default), markdown or html
func (h ApiHandler) writeReport(c *gin.Context, req service.MetricsRequest) {
	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "markdown" && format != "html" {
		returnErrorJson(invalidInput(fmt.Errorf("unknown report format %q", format)), c)
		return
	}

	report, err := h.MetricsService.Report(c.Request.Context(), req)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	if format == "json" {
		c.JSON(http.StatusOK, reportResponseFromDomain(report))
		return
	}

	md, err := renderer.RenderMarkdown(report)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if format == "markdown" {
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(md))
		return
	}

	html, err := renderer.ToHTML(md)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h ApiHandler) report(c *gin.Context) {
	req, ok := bindMetricsRequest(c)
	if !ok {
		return
	}
	h.writeReport(c, req)
}
