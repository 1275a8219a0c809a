package renderer

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"portfoliometrics/internal/domain"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/glamour"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const reportTemplate = `# Portfolio report
{{- if .RequestID }}

Request ` + "`{{ .RequestID }}`" + `
{{- end }}

| | |
|---|---|
| Value | {{ usd .Valuation.Value }} |
| Priced on | {{ date .Valuation.Date }} |
| Sharpe ratio (daily) | {{ ratio .SharpeRatio }} |
| Risk free rate | {{ pct .RiskFreeRate }} |
| Annualized return | {{ pct .Summary.AnnualizedReturn }} |
| Annualized stdev | {{ pct .Summary.AnnualizedStdev }} |
| Max drawdown | {{ pct .Summary.MaxDrawdown }} |

## Holdings

| Ticker | Shares | Last close | Value | Weight |
|---|---:|---:|---:|---:|
{{- range .Holdings }}
| {{ .Ticker }} | {{ shares .Shares }} | {{ usdFloat .LatestPrice }} ({{ date .LatestDate }}) | {{ usdFloat .Value }} | {{ pct .Weight }} |
{{- end }}

## Rolling sharpe ratio ({{ .LookbackWindow }} day window)

{{ with defined .RollingSharpeRatio -}}
| | Date | Value |
|---|---|---:|
| First | {{ date (index . 0).Date }} | {{ ratio (deref (index . 0).Value) }} |
| Last | {{ date (last .).Date }} | {{ ratio (deref (last .).Value) }} |
{{- else -}}
Not enough history for a full window.
{{- end }}
{{- with .Benchmark }}

## Benchmark

| | Change over the window |
|---|---:|
| Portfolio | {{ points .PortfolioChange }} |
| {{ .Symbol }} | {{ points .BenchmarkChange }} |
{{- end }}
`

var reportFuncs = template.FuncMap{
	"usd": func(d decimal.Decimal) string {
		return formatUsd(d)
	},
	"usdFloat": func(f float64) string {
		return formatUsd(decimal.NewFromFloat(f))
	},
	"pct": func(f float64) string {
		return fmt.Sprintf("%.2f%%", f*100)
	},
	// already in percent
	"points": func(f float64) string {
		return fmt.Sprintf("%+.2f%%", f)
	},
	"ratio": func(f float64) string {
		return fmt.Sprintf("%.4f", f)
	},
	"shares": func(f float64) string {
		return decimal.NewFromFloat(f).String()
	},
	"date": func(t time.Time) string {
		return t.Format(time.DateOnly)
	},
	"defined": func(r domain.RollingSeries) domain.RollingSeries {
		return r.Defined()
	},
	"last": func(r domain.RollingSeries) domain.RollingPoint {
		return r[len(r)-1]
	},
	"deref": func(f *float64) float64 {
		if f == nil {
			return 0
		}
		return *f
	},
}

var parsedReportTemplate = template.Must(template.New("report").Funcs(reportFuncs).Parse(reportTemplate))

// formatUsd rounds to cents and formats with go-money, e.g. $1,234.50
func formatUsd(d decimal.Decimal) string {
	cents := d.Shift(2).Round(0).IntPart()
	return money.New(cents, money.USD).Display()
}

// RenderMarkdown writes the report as a markdown document
func RenderMarkdown(report *domain.PortfolioReport) (string, error) {
	if report == nil {
		return "", fmt.Errorf("no report to render")
	}
	var buf bytes.Buffer
	if err := parsedReportTemplate.Execute(&buf, report); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return buf.String(), nil
}

// ToTerminal styles markdown for a terminal. style is a glamour style
// name such as dark, light or notty
func ToTerminal(markdown string, style string) (string, error) {
	if style == "" {
		style = "notty"
	}
	out, err := glamour.Render(markdown, style)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown for terminal: %w", err)
	}
	return out, nil
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

func ToHTML(source string) (string, error) {
	var buf strings.Builder
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to html: %w", err)
	}
	return buf.String(), nil
}
