package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"portfoliometrics/cmd"
	"portfoliometrics/internal/domain"
	"portfoliometrics/internal/logger"
	"portfoliometrics/internal/renderer"
	"portfoliometrics/internal/service"
	"portfoliometrics/internal/util"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

type cliFlags struct {
	portfolioPath  string
	date           string
	riskFreeRate   float64
	lookbackWindow int
}

func (f cliFlags) request(c *cobra.Command) (service.MetricsRequest, error) {
	file, err := os.Open(f.portfolioPath)
	if err != nil {
		return service.MetricsRequest{}, fmt.Errorf("failed to open portfolio: %w", err)
	}
	defer file.Close()

	portfolio, err := domain.LoadPortfolio(file)
	if err != nil {
		return service.MetricsRequest{}, err
	}
	date, err := util.ParseDate(f.date)
	if err != nil {
		return service.MetricsRequest{}, err
	}

	req := service.MetricsRequest{
		Portfolio: portfolio,
		Date:      date,
	}
	if c.Flags().Changed("risk-free-rate") {
		rate := f.riskFreeRate
		req.RiskFreeRate = &rate
	}
	if c.Flags().Changed("lookback") {
		lookback := f.lookbackWindow
		req.LookbackWindow = &lookback
	}
	return req, nil
}

func newContext() context.Context {
	requestID := uuid.NewString()
	ctx := domain.ContextWithRequestID(context.Background(), requestID)
	return logger.WithContext(ctx, logger.New().With("requestId", requestID))
}

func main() {
	var flags cliFlags
	var deps *cmd.Dependencies

	root := &cobra.Command{
		Use:           "portfoliometrics",
		Short:         "Value a portfolio and measure its risk adjusted returns",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			cfg, err := util.LoadConfig()
			if err != nil {
				return err
			}
			deps, err = cmd.InitializeDependencies(cfg)
			return err
		},
	}
	root.PersistentFlags().StringVarP(&flags.portfolioPath, "portfolio", "p", "portfolio.json", "portfolio document")
	root.PersistentFlags().StringVarP(&flags.date, "date", "d", "", "valuation date, YYYY-MM-DD (default today)")
	root.PersistentFlags().Float64Var(&flags.riskFreeRate, "risk-free-rate", 0, "annual risk free rate, e.g. 0.03")
	root.PersistentFlags().IntVar(&flags.lookbackWindow, "lookback", 0, "rolling window in trading days")

	root.AddCommand(&cobra.Command{
		Use:   "value",
		Short: "Total value of the portfolio",
		RunE: func(c *cobra.Command, args []string) error {
			req, err := flags.request(c)
			if err != nil {
				return err
			}
			result, err := deps.MetricsService.Value(newContext(), req.Portfolio, req.Date)
			if err != nil {
				return err
			}
			fmt.Printf("%s\t%s\n", result.Date.Format(time.DateOnly), result.Value.StringFixed(2))
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "sharpe",
		Short: "Daily sharpe ratio over the history window",
		RunE: func(c *cobra.Command, args []string) error {
			req, err := flags.request(c)
			if err != nil {
				return err
			}
			result, err := deps.MetricsService.SharpeRatio(newContext(), req)
			if err != nil {
				return err
			}
			fmt.Printf("%s\t%.6f\t(%d returns, rf %.4f)\n", result.Date.Format(time.DateOnly), result.SharpeRatio, result.NumReturns, result.RiskFreeRate)
			return nil
		},
	})

	var chartPath string
	rollingCmd := &cobra.Command{
		Use:   "rolling-sharpe",
		Short: "Rolling sharpe ratio for each trading day",
		RunE: func(c *cobra.Command, args []string) error {
			req, err := flags.request(c)
			if err != nil {
				return err
			}
			result, err := deps.MetricsService.RollingSharpeRatio(newContext(), req)
			if err != nil {
				return err
			}
			for _, p := range result.Series {
				value := "-"
				if p.Value != nil {
					value = fmt.Sprintf("%.6f", *p.Value)
				}
				fmt.Printf("%s\t%s\n", p.Date.Format(time.DateOnly), value)
			}
			if chartPath == "" {
				return nil
			}
			png, err := renderer.RollingSharpeChart(result.Series, fmt.Sprintf("Rolling Sharpe Ratio (%d days)", result.LookbackWindow))
			if err != nil {
				return err
			}
			return os.WriteFile(chartPath, png, 0644)
		},
	}
	rollingCmd.Flags().StringVar(&chartPath, "chart", "", "also write a png chart to this path")
	root.AddCommand(rollingCmd)

	var format, style, csvPath string
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Full report: value, holdings, sharpe ratio and summary metrics",
		RunE: func(c *cobra.Command, args []string) error {
			req, err := flags.request(c)
			if err != nil {
				return err
			}
			report, err := deps.MetricsService.Report(newContext(), req)
			if err != nil {
				return err
			}
			if csvPath != "" {
				if err := writeCsv(csvPath, report); err != nil {
					return err
				}
			}
			out, err := renderReport(report, format, style)
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
	reportCmd.Flags().StringVar(&format, "format", "terminal", "terminal, markdown or html")
	reportCmd.Flags().StringVar(&style, "style", "", "glamour style for terminal output")
	reportCmd.Flags().StringVar(&csvPath, "csv", "", "also export the daily series as csv")
	root.AddCommand(reportCmd)

	var outDir string
	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "Write a markdown report on the configured cron schedule",
		RunE: func(c *cobra.Command, args []string) error {
			if err := os.MkdirAll(outDir, 0755); err != nil {
				return err
			}
			run := func() {
				// re-read the portfolio each run so edits are picked up
				req, err := flags.request(c)
				if err != nil {
					logger.Error(err)
					return
				}
				if err := scheduledReport(deps.MetricsService, req, outDir); err != nil {
					logger.Error(err)
				}
			}

			scheduler := cron.New(cron.WithSeconds())
			if _, err := scheduler.AddFunc(deps.Config.Schedule, run); err != nil {
				return fmt.Errorf("invalid schedule %q: %w", deps.Config.Schedule, err)
			}
			scheduler.Start()
			logger.Info("scheduled reports on %q, writing to %s", deps.Config.Schedule, outDir)

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
			<-stop
			<-scheduler.Stop().Done()
			return nil
		},
	}
	scheduleCmd.Flags().StringVar(&outDir, "out", "reports", "directory for generated reports")
	root.AddCommand(scheduleCmd)

	if err := root.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func renderReport(report *domain.PortfolioReport, format string, style string) (string, error) {
	md, err := renderer.RenderMarkdown(report)
	if err != nil {
		return "", err
	}
	switch format {
	case "markdown":
		return md, nil
	case "html":
		return renderer.ToHTML(md)
	case "terminal":
		return renderer.ToTerminal(md, style)
	}
	return "", fmt.Errorf("unknown format %q", format)
}

func writeCsv(path string, report *domain.PortfolioReport) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return renderer.WriteSeriesCsv(f, report)
}

func scheduledReport(metricsService service.MetricsService, req service.MetricsRequest, outDir string) error {
	profile, endProfile := domain.NewProfile()
	ctx := domain.ContextWithProfile(newContext(), profile)

	report, err := metricsService.Report(ctx, req)
	endProfile()
	if err != nil {
		return fmt.Errorf("scheduled report failed: %w", err)
	}

	md, err := renderer.RenderMarkdown(report)
	if err != nil {
		return err
	}
	name := fmt.Sprintf("report-%s.md", report.Valuation.Date.Format(time.DateOnly))
	if err := os.WriteFile(filepath.Join(outDir, name), []byte(md), 0644); err != nil {
		return err
	}

	logger.FromContext(ctx).Infow(
		"wrote scheduled report",
		"file", name,
		"value", report.Valuation.Value.StringFixed(2),
		"sharpeRatio", report.SharpeRatio,
		"durationMs", profile.ElapsedMs(),
	)
	return nil
}
