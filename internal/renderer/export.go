package renderer

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"portfoliometrics/internal/domain"

	"github.com/gocarina/gocsv"
)

// SeriesRow is one line of the csv export. RollingSharpe is blank on
// days without a full window
type SeriesRow struct {
	Date          string `csv:"date"`
	Value         string `csv:"value"`
	RollingSharpe string `csv:"rollingSharpe"`
}

func seriesRows(report *domain.PortfolioReport) []SeriesRow {
	rolling := map[time.Time]*float64{}
	for _, p := range report.RollingSharpeRatio {
		rolling[p.Date] = p.Value
	}

	rows := make([]SeriesRow, 0, report.ValueSeries.Len())
	for i, d := range report.ValueSeries.Dates {
		row := SeriesRow{
			Date:  d.Format(time.DateOnly),
			Value: strconv.FormatFloat(report.ValueSeries.Values[i], 'f', 2, 64),
		}
		if v := rolling[d]; v != nil {
			row.RollingSharpe = strconv.FormatFloat(*v, 'f', 6, 64)
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteSeriesCsv exports the daily portfolio value next to the rolling
// sharpe ratio
func WriteSeriesCsv(w io.Writer, report *domain.PortfolioReport) error {
	if report == nil {
		return fmt.Errorf("no report to export")
	}
	rows := seriesRows(report)
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}
