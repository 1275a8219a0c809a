package renderer

import (
	"fmt"
	"time"

	"portfoliometrics/internal/domain"

	"github.com/vicanso/go-charts/v2"
)

// RollingSharpeChart draws the defined points of the series as a PNG
// line chart. Undefined points are skipped rather than drawn as zero
func RollingSharpeChart(series domain.RollingSeries, title string) ([]byte, error) {
	defined := series.Defined()
	if len(defined) < 2 {
		return nil, fmt.Errorf("need at least 2 defined points to chart, got %d", len(defined))
	}

	xLabels := make([]string, len(defined))
	values := make([]float64, len(defined))
	for i, p := range defined {
		xLabels[i] = p.Date.Format(time.DateOnly)
		values[i] = *p.Value
	}

	splitNum := 6
	if len(xLabels) <= 30 {
		splitNum = len(xLabels) / 3
		if splitNum < 3 {
			splitNum = 3
		}
	}

	p, err := charts.LineRender(
		[][]float64{values},
		charts.PNGTypeOption(),
		charts.TitleTextOptionFunc(title),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        xLabels,
			SplitNumber: splitNum,
			BoundaryGap: charts.FalseFlag(),
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to generate chart bytes: %w", err)
	}
	return buf, nil
}
