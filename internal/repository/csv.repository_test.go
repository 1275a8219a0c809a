package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"portfoliometrics/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func writePriceFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prices.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestCsvPriceRepository_List(t *testing.T) {
	path := writePriceFile(t, `date,symbol,price
2023-01-04,AAPL,126.36
2023-01-03,AAPL,125.07
2023-01-03,MSFT,239.58
2023-01-05,AAPL,125.02
`)
	repo := NewCsvPriceRepository(path)
	ctx := context.Background()

	t.Run("filters by symbol and range", func(t *testing.T) {
		prices, err := repo.List(
			ctx,
			"AAPL",
			time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC),
			time.Date(2023, 1, 4, 0, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		require.Equal(
			t,
			"",
			cmp.Diff(
				[]domain.AssetPrice{
					{Symbol: "AAPL", Price: decimal.RequireFromString("125.07"), Date: time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC)},
					{Symbol: "AAPL", Price: decimal.RequireFromString("126.36"), Date: time.Date(2023, 1, 4, 0, 0, 0, 0, time.UTC)},
				},
				prices,
				cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
			),
		)
	})

	t.Run("unknown symbol is empty", func(t *testing.T) {
		prices, err := repo.List(ctx, "GOOGL", time.Time{}, time.Now())
		require.NoError(t, err)
		require.Empty(t, prices)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewCsvPriceRepository(filepath.Join(t.TempDir(), "nope.csv")).List(ctx, "AAPL", time.Time{}, time.Now())
		require.Error(t, err)
	})

	t.Run("bad date", func(t *testing.T) {
		bad := writePriceFile(t, "date,symbol,price\n01/03/2023,AAPL,1\n")
		_, err := NewCsvPriceRepository(bad).List(ctx, "AAPL", time.Time{}, time.Now())
		require.ErrorContains(t, err, "row 1")
	})
}
