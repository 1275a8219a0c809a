package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateLte(t *testing.T) {
	t.Run("same day different hour", func(t *testing.T) {
		t1 := time.Date(2020, 1, 1, 15, 0, 0, 0, time.UTC)
		require.True(t, DateLte(t1, NewDate(2020, 1, 1)))
	})
	t.Run("after", func(t *testing.T) {
		require.False(t, DateLte(NewDate(2020, 1, 2), NewDate(2020, 1, 1)))
	})
}

func TestParseDate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		d, err := ParseDate("2024-11-04")
		require.NoError(t, err)
		require.Equal(t, NewDate(2024, 11, 4), d)
	})
	t.Run("empty is today", func(t *testing.T) {
		d, err := ParseDate("")
		require.NoError(t, err)
		require.Equal(t, Today(), d)
	})
	t.Run("invalid", func(t *testing.T) {
		_, err := ParseDate("11/04/2024")
		require.Error(t, err)
	})
}
