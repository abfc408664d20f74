package caorate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func period(from, to time.Time, standard string) RatePeriod {
	return RatePeriod{
		StartDate:    from,
		EndDate:      to,
		StandardRate: decimal.RequireFromString(standard),
	}
}

func TestRatePeriodCovers(t *testing.T) {
	p := period(day(2025, 1, 1), day(2025, 7, 1), "0.70")

	assert.True(t, p.Covers(day(2025, 1, 1)), "start date is inclusive")
	assert.True(t, p.Covers(day(2025, 6, 30)))
	assert.False(t, p.Covers(day(2025, 7, 1)), "end date is exclusive")
	assert.False(t, p.Covers(day(2024, 12, 31)))
}

func TestProviderRateFor(t *testing.T) {
	// Deliberately unsorted; the provider orders by start date.
	provider := NewProvider([]RatePeriod{
		period(day(2025, 7, 1), day(2026, 1, 1), "0.77"),
		period(day(2025, 1, 1), day(2025, 7, 1), "0.70"),
	})

	t.Run("picks the covering period", func(t *testing.T) {
		got, err := provider.RateFor(day(2025, 3, 3))
		require.NoError(t, err)
		assert.Equal(t, "0.70", got.StandardRate.String())

		got, err = provider.RateFor(day(2025, 7, 1))
		require.NoError(t, err)
		assert.Equal(t, "0.77", got.StandardRate.String())
	})

	t.Run("a gap in the table is an error", func(t *testing.T) {
		_, err := provider.RateFor(day(2026, 2, 1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no CAO period covers 2026-02-01")
	})
}
