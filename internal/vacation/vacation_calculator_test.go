package vacation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testBands() []EntitlementBand {
	return []EntitlementBand{
		{
			AgeMin: 0, AgeMax: 44, Days: 25,
			StartDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			AgeMin: 45, AgeMax: 54, Days: 26,
			StartDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			AgeMin: 55, AgeMax: 120, Days: 27,
			StartDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestEntitlementDaysFor(t *testing.T) {
	bands := testBands()

	assert.Equal(t, 25, EntitlementDaysFor(bands, 30, 2025, true))
	assert.Equal(t, 26, EntitlementDaysFor(bands, 45, 2025, true))
	assert.Equal(t, 27, EntitlementDaysFor(bands, 60, 2025, true))

	// No contract falls back to the default regardless of bands.
	assert.Equal(t, DefaultEntitlementDays, EntitlementDaysFor(bands, 60, 2025, false))

	// Band validity does not cover the year.
	assert.Equal(t, DefaultEntitlementDays, EntitlementDaysFor(bands, 60, 2035, true))

	assert.Equal(t, DefaultEntitlementDays, EntitlementDaysFor(nil, 30, 2025, true))
}

func TestCalculateBalance(t *testing.T) {
	bands := testBands()

	t.Run("positive net is earned time", func(t *testing.T) {
		mutations := []Mutation{
			{Hours: 16},
			{Hours: -8},
			{LegacyHours: 12},
		}
		b := CalculateBalance(bands, mutations, 50, 2025, true)
		assert.Equal(t, 26, b.EntitlementDays)
		assert.Equal(t, 208.0, b.EntitlementHours)
		assert.Equal(t, 20.0, b.HoursEarned)
		assert.Equal(t, 0.0, b.HoursUsed)
		assert.Equal(t, 20.0, b.HoursRemaining)
		assert.Equal(t, 2.5, b.TotalVacationDays)
	})

	t.Run("negative net is used time", func(t *testing.T) {
		mutations := []Mutation{
			{Hours: 8},
			{Hours: -24},
		}
		b := CalculateBalance(bands, mutations, 30, 2025, true)
		assert.Equal(t, 0.0, b.HoursEarned)
		assert.Equal(t, 16.0, b.HoursUsed)
		assert.Equal(t, -16.0, b.HoursRemaining)
		assert.Equal(t, -2.0, b.TotalVacationDays)
	})

	t.Run("remaining equals earned minus used", func(t *testing.T) {
		mutations := []Mutation{
			{Hours: 40, LegacyHours: 3.5},
			{Hours: -12.25},
			{Hours: -7.75},
		}
		b := CalculateBalance(bands, mutations, 30, 2025, true)
		assert.InDelta(t, b.HoursEarned-b.HoursUsed, b.HoursRemaining, 1e-9)
		assert.InDelta(t, b.HoursRemaining/8, b.TotalVacationDays, 1e-9)
	})

	t.Run("no mutations", func(t *testing.T) {
		b := CalculateBalance(bands, nil, 30, 2025, true)
		assert.Equal(t, 0.0, b.HoursRemaining)
		assert.Equal(t, 200.0, b.EntitlementHours)
	})
}
