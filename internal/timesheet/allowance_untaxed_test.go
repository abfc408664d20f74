package timesheet

import (
	"testing"
	"time"

	"go-urenstaat/internal/caorate"
	"go-urenstaat/internal/shift"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testRate() caorate.RatePeriod {
	return caorate.RatePeriod{
		StartDate:              time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:                time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		StandardRate:           decimal.RequireFromString("0.70"),
		After17Rate:            decimal.RequireFromString("2.73"),
		Before17Rate:           decimal.RequireFromString("0.61"),
		MultiDayUntaxedRate:    decimal.RequireFromString("48.65"),
		MultiDayTaxedRate:      decimal.RequireFromString("12.00"),
		StandOverRate:          decimal.RequireFromString("30.00"),
		Over12hLumpSum:         decimal.RequireFromString("2.50"),
		ConsignmentUntaxedRate: decimal.RequireFromString("2.00"),
		ConsignmentTaxedRate:   decimal.RequireFromString("1.00"),
		CommuteMinKm:           10,
		CommuteMaxKm:           35,
		KilometerRate:          decimal.RequireFromString("0.23"),
		NightStart:             21,
		NightEnd:               5,
		NightSurchargeRate:     decimal.RequireFromString("0.19"),
	}
}

func workedShift(code shift.Code, start, end float64) shift.Shift {
	return shift.Shift{Code: code, StartHour: &start, EndHour: &end}
}

func TestUntaxedAllowance_OrdinaryDay(t *testing.T) {
	rate := testRate()

	t.Run("day shift bills the standard rate", func(t *testing.T) {
		got := UntaxedAllowance(workedShift(shift.CodeOrdinary, 8, 16.5), rate, false)
		assert.Equal(t, "5.95", got.StringFixed(2))
	})

	t.Run("shift past 18:00 splits at 18:00", func(t *testing.T) {
		got := UntaxedAllowance(workedShift(shift.CodeOrdinary, 10, 20), rate, false)
		assert.Equal(t, "11.06", got.StringFixed(2))
	})

	t.Run("afternoon start bills the whole span at standard", func(t *testing.T) {
		got := UntaxedAllowance(workedShift(shift.CodeOrdinary, 14, 22), rate, false)
		assert.Equal(t, "5.60", got.StringFixed(2))
	})

	t.Run("holiday yields zero", func(t *testing.T) {
		got := UntaxedAllowance(workedShift(shift.CodeOrdinary, 8, 16.5), rate, true)
		assert.True(t, got.IsZero())
	})
}

func TestUntaxedAllowance_SingleDayTrip(t *testing.T) {
	rate := testRate()

	t.Run("no clock times yields zero", func(t *testing.T) {
		got := UntaxedAllowance(shift.Shift{Code: shift.CodeSingleDay}, rate, false)
		assert.True(t, got.IsZero())
	})

	t.Run("short same-day trip yields zero", func(t *testing.T) {
		got := UntaxedAllowance(workedShift(shift.CodeSingleDay, 9, 12), rate, false)
		assert.True(t, got.IsZero())
	})

	t.Run("long same-day trip bills like an ordinary day", func(t *testing.T) {
		got := UntaxedAllowance(workedShift(shift.CodeSingleDay, 8, 16.5), rate, false)
		assert.Equal(t, "5.95", got.StringFixed(2))
	})

	t.Run("early start crossing midnight", func(t *testing.T) {
		got := UntaxedAllowance(workedShift(shift.CodeSingleDay, 10, 2), rate, false)
		// (18-10+2) x 0.70 + 6 x 2.73
		assert.Equal(t, "23.38", got.StringFixed(2))
	})

	t.Run("late start crossing midnight, short span", func(t *testing.T) {
		got := UntaxedAllowance(workedShift(shift.CodeSingleDay, 22, 1), rate, false)
		assert.True(t, got.IsZero())
	})

	t.Run("late start crossing midnight, medium span", func(t *testing.T) {
		got := UntaxedAllowance(workedShift(shift.CodeSingleDay, 20, 2), rate, false)
		assert.Equal(t, "4.20", got.StringFixed(2))
	})

	t.Run("span of 12 or more adds the lump sum", func(t *testing.T) {
		got := UntaxedAllowance(workedShift(shift.CodeSingleDay, 18, 7), rate, false)
		// 13 x 0.70 + 2.50
		assert.Equal(t, "11.60", got.StringFixed(2))
	})
}

func TestUntaxedAllowance_MultiDay(t *testing.T) {
	rate := testRate()

	t.Run("departure before 17:00", func(t *testing.T) {
		got := UntaxedAllowance(workedShift(shift.CodeMultiDayStart, 8, 0), rate, false)
		// (17-8) x 0.61 + 7 x 2.73
		assert.Equal(t, "24.60", got.StringFixed(2))
	})

	t.Run("departure after 17:00", func(t *testing.T) {
		got := UntaxedAllowance(workedShift(shift.CodeMultiDayStart, 18, 0), rate, false)
		assert.Equal(t, "3.66", got.StringFixed(2))
	})

	t.Run("departure without start time yields zero", func(t *testing.T) {
		got := UntaxedAllowance(shift.Shift{Code: shift.CodeMultiDayStart}, rate, false)
		assert.True(t, got.IsZero())
	})

	t.Run("intermediate day flat rate", func(t *testing.T) {
		got := UntaxedAllowance(shift.Shift{Code: shift.CodeMultiDayMid}, rate, false)
		assert.Equal(t, "48.65", got.StringFixed(2))
	})

	t.Run("stand-over without clock times uses the stand-over rate", func(t *testing.T) {
		got := UntaxedAllowance(shift.Shift{Code: shift.CodeMultiDayMid, Option: shift.OptionStandOver}, rate, false)
		assert.Equal(t, "30.00", got.StringFixed(2))
	})

	t.Run("arrival before noon", func(t *testing.T) {
		got := UntaxedAllowance(workedShift(shift.CodeMultiDayEnd, 0, 10), rate, false)
		assert.Equal(t, "6.10", got.StringFixed(2))
	})

	t.Run("arrival in the afternoon", func(t *testing.T) {
		got := UntaxedAllowance(workedShift(shift.CodeMultiDayEnd, 0, 15), rate, false)
		// 6 x 2.73 + 9 x 0.61
		assert.Equal(t, "21.87", got.StringFixed(2))
	})

	t.Run("arrival in the evening", func(t *testing.T) {
		got := UntaxedAllowance(workedShift(shift.CodeMultiDayEnd, 0, 20), rate, false)
		// 2 x 2.73 + 12 x 0.61 + 6 x 2.73
		assert.Equal(t, "29.16", got.StringFixed(2))
	})
}

func TestUntaxedAllowance_Consignment(t *testing.T) {
	rate := testRate()

	t.Run("span capped at eight hours", func(t *testing.T) {
		got := UntaxedAllowance(workedShift(shift.CodeConsignment, 8, 20), rate, false)
		assert.Equal(t, "16.00", got.StringFixed(2))
	})

	t.Run("midnight-aware span", func(t *testing.T) {
		got := UntaxedAllowance(workedShift(shift.CodeConsignment, 22, 2), rate, false)
		assert.Equal(t, "8.00", got.StringFixed(2))
	})
}

func TestUntaxedAllowance_OtherCodes(t *testing.T) {
	rate := testRate()
	for _, code := range []shift.Code{shift.CodeVacation, shift.CodeSick, shift.CodeTimeForTime, shift.CodeCourse, shift.CodeZero, shift.CodeUnknown} {
		got := UntaxedAllowance(shift.Shift{Code: code}, rate, false)
		assert.True(t, got.IsZero(), "code %s", code)
	}
}

func TestTaxedAllowance(t *testing.T) {
	rate := testRate()

	for _, code := range []shift.Code{shift.CodeMultiDayStart, shift.CodeMultiDayMid, shift.CodeMultiDayEnd} {
		got := TaxedAllowance(shift.Shift{Code: code}, rate)
		assert.Equal(t, "12.00", got.StringFixed(2), "code %s", code)
	}

	got := TaxedAllowance(workedShift(shift.CodeConsignment, 8, 20), rate)
	assert.Equal(t, "8.00", got.StringFixed(2))

	assert.True(t, TaxedAllowance(workedShift(shift.CodeOrdinary, 8, 16), rate).IsZero())
}
