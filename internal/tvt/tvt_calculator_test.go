package tvt

import (
	"testing"
	"time"

	"go-urenstaat/internal/shift"

	"github.com/stretchr/testify/assert"
)

func tvtShift(month int, hours float64) shift.Shift {
	return shift.Shift{
		Code:            shift.CodeTimeForTime,
		ShiftDate:       time.Date(2025, time.Month(month), 10, 0, 0, 0, 0, time.UTC),
		CorrectionHours: hours,
	}
}

func TestCalculateBalance(t *testing.T) {
	shifts := []shift.Shift{
		tvtShift(1, 4),
		tvtShift(2, -2),
		tvtShift(3, 3.5),
		tvtShift(5, -1.5),
	}

	t.Run("whole year without cutoff", func(t *testing.T) {
		b := CalculateBalance(shifts, 0)
		assert.Equal(t, 7.5, b.HoursSaved)
		assert.Equal(t, 3.5, b.HoursUsed)
		assert.Equal(t, 0.0, b.HoursConverted)
		assert.Equal(t, 0.0, b.MonthEndBalance)
	})

	t.Run("cutoff month includes only earlier shifts", func(t *testing.T) {
		b := CalculateBalance(shifts, 3)
		assert.Equal(t, 7.5, b.HoursSaved)
		assert.Equal(t, 2.0, b.HoursUsed)
		assert.Equal(t, 5.5, b.MonthEndBalance)
	})

	t.Run("ignores other shift codes", func(t *testing.T) {
		mixed := append(shifts, shift.Shift{
			Code:            shift.CodeOrdinary,
			ShiftDate:       time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			CorrectionHours: 100,
		})
		b := CalculateBalance(mixed, 0)
		assert.Equal(t, 7.5, b.HoursSaved)
	})

	t.Run("empty input", func(t *testing.T) {
		b := CalculateBalance(nil, 6)
		assert.Equal(t, Balance{}, b)
	})
}
