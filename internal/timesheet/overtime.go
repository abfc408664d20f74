package timesheet

import (
	"time"

	"go-urenstaat/internal/shift"
)

// HourBuckets splits one day's worked hours over the CAO pay tiers.
type HourBuckets struct {
	Regular100  float64 `json:"regular_100"`
	Overtime130 float64 `json:"overtime_130"`
	Overtime150 float64 `json:"overtime_150"`
	Premium200  float64 `json:"premium_200"`
}

func (b HourBuckets) Total() float64 {
	return b.Regular100 + b.Overtime130 + b.Overtime150 + b.Premium200
}

func (b *HourBuckets) Add(o HourBuckets) {
	b.Regular100 += o.Regular100
	b.Overtime130 += o.Overtime130
	b.Overtime150 += o.Overtime150
	b.Premium200 += o.Premium200
}

// ClassifyHours assigns one day's hours to pay tiers. weeklyTotal is the
// cumulative weekly total including today, which is why days within a
// week must be classified in chronological order.
//
// Sundays, holidays and night shifts pay the 200% tier for the whole
// day. Otherwise the week cap of 40 hours and the day cap of 10 hours
// push the excess to 150%, and the band between 8 and 10 daily hours
// pays 130%.
func ClassifyHours(totalHours float64, day time.Weekday, weeklyTotal float64, isHoliday, isNight bool) HourBuckets {
	if totalHours <= 0 {
		return HourBuckets{}
	}

	if day == time.Sunday || isHoliday || isNight {
		return HourBuckets{Premium200: totalHours}
	}

	if weeklyTotal > 40 {
		priorWeekly := weeklyTotal - totalHours
		if priorWeekly >= 40 {
			return HourBuckets{Overtime150: totalHours}
		}
		regular := 40 - priorWeekly
		b := dailySplit(regular)
		b.Overtime150 += totalHours - regular
		return b
	}

	return dailySplit(totalHours)
}

// dailySplit applies the per-day tiers: 8 hours at 100%, the next 2 at
// 130%, anything above 10 at 150%.
func dailySplit(h float64) HourBuckets {
	b := HourBuckets{Regular100: h}
	if h > 8 {
		b.Regular100 = 8
		b.Overtime130 = h - 8
	}
	if h > 10 {
		b.Overtime130 = 2
		b.Overtime150 = h - 10
	}
	return b
}

// IsNightShift reports whether a booking counts as night work: a night
// surcharge was actually paid, or the clock times run past midnight,
// start before 06:00, end after 22:00, or start at or after 22:00.
// Bookings without clock times are never night work.
func IsNightShift(s shift.Shift, nightAllowancePaid bool) bool {
	if nightAllowancePaid {
		return true
	}
	if s.StartHour == nil || s.EndHour == nil {
		return false
	}
	start, end := s.Start(), s.End()
	return s.CrossesMidnight() || start < 6 || end > 22 || start >= 22
}
