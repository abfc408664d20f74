package period

import (
	"fmt"
	"time"
)

// The reporting year is cut into 13 periods of 4 consecutive ISO weeks.
// Period 13 absorbs ISO week 53 in long years.

const WeeksPerPeriod = 4

type Period struct {
	Year         int
	Number       int // 1..13
	WeekInPeriod int // 1..4
}

// Of maps a calendar date onto its reporting period. ISO weeks 52/53
// falling in January still belong to the previous calendar year's
// period 13, which the ISO year of the date already encodes.
func Of(date time.Time) Period {
	year, week := date.ISOWeek()
	number := (week-1)/WeeksPerPeriod + 1
	weekInPeriod := week - (number-1)*WeeksPerPeriod
	if number > 13 {
		// ISO week 53
		number = 13
		weekInPeriod = WeeksPerPeriod
	}
	return Period{Year: year, Number: number, WeekInPeriod: weekInPeriod}
}

// OfWeek returns the period number a week number falls in.
func OfWeek(week int) int {
	number := (week-1)/WeeksPerPeriod + 1
	if number > 13 {
		number = 13
	}
	return number
}

// WeeksOf returns the four consecutive ISO week numbers of a period.
func WeeksOf(number int) []int {
	weeks := make([]int, 0, WeeksPerPeriod)
	first := (number-1)*WeeksPerPeriod + 1
	for w := first; w < first+WeeksPerPeriod; w++ {
		weeks = append(weeks, w)
	}
	return weeks
}

// WeekStartDate returns the Monday of the given ISO week.
func WeekStartDate(year, week int) time.Time {
	// Jan 4 is always inside ISO week 1
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	monday := jan4.AddDate(0, 0, 1-weekday)
	return monday.AddDate(0, 0, (week-1)*7)
}

// RangeLabel renders the human readable week range of a period,
// e.g. "week 5 t/m 8".
func RangeLabel(weeks []int) string {
	if len(weeks) == 0 {
		return ""
	}
	if len(weeks) == 1 {
		return fmt.Sprintf("week %d", weeks[0])
	}
	return fmt.Sprintf("week %d t/m %d", weeks[0], weeks[len(weeks)-1])
}
