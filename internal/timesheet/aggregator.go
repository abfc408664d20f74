package timesheet

import (
	"strings"
	"time"

	"go-urenstaat/internal/caorate"
	"go-urenstaat/internal/driver"
	"go-urenstaat/internal/holiday"
	"go-urenstaat/internal/period"
	"go-urenstaat/internal/shift"
	"go-urenstaat/internal/tvt"
	"go-urenstaat/internal/vacation"

	"github.com/shopspring/decimal"
)

// BuildInput carries everything the aggregation needs, loaded up front.
// The build itself does no I/O and is safe to run concurrently for
// different drivers against the same shared snapshots.
type BuildInput struct {
	CompanyName  string
	Contract     driver.Driver
	Year         int
	PeriodNumber int
	Weeks        []int
	Shifts       []shift.Shift
	Rates        *caorate.Provider
	Holidays     holiday.Provider
	Vacation     vacation.Balance
	TimeForTime  tvt.Balance
}

var dutchWeekdays = map[time.Weekday]string{
	time.Monday:    "maandag",
	time.Tuesday:   "dinsdag",
	time.Wednesday: "woensdag",
	time.Thursday:  "donderdag",
	time.Friday:    "vrijdag",
	time.Saturday:  "zaterdag",
	time.Sunday:    "zondag",
}

// BuildReport walks the requested weeks day by day, folds the bookings
// of each date into a daily entry and accumulates weekly and grand
// totals. Days within a week are processed Monday through Sunday
// because the overtime tiers depend on the running weekly total.
func BuildReport(in BuildInput) (Report, error) {
	byDate := make(map[string][]shift.Shift, len(in.Shifts))
	for _, s := range in.Shifts {
		key := s.ShiftDate.Format("2006-01-02")
		byDate[key] = append(byDate[key], s)
	}

	report := Report{
		Header: Header{
			CompanyName:  in.CompanyName,
			DriverID:     in.Contract.ID.String(),
			DriverNumber: in.Contract.DriverNumber,
			DriverName:   in.Contract.FullName,
			Year:         in.Year,
			PeriodNumber: in.PeriodNumber,
			WeekRange:    period.RangeLabel(in.Weeks),
		},
		Employee:    buildEmployeeInfo(in.Contract),
		Vacation:    in.Vacation,
		TimeForTime: in.TimeForTime,
		GrandTotal:  newTotals(),
	}

	for _, week := range in.Weeks {
		monday := period.WeekStartDate(in.Year, week)
		breakdown := WeekBreakdown{WeekNumber: week, Total: newTotals()}

		weeklyHours := 0.0
		for i := 0; i < 7; i++ {
			date := monday.AddDate(0, 0, i)
			entry, err := buildDay(in, date, byDate[date.Format("2006-01-02")], &weeklyHours)
			if err != nil {
				return Report{}, err
			}
			breakdown.Days = append(breakdown.Days, entry)
			breakdown.Total.addDay(entry)
		}

		report.Weeks = append(report.Weeks, breakdown)
		report.GrandTotal.add(breakdown.Total)
	}

	report.Hours = HoursSummary{
		HourBuckets:    report.GrandTotal.HourBuckets,
		TotalHours:     report.GrandTotal.TotalHours,
		NightHours:     report.GrandTotal.NightHours,
		NightAllowance: report.GrandTotal.NightAllowance,
	}
	return report, nil
}

func buildEmployeeInfo(contract driver.Driver) EmployeeInfo {
	info := EmployeeInfo{
		EmploymentStart: contract.EmploymentStart.Format("2006-01-02"),
		PercentWork:     contract.PercentWork,
		HourlyRate:      contract.HourlyRate,
	}
	if contract.EmploymentEnd != nil {
		v := contract.EmploymentEnd.Format("2006-01-02")
		info.EmploymentEnd = &v
	}
	return info
}

func buildDay(in BuildInput, date time.Time, dayShifts []shift.Shift, weeklyHours *float64) (DayEntry, error) {
	entry := DayEntry{
		Date:                date.Format("2006-01-02"),
		Weekday:             dutchWeekdays[date.Weekday()],
		UntaxedAllowance:    zeroMoney(),
		TaxedAllowance:      zeroMoney(),
		NightAllowance:      zeroMoney(),
		KilometersAllowance: zeroMoney(),
	}
	if len(dayShifts) == 0 {
		return entry, nil
	}

	rate, err := in.Rates.RateFor(date)
	if err != nil {
		return DayEntry{}, err
	}

	commuteKm := HomeWorkDistance(
		in.Contract.CommuteAllowance,
		in.Contract.HomeWorkKm,
		rate.CommuteMinKm,
		rate.CommuteMaxKm,
	)

	first := dayShifts[0]
	entry.Code = string(first.Code)
	entry.Start = first.StartHour
	entry.End = first.EndHour
	entry.BreakHours = first.BreakHours

	isHoliday := holidayFlag(in.Holidays, date, dayShifts, &entry)

	var worked float64
	var isNight bool
	var remarks []string

	for _, s := range dayShifts {
		hours := s.Hours()
		switch s.Code {
		case shift.CodeVacation:
			entry.VacationHours = roundHours(entry.VacationHours + hours)
		case shift.CodeSick:
			entry.SickHours = roundHours(entry.SickHours + hours)
		case shift.CodeTimeForTime:
			entry.TvTHours = roundHours(entry.TvTHours + hours)
		default:
			worked += hours
		}

		entry.UntaxedAllowance = entry.UntaxedAllowance.Add(UntaxedAllowance(s, rate, isHoliday))
		entry.TaxedAllowance = entry.TaxedAllowance.Add(TaxedAllowance(s, rate))

		nightAmount, nightHours := NightAllowance(s, in.Contract, rate)
		entry.NightAllowance = entry.NightAllowance.Add(nightAmount)
		entry.NightHours = roundHours(entry.NightHours + nightHours)

		entry.KilometersAllowance = entry.KilometersAllowance.Add(
			ExtraKilometers(s, commuteKm, rate),
		)
		entry.Kilometers = roundHours(entry.Kilometers + s.Kilometers)

		if IsNightShift(s, nightAmount.IsPositive()) {
			isNight = true
		}
		if s.Remarks != nil && *s.Remarks != "" {
			remarks = append(remarks, *s.Remarks)
		}
	}

	worked = roundHours(worked)
	*weeklyHours += worked
	entry.TotalHours = worked
	entry.HourBuckets = ClassifyHours(worked, date.Weekday(), *weeklyHours, isHoliday, isNight)
	entry.Remarks = strings.Join(remarks, "; ")
	return entry, nil
}

// holidayFlag resolves the day's holiday treatment: the calendar answers
// first, then a booking option may force or forbid it. The first booking
// carrying an override wins.
func holidayFlag(calendar holiday.Provider, date time.Time, dayShifts []shift.Shift, entry *DayEntry) bool {
	flag := false
	if calendar != nil {
		if name, ok := calendar.NameOf(date); ok {
			entry.HolidayName = name
			flag = true
		}
	}
	for _, s := range dayShifts {
		switch s.Option {
		case shift.OptionForceHoliday:
			return true
		case shift.OptionNoHoliday:
			return false
		}
	}
	return flag
}

func zeroMoney() decimal.Decimal {
	return decimal.Zero
}
