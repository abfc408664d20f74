package timesheet

import (
	"go-urenstaat/internal/tvt"
	"go-urenstaat/internal/vacation"

	"github.com/shopspring/decimal"
)

// Report is the full timesheet for one driver over one period or week.
// The HTTP layer serializes it as JSON; the PDF renderer walks the same
// structure.
type Report struct {
	Header      Header           `json:"header"`
	Employee    EmployeeInfo     `json:"employee"`
	Hours       HoursSummary     `json:"hours_summary"`
	Vacation    vacation.Balance `json:"vacation"`
	TimeForTime tvt.Balance      `json:"time_for_time"`
	Weeks       []WeekBreakdown  `json:"weeks"`
	GrandTotal  Totals           `json:"grand_total"`
}

type Header struct {
	CompanyName  string `json:"company_name"`
	DriverID     string `json:"driver_id"`
	DriverNumber string `json:"driver_number"`
	DriverName   string `json:"driver_name"`
	Year         int    `json:"year"`
	PeriodNumber int    `json:"period_number"`
	WeekRange    string `json:"week_range"`
}

type EmployeeInfo struct {
	EmploymentStart string          `json:"employment_start"`
	EmploymentEnd   *string         `json:"employment_end,omitempty"`
	PercentWork     float64         `json:"percent_work"`
	HourlyRate      decimal.Decimal `json:"hourly_rate"`
}

type HoursSummary struct {
	HourBuckets
	TotalHours     float64         `json:"total_hours"`
	NightHours     float64         `json:"night_hours"`
	NightAllowance decimal.Decimal `json:"night_allowance"`
}

// DayEntry is one calendar day of the breakdown. Days without bookings
// stay zero-valued apart from the date fields. When several bookings
// share the date, the code and clock times come from the chronologically
// first one and all numeric fields are summed.
type DayEntry struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`

	Code       string   `json:"code,omitempty"`
	Start      *float64 `json:"start,omitempty"`
	End        *float64 `json:"end,omitempty"`
	BreakHours float64  `json:"break_hours"`

	TotalHours float64 `json:"total_hours"`
	HourBuckets
	NightHours    float64 `json:"night_hours"`
	VacationHours float64 `json:"vacation_hours"`
	SickHours     float64 `json:"sick_hours"`
	TvTHours      float64 `json:"tvt_hours"`
	Kilometers    float64 `json:"kilometers"`

	UntaxedAllowance    decimal.Decimal `json:"untaxed_allowance"`
	TaxedAllowance      decimal.Decimal `json:"taxed_allowance"`
	NightAllowance      decimal.Decimal `json:"night_allowance"`
	KilometersAllowance decimal.Decimal `json:"kilometers_allowance"`

	HolidayName string `json:"holiday_name,omitempty"`
	Remarks     string `json:"remarks,omitempty"`
}

type Totals struct {
	TotalHours float64 `json:"total_hours"`
	HourBuckets
	NightHours    float64 `json:"night_hours"`
	VacationHours float64 `json:"vacation_hours"`
	SickHours     float64 `json:"sick_hours"`
	TvTHours      float64 `json:"tvt_hours"`
	Kilometers    float64 `json:"kilometers"`

	UntaxedAllowance    decimal.Decimal `json:"untaxed_allowance"`
	TaxedAllowance      decimal.Decimal `json:"taxed_allowance"`
	NightAllowance      decimal.Decimal `json:"night_allowance"`
	KilometersAllowance decimal.Decimal `json:"kilometers_allowance"`
}

func newTotals() Totals {
	return Totals{
		UntaxedAllowance:    decimal.Zero,
		TaxedAllowance:      decimal.Zero,
		NightAllowance:      decimal.Zero,
		KilometersAllowance: decimal.Zero,
	}
}

func (t *Totals) addDay(d DayEntry) {
	t.TotalHours = roundHours(t.TotalHours + d.TotalHours)
	t.HourBuckets.Add(d.HourBuckets)
	t.NightHours = roundHours(t.NightHours + d.NightHours)
	t.VacationHours = roundHours(t.VacationHours + d.VacationHours)
	t.SickHours = roundHours(t.SickHours + d.SickHours)
	t.TvTHours = roundHours(t.TvTHours + d.TvTHours)
	t.Kilometers = roundHours(t.Kilometers + d.Kilometers)
	t.UntaxedAllowance = t.UntaxedAllowance.Add(d.UntaxedAllowance)
	t.TaxedAllowance = t.TaxedAllowance.Add(d.TaxedAllowance)
	t.NightAllowance = t.NightAllowance.Add(d.NightAllowance)
	t.KilometersAllowance = t.KilometersAllowance.Add(d.KilometersAllowance)
}

func (t *Totals) add(o Totals) {
	t.TotalHours = roundHours(t.TotalHours + o.TotalHours)
	t.HourBuckets.Add(o.HourBuckets)
	t.NightHours = roundHours(t.NightHours + o.NightHours)
	t.VacationHours = roundHours(t.VacationHours + o.VacationHours)
	t.SickHours = roundHours(t.SickHours + o.SickHours)
	t.TvTHours = roundHours(t.TvTHours + o.TvTHours)
	t.Kilometers = roundHours(t.Kilometers + o.Kilometers)
	t.UntaxedAllowance = t.UntaxedAllowance.Add(o.UntaxedAllowance)
	t.TaxedAllowance = t.TaxedAllowance.Add(o.TaxedAllowance)
	t.NightAllowance = t.NightAllowance.Add(o.NightAllowance)
	t.KilometersAllowance = t.KilometersAllowance.Add(o.KilometersAllowance)
}

type WeekBreakdown struct {
	WeekNumber int        `json:"week_number"`
	Days       []DayEntry `json:"days"`
	Total      Totals     `json:"total"`
}
