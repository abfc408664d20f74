package caorate

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RatePeriod is one published CAO rate row, valid for [StartDate, EndDate).
// Rows never overlap and together cover the full operating history; the
// engine only reads them.
type RatePeriod struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	StartDate time.Time `gorm:"column:start_date;type:date;not null;uniqueIndex"`
	EndDate   time.Time `gorm:"column:end_date;type:date;not null"`

	// Per-diem rates, per hour unless noted.
	StandardRate decimal.Decimal `gorm:"column:standard_rate;type:numeric(10,4);not null"`
	After17Rate  decimal.Decimal `gorm:"column:after17_rate;type:numeric(10,4);not null"`
	Before17Rate decimal.Decimal `gorm:"column:before17_rate;type:numeric(10,4);not null"`

	// Flat day rates for multi-day trips.
	MultiDayUntaxedRate decimal.Decimal `gorm:"column:multi_day_untaxed_rate;type:numeric(10,4);not null"`
	MultiDayTaxedRate   decimal.Decimal `gorm:"column:multi_day_taxed_rate;type:numeric(10,4);not null"`
	StandOverRate       decimal.Decimal `gorm:"column:stand_over_rate;type:numeric(10,4);not null"`

	// Lump sum for single-day trips longer than 12 hours.
	Over12hLumpSum decimal.Decimal `gorm:"column:over12h_lump_sum;type:numeric(10,4);not null"`

	// Consignment duty, per hour.
	ConsignmentUntaxedRate decimal.Decimal `gorm:"column:consignment_untaxed_rate;type:numeric(10,4);not null"`
	ConsignmentTaxedRate   decimal.Decimal `gorm:"column:consignment_taxed_rate;type:numeric(10,4);not null"`

	// Commute thresholds (one-way km) and the kilometer rate.
	CommuteMinKm  float64         `gorm:"column:commute_min_km;not null"`
	CommuteMaxKm  float64         `gorm:"column:commute_max_km;not null"`
	KilometerRate decimal.Decimal `gorm:"column:kilometer_rate;type:numeric(10,4);not null"`

	// Night window as time-of-day decimal hours; wraps midnight when
	// NightEnd < NightStart (21 -> 5 is the common case).
	NightStart         float64         `gorm:"column:night_start;not null"`
	NightEnd           float64         `gorm:"column:night_end;not null"`
	NightSurchargeRate decimal.Decimal `gorm:"column:night_surcharge_rate;type:numeric(6,4);not null"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (RatePeriod) TableName() string {
	return "cao_rate_periods"
}

// Covers reports whether date falls inside [StartDate, EndDate).
func (p RatePeriod) Covers(date time.Time) bool {
	d := date.Truncate(24 * time.Hour)
	return !d.Before(p.StartDate) && d.Before(p.EndDate)
}
