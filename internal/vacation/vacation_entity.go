package vacation

import (
	"time"

	"github.com/google/uuid"
)

// EntitlementBand is one row of the age-banded vacation table: drivers
// aged [AgeMin,AgeMax] get Days vacation days per year while the band's
// validity interval covers the report year.
type EntitlementBand struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	AgeMin    int       `gorm:"column:age_min;not null"`
	AgeMax    int       `gorm:"column:age_max;not null"`
	Days      int       `gorm:"column:days;not null"`
	StartDate time.Time `gorm:"column:start_date;type:date;not null"`
	EndDate   time.Time `gorm:"column:end_date;type:date;not null"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (EntitlementBand) TableName() string {
	return "vacation_entitlement_bands"
}

// CoversYear reports whether the band's validity interval contains any
// part of the given year.
func (b EntitlementBand) CoversYear(year int) bool {
	return b.StartDate.Year() <= year && year <= b.EndDate.Year()
}

func (b EntitlementBand) MatchesAge(age int) bool {
	return b.AgeMin <= age && age <= b.AgeMax
}

// Mutation records vacation hours earned (positive) or taken (negative)
// on a date. LegacyHours carries amounts migrated from the old system;
// both columns count toward the balance.
type Mutation struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	DriverID     uuid.UUID `gorm:"column:driver_id;type:uuid;not null;index"`
	MutationDate time.Time `gorm:"column:mutation_date;type:date;not null"`
	Hours        float64   `gorm:"column:hours;not null;default:0"`
	LegacyHours  float64   `gorm:"column:legacy_hours;not null;default:0"`
	Description  string    `gorm:"column:description;type:varchar(255)"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Mutation) TableName() string {
	return "vacation_mutations"
}

func (m Mutation) TotalHours() float64 {
	return m.Hours + m.LegacyHours
}
