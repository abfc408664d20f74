package driver

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Driver carries the contract data the timesheet engine needs: birth
// date for the vacation entitlement band, hourly rate for the night
// surcharge, commute distance and the per-driver allowance switches.
type Driver struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	DriverNumber string    `gorm:"column:driver_number;type:varchar(20);not null;uniqueIndex"`
	FullName     string    `gorm:"column:full_name;type:varchar(120);not null"`

	BirthDate       *time.Time `gorm:"column:birth_date;type:date"`
	EmploymentStart time.Time  `gorm:"column:employment_start;type:date;not null"`
	EmploymentEnd   *time.Time `gorm:"column:employment_end;type:date"`

	PercentWork float64         `gorm:"column:percent_work;not null;default:100"`
	HourlyRate  decimal.Decimal `gorm:"column:hourly_rate;type:numeric(10,4);not null"`

	// One-way home-to-depot distance in km.
	HomeWorkKm float64 `gorm:"column:home_work_km;not null;default:0"`

	// Allowance switches, per contract.
	CommuteAllowance bool `gorm:"column:commute_allowance;not null;default:false"`
	NightAllowance   bool `gorm:"column:night_allowance;not null;default:false"`
	NightWholeHours  bool `gorm:"column:night_whole_hours;not null;default:false"`

	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Driver) TableName() string {
	return "drivers"
}

// AgeInYear returns the driver's age in the given report year, or 0 when
// no birth date is on file.
func (d Driver) AgeInYear(year int) int {
	if d.BirthDate == nil {
		return 0
	}
	return year - d.BirthDate.Year()
}
