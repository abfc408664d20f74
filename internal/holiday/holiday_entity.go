package holiday

import (
	"time"

	"github.com/google/uuid"
)

// Holiday is one row of the public holiday calendar. The calendar lives
// in the database so new years are added without a release.
type Holiday struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	HolidayDate time.Time `gorm:"column:holiday_date;type:date;not null;uniqueIndex"`
	Name        string    `gorm:"column:name;type:varchar(80);not null"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (Holiday) TableName() string {
	return "holidays"
}
