package holiday

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=holiday_repo.go -destination=mock/holiday_repo_mock.go -package=mock
type Repository interface {
	FindByRange(ctx context.Context, from, to time.Time) ([]Holiday, error)
	FindByYear(ctx context.Context, year int) ([]Holiday, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByRange(ctx context.Context, from, to time.Time) ([]Holiday, error) {
	var rows []Holiday
	err := r.db.WithContext(ctx).
		Where("holiday_date >= ?", from.Format("2006-01-02")).
		Where("holiday_date <= ?", to.Format("2006-01-02")).
		Order("holiday_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByYear(ctx context.Context, year int) ([]Holiday, error) {
	var rows []Holiday
	err := r.db.WithContext(ctx).
		Where("EXTRACT(YEAR FROM holiday_date) = ?", year).
		Order("holiday_date ASC").
		Find(&rows).Error
	return rows, err
}
