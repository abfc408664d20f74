package caorate

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=caorate_repo.go -destination=mock/caorate_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *RatePeriod) error
	FindAll(ctx context.Context) ([]RatePeriod, error)
	FindCoveringRange(ctx context.Context, from, to time.Time) ([]RatePeriod, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, p *RatePeriod) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAll(ctx context.Context) ([]RatePeriod, error) {
	var rows []RatePeriod
	err := r.db.WithContext(ctx).
		Order("start_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindCoveringRange(ctx context.Context, from, to time.Time) ([]RatePeriod, error) {
	var rows []RatePeriod
	err := r.db.WithContext(ctx).
		Where("end_date > ?", from.Format("2006-01-02")).
		Where("start_date <= ?", to.Format("2006-01-02")).
		Order("start_date ASC").
		Find(&rows).Error
	return rows, err
}
