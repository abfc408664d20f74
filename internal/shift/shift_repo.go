package shift

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=shift_repo.go -destination=mock/shift_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *Shift) error
	FindByDriverAndRange(ctx context.Context, driverID string, from, to time.Time) ([]Shift, error)
	FindTimeForTimeByDriverAndYear(ctx context.Context, driverID string, year int) ([]Shift, error)
	FindByExternalRef(ctx context.Context, ref string) (*Shift, error)
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

func (r *repository) Create(ctx context.Context, s *Shift) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindByDriverAndRange(ctx context.Context, driverID string, from, to time.Time) ([]Shift, error) {
	var rows []Shift
	err := r.db.WithContext(ctx).
		Where("driver_id = ?", driverID).
		Where("shift_date >= ?", from.Format("2006-01-02")).
		Where("shift_date <= ?", to.Format("2006-01-02")).
		Order("shift_date ASC, start_hour ASC NULLS LAST").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindTimeForTimeByDriverAndYear(ctx context.Context, driverID string, year int) ([]Shift, error) {
	var rows []Shift
	err := r.db.WithContext(ctx).
		Where("driver_id = ?", driverID).
		Where("code = ?", CodeTimeForTime).
		Where("EXTRACT(YEAR FROM shift_date) = ?", year).
		Order("shift_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByExternalRef(ctx context.Context, ref string) (*Shift, error) {
	var s Shift
	err := r.db.WithContext(ctx).
		Where("external_ref = ?", ref).
		First(&s).Error
	return &s, err
}
