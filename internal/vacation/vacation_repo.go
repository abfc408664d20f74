package vacation

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=vacation_repo.go -destination=mock/vacation_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateMutation(ctx context.Context, m *Mutation) error
	FindBands(ctx context.Context) ([]EntitlementBand, error)
	FindMutationsByDriverAndYear(ctx context.Context, driverID string, year int) ([]Mutation, error)
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

func (r *repository) CreateMutation(ctx context.Context, m *Mutation) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) FindBands(ctx context.Context) ([]EntitlementBand, error) {
	var bands []EntitlementBand
	err := r.db.WithContext(ctx).
		Order("start_date ASC, age_min ASC").
		Find(&bands).Error
	return bands, err
}

func (r *repository) FindMutationsByDriverAndYear(ctx context.Context, driverID string, year int) ([]Mutation, error) {
	var rows []Mutation
	err := r.db.WithContext(ctx).
		Where("driver_id = ?", driverID).
		Where("EXTRACT(YEAR FROM mutation_date) = ?", year).
		Order("mutation_date ASC").
		Find(&rows).Error
	return rows, err
}
