package driver

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=driver_repo.go -destination=mock/driver_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, d *Driver) error
	FindByID(ctx context.Context, id string) (*Driver, error)
	FindAll(ctx context.Context) ([]Driver, error)
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

func (r *repository) Create(ctx context.Context, d *Driver) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Driver, error) {
	var d Driver
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&d).Error
	return &d, err
}

func (r *repository) FindAll(ctx context.Context) ([]Driver, error) {
	var rows []Driver
	err := r.db.WithContext(ctx).
		Order("driver_number ASC").
		Find(&rows).Error
	return rows, err
}
