package driver

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	drivererrors "go-urenstaat/internal/driver/errors"
	"go-urenstaat/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=driver_service.go -destination=mock/driver_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDriverRequest) (DriverResponse, error)
	GetAll(ctx context.Context) ([]DriverResponse, error)
	GetByID(ctx context.Context, id string) (DriverResponse, error)
	GetContract(ctx context.Context, id string) (Driver, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counterRepo counter.Repository) Service {
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		logger:  zap.L().Named("driver.service"),
	}
}

func (s *service) Create(ctx context.Context, req CreateDriverRequest) (DriverResponse, error) {
	employmentStart, err := time.Parse("2006-01-02", req.EmploymentStart)
	if err != nil {
		return DriverResponse{}, drivererrors.ErrInvalidDateFormat
	}

	row := &Driver{
		ID:               uuid.New(),
		FullName:         req.FullName,
		EmploymentStart:  employmentStart,
		PercentWork:      req.PercentWork,
		HomeWorkKm:       req.HomeWorkKm,
		CommuteAllowance: req.CommuteAllowance,
		NightAllowance:   req.NightAllowance,
		NightWholeHours:  req.NightWholeHours,
	}
	if row.PercentWork == 0 {
		row.PercentWork = 100
	}

	rate, err := decimal.NewFromString(req.HourlyRate)
	if err != nil || rate.IsNegative() {
		return DriverResponse{}, drivererrors.ErrInvalidHourlyRate
	}
	row.HourlyRate = rate

	if req.BirthDate != nil && *req.BirthDate != "" {
		v, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			return DriverResponse{}, drivererrors.ErrInvalidDateFormat
		}
		row.BirthDate = &v
	}
	if req.EmploymentEnd != nil && *req.EmploymentEnd != "" {
		v, err := time.Parse("2006-01-02", *req.EmploymentEnd)
		if err != nil {
			return DriverResponse{}, drivererrors.ErrInvalidDateFormat
		}
		row.EmploymentEnd = &v
	}

	row.DriverNumber = req.DriverNumber
	if row.DriverNumber == "" {
		nextVal, err := s.counter.GetNextValue(ctx, "driver_number")
		if err != nil {
			s.logger.Error("create driver generate number failed", zap.Error(err))
			return DriverResponse{}, err
		}
		row.DriverNumber = fmt.Sprintf("CH-%05d", nextVal)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DriverResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, row); err != nil {
		return DriverResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return DriverResponse{}, err
	}

	s.logger.Info("driver created",
		zap.String("driver_id", row.ID.String()),
		zap.String("driver_number", row.DriverNumber),
	)

	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context) ([]DriverResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]DriverResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapToResponse(r)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (DriverResponse, error) {
	row, err := s.GetContract(ctx, id)
	if err != nil {
		return DriverResponse{}, err
	}
	return mapToResponse(row), nil
}

// GetContract returns the full contract row for the engine. A missing
// driver aborts report generation with a not-found naming the id.
func (s *service) GetContract(ctx context.Context, id string) (Driver, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Driver{}, drivererrors.ErrInvalidDriverID
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Driver{}, drivererrors.NotFound(id)
		}
		return Driver{}, err
	}
	return *row, nil
}

func mapToResponse(d Driver) DriverResponse {
	resp := DriverResponse{
		ID:               d.ID.String(),
		DriverNumber:     d.DriverNumber,
		FullName:         d.FullName,
		EmploymentStart:  d.EmploymentStart.Format("2006-01-02"),
		PercentWork:      d.PercentWork,
		HourlyRate:       d.HourlyRate.String(),
		HomeWorkKm:       d.HomeWorkKm,
		CommuteAllowance: d.CommuteAllowance,
		NightAllowance:   d.NightAllowance,
		NightWholeHours:  d.NightWholeHours,
	}
	if d.BirthDate != nil {
		v := d.BirthDate.Format("2006-01-02")
		resp.BirthDate = &v
	}
	if d.EmploymentEnd != nil {
		v := d.EmploymentEnd.Format("2006-01-02")
		resp.EmploymentEnd = &v
	}
	return resp
}
