package vacation

import (
	"context"
	"database/sql"
	"time"

	"go-urenstaat/internal/driver"
	vacationerrors "go-urenstaat/internal/vacation/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=vacation_service.go -destination=mock/vacation_service_mock.go -package=mock
type Service interface {
	CreateMutation(ctx context.Context, req CreateMutationRequest) (MutationResponse, error)
	GetBalance(ctx context.Context, driverID string, year int) (BalanceResponse, error)
	BalanceFor(ctx context.Context, contract driver.Driver, year int) (Balance, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	drivers driver.Service
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, drivers driver.Service) Service {
	return &service{
		db:      db,
		repo:    repo,
		drivers: drivers,
		logger:  zap.L().Named("vacation.service"),
	}
}

func (s *service) CreateMutation(ctx context.Context, req CreateMutationRequest) (MutationResponse, error) {
	if req.Hours == 0 {
		return MutationResponse{}, vacationerrors.ErrZeroHours
	}
	date, err := time.Parse("2006-01-02", req.MutationDate)
	if err != nil {
		return MutationResponse{}, vacationerrors.ErrInvalidDateFormat
	}

	contract, err := s.drivers.GetContract(ctx, req.DriverID)
	if err != nil {
		return MutationResponse{}, err
	}

	row := &Mutation{
		ID:           uuid.New(),
		DriverID:     contract.ID,
		MutationDate: date,
		Hours:        req.Hours,
		Description:  req.Description,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return MutationResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).CreateMutation(ctx, row); err != nil {
		return MutationResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return MutationResponse{}, err
	}

	s.logger.Info("vacation mutation recorded",
		zap.String("driver_id", req.DriverID),
		zap.Float64("hours", req.Hours),
	)

	return MutationResponse{
		ID:           row.ID.String(),
		DriverID:     row.DriverID.String(),
		MutationDate: row.MutationDate.Format("2006-01-02"),
		Hours:        row.Hours,
		LegacyHours:  row.LegacyHours,
		Description:  row.Description,
	}, nil
}

func (s *service) GetBalance(ctx context.Context, driverID string, year int) (BalanceResponse, error) {
	if year < 1000 || year > 9999 {
		return BalanceResponse{}, vacationerrors.ErrInvalidYear
	}
	contract, err := s.drivers.GetContract(ctx, driverID)
	if err != nil {
		return BalanceResponse{}, err
	}
	balance, err := s.BalanceFor(ctx, contract, year)
	if err != nil {
		return BalanceResponse{}, err
	}
	return BalanceResponse{DriverID: driverID, Year: year, Balance: balance}, nil
}

// BalanceFor computes the balance for a contract the caller already
// loaded, so report generation does not fetch the driver twice.
func (s *service) BalanceFor(ctx context.Context, contract driver.Driver, year int) (Balance, error) {
	bands, err := s.repo.FindBands(ctx)
	if err != nil {
		return Balance{}, err
	}
	mutations, err := s.repo.FindMutationsByDriverAndYear(ctx, contract.ID.String(), year)
	if err != nil {
		return Balance{}, err
	}

	hasContract := contract.BirthDate != nil
	return CalculateBalance(bands, mutations, contract.AgeInYear(year), year, hasContract), nil
}
