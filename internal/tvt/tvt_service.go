package tvt

import (
	"context"

	"go-urenstaat/internal/driver"
	"go-urenstaat/internal/shift"

	"go.uber.org/zap"
)

//go:generate mockgen -source=tvt_service.go -destination=mock/tvt_service_mock.go -package=mock
type Service interface {
	GetBalance(ctx context.Context, driverID string, year, upToMonth int) (BalanceResponse, error)
	BalanceFor(ctx context.Context, driverID string, year, upToMonth int) (Balance, error)
}

type BalanceResponse struct {
	DriverID string  `json:"driver_id"`
	Year     int     `json:"year"`
	Month    int     `json:"month,omitempty"`
	Balance  Balance `json:"balance"`
}

type service struct {
	shifts  shift.Repository
	drivers driver.Service
	logger  *zap.Logger
}

func NewService(shifts shift.Repository, drivers driver.Service) Service {
	return &service{
		shifts:  shifts,
		drivers: drivers,
		logger:  zap.L().Named("tvt.service"),
	}
}

func (s *service) GetBalance(ctx context.Context, driverID string, year, upToMonth int) (BalanceResponse, error) {
	if _, err := s.drivers.GetContract(ctx, driverID); err != nil {
		return BalanceResponse{}, err
	}
	balance, err := s.BalanceFor(ctx, driverID, year, upToMonth)
	if err != nil {
		return BalanceResponse{}, err
	}
	return BalanceResponse{
		DriverID: driverID,
		Year:     year,
		Month:    upToMonth,
		Balance:  balance,
	}, nil
}

// BalanceFor skips the driver lookup for callers that already hold a
// verified contract.
func (s *service) BalanceFor(ctx context.Context, driverID string, year, upToMonth int) (Balance, error) {
	rows, err := s.shifts.FindTimeForTimeByDriverAndYear(ctx, driverID, year)
	if err != nil {
		return Balance{}, err
	}
	return CalculateBalance(rows, upToMonth), nil
}
