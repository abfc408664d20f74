package caorate

import (
	"context"
	"database/sql"
	"time"

	caorateerrors "go-urenstaat/internal/caorate/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=caorate_service.go -destination=mock/caorate_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateRatePeriodRequest) (RatePeriodResponse, error)
	GetAll(ctx context.Context) ([]RatePeriodResponse, error)
	SnapshotForRange(ctx context.Context, from, to time.Time) (*Provider, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo, logger: zap.L().Named("caorate.service")}
}

func (s *service) Create(ctx context.Context, req CreateRatePeriodRequest) (RatePeriodResponse, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return RatePeriodResponse{}, caorateerrors.ErrInvalidDateFormat
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return RatePeriodResponse{}, caorateerrors.ErrInvalidDateFormat
	}
	if !startDate.Before(endDate) {
		return RatePeriodResponse{}, caorateerrors.ErrInvalidValidityRange
	}

	row := &RatePeriod{
		ID:           uuid.New(),
		StartDate:    startDate,
		EndDate:      endDate,
		CommuteMinKm: req.CommuteMinKm,
		CommuteMaxKm: req.CommuteMaxKm,
		NightStart:   req.NightStart,
		NightEnd:     req.NightEnd,
	}
	for _, f := range []struct {
		raw string
		dst *decimal.Decimal
	}{
		{req.StandardRate, &row.StandardRate},
		{req.After17Rate, &row.After17Rate},
		{req.Before17Rate, &row.Before17Rate},
		{req.MultiDayUntaxedRate, &row.MultiDayUntaxedRate},
		{req.MultiDayTaxedRate, &row.MultiDayTaxedRate},
		{req.StandOverRate, &row.StandOverRate},
		{req.Over12hLumpSum, &row.Over12hLumpSum},
		{req.ConsignmentUntaxedRate, &row.ConsignmentUntaxedRate},
		{req.ConsignmentTaxedRate, &row.ConsignmentTaxedRate},
		{req.KilometerRate, &row.KilometerRate},
		{req.NightSurchargeRate, &row.NightSurchargeRate},
	} {
		v, err := decimal.NewFromString(f.raw)
		if err != nil || v.IsNegative() {
			return RatePeriodResponse{}, caorateerrors.ErrInvalidRate
		}
		*f.dst = v
	}

	// Overlap check against the loaded table; the unique index on
	// start_date backs this up under concurrency.
	existing, err := s.repo.FindCoveringRange(ctx, startDate, endDate.AddDate(0, 0, -1))
	if err != nil {
		return RatePeriodResponse{}, err
	}
	if len(existing) > 0 {
		return RatePeriodResponse{}, caorateerrors.ErrOverlappingPeriod
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RatePeriodResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, row); err != nil {
		return RatePeriodResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return RatePeriodResponse{}, err
	}

	s.logger.Info("cao rate period published",
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context) ([]RatePeriodResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]RatePeriodResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapToResponse(r)
	}
	return resp, nil
}

// SnapshotForRange loads every rate row touching [from, to] into an
// immutable provider for the calculation engine.
func (s *service) SnapshotForRange(ctx context.Context, from, to time.Time) (*Provider, error) {
	rows, err := s.repo.FindCoveringRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return NewProvider(rows), nil
}

func mapToResponse(p RatePeriod) RatePeriodResponse {
	return RatePeriodResponse{
		ID:                     p.ID.String(),
		StartDate:              p.StartDate.Format("2006-01-02"),
		EndDate:                p.EndDate.Format("2006-01-02"),
		StandardRate:           p.StandardRate.String(),
		After17Rate:            p.After17Rate.String(),
		Before17Rate:           p.Before17Rate.String(),
		MultiDayUntaxedRate:    p.MultiDayUntaxedRate.String(),
		MultiDayTaxedRate:      p.MultiDayTaxedRate.String(),
		StandOverRate:          p.StandOverRate.String(),
		Over12hLumpSum:         p.Over12hLumpSum.String(),
		ConsignmentUntaxedRate: p.ConsignmentUntaxedRate.String(),
		ConsignmentTaxedRate:   p.ConsignmentTaxedRate.String(),
		CommuteMinKm:           p.CommuteMinKm,
		CommuteMaxKm:           p.CommuteMaxKm,
		KilometerRate:          p.KilometerRate.String(),
		NightStart:             p.NightStart,
		NightEnd:               p.NightEnd,
		NightSurchargeRate:     p.NightSurchargeRate.String(),
	}
}
