package shift

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-urenstaat/internal/events"
	"go-urenstaat/internal/messaging/kafka"
	"go-urenstaat/internal/shared/apperror"
	"go-urenstaat/internal/shared/contextutil"
	shifterrors "go-urenstaat/internal/shift/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=shift_service.go -destination=mock/shift_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	ListByDriver(ctx context.Context, driverID string, filter ListShiftsFilterRequest) ([]ShiftResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository) Service {
	return NewServiceWithOutbox(db, repo, nil)
}

func NewServiceWithOutbox(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository) Service {
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: zap.L().Named("shift.service"),
	}
}

// validateHour rejects clock values outside the 0..24 scale. The offending
// value is named in the message; it is never silently clamped.
func validateHour(field string, v *float64) error {
	if v == nil {
		return nil
	}
	if *v < 0 || *v > 24 {
		return apperror.New(
			apperror.CodeInvalidInput,
			fmt.Sprintf("%s %.2f is outside the 0-24 hour scale", field, *v),
			http.StatusBadRequest,
		)
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	driverID, err := uuid.Parse(req.DriverID)
	if err != nil {
		return ShiftResponse{}, shifterrors.ErrInvalidDriverID
	}

	shiftDate, err := time.Parse("2006-01-02", req.ShiftDate)
	if err != nil {
		return ShiftResponse{}, shifterrors.ErrInvalidDateFormat
	}

	if err := validateHour("start_hour", req.StartHour); err != nil {
		return ShiftResponse{}, err
	}
	if err := validateHour("end_hour", req.EndHour); err != nil {
		return ShiftResponse{}, err
	}

	fte := req.FTEPercent
	if fte == 0 {
		fte = 100
	}

	row := &Shift{
		ID:              uuid.New(),
		DriverID:        driverID,
		ShiftDate:       shiftDate,
		Code:            ParseCode(req.Code),
		RawCode:         req.Code,
		Option:          ParseOption(req.Option),
		StartHour:       req.StartHour,
		EndHour:         req.EndHour,
		BreakHours:      req.BreakHours,
		CorrectionHours: req.CorrectionHours,
		Kilometers:      req.Kilometers,
		FTEPercent:      fte,
		Remarks:         req.Remarks,
		ExternalRef:     req.ExternalRef,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create shift begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return ShiftResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, row); err != nil {
		return ShiftResponse{}, err
	}

	if s.outbox != nil {
		payload, err := json.Marshal(events.ShiftRecordedEvent{
			EventType:  "shift.recorded",
			ShiftID:    row.ID.String(),
			DriverID:   row.DriverID.String(),
			ShiftDate:  row.ShiftDate.Format("2006-01-02"),
			Code:       string(row.Code),
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			return ShiftResponse{}, err
		}

		event := kafka.OutboxEvent{
			ID:            uuid.New().String(),
			RequestID:     rid,
			AggregateType: "shift",
			AggregateID:   row.ID.String(),
			EventType:     "shift.recorded",
			Topic:         events.ShiftRecordedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}
		if err := kafka.ValidateOutboxEvent(event); err != nil {
			return ShiftResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			return ShiftResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return ShiftResponse{}, err
	}

	s.logger.Info("shift recorded",
		zap.String("request_id", rid),
		zap.String("shift_id", row.ID.String()),
		zap.String("driver_id", row.DriverID.String()),
		zap.String("code", string(row.Code)),
	)

	return mapToResponse(*row), nil
}

func (s *service) ListByDriver(ctx context.Context, driverID string, filter ListShiftsFilterRequest) ([]ShiftResponse, error) {
	if _, err := uuid.Parse(driverID); err != nil {
		return nil, shifterrors.ErrInvalidDriverID
	}

	from := time.Date(time.Now().UTC().Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(time.Now().UTC().Year(), 12, 31, 0, 0, 0, 0, time.UTC)

	if filter.From != "" {
		v, err := time.Parse("2006-01-02", filter.From)
		if err != nil {
			return nil, shifterrors.ErrInvalidDateFormat
		}
		from = v
	}
	if filter.To != "" {
		v, err := time.Parse("2006-01-02", filter.To)
		if err != nil {
			return nil, shifterrors.ErrInvalidDateFormat
		}
		to = v
	}
	if from.After(to) {
		return nil, shifterrors.ErrInvalidDateRange
	}

	rows, err := s.repo.FindByDriverAndRange(ctx, driverID, from, to)
	if err != nil {
		return nil, err
	}

	resp := make([]ShiftResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapToResponse(r)
	}
	return resp, nil
}

func mapToResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:              s.ID.String(),
		DriverID:        s.DriverID.String(),
		ShiftDate:       s.ShiftDate.Format("2006-01-02"),
		Code:            string(s.Code),
		RawCode:         s.RawCode,
		Option:          string(s.Option),
		StartHour:       s.StartHour,
		EndHour:         s.EndHour,
		BreakHours:      s.BreakHours,
		CorrectionHours: s.CorrectionHours,
		Kilometers:      s.Kilometers,
		FTEPercent:      s.FTEPercent,
		TotalHours:      s.Hours(),
		Remarks:         s.Remarks,
		ExternalRef:     s.ExternalRef,
	}
}
