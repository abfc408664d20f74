package shift

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"go-urenstaat/internal/events"
	"go-urenstaat/internal/messaging/kafka"
	shifterrors "go-urenstaat/internal/shift/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeShiftRepo struct {
	withTxFn    func(tx *sql.Tx) Repository
	createFn    func(ctx context.Context, s *Shift) error
	findRangeFn func(ctx context.Context, driverID string, from, to time.Time) ([]Shift, error)
	findTvTFn   func(ctx context.Context, driverID string, year int) ([]Shift, error)
	findByRefFn func(ctx context.Context, ref string) (*Shift, error)
}

func (f *fakeShiftRepo) WithTx(tx *sql.Tx) Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeShiftRepo) Create(ctx context.Context, s *Shift) error {
	if f.createFn != nil {
		return f.createFn(ctx, s)
	}
	return nil
}

func (f *fakeShiftRepo) FindByDriverAndRange(ctx context.Context, driverID string, from, to time.Time) ([]Shift, error) {
	if f.findRangeFn != nil {
		return f.findRangeFn(ctx, driverID, from, to)
	}
	return nil, nil
}

func (f *fakeShiftRepo) FindTimeForTimeByDriverAndYear(ctx context.Context, driverID string, year int) ([]Shift, error) {
	if f.findTvTFn != nil {
		return f.findTvTFn(ctx, driverID, year)
	}
	return nil, nil
}

func (f *fakeShiftRepo) FindByExternalRef(ctx context.Context, ref string) (*Shift, error) {
	if f.findByRefFn != nil {
		return f.findByRefFn(ctx, ref)
	}
	return nil, sql.ErrNoRows
}

type fakeOutboxRepo struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutboxRepo) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepo) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}

func (f *fakeOutboxRepo) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id string, reason string) error { return nil }

func ptr(v float64) *float64 { return &v }

func TestService_Create(t *testing.T) {
	validReq := func() CreateShiftRequest {
		return CreateShiftRequest{
			DriverID:  "3f1c7c70-9d2a-4b7e-9f36-0d6a8c8f1234",
			ShiftDate: "2025-03-03",
			Code:      "dagrit",
			StartHour: ptr(8),
			EndHour:   ptr(16.5),
		}
	}

	t.Run("records the shift and stages an outbox event", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		var saved *Shift
		repo := &fakeShiftRepo{
			createFn: func(ctx context.Context, s *Shift) error {
				saved = s
				return nil
			},
		}
		outbox := &fakeOutboxRepo{}
		svc := NewServiceWithOutbox(db, repo, outbox)

		resp, err := svc.Create(context.Background(), validReq())
		require.NoError(t, err)

		require.NotNil(t, saved)
		assert.Equal(t, CodeOrdinary, saved.Code)
		assert.Equal(t, "dagrit", saved.RawCode)
		assert.Equal(t, 100.0, saved.FTEPercent)
		assert.Equal(t, 8.5, resp.TotalHours)

		require.Len(t, outbox.created, 1)
		event := outbox.created[0]
		assert.Equal(t, events.ShiftRecordedTopic, event.Topic)
		assert.Equal(t, "shift.recorded", event.EventType)
		assert.Equal(t, kafka.OutboxStatusPending, event.Status)
		require.NoError(t, kafka.ValidateOutboxEvent(event))

		var payload events.ShiftRecordedEvent
		require.NoError(t, json.Unmarshal(event.Payload, &payload))
		assert.Equal(t, resp.ID, payload.ShiftID)
		assert.Equal(t, "2025-03-03", payload.ShiftDate)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("works without an outbox wired", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		svc := NewService(db, &fakeShiftRepo{})
		_, err = svc.Create(context.Background(), validReq())
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects a malformed driver id", func(t *testing.T) {
		svc := NewService(nil, &fakeShiftRepo{})
		req := validReq()
		req.DriverID = "not-a-uuid"

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, shifterrors.ErrInvalidDriverID)
	})

	t.Run("rejects a malformed shift date", func(t *testing.T) {
		svc := NewService(nil, &fakeShiftRepo{})
		req := validReq()
		req.ShiftDate = "03-03-2025"

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, shifterrors.ErrInvalidDateFormat)
	})

	t.Run("rejects clock values off the 24 hour scale", func(t *testing.T) {
		svc := NewService(nil, &fakeShiftRepo{})
		req := validReq()
		req.StartHour = ptr(25)

		_, err := svc.Create(context.Background(), req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "start_hour 25.00 is outside the 0-24 hour scale")

		req = validReq()
		req.EndHour = ptr(-1)
		_, err = svc.Create(context.Background(), req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "end_hour")
	})
}

func TestService_ListByDriver(t *testing.T) {
	driverID := "3f1c7c70-9d2a-4b7e-9f36-0d6a8c8f1234"

	t.Run("passes the parsed range to the repository", func(t *testing.T) {
		var gotFrom, gotTo time.Time
		repo := &fakeShiftRepo{
			findRangeFn: func(ctx context.Context, id string, from, to time.Time) ([]Shift, error) {
				gotFrom, gotTo = from, to
				return []Shift{{StartHour: ptr(8), EndHour: ptr(16)}}, nil
			},
		}
		svc := NewService(nil, repo)

		rows, err := svc.ListByDriver(context.Background(), driverID, ListShiftsFilterRequest{
			From: "2025-03-03",
			To:   "2025-03-09",
		})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 8.0, rows[0].TotalHours)
		assert.Equal(t, "2025-03-03", gotFrom.Format("2006-01-02"))
		assert.Equal(t, "2025-03-09", gotTo.Format("2006-01-02"))
	})

	t.Run("rejects an inverted range", func(t *testing.T) {
		svc := NewService(nil, &fakeShiftRepo{})
		_, err := svc.ListByDriver(context.Background(), driverID, ListShiftsFilterRequest{
			From: "2025-03-09",
			To:   "2025-03-03",
		})
		assert.ErrorIs(t, err, shifterrors.ErrInvalidDateRange)
	})

	t.Run("rejects malformed filter dates", func(t *testing.T) {
		svc := NewService(nil, &fakeShiftRepo{})
		_, err := svc.ListByDriver(context.Background(), driverID, ListShiftsFilterRequest{From: "maart"})
		assert.ErrorIs(t, err, shifterrors.ErrInvalidDateFormat)
	})

	t.Run("rejects a malformed driver id", func(t *testing.T) {
		svc := NewService(nil, &fakeShiftRepo{})
		_, err := svc.ListByDriver(context.Background(), "nope", ListShiftsFilterRequest{})
		assert.ErrorIs(t, err, shifterrors.ErrInvalidDriverID)
	})
}
