package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go-urenstaat/internal/events"
	"go-urenstaat/internal/shift"

	"github.com/jackc/pgx/v5/pgconn"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeRideCompleted turns ride execution events from the planning
// system into shift bookings. The external ref column carries the ride id
// so redelivered events hit the unique index and are skipped.
func ConsumeRideCompleted(
	ctx context.Context,
	reader *kafkago.Reader,
	shiftService shift.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.ride_completed")
	log.Info("ride completed consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("ride completed consumer stopped")
				return
			}
			log.Error("fetch ride completed message failed", zap.Error(err))
			continue
		}

		var event events.RideCompletedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode ride_completed event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		ref := event.RideID
		_, err = shiftService.Create(ctx, shift.CreateShiftRequest{
			DriverID:    event.DriverID,
			ShiftDate:   event.ShiftDate,
			Code:        event.ServiceCode,
			StartHour:   event.StartHour,
			EndHour:     event.EndHour,
			BreakHours:  event.BreakHours,
			Kilometers:  event.Kilometers,
			ExternalRef: &ref,
		})
		if err != nil {
			if isDuplicateShiftViolation(err) {
				log.Warn("shift already imported for ride, skipping",
					zap.String("ride_id", event.RideID),
					zap.String("driver_id", event.DriverID),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("create shift from ride failed",
				zap.String("ride_id", event.RideID),
				zap.String("driver_id", event.DriverID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit ride completed message failed", zap.Error(err))
			continue
		}

		log.Info("shift created from ride_completed event",
			zap.String("ride_id", event.RideID),
			zap.String("driver_id", event.DriverID),
		)
	}
}

func isDuplicateShiftViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "external_ref")
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "external_ref")
}
