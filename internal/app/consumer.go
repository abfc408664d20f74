package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-urenstaat/internal/events"
	"go-urenstaat/internal/messaging/kafka"
	"go-urenstaat/internal/messaging/kafka/consumer"
	"go-urenstaat/internal/shared/connection"
	"go-urenstaat/internal/shift"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	shiftRepo := shift.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	shiftService := shift.NewServiceWithOutbox(sqlDB, shiftRepo, outboxRepo)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.RideCompletedTopic,
		GroupID:        "go-urenstaat-rides",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeRideCompleted(ctx, reader, shiftService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
