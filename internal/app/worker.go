package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shift-tracker/internal/messaging/kafka"
	"shift-tracker/internal/messaging/kafka/producer"
	"shift-tracker/internal/shared/connection"

	"go.uber.org/zap"
)

func RunWorker(cfg Config) error {
	logger := zap.L().Named("app.worker")

	if err := cfg.RequireKafka(); err != nil {
		return err
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Postgres, 5)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := Migrate(gormDB); err != nil {
		return err
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(gormDB)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		defer close(done)
		producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger, 3*time.Second)
	}()

	<-ctx.Done()
	logger.Info("worker shutting down")
	<-done

	return nil
}
