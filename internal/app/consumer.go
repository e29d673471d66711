package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"shift-tracker/internal/analytics"
	"shift-tracker/internal/events"
	"shift-tracker/internal/messaging/kafka/consumer"
	"shift-tracker/internal/shared/clock"
	"shift-tracker/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const statsCacheConsumerGroup = "shift-tracker-stats-cache"

// RunConsumer evicts cached dashboard stats whenever a shift opens or closes.
func RunConsumer(cfg Config) error {
	logger := zap.L().Named("app.consumer")

	if err := cfg.RequireKafka(); err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return err
	}
	defer rdb.Close()

	// Eviction only touches redis, so the service runs without a repository.
	statsService := analytics.NewService(nil, rdb, clock.New(), cfg.StatsLocation, logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.ShiftLifecycleTopic,
		GroupID:        statsCacheConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.ConsumeShiftLifecycle(ctx, reader, statsService, logger)
	}()

	<-ctx.Done()
	logger.Info("consumer shutting down")
	<-done

	return nil
}
