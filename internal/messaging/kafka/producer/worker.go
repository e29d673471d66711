package producer

import (
	"context"
	"time"

	"shift-tracker/internal/messaging/kafka"

	"go.uber.org/zap"
)

const outboxBatchSize = 50

// relayResult counts what one polling round did with the pending batch.
type relayResult struct {
	sent    int
	failed  int
	skipped int
}

// ProcessOutboxEvents relays lifecycle events from the outbox to Kafka until
// ctx is cancelled. Delivery is at least once; the stats consumer tolerates
// duplicates because eviction is idempotent.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.producer.relay")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Info("shift event relay started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			log.Info("shift event relay stopped")
			return
		case <-ticker.C:
			res, err := relayPending(ctx, repo, writer, log)
			if err != nil {
				log.Error("load pending shift events failed", zap.Error(err))
				continue
			}
			if res.sent+res.failed+res.skipped > 0 {
				log.Info("shift event batch relayed",
					zap.Int("sent", res.sent),
					zap.Int("failed", res.failed),
					zap.Int("skipped", res.skipped),
				)
			}
		}
	}
}

// relayPending publishes one batch. Events left unpublished when ctx ends stay
// pending and are picked up by the next process.
func relayPending(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
) (relayResult, error) {
	var res relayResult

	pending, err := repo.ListPending(ctx, outboxBatchSize)
	if err != nil {
		return res, err
	}

	for i, event := range pending {
		if ctx.Err() != nil {
			res.skipped = len(pending) - i
			break
		}

		fields := []zap.Field{
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("shift_id", event.AggregateID),
			zap.String("organization_id", event.PartitionKey),
		}

		if err := publishEvent(ctx, writer, event); err != nil {
			res.failed++
			logger.Error("publish shift event failed", append(fields, zap.Error(err))...)
			if markErr := repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				logger.Error("record publish failure failed", append(fields, zap.Error(markErr))...)
			}
			continue
		}

		// A MarkSent failure leaves the row pending, so the event is sent again.
		if err := repo.MarkSent(ctx, event.ID); err != nil {
			logger.Warn("mark shift event sent failed", append(fields, zap.Error(err))...)
		}
		res.sent++
		logger.Debug("shift event published", fields...)
	}

	return res, nil
}
