package consumer

import (
	"context"
	"encoding/json"

	"shift-tracker/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is satisfied by *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// StatsInvalidator drops cached dashboard aggregates for an organization.
type StatsInvalidator interface {
	InvalidateStats(ctx context.Context, organizationID string) error
}

// ConsumeShiftLifecycle evicts the dashboard cache of the organization a shift
// belongs to. A message is committed only after eviction succeeded, so a
// failed eviction is retried on the next fetch.
func ConsumeShiftLifecycle(
	ctx context.Context,
	reader MessageReader,
	invalidator StatsInvalidator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.shift_lifecycle")
	log.Info("shift lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("shift lifecycle consumer stopped")
				return
			}
			log.Error("fetch shift lifecycle message failed", zap.Error(err))
			continue
		}

		handleShiftLifecycle(ctx, reader, invalidator, msg, log)
	}
}

func handleShiftLifecycle(
	ctx context.Context,
	reader MessageReader,
	invalidator StatsInvalidator,
	msg kafkago.Message,
	log *zap.Logger,
) {
	var event events.ShiftLifecycleEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil || event.OrganizationID == "" {
		log.Error("decode shift lifecycle event failed", zap.ByteString("key", msg.Key), zap.Error(err))
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	if err := invalidator.InvalidateStats(ctx, event.OrganizationID); err != nil {
		log.Error("invalidate dashboard stats failed",
			zap.String("organization_id", event.OrganizationID),
			zap.String("shift_id", event.ShiftID),
			zap.Error(err),
		)
		return
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit shift lifecycle message failed", zap.Error(err))
		return
	}

	log.Debug("dashboard stats invalidated",
		zap.String("event_type", event.EventType),
		zap.String("organization_id", event.OrganizationID),
		zap.String("shift_id", event.ShiftID),
	)
}
