package producer

import (
	"context"
	"errors"
	"testing"

	"shift-tracker/internal/messaging/kafka"
	"shift-tracker/internal/messaging/kafka/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	failFor  map[string]bool
	messages []kafkago.Message
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if w.failFor[string(m.Key)] {
			return errors.New("broker unavailable")
		}
		w.messages = append(w.messages, m)
	}
	return nil
}

func clockedIn(id, shiftID, orgID string) kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID: id, AggregateType: "shift", AggregateID: shiftID, PartitionKey: orgID,
		EventType: "shift.clocked_in", Topic: "shift.lifecycle.v1", Payload: []byte(`{}`),
	}
}

func TestRelayPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockOutboxRepository(ctrl)
	ctx := context.Background()

	ok := clockedIn("e-1", "s-1", "org-1")
	ok.RequestID = "req-1"
	bad := clockedIn("e-2", "s-2", "org-down")
	writer := &fakeWriter{failFor: map[string]bool{"org-down": true}}

	repo.EXPECT().ListPending(ctx, outboxBatchSize).Return([]kafka.OutboxEvent{ok, bad}, nil)
	repo.EXPECT().MarkSent(ctx, "e-1").Return(nil)
	repo.EXPECT().MarkFailed(ctx, "e-2", "broker unavailable").Return(nil)

	res, err := relayPending(ctx, repo, writer, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, relayResult{sent: 1, failed: 1}, res)

	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	assert.Equal(t, "shift.lifecycle.v1", msg.Topic)
	assert.Equal(t, []byte("org-1"), msg.Key)
	assert.Contains(t, msg.Headers, kafkago.Header{Key: "event_type", Value: []byte("shift.clocked_in")})
	assert.Contains(t, msg.Headers, kafkago.Header{Key: "aggregate_id", Value: []byte("s-1")})
	assert.Contains(t, msg.Headers, kafkago.Header{Key: "request_id", Value: []byte("req-1")})
}

func TestRelayPending_KeyFallsBackToShift(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockOutboxRepository(ctrl)
	ctx := context.Background()
	writer := &fakeWriter{}

	repo.EXPECT().ListPending(ctx, outboxBatchSize).Return([]kafka.OutboxEvent{clockedIn("e-1", "s-1", "")}, nil)
	repo.EXPECT().MarkSent(ctx, "e-1").Return(errors.New("db down"))

	res, err := relayPending(ctx, repo, writer, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, res.sent)
	require.Len(t, writer.messages, 1)
	assert.Equal(t, []byte("s-1"), writer.messages[0].Key)
}

func TestRelayPending_StopsWhenCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockOutboxRepository(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	writer := &fakeWriter{}

	repo.EXPECT().ListPending(ctx, outboxBatchSize).
		Return([]kafka.OutboxEvent{clockedIn("e-1", "s-1", "org-1"), clockedIn("e-2", "s-2", "org-1")}, nil)

	res, err := relayPending(ctx, repo, writer, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, relayResult{skipped: 2}, res)
	assert.Empty(t, writer.messages)
}

func TestRelayPending_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockOutboxRepository(ctrl)
	ctx := context.Background()

	repo.EXPECT().ListPending(ctx, outboxBatchSize).Return(nil, errors.New("db down"))

	_, err := relayPending(ctx, repo, &fakeWriter{}, zap.NewNop())
	assert.EqualError(t, err, "db down")
}
