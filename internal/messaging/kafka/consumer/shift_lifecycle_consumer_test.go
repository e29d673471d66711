package consumer

import (
	"context"
	"errors"
	"testing"

	"shift-tracker/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeReader struct {
	queue     []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.queue) == 0 {
		r.cancel()
		return kafkago.Message{}, context.Canceled
	}
	msg := r.queue[0]
	r.queue = r.queue[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

type fakeInvalidator struct {
	orgs []string
	err  error
}

func (f *fakeInvalidator) InvalidateStats(ctx context.Context, organizationID string) error {
	f.orgs = append(f.orgs, organizationID)
	return f.err
}

func TestConsumeShiftLifecycle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		cancel: cancel,
		queue: []kafkago.Message{
			{Key: []byte("s-1"), Value: []byte(`{"event_type":"` + events.ShiftClockedIn + `","shift_id":"s-1","organization_id":"o-1"}`)},
			{Key: []byte("junk"), Value: []byte(`not json`)},
		},
	}
	invalidator := &fakeInvalidator{}

	ConsumeShiftLifecycle(ctx, reader, invalidator, zap.NewNop())

	assert.Equal(t, []string{"o-1"}, invalidator.orgs)
	assert.Len(t, reader.committed, 2)
}

func TestConsumeShiftLifecycle_InvalidationFailureLeavesMessageUncommitted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		cancel: cancel,
		queue: []kafkago.Message{
			{Key: []byte("s-1"), Value: []byte(`{"shift_id":"s-1","organization_id":"o-1"}`)},
		},
	}
	invalidator := &fakeInvalidator{err: errors.New("redis down")}

	ConsumeShiftLifecycle(ctx, reader, invalidator, zap.NewNop())

	assert.Equal(t, []string{"o-1"}, invalidator.orgs)
	assert.Empty(t, reader.committed)
}
