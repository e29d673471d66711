package kafka_test

import (
	"context"
	"testing"

	"shift-tracker/internal/events"
	"shift-tracker/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestNewOutboxEvent(t *testing.T) {
	event, err := kafka.NewOutboxEvent("req-1", "shift", "4b6f0e9e-0c53-4d43-9b0c-0b6f3c6c1a11",
		events.ShiftClockedIn, events.ShiftLifecycleTopic, map[string]string{"shift_id": "x"})
	require.NoError(t, err)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, kafka.OutboxStatusPending, event.Status)
	assert.JSONEq(t, `{"shift_id":"x"}`, string(event.Payload))
	assert.NoError(t, kafka.ValidateOutboxEvent(event))
}

func TestOutboxEvent_MessageKey(t *testing.T) {
	event := kafka.OutboxEvent{AggregateID: "s-1"}
	assert.Equal(t, "s-1", event.MessageKey())

	event.PartitionKey = "org-1"
	assert.Equal(t, "org-1", event.MessageKey())
}

func TestValidateOutboxEvent(t *testing.T) {
	base := kafka.OutboxEvent{ID: "id", Topic: "t", Payload: []byte(`{}`), Status: kafka.OutboxStatusPending}

	noTopic := base
	noTopic.Topic = ""
	assert.EqualError(t, kafka.ValidateOutboxEvent(noTopic), "outbox topic is required")

	badStatus := base
	badStatus.Status = "queued"
	assert.EqualError(t, kafka.ValidateOutboxEvent(badStatus), "invalid outbox status: queued")
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock := newMockDB(t)
	repo := kafka.NewOutboxRepository(db)

	rows := sqlmock.NewRows([]string{"id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count"}).
		AddRow("e-1", "shift", "s-1", events.ShiftClockedIn, events.ShiftLifecycleTopic, []byte(`{}`), kafka.OutboxStatusPending, 0)
	mock.ExpectQuery(`SELECT \* FROM "outbox_events" WHERE status IN`).WillReturnRows(rows)

	got, err := repo.ListPending(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "e-1", got[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_CreateRejectsInvalid(t *testing.T) {
	db, mock := newMockDB(t)
	repo := kafka.NewOutboxRepository(db)

	err := repo.Create(context.Background(), kafka.OutboxEvent{ID: "id"})
	assert.EqualError(t, err, "outbox topic is required")
	assert.NoError(t, mock.ExpectationsWereMet())
}
