package ch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clickhouseTC "github.com/testcontainers/testcontainers-go/modules/clickhouse"
	"go.uber.org/zap"

	"github.com/Unreala9/metabot/internal/models"
)

// createSchema creates the audit_events table for tests.
func createSchema(ctx context.Context, r *Recorder) error {
	_ = r.conn.Exec(ctx, "DROP TABLE IF EXISTS audit_events")

	return r.conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS audit_events (
			ts DateTime,
			user String,
			input String,
			output String
		) ENGINE = MergeTree()
		ORDER BY ts
	`)
}

// setupTestRecorder creates a test ClickHouse instance using testcontainers
func setupTestRecorder(t *testing.T) (*Recorder, func()) {
	ctx := context.Background()

	clickhouseContainer, err := clickhouseTC.Run(ctx,
		"clickhouse/clickhouse-server:24.3.3.102-alpine",
		clickhouseTC.WithUsername("default"),
		clickhouseTC.WithPassword(""),
		clickhouseTC.WithDatabase("default"),
	)
	require.NoError(t, err, "Failed to start ClickHouse container")

	host, err := clickhouseContainer.Host(ctx)
	require.NoError(t, err)

	port, err := clickhouseContainer.MappedPort(ctx, "9000/tcp")
	require.NoError(t, err)

	rec, err := New(host, port.Int(), "default", "default", "", false, zap.NewNop())
	require.NoError(t, err, "Failed to connect to ClickHouse")

	err = createSchema(ctx, rec)
	require.NoError(t, err, "Failed to create schema")

	cleanup := func() {
		rec.Close()
		clickhouseContainer.Terminate(ctx)
	}

	return rec, cleanup
}

func TestRecorder_RecordAndLastEvents(t *testing.T) {
	rec, cleanup := setupTestRecorder(t)
	defer cleanup()

	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	rec.Record(ctx, models.AuditEvent{
		Time: base, User: "alice (@alice)", Input: "website ka price?", Output: "Web Dev Prices...",
	})
	rec.Record(ctx, models.AuditEvent{
		Time: base.Add(time.Minute), User: "bob (@bob)", Input: "/start", Output: "Shown main menu",
	})

	events, err := rec.LastEvents(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first.
	assert.Equal(t, "bob (@bob)", events[0].User)
	assert.Equal(t, "/start", events[0].Input)
	assert.Equal(t, "alice (@alice)", events[1].User)
	assert.Equal(t, "website ka price?", events[1].Input)
}

func TestRecorder_LastEventsLimit(t *testing.T) {
	rec, cleanup := setupTestRecorder(t)
	defer cleanup()

	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		rec.Record(ctx, models.AuditEvent{
			Time: base.Add(time.Duration(i) * time.Minute), User: "u", Input: "q", Output: "a",
		})
	}

	events, err := rec.LastEvents(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestRecorder_RecordSwallowsFailures(t *testing.T) {
	rec, cleanup := setupTestRecorder(t)
	defer cleanup()

	ctx := context.Background()
	// Drop the table so inserts fail; Record must not panic or error out.
	require.NoError(t, rec.conn.Exec(ctx, "DROP TABLE audit_events"))

	rec.Record(ctx, models.AuditEvent{Time: time.Now(), User: "u", Input: "q", Output: "a"})
}
