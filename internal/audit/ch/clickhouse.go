// Package ch mirrors audit events into ClickHouse so conversation
// history can be queried locally even when the Google sinks are down.
package ch

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"
	"go.uber.org/zap"

	"github.com/Unreala9/metabot/internal/models"
)

// Recorder writes audit events to the audit_events table.
type Recorder struct {
	conn   clickhouse.Conn
	logger *zap.Logger
}

// New opens a ClickHouse connection and verifies it with a ping.
func New(host string, port int, database, user, password string, useTLS bool, logger *zap.Logger) (*Recorder, error) {
	addr := fmt.Sprintf("%s:%d", host, port)

	options := &clickhouse.Options{
		Addr:     []string{addr},
		Protocol: clickhouse.Native,
		Auth: clickhouse.Auth{
			Database: database,
			Username: user,
			Password: password,
		},
	}
	if useTLS {
		options.TLS = &tls.Config{
			InsecureSkipVerify: false,
		}
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ClickHouse: %w", err)
	}

	if err := conn.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping ClickHouse: %w", err)
	}

	return &Recorder{conn: conn, logger: logger}, nil
}

// Record inserts one audit event. Errors are logged, never returned;
// the mirror is best-effort like every other audit sink.
func (r *Recorder) Record(ctx context.Context, ev models.AuditEvent) {
	err := r.conn.Exec(ctx,
		`INSERT INTO audit_events (ts, user, input, output) VALUES (?, ?, ?, ?)`,
		ev.Time, ev.User, ev.Input, ev.Output)
	if err != nil {
		r.logger.Warn("clickhouse audit insert failed", zap.Error(err))
	}
}

// LastEvents returns the most recent events, newest first. Used by the
// admin /history command.
func (r *Recorder) LastEvents(ctx context.Context, limit int) ([]models.AuditEvent, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT ts, user, input, output FROM audit_events ORDER BY ts DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit events: %w", err)
	}
	defer rows.Close()

	var events []models.AuditEvent
	for rows.Next() {
		var ev models.AuditEvent
		if err := rows.Scan(&ev.Time, &ev.User, &ev.Input, &ev.Output); err != nil {
			return nil, fmt.Errorf("failed to scan audit event: %w", err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// Close closes the connection.
func (r *Recorder) Close() error {
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
