// Package audit defines the best-effort sink for conversation events.
//
// Recording is fire-and-forget by contract: implementations log their
// own failures and never propagate them, so the suppression policy
// lives here instead of being repeated at every call site.
package audit

import (
	"context"

	"github.com/Unreala9/metabot/internal/models"
)

// Recorder appends one event to a sink. Implementations must be safe
// for concurrent use and must never panic or block beyond the context.
type Recorder interface {
	Record(ctx context.Context, ev models.AuditEvent)
}

// Multi fans an event out to several recorders.
type Multi []Recorder

// Record sends the event to every recorder in order.
func (m Multi) Record(ctx context.Context, ev models.AuditEvent) {
	for _, r := range m {
		r.Record(ctx, ev)
	}
}

// Nop discards everything; used when no sink is configured.
type Nop struct{}

// Record does nothing.
func (Nop) Record(context.Context, models.AuditEvent) {}
