// Package stubs provides an in-memory audit recorder for tests.
package stubs

import (
	"context"
	"sync"

	"github.com/Unreala9/metabot/internal/models"
)

// Memory collects recorded events in order.
type Memory struct {
	mu     sync.Mutex
	events []models.AuditEvent
}

// NewMemory creates an empty in-memory recorder.
func NewMemory() *Memory {
	return &Memory{}
}

// Record appends the event.
func (m *Memory) Record(_ context.Context, ev models.AuditEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
}

// Events returns a copy of everything recorded so far.
func (m *Memory) Events() []models.AuditEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.AuditEvent, len(m.events))
	copy(out, m.events)
	return out
}

// Len returns the number of recorded events.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.events)
}
