package bot

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Unreala9/metabot/internal/audit"
	"github.com/Unreala9/metabot/internal/kb"
	"github.com/Unreala9/metabot/internal/models"
	"github.com/Unreala9/metabot/internal/wizard"
)

// Asker is the generative fallback service: one prompt in, one answer
// out. A nil Asker means the fallback is not configured.
type Asker interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// HistoryReader serves the admin /history command from the audit
// mirror. Nil when no mirror is configured.
type HistoryReader interface {
	LastEvents(ctx context.Context, limit int) ([]models.AuditEvent, error)
}

// Bot represents the Telegram bot wrapper
type Bot struct {
	api        *tgbotapi.BotAPI
	kb         *kb.Table
	asker      Asker
	recorder   audit.Recorder
	history    HistoryReader
	adminIDs   map[int64]bool
	follow     []models.NamedLink
	defaultCTA string
	logger     *zap.Logger

	// sessions and queues are keyed by user ID; every update from a
	// user is handled by that user's single worker goroutine, so the
	// session contents themselves need no lock.
	mu       sync.Mutex
	sessions map[int64]*session
	queues   map[int64]chan tgbotapi.Update

	demosMu sync.RWMutex
	demos   []models.NamedLink
}

type sessionMode int

const (
	modeIdle sessionMode = iota
	modeQA
	modeLanding
	modePost
)

// session is one end user's conversation state: the active mode plus
// the in-progress wizard, if any. Cleared on cancel, completion, or
// when the user switches to another menu action.
type session struct {
	mode    sessionMode
	landing *wizard.Landing
	post    *wizard.Post
}

// reset returns the session to the idle menu and discards any draft.
func (s *session) reset() {
	s.mode = modeIdle
	s.landing = nil
	s.post = nil
}
