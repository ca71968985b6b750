package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Unreala9/metabot/internal/audit"
	"github.com/Unreala9/metabot/internal/kb"
	"github.com/Unreala9/metabot/internal/models"
)

// Options carries the collaborators the bot is wired with. Asker and
// History may be nil; Recorder must not be (use audit.Nop).
type Options struct {
	Table      *kb.Table
	Asker      Asker
	Recorder   audit.Recorder
	History    HistoryReader
	AdminIDs   []int64
	Follow     []models.NamedLink
	DefaultCTA string
	Logger     *zap.Logger
}

// NewBot creates a new Telegram bot instance
func NewBot(token string, opts Options) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot api: %w", err)
	}

	b, err := newBotWithAPI(api, opts)
	if err != nil {
		return nil, err
	}
	b.logger.Info("bot authorized", zap.String("username", api.Self.UserName))
	return b, nil
}

// newBotWithAPI wires a Bot around an existing (possibly nil) API
// client. Tests use it to exercise the bot without Telegram.
func newBotWithAPI(api *tgbotapi.BotAPI, opts Options) (*Bot, error) {
	if opts.Table == nil {
		return nil, fmt.Errorf("knowledge base table is required")
	}
	if opts.Recorder == nil {
		opts.Recorder = audit.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	admins := make(map[int64]bool, len(opts.AdminIDs))
	for _, id := range opts.AdminIDs {
		admins[id] = true
	}

	return &Bot{
		api:        api,
		kb:         opts.Table,
		asker:      opts.Asker,
		recorder:   opts.Recorder,
		history:    opts.History,
		adminIDs:   admins,
		follow:     opts.Follow,
		defaultCTA: opts.DefaultCTA,
		logger:     opts.Logger,
		sessions:   make(map[int64]*session),
		queues:     make(map[int64]chan tgbotapi.Update),
		demos:      append([]models.NamedLink(nil), defaultDemos...),
	}, nil
}

func (b *Bot) isAdmin(userID int64) bool {
	return b.adminIDs[userID]
}

func (b *Bot) getSession(userID int64) *session {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.sessions[userID]
	if !ok {
		s = &session{}
		b.sessions[userID] = s
	}
	return s
}
