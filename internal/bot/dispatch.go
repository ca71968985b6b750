package bot

import (
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	userQueueSize   = 16
	workerIdleAfter = 10 * time.Minute
)

// dispatch hands an update to its user's worker, creating the worker
// lazily. Updates from one user are handled in order; a slow fallback
// call for one user never stalls another. The enqueue happens under
// the same lock as the worker's idle-reap check, so an update is never
// left behind in a queue that no worker drains.
func (b *Bot) dispatch(update tgbotapi.Update) {
	userID := updateUserID(update)
	if userID == 0 {
		return
	}

	b.mu.Lock()
	q, ok := b.queues[userID]
	if !ok {
		q = make(chan tgbotapi.Update, userQueueSize)
		b.queues[userID] = q
		go b.runWorker(userID, q)
	}
	select {
	case q <- update:
	default:
		b.logger.Warn("user queue full, dropping update", zap.Int64("user_id", userID))
	}
	b.mu.Unlock()
}

func (b *Bot) runWorker(userID int64, q chan tgbotapi.Update) {
	idle := time.NewTimer(workerIdleAfter)
	defer idle.Stop()

	for {
		select {
		case update := <-q:
			b.handleUpdate(update)
			if !idle.Stop() {
				select {
				case <-idle.C:
				default:
				}
			}
			idle.Reset(workerIdleAfter)
		case <-idle.C:
			b.mu.Lock()
			if len(q) == 0 {
				delete(b.queues, userID)
				b.mu.Unlock()
				return
			}
			b.mu.Unlock()
			idle.Reset(workerIdleAfter)
		}
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		b.handleMessage(update.Message)
	case update.CallbackQuery != nil:
		b.handleCallbackQuery(update.CallbackQuery)
	}
}

func updateUserID(update tgbotapi.Update) int64 {
	if update.Message != nil && update.Message.From != nil {
		return update.Message.From.ID
	}
	if update.CallbackQuery != nil && update.CallbackQuery.From != nil {
		return update.CallbackQuery.From.ID
	}
	return 0
}
