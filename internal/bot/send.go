package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// send delivers any chattable, logging failures. A nil API (tests)
// makes every send a no-op.
func (b *Bot) send(c tgbotapi.Chattable) {
	if b.api == nil {
		return
	}
	if _, err := b.api.Send(c); err != nil {
		b.logger.Error("failed to send message", zap.Error(err))
	}
}

// sendMarkdown sends Markdown-formatted text, retrying as plain text
// when Telegram rejects the entities. User-typed input ends up inside
// answers, so a stray underscore must degrade formatting, not drop the
// reply.
func (b *Bot) sendMarkdown(chatID int64, text string, markup interface{}) {
	if b.api == nil {
		return
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if markup != nil {
		msg.ReplyMarkup = markup
	}
	if _, err := b.api.Send(msg); err == nil {
		return
	}
	msg.ParseMode = ""
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("failed to send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (b *Bot) sendText(chatID int64, text string) {
	b.sendMarkdown(chatID, text, nil)
}

func (b *Bot) sendTyping(chatID int64) {
	if b.api == nil {
		return
	}
	if _, err := b.api.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)); err != nil {
		b.logger.Warn("failed to send typing action", zap.Error(err))
	}
}
