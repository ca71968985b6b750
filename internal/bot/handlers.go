package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// handleMessage routes one incoming message. Commands and main-menu
// buttons always win: they abort any wizard in progress and are acted
// on as the menu action they name, so user input is never swallowed by
// a stale conversation.
func (b *Bot) handleMessage(message *tgbotapi.Message) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("panic in message handler",
				zap.Any("panic", r),
				zap.Int64("chat_id", message.Chat.ID))
			b.sendText(message.Chat.ID, "Kuch galat ho gaya, phir se try karein 🙏")
		}
	}()

	if message.From == nil {
		return
	}
	s := b.getSession(message.From.ID)

	if message.IsCommand() {
		s.reset()
		b.handleCommand(message)
		return
	}

	if isMenuToken(message.Text) {
		s.reset()
		b.handleMenu(message, s)
		return
	}

	switch s.mode {
	case modeQA:
		b.handleQuestion(message)
	case modeLanding:
		b.handleLandingInput(message, s)
	case modePost:
		b.handlePostInput(message, s)
	default:
		b.sendMarkdown(message.Chat.ID,
			"Aap *"+menuQA+"* select karke sawal pooch sakte hain 🙂",
			b.mainKeyboard())
	}
}
