package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	cbServices = "qa:services"
	cbPrices   = "qa:prices"
	cbLocation = "qa:location"
	cbContact  = "qa:contact"
)

// callbackTopics maps the answer-footer buttons to knowledge-base
// topics, so a tap produces the same answer as typing the question.
var callbackTopics = map[string]string{
	cbServices: "services",
	cbPrices:   "pricing_web",
	cbLocation: "location",
	cbContact:  "contact",
}

func (b *Bot) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("panic in callback handler", zap.Any("panic", r))
		}
	}()

	// Ack first so the button stops spinning even if composing fails.
	if b.api != nil {
		if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
			b.logger.Warn("failed to ack callback", zap.Error(err))
		}
	}

	topic, ok := callbackTopics[query.Data]
	if !ok {
		b.logger.Warn("unknown callback data", zap.String("data", query.Data))
		return
	}
	if query.Message == nil {
		return
	}

	resp, err := b.kb.Compose(topic)
	if err != nil {
		b.logger.Error("compose failed for callback",
			zap.String("topic", topic), zap.Error(err))
		return
	}

	answer := "*Answer (KB):* " + resp.Body + "\n\n" + suggestionsLine(resp.Suggestions)
	b.sendMarkdown(query.Message.Chat.ID, answer, b.qaFooter())
	b.record(query.From, "[button] "+query.Data, answer)
}
