package bot

import (
	"context"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const askTimeout = 30 * time.Second

var defaultSuggestions = []string{"Services?", "Pricing?", "Contact?"}

// handleQuestion runs the three-stage answer pipeline: knowledge-base
// match, generative fallback, canned apology. Every exchange is
// recorded to the audit sinks.
func (b *Bot) handleQuestion(message *tgbotapi.Message) {
	question := strings.TrimSpace(message.Text)
	if question == "" {
		b.sendText(message.Chat.ID, "Apna sawal text me bhejein 🙂")
		return
	}

	b.sendTyping(message.Chat.ID)
	answer := b.answerQuestion(context.Background(), question)
	b.sendMarkdown(message.Chat.ID, answer, b.qaFooter())
	b.record(message.From, question, answer)
}

func (b *Bot) answerQuestion(ctx context.Context, question string) string {
	if topic, ok := b.kb.Classify(question); ok {
		resp, err := b.kb.Compose(topic)
		if err != nil {
			b.logger.Error("compose failed for classified topic",
				zap.String("topic", topic), zap.Error(err))
			return apologyText()
		}
		return "*Answer (KB):* " + resp.Body + "\n\n" + suggestionsLine(resp.Suggestions)
	}
	return b.fallbackAnswer(ctx, question)
}

func (b *Bot) fallbackAnswer(ctx context.Context, question string) string {
	if b.asker == nil {
		return "Yeh question KB me nahi mil raha. (Tip: GEMINI_API_KEY set karoge to AI fallback enable ho jayega.)\n\n" +
			suggestionsLine(defaultSuggestions)
	}

	ctx, cancel := context.WithTimeout(ctx, askTimeout)
	defer cancel()

	answer, err := b.asker.Ask(ctx, fallbackPrompt(b.kb.Text(), question))
	if err != nil {
		b.logger.Warn("fallback ask failed", zap.Error(err))
		return apologyText()
	}
	return "*Answer (Gemini):* " + answer + "\n\n" + suggestionsLine(defaultSuggestions)
}

func fallbackPrompt(kbText, question string) string {
	var sb strings.Builder
	sb.WriteString("You are the assistant for Metabull Universe. Use the provided KB if relevant. ")
	sb.WriteString("If outside the KB, answer briefly and helpfully. ")
	sb.WriteString("Tone: short, friendly, Hinglish. Do not fabricate facts.\n\n")
	sb.WriteString("--- KB ---\n")
	sb.WriteString(kbText)
	sb.WriteString("\n\nUser Question: ")
	sb.WriteString(question)
	sb.WriteString("\n\nShort helpful answer:")
	return sb.String()
}

func suggestionsLine(suggestions []string) string {
	return "💡 *Try asking:* " + strings.Join(suggestions, " | ")
}

func apologyText() string {
	return "Mujhe thoda unclear laga — please question dubara likho 🙂\n\n" +
		suggestionsLine(defaultSuggestions)
}

// qaFooter is the quick-action inline keyboard appended to every
// answer. Phone and email live behind the Contact callback because
// Telegram rejects tel:/mailto: URLs in inline buttons; WhatsApp gets
// a real link button.
func (b *Bot) qaFooter() tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🛠 Services", cbServices),
			tgbotapi.NewInlineKeyboardButtonData("💰 Prices", cbPrices),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📍 Location", cbLocation),
			tgbotapi.NewInlineKeyboardButtonData("☎️ Contact", cbContact),
		),
	}
	if b.defaultCTA != "" {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🟢 WhatsApp", b.defaultCTA)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
