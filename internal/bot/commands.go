package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Unreala9/metabot/internal/models"
)

const historyLimit = 20

// handleCommand processes slash commands. The caller has already reset
// the session, so a command issued mid-wizard aborts the draft.
func (b *Bot) handleCommand(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	switch message.Command() {
	case "start":
		b.sendMarkdown(chatID, welcomeText(message.From), b.mainKeyboard())
		b.record(message.From, "/start", "welcome")
	case "cancel":
		b.sendMarkdown(chatID, "Ok, sab cancel ho gaya. ✅", b.mainKeyboard())
		b.record(message.From, "/cancel", "cancelled")
	case "add_demo":
		b.handleAddDemo(message)
	case "remove_demo":
		b.handleRemoveDemo(message)
	case "history":
		b.handleHistory(message)
	default:
		b.sendMarkdown(chatID, "Yeh command samajh nahi aayi. */start* se menu kholein.", b.mainKeyboard())
	}
}

// handleAddDemo adds a demo link: /add_demo <name with spaces> <url>.
// The last field is the URL; everything before it is the display name.
func (b *Bot) handleAddDemo(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if !b.isAdmin(message.From.ID) {
		b.sendText(chatID, "Sorry, yeh admin-only command hai.")
		return
	}

	fields := strings.Fields(message.CommandArguments())
	if len(fields) < 2 || !strings.HasPrefix(fields[len(fields)-1], "http") {
		b.sendMarkdown(chatID, "Usage: `/add_demo <name> <https://url>`", nil)
		return
	}
	link := models.NamedLink{
		Name: strings.Join(fields[:len(fields)-1], " "),
		URL:  fields[len(fields)-1],
	}

	b.demosMu.Lock()
	replaced := false
	for i, d := range b.demos {
		if strings.EqualFold(d.Name, link.Name) {
			b.demos[i] = link
			replaced = true
			break
		}
	}
	if !replaced {
		b.demos = append(b.demos, link)
	}
	b.demosMu.Unlock()

	b.logger.Info("demo link added",
		zap.String("name", link.Name), zap.Int64("admin_id", message.From.ID))
	b.sendMarkdown(chatID, "Demo added ✅ — *"+link.Name+"*", nil)
	b.record(message.From, "/add_demo "+message.CommandArguments(), "demo added: "+link.Name)
}

func (b *Bot) handleRemoveDemo(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if !b.isAdmin(message.From.ID) {
		b.sendText(chatID, "Sorry, yeh admin-only command hai.")
		return
	}

	name := strings.TrimSpace(message.CommandArguments())
	if name == "" {
		b.sendMarkdown(chatID, "Usage: `/remove_demo <name>`", nil)
		return
	}

	b.demosMu.Lock()
	removed := false
	for i, d := range b.demos {
		if strings.EqualFold(d.Name, name) {
			b.demos = append(b.demos[:i], b.demos[i+1:]...)
			removed = true
			break
		}
	}
	b.demosMu.Unlock()

	if !removed {
		b.sendMarkdown(chatID, "Is naam ka demo nahi mila: *"+name+"*", nil)
		return
	}
	b.logger.Info("demo link removed",
		zap.String("name", name), zap.Int64("admin_id", message.From.ID))
	b.sendMarkdown(chatID, "Demo removed ✅ — *"+name+"*", nil)
	b.record(message.From, "/remove_demo "+name, "demo removed: "+name)
}

// handleHistory shows the latest audit events from the mirror,
// newest first.
func (b *Bot) handleHistory(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if !b.isAdmin(message.From.ID) {
		b.sendText(chatID, "Sorry, yeh admin-only command hai.")
		return
	}
	if b.history == nil {
		b.sendText(chatID, "History mirror configured nahi hai.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	events, err := b.history.LastEvents(ctx, historyLimit)
	if err != nil {
		b.logger.Error("failed to read history", zap.Error(err))
		b.sendText(chatID, "History read nahi ho payi, baad me try karein.")
		return
	}
	if len(events) == 0 {
		b.sendText(chatID, "Abhi koi history nahi hai.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🗂 Last %d events:\n\n", len(events)))
	for _, ev := range events {
		sb.WriteString(fmt.Sprintf("%s — %s\n  Q: %s\n  A: %s\n",
			ev.Time.Format("02 Jan 15:04"), ev.User,
			truncate(ev.Input, 80), truncate(ev.Output, 80)))
	}
	b.sendText(chatID, sb.String())
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "…"
}
