package bot

import (
	"context"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Unreala9/metabot/internal/models"
)

const recordTimeout = 15 * time.Second

// record ships one exchange to the audit sinks. Fire-and-forget: the
// user's reply never waits on Sheets or ClickHouse, and sink failures
// are the recorder's problem to log.
func (b *Bot) record(from *tgbotapi.User, input, output string) {
	ev := models.AuditEvent{
		Time:   time.Now().UTC(),
		User:   userLabel(from),
		Input:  input,
		Output: output,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		b.recorder.Record(ctx, ev)
	}()
}

func userLabel(from *tgbotapi.User) string {
	if from == nil {
		return "unknown"
	}
	name := strings.TrimSpace(from.FirstName + " " + from.LastName)
	if name == "" {
		name = "unknown"
	}
	if from.UserName != "" {
		name += " (@" + from.UserName + ")"
	}
	return name
}
