package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Unreala9/metabot/internal/models"
	"github.com/Unreala9/metabot/internal/wizard"
)

const (
	menuStart   = "🔄 Start"
	menuQA      = "❓ Q/A"
	menuPost    = "🖼️ Create a Post"
	menuLanding = "🌐 Create a Landing Page"
	menuDemos   = "🧪 Service Demos"
	menuFollow  = "🌟 Follow Us"
	menuCancel  = "⛔ Cancel"
)

var defaultDemos = []models.NamedLink{
	{Name: "Websites (Samples)", URL: "https://metabulluniverse.com"},
	{Name: "Showreel (Drive)", URL: "https://drive.google.com/drive/folders/metabull-showreel"},
	{Name: "Ads Portfolio", URL: "https://metabulluniverse.com/portfolio"},
	{Name: "YouTube Playlist", URL: "https://www.youtube.com/@metabulluniverse"},
}

func isMenuToken(text string) bool {
	switch text {
	case menuStart, menuQA, menuPost, menuLanding, menuDemos, menuFollow, menuCancel:
		return true
	}
	return false
}

func (b *Bot) mainKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuStart),
			tgbotapi.NewKeyboardButton(menuQA),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuPost),
			tgbotapi.NewKeyboardButton(menuLanding),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuDemos),
			tgbotapi.NewKeyboardButton(menuFollow),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuCancel),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

// handleMenu acts on a main-menu button. The caller has already reset
// the session, so every entry starts from a clean slate.
func (b *Bot) handleMenu(message *tgbotapi.Message, s *session) {
	chatID := message.Chat.ID
	switch message.Text {
	case menuStart:
		b.sendMarkdown(chatID, welcomeText(message.From), b.mainKeyboard())
	case menuQA:
		s.mode = modeQA
		b.sendMarkdown(chatID,
			"Apna sawal bhejein (Hinglish chalega) 🙂\nJaise: _website ka price kya hai?_",
			b.mainKeyboard())
	case menuPost:
		s.mode = modePost
		s.post = wizard.NewPost()
		b.sendText(chatID, s.post.Prompt())
	case menuLanding:
		s.mode = modeLanding
		s.landing = wizard.NewLanding(b.defaultCTA)
		b.sendText(chatID, s.landing.Prompt())
	case menuDemos:
		b.sendLinks(chatID, "🧪 *Service Demos*", b.demoLinks())
	case menuFollow:
		b.sendLinks(chatID, "🌟 *Follow Metabull Universe*", b.follow)
	case menuCancel:
		b.sendMarkdown(chatID, "Ok, sab cancel ho gaya. ✅", b.mainKeyboard())
	}
	b.record(message.From, message.Text, "menu:"+message.Text)
}

// sendLinks renders a named-link list as one inline URL button per row.
func (b *Bot) sendLinks(chatID int64, title string, links []models.NamedLink) {
	if len(links) == 0 {
		b.sendMarkdown(chatID, title+"\n\n_Abhi koi link available nahi hai._", nil)
		return
	}
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(links))
	for _, l := range links {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(l.Name, l.URL)))
	}
	b.sendMarkdown(chatID, title, tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (b *Bot) demoLinks() []models.NamedLink {
	b.demosMu.RLock()
	defer b.demosMu.RUnlock()
	return append([]models.NamedLink(nil), b.demos...)
}

func welcomeText(from *tgbotapi.User) string {
	name := "dost"
	if from != nil && from.FirstName != "" {
		name = from.FirstName
	}
	var sb strings.Builder
	sb.WriteString("Namaste " + name + "! 🙏 Main *Metabull Universe* ka assistant hoon.\n\n")
	sb.WriteString("Main aapki help kar sakta hoon:\n")
	sb.WriteString("• " + menuQA + " — services, pricing, contact ke sawal\n")
	sb.WriteString("• " + menuPost + " — ready-to-share promo post\n")
	sb.WriteString("• " + menuLanding + " — ek-page landing site (HTML)\n")
	sb.WriteString("• " + menuDemos + " — kaam ke samples\n\n")
	sb.WriteString("Neeche ke buttons se shuru karein 👇")
	return sb.String()
}
