package bot

import (
	"io"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Unreala9/metabot/internal/render"
	"github.com/Unreala9/metabot/internal/wizard"
)

const maxLogoDownload = 5 << 20

// handleLandingInput feeds one user turn into the landing-page wizard
// and, on completion, renders and ships the HTML page plus a QR code
// for its CTA link.
func (b *Bot) handleLandingInput(message *tgbotapi.Message, s *session) {
	if s.landing == nil {
		s.reset()
		b.sendMarkdown(message.Chat.ID, "Session reset ho gaya — *"+menuLanding+"* se dubara shuru karein.", b.mainKeyboard())
		return
	}

	in := wizard.Input{Text: message.Text}
	if p := b.photoFromMessage(message, s.landing.Step() == wizard.LandingLogo); p != nil {
		in.Photo = p
	}

	res := s.landing.Advance(in)
	if !res.Done {
		b.sendText(message.Chat.ID, res.Prompt)
		return
	}

	draft := s.landing.Draft()
	s.reset()
	b.deliverLanding(message, draft)
}

func (b *Bot) deliverLanding(message *tgbotapi.Message, draft wizard.LandingDraft) {
	chatID := message.Chat.ID

	page, err := render.LandingPage(draft)
	if err != nil {
		b.logger.Error("landing render failed", zap.Error(err))
		b.sendMarkdown(chatID, "Page generate nahi ho paya 😔 *"+menuLanding+"* se dubara try karein.", b.mainKeyboard())
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  render.FileName(draft.Title),
		Bytes: page,
	})
	doc.Caption = "🌐 Landing page ready ✅ — HTML file attach hai."
	b.send(doc)

	if png, err := render.CTAQR(draft.CTALink); err != nil {
		b.logger.Warn("qr generation failed", zap.Error(err))
	} else {
		qr := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "cta_qr.png", Bytes: png})
		qr.Caption = "📲 Scan karo — CTA link khul jayega."
		b.send(qr)
	}

	b.sendMarkdown(chatID, "All set! Aur kuch chahiye to menu se select karein 👇", b.mainKeyboard())
	b.record(message.From, "[landing wizard completed]", "landing:"+draft.Title)
}

// handlePostInput feeds one user turn into the post wizard and, on
// completion, ships the promo post with CTA buttons.
func (b *Bot) handlePostInput(message *tgbotapi.Message, s *session) {
	if s.post == nil {
		s.reset()
		b.sendMarkdown(message.Chat.ID, "Session reset ho gaya — *"+menuPost+"* se dubara shuru karein.", b.mainKeyboard())
		return
	}

	in := wizard.Input{Text: message.Text}
	if p := b.photoFromMessage(message, false); p != nil {
		in.Photo = p
	}

	res := s.post.Advance(in)
	if !res.Done {
		b.sendText(message.Chat.ID, res.Prompt)
		return
	}

	draft := s.post.Draft()
	s.reset()
	b.deliverPost(message, draft)
}

func (b *Bot) deliverPost(message *tgbotapi.Message, draft wizard.PostDraft) {
	chatID := message.Chat.ID

	post := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(draft.Photo.FileID))
	post.Caption = render.PostCaption()
	post.ParseMode = tgbotapi.ModeMarkdown

	buttons := render.CTAButtons(draft.Link)
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(buttons))
	for _, btn := range buttons {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(btn.Label, btn.Target)))
	}
	if len(rows) > 0 {
		post.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	}
	b.send(post)

	b.sendMarkdown(chatID, "🖼️ Post ready ✅ — forward karke share kar sakte hain.", b.mainKeyboard())
	b.record(message.From, "[post wizard completed]", "post:"+draft.Link)
}

// photoFromMessage extracts the largest photo size from a message. The
// bytes are fetched from Telegram only when the caller needs them (the
// landing logo embeds them into the page); the post flow re-sends by
// file ID and never downloads.
func (b *Bot) photoFromMessage(message *tgbotapi.Message, wantBytes bool) *wizard.Photo {
	if len(message.Photo) == 0 {
		return nil
	}
	size := message.Photo[len(message.Photo)-1]
	p := &wizard.Photo{FileID: size.FileID}

	if !wantBytes || b.api == nil {
		return p
	}

	url, err := b.api.GetFileDirectURL(size.FileID)
	if err != nil {
		b.logger.Warn("failed to resolve photo url", zap.Error(err))
		return p
	}

	client := &http.Client{Timeout: 20 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		b.logger.Warn("failed to download photo", zap.Error(err))
		return p
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxLogoDownload))
	if err != nil || len(data) == 0 {
		b.logger.Warn("failed to read photo body", zap.Error(err))
		return p
	}

	p.Data = data
	p.MIME = http.DetectContentType(data)
	return p
}
