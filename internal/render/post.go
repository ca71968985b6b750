package render

import (
	"regexp"
	"strings"
)

// Button is one CTA button descriptor: a label and a target URI the
// transport turns into an inline URL button.
type Button struct {
	Label  string
	Target string
}

var phoneRe = regexp.MustCompile(`^\+?\d{8,}$`)

// CTAButtons classifies a free-text contact/link line into CTA buttons
// via an ordered cascade. The order is part of the contract:
//
//  1. "http" prefix        → Visit Link
//  2. international phone  → Call Now + secondary WhatsApp button
//  3. contains "@"         → Send Email (mailto:)
//  4. anything else        → Open, with "https://" prepended
//
// A long digit string containing "@" cannot hit the phone branch (its
// pattern admits digits only), so it lands on email — swapping steps 2
// and 3 would change that, which is why the order is fixed.
func CTAButtons(link string) []Button {
	link = strings.TrimSpace(link)

	switch {
	case strings.HasPrefix(link, "http"):
		return []Button{{Label: "🌐 Visit Link", Target: link}}
	case phoneRe.MatchString(link):
		return []Button{
			{Label: "📞 Call Now", Target: "tel:" + link},
			{Label: "💬 WhatsApp", Target: "https://wa.me/" + strings.TrimPrefix(link, "+")},
		}
	case strings.Contains(link, "@"):
		return []Button{{Label: "✉️ Send Email", Target: "mailto:" + link}}
	default:
		return []Button{{Label: "🔗 Open", Target: "https://" + link}}
	}
}

// PostCaption is the fixed caption attached to every generated post.
func PostCaption() string {
	return "✨ *MetaBull Universe* — Creative + IT + Marketing\n" +
		"Fast delivery • Affordable pricing • Proven results.\n\n" +
		"Need this service? Tap the buttons below 👇"
}
