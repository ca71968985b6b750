package wizard

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// LandingStep enumerates the landing-page wizard's linear chain.
type LandingStep int

const (
	LandingName LandingStep = iota
	LandingLogo
	LandingSubheading
	LandingDescription
	LandingColorTheme
	LandingNicheCTA
	LandingDone
)

// LogoRef is the logo field's three-way state: a remote URL, uploaded
// image bytes, or unset (renderer substitutes the placeholder path).
type LogoRef struct {
	URL  string
	Data []byte
	MIME string
}

// IsSet reports whether any logo was supplied.
func (l LogoRef) IsSet() bool {
	return l.URL != "" || len(l.Data) > 0
}

// ColorTheme is the structured color record collected by the wizard.
type ColorTheme struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
	Light     string `json:"light"`
}

// DefaultColorTheme is substituted when the user skips the theme step.
var DefaultColorTheme = ColorTheme{
	Primary:   "#1d4ed8",
	Secondary: "#15803d",
	Accent:    "#000000",
	Light:     "#111827",
}

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// ParseColorTheme parses the user-supplied theme JSON. Primary,
// secondary and accent are required; light falls back to the default.
// Every supplied slot must be a hex color — a broken theme would
// visibly corrupt the rendered page, so this step never defaults
// silently on bad input.
func ParseColorTheme(raw string) (ColorTheme, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.Trim(cleaned, "`")
	cleaned = strings.TrimSpace(cleaned)

	var theme ColorTheme
	if err := json.Unmarshal([]byte(cleaned), &theme); err != nil {
		return ColorTheme{}, fmt.Errorf("wizard: theme is not valid JSON: %w", err)
	}

	required := map[string]string{
		"primary":   theme.Primary,
		"secondary": theme.Secondary,
		"accent":    theme.Accent,
	}
	for name, value := range required {
		if value == "" {
			return ColorTheme{}, fmt.Errorf("wizard: theme is missing %q", name)
		}
	}
	if theme.Light == "" {
		theme.Light = DefaultColorTheme.Light
	}

	for name, value := range map[string]string{
		"primary": theme.Primary, "secondary": theme.Secondary,
		"accent": theme.Accent, "light": theme.Light,
	} {
		if !hexColorRe.MatchString(value) {
			return ColorTheme{}, fmt.Errorf("wizard: theme %s %q is not a hex color", name, value)
		}
	}

	return theme, nil
}

// LandingDraft is the landing-page wizard's field set.
type LandingDraft struct {
	Title       string
	Logo        LogoRef
	Subheading  string
	Description string
	Theme       ColorTheme
	Niche       string
	CTALink     string
}

// Landing walks a user through the landing-page fields one at a time:
// NAME → LOGO → SUBHEADING → DESCRIPTION → COLOR_THEME → NICHE_AND_CTA.
type Landing struct {
	step       LandingStep
	draft      LandingDraft
	defaultCTA string
}

// NewLanding starts a fresh landing-page wizard. defaultCTA is used when
// the final step carries no explicit link (the configured WhatsApp link
// in production).
func NewLanding(defaultCTA string) *Landing {
	return &Landing{defaultCTA: defaultCTA}
}

// Step returns the current step.
func (w *Landing) Step() LandingStep { return w.step }

// Draft returns the collected fields. Only valid for rendering once
// Advance has reported Done.
func (w *Landing) Draft() LandingDraft { return w.draft }

const themeExample = `{"primary":"#1d4ed8","secondary":"#15803d","accent":"#000000","light":"#111827"}`

// Prompt returns the question for the current step.
func (w *Landing) Prompt() string {
	switch w.step {
	case LandingName:
		return "🌐 Landing Page: Page ka *name/title* bhejein."
	case LandingLogo:
		return "Logo bhejein: ek *photo* upload karein ya *URL* (https://...) — ya `skip`."
	case LandingSubheading:
		return "*Subheading* bhejein."
	case LandingDescription:
		return "*Description* bhejein (1–3 lines) — ya `skip`."
	case LandingColorTheme:
		return "*Color theme* JSON bhejein (primary, secondary, accent, light). Example:\n`" + themeExample + "`\n— ya `skip`."
	case LandingNicheCTA:
		return "Business/Channel *niche* + *CTA link* bhejein. Example: `marketing https://wa.me/918982285510`"
	default:
		return ""
	}
}

// Advance feeds one user turn into the wizard. Invalid input re-prompts
// the same step and keeps everything collected so far.
func (w *Landing) Advance(in Input) Result {
	switch w.step {
	case LandingName:
		title := strings.TrimSpace(in.Text)
		if in.Photo != nil || title == "" {
			return Result{Prompt: "Pehle page ka *name/title* text me bhejein 🙂", Invalid: true}
		}
		w.draft.Title = title

	case LandingLogo:
		switch {
		case in.Photo != nil:
			w.draft.Logo = LogoRef{Data: in.Photo.Data, MIME: in.Photo.MIME}
		case isSkip(in.Text):
			// Unset logo: renderer substitutes the placeholder path.
			w.draft.Logo = LogoRef{}
		case isHTTPURL(strings.TrimSpace(in.Text)):
			w.draft.Logo = LogoRef{URL: strings.TrimSpace(in.Text)}
		default:
			return Result{Prompt: "Logo ke liye *photo* ya *https://... URL* bhejein — ya `skip`.", Invalid: true}
		}

	case LandingSubheading:
		sub := strings.TrimSpace(in.Text)
		if in.Photo != nil || sub == "" {
			return Result{Prompt: "*Subheading* text me bhejein.", Invalid: true}
		}
		w.draft.Subheading = sub

	case LandingDescription:
		desc := strings.TrimSpace(in.Text)
		if in.Photo != nil || desc == "" {
			return Result{Prompt: "*Description* text me bhejein — ya `skip`.", Invalid: true}
		}
		if isSkip(desc) {
			desc = DefaultDescription
		}
		w.draft.Description = desc

	case LandingColorTheme:
		if isSkip(in.Text) {
			w.draft.Theme = DefaultColorTheme
			break
		}
		theme, err := ParseColorTheme(in.Text)
		if err != nil {
			return Result{
				Prompt:  "Theme samajh nahi aaya 😅 Aise bhejein:\n`" + themeExample + "`\n— ya `skip`.",
				Invalid: true,
			}
		}
		w.draft.Theme = theme

	case LandingNicheCTA:
		fields := strings.Fields(in.Text)
		if in.Photo != nil || len(fields) == 0 {
			return Result{Prompt: "*Niche* (+ optional CTA link) text me bhejein. Example: `marketing https://wa.me/918982285510`", Invalid: true}
		}
		w.draft.Niche = fields[0]
		if last := fields[len(fields)-1]; isHTTPURL(last) {
			w.draft.CTALink = last
		} else {
			w.draft.CTALink = w.defaultCTA
		}
		w.step = LandingDone
		return Result{Done: true}

	case LandingDone:
		// Completed wizards are not resumable.
		return Result{Done: true}
	}

	w.step++
	return Result{Prompt: w.Prompt()}
}
