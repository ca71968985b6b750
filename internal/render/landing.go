// Package render turns filled-in wizard drafts into their final
// artifacts: a self-contained landing-page HTML document, or a captioned
// post with CTA buttons.
package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"strings"

	"github.com/Unreala9/metabot/internal/wizard"
)

type landingData struct {
	Title       string
	Heading     string
	Subheading  string
	Description string
	Keywords    string
	Logo        template.URL
	Primary     string
	Secondary   string
	Accent      string
	Light       string
	CTALink     string
}

// LandingPage renders the draft into a single HTML document. User text
// is escaped by html/template, so no raw markup from the user reaches
// the page. An uploaded logo is embedded as a data URI so the document
// has no external dependency on it; a URL logo is substituted directly;
// an unset logo falls back to the placeholder path.
func LandingPage(draft wizard.LandingDraft) ([]byte, error) {
	data := landingData{
		Title:       orDefault(draft.Title, wizard.DefaultTitle),
		Subheading:  orDefault(draft.Subheading, wizard.DefaultSubheading),
		Description: orDefault(draft.Description, wizard.DefaultDescription),
		CTALink:     orDefault(draft.CTALink, "#"),
	}
	data.Heading = data.Title

	theme := draft.Theme
	if theme == (wizard.ColorTheme{}) {
		theme = wizard.DefaultColorTheme
	}
	data.Primary = theme.Primary
	data.Secondary = theme.Secondary
	data.Accent = theme.Accent
	data.Light = theme.Light

	niche := orDefault(draft.Niche, wizard.DefaultNiche)
	data.Keywords = fmt.Sprintf("%s, MetaBull Universe, %s, services, pricing, contact", niche, data.Title)

	data.Logo = logoURL(draft.Logo)

	var buf bytes.Buffer
	if err := landingTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render: landing page: %w", err)
	}
	return buf.Bytes(), nil
}

// logoURL resolves the three-way logo union. The data-URI branch is
// built entirely from bytes we base64-encode ourselves, which is why it
// is safe to mark as a trusted URL.
func logoURL(logo wizard.LogoRef) template.URL {
	switch {
	case len(logo.Data) > 0:
		mime := logo.MIME
		if mime == "" {
			mime = "image/jpeg"
		}
		return template.URL("data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(logo.Data))
	case strings.HasPrefix(logo.URL, "http://"), strings.HasPrefix(logo.URL, "https://"):
		// The template engine escapes the attribute value; escaping here
		// too would mangle query strings into &amp;amp;.
		return template.URL(logo.URL)
	default:
		return template.URL(wizard.PlaceholderLogoPath)
	}
}

// FileName derives a safe attachment name from the page title: anything
// outside [A-Za-z0-9_-] becomes an underscore.
func FileName(title string) string {
	title = orDefault(strings.TrimSpace(title), wizard.DefaultTitle)
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String() + ".html"
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

var landingTmpl = template.Must(template.New("landing").Parse(`<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>{{.Title}}</title>
    <meta name="description" content="{{.Description}}" />
    <meta name="keywords" content="{{.Keywords}}" />
    <meta name="author" content="{{.Title}}" />
    <meta name="robots" content="index, follow" />
    <link rel="icon" href="{{.Logo}}" type="image/jpeg" />
    <link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.4.0/css/all.min.css"/>
    <script src="https://cdn.tailwindcss.com"></script>
    <script>
      tailwind.config = {
        theme: {
          extend: {
            colors: {
              primary: "{{.Primary}}",
              secondary: "{{.Secondary}}",
              accent: "{{.Accent}}",
              light: "{{.Light}}"
            },
            fontFamily: { sans: ['"Inter"', "system-ui", "sans-serif"] },
            keyframes: {
              fadeInUp: {
                "0%": { opacity: "0", transform: "translateY(30px)" },
                "100%": { opacity: "1", transform: "translateY(0)" },
              },
              zoomIn: {
                "0%": { opacity: "0", transform: "scale(0.8)" },
                "100%": { opacity: "1", transform: "scale(1)" },
              },
              fadeInBody: {
                from: { opacity: "0" },
                to: { opacity: "1" },
              },
            },
            animation: {
              fadeInUp: "fadeInUp 1s ease forwards",
              zoomIn: "zoomIn 1s ease forwards",
              fadeInBody: "fadeInBody 1s ease-in",
            },
          },
        },
      };
    </script>
    <style>
      body {
        background: linear-gradient(120deg, #e0f2fe 0%, #dbeafe 100%);
        min-height: 100vh;
        display: flex;
        justify-content: center;
        align-items: start;
      }
      .whatsapp-btn { transition: all 0.3s ease; }
      .whatsapp-btn:hover {
        transform: translateY(-3px);
        box-shadow: 0 10px 25px rgba(30, 64, 175, 0.3), 0 5px 10px rgba(14, 165, 233, 0.2);
      }
    </style>
  </head>
  <body class="bg-white text-slate-800 font-sans min-h-screen flex justify-center items-start">
    <div class="w-full max-w-7xl p-4 mx-auto">
      <section class="text-center p-2">
        <img src="{{.Logo}}" alt="{{.Title}}" class="w-4/5 max-w-[300px] rounded-xl mx-auto mb-5" />
        <h1 class="text-3xl md:text-4xl mb-4 font-extrabold bg-gradient-to-r from-primary to-secondary bg-clip-text text-transparent">
          {{.Heading}}
        </h1>
        <h2 class="text-lg md:text-xl opacity-80 mb-4">{{.Subheading}}</h2>
        <p class="text-base leading-relaxed max-w-[700px] mx-auto mb-6">
          {{.Description}}
        </p>
        <div class="flex flex-col md:flex-row justify-center gap-3">
          <a href="{{.CTALink}}" class="whatsapp-btn bg-gradient-to-r from-primary to-secondary text-white py-3 px-6 rounded-full font-bold inline-flex items-center justify-center gap-2">
            <i class="fa-solid fa-bolt"></i> Get Started
          </a>
          <a href="tel:+918982285510" class="whatsapp-btn bg-white border border-slate-200 text-slate-800 py-3 px-6 rounded-full font-semibold inline-flex items-center justify-center gap-2">
            <i class="fa-solid fa-phone"></i> Call Sales
          </a>
        </div>
        <p class="text-[12px] leading-relaxed max-w-[650px] mx-auto mt-4 opacity-70">Disclaimer: Information is for educational &amp; marketing purposes only.</p>
      </section>
    </div>
  </body>
</html>
`))
