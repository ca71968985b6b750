package render

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Unreala9/metabot/internal/wizard"
)

func fullDraft() wizard.LandingDraft {
	return wizard.LandingDraft{
		Title:       "Metabull <Studio>",
		Logo:        wizard.LogoRef{URL: "https://example.com/logo.png"},
		Subheading:  "Results > promises",
		Description: "We build & ship fast",
		Theme:       wizard.DefaultColorTheme,
		Niche:       "marketing",
		CTALink:     "https://wa.me/918982285510",
	}
}

func TestLandingPage_EscapesUserText(t *testing.T) {
	out, err := LandingPage(fullDraft())
	require.NoError(t, err)
	html := string(out)

	// Escaped versions of every user-supplied field appear verbatim.
	assert.Contains(t, html, "Metabull &lt;Studio&gt;")
	assert.Contains(t, html, "Results &gt; promises")
	assert.Contains(t, html, "We build &amp; ship fast")

	// No unescaped angle brackets from user input survive.
	assert.NotContains(t, html, "<Studio>")
	assert.NotContains(t, html, "<script>alert")
}

func TestLandingPage_LogoVariants(t *testing.T) {
	// URL logo is substituted directly.
	draft := fullDraft()
	out, err := LandingPage(draft)
	require.NoError(t, err)
	assert.Contains(t, string(out), `src="https://example.com/logo.png"`)

	// Uploaded logo is embedded as a data URI, so the document is
	// self-contained.
	raw := []byte{0x89, 0x50, 0x4E, 0x47}
	draft.Logo = wizard.LogoRef{Data: raw, MIME: "image/png"}
	out, err = LandingPage(draft)
	require.NoError(t, err)
	assert.Contains(t, string(out), "data:image/png;base64,"+base64.StdEncoding.EncodeToString(raw))

	// Unset logo falls back to the placeholder path.
	draft.Logo = wizard.LogoRef{}
	out, err = LandingPage(draft)
	require.NoError(t, err)
	assert.Contains(t, string(out), `src="logo.jpg"`)
}

func TestLandingPage_LogoQueryStringEscapedOnce(t *testing.T) {
	draft := fullDraft()
	draft.Logo = wizard.LogoRef{URL: "https://example.com/logo.png?a=1&b=2"}

	out, err := LandingPage(draft)
	require.NoError(t, err)
	html := string(out)

	// The template engine escapes the attribute value exactly once;
	// escaping the URL before handing it over would mangle the query
	// string into &amp;amp; and break the fetch.
	assert.Contains(t, html, `src="https://example.com/logo.png?a=1&amp;b=2"`)
	assert.NotContains(t, html, "&amp;amp;")
}

func TestLandingPage_Defaults(t *testing.T) {
	out, err := LandingPage(wizard.LandingDraft{})
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, wizard.DefaultTitle)
	assert.Contains(t, html, wizard.DefaultSubheading)
	assert.Contains(t, html, "Done-for-you creative, IT &amp; marketing solutions.")
	assert.Contains(t, html, wizard.DefaultColorTheme.Primary)
	assert.Contains(t, html, wizard.DefaultNiche+", MetaBull Universe")
}

func TestFileName(t *testing.T) {
	testCases := []struct {
		title string
		want  string
	}{
		{"Metabull Studio", "Metabull_Studio.html"},
		{"a/b\\c?", "a_b_c_.html"},
		{"ok-name_1", "ok-name_1.html"},
		{"", "Your_Brand.html"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, FileName(tc.title))
	}
}

func TestCTAButtons_Cascade(t *testing.T) {
	testCases := []struct {
		name string
		link string
		want []Button
	}{
		{
			name: "url",
			link: "https://example.com",
			want: []Button{{Label: "🌐 Visit Link", Target: "https://example.com"}},
		},
		{
			name: "phone gets call plus whatsapp",
			link: "+919876543210",
			want: []Button{
				{Label: "📞 Call Now", Target: "tel:+919876543210"},
				{Label: "💬 WhatsApp", Target: "https://wa.me/919876543210"},
			},
		},
		{
			name: "email",
			link: "sales@example.com",
			want: []Button{{Label: "✉️ Send Email", Target: "mailto:sales@example.com"}},
		},
		{
			name: "bare domain gets scheme prepended",
			link: "example.com",
			want: []Button{{Label: "🔗 Open", Target: "https://example.com"}},
		},
		{
			name: "digits with at-sign classify as email, not phone",
			link: "12345678@例",
			want: []Button{{Label: "✉️ Send Email", Target: "mailto:12345678@例"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CTAButtons(tc.link))
		})
	}
}

func TestPostCaption(t *testing.T) {
	caption := PostCaption()
	assert.Contains(t, caption, "MetaBull Universe")
	assert.NotEmpty(t, caption)
}

func TestCTAQR(t *testing.T) {
	png, err := CTAQR("https://wa.me/918982285510")
	require.NoError(t, err)
	// PNG magic bytes.
	require.True(t, len(png) > 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
