package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCTA = "https://wa.me/918982285510"

func text(s string) Input { return Input{Text: s} }

func photo(id string) Input {
	return Input{Photo: &Photo{FileID: id, Data: []byte{0xFF, 0xD8}, MIME: "image/jpeg"}}
}

func TestLanding_FullWalk(t *testing.T) {
	w := NewLanding(testCTA)
	require.Equal(t, LandingName, w.Step())

	res := w.Advance(text("Metabull Studio"))
	require.False(t, res.Invalid)
	require.Equal(t, LandingLogo, w.Step())

	res = w.Advance(text("https://example.com/logo.png"))
	require.False(t, res.Invalid)
	require.Equal(t, LandingSubheading, w.Step())

	res = w.Advance(text("We build results"))
	require.False(t, res.Invalid)
	require.Equal(t, LandingDescription, w.Step())

	res = w.Advance(text("Creative agency in Bhopal"))
	require.False(t, res.Invalid)
	require.Equal(t, LandingColorTheme, w.Step())

	res = w.Advance(text(`{"primary":"#112233","secondary":"#445566","accent":"#778899","light":"#aabbcc"}`))
	require.False(t, res.Invalid)
	require.Equal(t, LandingNicheCTA, w.Step())

	res = w.Advance(text("marketing https://example.com/contact"))
	require.True(t, res.Done)
	require.Equal(t, LandingDone, w.Step())

	d := w.Draft()
	assert.Equal(t, "Metabull Studio", d.Title)
	assert.Equal(t, "https://example.com/logo.png", d.Logo.URL)
	assert.Equal(t, "We build results", d.Subheading)
	assert.Equal(t, "Creative agency in Bhopal", d.Description)
	assert.Equal(t, "#112233", d.Theme.Primary)
	assert.Equal(t, "marketing", d.Niche)
	assert.Equal(t, "https://example.com/contact", d.CTALink)
}

func TestLanding_InvalidInputKeepsStepAndDraft(t *testing.T) {
	w := NewLanding(testCTA)

	// Photo where text is required: re-prompt, no advance.
	res := w.Advance(photo("p1"))
	assert.True(t, res.Invalid)
	assert.NotEmpty(t, res.Prompt)
	assert.Equal(t, LandingName, w.Step())

	require.False(t, w.Advance(text("Title")).Invalid)

	// Arbitrary text is not a logo; only a photo, URL or skip is.
	res = w.Advance(text("my cool logo"))
	assert.True(t, res.Invalid)
	assert.Equal(t, LandingLogo, w.Step())
	assert.Equal(t, "Title", w.Draft().Title, "previously collected fields survive")
}

func TestLanding_PhotoLogoAccepted(t *testing.T) {
	w := NewLanding(testCTA)
	require.False(t, w.Advance(text("Title")).Invalid)

	res := w.Advance(photo("logo-photo"))
	require.False(t, res.Invalid)
	assert.Equal(t, LandingSubheading, w.Step())

	d := w.Draft()
	assert.True(t, d.Logo.IsSet())
	assert.Empty(t, d.Logo.URL)
	assert.Equal(t, "image/jpeg", d.Logo.MIME)
	assert.NotEmpty(t, d.Logo.Data)
}

func TestLanding_SkipOptionalFields(t *testing.T) {
	w := NewLanding(testCTA)
	require.False(t, w.Advance(text("Title")).Invalid)

	// Skip logo: advances exactly one step, logo stays unset.
	res := w.Advance(text("skip"))
	require.False(t, res.Invalid)
	require.Equal(t, LandingSubheading, w.Step())
	assert.False(t, w.Draft().Logo.IsSet())

	require.False(t, w.Advance(text("Sub")).Invalid)

	// Skip description: documented default substituted.
	res = w.Advance(text("SKIP"))
	require.False(t, res.Invalid)
	require.Equal(t, LandingColorTheme, w.Step())
	assert.Equal(t, DefaultDescription, w.Draft().Description)

	// Skip theme: explicit default, advances.
	res = w.Advance(text("skip"))
	require.False(t, res.Invalid)
	require.Equal(t, LandingNicheCTA, w.Step())
	assert.Equal(t, DefaultColorTheme, w.Draft().Theme)
}

func TestLanding_BadThemeReprompts(t *testing.T) {
	w := NewLanding(testCTA)
	require.False(t, w.Advance(text("Title")).Invalid)
	require.False(t, w.Advance(text("skip")).Invalid)
	require.False(t, w.Advance(text("Sub")).Invalid)
	require.False(t, w.Advance(text("Desc")).Invalid)
	require.Equal(t, LandingColorTheme, w.Step())

	for _, bad := range []string{
		"not json",
		`{"primary":"#123456"}`,
		`{"primary":"red","secondary":"#15803d","accent":"#000000"}`,
	} {
		res := w.Advance(text(bad))
		assert.True(t, res.Invalid, "input %q must re-prompt", bad)
		assert.Contains(t, res.Prompt, "primary", "corrective hint shows an example")
		assert.Equal(t, LandingColorTheme, w.Step())
	}

	// Theme never defaults silently: the draft still has the zero theme.
	assert.Equal(t, ColorTheme{}, w.Draft().Theme)
}

func TestLanding_NicheCTADefaultLink(t *testing.T) {
	w := NewLanding(testCTA)
	require.False(t, w.Advance(text("Title")).Invalid)
	require.False(t, w.Advance(text("skip")).Invalid)
	require.False(t, w.Advance(text("Sub")).Invalid)
	require.False(t, w.Advance(text("Desc")).Invalid)
	require.False(t, w.Advance(text("skip")).Invalid)

	res := w.Advance(text("fitness"))
	require.True(t, res.Done)
	assert.Equal(t, "fitness", w.Draft().Niche)
	assert.Equal(t, testCTA, w.Draft().CTALink, "no http token falls back to the configured CTA")
}

func TestParseColorTheme(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		want    ColorTheme
		wantErr bool
	}{
		{
			name: "full theme",
			raw:  `{"primary":"#1d4ed8","secondary":"#15803d","accent":"#000000","light":"#111827"}`,
			want: DefaultColorTheme,
		},
		{
			name: "backtick fenced",
			raw:  "```{\"primary\":\"#1d4ed8\",\"secondary\":\"#15803d\",\"accent\":\"#000\"}```",
			want: ColorTheme{Primary: "#1d4ed8", Secondary: "#15803d", Accent: "#000", Light: "#111827"},
		},
		{
			name:    "missing accent",
			raw:     `{"primary":"#1d4ed8","secondary":"#15803d"}`,
			wantErr: true,
		},
		{
			name:    "named color rejected",
			raw:     `{"primary":"blue","secondary":"#15803d","accent":"#000000"}`,
			wantErr: true,
		},
		{
			name:    "not json",
			raw:     "primary blue",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseColorTheme(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPost_FullWalk(t *testing.T) {
	w := NewPost()

	// Text where a photo is required: re-prompt.
	res := w.Advance(text("hello"))
	assert.True(t, res.Invalid)
	assert.Equal(t, PostImage, w.Step())

	res = w.Advance(photo("img-1"))
	require.False(t, res.Invalid)
	require.Equal(t, PostLink, w.Step())

	res = w.Advance(text("+919876543210"))
	require.True(t, res.Done)
	assert.Equal(t, "img-1", w.Draft().Photo.FileID)
	assert.Equal(t, "+919876543210", w.Draft().Link)
}
