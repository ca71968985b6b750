// Package wizard implements the multi-step input-collection flows as
// pure state machines. The Telegram layer feeds Inputs in and sends the
// returned prompts out; nothing here touches the transport.
package wizard

import "strings"

// SkipSentinel advances an optional step with its documented default.
const SkipSentinel = "skip"

// Documented defaults substituted for skipped or missing fields.
const (
	DefaultTitle       = "Your Brand"
	DefaultSubheading  = "We build results, not just pages."
	DefaultDescription = "Done-for-you creative, IT & marketing solutions."
	DefaultNiche       = "marketing"
	// PlaceholderLogoPath is used when no logo was supplied at all.
	PlaceholderLogoPath = "logo.jpg"
)

// Photo is an uploaded image normalized for embedding: the transport's
// file handle plus the downloaded bytes and MIME type.
type Photo struct {
	FileID string
	Data   []byte
	MIME   string
}

// Input is one user turn handed to a wizard step: free text, an uploaded
// photo, or both absent (e.g. a sticker), which no step accepts.
type Input struct {
	Text  string
	Photo *Photo
}

// Result reports the outcome of feeding an Input to a wizard.
//
// Invalid means the step rejected the input and stayed put; Prompt then
// carries the corrective hint. Otherwise Prompt is the next step's
// question, and Done marks the terminal state (render exactly once,
// then discard the wizard).
type Result struct {
	Prompt  string
	Invalid bool
	Done    bool
}

func isSkip(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), SkipSentinel)
}

func isHTTPURL(text string) bool {
	return strings.HasPrefix(text, "http://") || strings.HasPrefix(text, "https://")
}
