package wizard

import "strings"

// PostStep enumerates the post wizard's chain: IMAGE → CAPTION_OR_LINK.
type PostStep int

const (
	PostImage PostStep = iota
	PostLink
	PostDone
)

// PostDraft is the post wizard's field set.
type PostDraft struct {
	Photo Photo
	Link  string
}

// Post collects an image and a contact/link line for a CTA post.
type Post struct {
	step  PostStep
	draft PostDraft
}

// NewPost starts a fresh post wizard.
func NewPost() *Post {
	return &Post{}
}

// Step returns the current step.
func (w *Post) Step() PostStep { return w.step }

// Draft returns the collected fields, valid once Advance reported Done.
func (w *Post) Draft() PostDraft { return w.draft }

// Prompt returns the question for the current step.
func (w *Post) Prompt() string {
	switch w.step {
	case PostImage:
		return "🖼️ Send *an image/photo* for the post. Then send *phone/email/website/link*."
	case PostLink:
		return "Great! Ab *phone/email/website/link* bhejein (ek line me)."
	default:
		return ""
	}
}

// Advance feeds one user turn into the wizard.
func (w *Post) Advance(in Input) Result {
	switch w.step {
	case PostImage:
		if in.Photo == nil {
			return Result{Prompt: "Please send a *photo* (image) first.", Invalid: true}
		}
		w.draft.Photo = *in.Photo

	case PostLink:
		link := strings.TrimSpace(in.Text)
		if in.Photo != nil || link == "" {
			return Result{Prompt: "Ek line me *phone/email/website/link* bhejein.", Invalid: true}
		}
		w.draft.Link = link
		w.step = PostDone
		return Result{Done: true}

	case PostDone:
		return Result{Done: true}
	}

	w.step++
	return Result{Prompt: w.Prompt()}
}
