package models

import "time"

// AuditEvent is one question/answer/event tuple recorded for every
// user interaction.
type AuditEvent struct {
	Time   time.Time
	User   string
	Input  string
	Output string
}

// NamedLink is a labeled URL, used for the Service Demos and Follow Us
// menus.
type NamedLink struct {
	Name string
	URL  string
}
