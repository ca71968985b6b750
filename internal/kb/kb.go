package kb

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxSuggestions caps the follow-up list shown after every answer.
const MaxSuggestions = 6

// Entry is one human-authored knowledge-base rule: a topic, the patterns
// that select it, the canned answer and optional follow-up suggestions.
type Entry struct {
	Topic       string
	Patterns    []string
	Answer      string
	Suggestions []string
}

// Response is what Compose returns for a matched topic.
type Response struct {
	Body        string
	Suggestions []string
}

type rule struct {
	topic       string
	patterns    []*regexp.Regexp
	answer      string
	suggestions []string
}

// Table is the compiled, immutable rule set. Rules are evaluated in
// declaration order and the first rule with any matching pattern wins,
// so reordering entries is a behavioral change, not a refactor.
type Table struct {
	rules       []rule
	byTopic     map[string]int
	text        string
	defaultSugg []string
}

// New compiles and validates the rule set. Topics must be unique and
// non-empty, every entry needs at least one pattern and a non-empty
// answer, and every pattern must compile. Validation happens once here;
// a malformed table must refuse to serve traffic, not fail per request.
func New(entries []Entry, text string, defaultSuggestions []string) (*Table, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("kb: empty rule set")
	}
	if len(defaultSuggestions) == 0 {
		return nil, fmt.Errorf("kb: default suggestions must not be empty")
	}

	t := &Table{
		rules:       make([]rule, 0, len(entries)),
		byTopic:     make(map[string]int, len(entries)),
		text:        text,
		defaultSugg: defaultSuggestions,
	}

	for i, e := range entries {
		if e.Topic == "" {
			return nil, fmt.Errorf("kb: entry %d has empty topic", i)
		}
		if _, dup := t.byTopic[e.Topic]; dup {
			return nil, fmt.Errorf("kb: duplicate topic %q", e.Topic)
		}
		if len(e.Patterns) == 0 {
			return nil, fmt.Errorf("kb: topic %q has no patterns", e.Topic)
		}
		if strings.TrimSpace(e.Answer) == "" {
			return nil, fmt.Errorf("kb: topic %q has empty answer", e.Topic)
		}

		r := rule{
			topic:       e.Topic,
			answer:      e.Answer,
			suggestions: e.Suggestions,
		}
		for _, p := range e.Patterns {
			re, err := regexp.Compile("(?i)" + p)
			if err != nil {
				return nil, fmt.Errorf("kb: topic %q pattern %q: %w", e.Topic, p, err)
			}
			r.patterns = append(r.patterns, re)
		}

		t.byTopic[e.Topic] = len(t.rules)
		t.rules = append(t.rules, r)
	}

	return t, nil
}

// Classify returns the topic of the first rule with any pattern matching
// the lower-cased input, or ok=false when nothing matches. Deterministic
// and pure: same input and table always give the same topic.
//
// Declaration order is the tie-break: when two topics could both match,
// the earlier one wins. This is a deliberate coarseness carried over
// from the rule-set authors, not a relevance ranking.
func (t *Table) Classify(text string) (topic string, ok bool) {
	q := strings.ToLower(strings.TrimSpace(text))
	if q == "" {
		return "", false
	}
	for _, r := range t.rules {
		for _, re := range r.patterns {
			if re.MatchString(q) {
				return r.topic, true
			}
		}
	}
	return "", false
}

// Compose looks up the canned answer for a matched topic. The topic must
// come from a successful Classify on the same table; an unknown topic is
// a programming error and is reported as such.
//
// Suggestions are truncated to MaxSuggestions, and an entry with no
// suggestions gets the table-wide default list: the user is never shown
// zero follow-ups.
func (t *Table) Compose(topic string) (Response, error) {
	i, ok := t.byTopic[topic]
	if !ok {
		return Response{}, fmt.Errorf("kb: unknown topic %q", topic)
	}
	r := t.rules[i]

	sugg := r.suggestions
	if len(sugg) == 0 {
		sugg = t.defaultSugg
	}
	if len(sugg) > MaxSuggestions {
		sugg = sugg[:MaxSuggestions]
	}

	out := Response{Body: r.answer}
	out.Suggestions = append(out.Suggestions, sugg...)
	return out, nil
}

// Text returns the raw knowledge text used as grounding context for the
// generative fallback.
func (t *Table) Text() string {
	return t.text
}

// Topics returns all topics in declaration order.
func (t *Table) Topics() []string {
	topics := make([]string, len(t.rules))
	for i, r := range t.rules {
		topics[i] = r.topic
	}
	return topics
}
