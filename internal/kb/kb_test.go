package kb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable(t *testing.T, entries []Entry) *Table {
	t.Helper()
	table, err := New(entries, "kb text", []string{"Services?", "Pricing?", "Contact?"})
	require.NoError(t, err)
	return table
}

func TestNew_Validation(t *testing.T) {
	valid := Entry{Topic: "pricing", Patterns: []string{`\bprice\b`}, Answer: "costs money"}

	testCases := []struct {
		name    string
		entries []Entry
		wantErr string
	}{
		{
			name:    "empty rule set",
			entries: nil,
			wantErr: "empty rule set",
		},
		{
			name:    "empty topic",
			entries: []Entry{{Patterns: []string{`x`}, Answer: "a"}},
			wantErr: "empty topic",
		},
		{
			name:    "duplicate topic",
			entries: []Entry{valid, valid},
			wantErr: "duplicate topic",
		},
		{
			name:    "no patterns",
			entries: []Entry{{Topic: "t", Answer: "a"}},
			wantErr: "no patterns",
		},
		{
			name:    "empty answer",
			entries: []Entry{{Topic: "t", Patterns: []string{`x`}, Answer: "  "}},
			wantErr: "empty answer",
		},
		{
			name:    "bad pattern",
			entries: []Entry{{Topic: "t", Patterns: []string{`(`}, Answer: "a"}},
			wantErr: "pattern",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.entries, "", []string{"s"})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	table := testTable(t, []Entry{
		{Topic: "pricing", Patterns: []string{`\bprice\b`}, Answer: "prices"},
		{Topic: "web", Patterns: []string{`\bsite\b`}, Answer: "sites"},
	})

	// Input matches both rules; the earlier declaration wins.
	topic, ok := table.Classify("what is the price of a site")
	require.True(t, ok)
	assert.Equal(t, "pricing", topic)
}

func TestClassify_PositionIndependence(t *testing.T) {
	// A rule matched in isolation must win no matter how many
	// non-matching rules surround it.
	table := testTable(t, []Entry{
		{Topic: "a", Patterns: []string{`\balpha\b`}, Answer: "a"},
		{Topic: "b", Patterns: []string{`\bbeta\b`}, Answer: "b"},
		{Topic: "c", Patterns: []string{`\bgamma\b`}, Answer: "c"},
		{Topic: "d", Patterns: []string{`\bdelta\b`}, Answer: "d"},
	})

	topic, ok := table.Classify("tell me about gamma rays")
	require.True(t, ok)
	assert.Equal(t, "c", topic)
}

func TestClassify_Deterministic(t *testing.T) {
	table := testTable(t, []Entry{
		{Topic: "pricing", Patterns: []string{`\bprice\b`, `\bcost\b`}, Answer: "prices"},
	})

	for i := 0; i < 10; i++ {
		topic, ok := table.Classify("Price COST price")
		require.True(t, ok)
		assert.Equal(t, "pricing", topic)
	}
}

func TestClassify_NoMatch(t *testing.T) {
	table := testTable(t, []Entry{
		{Topic: "pricing", Patterns: []string{`\bprice\b`}, Answer: "prices"},
	})

	testCases := []string{"", "   ", "completely unrelated question"}
	for _, input := range testCases {
		_, ok := table.Classify(input)
		assert.False(t, ok, "input %q should not match", input)
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	table := testTable(t, []Entry{
		{Topic: "pricing", Patterns: []string{`\bPRICE\b`}, Answer: "prices"},
	})

	topic, ok := table.Classify("What Is The Price?")
	require.True(t, ok)
	assert.Equal(t, "pricing", topic)
}

func TestCompose_SuggestionsBounds(t *testing.T) {
	many := []string{"s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8"}
	table := testTable(t, []Entry{
		{Topic: "bare", Patterns: []string{`\bbare\b`}, Answer: "bare answer"},
		{Topic: "full", Patterns: []string{`\bfull\b`}, Answer: "full answer", Suggestions: many},
	})

	// Entry with no suggestions falls back to the default list: never zero.
	resp, err := table.Compose("bare")
	require.NoError(t, err)
	assert.Equal(t, "bare answer", resp.Body)
	assert.Equal(t, []string{"Services?", "Pricing?", "Contact?"}, resp.Suggestions)

	// Long lists are truncated to the cap.
	resp, err = table.Compose("full")
	require.NoError(t, err)
	assert.Len(t, resp.Suggestions, MaxSuggestions)
	assert.Equal(t, many[:MaxSuggestions], resp.Suggestions)
}

func TestCompose_UnknownTopic(t *testing.T) {
	table := testTable(t, []Entry{
		{Topic: "pricing", Patterns: []string{`\bprice\b`}, Answer: "prices"},
	})

	_, err := table.Compose("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown topic")
}

func TestMetabull_Table(t *testing.T) {
	table, err := Metabull()
	require.NoError(t, err)
	assert.NotEmpty(t, table.Text())

	// Every topic composes to a non-empty body and 1..6 suggestions.
	for _, topic := range table.Topics() {
		resp, err := table.Compose(topic)
		require.NoError(t, err, "topic %s", topic)
		assert.NotEmpty(t, resp.Body, "topic %s", topic)
		assert.GreaterOrEqual(t, len(resp.Suggestions), 1, "topic %s", topic)
		assert.LessOrEqual(t, len(resp.Suggestions), MaxSuggestions, "topic %s", topic)
	}
}

func TestMetabull_Classify(t *testing.T) {
	table, err := Metabull()
	require.NoError(t, err)

	testCases := []struct {
		input string
		topic string
	}{
		{"website ka price kya hai", "pricing_web"},
		{"metabull universe kya hai", "about"},
		// "about" claims office/location words ahead of the dedicated
		// location topic; declared order decides.
		{"office location?", "about"},
		{"ugc video rate?", "pricing_video"},
		{"logo 3d price?", "pricing_graphics"},
		{"smm monthly plan?", "pricing_smm"},
		{"rani kamlapati ke paas?", "location"},
		{"whatsapp number?", "contact"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			topic, ok := table.Classify(tc.input)
			require.True(t, ok)
			assert.Equal(t, tc.topic, topic)
		})
	}
}
