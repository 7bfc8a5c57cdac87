package extract

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
		{
			name: "no uppercase runs",
			text: "nothing to see here, just lowercase chatter",
			want: []string{},
		},
		{
			name: "all stopwords",
			text: "the and for are",
			want: []string{},
		},
		{
			name: "uppercase stopwords rejected",
			text: "THE MARKET IS DOWN BUT YOU SHOULD BUY NOW",
			want: []string{},
		},
		{
			name: "known tickers already sorted",
			text: "AAPL MSFT NVDA TSLA",
			want: []string{"AAPL", "MSFT", "NVDA", "TSLA"},
		},
		{
			name: "dedup repeated mentions",
			text: "I love AAPL and AAPL is great. AAPL will grow.",
			want: []string{"AAPL"},
		},
		{
			name: "output sorted ascending",
			text: "TSLA then NVDA then AAPL",
			want: []string{"AAPL", "NVDA", "TSLA"},
		},
		{
			name: "known-ticker override beats exclusion set",
			text: "META platforms and COST both look cheap at any COST",
			want: []string{"COST", "META"},
		},
		{
			name: "single letters only via known set",
			text: "V and C are payment names but B and Z are just letters",
			want: []string{"C", "V"},
		},
		{
			name: "six letter runs are not tickers",
			text: "GROWTH TOOLONG AAPL",
			want: []string{"AAPL"},
		},
		{
			name: "no partial matches inside mixed-case words",
			text: "WiFi McDonald iPhone AAPL",
			want: []string{"AAPL"},
		},
		{
			name: "unknown short runs accepted by length rule",
			text: "my broker showed me XYZ and QQ yesterday",
			want: []string{"QQ", "XYZ"},
		},
		{
			name: "punctuation boundaries",
			text: "Buy AAPL, sell MSFT; hold NVDA!",
			want: []string{"AAPL", "MSFT", "NVDA"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractNeverDuplicatesAndAlwaysSorted(t *testing.T) {
	texts := []string{
		"AAPL AAPL TSLA V C META COST THE AND",
		"watch my TSLA TSLA TSLA video NOW",
		"ZZZZZ AAAAA MMMMM AAAAA",
	}

	for _, text := range texts {
		got := Extract(text)

		assert.True(t, sort.StringsAreSorted(got), "result must be sorted: %v", got)

		seen := map[string]bool{}
		for _, s := range got {
			assert.False(t, seen[s], "duplicate entry %s in %v", s, got)
			seen[s] = true
		}
	}
}

func TestExtractAgreesWithIsValidTicker(t *testing.T) {
	text := "I think V and META will beat COST while THE B and XYZ QQ TOOLONG noise stays behind"

	extracted := map[string]bool{}
	for _, s := range Extract(text) {
		extracted[s] = true
		assert.True(t, IsValidTicker(s), "extracted %s must be valid", s)
	}

	// Every ticker-shaped run the validator accepts must be in the output
	for _, run := range tickerPattern.FindAllString(text, -1) {
		if IsValidTicker(run) {
			assert.True(t, extracted[run], "valid run %s missing from extraction", run)
		} else {
			assert.False(t, extracted[run], "invalid run %s present in extraction", run)
		}
	}
}

func TestIsValidTicker(t *testing.T) {
	tests := []struct {
		symbol string
		want   bool
	}{
		{"V", true},        // known single letter
		{"C", true},        // known single letter
		{"B", false},       // single letter not in known set
		{"AAPL", true},     // known
		{"XYZ", true},      // unknown but valid shape and length
		{"THE", false},     // exclusion set
		{"META", true},     // known overrides exclusion semantics
		{"COST", true},     // known overrides exclusion set
		{"LOW", true},      // known overrides exclusion set
		{"TOOLONG", false}, // over 5 letters
		{"aapl", false},    // lowercase
		{"AaPL", false},    // mixed case
		{"", false},        // empty
		{"A1", false},      // digits not allowed
		{"GOOGL", true},    // 5 letters
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidTicker(tt.symbol), "IsValidTicker(%q)", tt.symbol)
		})
	}
}

func TestDictionariesDoNotLeakStopwords(t *testing.T) {
	// Exclusion entries must only surface when the known set overrides them
	for word := range exclusionWords {
		if IsKnownTicker(word) {
			continue
		}
		assert.False(t, IsValidTicker(word), "exclusion word %s accepted", word)
	}

	// Every known ticker must be accepted, including single letters
	for symbol := range knownTickers {
		assert.True(t, IsValidTicker(symbol), "known ticker %s rejected", symbol)
	}
}
