package extract

import (
	"regexp"
	"sort"
)

// Lexical ticker extraction over raw transcript text.
// ⭐ SSOT: 티커 추출 로직은 이 패키지에서만
//
// A candidate is a maximal run of 1-5 uppercase ASCII letters at word
// boundaries. Acceptance is three-tiered, in strict priority order:
//
//  1. known-ticker set   → accept unconditionally (covers single letters
//     and words that collide with the exclusion set, e.g. META, COST)
//  2. exclusion set      → reject
//  3. length 2-5         → accept; a bare single letter is too ambiguous
//
// The order matters: several real tickers only survive because the
// known-ticker override runs first.

var (
	tickerPattern = regexp.MustCompile(`\b[A-Z]{1,5}\b`)
	symbolShape   = regexp.MustCompile(`^[A-Z]{1,5}$`)
)

// Extract scans text and returns the deduplicated, lexicographically
// sorted set of accepted ticker symbols. Total over all inputs: empty
// or uppercase-free text yields an empty slice.
func Extract(text string) []string {
	matches := tickerPattern.FindAllString(text, -1)

	seen := make(map[string]bool, len(matches))
	tickers := make([]string, 0, len(matches))

	for _, symbol := range matches {
		if seen[symbol] {
			continue
		}
		seen[symbol] = true

		if accept(symbol) {
			tickers = append(tickers, symbol)
		}
	}

	sort.Strings(tickers)
	return tickers
}

// IsValidTicker applies the same three-tier acceptance logic to a
// single candidate string. Agrees with Extract on every input: the
// members of Extract(text) are exactly the ticker-shaped substrings
// for which IsValidTicker returns true.
func IsValidTicker(symbol string) bool {
	if !symbolShape.MatchString(symbol) {
		return false
	}
	return accept(symbol)
}

// accept assumes symbol already matches the 1-5 uppercase shape
func accept(symbol string) bool {
	if knownTickers[symbol] {
		return true
	}
	if exclusionWords[symbol] {
		return false
	}
	return len(symbol) >= 2
}
