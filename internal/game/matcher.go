// Package game holds the puzzle core: answer matching, section hierarchy,
// the session state machine, statistics updates and puzzle-number arithmetic.
// Everything in this package is pure; persistence and HTTP live elsewhere.
package game

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Matching thresholds. These are empirical tuning values: the token-sort
// check is more lenient because word transposition shouldn't penalize a
// correct guess, while partial (substring) matching is stricter since short
// guesses can coincidentally overlap.
const (
	MinGuessLength     = 3
	TokenSortThreshold = 85
	PartialThreshold   = 90
)

// Normalize lowercases a string, collapses internal whitespace and trims it
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// stripParenthetical drops a trailing disambiguator from an answer, so
// "queen (band)" can be matched as just "queen".
func stripParenthetical(s string) string {
	if i := strings.Index(s, " ("); i > 0 && strings.HasSuffix(s, ")") {
		return s[:i]
	}
	return s
}

// Matches decides whether a free-text guess identifies the answer title.
// Exact matches (with or without the answer's parenthetical) are accepted
// immediately; otherwise two fuzzy scores are consulted.
func Matches(guess, answer string) bool {
	g := Normalize(guess)
	if len([]rune(g)) < MinGuessLength {
		return false
	}

	a := Normalize(answer)
	core := stripParenthetical(a)

	if g == a || g == core {
		return true
	}

	if fuzzy.TokenSortRatio(g, core) >= TokenSortThreshold {
		return true
	}
	return fuzzy.PartialRatio(g, core) >= PartialThreshold
}
