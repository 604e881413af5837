// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

// Package chat answers free-text movie questions with a deterministic
// rule-based classifier: an ordered pattern list where the first matching
// rule wins. There is no language model behind it and no ambiguity in the
// outcome; the same message always classifies the same way.
package chat

import (
	"regexp"
	"strings"
)

// Intent is the classified purpose of a chat message.
type Intent string

const (
	IntentGreeting  Intent = "greeting"
	IntentHelp      Intent = "help"
	IntentPopular   Intent = "popular"
	IntentGenre     Intent = "genre"
	IntentSimilar   Intent = "similar"
	IntentRecommend Intent = "recommend"
	IntentSearch    Intent = "search"
)

// Classification is the outcome of classifying one message. Entity carries
// the extracted genre or title for the genre and similar intents.
type Classification struct {
	Intent Intent
	Entity string
}

// rule is one ordered classifier entry.
type rule struct {
	intent  Intent
	pattern *regexp.Regexp
	// entityGroup is the capture group index carrying the entity, 0 for
	// none.
	entityGroup int
}

// knownGenres are the genres the classifier recognizes in free text,
// matching the catalog's genre vocabulary.
var knownGenres = []string{
	"Action", "Adventure", "Animation", "Comedy", "Crime", "Documentary",
	"Drama", "Fantasy", "Horror", "Mystery", "Romance", "Sci-Fi", "Thriller", "War",
}

// rules is the ordered pattern list. Order matters: "popular comedy movies"
// must classify as genre, not popular, so genre detection runs first via
// classifyGenre before this list is consulted.
var rules = []rule{
	{intent: IntentGreeting, pattern: regexp.MustCompile(`(?i)^\s*(hi|hello|hey|yo|good (morning|afternoon|evening))\b`)},
	{intent: IntentHelp, pattern: regexp.MustCompile(`(?i)\b(help|what can you do|how do(es)? this work)\b`)},
	{intent: IntentSimilar, pattern: regexp.MustCompile(`(?i)\b(?:similar to|like|movies like)\s+(.+?)\s*[.?!]*$`), entityGroup: 1},
	{intent: IntentPopular, pattern: regexp.MustCompile(`(?i)\b(popular|trending|top rated|best movies|most watched)\b`)},
	{intent: IntentRecommend, pattern: regexp.MustCompile(`(?i)\b(recommend|suggest|what should i watch|something to watch)\b`)},
}

// Classify resolves a message to an intent. Genre mentions take priority so
// "recommend a comedy" surfaces genre picks rather than generic ones; after
// that the ordered rule list applies, and anything unmatched is treated as a
// search query.
func Classify(message string) Classification {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return Classification{Intent: IntentHelp}
	}

	if genre, ok := classifyGenre(trimmed); ok {
		return Classification{Intent: IntentGenre, Entity: genre}
	}

	for _, r := range rules {
		m := r.pattern.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		c := Classification{Intent: r.intent}
		if r.entityGroup > 0 && r.entityGroup < len(m) {
			c.Entity = strings.TrimSpace(m[r.entityGroup])
		}
		return c
	}

	return Classification{Intent: IntentSearch, Entity: trimmed}
}

// classifyGenre finds the first known genre mentioned as a whole word.
func classifyGenre(message string) (string, bool) {
	lower := strings.ToLower(message)
	for _, g := range knownGenres {
		gl := strings.ToLower(g)
		idx := strings.Index(lower, gl)
		if idx < 0 {
			continue
		}
		if !wholeWordAt(lower, idx, len(gl)) {
			continue
		}
		return g, true
	}
	return "", false
}

// wholeWordAt reports whether s[idx:idx+n] is bounded by non-letter runes.
func wholeWordAt(s string, idx, n int) bool {
	if idx > 0 && isWordByte(s[idx-1]) {
		return false
	}
	end := idx + n
	if end < len(s) && isWordByte(s[end]) {
		return false
	}
	return true
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
