// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyOrderedRules(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		wantIntent Intent
		wantEntity string
	}{
		{"greeting", "Hello there", IntentGreeting, ""},
		{"greeting prefix only", "hey, what's good", IntentGreeting, ""},
		{"help", "what can you do?", IntentHelp, ""},
		{"empty is help", "   ", IntentHelp, ""},
		{"popular", "show me what's trending", IntentPopular, ""},
		{"genre beats popular", "popular comedy movies", IntentGenre, "Comedy"},
		{"genre beats recommend", "recommend a good thriller", IntentGenre, "Thriller"},
		{"genre with hyphen", "best sci-fi of the 90s", IntentGenre, "Sci-Fi"},
		{"similar with title", "movies like Inception", IntentSimilar, "Inception"},
		{"similar trailing punctuation", "anything similar to The Matrix?", IntentSimilar, "The Matrix"},
		{"recommend", "suggest something to watch tonight", IntentRecommend, ""},
		{"fallback is search", "shawshank", IntentSearch, "shawshank"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.message)
			assert.Equal(t, tt.wantIntent, got.Intent)
			assert.Equal(t, tt.wantEntity, got.Entity)
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	first := Classify("recommend a good thriller")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify("recommend a good thriller"))
	}
}

func TestGenreMatchIsWholeWord(t *testing.T) {
	// "warm" must not match the War genre.
	got := Classify("a warm family story")
	assert.NotEqual(t, IntentGenre, got.Intent)

	got = Classify("classic war films")
	assert.Equal(t, IntentGenre, got.Intent)
	assert.Equal(t, "War", got.Entity)
}
