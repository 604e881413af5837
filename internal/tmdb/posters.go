// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

package tmdb

import (
	"fmt"
	"net/url"
)

// curatedPosters maps well-known movieIds to hand-picked poster URLs. This
// tier serves movies whose tmdbId is missing or whose TMDB record has no
// poster.
var curatedPosters = map[int64]string{
	1:  "https://image.tmdb.org/t/p/w342/q6y0Go1tsGEsmtFryDOJo3dEmqu.jpg", // The Shawshank Redemption
	2:  "https://image.tmdb.org/t/p/w342/3bhkrj58Vtu7enYsRolD1fZdja1.jpg", // The Godfather
	3:  "https://image.tmdb.org/t/p/w342/qJ2tW6WMUDux911r6m7haRef0WH.jpg", // The Dark Knight
	5:  "https://image.tmdb.org/t/p/w342/9gk7adHYeDvHkCSEqAvQNLV5Uge.jpg", // Inception
	6:  "https://image.tmdb.org/t/p/w342/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg", // The Matrix
	8:  "https://image.tmdb.org/t/p/w342/gEU2QniE6E77NI6lCU6MxlNBvIx.jpg", // Interstellar
	17: "https://image.tmdb.org/t/p/w342/39wmItIWsg5sZMyRUHLkWBcuVCM.jpg", // Spirited Away
}

// placeholderPalette holds background/foreground color pairs for generated
// placeholder posters. The pair is chosen by movieId modulo the palette size
// so a movie always renders with the same colors.
var placeholderPalette = [][2]string{
	{"1a237e", "ffffff"},
	{"b71c1c", "ffffff"},
	{"004d40", "ffffff"},
	{"e65100", "000000"},
	{"4a148c", "ffffff"},
	{"263238", "ffffff"},
	{"f9a825", "000000"},
	{"00695c", "ffffff"},
}

// placeholderURL synthesizes a poster image URL encoding the title and a
// deterministic color pair. Always returns a non-empty string.
func placeholderURL(movieID int64, title string) string {
	if title == "" {
		title = "Untitled"
	}

	idx := movieID % int64(len(placeholderPalette))
	if idx < 0 {
		idx += int64(len(placeholderPalette))
	}
	colors := placeholderPalette[idx]

	return fmt.Sprintf("https://placehold.co/342x513/%s/%s?text=%s",
		colors[0], colors[1], url.QueryEscape(title))
}
