// MovieGraph - Graph-Backed Movie Recommendation Service
// Copyright 2026 Rohan S. (rohansi4)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/rohansi4/moviegraph

package chat

import (
	"context"
	"fmt"

	"github.com/rohansi4/moviegraph/internal/catalog"
	"github.com/rohansi4/moviegraph/internal/models"
	"github.com/rohansi4/moviegraph/internal/recommend"
)

// chatLimit caps the number of movies attached to a chat reply.
const chatLimit = 5

// Response is a chat reply: a short message, the classified intent, and any
// movies that back the answer.
type Response struct {
	Reply  string                  `json:"reply"`
	Intent string                  `json:"intent"`
	Movies []models.Recommendation `json:"movies,omitempty"`
	Source string                  `json:"source"`
	Note   string                  `json:"note,omitempty"`
}

// Recommender is the recommendation surface the chat service consumes.
type Recommender interface {
	ForUser(ctx context.Context, userID string, limit int) recommend.Result
	ByType(ctx context.Context, userID, typ string, limit int) recommend.Result
	Discover(ctx context.Context, req recommend.DiscoverRequest) recommend.Result
}

// Browser is the catalog surface the chat service consumes.
type Browser interface {
	List(ctx context.Context, opts catalog.ListOptions) catalog.ListResult
}

// Service turns classified intents into replies backed by the
// recommendation and catalog services.
type Service struct {
	recs    Recommender
	catalog Browser
}

// NewService creates a chat service.
func NewService(recs Recommender, cat Browser) *Service {
	return &Service{recs: recs, catalog: cat}
}

// Respond classifies the message and answers it. userID may be empty; the
// recommend intent then degrades to the popularity strategy.
func (s *Service) Respond(ctx context.Context, userID, message string) Response {
	c := Classify(message)

	switch c.Intent {
	case IntentGreeting:
		return Response{
			Intent: string(c.Intent),
			Reply:  "Hi! Ask me for recommendations, a genre, or movies similar to one you liked.",
			Source: models.SourceLive,
		}

	case IntentHelp:
		return Response{
			Intent: string(c.Intent),
			Reply: `Try "recommend me something", "best sci-fi movies", ` +
				`"movies like Inception", or "what's popular right now".`,
			Source: models.SourceLive,
		}

	case IntentPopular:
		res := s.recs.ByType(ctx, userID, string(recommend.StrategyPopular), chatLimit)
		return s.movieReply(c, "Here's what everyone is watching:", res)

	case IntentGenre:
		res := s.recs.Discover(ctx, recommend.DiscoverRequest{
			UserID: userID,
			Genres: []string{c.Entity},
			Limit:  chatLimit,
		})
		return s.movieReply(c, fmt.Sprintf("Some strong %s picks:", c.Entity), res)

	case IntentSimilar:
		return s.similar(ctx, c)

	case IntentRecommend:
		if userID == "" {
			res := s.recs.ByType(ctx, "", string(recommend.StrategyPopular), chatLimit)
			return s.movieReply(c, "Tell me who you are for personal picks. Meanwhile, these are popular:", res)
		}
		res := s.recs.ForUser(ctx, userID, chatLimit)
		return s.movieReply(c, "Picked these for you:", res)

	default:
		return s.search(ctx, c)
	}
}

// similar finds the referenced movie by title search, then recommends within
// its genres.
func (s *Service) similar(ctx context.Context, c Classification) Response {
	found := s.catalog.List(ctx, catalog.ListOptions{Search: c.Entity, Page: 1, Limit: 1})
	if len(found.Movies) == 0 {
		return Response{
			Intent: string(c.Intent),
			Reply:  fmt.Sprintf("I couldn't find %q. Try another title?", c.Entity),
			Source: found.Source,
			Note:   found.Note,
		}
	}

	anchor := found.Movies[0]
	res := s.recs.Discover(ctx, recommend.DiscoverRequest{
		Genres: anchor.Genres,
		Limit:  chatLimit + 1, // the anchor itself may rank first
	})

	movies := make([]models.Recommendation, 0, chatLimit)
	for _, r := range res.Recommendations {
		if r.MovieID == anchor.MovieID {
			continue
		}
		movies = append(movies, r)
		if len(movies) == chatLimit {
			break
		}
	}
	res.Recommendations = movies

	return s.movieReply(c, fmt.Sprintf("If you liked %s, try these:", anchor.Title), res)
}

// search answers an unclassified message as a catalog search.
func (s *Service) search(ctx context.Context, c Classification) Response {
	found := s.catalog.List(ctx, catalog.ListOptions{Search: c.Entity, Page: 1, Limit: chatLimit})
	if len(found.Movies) == 0 {
		return Response{
			Intent: string(c.Intent),
			Reply:  fmt.Sprintf("Nothing matched %q.", c.Entity),
			Source: found.Source,
			Note:   found.Note,
		}
	}

	recs := make([]models.Recommendation, 0, len(found.Movies))
	for _, m := range found.Movies {
		recs = append(recs, models.Recommendation{Movie: m})
	}

	return Response{
		Intent: string(c.Intent),
		Reply:  fmt.Sprintf("Found %d match(es):", len(recs)),
		Movies: recs,
		Source: found.Source,
		Note:   found.Note,
	}
}

// movieReply shapes a recommendation result into a chat response, keeping
// the fallback note when mock data served the answer.
func (s *Service) movieReply(c Classification, reply string, res recommend.Result) Response {
	if len(res.Recommendations) == 0 {
		reply = "I came up empty on that one. Try a different genre or title?"
	}
	return Response{
		Intent: string(c.Intent),
		Reply:  reply,
		Movies: res.Recommendations,
		Source: res.Source,
		Note:   res.Note,
	}
}
