// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package websearch maps key ideas and topics to external web snippets that
// supplement the extracted document data.
package websearch

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/time/rate"

	"github.com/JorgeGarc1/obliquo-automatizacion/pkg/types"
)

// Searcher is the external search collaborator: one query in, a ranked list
// of snippets out. Implementations may fail transiently.
type Searcher interface {
	Search(ctx context.Context, query string, numResults int) ([]types.SearchResult, error)
}

// Augmenter paces queries against a Searcher and absorbs its failures.
// A failed query contributes an empty result list; the run continues.
type Augmenter struct {
	searcher Searcher
	limiter  *rate.Limiter
	cfg      types.SearchConfig
}

// NewAugmenter builds an Augmenter. A positive QueryDelay installs a rate
// limiter that enforces the delay between distinct queries; zero disables
// pacing (tests only — the external API throttles bursts).
func NewAugmenter(searcher Searcher, cfg types.SearchConfig) *Augmenter {
	if cfg.MaxIdeas <= 0 {
		cfg.MaxIdeas = 5
	}
	if cfg.ResultsPerQuery <= 0 {
		cfg.ResultsPerQuery = 5
	}

	var limiter *rate.Limiter
	if cfg.QueryDelay > 0 {
		limiter = rate.NewLimiter(rate.Every(cfg.QueryDelay), 1)
	}

	return &Augmenter{searcher: searcher, limiter: limiter, cfg: cfg}
}

// Augment queries the collaborator for each of the first MaxIdeas key ideas
// and concatenates the results in query order. Collaborator failures are
// logged to w and absorbed.
func (a *Augmenter) Augment(ctx context.Context, keyIdeas []string, w io.Writer) []types.SearchResult {
	ideas := keyIdeas
	if len(ideas) > a.cfg.MaxIdeas {
		ideas = ideas[:a.cfg.MaxIdeas]
	}

	var results []types.SearchResult
	for _, idea := range ideas {
		fmt.Fprintf(w, "searching: %s\n", idea)
		results = append(results, a.search(ctx, idea, w)...)
	}
	return results
}

// SearchSpecialized queries for business literature on the first three
// ranked topics.
func (a *Augmenter) SearchSpecialized(ctx context.Context, topics []types.TopicCount, w io.Writer) []types.SearchResult {
	if len(topics) > 3 {
		topics = topics[:3]
	}

	var results []types.SearchResult
	for _, tc := range topics {
		query := fmt.Sprintf("%s business book OR document OR research", tc.Topic)
		results = append(results, a.search(ctx, query, w)...)
	}
	return results
}

// search runs one paced query. Errors degrade to an empty list.
func (a *Augmenter) search(ctx context.Context, query string, w io.Writer) []types.SearchResult {
	if a.limiter != nil {
		if err := a.limiter.Wait(ctx); err != nil {
			fmt.Fprintf(w, "warning: search pacing interrupted: %v\n", err)
			return nil
		}
	}

	results, err := a.searcher.Search(ctx, query, a.cfg.ResultsPerQuery)
	if err != nil {
		fmt.Fprintf(w, "warning: search failed for %q: %v\n", query, err)
		return nil
	}
	return results
}
