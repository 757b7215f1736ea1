// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SearchResult is one web search hit gathered by the relevance augmenter.
// Results are ordered by query iteration order, then by result rank within
// a query.
type SearchResult struct {
	// Title is the result title as returned by the search collaborator.
	Title string `json:"title" yaml:"title"`

	// Snippet is the short text excerpt for the result.
	Snippet string `json:"snippet" yaml:"snippet"`

	// URL is the result link.
	URL string `json:"url" yaml:"url"`

	// Query is the query string that produced this result.
	Query string `json:"query" yaml:"query"`
}
