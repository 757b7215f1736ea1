// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/JorgeGarc1/obliquo-automatizacion/internal/httputil"
	"github.com/JorgeGarc1/obliquo-automatizacion/pkg/types"
)

// googleSearchBase is the Google Custom Search JSON API endpoint. Declared
// as a var so tests can substitute an httptest server.
var googleSearchBase = "https://www.googleapis.com/customsearch/v1"

// GoogleClient queries the Google Custom Search JSON API.
type GoogleClient struct {
	Client *http.Client
	cfg    types.SearchConfig
}

// NewGoogleClient builds a client from the search configuration. APIKey and
// EngineID must be set.
func NewGoogleClient(client *http.Client, cfg types.SearchConfig) (*GoogleClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("search API key not configured")
	}
	if cfg.EngineID == "" {
		return nil, fmt.Errorf("search engine ID not configured")
	}
	return &GoogleClient{Client: client, cfg: cfg}, nil
}

// googleResponse is the subset of the Custom Search response we consume.
type googleResponse struct {
	Items []googleItem `json:"items"`
}

type googleItem struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// Search runs one query and returns up to numResults results, each tagged
// with the query that produced it.
func (g *GoogleClient) Search(ctx context.Context, query string, numResults int) ([]types.SearchResult, error) {
	if numResults <= 0 {
		numResults = 5
	}

	params := url.Values{
		"key": {g.cfg.APIKey},
		"cx":  {g.cfg.EngineID},
		"q":   {query},
		"num": {fmt.Sprintf("%d", numResults)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleSearchBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", g.cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, g.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("search API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned HTTP %d", resp.StatusCode)
	}

	var gr googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	results := make([]types.SearchResult, 0, len(gr.Items))
	for _, item := range gr.Items {
		results = append(results, types.SearchResult{
			Title:   item.Title,
			Snippet: item.Snippet,
			URL:     item.Link,
			Query:   query,
		})
	}
	return results, nil
}
