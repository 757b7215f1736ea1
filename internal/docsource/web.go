// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docsource

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	readability "github.com/go-shiori/go-readability"
	"golang.org/x/time/rate"

	"github.com/JorgeGarc1/obliquo-automatizacion/internal/httputil"
	"github.com/JorgeGarc1/obliquo-automatizacion/pkg/types"
)

// WebSource fetches pages listed in a URL manifest and extracts their
// readable article text. folderRef is the manifest path: one URL per line,
// blank lines and #-comments skipped.
type WebSource struct {
	client  *http.Client
	limiter *rate.Limiter
	cfg     types.DocumentSourceConfig
}

// NewWebSource builds a WebSource. A nil client gets http.DefaultClient.
// FetchDelay, when positive, paces consecutive page downloads.
func NewWebSource(cfg types.DocumentSourceConfig, client *http.Client) *WebSource {
	if client == nil {
		client = http.DefaultClient
	}
	s := &WebSource{client: client, cfg: cfg}
	if cfg.FetchDelay > 0 {
		s.limiter = rate.NewLimiter(rate.Every(cfg.FetchDelay), 1)
	}
	return s
}

// FetchDocuments fetches every manifest URL in order. Any failed fetch or
// extraction aborts the whole batch.
func (s *WebSource) FetchDocuments(ctx context.Context, folderRef string) ([]types.Document, error) {
	urls, err := readManifest(folderRef)
	if err != nil {
		return nil, err
	}

	var docs []types.Document
	for _, pageURL := range urls {
		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}
		doc, err := s.fetchPage(ctx, pageURL)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", pageURL, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *WebSource) fetchPage(ctx context.Context, pageURL string) (types.Document, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return types.Document{}, fmt.Errorf("parsing URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return types.Document{}, fmt.Errorf("creating request: %w", err)
	}
	if s.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", s.cfg.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, s.client, req, 0)
	if err != nil {
		return types.Document{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Document{}, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	article, err := readability.FromReader(resp.Body, parsed)
	if err != nil {
		return types.Document{}, fmt.Errorf("extracting article: %w", err)
	}

	name := article.Title
	if name == "" {
		name = pageURL
	}
	return types.Document{
		Name:     name,
		Content:  article.TextContent,
		MIMEType: "text/html",
	}, nil
}

// readManifest parses the URL manifest file.
func readManifest(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening URL manifest %s: %w", path, err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading URL manifest %s: %w", path, err)
	}
	return urls, nil
}
