// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docsource fetches the business documents a run starts from. A
// failed fetch is fatal to the pipeline; there is no degraded mode here.
package docsource

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/JorgeGarc1/obliquo-automatizacion/pkg/types"
)

// Source fetches the documents identified by folderRef. What folderRef
// means depends on the implementation: a directory path for LocalSource, a
// URL manifest file for WebSource.
type Source interface {
	FetchDocuments(ctx context.Context, folderRef string) ([]types.Document, error)
}

// New selects a Source by cfg.Provider. An empty provider defaults to
// "local".
func New(cfg types.DocumentSourceConfig, client *http.Client) (Source, error) {
	switch cfg.Provider {
	case "", "local":
		return LocalSource{}, nil
	case "web":
		return NewWebSource(cfg, client), nil
	default:
		return nil, fmt.Errorf("unknown document source provider: %q", cfg.Provider)
	}
}

// LocalSource reads text and markdown files from a directory.
type LocalSource struct{}

// mimeByExt maps accepted file extensions to document MIME types.
var mimeByExt = map[string]string{
	".txt":      "text/plain",
	".md":       "text/markdown",
	".markdown": "text/markdown",
}

// FetchDocuments reads every supported file in the directory folderRef, in
// lexical order. Files with other extensions, dotfiles, and subdirectories
// are ignored. An unreadable supported file is an error.
func (LocalSource) FetchDocuments(ctx context.Context, folderRef string) ([]types.Document, error) {
	entries, err := os.ReadDir(folderRef)
	if err != nil {
		return nil, fmt.Errorf("reading document directory %s: %w", folderRef, err)
	}

	var docs []types.Document
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		mime, ok := mimeByExt[strings.ToLower(filepath.Ext(entry.Name()))]
		if !ok {
			continue
		}

		data, err := os.ReadFile(filepath.Join(folderRef, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading document %s: %w", entry.Name(), err)
		}
		docs = append(docs, types.Document{
			Name:     entry.Name(),
			Content:  string(data),
			MIMEType: mime,
		})
	}
	return docs, nil
}
