// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docsource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JorgeGarc1/obliquo-automatizacion/pkg/types"
)

func writeDoc(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLocalSourceFetchDocuments(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "plan.txt", "the business plan")
	writeDoc(t, dir, "notes.md", "# notes")
	writeDoc(t, dir, "logo.png", "\x89PNG")
	writeDoc(t, dir, ".draft.txt", "hidden")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0o755))

	docs, err := LocalSource{}.FetchDocuments(context.Background(), dir)
	require.NoError(t, err)

	require.Len(t, docs, 2)
	assert.Equal(t, types.Document{Name: "notes.md", Content: "# notes", MIMEType: "text/markdown"}, docs[0])
	assert.Equal(t, types.Document{Name: "plan.txt", Content: "the business plan", MIMEType: "text/plain"}, docs[1])
}

func TestLocalSourceMissingDirectory(t *testing.T) {
	_, err := LocalSource{}.FetchDocuments(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading document directory")
}

func TestLocalSourceEmptyDirectory(t *testing.T) {
	docs, err := LocalSource{}.FetchDocuments(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestNewSelectsProvider(t *testing.T) {
	src, err := New(types.DocumentSourceConfig{}, nil)
	require.NoError(t, err)
	assert.IsType(t, LocalSource{}, src)

	src, err = New(types.DocumentSourceConfig{Provider: "web"}, http.DefaultClient)
	require.NoError(t, err)
	assert.IsType(t, &WebSource{}, src)

	_, err = New(types.DocumentSourceConfig{Provider: "gopher"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown document source provider")
}

func TestWebSourceFetchDocuments(t *testing.T) {
	page := `<!DOCTYPE html><html><head><title>Coffee Shop Plan</title></head><body>
<article>
<h1>Coffee Shop Plan</h1>
<p>We sell specialty coffee to local customers, roasted in small batches every week.
The plan covers sourcing, pricing, and a loyalty program for repeat buyers.</p>
<p>Our suppliers deliver beans twice a month and we partner with nearby bakeries.</p>
</article>
</body></html>`

	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(page))
	}))
	defer ts.Close()

	manifest := filepath.Join(t.TempDir(), "urls.txt")
	require.NoError(t, os.WriteFile(manifest, []byte("# sources\n\n"+ts.URL+"/plan\n"), 0o644))

	src := NewWebSource(types.DocumentSourceConfig{
		HTTPConfig: types.HTTPConfig{UserAgent: "content-agent/1.0"},
	}, ts.Client())

	docs, err := src.FetchDocuments(context.Background(), manifest)
	require.NoError(t, err)

	require.Len(t, docs, 1)
	assert.Equal(t, "content-agent/1.0", gotUA)
	assert.Equal(t, "text/html", docs[0].MIMEType)
	assert.Contains(t, docs[0].Content, "specialty coffee")
	assert.NotContains(t, docs[0].Content, "<p>")
}

func TestWebSourceFetchFailureIsFatal(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	manifest := filepath.Join(t.TempDir(), "urls.txt")
	require.NoError(t, os.WriteFile(manifest, []byte(ts.URL+"/gone\n"), 0o644))

	src := NewWebSource(types.DocumentSourceConfig{}, ts.Client())
	_, err := src.FetchDocuments(context.Background(), manifest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestWebSourceMissingManifest(t *testing.T) {
	src := NewWebSource(types.DocumentSourceConfig{}, nil)
	_, err := src.FetchDocuments(context.Background(), filepath.Join(t.TempDir(), "urls.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening URL manifest")
}
