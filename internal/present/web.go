// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package present

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/JorgeGarc1/obliquo-automatizacion/pkg/types"
)

// Web is a structured request/response presenter: the pending batch is
// served as JSON and Present blocks until feedback is posted back.
type Web struct {
	port int

	mu      sync.Mutex
	pending []types.ScriptIdea
	waiting bool

	submissions chan webSubmission
}

type webSubmission struct {
	SelectedIDs []int          `json:"selected_ids"`
	Feedback    types.Feedback `json:"feedback"`
}

const defaultWebPort = 5000

// NewWeb builds a Web presenter listening on cfg.Port (default 5000).
func NewWeb(cfg types.UIConfig) *Web {
	port := cfg.Port
	if port <= 0 {
		port = defaultWebPort
	}
	return &Web{port: port, submissions: make(chan webSubmission)}
}

// ListenAndServe runs the HTTP server until ctx is cancelled.
func (w *Web) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", w.port),
		Handler:           w.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// Handler returns the presenter's HTTP routes.
func (w *Web) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", w.handleIndex)
	mux.HandleFunc("/api/ideas", w.handleIdeas)
	mux.HandleFunc("/api/feedback", w.handleFeedback)
	return mux
}

// Present publishes the batch and blocks until feedback arrives or ctx is
// cancelled. Selected IDs not in the batch are ignored.
func (w *Web) Present(ctx context.Context, ideas []types.ScriptIdea) ([]types.ScriptIdea, types.Feedback, error) {
	w.mu.Lock()
	w.pending = ideas
	w.waiting = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.pending = nil
		w.waiting = false
		w.mu.Unlock()
	}()

	select {
	case <-ctx.Done():
		return nil, types.Feedback{}, ctx.Err()
	case sub := <-w.submissions:
		byID := make(map[int]types.ScriptIdea, len(ideas))
		for _, idea := range ideas {
			byID[idea.ID] = idea
		}
		var selected []types.ScriptIdea
		for _, id := range sub.SelectedIDs {
			if idea, ok := byID[id]; ok {
				selected = append(selected, idea)
			}
		}
		return selected, sub.Feedback, nil
	}
}

func (w *Web) handleIdeas(rw http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(rw, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.mu.Lock()
	ideas := w.pending
	w.mu.Unlock()

	rw.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(rw).Encode(map[string][]types.ScriptIdea{"ideas": ideas})
}

func (w *Web) handleFeedback(rw http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(rw, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var sub webSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		http.Error(rw, "invalid feedback payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	w.mu.Lock()
	waiting := w.waiting
	w.mu.Unlock()
	if !waiting {
		http.Error(rw, "no pending presentation", http.StatusConflict)
		return
	}

	select {
	case w.submissions <- sub:
		rw.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(rw).Encode(map[string]string{"status": "feedback_received"})
	case <-r.Context().Done():
		http.Error(rw, "request cancelled", http.StatusRequestTimeout)
	}
}

func (w *Web) handleIndex(rw http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(rw, r)
		return
	}
	rw.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = rw.Write([]byte(indexPage))
}

const indexPage = `<!DOCTYPE html>
<html>
<head>
    <title>Business Content Agent</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        .idea { border: 1px solid #ddd; padding: 15px; margin: 10px 0; border-radius: 5px; }
        .selected { background-color: #e8f5e8; }
        button { padding: 10px 15px; margin: 5px; cursor: pointer; }
        .feedback { background-color: #f9f9f9; padding: 15px; border-radius: 5px; }
    </style>
</head>
<body>
    <h1>Business Content Agent - Script Ideas</h1>
    <div id="ideas-container"></div>
    <div class="feedback">
        <h3>Provide Feedback</h3>
        <textarea id="feedback-text" rows="4" cols="50" placeholder="Enter your feedback..."></textarea><br>
        <label><input type="checkbox" id="improve"> Generate improved versions</label><br>
        <button onclick="submitFeedback()">Submit Feedback</button>
    </div>

    <script>
        let selectedIdeas = [];

        function displayIdeas(ideas) {
            const container = document.getElementById('ideas-container');
            container.innerHTML = '';
            ideas.forEach(idea => {
                const div = document.createElement('div');
                div.className = 'idea';
                div.id = 'idea-' + idea.id;
                div.innerHTML = '<h3>' + idea.title + '</h3>' +
                    '<p><strong>Format:</strong> ' + idea.format + '</p>' +
                    '<p><strong>Theme:</strong> ' + idea.theme + '</p>' +
                    '<p>' + idea.description + '</p>' +
                    '<p><strong>Duration:</strong> ' + idea.estimated_duration + '</p>' +
                    '<p><strong>Platforms:</strong> ' + idea.target_platforms.join(', ') + '</p>' +
                    '<button onclick="selectIdea(' + idea.id + ')">Select</button>';
                container.appendChild(div);
            });
        }

        function selectIdea(id) {
            if (selectedIdeas.includes(id)) {
                selectedIdeas = selectedIdeas.filter(i => i !== id);
            } else {
                selectedIdeas.push(id);
            }
            document.getElementById('idea-' + id).classList.toggle('selected');
        }

        function submitFeedback() {
            fetch('/api/feedback', {
                method: 'POST',
                headers: { 'Content-Type': 'application/json' },
                body: JSON.stringify({
                    selected_ids: selectedIdeas,
                    feedback: {
                        improvements: document.getElementById('feedback-text').value,
                        improve: document.getElementById('improve').checked
                    }
                })
            }).then(() => alert('Feedback submitted!'));
        }

        window.onload = function() {
            fetch('/api/ideas').then(r => r.json()).then(data => displayIdeas(data.ideas || []));
        };
    </script>
</body>
</html>
`
