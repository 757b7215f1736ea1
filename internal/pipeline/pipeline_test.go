// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JorgeGarc1/obliquo-automatizacion/internal/ideas"
	"github.com/JorgeGarc1/obliquo-automatizacion/internal/textproc"
	"github.com/JorgeGarc1/obliquo-automatizacion/internal/websearch"
	"github.com/JorgeGarc1/obliquo-automatizacion/pkg/types"
)

type stubSource struct {
	docs []types.Document
	err  error
}

func (s stubSource) FetchDocuments(_ context.Context, _ string) ([]types.Document, error) {
	return s.docs, s.err
}

// richTagger produces enough signal to pass the sufficiency gate.
type richTagger struct{}

func (richTagger) Tag(_ string) (textproc.Tagging, error) {
	return textproc.Tagging{
		NounPhrases: []string{
			"online sales", "product selling", "customer support",
			"delivery network", "loyalty program", "market research",
		},
		Entities: []string{"Acme", "Bolt", "Crane", "Delta"},
		Topics:   []string{"sales", "product"},
	}, nil
}

type emptyTagger struct{}

func (emptyTagger) Tag(_ string) (textproc.Tagging, error) {
	return textproc.Tagging{}, nil
}

type stubSearcher struct {
	results []types.SearchResult
}

func (s stubSearcher) Search(_ context.Context, query string, _ int) ([]types.SearchResult, error) {
	out := make([]types.SearchResult, len(s.results))
	copy(out, s.results)
	for i := range out {
		out[i].Query = query
	}
	return out, nil
}

// scriptedPresenter returns canned responses cycle by cycle.
type scriptedPresenter struct {
	batches   [][]types.ScriptIdea
	responses []struct {
		selected []types.ScriptIdea
		feedback types.Feedback
	}
	err error
}

func (p *scriptedPresenter) Present(_ context.Context, batch []types.ScriptIdea) ([]types.ScriptIdea, types.Feedback, error) {
	p.batches = append(p.batches, batch)
	if p.err != nil {
		return nil, types.Feedback{}, p.err
	}
	i := len(p.batches) - 1
	if i >= len(p.responses) {
		return nil, types.Feedback{}, nil
	}
	return p.responses[i].selected, p.responses[i].feedback, nil
}

type stubForm struct {
	answers []string
	called  bool
}

func (f *stubForm) RequestAdditionalInfo() []string {
	f.called = true
	return f.answers
}

func businessDocs() []types.Document {
	return []types.Document{
		{Name: "plan.txt", Content: "Our business sells products online with growth potential. Acme Bolt Crane Delta."},
	}
}

func newOptions(presenter *scriptedPresenter, form *stubForm) Options {
	return Options{
		Config: types.PipelineConfig{
			Ideas: types.IdeasConfig{Count: 6},
		},
		Source:    stubSource{docs: businessDocs()},
		Tagger:    richTagger{},
		Augmenter: websearch.NewAugmenter(stubSearcher{results: []types.SearchResult{{Title: "t", Snippet: "s"}}}, types.SearchConfig{}),
		Presenter: presenter,
		Form:      form,
		Generator: ideas.NewGenerator(rand.New(rand.NewSource(42))),
	}
}

func TestRunSingleCycle(t *testing.T) {
	presenter := &scriptedPresenter{}
	form := &stubForm{}

	p, err := New(newOptions(presenter, form))
	require.NoError(t, err)

	final, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, final, "nothing selected means nothing returned")
	require.Len(t, presenter.batches, 1)
	assert.Len(t, presenter.batches[0], 6)
	assert.False(t, form.called, "rich data must not trigger the form")
}

func TestRunImprovementLoop(t *testing.T) {
	presenter := &scriptedPresenter{}
	presenter.responses = []struct {
		selected []types.ScriptIdea
		feedback types.Feedback
	}{
		{
			selected: []types.ScriptIdea{{ID: 3, Format: "vlog", KeyElements: []string{"engaging narrative"}}},
			feedback: types.Feedback{Improve: true, FormatChange: "tutorial"},
		},
		{
			selected: []types.ScriptIdea{{ID: 3, Format: "tutorial"}},
			feedback: types.Feedback{Rating: "5"},
		},
	}

	p, err := New(newOptions(presenter, &stubForm{}))
	require.NoError(t, err)

	final, err := p.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, presenter.batches, 2)
	// The second cycle presents the improved ideas, not a fresh batch.
	require.Len(t, presenter.batches[1], 1)
	assert.Equal(t, "tutorial", presenter.batches[1][0].Format)
	assert.Contains(t, presenter.batches[1][0].KeyElements, "step-by-step instructions")

	require.Len(t, final, 1)
	assert.Equal(t, 3, final[0].ID)
}

func TestRunFormTriggeredOnThinData(t *testing.T) {
	presenter := &scriptedPresenter{}
	form := &stubForm{answers: []string{"small business owners", "premium offerings"}}

	opts := newOptions(presenter, form)
	opts.Source = stubSource{docs: []types.Document{{Name: "memo.txt", Content: "a short note"}}}
	opts.Tagger = emptyTagger{}
	opts.Augmenter = websearch.NewAugmenter(stubSearcher{}, types.SearchConfig{})

	p, err := New(opts)
	require.NoError(t, err)

	_, err = p.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, form.called)
}

func TestRunDocumentSourceFailureIsFatal(t *testing.T) {
	opts := newOptions(&scriptedPresenter{}, &stubForm{})
	opts.Source = stubSource{err: errors.New("auth denied")}

	p, err := New(opts)
	require.NoError(t, err)

	_, err = p.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document source failed")
	assert.Contains(t, err.Error(), "auth denied")
}

func TestRunPresenterFailureIsFatal(t *testing.T) {
	presenter := &scriptedPresenter{err: errors.New("socket closed")}

	p, err := New(newOptions(presenter, &stubForm{}))
	require.NoError(t, err)

	_, err = p.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "presenting ideas")
}

func TestRunDefaultIdeaCount(t *testing.T) {
	presenter := &scriptedPresenter{}
	opts := newOptions(presenter, &stubForm{})
	opts.Config.Ideas.Count = 0

	p, err := New(opts)
	require.NoError(t, err)

	_, err = p.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, presenter.batches, 1)
	assert.Len(t, presenter.batches[0], 40)
}

func TestNewRejectsMissingCollaborators(t *testing.T) {
	opts := newOptions(&scriptedPresenter{}, &stubForm{})
	opts.Source = nil
	_, err := New(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document source")

	opts = newOptions(&scriptedPresenter{}, &stubForm{})
	opts.Presenter = nil
	_, err = New(opts)
	require.Error(t, err)

	opts = newOptions(&scriptedPresenter{}, &stubForm{})
	opts.Generator = nil
	_, err = New(opts)
	require.Error(t, err)
}

func TestRunSearchWarningsSurface(t *testing.T) {
	presenter := &scriptedPresenter{}
	var warnings strings.Builder

	opts := newOptions(presenter, &stubForm{})
	opts.Augmenter = websearch.NewAugmenter(failingSearcher{}, types.SearchConfig{})
	opts.Warnings = &warnings

	p, err := New(opts)
	require.NoError(t, err)

	_, err = p.Run(context.Background())
	require.NoError(t, err, "search failure degrades, never aborts")
	assert.Contains(t, warnings.String(), "warning: search failed")
}

type failingSearcher struct{}

func (failingSearcher) Search(_ context.Context, _ string, _ int) ([]types.SearchResult, error) {
	return nil, errors.New("network down")
}
