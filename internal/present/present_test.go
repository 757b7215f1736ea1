// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package present

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JorgeGarc1/obliquo-automatizacion/pkg/types"
)

func twoIdeas() []types.ScriptIdea {
	return []types.ScriptIdea{
		{ID: 1, Title: "The Practical Side of Sales", Format: "vlog", Theme: "comparison",
			Description: "d1", EstimatedDuration: "2-5 minutes", TargetPlatforms: []string{"YouTube", "Website"}},
		{ID: 2, Title: "Discover Education in Products", Format: "tutorial", Theme: "tips and tricks",
			Description: "d2", EstimatedDuration: "3-5 minutes", TargetPlatforms: []string{"YouTube"}},
	}
}

func TestConsoleSelectionAndFeedback(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"y", // select idea 1
		"n", // skip idea 2
		"4",
		"more energy",
		"casual",
		"tutorial",
		"drone footage,captions",
		"y",
	}, "\n") + "\n")
	var out bytes.Buffer

	c := NewConsole(in, &out, 0)
	selected, feedback, err := c.Present(context.Background(), twoIdeas())
	require.NoError(t, err)

	require.Len(t, selected, 1)
	assert.Equal(t, 1, selected[0].ID)

	assert.Equal(t, "4", feedback.Rating)
	assert.Equal(t, "more energy", feedback.Improvements)
	assert.Equal(t, "casual", feedback.ToneChange)
	assert.Equal(t, "tutorial", feedback.FormatChange)
	assert.Equal(t, []string{"drone footage", "captions"}, feedback.AdditionalElements)
	assert.True(t, feedback.Improve)

	assert.Contains(t, out.String(), "SCRIPT IDEAS GENERATED")
	assert.Contains(t, out.String(), "Title: The Practical Side of Sales")
	assert.Contains(t, out.String(), "Platforms: YouTube, Website")
}

func TestConsoleNoSelectionSkipsFeedback(t *testing.T) {
	in := strings.NewReader("n\nn\n")
	var out bytes.Buffer

	c := NewConsole(in, &out, 0)
	selected, feedback, err := c.Present(context.Background(), twoIdeas())
	require.NoError(t, err)

	assert.Empty(t, selected)
	assert.True(t, feedback.IsZero())
	assert.NotContains(t, out.String(), "FEEDBACK COLLECTION")
}

func TestConsoleShowLimit(t *testing.T) {
	ideas := make([]types.ScriptIdea, 12)
	for i := range ideas {
		ideas[i] = types.ScriptIdea{ID: i + 1, Title: "t"}
	}
	in := strings.NewReader(strings.Repeat("n\n", 12))
	var out bytes.Buffer

	_, _, err := NewConsole(in, &out, 0).Present(context.Background(), ideas)
	require.NoError(t, err)
	assert.Equal(t, 10, strings.Count(out.String(), "\nID: "))
}

func TestConsoleExhaustedInput(t *testing.T) {
	// EOF mid-session reads as "no" and empty feedback answers.
	in := strings.NewReader("y\n")
	var out bytes.Buffer

	selected, feedback, err := NewConsole(in, &out, 0).Present(context.Background(), twoIdeas())
	require.NoError(t, err)
	require.Len(t, selected, 1)
	assert.Empty(t, feedback.Rating)
	assert.False(t, feedback.Improve)
	assert.Empty(t, feedback.AdditionalElements)
}

func TestFormCollectsNonEmptyAnswers(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"small business owners",
		"", // skipped
		"fastest delivery in town",
		"", "", "", "", "",
	}, "\n") + "\n")
	var out bytes.Buffer

	answers := NewForm(in, &out).RequestAdditionalInfo()
	assert.Equal(t, []string{"small business owners", "fastest delivery in town"}, answers)

	assert.Contains(t, out.String(), "ADDITIONAL INFORMATION REQUESTED")
	assert.Contains(t, out.String(), "1. What is the primary target market for your business?")
	assert.Contains(t, out.String(), "8. Are there any specific topics you want to avoid?")
}

func TestFormStopsOnEOF(t *testing.T) {
	in := strings.NewReader("only answer\n")
	var out bytes.Buffer

	answers := NewForm(in, &out).RequestAdditionalInfo()
	assert.Equal(t, []string{"only answer"}, answers)
}

type stubPresenter struct {
	selected []types.ScriptIdea
	feedback types.Feedback
	err      error
}

func (s stubPresenter) Present(_ context.Context, _ []types.ScriptIdea) ([]types.ScriptIdea, types.Feedback, error) {
	return s.selected, s.feedback, s.err
}

type stubStore struct {
	cycles []int
	ideas  [][]types.ScriptIdea
	err    error
}

func (s *stubStore) RecordCycle(_ context.Context, _ string, cycle int, ideas []types.ScriptIdea, _ types.Feedback) error {
	s.cycles = append(s.cycles, cycle)
	s.ideas = append(s.ideas, ideas)
	return s.err
}

func TestRecorderRecordsEachCycle(t *testing.T) {
	store := &stubStore{}
	var warn bytes.Buffer
	r := NewRecorder(stubPresenter{selected: twoIdeas()[:1], feedback: types.Feedback{Improve: true}}, store, "run-1", &warn)

	_, _, err := r.Present(context.Background(), twoIdeas())
	require.NoError(t, err)
	_, _, err = r.Present(context.Background(), twoIdeas()[:1])
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, store.cycles)
	require.Len(t, store.ideas, 2)
	assert.Len(t, store.ideas[0], 2)
	assert.Len(t, store.ideas[1], 1)
	assert.Empty(t, warn.String())
}

func TestRecorderStoreFailureIsWarning(t *testing.T) {
	store := &stubStore{err: errors.New("disk full")}
	var warn bytes.Buffer
	r := NewRecorder(stubPresenter{}, store, "run-1", &warn)

	_, _, err := r.Present(context.Background(), twoIdeas())
	require.NoError(t, err)
	assert.Contains(t, warn.String(), "disk full")
}

func TestRecorderPresenterFailurePropagates(t *testing.T) {
	store := &stubStore{}
	var warn bytes.Buffer
	r := NewRecorder(stubPresenter{err: errors.New("boom")}, store, "run-1", &warn)

	_, _, err := r.Present(context.Background(), twoIdeas())
	require.Error(t, err)
	assert.Empty(t, store.cycles, "failed cycles must not be recorded")
}
