// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JorgeGarc1/obliquo-automatizacion/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.SessionConfig{Dir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleIdeas() []types.ScriptIdea {
	return []types.ScriptIdea{
		{ID: 1, Title: "The Practical Side of Sales", Format: "vlog", Topic: "sales"},
		{ID: 2, Title: "Discover Education in Products", Format: "tutorial", Topic: "products"},
	}
}

func TestBeginRunAndRecordCycles(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	runID, err := s.BeginRun(ctx, "./docs")
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	require.NoError(t, s.RecordCycle(ctx, runID, 1, sampleIdeas(), types.Feedback{Improve: true, FormatChange: "tutorial"}))
	require.NoError(t, s.RecordCycle(ctx, runID, 2, sampleIdeas()[:1], types.Feedback{Rating: "5"}))

	runs, err := s.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, runID, runs[0].ID)
	assert.Equal(t, "./docs", runs[0].SourceRef)
	assert.Equal(t, 2, runs[0].Cycles)
	assert.False(t, runs[0].StartedAt.IsZero())
}

func TestRecordCycleDuplicateRejected(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	runID, err := s.BeginRun(ctx, "")
	require.NoError(t, err)

	require.NoError(t, s.RecordCycle(ctx, runID, 1, sampleIdeas(), types.Feedback{}))
	err = s.RecordCycle(ctx, runID, 1, sampleIdeas(), types.Feedback{})
	require.Error(t, err)
}

func TestRecordCycleUnknownRun(t *testing.T) {
	s := newTestStore(t)
	// Foreign keys are on: a cycle for a nonexistent run must fail.
	err := s.RecordCycle(context.Background(), "no-such-run", 1, sampleIdeas(), types.Feedback{})
	require.Error(t, err)
}

func TestListRunsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.BeginRun(ctx, "a")
	require.NoError(t, err)
	second, err := s.BeginRun(ctx, "b")
	require.NoError(t, err)

	runs, err := s.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second, runs[0].ID)
	assert.Equal(t, first, runs[1].ID)
}

func TestExportRunRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	runID, err := s.BeginRun(ctx, "./docs")
	require.NoError(t, err)
	require.NoError(t, s.RecordCycle(ctx, runID, 1, sampleIdeas(),
		types.Feedback{Improve: true, ToneChange: "casual", AdditionalElements: []string{"drone footage"}}))

	var buf bytes.Buffer
	require.NoError(t, s.ExportRun(ctx, runID, &buf))

	out := buf.String()
	assert.Contains(t, out, "run_id: "+runID)
	assert.Contains(t, out, "The Practical Side of Sales")
	assert.Contains(t, out, "drone footage")
	assert.Contains(t, out, "cycle: 1")
}

func TestExportRunNotFound(t *testing.T) {
	s := newTestStore(t)
	var buf bytes.Buffer
	err := s.ExportRun(context.Background(), "missing", &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestStoreReopenPersists(t *testing.T) {
	dir := t.TempDir()
	cfg := types.SessionConfig{Dir: dir}

	s, err := NewStore(cfg)
	require.NoError(t, err)
	runID, err := s.BeginRun(context.Background(), "x")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s2, err := NewStore(cfg)
	require.NoError(t, err)
	defer s2.Close()

	runs, err := s2.ListRuns(context.Background())
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, runID, runs[0].ID)
}
