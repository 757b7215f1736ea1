// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package present

import (
	"context"
	"fmt"
	"io"

	"github.com/JorgeGarc1/obliquo-automatizacion/pkg/types"
)

// CycleStore records presentation cycles. *session.Store satisfies it.
type CycleStore interface {
	RecordCycle(ctx context.Context, runID string, cycle int, ideas []types.ScriptIdea, feedback types.Feedback) error
}

// Recorder wraps a Presenter and records every cycle to a store. Recording
// failures are warned about, never fatal: losing a session record must not
// kill an interactive run.
type Recorder struct {
	inner Presenter
	store CycleStore
	runID string
	warn  io.Writer
	cycle int
}

// NewRecorder wraps inner so each Present call is recorded under runID.
func NewRecorder(inner Presenter, store CycleStore, runID string, warn io.Writer) *Recorder {
	return &Recorder{inner: inner, store: store, runID: runID, warn: warn}
}

// Present delegates to the wrapped presenter and records the shown batch
// with the collected feedback.
func (r *Recorder) Present(ctx context.Context, ideas []types.ScriptIdea) ([]types.ScriptIdea, types.Feedback, error) {
	selected, feedback, err := r.inner.Present(ctx, ideas)
	if err != nil {
		return nil, types.Feedback{}, err
	}

	r.cycle++
	if recErr := r.store.RecordCycle(ctx, r.runID, r.cycle, ideas, feedback); recErr != nil {
		fmt.Fprintf(r.warn, "warning: recording cycle %d failed: %v\n", r.cycle, recErr)
	}
	return selected, feedback, nil
}
