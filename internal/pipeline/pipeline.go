// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline wires the stages into the document-to-ideas flow: fetch,
// extract, augment, analyze, profile, generate, and the feedback loop.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/JorgeGarc1/obliquo-automatizacion/internal/audience"
	"github.com/JorgeGarc1/obliquo-automatizacion/internal/business"
	"github.com/JorgeGarc1/obliquo-automatizacion/internal/docsource"
	"github.com/JorgeGarc1/obliquo-automatizacion/internal/ideas"
	"github.com/JorgeGarc1/obliquo-automatizacion/internal/logger"
	"github.com/JorgeGarc1/obliquo-automatizacion/internal/present"
	"github.com/JorgeGarc1/obliquo-automatizacion/internal/textproc"
	"github.com/JorgeGarc1/obliquo-automatizacion/internal/websearch"
	"github.com/JorgeGarc1/obliquo-automatizacion/pkg/types"
)

const defaultIdeaCount = 40

// FormFiller requests supplementary information when the extracted data is
// too thin. *present.Form satisfies it.
type FormFiller interface {
	RequestAdditionalInfo() []string
}

// Options carries the pipeline's collaborators and configuration.
type Options struct {
	Config    types.PipelineConfig
	Source    docsource.Source
	Tagger    textproc.Tagger
	Augmenter *websearch.Augmenter
	Presenter present.Presenter
	Form      FormFiller
	Generator *ideas.Generator

	// Log receives stage-level progress. Nil discards it.
	Log *logrus.Logger

	// Warnings receives non-fatal degradation notices (failed searches,
	// lost session records). Nil discards them.
	Warnings io.Writer
}

// Pipeline runs the full document-to-ideas flow.
type Pipeline struct {
	opts Options
}

// New validates the collaborators and builds a Pipeline.
func New(opts Options) (*Pipeline, error) {
	if opts.Source == nil {
		return nil, fmt.Errorf("pipeline requires a document source")
	}
	if opts.Tagger == nil {
		return nil, fmt.Errorf("pipeline requires a tagger")
	}
	if opts.Augmenter == nil {
		return nil, fmt.Errorf("pipeline requires an augmenter")
	}
	if opts.Presenter == nil {
		return nil, fmt.Errorf("pipeline requires a presenter")
	}
	if opts.Generator == nil {
		return nil, fmt.Errorf("pipeline requires a generator")
	}
	if opts.Log == nil {
		opts.Log = logger.New(io.Discard, "info")
	}
	if opts.Warnings == nil {
		opts.Warnings = io.Discard
	}
	return &Pipeline{opts: opts}, nil
}

// Run executes the flow end to end and returns the ideas selected in the
// final feedback cycle. Document-source and presenter failures are fatal;
// search failures degrade to empty results.
func (p *Pipeline) Run(ctx context.Context) ([]types.ScriptIdea, error) {
	o := p.opts

	o.Log.Info("fetching documents")
	docs, err := o.Source.FetchDocuments(ctx, o.Config.DocumentSource.FolderRef)
	if err != nil {
		return nil, fmt.Errorf("document source failed: %w", err)
	}
	o.Log.Infof("fetched %d documents", len(docs))

	o.Log.Info("processing documents")
	processed, err := textproc.Process(docs, o.Tagger)
	if err != nil {
		return nil, fmt.Errorf("processing documents: %w", err)
	}

	o.Log.Info("searching for additional information")
	additional := o.Augmenter.Augment(ctx, processed.KeyIdeas, o.Warnings)
	o.Log.Infof("collected %d search results", len(additional))

	if !business.Sufficient(processed, additional) {
		o.Log.Info("extracted data is thin, requesting additional information")
		if o.Form == nil {
			o.Log.Warn("no form available, continuing with low-signal analysis")
		} else if answers := o.Form.RequestAdditionalInfo(); len(answers) > 0 {
			processed.FullText = processed.FullText + " " + strings.Join(answers, " ")
		}
	}

	o.Log.Info("performing business analysis")
	analysis := business.Analyze(processed, additional)

	o.Log.Info("analyzing target audience")
	profile := audience.Analyze(analysis)

	count := o.Config.Ideas.Count
	if count <= 0 {
		count = defaultIdeaCount
	}
	o.Log.Infof("generating %d script ideas", count)
	batch := o.Generator.Generate(analysis, profile, count)

	o.Log.Info("presenting ideas")
	selected, feedback, err := o.Presenter.Present(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("presenting ideas: %w", err)
	}

	for feedback.Improve {
		o.Log.Info("improving ideas based on feedback")
		improved := o.Generator.Improve(selected, feedback)
		selected, feedback, err = o.Presenter.Present(ctx, improved)
		if err != nil {
			return nil, fmt.Errorf("presenting improved ideas: %w", err)
		}
	}

	o.Log.Info("run completed")
	return selected, nil
}
