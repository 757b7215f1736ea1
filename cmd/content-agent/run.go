// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/JorgeGarc1/obliquo-automatizacion/internal/docsource"
	"github.com/JorgeGarc1/obliquo-automatizacion/internal/ideas"
	"github.com/JorgeGarc1/obliquo-automatizacion/internal/logger"
	"github.com/JorgeGarc1/obliquo-automatizacion/internal/pipeline"
	"github.com/JorgeGarc1/obliquo-automatizacion/internal/present"
	"github.com/JorgeGarc1/obliquo-automatizacion/internal/session"
	"github.com/JorgeGarc1/obliquo-automatizacion/internal/textproc"
	"github.com/JorgeGarc1/obliquo-automatizacion/internal/websearch"
	"github.com/JorgeGarc1/obliquo-automatizacion/pkg/types"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full document-to-ideas pipeline",
	Long: `Run executes the whole flow: fetch documents, extract text features,
augment with web search, analyze the business and its audience, generate
script ideas, and refine them through the feedback loop. The selected ideas
of the final cycle can be written to a YAML file.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().String("source", "", "document location (directory or URL manifest, overrides config)")
	runCmd.Flags().String("provider", "", "document source provider: local or web")
	runCmd.Flags().Int("count", 0, "ideas per generation batch (default 40)")
	runCmd.Flags().Int64("seed", 0, "random seed for reproducible generation")
	runCmd.Flags().String("ui", "", "presenter: console or web")
	runCmd.Flags().String("output", "", "write the final selected ideas to this YAML file")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := buildPipelineConfig()
	applyStringFlag(cmd, "source", &cfg.DocumentSource.FolderRef)
	applyStringFlag(cmd, "provider", &cfg.DocumentSource.Provider)
	applyStringFlag(cmd, "ui", &cfg.UI.Mode)
	if n, _ := cmd.Flags().GetInt("count"); n > 0 {
		cfg.Ideas.Count = n
	}
	if seed, _ := cmd.Flags().GetInt64("seed"); seed != 0 {
		cfg.Ideas.Seed = seed
	}
	if cfg.DocumentSource.FolderRef == "" {
		return fmt.Errorf("no document location configured (set --source or document_source.folder_ref)")
	}

	levelStr, _ := cmd.Flags().GetString("log-level")
	log := logger.New(os.Stderr, levelStr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := &http.Client{Timeout: cfg.DocumentSource.Timeout}

	source, err := docsource.New(cfg.DocumentSource, client)
	if err != nil {
		return err
	}

	tagger, err := textproc.NewTagger(cfg.Text.Model)
	if err != nil {
		return err
	}

	augmenter := websearch.NewAugmenter(buildSearcher(cfg.Search, log), cfg.Search)

	presenter, err := buildPresenter(ctx, cfg.UI, log)
	if err != nil {
		return err
	}

	if cfg.Session.Dir != "" {
		store, err := session.NewStore(cfg.Session)
		if err != nil {
			return fmt.Errorf("opening session store: %w", err)
		}
		defer store.Close()

		runID, err := store.BeginRun(ctx, cfg.DocumentSource.FolderRef)
		if err != nil {
			return fmt.Errorf("starting session run: %w", err)
		}
		log.Infof("recording session run %s", runID)
		presenter = present.NewRecorder(presenter, store, runID, os.Stderr)
	}

	p, err := pipeline.New(pipeline.Options{
		Config:    cfg,
		Source:    source,
		Tagger:    tagger,
		Augmenter: augmenter,
		Presenter: presenter,
		Form:      present.NewForm(os.Stdin, os.Stdout),
		Generator: ideas.NewGenerator(seededRand(cfg.Ideas.Seed)),
		Log:       log,
		Warnings:  os.Stderr,
	})
	if err != nil {
		return err
	}

	selected, err := p.Run(ctx)
	if err != nil {
		return err
	}

	if output, _ := cmd.Flags().GetString("output"); output != "" && len(selected) > 0 {
		if err := writeYAMLFile(output, selected); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Wrote %d selected ideas to %s\n", len(selected), output)
	}

	fmt.Fprintln(os.Stdout, "Process completed successfully!")
	return nil
}

func applyStringFlag(cmd *cobra.Command, name string, dst *string) {
	if v, _ := cmd.Flags().GetString(name); v != "" {
		*dst = v
	}
}

// seededRand returns a fixed-seed source for nonzero seeds, or nil for a
// clock-seeded one.
func seededRand(seed int64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(seed))
}

// buildSearcher returns the Google client when credentials are configured,
// otherwise a disabled searcher so the run degrades instead of aborting.
func buildSearcher(cfg types.SearchConfig, log *logrus.Logger) websearch.Searcher {
	client, err := websearch.NewGoogleClient(&http.Client{Timeout: cfg.Timeout}, cfg)
	if err != nil {
		log.Warn("web search disabled: ", err)
		return disabledSearcher{}
	}
	return client
}

// disabledSearcher stands in when no search credentials are configured.
type disabledSearcher struct{}

func (disabledSearcher) Search(_ context.Context, _ string, _ int) ([]types.SearchResult, error) {
	return nil, nil
}

// buildPresenter selects the presentation surface. The web presenter's
// server runs until the process context is cancelled.
func buildPresenter(ctx context.Context, cfg types.UIConfig, log *logrus.Logger) (present.Presenter, error) {
	switch cfg.Mode {
	case "", "console":
		return present.NewConsole(os.Stdin, os.Stdout, cfg.ShowLimit), nil
	case "web":
		web := present.NewWeb(cfg)
		port := cfg.Port
		if port <= 0 {
			port = 5000
		}
		log.Infof("web presenter listening on http://localhost:%d", port)
		go func() { _ = web.ListenAndServe(ctx) }()
		return web, nil
	default:
		return nil, fmt.Errorf("unknown ui mode: %q", cfg.Mode)
	}
}
